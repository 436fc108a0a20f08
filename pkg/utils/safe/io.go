package safe

import (
	"context"
	"io"

	"github.com/secmon-lab/talos/pkg/utils/logging"
)

// Close closes closer and logs a failure instead of returning it. Used in
// defer chains where the response is already committed. Nil closers are
// ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("failed to close", logging.ErrAttr(err))
	}
}

// Write writes data to w, logging a failure instead of returning it. Once a
// download body is partially written there is nothing useful to send the
// client anyway. Nil writers are ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("failed to write", logging.ErrAttr(err))
	}
}

// Copy streams src into dst and logs a failure instead of returning it.
func Copy(ctx context.Context, dst io.Writer, src io.Reader) {
	if _, err := io.Copy(dst, src); err != nil {
		logging.From(ctx).Error("failed to copy", logging.ErrAttr(err))
	}
}
