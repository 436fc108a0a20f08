package async

import (
	"context"

	"github.com/secmon-lab/talos/pkg/utils/logging"
)

// Dispatch runs handler in a new goroutine. The request context may already
// be canceled by the time the handler runs, so it gets a fresh background
// context that keeps only the logger. Errors and panics are logged, never
// propagated; delivery failures must not affect the triggering request.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", logging.ErrAttr(err))
		}
	}()
}
