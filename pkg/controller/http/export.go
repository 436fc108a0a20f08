package http

import (
	"fmt"
	"net/http"

	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/utils/safe"
)

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	dataType := types.ExportDataType(q.Get("dataType"))
	if dataType == "" {
		dataType = types.ExportDataAll
	}
	format := types.ExportFormat(q.Get("format"))
	if format == "" {
		format = types.ExportFormatJSON
	}
	clean := q.Get("clean") == "true"

	result, err := s.uc.ExportData(ctx, dataType, format, clean)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	safe.Write(ctx, w, result.Data)
}
