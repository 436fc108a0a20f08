package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/service/export"
	"github.com/secmon-lab/talos/pkg/usecase"
	"github.com/secmon-lab/talos/pkg/utils/errutil"
	"github.com/secmon-lab/talos/pkg/utils/logging"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// respondError maps application errors to HTTP statuses and renders a JSON
// error document. Client errors carry the validation message; server
// failures are logged and captured but never leak details.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, model.ErrInvalidAssessment), errors.Is(err, usecase.ErrInvalidArgument):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		status = http.StatusNotFound
		message = "assessment not found"
	case errors.Is(err, export.ErrNoData):
		status = http.StatusNotFound
		message = "no data to export"
	}

	if status >= http.StatusInternalServerError {
		errutil.Handle(ctx, err, "request failed")
	}

	respondJSON(ctx, w, status, map[string]string{"error": message})
}
