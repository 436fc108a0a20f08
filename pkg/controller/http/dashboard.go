package http

import (
	"net/http"
)

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboard, err := s.uc.Stats(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, dashboard)
}
