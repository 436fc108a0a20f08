package http

import (
	"net/http"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

func (s *Server) listMitigationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	riskType := types.RiskType(r.URL.Query().Get("riskType"))
	severity := types.Severity(r.URL.Query().Get("severity"))

	strategies, err := s.uc.ListMitigations(ctx, riskType, severity)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	if strategies == nil {
		strategies = []*model.MitigationStrategy{}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"strategies": strategies})
}

func (s *Server) listFactorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	riskType := types.RiskType(r.URL.Query().Get("riskType"))

	factors, err := s.uc.ListFactors(ctx, riskType)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	if factors == nil {
		factors = []*model.RiskFactor{}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"factors": factors})
}
