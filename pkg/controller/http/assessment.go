package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/usecase"
)

func (s *Server) submitAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input usecase.SubmitAssessmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	created, err := s.uc.SubmitAssessment(ctx, &input)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, created)
}

func (s *Server) listAssessmentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assessments, err := s.uc.ListAssessments(ctx)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	if assessments == nil {
		assessments = []*model.RiskAssessment{}
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"assessments": assessments})
}

func (s *Server) getAssessmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := types.AssessmentID(chi.URLParam(r, "assessmentID"))
	assessment, err := s.uc.GetAssessment(ctx, id)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, assessment)
}
