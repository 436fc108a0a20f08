package http

import (
	"net/http"

	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/service/normalize"
)

// catalogHandler serves the closed value sets the submission form and the
// export dialog are built from.
func (s *Server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]any{
		"tools":           normalize.CatalogTools(),
		"riskTypes":       types.AllRiskTypes(),
		"severities":      types.AllSeverities(),
		"impactLevels":    types.AllImpactLevels(),
		"difficulties":    types.AllDifficulties(),
		"exportFormats":   types.AllExportFormats(),
		"exportDataTypes": types.AllExportDataTypes(),
	})
}
