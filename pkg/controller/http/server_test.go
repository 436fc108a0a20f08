package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/secmon-lab/talos/pkg/controller/http"
	"github.com/secmon-lab/talos/pkg/domain/interfaces"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/repository/memory"
	"github.com/secmon-lab/talos/pkg/usecase"
)

func setupServer(t *testing.T) (*httpctrl.Server, interfaces.Repository) {
	t.Helper()

	repo := memory.New()
	srv, err := httpctrl.New(usecase.New(repo))
	gt.NoError(t, err).Required()
	return srv, repo
}

func doJSON(t *testing.T, srv *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAssessmentEndpoint(t *testing.T) {
	t.Run("accepts a valid report", func(t *testing.T) {
		srv, repo := setupServer(t)

		rec := doJSON(t, srv, http.MethodPost, "/api/assessments", map[string]any{
			"aiTool":          "chatgpt",
			"riskType":        "Misinformation",
			"severity":        "High",
			"description":     "made up citations",
			"reportRequested": true,
		})

		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var created model.RiskAssessment
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created)).Required()
		gt.Value(t, created.AITool).Equal("ChatGPT/OpenAI")
		gt.Value(t, created.ID.String()).NotEqual("")
		gt.Value(t, created.CreatedAt.IsZero()).Equal(false)

		stored, err := repo.Assessment().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(1)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		srv, _ := setupServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/assessments", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("rejects a report without a tool", func(t *testing.T) {
		srv, repo := setupServer(t)

		rec := doJSON(t, srv, http.MethodPost, "/api/assessments", map[string]any{
			"aiTool":   "  ",
			"riskType": "Misinformation",
			"severity": "High",
		})

		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var doc map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc)).Required()
		gt.Value(t, strings.Contains(doc["error"], "aiTool")).Equal(true)

		stored, err := repo.Assessment().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(0)
	})

	t.Run("rejects an unknown severity", func(t *testing.T) {
		srv, _ := setupServer(t)

		rec := doJSON(t, srv, http.MethodPost, "/api/assessments", map[string]any{
			"aiTool":   "ChatGPT",
			"riskType": "Misinformation",
			"severity": "Catastrophic",
		})

		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestListAssessmentsEndpoint(t *testing.T) {
	srv, repo := setupServer(t)
	ctx := context.Background()

	for i, tool := range []string{"ChatGPT/OpenAI", "Tesla Autopilot"} {
		_, err := repo.Assessment().Create(ctx, &model.RiskAssessment{
			AITool:    tool,
			RiskType:  types.RiskTypeBias,
			Severity:  types.SeverityLow,
			CreatedAt: time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC),
		})
		gt.NoError(t, err).Required()
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/assessments", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Assessments []*model.RiskAssessment `json:"assessments"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Array(t, resp.Assessments).Length(2)
	gt.Value(t, resp.Assessments[0].AITool).Equal("Tesla Autopilot")
}

func TestGetAssessmentEndpoint(t *testing.T) {
	t.Run("returns a stored report", func(t *testing.T) {
		srv, repo := setupServer(t)

		created, err := repo.Assessment().Create(context.Background(), &model.RiskAssessment{
			AITool:   "Amazon Alexa",
			RiskType: types.RiskTypePrivacy,
			Severity: types.SeverityMedium,
		})
		gt.NoError(t, err).Required()

		rec := doJSON(t, srv, http.MethodGet, "/api/assessments/"+created.ID.String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var got model.RiskAssessment
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got)).Required()
		gt.Value(t, got.ID).Equal(created.ID)
	})

	t.Run("unknown ID returns 404 with a JSON error", func(t *testing.T) {
		srv, _ := setupServer(t)

		rec := doJSON(t, srv, http.MethodGet, "/api/assessments/"+types.NewAssessmentID().String(), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)

		var doc map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc)).Required()
		gt.Value(t, doc["error"]).Equal("assessment not found")
	})
}

func TestStatsEndpoint(t *testing.T) {
	srv, repo := setupServer(t)

	_, err := repo.Assessment().Create(context.Background(), &model.RiskAssessment{
		AITool:   "ChatGPT/OpenAI",
		RiskType: types.RiskTypeBias,
		Severity: types.SeverityCritical,
	})
	gt.NoError(t, err).Required()

	rec := doJSON(t, srv, http.MethodGet, "/api/stats", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var dash struct {
		Summary struct {
			Total              int     `json:"total"`
			CriticalPercentage float64 `json:"criticalPercentage"`
		} `json:"summary"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash)).Required()
	gt.Value(t, dash.Summary.Total).Equal(1)
	gt.Value(t, dash.Summary.CriticalPercentage).Equal(100.0)
}

func TestReferenceEndpoints(t *testing.T) {
	srv, repo := setupServer(t)
	ctx := context.Background()

	err := repo.Mitigation().Put(ctx, &model.MitigationStrategy{
		RiskType:           types.RiskTypeBias,
		Severity:           types.SeverityHigh,
		Title:              "Bias audits",
		Difficulty:         types.DifficultyMedium,
		EffectivenessScore: 8,
	})
	gt.NoError(t, err).Required()

	err = repo.Factor().Put(ctx, &model.RiskFactor{
		RiskType:            types.RiskTypeBias,
		FactorName:          "Unrepresentative training data",
		ImpactLevel:         types.ImpactLevelHigh,
		FrequencyPercentage: 65.5,
	})
	gt.NoError(t, err).Required()

	t.Run("mitigations with filter", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/mitigations?riskType=Bias%2FDiscrimination&severity=High", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Strategies []*model.MitigationStrategy `json:"strategies"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp.Strategies).Length(1)
		gt.Value(t, resp.Strategies[0].Title).Equal("Bias audits")
	})

	t.Run("unknown riskType filter is a client error", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/mitigations?riskType=nonsense", nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("factors", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/factors", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Factors []*model.RiskFactor `json:"factors"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Array(t, resp.Factors).Length(1)
	})
}

func TestExportEndpoint(t *testing.T) {
	t.Run("downloads an attachment", func(t *testing.T) {
		srv, repo := setupServer(t)

		_, err := repo.Assessment().Create(context.Background(), &model.RiskAssessment{
			AITool:   "ChatGPT/OpenAI",
			RiskType: types.RiskTypeBias,
			Severity: types.SeverityLow,
		})
		gt.NoError(t, err).Required()

		rec := doJSON(t, srv, http.MethodGet, "/api/export?dataType=assessments&format=csv", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("text/csv")

		disposition := rec.Header().Get("Content-Disposition")
		gt.Value(t, strings.Contains(disposition, "attachment")).Equal(true)
		gt.Value(t, strings.Contains(disposition, "ai-risk-assessments-")).Equal(true)
		gt.Value(t, strings.Contains(rec.Body.String(), `"ChatGPT/OpenAI"`)).Equal(true)
	})

	t.Run("defaults to the combined JSON export", func(t *testing.T) {
		srv, repo := setupServer(t)

		_, err := repo.Assessment().Create(context.Background(), &model.RiskAssessment{
			AITool:   "ChatGPT/OpenAI",
			RiskType: types.RiskTypeBias,
			Severity: types.SeverityLow,
		})
		gt.NoError(t, err).Required()

		rec := doJSON(t, srv, http.MethodGet, "/api/export", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.Value(t, strings.Contains(rec.Header().Get("Content-Disposition"), "ai-risk-all-")).Equal(true)
	})

	t.Run("empty store reports no data", func(t *testing.T) {
		srv, _ := setupServer(t)

		rec := doJSON(t, srv, http.MethodGet, "/api/export?dataType=assessments&format=json", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)

		var doc map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc)).Required()
		gt.Value(t, doc["error"]).Equal("no data to export")
	})

	t.Run("unknown format is a client error", func(t *testing.T) {
		srv, _ := setupServer(t)

		rec := doJSON(t, srv, http.MethodGet, "/api/export?format=xml", nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestCatalogEndpoint(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/catalog", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var catalog struct {
		Tools      []string `json:"tools"`
		RiskTypes  []string `json:"riskTypes"`
		Severities []string `json:"severities"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog)).Required()

	gt.Array(t, catalog.RiskTypes).Length(10)
	gt.Array(t, catalog.Severities).Length(4)
	gt.Value(t, catalog.Tools[0]).Equal("ChatGPT/OpenAI")
	gt.Value(t, catalog.Tools[len(catalog.Tools)-1]).Equal("Other")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestSPAFallback(t *testing.T) {
	srv, _ := setupServer(t)

	t.Run("root serves the app shell", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(rec.Body.String(), "AI Risk Assessment")).Equal(true)
	})

	t.Run("client-side routes fall back to the app shell", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/dashboard", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("text/html")
	})
}
