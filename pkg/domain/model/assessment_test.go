package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

func validAssessment() *model.RiskAssessment {
	return &model.RiskAssessment{
		AITool:          "ChatGPT/OpenAI",
		RiskType:        types.RiskTypeBias,
		Severity:        types.SeverityHigh,
		Description:     "Model favors certain demographics in hiring answers",
		ContactEmail:    "reporter@example.com",
		ReportRequested: true,
	}
}

func TestRiskAssessment_Validate(t *testing.T) {
	t.Run("valid assessment passes", func(t *testing.T) {
		gt.NoError(t, validAssessment().Validate())
	})

	t.Run("empty aiTool is rejected", func(t *testing.T) {
		a := validAssessment()
		a.AITool = ""
		err := a.Validate()
		gt.Error(t, err)
		gt.B(t, errors.Is(err, model.ErrInvalidAssessment)).True()
	})

	t.Run("whitespace-only aiTool is rejected", func(t *testing.T) {
		a := validAssessment()
		a.AITool = "   "
		gt.Error(t, a.Validate())
	})

	t.Run("unrecognized riskType is rejected", func(t *testing.T) {
		a := validAssessment()
		a.RiskType = types.RiskType("Existential Dread")
		gt.Error(t, a.Validate())
	})

	t.Run("unrecognized severity is rejected", func(t *testing.T) {
		a := validAssessment()
		a.Severity = types.Severity("Severe")
		gt.Error(t, a.Validate())
	})

	t.Run("empty contactEmail is allowed", func(t *testing.T) {
		a := validAssessment()
		a.ContactEmail = ""
		gt.NoError(t, a.Validate())
	})

	t.Run("malformed contactEmail is rejected", func(t *testing.T) {
		a := validAssessment()
		a.ContactEmail = "not-an-address"
		gt.Error(t, a.Validate())
	})

	t.Run("optional description may be empty", func(t *testing.T) {
		a := validAssessment()
		a.Description = ""
		gt.NoError(t, a.Validate())
	})
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"USER@EXAMPLE.COM", true},
		{"", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user example@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			gt.Value(t, model.IsValidEmail(tt.email)).Equal(tt.want)
		})
	}
}

func TestRiskAssessment_Clone(t *testing.T) {
	a := validAssessment()
	a.ID = types.NewAssessmentID()

	clone := a.Clone()
	gt.Value(t, clone).Equal(a)

	clone.AITool = "Something Else"
	gt.Value(t, a.AITool).Equal("ChatGPT/OpenAI")

	var nilAssessment *model.RiskAssessment
	gt.Value(t, nilAssessment.Clone()).Nil()
}

func TestMitigationStrategy_Validate(t *testing.T) {
	valid := model.MitigationStrategy{
		RiskType:           types.RiskTypePrivacy,
		Severity:           types.SeverityCritical,
		Title:              "Data minimization review",
		Description:        "Audit collected fields and drop anything unused",
		Difficulty:         types.DifficultyMedium,
		EffectivenessScore: 8,
	}
	gt.NoError(t, valid.Validate())

	t.Run("score out of range", func(t *testing.T) {
		s := valid
		s.EffectivenessScore = 0
		gt.Error(t, s.Validate())
		s.EffectivenessScore = 11
		gt.Error(t, s.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		s := valid
		s.Title = " "
		gt.Error(t, s.Validate())
	})

	t.Run("invalid difficulty", func(t *testing.T) {
		s := valid
		s.Difficulty = types.Difficulty("Impossible")
		gt.Error(t, s.Validate())
	})
}

func TestRiskFactor_Validate(t *testing.T) {
	valid := model.RiskFactor{
		RiskType:            types.RiskTypeMisinformation,
		FactorName:          "Unverified training data",
		ImpactLevel:         types.ImpactLevelHigh,
		FrequencyPercentage: 62.5,
		Description:         "Sources ingested without provenance checks",
	}
	gt.NoError(t, valid.Validate())

	t.Run("frequency out of range", func(t *testing.T) {
		f := valid
		f.FrequencyPercentage = -0.1
		gt.Error(t, f.Validate())
		f.FrequencyPercentage = 100.1
		gt.Error(t, f.Validate())
	})

	t.Run("boundary frequencies are accepted", func(t *testing.T) {
		f := valid
		f.FrequencyPercentage = 0
		gt.NoError(t, f.Validate())
		f.FrequencyPercentage = 100
		gt.NoError(t, f.Validate())
	})

	t.Run("missing factor name", func(t *testing.T) {
		f := valid
		f.FactorName = ""
		gt.Error(t, f.Validate())
	})
}

func TestSnapshot_Counts(t *testing.T) {
	snap := &model.Snapshot{
		Assessments: []*model.RiskAssessment{validAssessment(), validAssessment()},
		Strategies:  []*model.MitigationStrategy{{Title: "x"}},
	}

	counts := snap.Counts()
	gt.Number(t, counts.Assessments).Equal(2)
	gt.Number(t, counts.Strategies).Equal(1)
	gt.Number(t, counts.Factors).Equal(0)
	gt.Number(t, snap.Total()).Equal(3)
}
