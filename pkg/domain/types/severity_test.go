package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		severity types.Severity
		want     bool
	}{
		{
			name:     "valid low",
			severity: types.SeverityLow,
			want:     true,
		},
		{
			name:     "valid medium",
			severity: types.SeverityMedium,
			want:     true,
		},
		{
			name:     "valid high",
			severity: types.SeverityHigh,
			want:     true,
		},
		{
			name:     "valid critical",
			severity: types.SeverityCritical,
			want:     true,
		},
		{
			name:     "lowercase is not valid",
			severity: types.Severity("critical"),
			want:     false,
		},
		{
			name:     "invalid severity",
			severity: types.Severity("Extreme"),
			want:     false,
		},
		{
			name:     "empty severity",
			severity: types.Severity(""),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.severity.IsValid()).True()
			} else {
				gt.B(t, tt.severity.IsValid()).False()
			}
		})
	}
}

func TestSeverity_Weight(t *testing.T) {
	tests := []struct {
		severity types.Severity
		want     int
	}{
		{types.SeverityLow, 1},
		{types.SeverityMedium, 2},
		{types.SeverityHigh, 3},
		{types.SeverityCritical, 4},
		{types.Severity("unknown"), 0},
		{types.Severity(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			gt.Number(t, tt.severity.Weight()).Equal(tt.want)
		})
	}
}

func TestSeverity_Order(t *testing.T) {
	all := types.AllSeverities()
	gt.Number(t, len(all)).Equal(4)

	// AllSeverities is ascending by weight
	for i := 1; i < len(all); i++ {
		gt.B(t, all[i-1].Weight() < all[i].Weight()).True()
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Severity
		wantErr bool
	}{
		{
			name:    "valid critical",
			input:   "Critical",
			want:    types.SeverityCritical,
			wantErr: false,
		},
		{
			name:    "valid low",
			input:   "Low",
			want:    types.SeverityLow,
			wantErr: false,
		},
		{
			name:    "invalid severity",
			input:   "Severe",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty severity",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseSeverity(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}
