package normalize

import (
	"regexp"
	"strings"

	"github.com/secmon-lab/talos/pkg/domain/model"
	"github.com/secmon-lab/talos/pkg/domain/types"
)

// ToolOther is the catch-all label for tool names that match no known
// product keyword.
const ToolOther = "Other"

type keywordRule[T any] struct {
	keyword string
	target  T
}

// Keyword tables are ordered: the first matching keyword wins, so a label
// like "employment security" maps by its earliest rule.
var toolRules = []keywordRule[string]{
	{"chatgpt", "ChatGPT/OpenAI"},
	{"openai", "ChatGPT/OpenAI"},
	{"gpt", "ChatGPT/OpenAI"},
	{"tesla", "Tesla Autopilot"},
	{"autopilot", "Tesla Autopilot"},
	{"facial", "Facial Recognition Systems"},
	{"face recognition", "Facial Recognition Systems"},
	{"google", "Google AI/Bard"},
	{"bard", "Google AI/Bard"},
	{"alexa", "Amazon Alexa"},
	{"amazon", "Amazon Alexa"},
	{"netflix", "Netflix Recommendation"},
	{"social media", "Social Media Algorithms"},
	{"facebook", "Social Media Algorithms"},
	{"instagram", "Social Media Algorithms"},
	{"banking", "Banking AI Systems"},
	{"healthcare", "Healthcare AI Diagnostics"},
	{"medical", "Healthcare AI Diagnostics"},
}

var riskTypeRules = []keywordRule[types.RiskType]{
	{"trust", types.RiskTypeTrustErosion},
	{"reliability", types.RiskTypeTrustErosion},
	{"over-reliance", types.RiskTypeOverReliance},
	{"dependence", types.RiskTypeOverReliance},
	{"bias", types.RiskTypeBias},
	{"discrimination", types.RiskTypeBias},
	{"privacy", types.RiskTypePrivacy},
	{"data quality", types.RiskTypeDataQuality},
	{"data", types.RiskTypePrivacy},
	{"misinformation", types.RiskTypeMisinformation},
	{"fake news", types.RiskTypeMisinformation},
	{"job", types.RiskTypeJobDisplacement},
	{"employment", types.RiskTypeJobDisplacement},
	{"security", types.RiskTypeSecurity},
	{"hack", types.RiskTypeSecurity},
	{"transparency", types.RiskTypeTransparency},
	{"black box", types.RiskTypeTransparency},
	{"manipulation", types.RiskTypeManipulation},
}

var severityRules = []keywordRule[types.Severity]{
	{"low", types.SeverityLow},
	{"minor", types.SeverityLow},
	{"medium", types.SeverityMedium},
	{"moderate", types.SeverityMedium},
	{"high", types.SeverityHigh},
	{"severe", types.SeverityHigh},
	{"critical", types.SeverityCritical},
	{"extreme", types.SeverityCritical},
}

var spacePattern = regexp.MustCompile(`\s+`)

// Text lowercases, trims, and collapses runs of whitespace to a single
// space.
func Text(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return spacePattern.ReplaceAllString(s, " ")
}

// Tool maps a free-text tool label to its canonical product name. Labels
// matching no keyword become ToolOther.
func Tool(name string) string {
	cleaned := Text(name)
	if cleaned == "" {
		return ToolOther
	}

	if target, ok := matchTool(cleaned); ok {
		return target
	}

	return ToolOther
}

// CanonicalTool collapses whitespace in a user-typed tool label and
// replaces it with the catalog product name when a keyword matches.
// Unmatched labels keep the user's wording.
func CanonicalTool(label string) string {
	collapsed := spacePattern.ReplaceAllString(strings.TrimSpace(label), " ")
	if collapsed == "" {
		return ""
	}

	if target, ok := matchTool(strings.ToLower(collapsed)); ok {
		return target
	}

	return collapsed
}

func matchTool(cleaned string) (string, bool) {
	for _, rule := range toolRules {
		if strings.Contains(cleaned, rule.keyword) {
			return rule.target, true
		}
	}
	return "", false
}

// CatalogTools returns the distinct canonical product names in catalog
// order, ending with ToolOther.
func CatalogTools() []string {
	out := make([]string, 0, len(toolRules)+1)
	seen := make(map[string]bool, len(toolRules))
	for _, rule := range toolRules {
		if seen[rule.target] {
			continue
		}
		seen[rule.target] = true
		out = append(out, rule.target)
	}
	return append(out, ToolOther)
}

// RiskType maps a free-text risk label to the closed risk type set. The
// second return value reports whether any keyword matched.
func RiskType(label string) (types.RiskType, bool) {
	cleaned := Text(label)
	if cleaned == "" {
		return "", false
	}

	// Exact display labels pass through without keyword scanning
	if rt := types.RiskType(strings.TrimSpace(label)); rt.IsValid() {
		return rt, true
	}

	for _, rule := range riskTypeRules {
		if strings.Contains(cleaned, rule.keyword) {
			return rule.target, true
		}
	}

	return "", false
}

// Severity maps a free-text severity label to the closed severity set,
// defaulting to Medium when nothing matches.
func Severity(label string) types.Severity {
	cleaned := Text(label)

	if sv := types.Severity(strings.TrimSpace(label)); sv.IsValid() {
		return sv
	}

	for _, rule := range severityRules {
		if strings.Contains(cleaned, rule.keyword) {
			return rule.target
		}
	}

	return types.SeverityMedium
}

// Email returns the lowercased address when it is well-formed, and an
// empty string otherwise.
func Email(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if !model.IsValidEmail(addr) {
		return ""
	}
	return strings.ToLower(addr)
}
