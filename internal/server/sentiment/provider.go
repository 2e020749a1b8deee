// Package sentiment classifies text through an external provider and
// normalizes provider output to one of three labels at the boundary.
package sentiment

import (
	"context"
	"strings"
)

// Normalized sentiment labels. Everything a provider returns is reduced to
// one of these before crossing into the core.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Provider classifies a text and returns a normalized label.
type Provider interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// normalizeLabel maps free-form provider output onto the known labels.
// Unrecognized output falls back to neutral rather than failing the request.
func normalizeLabel(raw string) string {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, LabelPositive):
		return LabelPositive
	case strings.Contains(s, LabelNegative):
		return LabelNegative
	default:
		return LabelNeutral
	}
}
