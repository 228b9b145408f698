package triage

import (
	"context"
	"log/slog"
	"strings"
)

// Two-pass classification gate. The quick pass decides whether the more
// expensive detailed pass is warranted at all; it is distinct from the 0.60
// routing bar, which is the final business threshold for unattended
// acceptance.
const (
	QuickPassThreshold = 0.8
	QuickPassLimit     = 2000

	// Ambiguity threshold on alternative types for the detailed pass. Two
	// alternatives are an honest second guess; more means the model is
	// enumerating rather than deciding.
	maxAlternatives = 2
)

// StageInstructions carries the system instructions the stage hands to the
// classifier capability per pass. The core treats them as opaque text.
type StageInstructions struct {
	Quick    string
	Detailed string
}

// Classification is the outcome of the two-pass gate, ready to be applied
// to a record snapshot.
type Classification struct {
	DocumentType DocumentType
	Confidence   float64
	Details      Details
}

// ClassificationStage runs the two-pass confidence-gated classification
// protocol against an injected classifier capability.
type ClassificationStage struct {
	classifier   Classifier
	instructions StageInstructions
	logger       *slog.Logger
}

// NewClassificationStage creates a classification stage. The capability
// handle is long-lived and shared across requests; the stage itself holds
// no per-request state.
func NewClassificationStage(
	classifier Classifier,
	instructions StageInstructions,
	logger *slog.Logger,
) *ClassificationStage {
	return &ClassificationStage{
		classifier:   classifier,
		instructions: instructions,
		logger:       logger.With("stage", "classification"),
	}
}

// Classify runs the two-pass protocol over the extracted content chunks.
// Empty content is valid input: it flows through and typically resolves to
// a low-confidence result downstream, not an extraction error.
func (s *ClassificationStage) Classify(ctx context.Context, content []string) (*Classification, error) {
	text := strings.Join(content, "\n")

	quick, err := s.classifier.Classify(ctx, s.instructions.Quick, head(text, QuickPassLimit))
	if err != nil {
		return nil, WrapError(KindModelInvocation, "quick pass", err)
	}

	s.logger.InfoContext(
		ctx, "quick pass complete",
		"document_type", quick.DocumentType,
		"confidence", quick.Confidence,
	)

	if quick.Confidence >= QuickPassThreshold {
		return apply(quick, 1, false), nil
	}

	detailed, err := s.classifier.Classify(ctx, s.instructions.Detailed, text)
	if err != nil {
		return nil, WrapError(KindModelInvocation, "detailed pass", err)
	}

	ambiguous := detailed.Confidence < QuickPassThreshold ||
		len(detailed.AlternativeTypes) > maxAlternatives

	s.logger.InfoContext(
		ctx, "detailed pass complete",
		"document_type", detailed.DocumentType,
		"confidence", detailed.Confidence,
		"ambiguous", ambiguous,
	)

	return apply(detailed, 2, ambiguous), nil
}

func apply(result *ClassificationResult, pass int, ambiguous bool) *Classification {
	return &Classification{
		DocumentType: result.DocumentType,
		Confidence:   result.Confidence,
		Details: Details{
			Reasoning:        result.Reasoning,
			KeyIndicators:    result.KeyIndicators,
			AlternativeTypes: result.AlternativeTypes,
			Pass:             pass,
			Ambiguous:        ambiguous,
		},
	}
}

func head(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	// Clip on a rune boundary so a multi-byte character is never split.
	for limit > 0 && text[limit]&0xC0 == 0x80 {
		limit--
	}
	return text[:limit]
}
