package triage

import (
	"context"
	"log/slog"
	"strings"
)

// SignalLimit caps the text excerpt handed to validation. The validator
// never receives full document content; the cap bounds token exposure and
// keeps validation auditable against the fixed rule set.
const SignalLimit = 1500

// NewSignals derives bounded structured signals from extracted content.
// The excerpt cap is applied here so no caller can hand validation more
// document text than the isolation invariant allows.
func NewSignals(chunks []string) Signals {
	return Signals{TextSnippet: head(strings.Join(chunks, "\n"), SignalLimit)}
}

// ValidationStage runs the rule-validation protocol against an injected
// validator capability using structured signals only. It has no authority
// to reclassify under any circumstance.
type ValidationStage struct {
	validator Validator
	catalog   *Catalog
	logger    *slog.Logger
}

// NewValidationStage creates a validation stage over the given catalog.
func NewValidationStage(validator Validator, catalog *Catalog, logger *slog.Logger) *ValidationStage {
	return &ValidationStage{
		validator: validator,
		catalog:   catalog,
		logger:    logger.With("stage", "validation"),
	}
}

// Validate looks up the rule set for the classified label (falling back to
// the unknown entry for unrecognized labels) and submits label, confidence,
// ambiguity flag, and bounded signals to the validator capability. A result
// that reassigns the label or omits a decision is a capability contract
// violation, not a business outcome.
func (s *ValidationStage) Validate(
	ctx context.Context,
	label DocumentType,
	confidence float64,
	ambiguous bool,
	signals Signals,
) (*ValidationResult, error) {
	signals.TextSnippet = head(signals.TextSnippet, SignalLimit)

	req := ValidationRequest{
		Label:      label,
		Confidence: confidence,
		Ambiguous:  ambiguous,
		Rules:      s.catalog.Rules(label),
		Signals:    signals,
	}

	result, err := s.validator.Validate(ctx, req)
	if err != nil {
		return nil, WrapError(KindModelInvocation, "validator invocation", err)
	}

	if result.ValidatedLabel != label {
		return nil, Errorf(
			KindRuleEvaluation,
			"validator reassigned label from %q to %q",
			label, result.ValidatedLabel,
		)
	}

	if _, err := ParseDecision(string(result.Decision)); err != nil {
		return nil, Errorf(KindRuleEvaluation, "validator returned decision %q", result.Decision)
	}

	s.logger.InfoContext(
		ctx, "validation complete",
		"label", label,
		"decision", result.Decision,
		"matched", len(result.MatchedRules),
		"missing", len(result.MissingRequiredRules),
	)

	return result, nil
}
