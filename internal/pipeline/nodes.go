package pipeline

import (
	"context"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/docpipe/triage/internal/triage"
)

// ExtractNode returns a state node that runs the extractor capability over
// the source path and stores a record snapshot carrying the content chunks.
func ExtractNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		record, err := recordFromState(s)
		if err != nil {
			return s, err
		}

		path, err := pathFromState(s)
		if err != nil {
			return s, err
		}

		chunks, err := rt.Extractor.Extract(ctx, path)
		if err != nil {
			return s, err
		}

		rt.Logger.InfoContext(
			ctx, "extract node complete",
			"record_id", record.ID,
			"chunks", len(chunks),
		)

		return s.Set(KeyRecord, record.WithContent(chunks)), nil
	})
}

// ClassifyNode returns a state node that runs the two-pass classification
// stage and stores a record snapshot carrying the classification.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		record, err := recordFromState(s)
		if err != nil {
			return s, err
		}

		classification, err := rt.Classify.Classify(ctx, record.Content)
		if err != nil {
			return s, err
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"record_id", record.ID,
			"document_type", classification.DocumentType,
			"pass", classification.Details.Pass,
		)

		return s.Set(KeyRecord, record.WithClassification(classification)), nil
	})
}

// ValidateNode returns a state node that runs the rule-validation stage.
// It hands over the classified label, confidence, ambiguity flag, and the
// bounded signals derived from content, never the content itself.
func ValidateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		record, err := recordFromState(s)
		if err != nil {
			return s, err
		}

		if !record.Classified() {
			return s, triage.NewError(
				triage.KindInvalidPipelineState,
				"validate node reached without a classification",
			)
		}

		result, err := rt.Validate.Validate(
			ctx,
			record.DocumentType,
			record.Confidence,
			record.Details.Ambiguous,
			triage.NewSignals(record.Content),
		)
		if err != nil {
			return s, err
		}

		return s.Set(KeyValidation, result), nil
	})
}

func pathFromState(s state.State) (string, error) {
	val, ok := s.Get(KeySourcePath)
	if !ok {
		return "", triage.Errorf(triage.KindMissingStateField, "missing %s in state", KeySourcePath)
	}

	path, ok := val.(string)
	if !ok || path == "" {
		return "", triage.Errorf(triage.KindInvalidPipelineState, "%s is not a usable path", KeySourcePath)
	}

	return path, nil
}
