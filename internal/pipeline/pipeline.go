package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/docpipe/triage/internal/triage"
)

// Execute runs the full triage pipeline for one document. It builds the
// state graph (extract → classify → validate), executes it over a fresh
// record, and resolves the route. A domain-kind failure in any stage
// short-circuits to the routing engine with the raised error in place of
// record state; non-domain errors propagate to the caller uncaught.
func Execute(ctx context.Context, rt *Runtime, recordID uuid.UUID, path string) (*Result, error) {
	if rt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.Timeout)
		defer cancel()
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	record := triage.NewRecord(recordID)

	initial := state.New(nil)
	initial = initial.Set(KeyRecord, record)
	initial = initial.Set(KeySourcePath, path)

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		// The graph returns the state it reached before failing. Route
		// with whatever the completed stages recorded, not the pristine
		// record, so a late failure keeps its classification.
		if rec, rerr := recordFromState(final); rerr == nil {
			record = rec
		}
		return routeFailure(rt, record, err)
	}

	record, validation, err := extractResult(final)
	if err != nil {
		return routeFailure(rt, record, err)
	}

	if verr := gateValidation(record, validation); verr != nil {
		result, rerr := routeFailure(rt, record, verr)
		if rerr != nil {
			return nil, rerr
		}
		result.Validation = validation
		return result, nil
	}

	route, err := triage.Route(record, nil)
	if err != nil {
		return nil, err
	}

	rt.Logger.InfoContext(
		ctx, "pipeline complete",
		"record_id", record.ID,
		"document_type", record.DocumentType,
		"confidence", record.Confidence,
		"decision", validation.Decision,
		"route", route,
	)

	return &Result{Record: record, Validation: validation, Route: route}, nil
}

// gateValidation converts a decision-quality failure into a domain error so
// the routing engine sees it with validation priority. A weak decision alone
// flows through to the confidence bar; weak plus an ambiguous classification
// does not.
func gateValidation(record triage.Record, validation *triage.ValidationResult) *triage.Error {
	switch {
	case validation.Decision == triage.DecisionInvalid:
		return triage.Errorf(
			triage.KindValidation,
			"rules rejected label %q", record.DocumentType,
		)
	case validation.Decision == triage.DecisionWeak && record.Details.Ambiguous:
		return triage.Errorf(
			triage.KindAmbiguousValidation,
			"ambiguous classification with weak rule support for %q", record.DocumentType,
		)
	default:
		return nil
	}
}

// routeFailure feeds a domain error into the routing engine in place of
// record state. This is the single place permitted to catch domain errors
// broadly; anything outside the taxonomy passes through untouched.
func routeFailure(rt *Runtime, record triage.Record, err error) (*Result, error) {
	var domain *triage.Error
	if !errors.As(err, &domain) {
		return nil, err
	}

	route, rerr := triage.Route(record, domain)
	if rerr != nil {
		return nil, rerr
	}

	rt.Logger.Warn(
		"pipeline short-circuited",
		"record_id", record.ID,
		"kind", domain.Kind,
		"route", route,
	)

	return &Result{Record: record, Err: domain, Route: route}, nil
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("document-triage")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("extract", ExtractNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("validate", ValidateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("extract", "classify", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("classify", "validate", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("extract"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("validate"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (triage.Record, *triage.ValidationResult, error) {
	record, err := recordFromState(s)
	if err != nil {
		return triage.Record{}, nil, err
	}

	val, ok := s.Get(KeyValidation)
	if !ok {
		return record, nil, triage.Errorf(
			triage.KindMissingStateField,
			"missing %s in final state", KeyValidation,
		)
	}

	validation, ok := val.(*triage.ValidationResult)
	if !ok {
		return record, nil, triage.Errorf(
			triage.KindInvalidPipelineState,
			"%s is not a validation result", KeyValidation,
		)
	}

	return record, validation, nil
}

func recordFromState(s state.State) (triage.Record, error) {
	val, ok := s.Get(KeyRecord)
	if !ok {
		return triage.Record{}, triage.Errorf(
			triage.KindMissingStateField,
			"missing %s in state", KeyRecord,
		)
	}

	record, ok := val.(triage.Record)
	if !ok {
		return triage.Record{}, triage.Errorf(
			triage.KindInvalidPipelineState,
			"%s is not a record", KeyRecord,
		)
	}

	return record, nil
}
