// Package pipeline composes the triage stages into one request-scoped
// execution: extract, classify, validate, route. The orchestration runs on
// a 3-node state graph with an immutable state bag; every stage consumes a
// record snapshot and emits a new one. Capability handles are long-lived
// and shared; everything else lives and dies with the request.
package pipeline

import "github.com/docpipe/triage/internal/triage"

// State bag keys.
const (
	KeyRecord     = "triage_record"
	KeySourcePath = "source_path"
	KeyValidation = "validation_result"
)

// Result is the terminal output of one pipeline execution. A run that raised
// a domain error carries the error and a route resolved from it; a clean run
// carries the validation judgment and a route resolved from record state. A
// run rejected by the decision-quality gate carries both.
type Result struct {
	Record     triage.Record            `json:"record"`
	Validation *triage.ValidationResult `json:"validation,omitempty"`
	Err        *triage.Error            `json:"-"`
	Route      triage.RouteDecision     `json:"route"`
}
