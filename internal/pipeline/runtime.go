package pipeline

import (
	"log/slog"
	"time"

	"github.com/docpipe/triage/internal/triage"
)

// Runtime bundles the long-lived dependencies the pipeline nodes require:
// the capability handles and stage instances built once at composition time
// and reused, read-only, across concurrent requests.
type Runtime struct {
	Extractor triage.Extractor
	Classify  *triage.ClassificationStage
	Validate  *triage.ValidationStage

	// Timeout bounds one full pipeline execution. Zero disables the bound;
	// a deadline hit inside a model call surfaces as a model invocation
	// failure, not a hang.
	Timeout time.Duration

	Logger *slog.Logger
}
