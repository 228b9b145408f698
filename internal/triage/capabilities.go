package triage

import "context"

// Extractor is the external extraction capability. It produces ordered text
// chunks from a source file. Failures surface as the ingestion or extraction
// kinds; the core never implements extraction itself.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]string, error)
}

// Classifier is the external classification model capability. The core
// consumes only its structured result; prompting and invocation mechanics
// live behind the implementation. Failures surface uniformly as the model
// invocation kinds, including caller-side timeouts.
type Classifier interface {
	Classify(ctx context.Context, instruction, content string) (*ClassificationResult, error)
}

// Signals is the bounded structured evidence passed to validation. It is
// the only document-derived input the validator ever sees.
type Signals struct {
	TextSnippet string `json:"text_snippet"`
}

// ValidationRequest carries everything the validator capability may see:
// the classified label, its confidence, the ambiguity flag, the applicable
// rules, and bounded signals. Raw document content is structurally absent.
type ValidationRequest struct {
	Label      DocumentType `json:"validated_label"`
	Confidence float64      `json:"classifier_confidence"`
	Ambiguous  bool         `json:"ambiguous"`
	Rules      []Rule       `json:"rules"`
	Signals    Signals      `json:"extracted_signals"`
}

// Validator is the external validation model capability. Failures surface
// uniformly as the model invocation kinds.
type Validator interface {
	Validate(ctx context.Context, req ValidationRequest) (*ValidationResult, error)
}
