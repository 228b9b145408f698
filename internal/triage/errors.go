package triage

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for value parsing.
var (
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrInvalidDecision     = errors.New("invalid validation decision")
)

// Kind identifies a domain error within the pipeline taxonomy. The routing
// engine dispatches on kind identity through the group helpers below rather
// than on any wrapping relationship, so the priority order in route.go stays
// explicit and exhaustive.
type Kind string

// Domain error kinds.
const (
	// Ingestion
	KindFileIngestion       Kind = "FILE_INGESTION_FAILED"
	KindUnsupportedFileType Kind = "UNSUPPORTED_FILE_TYPE"

	// Extraction
	KindTextExtraction Kind = "TEXT_EXTRACTION_FAILED"
	KindOCRFailure     Kind = "OCR_FAILED"

	// Model invocation
	KindModelInvocation      Kind = "MODEL_INVOCATION_FAILED"
	KindInvalidModelResponse Kind = "INVALID_MODEL_RESPONSE"

	// Pipeline state
	KindInvalidPipelineState Kind = "INVALID_PIPELINE_STATE"
	KindMissingStateField    Kind = "MISSING_STATE_FIELD"

	// Classification quality
	KindClassification Kind = "CLASSIFICATION_FAILED"
	KindLowConfidence  Kind = "LOW_CONFIDENCE"

	// Validation
	KindValidation          Kind = "VALIDATION_FAILED"
	KindRuleEvaluation      Kind = "RULE_EVALUATION_FAILED"
	KindAmbiguousValidation Kind = "AMBIGUOUS_VALIDATION"

	// Routing
	KindRoutingDecision Kind = "ROUTING_DECISION_FAILED"
)

// IsExtraction reports whether the kind belongs to the extraction group.
// OCR failure is a sub-kind of text extraction.
func (k Kind) IsExtraction() bool {
	return k == KindTextExtraction || k == KindOCRFailure
}

// IsModel reports whether the kind belongs to the model invocation group.
// An invalid model response is a sub-kind of model invocation failure.
func (k Kind) IsModel() bool {
	return k == KindModelInvocation || k == KindInvalidModelResponse
}

// IsState reports whether the kind belongs to the pipeline state group.
// A missing state field is a sub-kind of invalid pipeline state.
func (k Kind) IsState() bool {
	return k == KindInvalidPipelineState || k == KindMissingStateField
}

// IsValidation reports whether the kind belongs to the validation group.
func (k Kind) IsValidation() bool {
	return k == KindValidation || k == KindRuleEvaluation || k == KindAmbiguousValidation
}

// Error is a pipeline domain error. Stage-local failures are wrapped into
// the nearest kind before leaving the stage; raw infrastructure errors are
// never surfaced past a stage boundary.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a domain error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a domain error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError wraps a cause into a domain error of the given kind. If the
// cause is already a domain error, its kind is preserved and the new
// message is prepended as context.
func WrapError(kind Kind, message string, cause error) *Error {
	var domain *Error
	if errors.As(cause, &domain) {
		kind = domain.Kind
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the domain kind from an error chain. The second return
// is false for non-domain errors, which the orchestrator must not catch.
func KindOf(err error) (Kind, bool) {
	var domain *Error
	if errors.As(err, &domain) {
		return domain.Kind, true
	}
	return "", false
}

// IsDomain reports whether the error belongs to the pipeline taxonomy.
func IsDomain(err error) bool {
	_, ok := KindOf(err)
	return ok
}

// MapHTTPStatus maps a pipeline error to the HTTP status reported by the
// boundary. The mapping is independent of the route decision but must
// agree with it in spirit: nothing that routes to ACCEPT maps to an error
// status.
func MapHTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch {
	case kind == KindFileIngestion:
		return http.StatusBadRequest
	case kind == KindUnsupportedFileType:
		return http.StatusUnsupportedMediaType
	case kind.IsExtraction():
		return http.StatusUnprocessableEntity
	case kind.IsModel():
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
