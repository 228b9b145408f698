// Package triage implements the document triage core: the per-request
// record model, the two-pass classification stage, the rule-validation
// stage, the routing engine, and the domain error taxonomy that binds
// them together. External capabilities (extraction, model inference)
// are consumed through the narrow interfaces in capabilities.go and
// never implemented here.
package triage

import (
	"encoding/json"
	"slices"
)

// DocumentType is the closed set of labels the classifier may assign.
type DocumentType string

// Document type labels.
const (
	TypeInvoice        DocumentType = "invoice"
	TypeContract       DocumentType = "contract"
	TypeW2Form         DocumentType = "w2_form"
	TypeMedicalRecord  DocumentType = "medical_record"
	TypeInsuranceClaim DocumentType = "insurance_claim"
	TypePurchaseOrder  DocumentType = "purchase_order"
	TypeUnknown        DocumentType = "unknown"
)

var documentTypes = []DocumentType{
	TypeInvoice,
	TypeContract,
	TypeW2Form,
	TypeMedicalRecord,
	TypeInsuranceClaim,
	TypePurchaseOrder,
	TypeUnknown,
}

// DocumentTypes returns the list of valid document type labels.
func DocumentTypes() []DocumentType {
	return documentTypes
}

// ParseDocumentType validates a string as a known document type label.
// Returns ErrInvalidDocumentType if the value is not recognized.
func ParseDocumentType(s string) (DocumentType, error) {
	v := DocumentType(s)
	if !slices.Contains(documentTypes, v) {
		return "", ErrInvalidDocumentType
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known document type.
func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseDocumentType(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// RouteDecision is the terminal outcome of one triage request. The
// orchestrator never acts on it; the caller decides whether to re-invoke.
type RouteDecision string

// Route decisions.
const (
	RouteAccept              RouteDecision = "ACCEPT"
	RouteRetryClassification RouteDecision = "RETRY_CLASSIFICATION"
	RouteRetryExtraction     RouteDecision = "RETRY_EXTRACTION"
	RouteHumanReview         RouteDecision = "HUMAN_REVIEW"
	RouteReject              RouteDecision = "REJECT"
	RouteFailPipeline        RouteDecision = "FAIL_PIPELINE"
)

// Decision is the validator's judgment of a classification against the
// rule catalog.
type Decision string

// Validation decisions.
const (
	DecisionValid   Decision = "VALID"
	DecisionWeak    Decision = "WEAK"
	DecisionInvalid Decision = "INVALID"
)

var decisions = []Decision{DecisionValid, DecisionWeak, DecisionInvalid}

// ParseDecision validates a string as a known validation decision.
func ParseDecision(s string) (Decision, error) {
	v := Decision(s)
	if !slices.Contains(decisions, v) {
		return "", ErrInvalidDecision
	}
	return v, nil
}

// ClassificationResult is the structured output of one classifier
// capability invocation.
type ClassificationResult struct {
	DocumentType     DocumentType `json:"document_type"`
	Confidence       float64      `json:"confidence"`
	AlternativeTypes []string     `json:"alternative_types"`
	Reasoning        string       `json:"reasoning"`
	KeyIndicators    []string     `json:"key_indicators"`
}

// ValidationResult is the structured output of one validator capability
// invocation. ValidatedLabel is copied verbatim from the classification
// stage; the validator has no authority to reassign it.
type ValidationResult struct {
	ValidatedLabel       DocumentType `json:"validated_label"`
	ClassifierConfidence float64      `json:"classifier_confidence"`
	Decision             Decision     `json:"decision"`
	MatchedRules         []string     `json:"matched_rules"`
	MissingRequiredRules []string     `json:"missing_required_rules"`
	ForbiddenRuleHits    []string     `json:"forbidden_rule_hits"`
	Justification        string       `json:"justification"`
}
