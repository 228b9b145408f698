package triage

import "github.com/google/uuid"

// Details carries the structured reasoning captured by a classification pass.
// Ambiguous is only meaningful after pass 2; pass 1 acceptance always records
// it as false.
type Details struct {
	Reasoning        string   `json:"reasoning"`
	KeyIndicators    []string `json:"key_indicators"`
	AlternativeTypes []string `json:"alternative_types"`
	Pass             int      `json:"pass"`
	Ambiguous        bool     `json:"ambiguous"`
}

// Record is the per-request triage state. It is treated as an immutable
// snapshot: stages never mutate a record in place, they derive a new one
// through the With* methods. A record never outlives its request.
type Record struct {
	ID           uuid.UUID    `json:"id"`
	Content      []string     `json:"-"`
	DocumentType DocumentType `json:"document_type,omitempty"`
	Confidence   float64      `json:"confidence_score"`
	Details      Details      `json:"classification_details"`
}

// NewRecord creates an empty record for one triage request.
func NewRecord(id uuid.UUID) Record {
	return Record{ID: id}
}

// WithContent returns a copy of the record with extracted content chunks.
func (r Record) WithContent(chunks []string) Record {
	r.Content = chunks
	return r
}

// WithClassification returns a copy of the record carrying a completed
// classification pass. DocumentType and Confidence are only ever written
// together, preserving the set-iff-classified invariant.
func (r Record) WithClassification(c *Classification) Record {
	r.DocumentType = c.DocumentType
	r.Confidence = c.Confidence
	r.Details = c.Details
	return r
}

// Classified reports whether a classification pass has written the record.
func (r Record) Classified() bool {
	return r.DocumentType != ""
}
