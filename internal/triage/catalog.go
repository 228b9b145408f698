package triage

// Rule is one validation rule description within the catalog. Required
// rules must be evidenced by the extracted signals; forbidden rules flag
// evidence that contradicts the label. Every type carries exactly one
// threshold rule stating its auto-routing confidence bar.
type Rule struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Catalog is the static mapping from document type to its validation rule
// set. It is immutable after construction; lookups for unrecognized labels
// fall back to the unknown entry, which forbids auto-routing outright.
type Catalog struct {
	rules map[DocumentType][]Rule
}

// Rules returns the ordered rule set for a label, falling back to the
// unknown entry when the label has no catalog entry of its own.
func (c *Catalog) Rules(label DocumentType) []Rule {
	if rules, ok := c.rules[label]; ok {
		return rules
	}
	return c.rules[TypeUnknown]
}

// DefaultCatalog builds the built-in rule catalog covering every label in
// the closed document type set.
func DefaultCatalog() *Catalog {
	return &Catalog{rules: map[DocumentType][]Rule{
		TypeInvoice: {
			{ID: "invoice.identity", Description: "Required: signals reference an invoice number or the word INVOICE in a header position."},
			{ID: "invoice.vendor", Description: "Required: a vendor or billing party is identifiable."},
			{ID: "invoice.amounts", Description: "Required: at least one monetary amount or line item total appears."},
			{ID: "invoice.no_tax_form", Description: "Forbidden: IRS form markers such as W-2 box numbering."},
			{ID: "invoice.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypeContract: {
			{ID: "contract.parties", Description: "Required: two or more named parties bound by the document."},
			{ID: "contract.terms", Description: "Required: legal terms, obligations, or an effective date."},
			{ID: "contract.execution", Description: "Required: signature blocks or execution language."},
			{ID: "contract.no_claim", Description: "Forbidden: insurance claim or policy numbers."},
			{ID: "contract.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypeW2Form: {
			{ID: "w2.form_marker", Description: "Required: an explicit W-2 or IRS form designation."},
			{ID: "w2.boxes", Description: "Required: numbered wage and tax boxes (1 through 12)."},
			{ID: "w2.employer", Description: "Required: employer identification details."},
			{ID: "w2.no_line_items", Description: "Forbidden: commercial line items or purchase order numbers."},
			{ID: "w2.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypeMedicalRecord: {
			{ID: "medical.patient", Description: "Required: patient identity or chart reference."},
			{ID: "medical.clinical", Description: "Required: diagnoses, procedures, or prescription details."},
			{ID: "medical.provider", Description: "Required: a care provider or facility is identifiable."},
			{ID: "medical.no_po", Description: "Forbidden: purchase order approval chains."},
			{ID: "medical.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypeInsuranceClaim: {
			{ID: "claim.number", Description: "Required: a claim number is present."},
			{ID: "claim.policy", Description: "Required: a policy number or coverage reference."},
			{ID: "claim.incident", Description: "Required: incident or loss details."},
			{ID: "claim.no_wage_boxes", Description: "Forbidden: IRS wage and tax box numbering."},
			{ID: "claim.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypePurchaseOrder: {
			{ID: "po.number", Description: "Required: a purchase order number is present."},
			{ID: "po.vendor", Description: "Required: a vendor and ordering party are identifiable."},
			{ID: "po.line_items", Description: "Required: line items with quantities or a delivery date."},
			{ID: "po.no_diagnoses", Description: "Forbidden: clinical diagnoses or prescription details."},
			{ID: "po.threshold", Description: "Auto-routing requires classifier confidence of at least 0.60."},
		},
		TypeUnknown: {
			{ID: "unknown.manual_review", Description: "Route to manual review; auto-routing is never permitted for unknown documents regardless of confidence."},
		},
	}}
}
