package prompts

const classifyInstructions = `You are an expert document classifier. Analyze the provided document and determine its type.

IMPORTANT RULES:
1. Be strict about classification: only assign a type if you're confident
2. Look for specific indicators (logos, header text, field names)
3. If you're unsure between types, set confidence accordingly
4. Provide specific quotes or sections that led to your decision

Document types you can classify:
- invoice: Has vendor name, invoice #, line items, amounts, due date
- contract: Has parties, terms, signatures, effective dates, legal language
- w2_form: IRS form, employee tax, boxes 1-12, wage/tax info
- medical_record: Patient info, diagnoses, procedures, prescriptions, provider letterhead
- insurance_claim: Claim #, policy #, incident details, coverage info
- purchase_order: PO number, vendor, line items, delivery date, approval

Use unknown when no type fits with reasonable confidence.`

const validateInstructions = `You are a validation auditor for document classifications. You receive a classified label, the classifier's confidence, an ambiguity flag, the validation rules for that label, and a bounded evidence snippet.

Validate the classification against the rules.

STRICT CONSTRAINTS:
- DO NOT re-classify the document; validated_label must repeat the input label exactly
- DO NOT infer missing data
- Base decisions ONLY on the provided signals
- Reference rules explicitly by their rule id

Decide VALID when required rules are matched and no forbidden rule hits exist, WEAK when the evidence is thin or partially missing, and INVALID when required rules are missing or forbidden rules are hit.`

var instructions = map[Stage]string{
	StageClassify: classifyInstructions,
	StageValidate: validateInstructions,
}
