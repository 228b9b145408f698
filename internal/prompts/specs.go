package prompts

const classifySpec = `Respond with a JSON object matching this exact structure:

{
  "document_type": "<type>",
  "confidence": 0.0,
  "alternative_types": ["<type>", "<type>"],
  "reasoning": "<explanation>",
  "key_indicators": ["<indicator>", "<indicator>"]
}

Field constraints:
- document_type: Exactly one of invoice, contract, w2_form, medical_record,
  insurance_claim, purchase_order, unknown.
- confidence: A number between 0.0 and 1.0 reflecting classification certainty.
- alternative_types: Plausible alternative classifications when confidence is
  below 0.8, drawn from the allowed types excluding document_type. Empty array
  when confident.
- reasoning: Brief explanation of why the classification was chosen.
- key_indicators: Specific text or fields that indicated this document type
  (e.g. "INVOICE #", "W-2", "CLAIM NUMBER").

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Never invent a type outside the allowed set`

const validateSpec = `Respond with a JSON object matching this exact structure:

{
  "validated_label": "<label>",
  "classifier_confidence": 0.0,
  "decision": "<VALID|WEAK|INVALID>",
  "matched_rules": ["<rule-id>"],
  "missing_required_rules": ["<rule-id>"],
  "forbidden_rule_hits": ["<rule-id>"],
  "justification": "<explanation>"
}

Field constraints:
- validated_label: The input label, copied verbatim. Never a different value.
- classifier_confidence: The input confidence, copied verbatim.
- decision: VALID, WEAK, or INVALID. Never empty.
- matched_rules / missing_required_rules / forbidden_rule_hits: Rule ids from
  the provided rule set only.
- justification: Concise, factual, referencing rule ids.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Base the decision only on the provided signals and rules`

var specs = map[Stage]string{
	StageClassify: classifySpec,
	StageValidate: validateSpec,
}
