package agents

import (
	"testing"

	"github.com/docpipe/triage/internal/triage"
)

func TestParseValidation(t *testing.T) {
	t.Run("parses a structured judgment", func(t *testing.T) {
		content := "```json\n" + `{
  "validated_label": "invoice",
  "classifier_confidence": 0.92,
  "decision": "VALID",
  "matched_rules": ["invoice.identity"],
  "justification": "vendor block and totals present"
}` + "\n```"

		result, err := parseValidation(content)
		if err != nil {
			t.Fatalf("parseValidation error: %v", err)
		}
		if result.ValidatedLabel != triage.TypeInvoice {
			t.Errorf("validated label = %s, want invoice", result.ValidatedLabel)
		}
		if result.Decision != triage.DecisionValid {
			t.Errorf("decision = %s, want VALID", result.Decision)
		}
	})

	t.Run("schema violation is a rule evaluation failure", func(t *testing.T) {
		_, err := parseValidation("the document looks fine to me")
		if err == nil {
			t.Fatal("expected an error for prose output")
		}

		kind, ok := triage.KindOf(err)
		if !ok {
			t.Fatalf("error %v is not a domain error", err)
		}
		if kind != triage.KindRuleEvaluation {
			t.Errorf("kind = %s, want %s", kind, triage.KindRuleEvaluation)
		}
	})
}
