package prompts_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/docpipe/triage/internal/prompts"
)

func TestInstructions(t *testing.T) {
	t.Run("classify stage carries the allowed types", func(t *testing.T) {
		text, err := prompts.Instructions(prompts.StageClassify)
		if err != nil {
			t.Fatalf("Instructions error: %v", err)
		}
		for _, label := range []string{"invoice", "contract", "w2_form", "medical_record", "insurance_claim", "purchase_order", "unknown"} {
			if !strings.Contains(text, label) {
				t.Errorf("classify instructions missing label %q", label)
			}
		}
	})

	t.Run("validate stage forbids re-classification", func(t *testing.T) {
		text, err := prompts.Instructions(prompts.StageValidate)
		if err != nil {
			t.Fatalf("Instructions error: %v", err)
		}
		if !strings.Contains(text, "DO NOT re-classify") {
			t.Error("validate instructions dropped the no-reclassification constraint")
		}
	})

	t.Run("unknown stage returns ErrInvalidStage", func(t *testing.T) {
		if _, err := prompts.Instructions(prompts.Stage("summarize")); !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})
}

func TestSpec(t *testing.T) {
	t.Run("classify spec pins the response fields", func(t *testing.T) {
		text, err := prompts.Spec(prompts.StageClassify)
		if err != nil {
			t.Fatalf("Spec error: %v", err)
		}
		for _, field := range []string{"document_type", "confidence", "alternative_types", "key_indicators"} {
			if !strings.Contains(text, field) {
				t.Errorf("classify spec missing field %q", field)
			}
		}
	})

	t.Run("validate spec pins the decision variants", func(t *testing.T) {
		text, err := prompts.Spec(prompts.StageValidate)
		if err != nil {
			t.Fatalf("Spec error: %v", err)
		}
		if !strings.Contains(text, "VALID|WEAK|INVALID") {
			t.Error("validate spec missing the decision variants")
		}
	})

	t.Run("unknown stage returns ErrInvalidStage", func(t *testing.T) {
		if _, err := prompts.Spec(prompts.Stage("")); !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})
}
