package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/docpipe/triage/internal/prompts"
	"github.com/docpipe/triage/internal/triage"
	"github.com/docpipe/triage/pkg/formatting"
)

// Validator implements triage.Validator over a go-agents chat agent.
type Validator struct {
	agent        agent.Agent
	instructions string
	spec         string
	logger       *slog.Logger
}

// NewValidator creates a validator capability from agent configuration.
func NewValidator(cfg *gaconfig.AgentConfig, logger *slog.Logger) (*Validator, error) {
	a, err := agent.New(cfg)
	if err != nil {
		return nil, err
	}

	instructions, err := prompts.Instructions(prompts.StageValidate)
	if err != nil {
		return nil, err
	}

	spec, err := prompts.Spec(prompts.StageValidate)
	if err != nil {
		return nil, err
	}

	return &Validator{
		agent:        a,
		instructions: instructions,
		spec:         spec,
		logger:       logger.With("capability", "validator"),
	}, nil
}

// Validate serializes the bounded validation request into the prompt and
// parses the model's structured judgment. The request carries rules, label,
// confidence, ambiguity flag, and signals only; composing the prompt from
// it cannot leak document content the stage never provided.
func (v *Validator) Validate(ctx context.Context, req triage.ValidationRequest) (*triage.ValidationResult, error) {
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, triage.WrapError(triage.KindRuleEvaluation, "serialize validation request", err)
	}

	prompt := composePrompt(
		v.instructions,
		v.spec,
		fmt.Sprintf("Validation context:\n\n%s", payload),
	)

	resp, err := v.agent.Chat(ctx, prompt)
	if err != nil {
		return nil, invocationError("validator chat", err)
	}

	return parseValidation(resp.Text())
}

// parseValidation decodes the model's structured judgment. A payload that
// violates the schema is a rule evaluation failure, not an invocation one:
// the model answered, but its judgment is unusable, so the run must reject
// rather than retry classification.
func parseValidation(content string) (*triage.ValidationResult, error) {
	parsed, err := formatting.Parse[triage.ValidationResult](content)
	if err != nil {
		return nil, triage.WrapError(
			triage.KindRuleEvaluation,
			"validator response violates schema", err,
		)
	}
	return &parsed, nil
}
