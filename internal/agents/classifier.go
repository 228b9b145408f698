// Package agents adapts go-agents chat inference to the triage capability
// interfaces. Each adapter owns one long-lived agent handle, composes its
// prompt from the static instruction and spec text, and parses the model's
// structured JSON response. All invocation failures, timeouts included,
// leave this package as model invocation kinds.
package agents

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/docpipe/triage/internal/prompts"
	"github.com/docpipe/triage/internal/triage"
	"github.com/docpipe/triage/pkg/formatting"
)

// Classifier implements triage.Classifier over a go-agents chat agent.
type Classifier struct {
	agent  agent.Agent
	spec   string
	logger *slog.Logger
}

// NewClassifier creates a classifier capability from agent configuration.
// The underlying agent is constructed once and reused across requests;
// invocation is stateless and safe for concurrent use.
func NewClassifier(cfg *gaconfig.AgentConfig, logger *slog.Logger) (*Classifier, error) {
	a, err := agent.New(cfg)
	if err != nil {
		return nil, err
	}

	spec, err := prompts.Spec(prompts.StageClassify)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		agent:  a,
		spec:   spec,
		logger: logger.With("capability", "classifier"),
	}, nil
}

// Classify sends the instruction, response spec, and document content to the
// model and parses its structured result. The returned document type is
// guaranteed to be drawn from the closed type set; anything else is an
// invalid model response.
func (c *Classifier) Classify(ctx context.Context, instruction, content string) (*triage.ClassificationResult, error) {
	prompt := composePrompt(instruction, c.spec, "Document content:", content)

	resp, err := c.agent.Chat(ctx, prompt)
	if err != nil {
		return nil, invocationError("classifier chat", err)
	}

	parsed, err := formatting.Parse[triage.ClassificationResult](resp.Text())
	if err != nil {
		return nil, triage.WrapError(
			triage.KindInvalidModelResponse,
			"classifier response violates schema", err,
		)
	}

	if err := checkClassification(&parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func checkClassification(result *triage.ClassificationResult) error {
	if _, err := triage.ParseDocumentType(string(result.DocumentType)); err != nil {
		return triage.Errorf(
			triage.KindInvalidModelResponse,
			"classifier returned document type %q", result.DocumentType,
		)
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		return triage.Errorf(
			triage.KindInvalidModelResponse,
			"classifier returned confidence %v", result.Confidence,
		)
	}
	return nil
}

func composePrompt(sections ...string) string {
	var sb strings.Builder
	for i, section := range sections {
		if section == "" {
			continue
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(section)
	}
	return sb.String()
}

// invocationError uniformly wraps transport and timeout failures. A caller
// side deadline must surface as a model invocation failure, never a hang or
// a bare context error.
func invocationError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return triage.WrapError(triage.KindModelInvocation, op+" timed out", err)
	}
	return triage.WrapError(triage.KindModelInvocation, op, err)
}
