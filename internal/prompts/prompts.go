// Package prompts holds the static instruction and response-format text for
// the classifier and validator model capabilities. Instructions describe the
// task; specs pin the exact JSON structure a response must carry. The triage
// core never imports this package; composition happens in the capability
// adapters.
package prompts

import "errors"

// ErrInvalidStage indicates an unrecognized capability stage.
var ErrInvalidStage = errors.New("invalid prompt stage")

// Stage identifies which capability a prompt targets.
type Stage string

// Capability stages.
const (
	StageClassify Stage = "classify"
	StageValidate Stage = "validate"
)

// Instructions returns the system instructions for a stage.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

// Spec returns the response-format specification for a stage.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

// QuickClassify is the terse instruction for the first classification pass.
// The quick pass trades instruction depth for latency; the detailed pass
// uses the full StageClassify instructions.
const QuickClassify = `Classify this document type quickly. Assign one of the allowed types and an honest confidence score.`
