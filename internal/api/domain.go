package api

import (
	"fmt"

	"github.com/docpipe/triage/internal/agents"
	"github.com/docpipe/triage/internal/config"
	"github.com/docpipe/triage/internal/documents"
	"github.com/docpipe/triage/internal/extraction"
	"github.com/docpipe/triage/internal/pipeline"
	"github.com/docpipe/triage/internal/prompts"
	"github.com/docpipe/triage/internal/triage"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents documents.System
	Pipeline  pipeline.System
}

// NewDomain creates all domain systems from the API runtime. Capability
// handles (agents, extractor) are constructed once here and shared across
// requests through the pipeline runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	docsSystem := documents.New(
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	rt, err := newPipelineRuntime(cfg, runtime)
	if err != nil {
		return nil, err
	}

	pipelineSystem := pipeline.New(
		rt,
		docsSystem,
		runtime.Storage,
		runtime.Logger,
	)

	return &Domain{
		Documents: docsSystem,
		Pipeline:  pipelineSystem,
	}, nil
}

func newPipelineRuntime(cfg *config.Config, runtime *Runtime) (*pipeline.Runtime, error) {
	agentConfig := cfg.Agent.Resolved()

	classifier, err := agents.NewClassifier(agentConfig, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("classifier init failed: %w", err)
	}

	validator, err := agents.NewValidator(agentConfig, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("validator init failed: %w", err)
	}

	detailed, err := prompts.Instructions(prompts.StageClassify)
	if err != nil {
		return nil, err
	}

	extractor := extraction.New(extraction.Config{
		ChunkSize:    cfg.Pipeline.ChunkSize,
		ChunkOverlap: cfg.Pipeline.ChunkOverlap,
	}, runtime.Logger)

	classify := triage.NewClassificationStage(
		classifier,
		triage.StageInstructions{
			Quick:    prompts.QuickClassify,
			Detailed: detailed,
		},
		runtime.Logger,
	)

	validate := triage.NewValidationStage(
		validator,
		triage.DefaultCatalog(),
		runtime.Logger,
	)

	return &pipeline.Runtime{
		Extractor: extractor,
		Classify:  classify,
		Validate:  validate,
		Timeout:   cfg.Pipeline.RequestTimeoutDuration(),
		Logger:    runtime.Logger,
	}, nil
}
