package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvPipelineChunkSize      = "TRIAGE_PIPELINE_CHUNK_SIZE"
	EnvPipelineChunkOverlap   = "TRIAGE_PIPELINE_CHUNK_OVERLAP"
	EnvPipelineRequestTimeout = "TRIAGE_PIPELINE_REQUEST_TIMEOUT"
)

// PipelineConfig holds triage pipeline execution parameters.
type PipelineConfig struct {
	ChunkSize      int    `toml:"chunk_size"`
	ChunkOverlap   int    `toml:"chunk_overlap"`
	RequestTimeout string `toml:"request_timeout"`
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration. A zero
// duration disables the per-run deadline.
func (c *PipelineConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.ChunkSize != 0 {
		c.ChunkSize = overlay.ChunkSize
	}
	if overlay.ChunkOverlap != 0 {
		c.ChunkOverlap = overlay.ChunkOverlap
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.ChunkSize == 0 {
		c.ChunkSize = 4000
	}
	if c.ChunkOverlap == 0 {
		c.ChunkOverlap = 200
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "5m"
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineChunkSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			c.ChunkSize = size
		}
	}
	if v := os.Getenv(EnvPipelineChunkOverlap); v != "" {
		if overlap, err := strconv.Atoi(v); err == nil {
			c.ChunkOverlap = overlap
		}
	}
	if v := os.Getenv(EnvPipelineRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("invalid chunk_size: %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("invalid chunk_overlap: %d", c.ChunkOverlap)
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
