package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentName         = "TRIAGE_AGENT_NAME"
	EnvAgentProviderName = "TRIAGE_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "TRIAGE_AGENT_BASE_URL"
	EnvAgentToken        = "TRIAGE_AGENT_TOKEN"
	EnvAgentDeployment   = "TRIAGE_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "TRIAGE_AGENT_API_VERSION"
	EnvAgentAuthType     = "TRIAGE_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "TRIAGE_AGENT_MODEL_NAME"
)

// AgentConfig binds the [agent] section of the TOML config. Finalize resolves
// it into a go-agents configuration, which Resolved exposes to callers.
type AgentConfig struct {
	Name     string         `toml:"name"`
	Provider ProviderConfig `toml:"provider"`
	Model    ModelConfig    `toml:"model"`

	resolved *gaconfig.AgentConfig
}

// ProviderConfig binds the [agent.provider] table.
type ProviderConfig struct {
	Name    string         `toml:"name"`
	BaseURL string         `toml:"base_url"`
	Options map[string]any `toml:"options"`
}

// ModelConfig binds the [agent.model] table.
type ModelConfig struct {
	Name string `toml:"name"`
}

// Merge overwrites non-zero fields from overlay. Provider options merge
// key by key.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.Provider.Name != "" {
		c.Provider.Name = overlay.Provider.Name
	}
	if overlay.Provider.BaseURL != "" {
		c.Provider.BaseURL = overlay.Provider.BaseURL
	}
	for k, v := range overlay.Provider.Options {
		if c.Provider.Options == nil {
			c.Provider.Options = make(map[string]any)
		}
		c.Provider.Options[k] = v
	}
	if overlay.Model.Name != "" {
		c.Model.Name = overlay.Model.Name
	}
}

// Finalize resolves the section into a go-agents AgentConfig: library
// defaults first, then the parsed TOML values, then environment variable
// overrides, then validation.
func (c *AgentConfig) Finalize() error {
	resolved := gaconfig.DefaultAgentConfig()
	resolved.Merge(c.overlay())

	loadAgentEnv(&resolved)

	if err := validateAgent(&resolved); err != nil {
		return err
	}

	c.resolved = &resolved
	return nil
}

// Resolved returns the finalized go-agents configuration. It is nil until
// Finalize runs.
func (c *AgentConfig) Resolved() *gaconfig.AgentConfig {
	return c.resolved
}

func (c *AgentConfig) overlay() *gaconfig.AgentConfig {
	overlay := &gaconfig.AgentConfig{Name: c.Name}

	if c.Provider.Name != "" || c.Provider.BaseURL != "" || len(c.Provider.Options) > 0 {
		overlay.Provider = &gaconfig.ProviderConfig{
			Name:    c.Provider.Name,
			BaseURL: c.Provider.BaseURL,
			Options: c.Provider.Options,
		}
	}
	if c.Model.Name != "" {
		overlay.Model = &gaconfig.ModelConfig{Name: c.Model.Name}
	}

	return overlay
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}

	if v := os.Getenv(EnvAgentName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil || c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
