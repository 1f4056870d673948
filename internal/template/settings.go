package template

import (
	"encoding/json"
	"fmt"

	"github.com/modu-ai/claude-setup/pkg/models"
)

// Settings defaults written to .claude/settings.json.
const (
	DefaultMaxTokens        = 150000
	DefaultCompactAtPercent = 70
	DefaultWarningAtPercent = 85

	// SettingsVersion is the schema version of the settings document,
	// independent of the binary version.
	SettingsVersion = "1.0.0"
)

// Sensitive paths are denied for both read and write ahead of any allow rule.
var (
	denyRules = []string{
		"Read(./.env)",
		"Read(./.env.*)",
		"Read(./secrets/**)",
		"Read(./config/credentials.json)",
		"Read(./private/**)",
		"Write(./.env)",
		"Write(./.env.*)",
		"Write(./secrets/**)",
	}

	allowRules = []string{
		"Read(./docs/**)",
		"Read(./src/**)",
		"Read(./tests/**)",
		"Write(./src/**)",
		"Write(./tests/**)",
		"Write(./docs/**)",
	}
)

// Settings is the assistant settings document. Field order is the
// serialized key order.
type Settings struct {
	Permissions     Permissions     `json:"permissions"`
	ContextLimits   ContextLimits   `json:"context_limits"`
	ProjectSettings ProjectSettings `json:"project_settings"`
}

// Permissions holds path-glob rules. Deny rules are listed first.
type Permissions struct {
	Deny  []string `json:"deny"`
	Allow []string `json:"allow"`
}

// ContextLimits holds the token thresholds for context management.
type ContextLimits struct {
	MaxTokens        int `json:"max_tokens"`
	CompactAtPercent int `json:"compact_at_percent"`
	WarningAtPercent int `json:"warning_at_percent"`
}

// ProjectSettings echoes the project identity.
type ProjectSettings struct {
	Name    string `json:"name"`
	Created string `json:"created"`
	Version string `json:"version"`
}

// BuildSettings returns the settings document for cfg.
func BuildSettings(cfg models.ProjectConfig) Settings {
	return Settings{
		Permissions: Permissions{
			Deny:  append([]string(nil), denyRules...),
			Allow: append([]string(nil), allowRules...),
		},
		ContextLimits: ContextLimits{
			MaxTokens:        DefaultMaxTokens,
			CompactAtPercent: DefaultCompactAtPercent,
			WarningAtPercent: DefaultWarningAtPercent,
		},
		ProjectSettings: ProjectSettings{
			Name:    cfg.Name,
			Created: cfg.Timestamp(),
			Version: SettingsVersion,
		},
	}
}

// MarshalSettings encodes s as two-space indented JSON with a trailing newline.
func MarshalSettings(s Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return append(data, '\n'), nil
}
