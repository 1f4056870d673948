package template

import (
	"fmt"

	"github.com/modu-ai/claude-setup/pkg/models"
)

// Render returns the content of the catalog entry id for cfg.
// It performs no filesystem writes.
func Render(id string, cfg models.ProjectConfig) ([]byte, error) {
	entry, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return RenderEntry(entry, cfg)
}

// RenderEntry returns the content of entry for cfg.
func RenderEntry(entry Entry, cfg models.ProjectConfig) ([]byte, error) {
	if entry.Kind == KindSettings {
		return MarshalSettings(BuildSettings(cfg))
	}

	r, err := embeddedRenderer()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	return r.Render(entry.Template, ContextFor(cfg))
}
