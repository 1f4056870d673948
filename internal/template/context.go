package template

import (
	"time"

	"github.com/modu-ai/claude-setup/pkg/models"
)

// TemplateContext provides data for template rendering.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	ProjectName string
	Date        string // YYYY-MM-DD, used in "Last Updated" footers
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext stamped with the current
// time, then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{}
	WithCreatedAt(time.Now())(ctx)

	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// ContextFor builds the rendering context of a setup run.
func ContextFor(cfg models.ProjectConfig) *TemplateContext {
	return NewTemplateContext(
		WithProjectName(cfg.Name),
		WithCreatedAt(cfg.CreatedAt),
	)
}

// WithProjectName sets the project name.
func WithProjectName(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
	}
}

// WithCreatedAt sets the date from t.
func WithCreatedAt(t time.Time) ContextOption {
	return func(c *TemplateContext) {
		c.Date = t.Format(models.DateLayout)
	}
}
