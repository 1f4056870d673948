package template

import (
	"testing"
	"time"

	"github.com/modu-ai/claude-setup/pkg/models"
)

func TestNewTemplateContext_Defaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.ProjectName != "" {
		t.Errorf("ProjectName = %q, want empty", ctx.ProjectName)
	}
	if _, err := time.Parse(models.DateLayout, ctx.Date); err != nil {
		t.Errorf("Date %q is not YYYY-MM-DD: %v", ctx.Date, err)
	}
}

func TestNewTemplateContext_WithOptions(t *testing.T) {
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name    string
		opt     ContextOption
		checkFn func(t *testing.T, ctx *TemplateContext)
	}{
		{
			name: "WithProjectName",
			opt:  WithProjectName("demo-app"),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.ProjectName != "demo-app" {
					t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, "demo-app")
				}
			},
		},
		{
			name: "WithCreatedAt",
			opt:  WithCreatedAt(created),
			checkFn: func(t *testing.T, ctx *TemplateContext) {
				if ctx.Date != "2026-03-04" {
					t.Errorf("Date = %q, want %q", ctx.Date, "2026-03-04")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkFn(t, NewTemplateContext(tt.opt))
		})
	}
}

func TestContextFor(t *testing.T) {
	cfg := models.ProjectConfig{
		Name:      "svc",
		Root:      "/tmp/projects",
		CreatedAt: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
	}

	ctx := ContextFor(cfg)

	if ctx.ProjectName != cfg.Name {
		t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, cfg.Name)
	}
	if ctx.Date != cfg.Date() {
		t.Errorf("Date = %q, want %q", ctx.Date, cfg.Date())
	}
}
