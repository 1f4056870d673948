package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/modu-ai/claude-setup/internal/defs"
	"github.com/modu-ai/claude-setup/internal/template"
	"github.com/modu-ai/claude-setup/pkg/models"
)

// InitOptions configures a setup run.
type InitOptions struct {
	ProjectName string    // Must match ^[A-Za-z0-9_-]+$.
	Destination string    // Literal project root; empty means <cwd>/<ProjectName>.
	CreatedAt   time.Time // Creation time embedded in files; zero means now.
}

// InitResult summarizes the outcome of a setup run.
type InitResult struct {
	Config       models.ProjectConfig // Resolved configuration of the run.
	CreatedDirs  []string             // Directories ensured, relative to the root.
	CreatedFiles []string             // Files written, relative to the root, slash separated.
}

// Initializer creates a project layout on disk.
type Initializer interface {
	// Init validates opts and writes the full file catalog. It stops at the
	// first failure and leaves already written files in place.
	Init(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	reporter ProgressReporter
	logger   *slog.Logger
}

// NewInitializer creates an Initializer. A nil reporter or logger is
// replaced by a silent one.
func NewInitializer(reporter ProgressReporter, logger *slog.Logger) Initializer {
	if reporter == nil {
		reporter = NoOpReporter{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectInitializer{
		reporter: reporter,
		logger:   logger,
	}
}

// setupStep is one stage of the run.
type setupStep struct {
	name string
	run  func(plan *Plan, result *InitResult) error
}

// Init runs every setup step in order.
func (i *projectInitializer) Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	plan, err := NewPlan(opts)
	if err != nil {
		return nil, err
	}

	i.logger.Info("setting up project",
		"name", plan.Config.Name,
		"root", plan.Config.Root,
	)

	result := &InitResult{Config: plan.Config}

	steps := []setupStep{
		{"create directory structure", i.createDirectoryStructure},
		{"create settings", i.createSettings},
		{"create specialized agents", i.createSpecializedAgents},
		{"create documentation structure", i.createDocumentationStructure},
		{"create main context files", i.createMainContextFiles},
		{"create gitignore", i.createGitignore},
		{"create readme", i.createReadme},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := step.run(plan, result); err != nil {
			i.logger.Error("setup step failed", "step", step.name, "error", err)
			return result, err
		}
	}

	i.logger.Info("project set up",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// createDirectoryStructure creates the project root, .claude/, .claude/agents/ and docs/.
func (i *projectInitializer) createDirectoryStructure(plan *Plan, result *InitResult) error {
	for idx, dir := range plan.Directories {
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return fsError("create directory", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, filepath.ToSlash(projectDirs[idx]))
		i.reporter.Created("directory", dir)
	}
	return nil
}

// createSettings writes .claude/settings.json.
func (i *projectInitializer) createSettings(plan *Plan, result *InitResult) error {
	return i.writeFiles("create settings", plan, template.KindSettings, result, func(f PlannedFile) (string, string) {
		return "Claude settings", f.Path
	})
}

// createSpecializedAgents writes the five agent documents.
func (i *projectInitializer) createSpecializedAgents(plan *Plan, result *InitResult) error {
	return i.writeFiles("create agent", plan, template.KindAgent, result, func(f PlannedFile) (string, string) {
		return "agent", f.entry.Name()
	})
}

// createDocumentationStructure writes the four docs/ templates.
func (i *projectInitializer) createDocumentationStructure(plan *Plan, result *InitResult) error {
	return i.writeFiles("create documentation", plan, template.KindDoc, result, func(f PlannedFile) (string, string) {
		return "documentation", f.entry.Name()
	})
}

// createMainContextFiles writes CLAUDE.md and PLAYBOOK.md.
func (i *projectInitializer) createMainContextFiles(plan *Plan, result *InitResult) error {
	return i.writeFiles("create context file", plan, template.KindContext, result, func(f PlannedFile) (string, string) {
		if f.entry.Path == defs.PlaybookMD {
			return "playbook", defs.PlaybookMD
		}
		return "main context", f.entry.Name()
	})
}

// createGitignore writes the fixed .gitignore.
func (i *projectInitializer) createGitignore(plan *Plan, result *InitResult) error {
	return i.writeFiles("create gitignore", plan, template.KindIgnore, result, func(f PlannedFile) (string, string) {
		return f.entry.Name(), ""
	})
}

// createReadme writes README.md.
func (i *projectInitializer) createReadme(plan *Plan, result *InitResult) error {
	return i.writeFiles("create readme", plan, template.KindReadme, result, func(f PlannedFile) (string, string) {
		return f.entry.Name(), ""
	})
}

// writeFiles renders and writes every planned file of kind, truncating
// existing files.
func (i *projectInitializer) writeFiles(
	step string,
	plan *Plan,
	kind template.Kind,
	result *InitResult,
	label func(PlannedFile) (string, string),
) error {
	for _, f := range plan.filesOf(kind) {
		content, err := template.RenderEntry(f.entry, plan.Config)
		if err != nil {
			return fmt.Errorf("render %s: %w", f.entry.Path, err)
		}

		if err := os.WriteFile(f.Path, content, defs.FilePerm); err != nil {
			return fsError(step, f.Path, err)
		}
		i.logger.Debug("wrote file", "path", f.Path, "bytes", len(content))

		result.CreatedFiles = append(result.CreatedFiles, f.entry.Path)
		what, target := label(f)
		i.reporter.Created(what, target)
	}
	return nil
}
