package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/modu-ai/claude-setup/internal/defs"
	"github.com/modu-ai/claude-setup/internal/template"
	"github.com/modu-ai/claude-setup/pkg/models"
)

// projectDirs lists the directories to create, relative to the project root.
var projectDirs = []string{
	".",
	defs.ClaudeDir,
	filepath.Join(defs.ClaudeDir, defs.AgentsSubdir),
	defs.DocsDir,
}

// Plan is the complete, side-effect free description of a setup run.
type Plan struct {
	Config      models.ProjectConfig `yaml:"project"`
	Directories []string             `yaml:"directories"`
	Files       []PlannedFile        `yaml:"files"`
}

// PlannedFile is one file the run will write.
type PlannedFile struct {
	ID   string        `yaml:"id"`
	Kind template.Kind `yaml:"kind"`
	Path string        `yaml:"path"` // Absolute destination path.

	entry template.Entry
}

// NewPlan validates opts and computes the directories and files of a run
// without touching the filesystem.
func NewPlan(opts InitOptions) (*Plan, error) {
	if err := ValidateProjectName(opts.ProjectName); err != nil {
		return nil, err
	}

	root, err := ResolveRoot(opts.ProjectName, opts.Destination)
	if err != nil {
		return nil, err
	}

	created := opts.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	plan := &Plan{
		Config: models.ProjectConfig{
			Name:      opts.ProjectName,
			Root:      root,
			CreatedAt: created,
		},
	}

	for _, dir := range projectDirs {
		plan.Directories = append(plan.Directories, filepath.Join(root, dir))
	}
	for _, e := range template.Catalog() {
		plan.Files = append(plan.Files, plannedFile(root, e))
	}

	return plan, nil
}

// ResolveRoot returns the project root for a run. An explicit destination
// is used as the root itself; otherwise the root is <cwd>/<name>.
func ResolveRoot(name, destination string) (string, error) {
	if destination != "" {
		abs, err := filepath.Abs(destination)
		if err != nil {
			return "", fmt.Errorf("resolve destination %q: %w", destination, err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, name), nil
}

// plannedFile places a catalog entry under root.
func plannedFile(root string, e template.Entry) PlannedFile {
	return PlannedFile{
		ID:    e.ID,
		Kind:  e.Kind,
		Path:  filepath.Join(root, filepath.FromSlash(e.Path)),
		entry: e,
	}
}

// filesOf returns the planned files of the given kind in write order.
func (p *Plan) filesOf(kind template.Kind) []PlannedFile {
	entries := template.Entries(kind)
	out := make([]PlannedFile, 0, len(entries))
	for _, e := range entries {
		out = append(out, plannedFile(p.Config.Root, e))
	}
	return out
}
