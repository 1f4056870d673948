package template

import (
	"path"

	"github.com/modu-ai/claude-setup/internal/defs"
)

// Kind groups catalog entries by the setup step that writes them.
type Kind string

const (
	KindSettings Kind = "settings"
	KindAgent    Kind = "agent"
	KindDoc      Kind = "doc"
	KindContext  Kind = "context"
	KindIgnore   Kind = "ignore"
	KindReadme   Kind = "readme"
)

// Entry describes one generated file.
type Entry struct {
	ID       string // Stable identifier, e.g. "mvp-planner".
	Kind     Kind
	Path     string // Destination relative to the project root, slash separated.
	Template string // Embedded template name; empty for the settings document.
}

// Name returns the base file name of the entry.
func (e Entry) Name() string {
	return path.Base(e.Path)
}

var (
	agentsPath = path.Join(defs.ClaudeDir, defs.AgentsSubdir)

	catalog = []Entry{
		{ID: "settings", Kind: KindSettings, Path: path.Join(defs.ClaudeDir, defs.SettingsJSON)},

		{ID: "mvp-planner", Kind: KindAgent, Path: path.Join(agentsPath, "mvp-planner.md"), Template: "agents/mvp-planner.md.tmpl"},
		{ID: "architect", Kind: KindAgent, Path: path.Join(agentsPath, "architect.md"), Template: "agents/architect.md.tmpl"},
		{ID: "code-reviewer", Kind: KindAgent, Path: path.Join(agentsPath, "code-reviewer.md"), Template: "agents/code-reviewer.md.tmpl"},
		{ID: "test-runner", Kind: KindAgent, Path: path.Join(agentsPath, "test-runner.md"), Template: "agents/test-runner.md.tmpl"},
		{ID: "debugger", Kind: KindAgent, Path: path.Join(agentsPath, "debugger.md"), Template: "agents/debugger.md.tmpl"},

		{ID: "scope", Kind: KindDoc, Path: path.Join(defs.DocsDir, "01-scope.md"), Template: "docs/01-scope.md.tmpl"},
		{ID: "decisions", Kind: KindDoc, Path: path.Join(defs.DocsDir, "02-decisions.md"), Template: "docs/02-decisions.md.tmpl"},
		{ID: "tasks", Kind: KindDoc, Path: path.Join(defs.DocsDir, "03-tasks.md"), Template: "docs/03-tasks.md.tmpl"},
		{ID: "architecture", Kind: KindDoc, Path: path.Join(defs.DocsDir, "architecture-design.md"), Template: "docs/architecture-design.md.tmpl"},

		{ID: "claude-md", Kind: KindContext, Path: defs.ClaudeMD, Template: "CLAUDE.md.tmpl"},
		{ID: "playbook", Kind: KindContext, Path: defs.PlaybookMD, Template: "PLAYBOOK.md.tmpl"},

		{ID: "gitignore", Kind: KindIgnore, Path: defs.Gitignore, Template: "gitignore.tmpl"},

		{ID: "readme", Kind: KindReadme, Path: defs.ReadmeMD, Template: "README.md.tmpl"},
	}
)

// Catalog returns every generated file in write order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Entries returns the catalog entries of the given kind in write order.
func Entries(kind Kind) []Entry {
	var out []Entry
	for _, e := range catalog {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds a catalog entry by ID.
func Lookup(id string) (Entry, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
