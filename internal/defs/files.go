package defs

// Directory names created under the project root.
const (
	// ClaudeDir is the hidden assistant configuration directory.
	ClaudeDir = ".claude"

	// AgentsSubdir holds the agent instruction documents under ClaudeDir.
	AgentsSubdir = "agents"

	// DocsDir holds the project documentation templates.
	DocsDir = "docs"
)

// Common file names written by the initializer.
const (
	// SettingsJSON is the assistant project settings file.
	SettingsJSON = "settings.json"

	// ClaudeMD is the short current-context summary read by the assistant.
	ClaudeMD = "CLAUDE.md"

	// PlaybookMD is the usage guide for the agent workflow.
	PlaybookMD = "PLAYBOOK.md"

	// Gitignore is the version-control ignore file.
	Gitignore = ".gitignore"

	// ReadmeMD is the project README.
	ReadmeMD = "README.md"
)

// Permissions for created directories and files.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
