// Package cli implements the claude-setup command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modu-ai/claude-setup/internal/core/project"
	"github.com/modu-ai/claude-setup/pkg/version"
)

// invalidNameMessage is printed when the project name fails validation.
const invalidNameMessage = "Project name should contain only letters, numbers, hyphens, and underscores"

// errMissingProjectName is returned when no name is given and no prompt is possible.
var errMissingProjectName = errors.New("project name is required")

// setupFailure marks an error raised while the setup run was in progress.
type setupFailure struct {
	err error
}

func (e *setupFailure) Error() string { return "Error during setup: " + e.err.Error() }
func (e *setupFailure) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claude-setup [project-name]",
		Short: "Scaffold a Claude Code project",
		Long: `claude-setup creates a ready-to-use Claude Code project layout:
.claude/settings.json, five specialized agents, planning documents,
CLAUDE.md, PLAYBOOK.md, .gitignore and README.md.

Examples:
  claude-setup my-app                 Creates ./my-app/ and writes the layout inside
  claude-setup my-app --path ./svc    Writes the layout into ./svc
  claude-setup my-app --dry-run       Prints what would be written`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runSetup,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("claude-setup %s\n", version.GetVersion()))

	cmd.Flags().String("path", "", "Project root directory (default: ./<project-name>)")
	cmd.Flags().Bool("dry-run", false, "Print the files that would be written without writing them")
	cmd.Flags().BoolP("verbose", "v", false, "Log setup steps to stderr")

	return cmd
}

// Execute runs the root command and prints a single failure line on error.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		printFailure(cmd.ErrOrStderr(), err)
	}
	return err
}

// printFailure writes the one-line failure report for err.
func printFailure(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "❌ %s\n", failureMessage(err))
}

func failureMessage(err error) string {
	if errors.Is(err, project.ErrInvalidProjectName) {
		return invalidNameMessage
	}
	return err.Error()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
