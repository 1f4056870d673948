package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/claude-setup/internal/core/project"
	"github.com/modu-ai/claude-setup/pkg/version"
)

// runSetup executes the setup workflow for the root command.
func runSetup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		if !isInteractive() {
			return errMissingProjectName
		}
		prompted, err := promptProjectName()
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				_, _ = fmt.Fprintln(out, "Setup cancelled.")
				return nil
			}
			return fmt.Errorf("prompt project name: %w", err)
		}
		name = prompted
	}

	opts := project.InitOptions{
		ProjectName: name,
		Destination: getStringFlag(cmd, "path"),
	}

	if getBoolFlag(cmd, "dry-run") {
		return printPlan(out, opts)
	}

	if err := project.ValidateProjectName(opts.ProjectName); err != nil {
		return err
	}
	root, err := project.ResolveRoot(opts.ProjectName, opts.Destination)
	if err != nil {
		return &setupFailure{err: err}
	}
	opts.Destination = root

	printBanner(out, opts.ProjectName, root)

	var logger *slog.Logger
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger.Debug("claude-setup", "version", version.GetFullVersion())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	initializer := project.NewInitializer(project.NewConsoleReporter(out, ""), logger)
	result, err := initializer.Init(ctx, opts)
	if err != nil {
		return &setupFailure{err: err}
	}

	printCompletion(out, result)
	return nil
}

// printPlan writes the plan for opts as YAML without touching the filesystem.
func printPlan(w io.Writer, opts project.InitOptions) error {
	plan, err := project.NewPlan(opts)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}
