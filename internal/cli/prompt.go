package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/modu-ai/claude-setup/internal/core/project"
)

// ErrCancelled is returned when the user aborts the name prompt.
var ErrCancelled = errors.New("setup cancelled by user")

// isInteractive reports whether stdin is a terminal. Tests replace it.
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptProjectName asks for the project name. Tests replace it.
var promptProjectName = func() (string, error) {
	var name string

	input := huh.NewInput().
		Title("Project name").
		Description("Letters, numbers, hyphens and underscores").
		Placeholder("my-app").
		Value(&name).
		Validate(func(val string) error {
			if err := project.ValidateProjectName(strings.TrimSpace(val)); err != nil {
				return errors.New(invalidNameMessage)
			}
			return nil
		})

	form := huh.NewForm(huh.NewGroup(input)).
		WithTheme(promptTheme()).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt error: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func promptTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	return t
}
