package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/claude-setup/internal/core/project"
)

var (
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// keyFiles lists the generated files users usually edit first.
var keyFiles = []struct{ path, hint string }{
	{"docs/01-scope.md", "define your project scope"},
	{"docs/architecture-design.md", "your technical architecture"},
	{"CLAUDE.md", "keep under 200 lines"},
}

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard renders lines inside a rounded border box with a styled title.
func renderCard(title string, lines []string) string {
	body := cliPrimary.Bold(true).Render(title) + "\n\n" + strings.Join(lines, "\n")
	return cardStyle().Render(body)
}

func printBanner(w io.Writer, name, root string) {
	_, _ = fmt.Fprintf(w, "🚀 Setting up Claude Code project: %s\n", name)
	_, _ = fmt.Fprintf(w, "📁 Project path: %s\n\n", root)
}

// printCompletion writes the completion line followed by the next-steps and
// key-files cards.
func printCompletion(w io.Writer, result *project.InitResult) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "✅ Claude Code project setup complete!")
	_, _ = fmt.Fprintln(w)

	steps := []string{
		"1. cd " + result.Config.Root,
		"2. Initialize git: git init",
		"3. Edit docs/architecture-design.md with your project specifics",
		"4. Start Claude Code: claude --dangerously-skip-permissions",
		`5. Begin with: claude "Please read @CLAUDE.md and @docs/architecture-design.md"`,
	}
	_, _ = fmt.Fprintln(w, renderCard("🎯 Next steps", steps))

	files := make([]string, 0, len(keyFiles))
	for _, f := range keyFiles {
		files = append(files, "- "+f.path+" "+cliMuted.Render("("+f.hint+")"))
	}
	_, _ = fmt.Fprintln(w, renderCard("📚 Key files to customize", files))
}
