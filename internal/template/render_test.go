package template

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// firstHeading returns the level and text of the first heading in a markdown document.
func firstHeading(t *testing.T, src []byte) (int, string) {
	t.Helper()

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		var b strings.Builder
		lines := h.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		return h.Level, b.String()
	}
	t.Fatal("document has no heading")
	return 0, ""
}

func TestRenderAllEntries(t *testing.T) {
	cfg := testConfig("demo-app")

	for _, e := range Catalog() {
		t.Run(e.ID, func(t *testing.T) {
			out, err := Render(e.ID, cfg)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", e.ID, err)
			}
			if len(bytes.TrimSpace(out)) == 0 {
				t.Fatalf("Render(%q) returned empty content", e.ID)
			}
			if bytes.Contains(out, []byte("{{")) {
				t.Errorf("Render(%q) left template syntax in output", e.ID)
			}
		})
	}
}

func TestRenderEmbedsProjectName(t *testing.T) {
	const name = "Orbital_Tracker-9"
	cfg := testConfig(name)

	for _, e := range Catalog() {
		if e.Kind == KindIgnore {
			continue
		}
		t.Run(e.ID, func(t *testing.T) {
			out, err := Render(e.ID, cfg)
			if err != nil {
				t.Fatalf("Render(%q) error: %v", e.ID, err)
			}
			if !bytes.Contains(out, []byte(name)) {
				t.Errorf("Render(%q) does not contain project name %q", e.ID, name)
			}
		})
	}
}

func TestRenderHeadings(t *testing.T) {
	cfg := testConfig("demo-app")

	tests := []struct {
		id   string
		want string
	}{
		{"readme", "demo-app"},
		{"claude-md", "demo-app"},
		{"playbook", "demo-app Playbook"},
		{"scope", "Project Scope: demo-app"},
		{"decisions", "Architecture Decision Log: demo-app"},
		{"tasks", "Task Checklist: demo-app"},
		{"architecture", "Architecture Design: demo-app"},
		{"mvp-planner", "MVP Planner Agent"},
		{"debugger", "Debugger Agent"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			out, err := Render(tt.id, cfg)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			level, heading := firstHeading(t, out)
			if level != 1 || heading != tt.want {
				t.Errorf("first heading = h%d %q, want h1 %q", level, heading, tt.want)
			}
		})
	}
}

func TestRenderReadmeFirstLine(t *testing.T) {
	out, err := Render("readme", testConfig("demo-app"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	first, _, _ := strings.Cut(string(out), "\n")
	if first != "# demo-app" {
		t.Errorf("first line = %q, want %q", first, "# demo-app")
	}
}

func TestRenderAgentsAddressProject(t *testing.T) {
	cfg := testConfig("svc")

	roles := map[string]string{
		"mvp-planner":   "You are the MVP Planner for svc.",
		"architect":     "You are the Architect for svc.",
		"code-reviewer": "You are the Code Reviewer for svc.",
		"test-runner":   "You are the Test Runner for svc.",
		"debugger":      "You are the Debugger for svc.",
	}
	for id, want := range roles {
		t.Run(id, func(t *testing.T) {
			out, err := Render(id, cfg)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if !strings.Contains(string(out), want) {
				t.Errorf("agent %q missing %q", id, want)
			}
		})
	}
}

func TestRenderDocsCarryDate(t *testing.T) {
	cfg := testConfig("demo-app")

	for _, e := range Entries(KindDoc) {
		t.Run(e.ID, func(t *testing.T) {
			out, err := Render(e.ID, cfg)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			want := "**Last Updated**: 2026-10-19"
			if e.ID == "decisions" {
				want = "**Date**: 2026-10-19"
			}
			if !strings.Contains(string(out), want) {
				t.Errorf("%s missing %q", e.Path, want)
			}
		})
	}
}

func TestRenderGitignoreIsFixed(t *testing.T) {
	a, err := Render("gitignore", testConfig("alpha"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	b, err := Render("gitignore", testConfig("beta"))
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error(".gitignore content depends on project name")
	}
	for _, want := range []string{".env\n", "secrets/\n", ".DS_Store\n", "*.log\n", "dist/\n", "build/\n", ".idea/\n"} {
		if !bytes.Contains(a, []byte(want)) {
			t.Errorf(".gitignore missing %q", strings.TrimSpace(want))
		}
	}
}

func TestRenderOnlyTimestampFieldsVary(t *testing.T) {
	first := testConfig("demo-app")
	second := first
	second.CreatedAt = first.CreatedAt.Add(36 * time.Hour)

	for _, e := range Catalog() {
		t.Run(e.ID, func(t *testing.T) {
			a, err := Render(e.ID, first)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			b, err := Render(e.ID, second)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}

			normalize := func(data []byte, ts, date string) string {
				s := strings.ReplaceAll(string(data), ts, "<ts>")
				return strings.ReplaceAll(s, date, "<date>")
			}
			na := normalize(a, first.Timestamp(), first.Date())
			nb := normalize(b, second.Timestamp(), second.Date())
			if na != nb {
				t.Errorf("%s differs beyond timestamp fields", e.Path)
			}
		})
	}
}

func TestRenderUnknownID(t *testing.T) {
	_, err := Render("does-not-exist", testConfig("demo-app"))
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}
