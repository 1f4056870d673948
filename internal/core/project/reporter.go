package project

import (
	"fmt"
	"io"
)

// ProgressReporter receives one notification per created artifact.
type ProgressReporter interface {
	// Created reports that what was written. target may be empty.
	Created(what, target string)
}

// NoOpReporter discards all progress notifications.
type NoOpReporter struct{}

// Created implements ProgressReporter.
func (NoOpReporter) Created(string, string) {}

// ConsoleReporter prints "<mark> Created <what>: <target>" lines.
type ConsoleReporter struct {
	w    io.Writer
	mark string
}

// NewConsoleReporter creates a ConsoleReporter writing to w. An empty
// mark defaults to a check-mark emoji.
func NewConsoleReporter(w io.Writer, mark string) *ConsoleReporter {
	if mark == "" {
		mark = "✅"
	}
	return &ConsoleReporter{w: w, mark: mark}
}

// Created implements ProgressReporter.
func (r *ConsoleReporter) Created(what, target string) {
	if target == "" {
		_, _ = fmt.Fprintf(r.w, "%s Created %s\n", r.mark, what)
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s Created %s: %s\n", r.mark, what, target)
}
