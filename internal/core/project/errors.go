// Package project implements the setup run behind claude-setup: it
// validates the project name, resolves the destination, creates the
// directory layout and writes every file of the catalog.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrInvalidProjectName indicates the name contains characters outside [A-Za-z0-9_-].
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrFilesystem indicates a directory or file could not be created.
	ErrFilesystem = errors.New("filesystem operation failed")
)

// ErrorKind classifies a SetupError.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindFilesystem
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindFilesystem:
		return "filesystem"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// SetupError is returned for every failure that terminates a setup run.
// Steps completed before the failure are not rolled back.
type SetupError struct {
	Kind ErrorKind
	Step string // Setup step that failed, e.g. "create settings".
	Path string // Affected path; empty for validation errors.
	Err  error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the error's kind.
func (e *SetupError) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrInvalidProjectName
	case KindFilesystem:
		return target == ErrFilesystem
	}
	return false
}

func fsError(step, path string, err error) error {
	return &SetupError{Kind: KindFilesystem, Step: step, Path: path, Err: err}
}
