package project

import (
	"fmt"
	"regexp"
)

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateProjectName reports whether name is usable as a project name.
// Only ASCII letters, digits, hyphens and underscores are accepted.
func ValidateProjectName(name string) error {
	if projectNamePattern.MatchString(name) {
		return nil
	}
	return &SetupError{
		Kind: KindValidation,
		Step: "validate project name",
		Err:  fmt.Errorf("%q must contain only letters, numbers, hyphens, and underscores", name),
	}
}
