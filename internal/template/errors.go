// Package template renders the files written by claude-setup.
// Markdown and ignore-file templates are embedded text/template files;
// the settings document is built as a Go value and encoded as JSON.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced missing data.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates placeholder syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrUnknownTemplate indicates a catalog ID that does not exist.
	ErrUnknownTemplate = errors.New("template: unknown catalog id")
)
