package template

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed templates
var embeddedFS embed.FS

// EmbeddedTemplates returns the embedded template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embeddedFS, "templates")
}

var (
	defaultRenderer     Renderer
	defaultRendererErr  error
	defaultRendererOnce sync.Once
)

// embeddedRenderer returns a process-wide Renderer over the embedded templates.
func embeddedRenderer() (Renderer, error) {
	defaultRendererOnce.Do(func() {
		fsys, err := EmbeddedTemplates()
		if err != nil {
			defaultRendererErr = err
			return
		}
		defaultRenderer = NewRenderer(fsys)
	})
	return defaultRenderer, defaultRendererErr
}
