package template

import (
	"io"
)

// TemplateRenderer is the engine contract scaffold templates rely on.
// RenderTemplate loads a named template from the engine's file system,
// executes it with data and copies the result to any supplied writers.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
