package scaffold

import (
	"errors"

	"github.com/goliatone/go-adaptergen/pkg/answers"
)

// ErrSkip is returned by a GenerateFunc to omit its file from the run. It is
// never surfaced by the Dispatcher.
var ErrSkip = errors.New("scaffold: skip template")

// GenerateFunc renders file content for the supplied answers. It must not
// mutate shared state; returning ErrSkip omits the file.
type GenerateFunc func(a answers.Answers) (string, error)

// Template is one registered generation unit. Name is its location in the
// template tree (e.g. "admin/src/components/settings.tsx.ts") and drives the
// default output path. CustomPath, when set, is used verbatim instead.
type Template struct {
	Name       string
	Generate   GenerateFunc
	CustomPath string
}

// File is a generated output file. Content is already trimmed.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Skip is a GenerateFunc helper for gating conditions.
func Skip() (string, error) {
	return "", ErrSkip
}
