package testsupport

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
)

// MustParseAnswers decodes an inline YAML or JSON answers document, failing
// the test on error.
func MustParseAnswers(t *testing.T, doc string) answers.Answers {
	t.Helper()

	out, err := answers.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}
	return out
}

// MustLoadAnswers reads an answers fixture from disk.
func MustLoadAnswers(t *testing.T, path string) answers.Answers {
	t.Helper()

	if path == "" {
		t.Fatalf("load answers: %v", errors.New("testsupport: answers path is required"))
	}
	out, err := answers.LoadFile(path)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	return out
}

// FileByPath returns the generated file with the supplied path.
func FileByPath(files []scaffold.File, path string) (scaffold.File, bool) {
	for _, file := range files {
		if file.Path == path {
			return file, true
		}
	}
	return scaffold.File{}, false
}

// MustFile fails the test when no generated file carries the path.
func MustFile(t *testing.T, files []scaffold.File, path string) scaffold.File {
	t.Helper()

	file, ok := FileByPath(files, path)
	if !ok {
		t.Fatalf("expected generated file %q, got %v", path, Paths(files))
	}
	return file
}

// Paths lists generated file paths in output order.
func Paths(files []scaffold.File) []string {
	out := make([]string, len(files))
	for i, file := range files {
		out[i] = file.Path
	}
	return out
}

// AssertContains fails the test when any fragment is missing from content.
func AssertContains(t *testing.T, content string, fragments ...string) {
	t.Helper()

	for _, fragment := range fragments {
		if !strings.Contains(content, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, content)
		}
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
