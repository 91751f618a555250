package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/goliatone/go-adaptergen/internal/cli/prompt"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeAnswers(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}
	return path
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "adaptergen" {
		t.Errorf("expected Use to be 'adaptergen', got %s", cmd.Use)
	}
	for _, expected := range []string{"version", "generate", "templates"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected command %s to be registered", expected)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	Version = "1.2.3-test"

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "adaptergen version: 1.2.3-test") {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates")
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	for _, want := range []string{
		"admin/src/components/settings.tsx.ts",
		".devcontainer/parcel/Dockerfile",
		"src/lib/adapter-config.d.ts",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestGenerateCommand_WritesFiles(t *testing.T) {
	answersPath := writeAnswers(t, "language: TypeScript\nadminReact: \"yes\"\ntools: [devcontainer]\n")
	outDir := t.TempDir()

	out, err := execute(t, "generate", "--answers", answersPath, "--output", outDir)
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	for _, rel := range []string{
		"admin/src/components/settings.tsx",
		"src/lib/adapter-config.d.ts",
		".devcontainer/parcel/Dockerfile",
	} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("expected %s to be written: %v", rel, err)
		}
	}
	if !strings.Contains(out, "created ") {
		t.Fatalf("expected created lines in:\n%s", out)
	}

	if _, err := execute(t, "generate", "--answers", answersPath, "--output", outDir); err == nil {
		t.Fatalf("second run without --force should refuse to overwrite")
	}
	if _, err := execute(t, "generate", "--answers", answersPath, "--output", outDir, "--force"); err != nil {
		t.Fatalf("forced run: %v", err)
	}
}

func TestGenerateCommand_DryRun(t *testing.T) {
	answersPath := writeAnswers(t, "tools: [devcontainer]\n")
	outDir := t.TempDir()

	out, err := execute(t, "generate", "--answers", answersPath, "--output", outDir, "--dry-run")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "==> .devcontainer/parcel/Dockerfile <==") {
		t.Fatalf("expected dockerfile header in:\n%s", out)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run should not write files, found %d entries", len(entries))
	}
}

func TestGenerateCommand_NothingToGenerate(t *testing.T) {
	out, err := execute(t, "generate", "--output", t.TempDir())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "No files to generate") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestGenerateCommand_InvalidAnswers(t *testing.T) {
	answersPath := writeAnswers(t, "adapterSettings:\n  - key: mode\n    inputType: select\n")

	if _, err := execute(t, "generate", "--answers", answersPath, "--dry-run"); err == nil {
		t.Fatalf("expected validation error for select without options")
	}
}

type abortingDriver struct{}

func (abortingDriver) Input(context.Context, prompt.InputConfig) (string, error) {
	return "", prompt.ErrAborted
}

func (abortingDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return false, prompt.ErrAborted
}

func (abortingDriver) Select(context.Context, prompt.SelectConfig) (int, error) {
	return 0, prompt.ErrAborted
}

func (abortingDriver) MultiSelect(context.Context, prompt.SelectConfig) ([]int, error) {
	return nil, prompt.ErrAborted
}

func (abortingDriver) Info(context.Context, string) error { return nil }

func TestGenerateCommand_InteractiveUsesDriver(t *testing.T) {
	original := newPromptDriver
	t.Cleanup(func() { newPromptDriver = original })
	newPromptDriver = func(io.Writer) prompt.Driver { return abortingDriver{} }

	_, err := execute(t, "generate", "--interactive", "--dry-run")
	if !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestGenerateCommand_Only(t *testing.T) {
	answersPath := writeAnswers(t, "language: TypeScript\nadminReact: \"yes\"\ntools: [devcontainer]\n")

	out, err := execute(t, "generate", "--answers", answersPath, "--dry-run",
		"--only", "_devcontainer/parcel/_Dockerfile.ts")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "==> .devcontainer/parcel/Dockerfile <==") {
		t.Fatalf("expected dockerfile in:\n%s", out)
	}
	if strings.Contains(out, "settings.tsx") {
		t.Fatalf("--only should exclude other templates:\n%s", out)
	}

	if _, err := execute(t, "generate", "--dry-run", "--only", "missing.ts"); err == nil {
		t.Fatalf("expected unknown template error")
	}
}
