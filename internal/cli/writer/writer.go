package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-adaptergen/pkg/scaffold"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

var (
	// ErrExists reports a target file that already exists while overwriting
	// is disabled.
	ErrExists = errors.New("writer: file already exists")
	// ErrOutsideRoot reports a generated path escaping the output directory.
	ErrOutsideRoot = errors.New("writer: path escapes output directory")
)

// Option configures a Writer.
type Option func(*Writer)

// WithForce allows existing files to be overwritten.
func WithForce(force bool) Option {
	return func(w *Writer) {
		w.force = force
	}
}

// WithLogger routes write diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Writer persists generated files below a root directory.
type Writer struct {
	root   string
	force  bool
	logger *zap.Logger
}

// New returns a Writer rooted at root. An empty root means the working
// directory.
func New(root string, options ...Option) *Writer {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	w := &Writer{
		root:   root,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Target returns the filesystem path a generated file is written to.
func (w *Writer) Target(file scaffold.File) (string, error) {
	rel := filepath.FromSlash(file.Path)
	if file.Path == "" || filepath.IsAbs(rel) || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, file.Path)
	}
	return filepath.Join(w.root, rel), nil
}

// WriteAll writes every file. All targets are checked before anything is
// written, so a conflict leaves the output directory untouched.
func (w *Writer) WriteAll(files []scaffold.File) ([]string, error) {
	targets := make([]string, len(files))
	for i, file := range files {
		target, err := w.Target(file)
		if err != nil {
			return nil, err
		}
		if !w.force {
			if _, err := os.Stat(target); err == nil {
				return nil, fmt.Errorf("%w: %s", ErrExists, target)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("writer: stat %s: %w", target, err)
			}
		}
		targets[i] = target
	}

	for i, file := range files {
		if err := w.write(targets[i], file.Content); err != nil {
			return targets[:i], err
		}
		w.logger.Debug("file written", zap.String("path", targets[i]), zap.Int("bytes", len(file.Content)))
	}
	return targets, nil
}

func (w *Writer) write(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("writer: create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writer: write %s: %w", target, err)
	}
	return nil
}
