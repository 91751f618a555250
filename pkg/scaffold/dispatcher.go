package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-adaptergen/pkg/answers"
)

// Option customises the dispatcher.
type Option func(*Dispatcher)

// WithLogger routes dispatch diagnostics to logger. Nil keeps the no-op
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher runs every template of a registry against an answer set.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher constructs a dispatcher over registry. A nil registry is
// treated as empty.
func NewDispatcher(registry *Registry, options ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.registry == nil {
		d.registry = NewRegistry()
	}
	return d
}

// Registry exposes the dispatcher's template registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Generate renders every registered template. Answers failing validation are
// rejected before any template runs. Skipped templates produce no
// file; the rest are returned in registration order. Any other template
// error aborts the run without partial output.
func (d *Dispatcher) Generate(a answers.Answers) ([]File, error) {
	if err := validate(a); err != nil {
		return nil, err
	}

	templates := d.registry.Templates()
	files := make([]File, 0, len(templates))

	for _, t := range templates {
		file, ok, err := d.run(t, a)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, file)
		}
	}
	return files, nil
}

// GenerateOne renders a single template by name. The boolean is false when
// the template skipped itself.
func (d *Dispatcher) GenerateOne(name string, a answers.Answers) (File, bool, error) {
	t, err := d.registry.Get(name)
	if err != nil {
		return File{}, false, err
	}
	if err := validate(a); err != nil {
		return File{}, false, err
	}
	return d.run(t, a)
}

// validate enforces the settings contract before any template sees the
// answers, whichever way they were built.
func validate(a answers.Answers) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("scaffold: invalid answers: %w", err)
	}
	return nil
}

func (d *Dispatcher) run(t Template, a answers.Answers) (File, bool, error) {
	content, err := t.Generate(a)
	if errors.Is(err, ErrSkip) {
		d.logger.Debug("template skipped", zap.String("template", t.Name))
		return File{}, false, nil
	}
	if err != nil {
		return File{}, false, fmt.Errorf("scaffold: template %q: %w", t.Name, err)
	}

	file := File{
		Path:    ResolvePath(t),
		Content: strings.TrimSpace(content),
	}
	d.logger.Debug("template rendered",
		zap.String("template", t.Name),
		zap.String("path", file.Path),
		zap.Int("bytes", len(file.Content)),
	)
	return file, true, nil
}
