package adaptergen

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
	"github.com/goliatone/go-adaptergen/pkg/settings"
	"github.com/goliatone/go-adaptergen/pkg/templates"
)

// Answers aliases answers.Answers for callers using the top-level package.
type Answers = answers.Answers

// Field aliases settings.Field, one adapter settings descriptor.
type Field = settings.Field

// File aliases scaffold.File, one generated output file.
type File = scaffold.File

// Option customises the dispatcher built by NewDispatcher and Generate.
type Option func(*config)

type config struct {
	templateOptions []templates.Option
	logger          *zap.Logger
}

// WithTemplateOptions forwards options to the built-in template set, e.g. a
// templates directory override.
func WithTemplateOptions(options ...templates.Option) Option {
	return func(cfg *config) {
		cfg.templateOptions = append(cfg.templateOptions, options...)
	}
}

// WithLogger routes dispatch diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// NewDispatcher builds a dispatcher over the built-in templates.
func NewDispatcher(options ...Option) (*scaffold.Dispatcher, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry, err := templates.Registry(cfg.templateOptions...)
	if err != nil {
		return nil, err
	}
	return scaffold.NewDispatcher(registry, scaffold.WithLogger(cfg.logger)), nil
}

// Generate runs the built-in templates against a and returns the files to
// write, in the fixed template order. It is the simplest entry point for
// callers that already hold an answer set.
func Generate(a Answers, options ...Option) ([]File, error) {
	dispatcher, err := NewDispatcher(options...)
	if err != nil {
		return nil, err
	}
	return dispatcher.Generate(a)
}

// ParseAnswers decodes a YAML or JSON answers document.
func ParseAnswers(data []byte) (Answers, error) {
	return answers.Parse(data)
}
