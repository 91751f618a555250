package templates

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-adaptergen/pkg/form"
	rendertemplate "github.com/goliatone/go-adaptergen/pkg/render/template"
	"github.com/goliatone/go-adaptergen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-adaptergen/pkg/renderers/react"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
)

// Template names, i.e. their location in the template tree.
const (
	SettingsComponent      = "admin/src/components/settings.tsx.ts"
	AdapterConfigTypings   = "src/lib/adapter-config.d.ts.ts"
	DevcontainerDockerfile = "_devcontainer/parcel/_Dockerfile.ts"
)

// DevcontainerDockerfilePath is where the devcontainer Dockerfile is written.
// The derived path would be a dotfile.
const DevcontainerDockerfilePath = ".devcontainer/parcel/Dockerfile"

// Option customises the template set.
type Option func(*config)

type config struct {
	files        fs.FS
	engine       rendertemplate.TemplateRenderer
	formRenderer form.Renderer
	rules        *form.Rules
}

// WithTemplatesFS supplies an alternate template tree via fs.FS. It must
// contain every built-in template file.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.files = files
		}
	}
}

// WithTemplatesDir loads the template tree from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.files = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine. The engine is
// expected to resolve the built-in template names itself.
func WithTemplateRenderer(engine rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithFormRenderer replaces the JSX renderer used for the settings form body.
func WithFormRenderer(renderer form.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.formRenderer = renderer
		}
	}
}

// WithRules replaces the control rules used to compile settings fields.
func WithRules(rules *form.Rules) Option {
	return func(cfg *config) {
		if rules != nil {
			cfg.rules = rules
		}
	}
}

// Set is the built-in template collection bound to a template engine.
type Set struct {
	engine       rendertemplate.TemplateRenderer
	formRenderer form.Renderer
	rules        *form.Rules
}

// New constructs the template set. Template files are parsed up front so
// generation only fails on programming errors in template data.
func New(options ...Option) (*Set, error) {
	cfg := config{
		files:        FilesFS(),
		formRenderer: react.New(),
		rules:        form.NewRules(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.engine
	if engine == nil {
		gt, err := gotemplate.New(
			gotemplate.WithFS(cfg.files),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithPreload(fileNames()...),
		)
		if err != nil {
			return nil, fmt.Errorf("templates: configure template engine: %w", err)
		}
		engine = gt
	}

	return &Set{
		engine:       engine,
		formRenderer: cfg.formRenderer,
		rules:        cfg.rules,
	}, nil
}

// Templates returns the built-in templates in their fixed output order.
func (s *Set) Templates() []scaffold.Template {
	return []scaffold.Template{
		{Name: SettingsComponent, Generate: s.settingsComponent},
		{Name: AdapterConfigTypings, Generate: s.adapterConfigTypings},
		{Name: DevcontainerDockerfile, Generate: s.devcontainerDockerfile, CustomPath: DevcontainerDockerfilePath},
	}
}

// Registry returns a scaffold registry holding the built-in templates.
func (s *Set) Registry() *scaffold.Registry {
	return scaffold.NewRegistry(s.Templates()...)
}

// Registry builds the default template set and returns its registry.
func Registry(options ...Option) (*scaffold.Registry, error) {
	set, err := New(options...)
	if err != nil {
		return nil, err
	}
	return set.Registry(), nil
}

func (s *Set) render(templateName string, data map[string]any) (string, error) {
	return s.engine.RenderTemplate(fileName(templateName), data)
}

// fileName maps a template name to its pongo2 file, minus extension.
func fileName(templateName string) string {
	return strings.TrimSuffix(templateName, scaffold.TemplateSuffix)
}

func fileNames() []string {
	return []string{
		fileName(SettingsComponent),
		fileName(AdapterConfigTypings),
		fileName(DevcontainerDockerfile),
	}
}
