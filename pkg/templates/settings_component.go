package templates

import (
	"fmt"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/form"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
)

// settingsComponent renders the React settings page of the admin UI. Only
// TypeScript adapters with a React admin UI get one.
func (s *Set) settingsComponent(a answers.Answers) (string, error) {
	if !(a.UsesTypeScript() && a.UsesReact()) {
		return scaffold.Skip()
	}

	if err := a.Validate(); err != nil {
		return "", err
	}

	nodes := form.CompileWith(s.rules, a.Settings())
	body, err := s.formRenderer.Render(nodes)
	if err != nil {
		return "", fmt.Errorf("render settings form: %w", err)
	}

	return s.render(SettingsComponent, map[string]any{
		"form_body": body,
	})
}
