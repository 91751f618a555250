package answers

import (
	"slices"

	"github.com/goliatone/go-adaptergen/pkg/settings"
)

// Key identifies a recognized question.
type Key string

const (
	KeyTools           Key = "tools"
	KeyLanguage        Key = "language"
	KeyAdminReact      Key = "adminReact"
	KeyAdapterSettings Key = "adapterSettings"
)

// Keys lists every recognized question in declaration order.
func Keys() []Key {
	return []Key{KeyTools, KeyLanguage, KeyAdminReact, KeyAdapterSettings}
}

const (
	LanguageTypeScript = "TypeScript"
	LanguageJavaScript = "JavaScript"

	AdminReactYes = "yes"
	AdminReactNo  = "no"

	ToolDevcontainer = "devcontainer"
)

// Answers is the configuration bag for one scaffolding run. A nil field means
// the question was not answered.
type Answers struct {
	Tools           *[]string         `json:"tools,omitempty" yaml:"tools,omitempty"`
	Language        *string           `json:"language,omitempty" yaml:"language,omitempty"`
	AdminReact      *string           `json:"adminReact,omitempty" yaml:"adminReact,omitempty"`
	AdapterSettings *[]settings.Field `json:"adapterSettings,omitempty" yaml:"adapterSettings,omitempty"`
}

// Has reports whether the question was answered explicitly.
func (a Answers) Has(key Key) bool {
	switch key {
	case KeyTools:
		return a.Tools != nil
	case KeyLanguage:
		return a.Language != nil
	case KeyAdminReact:
		return a.AdminReact != nil
	case KeyAdapterSettings:
		return a.AdapterSettings != nil
	}
	return false
}

// ToolList returns the selected tools, or the default selection.
func (a Answers) ToolList() []string {
	if a.Tools != nil {
		return slices.Clone(*a.Tools)
	}
	return Default(KeyTools).([]string)
}

// LanguageName returns the selected language, or the default language.
func (a Answers) LanguageName() string {
	if a.Language != nil {
		return *a.Language
	}
	return Default(KeyLanguage).(string)
}

// AdminReactChoice returns the admin UI choice, or the default.
func (a Answers) AdminReactChoice() string {
	if a.AdminReact != nil {
		return *a.AdminReact
	}
	return Default(KeyAdminReact).(string)
}

// Settings returns the adapter settings list, or the built-in list when the
// question was not answered. An explicitly empty list stays empty.
func (a Answers) Settings() []settings.Field {
	if a.AdapterSettings != nil {
		return settings.CloneAll(*a.AdapterSettings)
	}
	return Default(KeyAdapterSettings).([]settings.Field)
}

// HasTool reports whether the named tool was selected.
func (a Answers) HasTool(name string) bool {
	return slices.Contains(a.ToolList(), name)
}

// UsesTypeScript reports whether the adapter is written in TypeScript.
func (a Answers) UsesTypeScript() bool {
	return a.LanguageName() == LanguageTypeScript
}

// UsesReact reports whether the admin UI is built with React.
func (a Answers) UsesReact() bool {
	return a.AdminReactChoice() == AdminReactYes
}

// Validate checks the answered values against the field contract. Only the
// settings list carries structural rules.
func (a Answers) Validate() error {
	if a.AdapterSettings == nil {
		return nil
	}
	return settings.Validate(*a.AdapterSettings)
}

// WithTools returns a copy with the tools answer set.
func (a Answers) WithTools(tools ...string) Answers {
	list := slices.Clone(tools)
	if list == nil {
		list = []string{}
	}
	a.Tools = &list
	return a
}

// WithLanguage returns a copy with the language answer set.
func (a Answers) WithLanguage(language string) Answers {
	a.Language = &language
	return a
}

// WithAdminReact returns a copy with the admin UI answer set.
func (a Answers) WithAdminReact(choice string) Answers {
	a.AdminReact = &choice
	return a
}

// WithSettings returns a copy with the adapter settings answer set.
func (a Answers) WithSettings(fields ...settings.Field) Answers {
	list := settings.CloneAll(fields)
	if list == nil {
		list = []settings.Field{}
	}
	a.AdapterSettings = &list
	return a
}
