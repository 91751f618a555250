package answers

import "github.com/goliatone/go-adaptergen/pkg/settings"

// Default returns the schema default for a recognized question. It is total
// over Keys(); unknown keys return nil. Every call returns fresh values.
func Default(key Key) any {
	switch key {
	case KeyTools:
		return []string{}
	case KeyLanguage:
		return LanguageJavaScript
	case KeyAdminReact:
		return AdminReactNo
	case KeyAdapterSettings:
		return defaultSettings()
	}
	return nil
}

func defaultSettings() []settings.Field {
	return []settings.Field{
		{
			Key:          "option1",
			Label:        "Option 1",
			InputType:    settings.InputCheckbox,
			DefaultValue: true,
			Description:  "This is a checkbox option",
		},
		{
			Key:          "option2",
			Label:        "Option 2",
			InputType:    settings.InputText,
			DefaultValue: "42",
			Description:  "This is a text option",
		},
	}
}
