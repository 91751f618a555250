package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/settings"
)

// KnownTools lists the tools offered by the tools question.
var KnownTools = []string{answers.ToolDevcontainer}

var (
	languages  = []string{answers.LanguageTypeScript, answers.LanguageJavaScript}
	inputTypes = []string{
		string(settings.InputText),
		string(settings.InputCheckbox),
		string(settings.InputSelect),
		string(settings.InputNumber),
	}
)

// Fill prompts for every question absent from a and returns the completed
// answer set. Explicit answers are never asked again.
func Fill(ctx context.Context, driver Driver, a answers.Answers) (answers.Answers, error) {
	if driver == nil {
		return a, errors.New("prompt: driver is required")
	}

	if !a.Has(answers.KeyTools) {
		picked, err := driver.MultiSelect(ctx, SelectConfig{
			Message: "Which tools should be set up?",
			Options: KnownTools,
		})
		if err != nil {
			return a, err
		}
		tools := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx < 0 || idx >= len(KnownTools) {
				return a, fmt.Errorf("prompt: tool choice %d out of range", idx)
			}
			tools = append(tools, KnownTools[idx])
		}
		a = a.WithTools(tools...)
	}

	if !a.Has(answers.KeyLanguage) {
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      "Which language do you want to use?",
			Options:      languages,
			DefaultIndex: indexOf(languages, answers.LanguageJavaScript),
		})
		if err != nil {
			return a, err
		}
		if idx < 0 || idx >= len(languages) {
			return a, fmt.Errorf("prompt: language choice %d out of range", idx)
		}
		a = a.WithLanguage(languages[idx])
	}

	if !a.Has(answers.KeyAdminReact) {
		yes, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Use React for the admin UI?",
		})
		if err != nil {
			return a, err
		}
		choice := answers.AdminReactNo
		if yes {
			choice = answers.AdminReactYes
		}
		a = a.WithAdminReact(choice)
	}

	if !a.Has(answers.KeyAdapterSettings) {
		useDefaults, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Start with the default adapter settings?",
			Default: true,
		})
		if err != nil {
			return a, err
		}
		if !useDefaults {
			fields, err := askFields(ctx, driver)
			if err != nil {
				return a, err
			}
			a = a.WithSettings(fields...)
		}
	}

	return a, a.Validate()
}

func askFields(ctx context.Context, driver Driver) ([]settings.Field, error) {
	fields := []settings.Field{}
	seen := map[string]struct{}{}

	for {
		key, err := driver.Input(ctx, InputConfig{
			Message: "Setting key (leave empty to finish):",
			Validator: func(s string) error {
				if _, dup := seen[strings.TrimSpace(s)]; dup {
					return settings.ErrDuplicateKey
				}
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fields, nil
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("prompt: setting %q: %w", key, settings.ErrDuplicateKey)
		}

		field, err := askField(ctx, driver, key)
		if err != nil {
			return nil, err
		}
		seen[key] = struct{}{}
		fields = append(fields, field)
	}
}

func askField(ctx context.Context, driver Driver, key string) (settings.Field, error) {
	field := settings.Field{Key: key}

	label, err := driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Label for %q:", key),
		Default: key,
	})
	if err != nil {
		return field, err
	}
	if label != key {
		field.Label = label
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message: fmt.Sprintf("Input type for %q:", key),
		Options: inputTypes,
	})
	if err != nil {
		return field, err
	}
	if idx < 0 || idx >= len(inputTypes) {
		return field, fmt.Errorf("prompt: input type choice %d out of range", idx)
	}
	field.InputType = settings.InputType(inputTypes[idx])

	if field.Is(settings.InputSelect) {
		raw, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Options for %q (value=text, comma separated):", key),
			Validator: func(s string) error {
				if len(ParseOptions(s)) == 0 {
					return settings.ErrMissingOptions
				}
				return nil
			},
		})
		if err != nil {
			return field, err
		}
		field.Options = ParseOptions(raw)
	}

	description, err := driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Description for %q (optional):", key),
	})
	if err != nil {
		return field, err
	}
	field.Description = strings.TrimSpace(description)

	return field, nil
}

// ParseOptions reads a comma separated list of value=text pairs. A pair
// without "=" uses the value as its text. Empty entries are dropped.
func ParseOptions(raw string) []settings.Option {
	var out []settings.Option
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, text, found := strings.Cut(part, "=")
		value = strings.TrimSpace(value)
		text = strings.TrimSpace(text)
		if !found || text == "" {
			text = value
		}
		if value == "" {
			continue
		}
		out = append(out, settings.Option{Value: value, Text: text})
	}
	return out
}
