package templates

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
	"github.com/goliatone/go-adaptergen/pkg/settings"
)

// Filters available to the built-in templates.
const (
	FilterTSString   = "ts_string"
	FilterTSProperty = "ts_property"
	FilterTSComment  = "ts_comment"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func init() {
	filters := map[string]func(input any, param any) (any, error){
		FilterTSString:   stringFilter(quote),
		FilterTSProperty: stringFilter(propertyName),
		FilterTSComment:  stringFilter(commentText),
	}
	for name, fn := range filters {
		if err := gotemplate.RegisterFilter(name, fn); err != nil {
			panic(err)
		}
	}
}

// adapterConfigTypings declares the shape of adapter.config for TypeScript
// adapters, one property per settings field.
func (s *Set) adapterConfigTypings(a answers.Answers) (string, error) {
	if !a.UsesTypeScript() {
		return scaffold.Skip()
	}
	if err := a.Validate(); err != nil {
		return "", err
	}

	fields := a.Settings()
	properties := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		prop := map[string]any{
			"key":         field.Key,
			"type":        configType(field),
			"description": field.Description,
		}
		if field.Is(settings.InputSelect) {
			prop["values"] = unionValues(field.Options)
		}
		properties = append(properties, prop)
	}

	return s.render(AdapterConfigTypings, map[string]any{
		"properties": properties,
	})
}

// configType maps a non-select settings field to the TypeScript type of its
// value. Selects are spelled as a union of their option values.
func configType(field settings.Field) string {
	switch field.InputType {
	case settings.InputCheckbox:
		return "boolean"
	case settings.InputNumber:
		return "number"
	default:
		return "string"
	}
}

// unionValues lists option values once each, in first-seen order.
func unionValues(options []settings.Option) []string {
	seen := make(map[string]struct{}, len(options))
	values := make([]string, 0, len(options))
	for _, opt := range options {
		if _, ok := seen[opt.Value]; ok {
			continue
		}
		seen[opt.Value] = struct{}{}
		values = append(values, opt.Value)
	}
	return values
}

func propertyName(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}
	return quote(key)
}

func commentText(text string) string {
	return strings.ReplaceAll(text, "*/", `*\/`)
}

func quote(s string) string {
	payload, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(payload)
}

func stringFilter(fn func(string) string) func(input any, param any) (any, error) {
	return func(input any, _ any) (any, error) {
		s, ok := input.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", input)
		}
		return fn(s), nil
	}
}
