package form

import "github.com/goliatone/go-adaptergen/pkg/settings"

var builtinRules = NewRules()

// Compile maps settings fields to control nodes using the built-in rules.
// Order is preserved and the result depends only on the input list.
func Compile(fields []settings.Field) []Node {
	return CompileWith(builtinRules, fields)
}

// CompileWith maps settings fields to control nodes using a custom rule table.
func CompileWith(rules *Rules, fields []settings.Field) []Node {
	nodes := make([]Node, 0, len(fields))
	for _, field := range fields {
		nodes = append(nodes, compileField(rules, field))
	}
	return nodes
}

func compileField(rules *Rules, field settings.Field) Node {
	node := Node{
		Kind:  rules.Resolve(field),
		Key:   field.Key,
		Title: field.Title(),
	}

	switch node.Kind {
	case ControlSelect:
		node.Options = append([]settings.Option(nil), field.Options...)
	case ControlCheckbox:
	case ControlInput:
		node.InputType = inputType(field)
	default:
		// Custom kinds carry everything the field declared.
		node.InputType = inputType(field)
		node.Options = append([]settings.Option(nil), field.Options...)
	}
	return node
}

func inputType(field settings.Field) string {
	if field.InputType == "" {
		return DefaultInputType
	}
	return string(field.InputType)
}
