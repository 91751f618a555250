package react

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-adaptergen/pkg/form"
)

const (
	// DefaultSeparator is placed between rendered controls.
	DefaultSeparator = "<br />"
	// DefaultIndent prefixes every rendered control. The leading newline
	// puts each control on its own line inside the surrounding <form>.
	DefaultIndent = "\n\t\t\t\t"
	// DefaultReceiver is the expression the render helpers are called on.
	DefaultReceiver = "this"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	separator string
	indent    string
	receiver  string
}

// WithSeparator overrides the markup placed between controls.
func WithSeparator(separator string) Option {
	return func(cfg *config) {
		cfg.separator = separator
	}
}

// WithIndent overrides the prefix written before each control.
func WithIndent(indent string) Option {
	return func(cfg *config) {
		cfg.indent = indent
	}
}

// WithReceiver changes the object the render helpers are invoked on, e.g.
// "props" for function components. An empty receiver calls bare functions.
func WithReceiver(receiver string) Option {
	return func(cfg *config) {
		cfg.receiver = strings.TrimSpace(receiver)
	}
}

// Renderer spells compiled controls as JSX expressions calling the
// renderInput/renderCheckbox/renderSelect helpers of the settings component.
type Renderer struct {
	separator string
	indent    string
	receiver  string
}

var _ form.Renderer = (*Renderer)(nil)

// New constructs a renderer applying any provided options.
func New(options ...Option) *Renderer {
	cfg := config{
		separator: DefaultSeparator,
		indent:    DefaultIndent,
		receiver:  DefaultReceiver,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{
		separator: cfg.separator,
		indent:    cfg.indent,
		receiver:  cfg.receiver,
	}
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "react"
}

// Render produces the JSX fragment for the supplied controls. An empty node
// list renders an empty string.
func (r *Renderer) Render(nodes []form.Node) (string, error) {
	snippets := make([]string, 0, len(nodes))
	for _, node := range nodes {
		snippet, err := r.renderNode(node)
		if err != nil {
			return "", err
		}
		snippets = append(snippets, r.indent+snippet)
	}
	return strings.Join(snippets, r.separator), nil
}

type selectOption struct {
	Value string `json:"value"`
	Title string `json:"title"`
}

func (r *Renderer) renderNode(node form.Node) (string, error) {
	switch node.Kind {
	case form.ControlSelect:
		options := make([]selectOption, len(node.Options))
		for i, opt := range node.Options {
			options[i] = selectOption{Value: opt.Value, Title: opt.Text}
		}
		payload, err := json.Marshal(options)
		if err != nil {
			return "", fmt.Errorf("react renderer: marshal options for %q: %w", node.Key, err)
		}
		return r.call("renderSelect", stringLiteral(node.Title), stringLiteral(node.Key), string(payload)), nil
	case form.ControlCheckbox:
		return r.call("renderCheckbox", stringLiteral(node.Title), stringLiteral(node.Key)), nil
	case form.ControlInput:
		inputType := node.InputType
		if inputType == "" {
			inputType = form.DefaultInputType
		}
		return r.call("renderInput", stringLiteral(node.Title), stringLiteral(node.Key), stringLiteral(inputType)), nil
	default:
		return "", fmt.Errorf("react renderer: unsupported control kind %q for field %q", node.Kind, node.Key)
	}
}

func (r *Renderer) call(method string, args ...string) string {
	var b strings.Builder
	b.WriteByte('{')
	if r.receiver != "" {
		b.WriteString(r.receiver)
		b.WriteByte('.')
	}
	b.WriteString(method)
	b.WriteByte('(')
	b.WriteString(strings.Join(args, ", "))
	b.WriteString(")}")
	return b.String()
}

// stringLiteral quotes s as a JSON string, which is also a valid JS/TS string
// literal. HTML-significant characters and line separators are escaped.
func stringLiteral(s string) string {
	payload, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(payload)
}
