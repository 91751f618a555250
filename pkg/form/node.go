package form

import "github.com/goliatone/go-adaptergen/pkg/settings"

// ControlKind names the UI control produced for a field.
type ControlKind string

const (
	ControlInput    ControlKind = "input"
	ControlCheckbox ControlKind = "checkbox"
	ControlSelect   ControlKind = "select"
)

// DefaultInputType is used for input controls whose field carries no tag.
const DefaultInputType = "text"

// Node is a single compiled control. Options is only populated for select
// controls and InputType only for input controls.
type Node struct {
	Kind      ControlKind       `json:"kind"`
	Key       string            `json:"key"`
	Title     string            `json:"title"`
	InputType string            `json:"inputType,omitempty"`
	Options   []settings.Option `json:"options,omitempty"`
}

// Renderer turns a compiled control tree into target syntax.
type Renderer interface {
	Render(nodes []Node) (string, error)
}
