package settings

// InputType is the control kind requested for a settings field. Values other
// than the declared constants are legal free-form tags and are forwarded to
// generic input controls verbatim.
type InputType string

const (
	InputText     InputType = "text"
	InputCheckbox InputType = "checkbox"
	InputSelect   InputType = "select"
	InputNumber   InputType = "number"
)

// Option is a single select choice. Value is stored in the adapter config,
// Text is what the admin UI shows.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text" yaml:"text"`
}

// Field describes one adapter setting. Key must be unique within the list it
// belongs to; select fields must carry at least one option.
type Field struct {
	Key          string    `json:"key" yaml:"key"`
	Label        string    `json:"label,omitempty" yaml:"label,omitempty"`
	InputType    InputType `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	Options      []Option  `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue any       `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Title returns the label, falling back to the key when no label is set.
func (f Field) Title() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// Is reports whether the field requests the supplied input type.
func (f Field) Is(kind InputType) bool {
	return f.InputType == kind
}

// Clone returns a deep copy of the field so callers can hand lists out
// without sharing option slices.
func (f Field) Clone() Field {
	out := f
	if f.Options != nil {
		out.Options = append([]Option(nil), f.Options...)
	}
	return out
}

// CloneAll deep copies a field list, preserving nil.
func CloneAll(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}
