package answers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON answers document. Unknown keys are rejected
// and the settings list is validated before the answers are returned.
func Parse(data []byte) (Answers, error) {
	var out Answers
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return Answers{}, nil
		}
		return Answers{}, fmt.Errorf("answers: decode: %w", err)
	}

	if err := out.Validate(); err != nil {
		return Answers{}, fmt.Errorf("answers: invalid adapterSettings: %w", err)
	}
	return out, nil
}

// LoadFile reads and parses an answers document from disk.
func LoadFile(path string) (Answers, error) {
	if path == "" {
		return Answers{}, errors.New("answers: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("answers: read %s: %w", path, err)
	}
	out, err := Parse(data)
	if err != nil {
		return Answers{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return out, nil
}

// Marshal encodes answers as YAML, omitting unanswered questions.
func Marshal(a Answers) ([]byte, error) {
	data, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("answers: encode: %w", err)
	}
	return data, nil
}
