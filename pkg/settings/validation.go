package settings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingKey reports a field without a key.
	ErrMissingKey = errors.New("settings: field key is required")
	// ErrDuplicateKey reports a key used more than once in one list.
	ErrDuplicateKey = errors.New("settings: duplicate field key")
	// ErrMissingOptions reports a select field without options.
	ErrMissingOptions = errors.New("settings: select field requires options")
)

// Validate checks the field contract for a settings list. Every violation is
// reported; the returned error joins them and each wraps one of the package
// sentinels.
func Validate(fields []Field) error {
	var errs []error
	seen := make(map[string]int, len(fields))

	for idx, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			errs = append(errs, fmt.Errorf("field #%d: %w", idx, ErrMissingKey))
			continue
		}
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("field #%d %q (first declared at #%d): %w", idx, key, first, ErrDuplicateKey))
		} else {
			seen[key] = idx
		}
		if field.Is(InputSelect) && len(field.Options) == 0 {
			errs = append(errs, fmt.Errorf("field #%d %q: %w", idx, key, ErrMissingOptions))
		}
	}

	return errors.Join(errs...)
}
