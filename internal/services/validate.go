package services

import (
	"fmt"
	"strings"
)

type field struct {
	name, value string
}

// required fails with ErrMissingField naming every blank field.
func required(fields ...field) error {
	var blank []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	if len(blank) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(blank, ", "))
	}
	return nil
}
