// Package forms validates what the user typed before anything reaches the
// API or the session. A failed check is a *ValidationError; nothing else in
// the client produces one.
package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ValidationError maps a form field to what is wrong with it.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Fields
}

// Field returns the message for one field, or "" when it passed.
func (e *ValidationError) Field(name string) string {
	if err, ok := e.Fields[name]; ok && err != nil {
		return err.Error()
	}
	return ""
}

// Lines renders the failures as "field: message", sorted by field.
func (e *ValidationError) Lines() []string {
	keys := make([]string, 0, len(e.Fields))
	for k, err := range e.Fields {
		if err != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %s", strings.ReplaceAll(k, "_", " "), e.Fields[k].Error()))
	}
	return out
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return err
}
