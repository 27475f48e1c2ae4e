package blazon

import "fmt"

// MissingFieldError is returned by metadata constructors when a required
// configuration field was left empty. These are developer-facing,
// definition-time errors: the message names the metadata kind and the field
// so the declaration can be fixed immediately.
type MissingFieldError struct {
	Metadata Kind
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("blazon: %s metadata is missing required field %q", e.Metadata, e.Field)
}

func missingField(kind Kind, field string) error {
	return &MissingFieldError{Metadata: kind, Field: field}
}
