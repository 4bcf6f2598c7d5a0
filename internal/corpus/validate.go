package corpus

import (
	"fmt"
	"sort"
	"strings"

	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
)

const (
	maxIDLength   = 255
	maxTextLength = 1048576
)

// ValidationError holds per-field failure messages for one document.
type ValidationError struct {
	ID     string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s: %s", field, e.Fields[field])
	}
	return fmt.Sprintf("invalid document %q: %s", e.ID, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return fterrors.ErrInvalidInput
}

// Validate checks the id and text length limits of doc. Empty text is
// allowed; such a document is stored but matches no query.
func Validate(doc Document) error {
	errs := make(map[string]string)
	switch {
	case strings.TrimSpace(doc.ID) == "":
		errs["id"] = "id is required"
	case len(doc.ID) > maxIDLength:
		errs["id"] = fmt.Sprintf("id must be at most %d bytes", maxIDLength)
	}
	if len(doc.Text) > maxTextLength {
		errs["text"] = fmt.Sprintf("text must be at most %d bytes", maxTextLength)
	}
	if len(errs) > 0 {
		return &ValidationError{ID: doc.ID, Fields: errs}
	}
	return nil
}
