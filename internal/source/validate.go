package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gyeh/civicres/internal/model"
)

var validate = validator.New()

// Validate checks that every county result names its county. Unknown or
// empty resource types are not an error here.
func Validate(doc *model.RawDocument) error {
	if doc.Results == nil {
		return fmt.Errorf("missing required field: results")
	}
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

// fieldPath turns "RawDocument.Results[2].County" into "results[2].county".
func fieldPath(ns string) string {
	ns = strings.TrimPrefix(ns, "RawDocument.")
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
