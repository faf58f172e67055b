// Package validation checks inbound request DTOs against their constraint
// tags, walking nested objects and slice elements, and reports every
// violation found rather than stopping at the first.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation is one failing field path with its messages.
type Violation struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under json field names, not Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates the DTO and returns all violations grouped by dotted
// field path, in discovery order. Nil means the DTO is fully valid.
func Check(payload interface{}) []Violation {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-struct payloads cannot come from our handlers.
		return []Violation{{Field: "_payload", Messages: []string{err.Error()}}}
	}

	index := make(map[string]int, len(fieldErrs))
	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		msg := message(fe)
		if i, ok := index[field]; ok {
			violations[i].Messages = append(violations[i].Messages, msg)
			continue
		}
		index[field] = len(violations)
		violations = append(violations, Violation{Field: field, Messages: []string{msg}})
	}
	return violations
}

// fieldPath strips the root struct name: "CreatePostDto.metadata.tags[0].name"
// becomes "metadata.tags[0].name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	kind := fe.Kind()
	isString := kind == reflect.String
	isList := kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		switch {
		case isString:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case isList:
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		switch {
		case isString:
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		case isList:
			return fmt.Sprintf("must not contain more than %s items", fe.Param())
		default:
			return fmt.Sprintf("must not exceed %s", fe.Param())
		}
	default:
		return fmt.Sprintf("failed the %s constraint", fe.Tag())
	}
}
