package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lfenv/lfenv/internal/ansi"
)

// ValidationError represents a configuration error with context.
// It covers a missing file, invalid JSON, and schema violations.
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateJSONSyntax checks that the file at filePath exists and holds valid JSON.
// Returns nil if valid, or a ValidationError with line/column information if invalid.
func ValidateJSONSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if isNotExist(err) {
			return &ValidationError{
				FilePath: filePath,
				Message:  "config file not found",
			}
		}
		if os.IsPermission(err) {
			return &ValidationError{
				FilePath: filePath,
				Message:  "permission denied",
			}
		}
		return &ValidationError{
			FilePath: filePath,
			Message:  err.Error(),
		}
	}

	return ValidateJSONSyntaxFromBytes(data, filePath)
}

// ValidateJSONSyntaxFromBytes checks if JSON data has valid syntax.
// Empty input is rejected.
func ValidateJSONSyntaxFromBytes(data []byte, filePath string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &ValidationError{
			FilePath: filePath,
			Message:  "config file is empty",
		}
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			// Offset counts the offending byte itself.
			line, column := lineColumn(data, syntaxErr.Offset-1)
			return &ValidationError{
				FilePath: filePath,
				Line:     line,
				Column:   column,
				Message:  syntaxErr.Error(),
			}
		}
		return &ValidationError{
			FilePath: filePath,
			Message:  err.Error(),
		}
	}

	if _, ok := v.(map[string]interface{}); !ok {
		return &ValidationError{
			FilePath: filePath,
			Message:  "top-level value must be an object",
		}
	}

	return nil
}

// ValidateConfigValues validates configuration values against the schema.
// Returns nil if valid, or a ValidationError naming the first offending field.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if cfg.Data == nil {
		return &ValidationError{
			FilePath: filePath,
			Field:    "data",
			Message:  "is required",
		}
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{
			FilePath: filePath,
			Message:  err.Error(),
		}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		FilePath: filePath,
		Field:    fieldPath(fe.Namespace()),
		Message:  describeFieldError(fe),
	}
}

// newValidator returns a validator that reports koanf key names and knows
// the "decoration" tag.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("decoration", func(fl validator.FieldLevel) bool {
		// omitempty does not skip a pointer to "", which means "no decoration".
		name := fl.Field().String()
		if name == "" {
			return true
		}
		_, ok := ansi.DecorationCode(name)
		return ok
	})
	return v
}

// fieldPath strips the root struct name from a validator namespace.
// "Configuration.data[0].patterns" -> "data[0].patterns"
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must contain at least one pattern"
	case "decoration":
		return "must be one of: " + strings.Join(ansi.Decorations(), ", ")
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line = 1
	column = 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
