package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/bridge/internal/abstraction"
	"github.com/Iron-Ham/bridge/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "demo.abstraction")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateDemo()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateDemo validates the DemoConfig. Implementor names are resolved
// against the registry at run time; here only their shape is checked.
func (c *Config) validateDemo() []ValidationError {
	var errors []ValidationError

	if len(c.Demo.Implementors) == 0 {
		errors = append(errors, ValidationError{
			Field:   "demo.implementors",
			Value:   c.Demo.Implementors,
			Message: "must list at least one implementor",
		})
	}

	for i, name := range c.Demo.Implementors {
		if strings.TrimSpace(name) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("demo.implementors[%d]", i),
				Value:   name,
				Message: "cannot be empty",
			})
		}
	}

	kind := strings.ToLower(strings.TrimSpace(c.Demo.Abstraction))
	if !slices.Contains(abstraction.ValidKinds(), kind) {
		errors = append(errors, ValidationError{
			Field:   "demo.abstraction",
			Value:   c.Demo.Abstraction,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(abstraction.ValidKinds(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig. Levels are matched the same
// way the logger parses them, ignoring case.
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	level := c.Logging.Level
	known := slices.ContainsFunc(logging.ValidLevels(), func(l string) bool {
		return strings.EqualFold(l, level)
	})
	if level != "" && !known {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		})
	}

	return errors
}
