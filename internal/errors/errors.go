// Package errors defines the sentinel and typed errors shared by the bridge
// packages, plus the helpers that classify them for logging.
//
// Construction failures are [ConstructionError] values and always match
// [ErrInvalidConstruction]. Lookups and registrations fail with the semantic
// types [NotFoundError], [AlreadyExistsError] and [ValidationError].
//
//	err := errors.NewConstructionError("abstraction", errors.ErrNilImplementor).
//		WithVariant("refined")
//
//	if errors.Is(err, errors.ErrInvalidConstruction) { ... }
//
// Every typed error reports a [Severity] and whether its message is safe to
// show a user; [GetSeverity] and [IsUserFacing] answer the same questions
// for arbitrary wrapped errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-exported so callers need only this package.
var (
	Is   = errors.Is
	As   = errors.As
	New  = errors.New
	Join = errors.Join
)

// Severity ranks how serious an error is.
type Severity int

const (
	// SeverityWarning marks bad input the caller can correct.
	SeverityWarning Severity = iota
	// SeverityError marks a failure of the operation itself.
	SeverityError
)

// String returns the lowercase name used in log output.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidConstruction indicates that an object was built from invalid parts.
	ErrInvalidConstruction = New("invalid construction")
	// ErrNilImplementor indicates that an abstraction has no implementor.
	ErrNilImplementor = fmt.Errorf("%w: implementor is nil", ErrInvalidConstruction)
	// ErrUnknownVariant indicates that a variant name is not registered.
	ErrUnknownVariant = New("unknown variant")

	ErrNotFound      = New("not found")
	ErrAlreadyExists = New("already exists")
	ErrInvalidInput  = New("invalid input")
)

// Classified is implemented by every typed error in this package.
type Classified interface {
	error
	Severity() Severity
	IsUserFacing() bool
}

// classified carries the fields shared by the typed errors.
type classified struct {
	cause    error
	severity Severity
}

func (c *classified) Unwrap() error        { return c.cause }
func (c *classified) Severity() Severity   { return c.severity }
func (c *classified) IsUserFacing() bool   { return true }
func (c *classified) causeIs(t error) bool { return c.cause != nil && errors.Is(c.cause, t) }

// ConstructionError reports that a component could not be built from the
// parts it was given.
//
//	construction error [component=abstraction, variant=refined]: invalid construction: implementor is nil
type ConstructionError struct {
	classified
	Component string
	Variant   string
}

// NewConstructionError creates a ConstructionError for the named component.
func NewConstructionError(component string, cause error) *ConstructionError {
	return &ConstructionError{
		classified: classified{cause: cause, severity: SeverityError},
		Component:  component,
	}
}

// WithVariant records which variant was being constructed.
func (e *ConstructionError) WithVariant(variant string) *ConstructionError {
	e.Variant = variant
	return e
}

func (e *ConstructionError) Error() string {
	var parts []string
	if e.Component != "" {
		parts = append(parts, "component="+e.Component)
	}
	if e.Variant != "" {
		parts = append(parts, "variant="+e.Variant)
	}

	msg := "construction error"
	if len(parts) > 0 {
		msg += " [" + strings.Join(parts, ", ") + "]"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Is matches any *ConstructionError and ErrInvalidConstruction, with or
// without a cause.
func (e *ConstructionError) Is(target error) bool {
	if _, ok := target.(*ConstructionError); ok {
		return true
	}
	return target == ErrInvalidConstruction || e.causeIs(target)
}

// NotFoundError reports an unknown registry entry or variant.
type NotFoundError struct {
	classified
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a NotFoundError, e.g. ("implementor", "c").
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		classified:   classified{severity: SeverityWarning},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.ResourceID)
}

// Is matches any *NotFoundError, ErrNotFound and ErrUnknownVariant.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return target == ErrNotFound || target == ErrUnknownVariant
}

// AlreadyExistsError reports an attempt to register a name twice.
type AlreadyExistsError struct {
	classified
	ResourceType string
	ResourceID   string
}

// NewAlreadyExistsError creates an AlreadyExistsError.
func NewAlreadyExistsError(resourceType, resourceID string) *AlreadyExistsError {
	return &AlreadyExistsError{
		classified:   classified{severity: SeverityWarning},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.ResourceType, e.ResourceID)
}

// Is matches any *AlreadyExistsError and ErrAlreadyExists.
func (e *AlreadyExistsError) Is(target error) bool {
	if _, ok := target.(*AlreadyExistsError); ok {
		return true
	}
	return target == ErrAlreadyExists
}

// ValidationError reports invalid input, optionally naming the field.
//
//	validation error [field=name, value=]: implementor name cannot be empty
type ValidationError struct {
	classified
	message string
	Field   string
	Value   any
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		classified: classified{severity: SeverityWarning},
		message:    message,
	}
}

// WithField names the offending field.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the offending value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if len(parts) == 0 {
		return "validation error: " + e.message
	}
	return fmt.Sprintf("validation error [%s]: %s", strings.Join(parts, ", "), e.message)
}

// Is matches any *ValidationError and ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return target == ErrInvalidInput
}

// GetSeverity returns the severity of the first Classified error in err's
// chain. Anything else, such as an I/O failure, is SeverityError.
func GetSeverity(err error) Severity {
	var c Classified
	if As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}

// IsUserFacing reports whether err's message is meant for the user rather
// than being an internal failure.
func IsUserFacing(err error) bool {
	var c Classified
	return As(err, &c) && c.IsUserFacing()
}

// Wrapf wraps err with a formatted context message; a nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
