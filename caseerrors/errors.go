package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnterminatedBlock indicates a block header without a closing brace.
	ErrUnterminatedBlock = errors.New("unterminated block")

	// ErrUnsupportedCaseConvention indicates an unknown casing token.
	ErrUnsupportedCaseConvention = errors.New("unsupported case convention")

	// ErrUnrecognizedOption indicates an unknown rule key.
	ErrUnrecognizedOption = errors.New("unrecognized convention option")

	// ErrInvalidOverrideShape indicates an override value of the wrong kind.
	ErrInvalidOverrideShape = errors.New("invalid override shape")

	// ErrMalformedDeclaration indicates a block header that could not be parsed.
	ErrMalformedDeclaration = errors.New("malformed declaration")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ScanError reports a block that was opened but never closed.
type ScanError struct {
	// Kind is the block keyword ("model", "view" or "enum")
	Kind string
	// Line is the 1-based line number of the block header
	Line int
}

// Error returns a human-readable error message.
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s starting on line %d did not end", e.Kind, e.Line)
}

// Is reports whether target matches this error type.
func (e *ScanError) Is(target error) bool {
	return target == ErrUnterminatedBlock
}

// CaseConventionError reports a casing token outside of pascal, camel and snake.
type CaseConventionError struct {
	// Token is the rejected value, including any ",plural" style suffix
	Token string
}

// Error returns a human-readable error message.
func (e *CaseConventionError) Error() string {
	return fmt.Sprintf("unsupported case convention: %q", e.Token)
}

// Is reports whether target matches this error type.
// Matches ErrUnsupportedCaseConvention and ErrConfig.
func (e *CaseConventionError) Is(target error) bool {
	return target == ErrUnsupportedCaseConvention || target == ErrConfig
}

// OptionError reports a rule key that is not one of the six convention axes.
type OptionError struct {
	// Option is the rejected key
	Option string
	// Valid lists the accepted keys, used in the message when set
	Valid []string
}

// Error returns a human-readable error message.
func (e *OptionError) Error() string {
	msg := fmt.Sprintf("unrecognized mapping option specified: %q", e.Option)
	if len(e.Valid) > 0 {
		msg += fmt.Sprintf(", valid options are: %q", e.Valid)
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrUnrecognizedOption and ErrConfig.
func (e *OptionError) Is(target error) bool {
	return target == ErrUnrecognizedOption || target == ErrConfig
}

// OverrideShapeError reports an override entry whose value has the wrong kind.
type OverrideShapeError struct {
	// Entity is the override key, e.g. "Account" or "Account.field"
	Entity string
	// Kind describes the value actually found, e.g. "null" or "int"
	Kind string
}

// Error returns a human-readable error message.
func (e *OverrideShapeError) Error() string {
	return fmt.Sprintf("override %s was %s, but should be a string or an object with properties (default, field)", e.Entity, e.Kind)
}

// Is reports whether target matches this error type.
// Matches ErrInvalidOverrideShape and ErrConfig.
func (e *OverrideShapeError) Is(target error) bool {
	return target == ErrInvalidOverrideShape || target == ErrConfig
}

// DeclarationError reports a block start line that does not match the header grammar.
type DeclarationError struct {
	// Line is the 1-based line number
	Line int
	// Text is the offending line
	Text string
}

// Error returns a human-readable error message.
func (e *DeclarationError) Error() string {
	msg := fmt.Sprintf("malformed declaration at line %d", e.Line)
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DeclarationError) Is(target error) bool {
	return target == ErrMalformedDeclaration
}

// ConfigError represents a configuration source that could not be loaded.
type ConfigError struct {
	// Path is the configuration file path, empty for inline content
	Path string
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
