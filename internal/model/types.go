package model

import (
	"errors"
	"fmt"
	"strings"
)

// OutputFormat selects how commands render structured results and errors.
type OutputFormat string

const (
	// OutputText is plain, human-readable text. This is the default.
	OutputText OutputFormat = "text"

	// OutputJSON renders results as indented JSON for machine consumption.
	OutputJSON OutputFormat = "json"

	// OutputYAML renders results as a YAML document.
	OutputYAML OutputFormat = "yaml"
)

// String returns the string representation of OutputFormat.
// This method satisfies the fmt.Stringer interface.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks whether the OutputFormat value is one of the
// predefined formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// IsStructured returns true for the machine-readable formats.
// Errors are reported as an object instead of an "Error:" line
// when a structured format is selected.
func (f OutputFormat) IsStructured() bool {
	return f == OutputJSON || f == OutputYAML
}

// ParseOutputFormat converts a string to an OutputFormat.
// Returns an error if the string does not match any valid format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}

// ExitCode defines the process exit codes of the CLI.
// Scripts can rely on these to tell success, failure, and misuse apart.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates the command line itself was wrong: an unknown
	// sub-command, a bad flag, or unexpected arguments.
	ExitUsage ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// UsageError reports a malformed command line. It always maps to ExitUsage.
type UsageError struct {
	// Message describes what was wrong with the invocation.
	Message string

	// Command is the full path of the command whose help explains the
	// correct usage (e.g. "easy-as-pypi eat"). May be empty.
	Command string

	// Err is the underlying parse error, if any.
	Err error
}

// Error returns the usage problem.
func (e *UsageError) Error() string {
	return e.Message
}

// Unwrap returns the underlying parse error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a UsageError from a parse error raised while
// handling command.
func NewUsageError(err error, command string) *UsageError {
	return &UsageError{Message: err.Error(), Command: command, Err: err}
}

// DuplicateNameError is returned when a command name or alias is
// registered twice in the same group.
type DuplicateNameError struct {
	// Name is the colliding name or alias.
	Name string

	// Owner is the command that already holds Name.
	Owner string
}

// Error satisfies the error interface.
func (e *DuplicateNameError) Error() string {
	if e.Owner != "" && e.Owner != e.Name {
		return fmt.Sprintf("command name %q already registered (alias of %q)", e.Name, e.Owner)
	}
	return fmt.Sprintf("command name %q already registered", e.Name)
}

// ExitCodeOf maps an error returned by a command to its process exit code.
// nil maps to ExitSuccess, UsageError to ExitUsage, CLIError to its own
// code, and anything else to ExitGeneralError.
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}

	return ExitGeneralError
}
