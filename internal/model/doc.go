// Package model defines the shared value types for the easy-as-pypi CLI.
//
// This package contains pure data structures with no external dependencies:
// the output formats understood by every command, the exit codes returned
// to the OS, and the error types (CLIError, UsageError, DuplicateNameError)
// that carry those exit codes from commands back to the entry point.
package model
