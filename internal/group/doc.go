// Package group implements the command group: one root command that
// aggregates named sub-commands and dispatches a command line to exactly
// one of them.
//
// The group is built in two phases. During registration, commands are
// added by value and their names and aliases are checked for uniqueness.
// The first Dispatch freezes the group; after that it is read-only.
//
// Parsing, help output, and shell completion are delegated to
// github.com/spf13/cobra. The group adds the registration contract on top
// (DuplicateNameError instead of silently shadowed commands) and maps every
// command-line mistake to a model.UsageError so callers get exit code 2.
package group
