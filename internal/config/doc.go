// Package config holds the two pieces of configuration the CLI runs with.
//
// App is the immutable application metadata (package name, author, arg0)
// that is built once in main and passed to everything that renders
// user-facing text. Settings are the user's preferences (locale, verbosity,
// output format), read from an optional YAML file and then overridden by
// command-line flags.
package config
