// Package cli implements the cobra-based command line of easy-as-pypi.
//
// Each sub-command (eat, version) is defined in its own file within this
// package. This file builds the root command, owns the global flags, and
// turns the error of a dispatch into a printed message and an exit code.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/doblabs/easy-as-pypi/internal/config"
	"github.com/doblabs/easy-as-pypi/internal/group"
	"github.com/doblabs/easy-as-pypi/internal/i18n"
	"github.com/doblabs/easy-as-pypi/internal/logging"
	"github.com/doblabs/easy-as-pypi/internal/model"
	"github.com/doblabs/easy-as-pypi/internal/version"
)

// Options are the inputs main hands to the CLI.
type Options struct {
	// App is the application metadata.
	App config.App

	// Version is the build-time version; empty enables the external lookup.
	Version string

	// Build carries the commit and date stamped in by the release build.
	Build version.Build

	// VersionLookup replaces the default `git latest-version` lookup.
	VersionLookup version.Lookup

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// globalFlags holds the values of the persistent flags on the root command.
type globalFlags struct {
	configPath string
	locale     string
	output     string
	verbose    bool
}

// CLI is the assembled command line: the command group with its commands
// registered, plus the services those commands render text with.
type CLI struct {
	opts     Options
	group    *group.Group
	flags    globalFlags
	settings config.Settings
	tr       *i18n.Translator
	log      *logrus.Logger
	prober   *version.Prober
}

// New creates the root command and registers every sub-command.
//
// The root command itself does not perform any action. Invoked alone it
// prints help; actual functionality is provided by sub-commands.
func New(opts Options) (*CLI, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	settings := config.DefaultSettings()
	tr, err := i18n.New(settings.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load message catalogs: %w", err)
	}

	c := &CLI{
		opts:     opts,
		settings: settings,
		tr:       tr,
		log:      logging.New(opts.Stderr, false),
	}

	proberOpts := []version.Option{version.WithLogger(c.log)}
	if opts.VersionLookup != nil {
		proberOpts = append(proberOpts, version.WithLookup(opts.VersionLookup))
	}
	c.prober = version.NewProber(opts.Version, proberOpts...)

	root := &cobra.Command{
		Use:   opts.App.Arg0,
		Short: "A command-line application built from the easy-as-pypi skeleton",
		Long: fmt.Sprintf(`%s is a starter command-line application.

Replace the sample commands with your own.

%s`, opts.App.PackageName, opts.App.Copyright()),

		// Version is displayed when --version flag is used.
		Version: opts.Build.Describe(c.prober.Probe()),

		// Settings are resolved once flags are parsed, before any
		// sub-command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.prepare(cmd.Flags())
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)
	root.SetVersionTemplate(opts.App.PackageName + " version {{.Version}}\n")

	// PersistentFlags are inherited by all sub-commands.
	root.PersistentFlags().StringVar(&c.flags.configPath, "config", "", "Path to a YAML settings file")
	root.PersistentFlags().StringVar(&c.flags.locale, "locale", config.DefaultLocale, "Language for messages (e.g. en, de)")
	root.PersistentFlags().StringVarP(&c.flags.output, "output", "o", model.OutputText.String(), "Output format: text, json, yaml")
	root.PersistentFlags().BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable verbose output")

	c.group = group.New(root, group.WithLogger(c.log))

	// Register sub-commands. Each is defined in its own file and
	// returns a group.Command.
	for _, cmd := range []group.Command{
		c.newEatCommand(),
		c.newVersionCommand(),
	} {
		if err := c.group.Register(cmd); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Execute dispatches args (without the program name) and returns the
// process exit code. Errors are printed to stderr before returning.
func (c *CLI) Execute(ctx context.Context, args []string) model.ExitCode {
	code, err := c.group.Dispatch(ctx, args)
	if err != nil {
		c.printError(err)
	}
	return code
}

// prepare merges the settings file with the flags given on the command
// line, then rebuilds the translator and logger to match.
func (c *CLI) prepare(fs *pflag.FlagSet) error {
	settings := config.DefaultSettings()
	if c.flags.configPath != "" {
		loaded, err := config.LoadSettings(c.flags.configPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	// Only flags given explicitly override the file.
	if fs.Changed("locale") {
		settings.Locale = c.flags.locale
	}
	if fs.Changed("output") {
		settings.Output = model.OutputFormat(c.flags.output)
	}
	if fs.Changed("verbose") {
		settings.Verbose = c.flags.verbose
	}
	if err := settings.Validate(); err != nil {
		return model.NewUsageError(err, c.group.Root().CommandPath())
	}

	tr, err := i18n.New(settings.Locale)
	if err != nil {
		return fmt.Errorf("failed to load message catalogs: %w", err)
	}

	c.settings = settings
	c.tr = tr
	logging.SetVerbose(c.log, settings.Verbose)

	c.log.WithFields(logrus.Fields{
		"locale": c.tr.Locale().String(),
		"output": settings.Output,
		"config": c.flags.configPath,
	}).Debug("settings resolved")
	return nil
}

// printError outputs an error in the format selected by --output.
// Errors always go to stderr because stdout is reserved for command output.
func (c *CLI) printError(err error) {
	message := err.Error()
	var hint string
	var usageErr *model.UsageError
	if errors.As(err, &usageErr) && usageErr.Command != "" {
		hint = c.tr.T("Run '%s --help' for usage.", usageErr.Command)
	}

	if c.settings.Output.IsStructured() {
		errObj := map[string]interface{}{
			"message": message,
			"code":    int(model.ExitCodeOf(err)),
		}
		if hint != "" {
			errObj["hint"] = hint
		}
		_ = writeStructured(c.opts.Stderr, c.settings.Output, map[string]interface{}{"error": errObj})
		return
	}

	fmt.Fprintln(c.opts.Stderr, c.tr.T("Error: %s", message))
	if hint != "" {
		fmt.Fprintln(c.opts.Stderr, hint)
	}
}

// writeStructured renders v as indented JSON or as YAML.
func writeStructured(w io.Writer, format model.OutputFormat, v interface{}) error {
	if format == model.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
