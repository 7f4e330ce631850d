package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doblabs/easy-as-pypi/internal/group"
	"github.com/doblabs/easy-as-pypi/internal/model"
	"github.com/doblabs/easy-as-pypi/internal/version"
)

// newVersionCommand creates the "version" command.
func (c *CLI) newVersionCommand() group.Command {
	return group.Command{
		Name:  "version",
		Short: "Print the package version.",
		Long: `Print the package version.

The version is the one stamped in at build time. Development builds ask
'git latest-version' (from git-smart) instead, and print <unknown> when
that is not available.

Examples:
  easy-as-pypi version
  easy-as-pypi version --output json`,
		Args: cobra.NoArgs,
		Action: func(_ context.Context, out io.Writer, _ []string) error {
			return c.runVersion(out)
		},
	}
}

// runVersion probes the version and prints it in the selected format.
func (c *CLI) runVersion(out io.Writer) error {
	info := version.NewInfo(c.opts.App, c.opts.Build, c.prober)

	if c.settings.Output.IsStructured() {
		return writeStructured(out, c.settings.Output, info)
	}

	_, err := fmt.Fprintf(out, "%s version %s\n", info.Package, info.Version)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write version", err)
	}
	return nil
}
