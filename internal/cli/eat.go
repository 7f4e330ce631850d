package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doblabs/easy-as-pypi/internal/group"
)

// newEatCommand creates the "eat" command, the sample command meant to be
// replaced by real functionality.
func (c *CLI) newEatCommand() group.Command {
	return group.Command{
		Name:  "eat",
		Short: "Eats.",
		Long: `Eats.

A placeholder command. Copy it to start a new one.`,
		Args: cobra.NoArgs,
		Action: func(_ context.Context, out io.Writer, _ []string) error {
			_, err := fmt.Fprintln(out, c.tr.T("nom nom"))
			return err
		},
	}
}
