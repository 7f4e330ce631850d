package group

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doblabs/easy-as-pypi/internal/logging"
	"github.com/doblabs/easy-as-pypi/internal/model"
)

// ErrFrozen is returned by Register once the group has dispatched.
var ErrFrozen = errors.New("command group is frozen")

// Names of the commands cobra provides on its own.
const (
	helpCommandName       = "help"
	completionCommandName = "completion"
)

// Action is the body of a command. out is the command's standard output;
// args are the positional arguments left after flag parsing.
type Action func(ctx context.Context, out io.Writer, args []string) error

// Command describes one sub-command.
type Command struct {
	// Name is the token that selects this command. Must be unique in the group.
	Name string

	// Aliases are alternative tokens. They share the namespace with names.
	Aliases []string

	// Short is the one-line help shown in the command list.
	Short string

	// Long is the full help text. Short is used when empty.
	Long string

	// Args validates positional arguments. nil accepts any.
	Args cobra.PositionalArgs

	// Action runs the command.
	Action Action
}

// Group is a registry of commands under one root.
type Group struct {
	root     *cobra.Command
	commands []Command
	owners   map[string]string
	frozen   bool
	log      logrus.FieldLogger
}

// Option customizes a Group.
type Option func(*Group)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Group) {
		g.log = log
	}
}

// New creates a group around root. root should not have a Run function:
// invoking the group without a command prints help. Registered commands are
// attached to root as cobra sub-commands.
func New(root *cobra.Command, opts ...Option) *Group {
	g := &Group{
		root:   root,
		owners: make(map[string]string),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	// Errors are returned from Dispatch; printing them is the caller's job.
	root.SilenceErrors = true
	root.SilenceUsage = true

	// Flag errors anywhere in the tree are usage errors.
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return model.NewUsageError(err, c.CommandPath())
	})

	// cobra adds these lazily on execute; reserve their names now.
	g.claim(helpCommandName, helpCommandName)
	if !root.CompletionOptions.DisableDefaultCmd {
		g.claim(completionCommandName, completionCommandName)
	}
	return g
}

// Root returns the underlying cobra command.
func (g *Group) Root() *cobra.Command {
	return g.root
}

// Register adds cmd to the group. It fails with a *model.DuplicateNameError
// if the name or an alias is taken, and with ErrFrozen after the first
// Dispatch.
func (g *Group) Register(cmd Command) error {
	if g.frozen {
		return fmt.Errorf("register %q: %w", cmd.Name, ErrFrozen)
	}
	if cmd.Name == "" || strings.HasPrefix(cmd.Name, "-") || strings.ContainsAny(cmd.Name, " \t") {
		return fmt.Errorf("register: invalid command name %q", cmd.Name)
	}
	if cmd.Action == nil {
		return fmt.Errorf("register %q: command has no action", cmd.Name)
	}

	// Check every token before claiming any, so a failed registration
	// leaves the group unchanged.
	seen := make(map[string]bool, len(cmd.Aliases)+1)
	for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
		if owner, taken := g.owners[name]; taken {
			return &model.DuplicateNameError{Name: name, Owner: owner}
		}
		if seen[name] {
			return &model.DuplicateNameError{Name: name, Owner: cmd.Name}
		}
		seen[name] = true
	}
	for name := range seen {
		g.claim(name, cmd.Name)
	}

	g.commands = append(g.commands, cmd)
	g.root.AddCommand(toCobra(cmd))
	return nil
}

// Commands returns the registered commands in registration order.
func (g *Group) Commands() []Command {
	out := make([]Command, len(g.commands))
	copy(out, g.commands)
	return out
}

// Dispatch freezes the group and runs the command selected by argv, which
// excludes the program name. It returns the exit code together with the
// error that caused it, if any. An unknown command is a *model.UsageError.
// An empty argv prints help and succeeds.
func (g *Group) Dispatch(ctx context.Context, argv []string) (model.ExitCode, error) {
	// cobra reads os.Args when handed nil args.
	if argv == nil {
		argv = []string{}
	}

	if !g.frozen {
		g.frozen = true
		g.root.InitDefaultHelpCmd()
		g.root.InitDefaultCompletionCmd(argv...)
	}

	if !isCompletionRequest(argv) {
		target, _, err := g.root.Find(argv)
		if err != nil {
			usageErr := model.NewUsageError(err, g.root.CommandPath())
			return model.ExitCodeOf(usageErr), usageErr
		}
		g.log.WithField("command", target.Name()).Debug("dispatching")
	}

	g.root.SetArgs(argv)
	err := g.root.ExecuteContext(ctx)
	return model.ExitCodeOf(err), err
}

// claim records that name is owned by the command called owner.
func (g *Group) claim(name, owner string) {
	g.owners[name] = owner
}

// toCobra converts a Command into the cobra form attached to the root.
func toCobra(cmd Command) *cobra.Command {
	long := cmd.Long
	if long == "" {
		long = cmd.Short
	}

	c := &cobra.Command{
		Use:     cmd.Name,
		Aliases: cmd.Aliases,
		Short:   cmd.Short,
		Long:    long,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Action(c.Context(), c.OutOrStdout(), args)
		},
	}

	if cmd.Args != nil {
		c.Args = func(c *cobra.Command, args []string) error {
			if err := cmd.Args(c, args); err != nil {
				return model.NewUsageError(err, c.CommandPath())
			}
			return nil
		}
	}
	return c
}

// isCompletionRequest reports whether argv is a hidden shell-completion
// request, which cobra resolves itself.
func isCompletionRequest(argv []string) bool {
	return len(argv) > 0 &&
		(argv[0] == cobra.ShellCompRequestCmd || argv[0] == cobra.ShellCompNoDescRequestCmd)
}
