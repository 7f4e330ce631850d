package version

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/doblabs/easy-as-pypi/internal/logging"
)

// Unknown is returned when no version can be determined.
const Unknown = "<unknown>"

// Lookup asks something outside the binary for a version string.
type Lookup func() (string, error)

// Prober resolves the version string. The zero value is not usable; create
// one with NewProber.
type Prober struct {
	embedded string
	lookup   Lookup
	log      logrus.FieldLogger
}

// Option customizes a Prober.
type Option func(*Prober)

// WithLookup replaces the default `git latest-version` lookup.
func WithLookup(lookup Lookup) Option {
	return func(p *Prober) {
		p.lookup = lookup
	}
}

// WithLogger sets the logger used to report lookup failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Prober) {
		p.log = log
	}
}

// NewProber creates a Prober for the given embedded version. An empty
// embedded version enables the external lookup.
func NewProber(embedded string, opts ...Option) *Prober {
	p := &Prober{
		embedded: embedded,
		lookup:   GitLatestVersion(),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe returns the embedded version if set, otherwise the trimmed output
// of a successful external lookup (which may be empty), otherwise Unknown. It is recomputed on every call.
func (p *Prober) Probe() string {
	if p.embedded != "" {
		return p.embedded
	}

	if p.lookup == nil {
		return Unknown
	}

	out, err := p.lookup()
	if err != nil {
		p.log.WithError(err).Debug("version lookup failed")
		return Unknown
	}

	return strings.TrimSpace(out)
}

// GitLatestVersion returns a Lookup that runs `git latest-version`.
// The subcommand is provided by git-smart; on machines without it git
// exits non-zero and the probe falls back to Unknown.
func GitLatestVersion() Lookup {
	return ExecLookup("git", "latest-version")
}

// ExecLookup returns a Lookup that runs the named program and returns its
// stdout. A missing program or a non-zero exit is an error that includes
// the program's stderr.
func ExecLookup(name string, args ...string) Lookup {
	return func() (string, error) {
		// #nosec G204 -- the command line is fixed by the caller, not user input
		cmd := exec.Command(name, args...)

		var stdout, stderr strings.Builder
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			message := fmt.Sprintf("%s %s failed", name, strings.Join(args, " "))
			if stderrStr := strings.TrimSpace(stderr.String()); stderrStr != "" {
				message = fmt.Sprintf("%s: %s", message, stderrStr)
			}
			return "", fmt.Errorf("%s: %w", message, err)
		}

		return stdout.String(), nil
	}
}

// ErrNoBuildInfo is returned by ModuleVersion when the binary carries no
// usable module version.
var ErrNoBuildInfo = errors.New("no module version in build info")

// Embedded picks the build-time version: the ldflags value when set,
// otherwise the module version from the binary's build info.
func Embedded(ldflags string) string {
	if ldflags != "" {
		return ldflags
	}
	if v, err := ModuleVersion(debug.ReadBuildInfo); err == nil {
		return v
	}
	return ""
}

// ModuleVersion extracts the main module version using read, which is
// normally debug.ReadBuildInfo. Local builds report "(devel)", which does
// not count as a version.
func ModuleVersion(read func() (*debug.BuildInfo, bool)) (string, error) {
	info, ok := read()
	if !ok || info == nil {
		return "", ErrNoBuildInfo
	}

	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return "", ErrNoBuildInfo
	}
	return strings.TrimPrefix(v, "v"), nil
}
