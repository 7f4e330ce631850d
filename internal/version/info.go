package version

import (
	"fmt"
	"strings"

	"github.com/doblabs/easy-as-pypi/internal/config"
)

// Info is the structured form of the version command's output.
type Info struct {
	Package    string `json:"package" yaml:"package"`
	Version    string `json:"version" yaml:"version"`
	Commit     string `json:"commit,omitempty" yaml:"commit,omitempty"`
	Date       string `json:"date,omitempty" yaml:"date,omitempty"`
	Author     string `json:"author" yaml:"author"`
	AuthorLink string `json:"authorLink" yaml:"authorLink"`
}

// Build describes where the binary came from. Commit and Date are set by
// the release build via ldflags and are empty otherwise.
type Build struct {
	Commit string
	Date   string
}

// Describe appends the known build details to v, e.g.
// "1.0.0 (commit: abc123, built: 2026-10-19)".
func (b Build) Describe(v string) string {
	var details []string
	if b.Commit != "" {
		details = append(details, "commit: "+b.Commit)
	}
	if b.Date != "" {
		details = append(details, "built: "+b.Date)
	}
	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

// NewInfo assembles the version record for app. The version is probed
// on each call.
func NewInfo(app config.App, build Build, p *Prober) Info {
	return Info{
		Package:    app.PackageName,
		Version:    p.Probe(),
		Commit:     build.Commit,
		Date:       build.Date,
		Author:     app.AuthorName,
		AuthorLink: app.AuthorLink,
	}
}
