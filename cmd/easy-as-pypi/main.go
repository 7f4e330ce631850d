// Package main is the entry point for the easy-as-pypi CLI.
//
// It builds the application metadata, hands the build-time version
// information to the internal/cli package, and exits with the code the
// dispatched command produced.
//
// Build-time variables are injected via ldflags, e.g.
//
//	go build -ldflags "-X main.appVersion=1.2.3 -X main.commit=$(git rev-parse HEAD)"
//
// When appVersion is left empty, `go install`ed binaries report their module
// version and development builds ask `git latest-version`.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/doblabs/easy-as-pypi/internal/cli"
	"github.com/doblabs/easy-as-pypi/internal/config"
	"github.com/doblabs/easy-as-pypi/internal/model"
	"github.com/doblabs/easy-as-pypi/internal/version"
)

// appVersion, commit, and date are set at build time via ldflags.
var (
	appVersion = ""
	commit     = ""
	date       = ""
)

func main() {
	c, err := cli.New(cli.Options{
		App:     config.NewApp(os.Args[0]),
		Version: version.Embedded(appVersion),
		Build:   version.Build{Commit: commit, Date: date},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(model.ExitGeneralError))
	}

	os.Exit(int(c.Execute(context.Background(), os.Args[1:])))
}
