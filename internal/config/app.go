package config

import "path/filepath"

const (
	// PackageName is the distribution name shown in version output.
	PackageName = "easy-as-pypi"

	// AuthorName and AuthorLink are used for copyright text.
	AuthorName = "Landon Bouma"
	AuthorLink = "https://tallybark.com"
)

// App is the process-wide application metadata. It is constructed once
// at startup and never mutated afterwards.
type App struct {
	// PackageName is the name the application is published under.
	PackageName string

	// AuthorName is the human author, for copyright lines.
	AuthorName string

	// AuthorLink is the author's home page.
	AuthorLink string

	// Arg0 is the base name the binary was invoked as. It is used as the
	// root command name so help text matches what the user typed.
	Arg0 string
}

// NewApp returns the metadata for this application. argv0 is usually
// os.Args[0]; an empty value falls back to the package name.
func NewApp(argv0 string) App {
	arg0 := filepath.Base(argv0)
	if argv0 == "" || arg0 == "." || arg0 == string(filepath.Separator) {
		arg0 = PackageName
	}
	return App{
		PackageName: PackageName,
		AuthorName:  AuthorName,
		AuthorLink:  AuthorLink,
		Arg0:        arg0,
	}
}

// Copyright returns the one-line copyright notice for help output.
func (a App) Copyright() string {
	return "Copyright © " + a.AuthorName + " <" + a.AuthorLink + ">"
}
