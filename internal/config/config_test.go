package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doblabs/easy-as-pypi/internal/model"
)

// TestNewApp verifies that arg0 is reduced to its base name and that the
// fixed metadata is populated.
func TestNewApp(t *testing.T) {
	tests := []struct {
		name  string
		argv0 string
		want  string
	}{
		{"absolute path", "/usr/local/bin/easy-as-pypi", "easy-as-pypi"},
		{"relative path", "./bin/eap", "eap"},
		{"bare name", "eap", "eap"},
		{"empty falls back to package", "", PackageName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(tt.argv0)
			assert.Equal(t, tt.want, app.Arg0)
			assert.Equal(t, "easy-as-pypi", app.PackageName)
			assert.Equal(t, "Landon Bouma", app.AuthorName)
			assert.Equal(t, "https://tallybark.com", app.AuthorLink)
		})
	}
}

func TestApp_Copyright(t *testing.T) {
	app := NewApp("easy-as-pypi")
	assert.Equal(t, "Copyright © Landon Bouma <https://tallybark.com>", app.Copyright())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "en", s.Locale)
	assert.False(t, s.Verbose)
	assert.Equal(t, model.OutputText, s.Output)
}

// TestParseSettings covers merging over defaults, normalization, and the
// validation failures.
func TestParseSettings(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		want     Settings
		hasError bool
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			want: DefaultSettings(),
		},
		{
			name: "all keys",
			yaml: "locale: de\nverbose: true\noutput: json\n",
			want: Settings{Locale: "de", Verbose: true, Output: model.OutputJSON},
		},
		{
			name: "partial document",
			yaml: "verbose: true\n",
			want: Settings{Locale: "en", Verbose: true, Output: model.OutputText},
		},
		{
			name: "output is case insensitive",
			yaml: "output: YAML\n",
			want: Settings{Locale: "en", Output: model.OutputYAML},
		},
		{
			name:     "unknown key rejected",
			yaml:     "colour: blue\n",
			hasError: true,
		},
		{
			name:     "invalid output",
			yaml:     "output: xml\n",
			hasError: true,
		},
		{
			name:     "invalid locale",
			yaml:     "locale: \"en_US!\"\n",
			hasError: true,
		},
		{
			name:     "malformed yaml",
			yaml:     "locale: [de\n",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettings([]byte(tt.yaml))
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("locale: de\n"), 0o644))

		got, err := LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "de", got.Locale)
	})

	t.Run("missing file is a CLIError", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitGeneralError, cliErr.Code)
		assert.Contains(t, err.Error(), "settings file not found")
	})

	t.Run("invalid content names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o644))

		_, err := LoadSettings(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}
