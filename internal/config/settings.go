package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/doblabs/easy-as-pypi/internal/model"
)

// DefaultLocale is the catalog used when nothing else is requested.
const DefaultLocale = "en"

// Settings are the user preferences that shape a single run.
//
// The YAML form is:
//
//	locale: de
//	verbose: true
//	output: json
type Settings struct {
	// Locale is a BCP 47 language tag selecting the message catalog.
	Locale string `yaml:"locale"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose"`

	// Output selects the rendering of structured results and errors.
	Output model.OutputFormat `yaml:"output"`
}

// DefaultSettings returns the settings used when no file and no flags
// are given.
func DefaultSettings() Settings {
	return Settings{
		Locale: DefaultLocale,
		Output: model.OutputText,
	}
}

// LoadSettings reads a YAML settings file on top of DefaultSettings.
// Keys missing from the file keep their defaults; unknown keys are an error
// so typos do not pass silently.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("settings file not found: %s", path), err)
		}
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return settings, nil
}

// ParseSettings decodes YAML settings on top of DefaultSettings and
// validates the result. An empty document yields the defaults.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks the locale tag and the output format. The output format
// is normalized to lower case as a side effect.
func (s *Settings) Validate() error {
	if _, err := language.Parse(s.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", s.Locale, err)
	}

	format, err := model.ParseOutputFormat(string(s.Output))
	if err != nil {
		return err
	}
	s.Output = format
	return nil
}
