package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes all environment overrides
const EnvPrefix = "CATALOG_EDITOR"

// Overrides holds startup values from the environment or the command line.
// Nil fields are not set.
type Overrides struct {
	ShadedRows   *bool    `envconfig:"SHADED_ROWS"`
	DisplayLines *bool    `envconfig:"DISPLAY_LINES"`
	FontSize     *float32 `envconfig:"FONT_SIZE"`
	SampleSize   *int     `envconfig:"SAMPLE_SIZE"`
	IconDir      *string  `envconfig:"ICON_DIR"`
}

// LoadEnv reads CATALOG_EDITOR_* variables
func LoadEnv() (Overrides, error) {
	var o Overrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return Overrides{}, fmt.Errorf("read environment: %w", err)
	}
	return o, nil
}

// ApplyOverrides shadows the stored settings with every value present in o
// until the process exits or the setting is stored again. Preferences are
// left untouched.
func (s *Settings) ApplyOverrides(o Overrides) {
	if o.ShadedRows != nil {
		v := *o.ShadedRows
		s.session.ShadedRows = &v
	}
	if o.DisplayLines != nil {
		v := *o.DisplayLines
		s.session.DisplayLines = &v
	}
	if o.FontSize != nil {
		v := clampFontSize(*o.FontSize)
		s.session.FontSize = &v
	}
	if o.SampleSize != nil {
		v := clampSampleSize(*o.SampleSize)
		s.session.SampleSize = &v
	}
	if o.IconDir != nil {
		v := *o.IconDir
		s.session.IconDir = &v
	}
}
