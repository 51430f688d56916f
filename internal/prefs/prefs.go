// Package prefs loads the optional devkit.toml preferences file.
// Command-line flags always win over preferences.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Prefs are user defaults for the CLI flags.
type Prefs struct {
	Debug     bool   `toml:"debug"`
	AssumeYes bool   `toml:"assume_yes"`
	Catalog   string `toml:"catalog"`
	Templates string `toml:"templates"`
}

// Load reads the preferences file at path. A missing file is not an
// error: zero-value preferences are returned.
func Load(path string) (Prefs, error) {
	var p Prefs
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Prefs{}, nil
		}
		return Prefs{}, fmt.Errorf("parse preferences: %w", err)
	}
	return p, nil
}
