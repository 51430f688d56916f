// Package settings writes the IDE's settings.json: a hard-coded
// default when none exists, and a whole-file replace from a bundled
// template (with a .backup of the prior content) when one is shipped.
// Settings are never merged.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSettings is written when the IDE has no settings file yet.
const DefaultSettings = `{
  "editor.fontSize": 14,
  "editor.tabSize": 2,
  "editor.formatOnSave": true,
  "files.autoSave": "onFocusChange",
  "files.trimTrailingWhitespace": true
}
`

// BackupSuffix is appended to the settings path for the pre-overwrite
// copy.
const BackupSuffix = ".backup"

// Action says what Apply did to the settings file.
type Action int

const (
	// ActionWroteDefault: no settings file existed and no template is
	// bundled; the default object was written.
	ActionWroteDefault Action = iota

	// ActionApplied: the prior file was copied to .backup and replaced
	// with the bundled template.
	ActionApplied

	// ActionKeptExisting: a settings file existed and no template is
	// bundled; nothing was changed.
	ActionKeptExisting
)

func (a Action) String() string {
	return [...]string{"wrote default settings", "applied template", "kept existing settings"}[a]
}

// Apply brings the settings file at target into its desired state.
// Parent directories are created as needed. When templatePath exists
// the current file is backed up (overwriting any prior backup) and
// replaced with the template bytes.
func Apply(target, templatePath string) (Action, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 0, fmt.Errorf("create settings dir: %w", err)
	}

	existed := true
	if _, err := os.Stat(target); os.IsNotExist(err) {
		existed = false
		if err := os.WriteFile(target, []byte(DefaultSettings), 0644); err != nil {
			return 0, fmt.Errorf("write default settings: %w", err)
		}
	} else if err != nil {
		return 0, fmt.Errorf("stat settings file: %w", err)
	}

	tpl, err := os.ReadFile(templatePath)
	if os.IsNotExist(err) {
		if existed {
			return ActionKeptExisting, nil
		}
		return ActionWroteDefault, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read template: %w", err)
	}

	current, err := os.ReadFile(target)
	if err != nil {
		return 0, fmt.Errorf("read settings file: %w", err)
	}
	if err := os.WriteFile(target+BackupSuffix, current, 0644); err != nil {
		return 0, fmt.Errorf("write backup: %w", err)
	}
	if err := os.WriteFile(target, tpl, 0644); err != nil {
		return 0, fmt.Errorf("write settings file: %w", err)
	}
	return ActionApplied, nil
}
