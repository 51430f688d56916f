package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"devkit/internal/catalog"
)

// Env holds the environment values settings paths are derived from.
// Passing it explicitly keeps the applier free of global env reads.
type Env struct {
	Home    string
	AppData string
}

// EnvFromOS captures the current process environment.
func EnvFromOS() Env {
	return Env{
		Home:    os.Getenv("HOME"),
		AppData: os.Getenv("APPDATA"),
	}
}

// Path returns the IDE's well-known settings.json location for the
// given OS.
func Path(ide catalog.IDE, goos string, env Env) (string, error) {
	if ide.ConfigDir == "" {
		return "", fmt.Errorf("%s has no configDir in the catalog", ide.Name)
	}

	switch goos {
	case "darwin":
		if env.Home == "" {
			return "", fmt.Errorf("HOME is not set")
		}
		return filepath.Join(env.Home, "Library", "Application Support", ide.ConfigDir, "User", "settings.json"), nil
	case "linux":
		if env.Home == "" {
			return "", fmt.Errorf("HOME is not set")
		}
		return filepath.Join(env.Home, ".config", ide.ConfigDir, "User", "settings.json"), nil
	case "windows":
		if env.AppData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(env.AppData, ide.ConfigDir, "User", "settings.json"), nil
	default:
		return "", fmt.Errorf("no settings path known for OS %s", goos)
	}
}

// TemplatePath returns where a bundled settings template for this IDE
// would live under templatesDir.
func TemplatePath(templatesDir string, ide catalog.IDE) string {
	return filepath.Join(templatesDir, ide.Command+".json")
}
