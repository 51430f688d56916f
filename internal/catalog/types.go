package catalog

// IDE is an installable editor from catalog.json.
type IDE struct {
	Name      string            `json:"name"`
	Command   string            `json:"command"`
	ConfigDir string            `json:"configDir"`
	Install   map[string]string `json:"install"`
	Default   bool              `json:"default"`
}

// Extension is an editor add-on installed via the IDE's own CLI.
type Extension struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Default bool   `json:"default"`
}

// App is a desktop application entry. Type "pake" entries wrap a web
// URL into a native shortcut via the pake CLI; entries with an empty
// Type run their platform install command directly.
type App struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"displayName,omitempty"`
	Type        string            `json:"type,omitempty"`
	URL         string            `json:"url,omitempty"`
	Install     map[string]string `json:"install"`
	Default     bool              `json:"default"`
}

// TypePake marks apps built through the pake packaging CLI.
const TypePake = "pake"

// Catalog is the parsed catalog.json.
type Catalog struct {
	IDEs       []IDE       `json:"ides"`
	Extensions []Extension `json:"extensions"`
	Apps       []App       `json:"apps"`
}

// Label returns the name to show in menus: DisplayName when set,
// otherwise Name.
func (a App) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Name
}

// DefaultIDE returns the first IDE marked as default, falling back to
// the first entry. Used by the non-interactive path.
func (c *Catalog) DefaultIDE() (IDE, bool) {
	for _, ide := range c.IDEs {
		if ide.Default {
			return ide, true
		}
	}
	if len(c.IDEs) > 0 {
		return c.IDEs[0], true
	}
	return IDE{}, false
}

// DefaultExtensions returns the extensions pre-marked for
// non-interactive runs.
func (c *Catalog) DefaultExtensions() []Extension {
	var out []Extension
	for _, e := range c.Extensions {
		if e.Default {
			out = append(out, e)
		}
	}
	return out
}

// DefaultApps returns the apps pre-marked for non-interactive runs.
func (c *Catalog) DefaultApps() []App {
	var out []App
	for _, a := range c.Apps {
		if a.Default {
			out = append(out, a)
		}
	}
	return out
}
