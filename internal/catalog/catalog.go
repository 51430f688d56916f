package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Load parses catalog.json at path and returns a validated Catalog
// with each section sorted by name.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var errs []string

	for i, ide := range c.IDEs {
		var fieldErrs []string
		if ide.Name == "" {
			fieldErrs = append(fieldErrs, "name is required")
		}
		if ide.Command == "" {
			fieldErrs = append(fieldErrs, "command is required")
		}
		// configDir is optional — settings application is skipped without it
		if len(fieldErrs) > 0 {
			errs = append(errs, fmt.Sprintf("ides[%d] (%s): %s", i, ide.Name, strings.Join(fieldErrs, ", ")))
		}
	}

	for i, ext := range c.Extensions {
		if ext.ID == "" {
			errs = append(errs, fmt.Sprintf("extensions[%d] (%s): id is required", i, ext.Name))
		}
	}

	for i, app := range c.Apps {
		var fieldErrs []string
		if app.Name == "" {
			fieldErrs = append(fieldErrs, "name is required")
		}
		if app.Type == TypePake && app.URL == "" {
			fieldErrs = append(fieldErrs, "url is required for pake apps")
		}
		if len(fieldErrs) > 0 {
			errs = append(errs, fmt.Sprintf("apps[%d] (%s): %s", i, app.Name, strings.Join(fieldErrs, ", ")))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation errors:\n%s", strings.Join(errs, "\n"))
	}

	sort.Slice(c.IDEs, func(i, j int) bool { return c.IDEs[i].Name < c.IDEs[j].Name })
	sort.Slice(c.Extensions, func(i, j int) bool { return c.Extensions[i].Name < c.Extensions[j].Name })
	sort.Slice(c.Apps, func(i, j int) bool { return c.Apps[i].Name < c.Apps[j].Name })

	return &c, nil
}
