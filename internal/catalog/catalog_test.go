package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"devkit/internal/catalog"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoad_valid(t *testing.T) {
	path := writeCatalog(t, `{
		"ides": [
			{"name": "Visual Studio Code", "command": "code", "configDir": "Code", "default": true,
			 "install": {"linux": "snap install code --classic"}}
		],
		"extensions": [
			{"name": "GitLens", "id": "eamodio.gitlens", "default": true}
		],
		"apps": [
			{"name": "semantic-chat", "displayName": "Semantic Chat", "type": "pake",
			 "url": "https://chat.example.com",
			 "install": {"linux": "pake https://chat.example.com --name \"Semantic Chat\""}}
		]
	}`)

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.IDEs) != 1 || c.IDEs[0].Command != "code" {
		t.Errorf("unexpected ides: %+v", c.IDEs)
	}
	if len(c.Extensions) != 1 || c.Extensions[0].ID != "eamodio.gitlens" {
		t.Errorf("unexpected extensions: %+v", c.Extensions)
	}
	if len(c.Apps) != 1 || c.Apps[0].Label() != "Semantic Chat" {
		t.Errorf("unexpected apps: %+v", c.Apps)
	}
}

func TestLoad_validationErrors(t *testing.T) {
	path := writeCatalog(t, `{
		"ides": [{"name": "Broken"}],
		"extensions": [{"name": "NoID"}],
		"apps": [{"name": "web-thing", "type": "pake"}]
	}`)

	_, err := catalog.Load(path)
	if err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing catalog")
	}
}

func TestDefaults(t *testing.T) {
	c := catalog.Catalog{
		IDEs: []catalog.IDE{
			{Name: "Cursor", Command: "cursor"},
			{Name: "VS Code", Command: "code", Default: true},
		},
		Extensions: []catalog.Extension{
			{Name: "GitLens", ID: "eamodio.gitlens", Default: true},
			{Name: "Vim", ID: "vscodevim.vim"},
		},
		Apps: []catalog.App{
			{Name: "linear"},
			{Name: "semantic-chat", Default: true},
		},
	}

	ide, ok := c.DefaultIDE()
	if !ok || ide.Command != "code" {
		t.Errorf("expected code as default IDE, got %+v", ide)
	}
	if exts := c.DefaultExtensions(); len(exts) != 1 || exts[0].ID != "eamodio.gitlens" {
		t.Errorf("unexpected default extensions: %+v", exts)
	}
	if apps := c.DefaultApps(); len(apps) != 1 || apps[0].Name != "semantic-chat" {
		t.Errorf("unexpected default apps: %+v", apps)
	}
}

func TestDefaultIDE_fallsBackToFirst(t *testing.T) {
	c := catalog.Catalog{IDEs: []catalog.IDE{{Name: "Cursor", Command: "cursor"}}}
	ide, ok := c.DefaultIDE()
	if !ok || ide.Command != "cursor" {
		t.Errorf("expected first IDE as fallback, got %+v", ide)
	}

	empty := catalog.Catalog{}
	if _, ok := empty.DefaultIDE(); ok {
		t.Error("expected no default IDE for empty catalog")
	}
}
