package pake

import (
	"fmt"
	"regexp"
	"strings"
)

// Args are the values extracted from a catalog install-command
// template. The template is never executed as a shell string — only
// these named pieces are parsed back out of it.
type Args struct {
	URL    string
	Name   string
	Width  string
	Height string
}

var (
	urlRe    = regexp.MustCompile(`https?://[^\s"']+`)
	nameRe   = regexp.MustCompile(`--name\s+(?:"([^"]*)"|'([^']*)'|(\S+))`)
	widthRe  = regexp.MustCompile(`--width\s+(\d+)`)
	heightRe = regexp.MustCompile(`--height\s+(\d+)`)
)

// ParseTemplate extracts the URL, display name, and optional window
// size from a free-text pake command template. A template without a
// URL or a --name flag is an explicit error rather than a silent
// partial match.
func ParseTemplate(tpl string) (Args, error) {
	var a Args

	a.URL = urlRe.FindString(tpl)
	if a.URL == "" {
		return Args{}, fmt.Errorf("template has no http(s) URL: %q", tpl)
	}

	m := nameRe.FindStringSubmatch(tpl)
	if m == nil {
		return Args{}, fmt.Errorf("template has no --name flag: %q", tpl)
	}
	for _, g := range m[1:] {
		if g != "" {
			a.Name = g
			break
		}
	}
	if a.Name == "" {
		return Args{}, fmt.Errorf("template has an empty --name value: %q", tpl)
	}

	if m := widthRe.FindStringSubmatch(tpl); m != nil {
		a.Width = m[1]
	}
	if m := heightRe.FindStringSubmatch(tpl); m != nil {
		a.Height = m[1]
	}

	return a, nil
}

// SanitizeName strips everything except letters, digits, and hyphens
// from a display name, matching the pake CLI's naming constraint.
func SanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
