package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/email-finder/internal/types"
)

// Theme names accepted in the "theme" form or query parameter.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// PrefersColorSchemeHeader is the client hint carrying the OS color scheme preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// ActionToggleTheme is the submit value of the theme toggle button.
const ActionToggleTheme = "toggle-theme"

// ResultsField is the hidden form field that carries the shown results across a theme toggle.
const ResultsField = "results"

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type pageData struct {
	*Session
	DefaultAvatar string
	ResultsJSON   string
}

// Render writes the full page for s.
func Render(w io.Writer, s *Session) error {
	data := pageData{
		Session:       s,
		DefaultAvatar: types.DefaultAvatarURL,
	}
	if s.Response != nil && s.Error == "" {
		encoded, err := json.Marshal(s.Response)
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		data.ResultsJSON = string(encoded)
	}
	return pageTemplate.ExecuteTemplate(w, "index.html.tmpl", data)
}

// RestoreResults puts back results carried in the ResultsField of a previous page.
// Anything that does not decode is ignored and the page renders without results.
func (s *Session) RestoreResults(encoded string) {
	if encoded == "" {
		return
	}
	var resp types.LookupResponse
	if err := json.Unmarshal([]byte(encoded), &resp); err != nil {
		return
	}
	s.Response = &resp
}

// PrefersDark reports whether the request should start in dark mode.
// An explicit theme parameter wins, then the color scheme client hint.
// Without either the page starts dark.
func PrefersDark(r *http.Request) bool {
	switch r.FormValue("theme") {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}

	hint := strings.Trim(strings.TrimSpace(r.Header.Get(PrefersColorSchemeHeader)), `"`)
	return hint != ThemeLight
}
