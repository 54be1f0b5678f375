package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/ge-editor/theme"

	"github.com/ge-editor/textpos/pkg_error"
)

// Theme is a named set of top level scopes, e.g. "editor", "console", "dark".
type Theme struct {
	name  string
	scope Scope
}

func NewTheme(name string) *Theme {
	return &Theme{
		name:  name,
		scope: Scope{},
	}
}

// Load a theme from a JSON or YAML file.
// The theme is named after the file name without extension.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data)
}

// Parse theme data. JSON is accepted as it is a subset of YAML.
// Every top level value must be a mapping.
func Parse(name string, data []byte) (*Theme, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pkg_error.ErrInvalidTheme, name, err)
	}

	th := NewTheme(name)
	for key, value := range raw {
		scope, ok := asScope(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s: top level entry %q is not a mapping", pkg_error.ErrInvalidTheme, name, key)
		}
		th.scope[key] = scope
	}
	return th, nil
}

func (th *Theme) Name() string {
	return th.name
}

func (th *Theme) Scope() Scope {
	return th.scope
}

// Merge overrides the top level entries of th with those of other.
// Nested scopes are replaced, not merged. th keeps its name.
func (th *Theme) Merge(other *Theme) {
	for key, value := range other.scope {
		th.scope[key] = value
	}
}

func (th *Theme) Lookup(path string) (any, error) {
	return Lookup(th.scope, path)
}

// Style resolves path to a style entry and converts it.
// theme.ColorDefault is returned along with the error if that fails.
func (th *Theme) Style(path string) (tcell.Style, error) {
	entry, err := th.Lookup(path)
	if err != nil {
		return theme.ColorDefault, err
	}
	return ToStyle(entry)
}

// ToStyle converts a style entry to a tcell.Style based on theme.ColorDefault.
//
// Recognized keys:
//   - color, background (or backgroundColor): color names or #rrggbb
//   - fontWeight: bold
//   - fontStyle: italic
//   - textDecoration: underline
//
// Values of none are ignored.
func ToStyle(entry any) (tcell.Style, error) {
	scope, ok := asScope(entry)
	if !ok {
		return theme.ColorDefault, fmt.Errorf("%w: style entry is %T, not a mapping", pkg_error.ErrStyleNotFound, entry)
	}

	st := theme.ColorDefault
	for key, value := range scope {
		s, ok := value.(string)
		if !ok || s == "none" {
			continue
		}
		switch key {
		case "color":
			st = st.Foreground(tcell.GetColor(s))
		case "background", "backgroundColor":
			st = st.Background(tcell.GetColor(s))
		case "fontWeight":
			st = st.Bold(s == "bold")
		case "fontStyle":
			st = st.Italic(s == "italic")
		case "textDecoration":
			st = st.Underline(s == "underline")
		}
	}
	return st, nil
}

// DynamicStyle binds the package level DynamicStyle to the theme.
func (th *Theme) DynamicStyle(useAlt func() bool, altScopeName string) Resolver {
	return DynamicStyle(th.scope, useAlt, altScopeName)
}

func (th *Theme) Factory(useAlt bool, altScopeName string) Resolver {
	return DynamicThemeFactory(th.scope, useAlt, altScopeName)
}
