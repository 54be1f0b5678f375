// Dotted path lookups into nested theme mappings.

package style

import (
	"fmt"
	"strings"

	"github.com/ge-editor/textpos/pkg_error"
)

// Scope is one level of a theme, a mapping of names to values or nested scopes.
type Scope map[string]any

// Resolver resolves a dotted path such as "editor.lineNumber.color".
type Resolver func(path string) (any, error)

// Return value as a Scope if it is a mapping
func asScope(value any) (Scope, bool) {
	switch v := value.(type) {
	case Scope:
		return v, true
	case map[string]any:
		return Scope(v), true
	}
	return nil, false
}

// Lookup walks path segment by segment starting from scope.
// A missing segment, or a segment that is not a mapping where the path
// continues, fails with pkg_error.ErrStyleNotFound.
func Lookup(scope Scope, path string) (any, error) {
	var value any = scope
	for _, segment := range strings.Split(path, ".") {
		current, ok := asScope(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a scope in %q", pkg_error.ErrStyleNotFound, segment, path)
		}
		if value, ok = current[segment]; !ok {
			return nil, fmt.Errorf("%w: %q in %q", pkg_error.ErrStyleNotFound, segment, path)
		}
	}
	return value, nil
}

// Return base or base[altScopeName]
func root(base Scope, useAlt bool, altScopeName string) (Scope, error) {
	if !useAlt {
		return base, nil
	}
	alt, ok := asScope(base[altScopeName])
	if !ok {
		return nil, fmt.Errorf("%w: alternative scope %q", pkg_error.ErrStyleNotFound, altScopeName)
	}
	return alt, nil
}

// DynamicStyle returns a Resolver that asks useAlt on every call whether to
// resolve from base[altScopeName] instead of base.
func DynamicStyle(base Scope, useAlt func() bool, altScopeName string) Resolver {
	return func(path string) (any, error) {
		scope, err := root(base, useAlt(), altScopeName)
		if err != nil {
			return nil, err
		}
		return Lookup(scope, path)
	}
}

// DynamicThemeFactory is DynamicStyle with the selector fixed when the
// Resolver is created.
func DynamicThemeFactory(base Scope, useAlt bool, altScopeName string) Resolver {
	return func(path string) (any, error) {
		scope, err := root(base, useAlt, altScopeName)
		if err != nil {
			return nil, err
		}
		return Lookup(scope, path)
	}
}
