package core

import (
	"regexp"
	"strings"

	"sailfish-platforms/internal/types"
)

// defineNamePattern matches a C preprocessor identifier.
var defineNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseDirective splits a raw "NAME", "NAME=value", "-NAME" or
// "-NAME=value" entry into a DefineDirective.  The value is everything
// after the first '=' and is kept byte-for-byte.
func ParseDirective(raw string, position int) (types.DefineDirective, error) {
	if strings.TrimSpace(raw) == "" {
		return types.DefineDirective{}, NewInvalidDefineError(raw, position, "empty directive")
	}
	directive := types.DefineDirective{
		Kind:     types.DirectiveAdd,
		Raw:      raw,
		Position: position,
	}
	body := raw
	if strings.HasPrefix(body, "-") {
		directive.Kind = types.DirectiveRemove
		body = body[1:]
	}
	name, value, hasValue := strings.Cut(body, "=")
	if name == "" {
		return types.DefineDirective{}, NewInvalidDefineError(raw, position, "missing symbol name")
	}
	if !defineNamePattern.MatchString(name) {
		return types.DefineDirective{}, NewInvalidDefineError(raw, position, "symbol name is not a valid identifier")
	}
	if hasValue && strings.HasPrefix(value, "=") {
		return types.DefineDirective{}, NewInvalidDefineError(raw, position, "unexpected '=' after symbol name")
	}
	directive.Name = name
	if directive.Kind == types.DirectiveAdd {
		directive.Value = value
		directive.HasValue = hasValue
	}
	return directive, nil
}

// ComposeDefines applies directives in order and returns the effective
// define set in insertion order.  Redefining a present symbol keeps its
// slot; a symbol removed and added again moves to the end.
func ComposeDefines(directives []string) ([]types.Define, error) {
	var composed []types.Define
	index := map[string]int{}
	for position, raw := range directives {
		directive, err := ParseDirective(raw, position)
		if err != nil {
			return nil, err
		}
		slot, present := index[directive.Name]
		switch directive.Kind {
		case types.DirectiveRemove:
			if !present {
				continue
			}
			composed = append(composed[:slot], composed[slot+1:]...)
			delete(index, directive.Name)
			for name, i := range index {
				if i > slot {
					index[name] = i - 1
				}
			}
		default:
			define := types.Define{
				Name:     directive.Name,
				Value:    directive.Value,
				HasValue: directive.HasValue,
			}
			if present {
				composed[slot] = define
				continue
			}
			index[directive.Name] = len(composed)
			composed = append(composed, define)
		}
	}
	if composed == nil {
		composed = []types.Define{}
	}
	return composed, nil
}
