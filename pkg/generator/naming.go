package generator

import (
	"strings"
	"unicode"
)

// exportName converts a wire identifier into an exported Go identifier:
// separators split words, each word is capitalized, and a leading digit is
// prefixed so the result stays a legal identifier.
func exportName(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ' || r == '/':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" {
		return "X"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "X" + out
	}
	return out
}

// goType maps a description property to a Go type expression. Schema
// references become pointers to the referenced struct; everything
// unrecognized degrades to any.
func goType(prop map[string]any) string {
	if ref, ok := prop["$ref"].(string); ok && ref != "" {
		return "*" + exportName(ref)
	}

	typ, _ := prop["type"].(string)
	switch typ {
	case "string":
		return "string"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]any"
	case "array":
		items, _ := prop["items"].(map[string]any)
		if items == nil {
			return "[]any"
		}
		return "[]" + goType(items)
	default:
		return "any"
	}
}
