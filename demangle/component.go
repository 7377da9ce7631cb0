package demangle

import (
	"strconv"
	"strings"
)

// ComponentKind identifies one token of a parsed type.
type ComponentKind int

const (
	// Modifiers
	ComponentKindConst ComponentKind = iota
	ComponentKindPointer
	ComponentKindReference
	ComponentKindUnsigned
	ComponentKindEllipsis
	// Primitives
	ComponentKindVoid
	ComponentKindBool
	ComponentKindChar
	ComponentKindWChar
	ComponentKindShort
	ComponentKindInt
	ComponentKindLong
	ComponentKindLongLong
	ComponentKindFloat
	ComponentKindDouble
	// Composites
	ComponentKindNamed
	ComponentKindFunction
	ComponentKindArray
)

// kindTokens maps every fixed-spelling kind to its C++ rendering.
var kindTokens = map[ComponentKind]string{
	ComponentKindConst:     "const",
	ComponentKindPointer:   "*",
	ComponentKindReference: "&",
	ComponentKindUnsigned:  "unsigned",
	ComponentKindEllipsis:  "...",
	ComponentKindVoid:      "void",
	ComponentKindBool:      "bool",
	ComponentKindChar:      "char",
	ComponentKindWChar:     "wchar_t",
	ComponentKindShort:     "short",
	ComponentKindInt:       "int",
	ComponentKindLong:      "long",
	ComponentKindLongLong:  "long long",
	ComponentKindFloat:     "float",
	ComponentKindDouble:    "double",
}

func (k ComponentKind) String() string {
	if tok, ok := kindTokens[k]; ok {
		return tok
	}
	switch k {
	case ComponentKindNamed:
		return "named"
	case ComponentKindFunction:
		return "function"
	case ComponentKindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Component is one token of a parsed type.
type Component struct {
	Kind   ComponentKind
	Dim    int    // array dimension
	Name   string // named-type text, or a function's return type
	Params string // a function's parameter text
}

// renderComponents writes the C++ spelling of comps[start:] to sb. The
// sequence is ordered base type first, then modifiers from innermost-applied
// to outermost-applied; a single space separates adjacent components of
// different kinds. Function and array components consume the rest of the
// sequence: a function wraps the remaining modifiers between its return type
// and parameter list, and an array run emits its dimensions after them.
func renderComponents(comps []Component, start int, sb *strings.Builder) {
	if start >= len(comps) {
		return
	}

	last := comps[start].Kind

	for start < len(comps) {
		c := comps[start]

		if c.Kind != last {
			sb.WriteByte(' ')
			last = c.Kind
		}

		switch c.Kind {
		case ComponentKindNamed:
			sb.WriteString(c.Name)

		case ComponentKindFunction:
			sb.WriteString(c.Name)
			sb.WriteString(" (")
			renderComponents(comps, start+1, sb)
			sb.WriteString(")(")
			sb.WriteString(c.Params)
			sb.WriteByte(')')
			return

		case ComponentKindArray:
			run := 0
			for start+run < len(comps) && comps[start+run].Kind == ComponentKindArray {
				run++
			}

			// Modifiers beyond the run bind to the array as a whole,
			// e.g. pointer-to-array renders as "int (*) [2]".
			if start+run < len(comps) {
				sb.WriteByte('(')
				renderComponents(comps, start+run, sb)
				sb.WriteString(") ")
			}

			// Dimensions were parsed outermost first, so emit the run
			// backwards to recover declaration order.
			for run > 0 {
				run--
				sb.WriteByte('[')
				sb.WriteString(strconv.Itoa(comps[start+run].Dim))
				sb.WriteByte(']')
			}
			return

		default:
			sb.WriteString(kindTokens[c.Kind])
		}

		start++
	}
}
