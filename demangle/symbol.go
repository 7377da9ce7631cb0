package demangle

import "strings"

// Symbol is the structured form of a demangled name. String reproduces
// exactly what Demangle returns for the same input.
type Symbol struct {
	Raw    string // original mangled text
	Owner  string // owning class or namespace, "" for free symbols
	Name   string // decoded identifier, templates expanded
	Params string // rendered parameter list, "" when none was encoded
	Const  bool   // const member function
}

// Parse decodes a mangled symbol name into its structured parts. Like
// Demangle it never fails; malformed input yields partially filled fields.
func Parse(symbol string) Symbol {
	return newDemangler(symbol).parse(symbol)
}

// IsMember reports whether the symbol belongs to a class or namespace.
func (s Symbol) IsMember() bool {
	return s.Owner != ""
}

// Unmangleable reports whether decoding collapsed to the degenerate owner,
// meaning the raw name should be shown instead.
func (s Symbol) Unmangleable() bool {
	return s.Owner == "int"
}

// String composes the demangled declaration. The parameter list is omitted
// when no parameters were decoded, so data symbols render without
// parentheses.
func (s Symbol) String() string {
	var sb strings.Builder

	if s.Owner != "" {
		sb.WriteString(s.Owner)
		sb.WriteString("::")
	}

	sb.WriteString(s.Name)

	if s.Params != "" {
		sb.WriteByte('(')
		sb.WriteString(s.Params)
		sb.WriteByte(')')
	}

	if s.Const {
		sb.WriteString(" const")
	}

	return sb.String()
}
