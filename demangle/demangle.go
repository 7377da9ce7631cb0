// Package demangle decodes C++ symbol names mangled by the pre-Itanium
// MetroWerks/CodeWarrior convention into human-readable signatures.
//
// The scheme encodes a symbol as an identifier, a "__" separator, an
// optional owning class or namespace, an optional const marker and an
// optional parameter list, e.g.
//
//	GetSize__4FileCFv  ->  File::GetSize(void) const
//
// Demangling is total: malformed input yields best-effort, possibly
// truncated output rather than an error. The Itanium "_Z..." scheme used by
// GCC 3 and later is not supported.
package demangle

import (
	"strings"

	"github.com/skdltmxn/mwdemangle/internal/scan"
)

// Sentinel is the prefix of the degenerate output produced for symbols the
// scheme cannot express, typically compiler-generated sinit-style names
// whose signature collapses to a bare "i". Callers that want to fall back
// to the raw name should test with IsSentinel instead of embedding this
// string.
const Sentinel = "int::"

// IsSentinel reports whether a demangled string carries the degenerate
// owner produced for unmangleable symbols.
func IsSentinel(demangled string) bool {
	return strings.HasPrefix(demangled, Sentinel)
}

// Demangle decodes a mangled symbol name. It never fails: input that does
// not follow the scheme degrades to partial or unchanged output.
func Demangle(symbol string) string {
	return Parse(symbol).String()
}

// demangler holds the parse state for a single symbol.
type demangler struct {
	cur *scan.Cursor
}

func newDemangler(symbol string) *demangler {
	return &demangler{cur: scan.NewCursor(symbol)}
}

// scanNameEnd finds the split between the identifier and its encoded
// signature: the right-most "__" in the unscanned remainder. Later
// occurrences win because templated names and operator spellings may
// themselves contain "__". If no separator exists the whole remainder is
// the identifier.
func (d *demangler) scanNameEnd() int {
	end := d.cur.Len()

	for i := d.cur.Pos(); i < d.cur.Len()-1; i++ {
		a, _ := d.cur.At(i)
		b, _ := d.cur.At(i + 1)
		if a == '_' && b == '_' {
			end = i
		}
	}

	return end
}

// parseName consumes the identifier up to the separator, expanding inline
// template argument lists, and skips the separator itself.
func (d *demangler) parseName() string {
	var sb strings.Builder
	end := d.scanNameEnd()

	for d.cur.Pos() < end {
		c, _ := d.cur.Read()
		if c == '<' {
			d.parseTemplateArgs(&sb)
		} else {
			sb.WriteByte(c)
		}
	}

	if end < d.cur.Len() {
		d.cur.Skip(2)
	}

	return sb.String()
}

func (d *demangler) parse(raw string) Symbol {
	sym := Symbol{Raw: raw}

	sym.Name = d.parseName()

	// Anything before an 'F' marker is the owning class or namespace.
	if c, ok := d.cur.Peek(); ok && c != 'F' {
		var sb strings.Builder
		d.parseType(&sb)
		sym.Owner = sb.String()
	}

	if c, ok := d.cur.Peek(); ok && c == 'C' {
		d.cur.Read()
		sym.Const = true
	}

	if c, ok := d.cur.Peek(); ok && c == 'F' {
		d.cur.Read()
		var sb strings.Builder
		for !d.cur.AtEnd() {
			if sb.Len() > 0 {
				sb.WriteString(", ")
			}
			d.parseType(&sb)
		}
		sym.Params = sb.String()
	}

	return sym
}
