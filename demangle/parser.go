package demangle

import (
	"slices"
	"strconv"
	"strings"
)

// parseType decodes one type starting at the cursor and writes its C++
// spelling to sb. A leading '-' or digit selects the literal/length rule;
// anything else is decoded through the component dispatch.
func (d *demangler) parseType(sb *strings.Builder) {
	c, ok := d.cur.Peek()
	if !ok {
		return
	}

	if c == '-' || isDigit(c) {
		d.parseLiteralOrName(sb)
		return
	}

	comps := d.parseComponents()
	renderComponents(comps, 0, sb)
}

// parseLiteralOrName resolves the grammar's one ambiguity: a digit run is
// either a numeric template argument or the length prefix of a raw name.
// A single byte of lookahead after the run decides — ',' , '>' and end of
// input mean literal, anything else means length prefix.
func (d *demangler) parseLiteralOrName(sb *strings.Builder) {
	negative := false
	literal := false

	if c, ok := d.cur.Peek(); ok && c == '-' {
		d.cur.Read()
		negative = true
		literal = true
	}

	n := 0
	for {
		c, ok := d.cur.Peek()
		if !ok || !isDigit(c) {
			break
		}
		d.cur.Read()
		n = n*10 + int(c-'0')
	}

	if c, ok := d.cur.Peek(); !ok || c == ',' || c == '>' {
		literal = true
	}

	if literal {
		if negative {
			n = -n
		}
		sb.WriteString(strconv.Itoa(n))
		return
	}

	// Length-prefixed raw name: copy exactly n bytes, except that an inline
	// '<' stands for a full template argument list. The bytes the template
	// parse consumes count toward n.
	start := d.cur.Pos()
	for d.cur.Pos()-start < n {
		c, ok := d.cur.Read()
		if !ok {
			break
		}
		if c == '<' {
			d.parseTemplateArgs(sb)
		} else {
			sb.WriteByte(c)
		}
	}
}

// parseComponents runs the component dispatch until a terminal token and
// returns the sequence ordered base type first, modifiers after it from
// innermost-applied to outermost-applied.
func (d *demangler) parseComponents() []Component {
	var comps []Component

loop:
	for {
		c, ok := d.cur.Read()
		if !ok {
			break
		}

		switch c {
		case 'C':
			comps = append(comps, Component{Kind: ComponentKindConst})
		case 'P':
			comps = append(comps, Component{Kind: ComponentKindPointer})
		case 'R':
			comps = append(comps, Component{Kind: ComponentKindReference})
		case 'U':
			comps = append(comps, Component{Kind: ComponentKindUnsigned})

		case 'A':
			dim := 0
			for {
				b, ok := d.cur.Read()
				if !ok || b == '_' {
					break
				}
				dim = dim*10 + int(b-'0')
			}
			comps = append(comps, Component{Kind: ComponentKindArray, Dim: dim})

		case 'v':
			comps = append(comps, Component{Kind: ComponentKindVoid})
			break loop
		case 'i':
			comps = append(comps, Component{Kind: ComponentKindInt})
			break loop
		case 'f':
			comps = append(comps, Component{Kind: ComponentKindFloat})
			break loop
		case 'd':
			comps = append(comps, Component{Kind: ComponentKindDouble})
			break loop

		case 'Q':
			// Qualified name: one digit for the nesting depth, then that
			// many names joined with "::".
			b, _ := d.cur.Read()
			count := int(b) - '0'

			var name strings.Builder
			for i := 0; i < count; i++ {
				if i > 0 {
					name.WriteString("::")
				}
				d.parseType(&name)
			}
			comps = append(comps, Component{Kind: ComponentKindNamed, Name: name.String()})
			break loop

		case 'F':
			var params strings.Builder
			for {
				b, ok := d.cur.Peek()
				if !ok || b == '_' {
					break
				}
				if params.Len() > 0 {
					params.WriteString(", ")
				}
				d.parseType(&params)
			}
			d.cur.Read() // '_' between parameters and return type

			var ret strings.Builder
			d.parseType(&ret)

			p := params.String()
			if p == "void" {
				p = ""
			}
			comps = append(comps, Component{Kind: ComponentKindFunction, Name: ret.String(), Params: p})
			break loop

		default:
			if isDigit(c) {
				// A bare digit here opens a length-prefixed name; hand the
				// digit back so the literal/length rule sees the whole run.
				d.cur.Unread()
				var name strings.Builder
				d.parseLiteralOrName(&name)
				comps = append(comps, Component{Kind: ComponentKindNamed, Name: name.String()})
				break loop
			}
			// Unknown codes are skipped so garbled input degrades instead
			// of failing.
		}
	}

	slices.Reverse(comps)
	return comps
}

// parseTemplateArgs decodes a template argument list, the cursor sitting just
// past the opening '<'. Arguments render comma-space separated; '>' or end of
// input closes the list.
func (d *demangler) parseTemplateArgs(sb *strings.Builder) {
	sb.WriteByte('<')

	for {
		d.parseType(sb)

		c, ok := d.cur.Read()
		if !ok || c == '>' {
			break
		}
		if c == ',' {
			sb.WriteString(", ")
		}
	}

	sb.WriteByte('>')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
