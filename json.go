package dockerfile

import "strings"

// parseJSONArray parses a JSON array of strings at the front of *s (which
// must start with '['). The closing ']' may be followed only by spaces/tabs
// and the end of the line. On success it advances *s past the ']' (leaving
// any trailing spaces and the line terminator for the caller) and returns
// the decoded elements. On failure it leaves *s untouched so the caller can fall back to
// another grammar (ADD/COPY) or surface a Json error at the array's start
// (everything else).
//
// Both JSON string escapes (\" \\ \/ \b \f \n \r \t \uXXXX, including
// surrogate pairs) and a Dockerfile line-continuation escape are honored
// inside each element, matching how the rest of the grammar folds escapes
// everywhere a token is collected.
func parseJSONArray(text string, s *string, escapeByte byte) ([]UnescapedString, bool) {
	str := *s
	if len(str) == 0 || str[0] != '[' {
		return nil, false
	}
	rest := str[1:]
	skipSpacesNoEscape(&rest)

	if len(rest) > 0 && rest[0] == ']' {
		rest = rest[1:]
		tail := rest
		skipSpacesNoEscape(&tail)
		if !isLineEnd(tail) {
			return nil, false
		}
		*s = rest
		return nil, true
	}

	var out []UnescapedString
	for {
		skipSpacesNoEscape(&rest)
		if len(rest) == 0 || rest[0] != '"' {
			return nil, false
		}
		elemStart := pos(text, rest)
		rest = rest[1:]

		var b strings.Builder
		for {
			if len(rest) == 0 {
				return nil, false
			}
			if skipLineEscape(&rest, escapeByte) {
				skipLineEscapeFollowup(&rest)
				continue
			}
			c := rest[0]
			if c == '"' {
				rest = rest[1:]
				break
			}
			if c == '\n' || c == '\r' {
				return nil, false
			}
			if c != '\\' {
				b.WriteByte(c)
				rest = rest[1:]
				continue
			}
			if len(rest) < 2 {
				return nil, false
			}
			switch rest[1] {
			case '"':
				b.WriteByte('"')
				rest = rest[2:]
			case '\\':
				b.WriteByte('\\')
				rest = rest[2:]
			case '/':
				b.WriteByte('/')
				rest = rest[2:]
			case 'b':
				b.WriteByte('\b')
				rest = rest[2:]
			case 'f':
				b.WriteByte('\f')
				rest = rest[2:]
			case 'n':
				b.WriteByte('\n')
				rest = rest[2:]
			case 'r':
				b.WriteByte('\r')
				rest = rest[2:]
			case 't':
				b.WriteByte('\t')
				rest = rest[2:]
			case 'u':
				r, ok := parseJSONHexEscape(rest[2:])
				if !ok {
					return nil, false
				}
				rest = rest[6:]
				switch {
				case r >= 0xD800 && r <= 0xDBFF:
					if len(rest) < 6 || rest[0] != '\\' || rest[1] != 'u' {
						return nil, false
					}
					r2, ok := parseJSONHexEscape(rest[2:])
					if !ok || r2 < 0xDC00 || r2 > 0xDFFF {
						return nil, false
					}
					rest = rest[6:]
					combined := ((r-0xD800)<<10 | (r2 - 0xDC00)) + 0x10000
					b.WriteRune(rune(combined))
				case r >= 0xDC00 && r <= 0xDFFF:
					return nil, false
				default:
					b.WriteRune(rune(r))
				}
			default:
				return nil, false
			}
		}
		out = append(out, UnescapedString{Span: Span{elemStart, pos(text, rest)}, Value: b.String()})

		skipSpacesNoEscape(&rest)
		switch {
		case len(rest) > 0 && rest[0] == ',':
			rest = rest[1:]
		case len(rest) > 0 && rest[0] == ']':
			rest = rest[1:]
			tail := rest
			skipSpacesNoEscape(&tail)
			if !isLineEnd(tail) {
				return nil, false
			}
			*s = rest
			return out, true
		default:
			return nil, false
		}
	}
}

// parseJSONHexEscape decodes the 4 hex digits immediately following a
// "\u" escape.
func parseJSONHexEscape(s string) (int, bool) {
	if len(s) < 4 {
		return 0, false
	}
	n := 0
	for i := 0; i < 4; i++ {
		n <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			n |= int(c - '0')
		case c >= 'a' && c <= 'f':
			n |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return n, true
}
