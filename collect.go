package dockerfile

import "strings"

// pos returns the byte offset of s within text, given that s is a suffix of
// text produced by repeated re-slicing (never concatenation).
func pos(text, s string) int {
	return len(text) - len(s)
}

// collectUntilUnescaped consumes bytes from *s until one matching untilMask
// is found (or input is exhausted), folding line-continuation escapes along
// the way. It only allocates a buffer once an escape is actually folded;
// until then the result aliases text directly.
func collectUntilUnescaped(text string, s *string, untilMask byte, escapeByte byte) UnescapedString {
	start := pos(text, *s)
	str := *s

	i := 0
	for i < len(str) {
		t := classifyTable[str[i]]
		if t&untilMask != 0 {
			break
		}
		if str[i] == escapeByte {
			if tmp := str[i:]; skipLineEscape(&tmp, escapeByte) {
				break
			}
		}
		i++
	}
	if i == len(str) || classifyTable[str[i]]&untilMask != 0 {
		value := str[:i]
		*s = str[i:]
		return UnescapedString{Span: Span{start, pos(text, *s)}, Value: value}
	}

	var b strings.Builder
	b.WriteString(str[:i])
	rest := str[i:]
	for len(rest) > 0 {
		if classifyTable[rest[0]]&untilMask != 0 {
			break
		}
		if rest[0] == escapeByte {
			if skipLineEscape(&rest, escapeByte) {
				skipLineEscapeFollowup(&rest)
				continue
			}
		}
		b.WriteByte(rest[0])
		rest = rest[1:]
	}
	*s = rest
	return UnescapedString{Span: Span{start, pos(text, *s)}, Value: b.String()}
}

// collectNonWhitespaceUnescaped collects a single whitespace-delimited token.
func collectNonWhitespaceUnescaped(text string, s *string, escapeByte byte) UnescapedString {
	return collectUntilUnescaped(text, s, maskWhitespace, escapeByte)
}

// consumeLineEnd consumes the line terminator at the front of *s, treating
// "\r\n" as a single unit. Safe to call when *s is already empty.
func consumeLineEnd(s *string) {
	str := *s
	if len(str) == 0 {
		return
	}
	if str[0] == '\r' && len(str) > 1 && str[1] == '\n' {
		*s = str[2:]
		return
	}
	*s = str[1:]
}

// collectNonLineUnescapedConsumeLine collects the remainder of the logical
// line (folding escapes), consumes the terminating newline, and trims
// trailing spaces/tabs from the collected value.
func collectNonLineUnescapedConsumeLine(text string, s *string, escapeByte byte) UnescapedString {
	us := collectUntilUnescaped(text, s, maskLine, escapeByte)
	consumeLineEnd(s)

	v := us.Value
	end := us.Span.End
	for len(v) > 0 && (v[len(v)-1] == ' ' || v[len(v)-1] == '\t') {
		v = v[:len(v)-1]
		end--
	}
	us.Value = v
	us.Span.End = end
	return us
}

// collectSpaceSeparatedUnescapedConsumeLine collects every whitespace-
// separated token up to the end of the logical line and consumes the
// terminating newline.
func collectSpaceSeparatedUnescapedConsumeLine(text string, s *string, escapeByte byte) []UnescapedString {
	var out []UnescapedString
	for {
		skipSpaces(s, escapeByte)
		if isLineEnd(*s) {
			break
		}
		out = append(out, collectNonWhitespaceUnescaped(text, s, escapeByte))
	}
	consumeLineEnd(s)
	return out
}
