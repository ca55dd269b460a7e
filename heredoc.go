package dockerfile

import "strings"

// parseHereDocHeader parses a `<<DELIM`, `<<-DELIM`, `<<'DELIM'`, or
// `<<-"DELIM"` opener that has already been isolated as a single token
// (by RUN's argument scanner, or by reclassifying an ADD/COPY source that
// starts with "<<"). expand is false when the delimiter was quoted; it is
// only recorded, and the body is read verbatim (no line-continuation
// folding) either way.
func parseHereDocHeader(token string) (delim string, stripTab, expand, ok bool) {
	if !strings.HasPrefix(token, "<<") {
		return "", false, false, false
	}
	rest := token[2:]

	if strings.HasPrefix(rest, "-") {
		stripTab = true
		rest = rest[1:]
	}

	expand = true
	var quote byte
	if len(rest) > 0 && (rest[0] == '"' || rest[0] == '\'') {
		quote = rest[0]
		expand = false
		rest = rest[1:]
	}

	i := 0
	for i < len(rest) && isAlnumASCII(rest[i]) {
		i++
	}
	if i == 0 {
		return "", false, false, false
	}
	delim = rest[:i]
	rest = rest[i:]

	if quote != 0 {
		if len(rest) == 0 || rest[0] != quote {
			return "", false, false, false
		}
		rest = rest[1:]
	}
	if rest != "" {
		return "", false, false, false
	}
	return delim, stripTab, expand, true
}

func isAlnumASCII(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// collectHereDocBody reads lines from *s up to and including the line that,
// after optional leading-tab stripping, is exactly delim. The terminator
// line itself is consumed but not included in the returned value.
func collectHereDocBody(text string, s *string, delim string, stripTab, expand bool) HereDoc {
	start := pos(text, *s)
	var b strings.Builder
	for {
		str := *s
		i := 0
		for i < len(str) && str[i] != '\n' && str[i] != '\r' {
			i++
		}
		line := str[:i]

		termLen := 0
		if i < len(str) {
			if str[i] == '\r' && i+1 < len(str) && str[i+1] == '\n' {
				termLen = 2
			} else {
				termLen = 1
			}
		}

		stripped := line
		if stripTab {
			j := 0
			for j < len(stripped) && stripped[j] == '\t' {
				j++
			}
			stripped = stripped[j:]
		}

		if stripped == delim {
			*s = str[i+termLen:]
			break
		}
		if i == len(str) {
			// Unterminated here-document: consume to end of input, matching
			// the rest of the grammar's "no trailing newline required" rule.
			*s = str[i:]
			break
		}

		b.WriteString(stripped)
		b.WriteString(str[i : i+termLen])
		*s = str[i+termLen:]
	}
	return HereDoc{Span: Span{start, pos(text, *s)}, Expand: expand, Value: b.String()}
}

func collectHereDocStripTab(text string, s *string, delim string, expand bool) HereDoc {
	return collectHereDocBody(text, s, delim, true, expand)
}

func collectHereDocNoStripTab(text string, s *string, delim string, expand bool) HereDoc {
	return collectHereDocBody(text, s, delim, false, expand)
}
