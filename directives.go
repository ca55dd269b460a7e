package dockerfile

// parseParserDirectives consumes the `# syntax=`, `# escape=`, `# check=`
// preamble at the front of *s. It stops at the first `#` line that is not a
// recognized, well-formed directive (consuming that line as an ordinary
// comment) or at the first non-`#` byte. A second occurrence of a directive
// that was already set clears all three directives, resets the escape byte
// to the default, and also terminates the preamble.
func parseParserDirectives(text string, s *string) (ParserDirectives, byte, *parseError) {
	var pd ParserDirectives
	escapeByte := byte(defaultEscapeByte)

	for {
		str := *s
		if len(str) == 0 || str[0] != '#' {
			return pd, escapeByte, nil
		}
		lineStart := pos(text, str)

		probe := str[1:]
		skipSpacesNoEscape(&probe)

		var name string
		switch {
		case token(&probe, "SYNTAX"):
			name = "SYNTAX"
		case token(&probe, "ESCAPE"):
			name = "ESCAPE"
		case token(&probe, "CHECK"):
			name = "CHECK"
		}
		if name == "" || len(probe) == 0 || probe[0] != '=' {
			skipThisLineNoEscape(s)
			return pd, escapeByte, nil
		}
		probe = probe[1:]

		alreadySet := (name == "SYNTAX" && pd.Syntax != nil) ||
			(name == "ESCAPE" && pd.Escape != nil) ||
			(name == "CHECK" && pd.Check != nil)
		if alreadySet {
			pd = ParserDirectives{}
			escapeByte = defaultEscapeByte
			skipThisLineNoEscape(s)
			return pd, escapeByte, nil
		}

		// The value is taken literally, so `escape=\` is not a line continuation.
		valueStart := pos(text, probe)
		n := 0
		for n < len(probe) && classifyTable[probe[n]]&maskLine == 0 {
			n++
		}
		end := n
		for end > 0 && classifyTable[probe[end-1]]&maskSpace != 0 {
			end--
		}
		value := UnescapedString{Span: Span{valueStart, valueStart + end}, Value: probe[:end]}
		probe = probe[n:]
		consumeLineEnd(&probe)
		switch name {
		case "SYNTAX":
			pd.Syntax = &ParserDirective[string]{start: lineStart, Value: Spanned[string]{Span: value.Span, Value: value.Value}}
		case "CHECK":
			pd.Check = &ParserDirective[string]{start: lineStart, Value: Spanned[string]{Span: value.Span, Value: value.Value}}
		case "ESCAPE":
			if value.Value != "\\" && value.Value != "`" {
				return pd, escapeByte, errInvalidEscape(value.Span.Start)
			}
			escapeByte = value.Value[0]
			pd.Escape = &ParserDirective[rune]{start: lineStart, Value: Spanned[rune]{Span: value.Span, Value: rune(escapeByte)}}
		}
		*s = probe
	}
}
