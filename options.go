package dockerfile

import "strings"

// parseOptions consumes a run of `--name` / `--name=value` flags in front of
// an instruction's main arguments. It stops as soon as the next token does
// not start with "--".
func parseOptions(text string, s *string, escapeByte byte) []Flag {
	var out []Flag
	for {
		skipSpaces(s, escapeByte)
		if !strings.HasPrefix(*s, "--") {
			return out
		}
		flagStart := pos(text, *s)
		*s = (*s)[2:]

		name := collectUntilUnescaped(text, s, maskWhitespace|maskEq, escapeByte)
		var value *UnescapedString
		if strings.HasPrefix(*s, "=") {
			*s = (*s)[1:]
			v := collectNonWhitespaceUnescaped(text, s, escapeByte)
			value = &v
		}
		out = append(out, Flag{flagStart: flagStart, Name: name, Value: value})
	}
}
