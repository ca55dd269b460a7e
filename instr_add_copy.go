package dockerfile

import "strings"

// parseAddOrCopy implements ADD and COPY, which share a grammar: options,
// then either a JSON array or a space-separated list of tokens, the last of
// which is the destination and the rest are sources. A source token that
// starts with "<<" is reclassified as a here-document, whose body is read
// from the lines that follow.
func parseAddOrCopy(text string, s *string, escapeByte byte, kw Keyword, isAdd bool) (Instruction, *parseError) {
	options := parseOptions(text, s, escapeByte)
	skipSpaces(s, escapeByte)

	var tokens []UnescapedString
	if isMaybeJSON(*s) {
		elems, ok := parseJSONArray(text, s, escapeByte)
		if ok {
			tokens = elems
			skipSpaces(s, escapeByte)
			if !isLineEnd(*s) {
				return nil, errExpected("end of line", pos(text, *s))
			}
			consumeLineEnd(s)
		}
	}
	if tokens == nil {
		tokens = collectSpaceSeparatedUnescapedConsumeLine(text, s, escapeByte)
	}
	if len(tokens) < 2 {
		return nil, errAtLeastTwoArguments(kw.Span.Start)
	}

	dest := tokens[len(tokens)-1]
	srcTokens := tokens[:len(tokens)-1]
	sources := make([]Source, 0, len(srcTokens))
	for _, t := range srcTokens {
		if strings.HasPrefix(t.Value, "<<") && len(t.Value) > 2 {
			delim, stripTab, expand, ok := parseHereDocHeader(t.Value)
			if !ok {
				return nil, errExpected("here-document delimiter", t.Span.Start)
			}
			sources = append(sources, collectHereDocBody(text, s, delim, stripTab, expand))
			continue
		}
		sources = append(sources, t)
	}

	if isAdd {
		return &AddInstruction{Add: kw, Options: options, Src: sources, Dest: dest}, nil
	}
	return &CopyInstruction{Copy: kw, Options: options, Src: sources, Dest: dest}, nil
}
