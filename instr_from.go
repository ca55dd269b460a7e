package dockerfile

func parseFrom(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	options := parseOptions(text, s, escapeByte)
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		consumeLineEnd(s)
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}
	image := collectNonWhitespaceUnescaped(text, s, escapeByte)
	skipSpaces(s, escapeByte)

	var asClause *FromAs
	if !isLineEnd(*s) {
		asStart := pos(text, *s)
		cand := *s
		matched := token(&cand, "AS")
		if !matched {
			cand = *s
			matched = tokenSlow(&cand, "AS", escapeByte)
		}
		if matched {
			check := cand
			if !spacesOrLineEnd(&check, escapeByte) {
				return nil, errExpected("AS", pos(text, *s))
			}
			asKw := Keyword{Span: Span{asStart, pos(text, cand)}}
			*s = cand
			skipSpaces(s, escapeByte)
			if isLineEnd(*s) {
				return nil, errExpected("stage name", pos(text, *s))
			}
			name := collectNonWhitespaceUnescaped(text, s, escapeByte)
			asClause = &FromAs{As: asKw, Name: name}
			skipSpaces(s, escapeByte)
		}
		if asClause == nil && !isLineEnd(*s) {
			return nil, errExpected("AS", pos(text, *s))
		}
	}

	consumeLineEnd(s)
	return &FromInstruction{From: kw, Options: options, Image: image, As: asClause}, nil
}
