package dockerfile

// parseOnbuild parses the single nested instruction that follows ONBUILD.
// Nesting a second ONBUILD is rejected; ONBUILD FROM and ONBUILD MAINTAINER
// are accepted even though Docker itself forbids them, matching this
// project's decision to leave that restriction unenforced at the syntax
// layer (see DESIGN.md).
func parseOnbuild(text string, s *string, escapeByte byte, kw Keyword, inOnbuild bool) (Instruction, *parseError) {
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		consumeLineEnd(s)
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}
	if inOnbuild {
		return nil, errOther("ONBUILD instruction cannot be nested", kw.Span.Start)
	}
	inner, perr := parseInstructionBody(text, s, escapeByte, true)
	if perr != nil {
		return nil, perr
	}
	return &OnbuildInstruction{Onbuild: kw, Instruction: inner}, nil
}
