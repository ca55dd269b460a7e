package dockerfile

import "strings"

// parseCommandArguments parses a CMD/ENTRYPOINT/RUN/HEALTHCHECK-CMD payload:
// a JSON array (exec form) if the remainder looks like one, otherwise the
// raw, never-unescaped remainder of the line (shell form).
func parseCommandArguments(text string, s *string, escapeByte byte) (Command, *parseError) {
	argsStart := pos(text, *s)
	if isMaybeJSON(*s) {
		elems, ok := parseJSONArray(text, s, escapeByte)
		if !ok {
			return nil, errJSON(argsStart)
		}
		return ExecCommand{Span: Span{argsStart, pos(text, *s)}, Value: elems}, nil
	}
	return collectShellCommand(text, s, escapeByte), nil
}

// collectShellCommand takes the raw remainder of the logical line verbatim:
// shell form is interpreted by the shell at build time, so this module must
// not fold its escapes the way every other token is folded.
func collectShellCommand(text string, s *string, escapeByte byte) ShellCommand {
	start := pos(text, *s)
	skipThisLine(s, escapeByte)
	raw := text[start:pos(text, *s)]

	if len(raw) > 0 && classifyTable[raw[len(raw)-1]]&maskLine != 0 {
		raw = raw[:len(raw)-1]
	}
	for len(raw) > 0 && (raw[len(raw)-1] == ' ' || raw[len(raw)-1] == '\t') {
		raw = raw[:len(raw)-1]
	}
	return ShellCommand{Span: Span{start, start + len(raw)}, Value: raw}
}

// parseCmdLike is shared by CMD, ENTRYPOINT, and HEALTHCHECK's CMD form:
// all three require at least some argument text on the line.
func parseCmdLike(text string, s *string, escapeByte byte, kw Keyword) (Command, *parseError) {
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		consumeLineEnd(s)
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}
	return parseCommandArguments(text, s, escapeByte)
}

func parseRun(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	options := parseOptions(text, s, escapeByte)
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		consumeLineEnd(s)
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}

	var heredocs []HereDoc
	var args Command

	if len(*s) >= 5 && strings.HasPrefix(*s, "<<") {
		opener := collectNonWhitespaceUnescaped(text, s, escapeByte)
		delim, stripTab, expand, ok := parseHereDocHeader(opener.Value)
		if !ok {
			return nil, errExpected("here-document delimiter", opener.Span.Start)
		}
		args = collectShellCommand(text, s, escapeByte)
		heredocs = append(heredocs, collectHereDocBody(text, s, delim, stripTab, expand))
	} else {
		var perr *parseError
		args, perr = parseCommandArguments(text, s, escapeByte)
		if perr != nil {
			return nil, perr
		}
	}

	return &RunInstruction{Run: kw, Options: options, Arguments: args, HereDocs: heredocs}, nil
}

func parseHealthcheck(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	options := parseOptions(text, s, escapeByte)
	skipSpaces(s, escapeByte)
	subStart := pos(text, *s)
	str0 := *s

	candNone := str0
	if ok := token(&candNone, "NONE"); ok || tokenSlow(&candNone, "NONE", escapeByte) {
		check := candNone
		if spacesOrLineEnd(&check, escapeByte) {
			noneKw := Keyword{Span: Span{subStart, pos(text, candNone)}}
			*s = candNone
			skipSpaces(s, escapeByte)
			if !isLineEnd(*s) {
				return nil, errExpected("end of line", pos(text, *s))
			}
			consumeLineEnd(s)
			return &HealthcheckInstruction{Healthcheck: kw, Options: options, Arguments: HealthcheckNone{None: noneKw}}, nil
		}
	}

	candCmd := str0
	if ok := token(&candCmd, "CMD"); ok || tokenSlow(&candCmd, "CMD", escapeByte) {
		check := candCmd
		if spacesOrLineEnd(&check, escapeByte) {
			cmdKw := Keyword{Span: Span{subStart, pos(text, candCmd)}}
			*s = candCmd
			args, perr := parseCmdLike(text, s, escapeByte, kw)
			if perr != nil {
				return nil, perr
			}
			return &HealthcheckInstruction{Healthcheck: kw, Options: options, Arguments: HealthcheckCmd{Cmd: cmdKw, Arguments: args}}, nil
		}
	}

	return nil, errExpected("CMD or NONE", subStart)
}
