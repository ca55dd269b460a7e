package dockerfile

import "github.com/moby-labs/dockerfile-parser/internal/command"

// parseInstructionBody recognizes one instruction keyword at the front of
// *s and dispatches to its parser. It tries each candidate keyword in the
// first letter's bucket with the cheap, non-escape-tolerant token() first,
// falling back to the escape-tolerant tokenSlow() only when token() fails —
// most Dockerfiles never split a keyword across a line continuation, so the
// fast path is what actually runs almost always.
func parseInstructionBody(text string, s *string, escapeByte byte, inOnbuild bool) (Instruction, *parseError) {
	instructionStart := pos(text, *s)
	str0 := *s
	if len(str0) == 0 {
		return nil, errUnknownInstruction(instructionStart)
	}

	match := func(words ...string) (string, bool) {
		for _, w := range words {
			cand := str0
			ok := token(&cand, w)
			if !ok {
				cand = str0
				ok = tokenSlow(&cand, w, escapeByte)
			}
			if !ok {
				continue
			}
			check := cand
			if spacesOrLineEnd(&check, escapeByte) {
				*s = cand
				return w, true
			}
		}
		return "", false
	}

	var matched string
	var ok bool
	switch str0[0] & toUpperASCII8 {
	case 'A':
		if matched, ok = match(command.Add); !ok {
			matched, ok = match(command.Arg)
		}
	case 'C':
		if matched, ok = match(command.Cmd); !ok {
			matched, ok = match(command.Copy)
		}
	case 'E':
		if matched, ok = match(command.Entrypoint); !ok {
			if matched, ok = match(command.Env); !ok {
				matched, ok = match(command.Expose)
			}
		}
	case 'F':
		matched, ok = match(command.From)
	case 'H':
		matched, ok = match(command.Healthcheck)
	case 'L':
		matched, ok = match(command.Label)
	case 'M':
		matched, ok = match(command.Maintainer)
	case 'O':
		matched, ok = match(command.Onbuild)
	case 'R':
		matched, ok = match(command.Run)
	case 'S':
		if matched, ok = match(command.Shell); !ok {
			matched, ok = match(command.StopSignal)
		}
	case 'U':
		matched, ok = match(command.User)
	case 'V':
		matched, ok = match(command.Volume)
	case 'W':
		matched, ok = match(command.Workdir)
	}
	if !ok {
		return nil, errUnknownInstruction(instructionStart)
	}
	kw := Keyword{Span: Span{instructionStart, pos(text, *s)}}

	switch matched {
	case command.Add:
		return parseAddOrCopy(text, s, escapeByte, kw, true)
	case command.Copy:
		return parseAddOrCopy(text, s, escapeByte, kw, false)
	case command.Arg:
		return parseArg(text, s, escapeByte, kw)
	case command.Cmd:
		args, perr := parseCmdLike(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &CmdInstruction{Cmd: kw, Arguments: args}, nil
	case command.Entrypoint:
		args, perr := parseCmdLike(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &EntrypointInstruction{Entrypoint: kw, Arguments: args}, nil
	case command.Env:
		v, perr := parseAtLeastOneArgumentRestOfLine(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &EnvInstruction{Env: kw, Arguments: v}, nil
	case command.Expose:
		return parseExpose(text, s, escapeByte, kw)
	case command.From:
		return parseFrom(text, s, escapeByte, kw)
	case command.Healthcheck:
		return parseHealthcheck(text, s, escapeByte, kw)
	case command.Label:
		v, perr := parseAtLeastOneArgumentRestOfLine(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &LabelInstruction{Label: kw, Arguments: v}, nil
	case command.Maintainer:
		v, perr := parseExactlyOneArgument(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &MaintainerInstruction{Maintainer: kw, Name: v}, nil
	case command.Onbuild:
		return parseOnbuild(text, s, escapeByte, kw, inOnbuild)
	case command.Run:
		return parseRun(text, s, escapeByte, kw)
	case command.Shell:
		return parseShell(text, s, escapeByte, kw)
	case command.StopSignal:
		v, perr := parseExactlyOneArgument(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &StopsignalInstruction{Stopsignal: kw, Arguments: v}, nil
	case command.User:
		v, perr := parseExactlyOneArgument(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &UserInstruction{User: kw, Arguments: v}, nil
	case command.Volume:
		return parseVolume(text, s, escapeByte, kw)
	case command.Workdir:
		v, perr := parseExactlyOneArgument(text, s, escapeByte, kw)
		if perr != nil {
			return nil, perr
		}
		return &WorkdirInstruction{Workdir: kw, Arguments: v}, nil
	}
	return nil, errUnknownInstruction(instructionStart)
}

// parseExactlyOneArgument collects a single whitespace-delimited token and
// requires nothing but spaces follow it before the end of the line.
func parseExactlyOneArgument(text string, s *string, escapeByte byte, kw Keyword) (UnescapedString, *parseError) {
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		return UnescapedString{}, errExactlyOneArgument(kw.Span.Start)
	}
	arg := collectNonWhitespaceUnescaped(text, s, escapeByte)
	skipSpaces(s, escapeByte)
	if !isLineEnd(*s) {
		return UnescapedString{}, errExactlyOneArgument(kw.Span.Start)
	}
	consumeLineEnd(s)
	return arg, nil
}

// parseAtLeastOneArgumentRestOfLine collects the remainder of the line as a
// single token, requiring it be non-empty once leading spaces are skipped.
func parseAtLeastOneArgumentRestOfLine(text string, s *string, escapeByte byte, kw Keyword) (UnescapedString, *parseError) {
	skipSpaces(s, escapeByte)
	if isLineEnd(*s) {
		consumeLineEnd(s)
		return UnescapedString{}, errAtLeastOneArgument(kw.Span.Start)
	}
	return collectNonLineUnescapedConsumeLine(text, s, escapeByte), nil
}

func parseArg(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	v, perr := parseAtLeastOneArgumentRestOfLine(text, s, escapeByte, kw)
	if perr != nil {
		return nil, perr
	}
	return &ArgInstruction{Arg: kw, Arguments: v}, nil
}

func parseExpose(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	args := collectSpaceSeparatedUnescapedConsumeLine(text, s, escapeByte)
	if len(args) == 0 {
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}
	return &ExposeInstruction{Expose: kw, Arguments: args}, nil
}

func parseShell(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	skipSpaces(s, escapeByte)
	argsStart := pos(text, *s)
	if !isMaybeJSON(*s) {
		return nil, errJSON(argsStart)
	}
	elems, ok := parseJSONArray(text, s, escapeByte)
	if !ok {
		return nil, errJSON(argsStart)
	}
	skipSpaces(s, escapeByte)
	if !isLineEnd(*s) {
		return nil, errJSON(argsStart)
	}
	consumeLineEnd(s)
	return &ShellInstruction{Shell: kw, Arguments: elems}, nil
}

func parseVolume(text string, s *string, escapeByte byte, kw Keyword) (Instruction, *parseError) {
	skipSpaces(s, escapeByte)
	argsStart := pos(text, *s)
	if isMaybeJSON(*s) {
		elems, ok := parseJSONArray(text, s, escapeByte)
		if !ok {
			return nil, errJSON(argsStart)
		}
		skipSpaces(s, escapeByte)
		if !isLineEnd(*s) {
			return nil, errJSON(argsStart)
		}
		consumeLineEnd(s)
		return &VolumeInstruction{Volume: kw, Arguments: JSONArray{Span: Span{argsStart, pos(text, *s)}, Value: elems}}, nil
	}
	list := collectSpaceSeparatedUnescapedConsumeLine(text, s, escapeByte)
	if len(list) == 0 {
		return nil, errAtLeastOneArgument(kw.Span.Start)
	}
	return &VolumeInstruction{Volume: kw, Arguments: StringArray{Value: list}}, nil
}
