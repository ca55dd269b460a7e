package dockerfile

// Parse parses a complete Dockerfile: parser directives, every instruction,
// and the FROM-delimited build stages (including duplicate `AS` name
// detection). Returns an error if the input has no stages at all.
func Parse(text string) (*Document, error) {
	it, err := ParseIter(text)
	if err != nil {
		return nil, err
	}

	var instructions []Instruction
	var stages []stageRange
	stagesByName := map[string]int{}
	namePos := map[string]int{}
	curStart := -1

	for {
		instr, ok, nerr := it.Next()
		if nerr != nil {
			return nil, nerr
		}
		if !ok {
			break
		}
		idx := len(instructions)
		instructions = append(instructions, instr)

		if from, isFrom := instr.(*FromInstruction); isFrom {
			if curStart != -1 {
				stages = append(stages, stageRange{curStart, idx})
			}
			curStart = idx
			if from.As != nil {
				name := from.As.Name.Value
				if firstPos, dup := namePos[name]; dup {
					return nil, errDuplicateName(firstPos, from.As.Name.Span.Start).toError(text, it.escapeByte)
				}
				namePos[name] = from.As.Name.Span.Start
				stagesByName[name] = len(stages)
			}
		}
	}
	if curStart != -1 {
		stages = append(stages, stageRange{curStart, len(instructions)})
	}
	if len(stages) == 0 {
		return nil, errNoStage().toError(text, it.escapeByte)
	}

	return &Document{
		ParserDirectives: it.Directives,
		Instructions:     instructions,
		stages:           stages,
		stagesByName:     stagesByName,
	}, nil
}
