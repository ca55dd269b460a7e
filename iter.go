package dockerfile

import (
	"iter"
	"strings"
)

// Iter pulls one instruction at a time from a Dockerfile, after consuming
// its parser-directive preamble. Use Parse instead when the whole document
// (with stages already assembled) is wanted.
type Iter struct {
	text       string
	s          string
	escapeByte byte
	hasStage   bool
	inOnbuild  bool

	Directives ParserDirectives
}

// ParseIter strips a leading UTF-8 BOM, consumes the parser-directive
// preamble, and returns an Iter positioned at the first instruction.
func ParseIter(text string) (*Iter, error) {
	t := stripUTF8BOM(text)
	s := t
	directives, escapeByte, perr := parseParserDirectives(t, &s)
	if perr != nil {
		return nil, perr.toError(t, defaultEscapeByte)
	}
	skipCommentsAndWhitespace(&s, escapeByte)
	return &Iter{text: t, s: s, escapeByte: escapeByte, Directives: directives}, nil
}

func stripUTF8BOM(text string) string {
	if strings.HasPrefix(text, string(utf8BOM)) {
		return text[len(utf8BOM):]
	}
	return text
}

// Next returns the next instruction, (nil, false, nil) at a clean end of
// input, or an error if the input is malformed or ends without ever seeing
// a FROM.
func (it *Iter) Next() (Instruction, bool, error) {
	if len(it.s) == 0 {
		if !it.hasStage {
			return nil, false, errNoStage().toError(it.text, it.escapeByte)
		}
		return nil, false, nil
	}

	instr, perr := parseInstructionBody(it.text, &it.s, it.escapeByte, it.inOnbuild)
	if perr != nil {
		return nil, false, perr.toError(it.text, it.escapeByte)
	}

	switch v := instr.(type) {
	case *FromInstruction:
		it.hasStage = true
		_ = v
	case *ArgInstruction:
		// ARG is allowed before the first FROM.
	default:
		if !it.hasStage {
			return nil, false, errExpected("FROM", instr.instructionSpan().Start).toError(it.text, it.escapeByte)
		}
	}

	skipCommentsAndWhitespace(&it.s, it.escapeByte)
	return instr, true, nil
}

// All adapts Next into a range-over-func iterator for Go 1.23+ `for range`.
func (it *Iter) All() iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		for {
			instr, ok, err := it.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok {
				return
			}
			if !yield(instr, nil) {
				return
			}
		}
	}
}
