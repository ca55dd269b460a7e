package dockerfile

import "fmt"

// Error is returned by Parse and ParseIter. It carries a human-readable
// message and, where meaningful, the 1-based line and column of the byte
// that triggered it.
type Error struct {
	msg    string
	line   int
	column int
}

// Error implements the error interface: "<message> at line L column C", or
// just "<message>" when no location applies (currently only NoStage).
func (e *Error) Error() string {
	if e.line == 0 {
		return e.msg
	}
	return fmt.Sprintf("%s at line %d column %d", e.msg, e.line, e.column)
}

// Line returns the 1-based line the error occurred on, or 0 if the error has
// no associated position.
func (e *Error) Line() int { return e.line }

// Column returns the 1-based column the error occurred on, or 0 if the
// error has no associated position.
func (e *Error) Column() int { return e.column }

// Message returns the error text without a location suffix.
func (e *Error) Message() string { return e.msg }

type errKind int

const (
	kindOther errKind = iota
	kindExpected
	kindExpectedHereDocEnd
	kindExpectedQuote
	kindAtLeastOneArgument
	kindAtLeastTwoArguments
	kindExactlyOneArgument
	kindUnknownInstruction
	kindInvalidEscape
	kindDuplicateName
	kindNoStage
	kindJSON
)

// parseError is the internal, lazily-rendered representation of a parse
// failure: it defers message formatting and line/column lookup until it
// actually crosses the package boundary, via toError.
type parseError struct {
	kind  errKind
	pos   int
	pos2  int
	word  string
	quote byte
	found string
	msg   string
}

func errOther(msg string, p int) *parseError { return &parseError{kind: kindOther, msg: msg, pos: p} }

func errExpected(word string, p int) *parseError {
	return &parseError{kind: kindExpected, word: word, pos: p}
}

func errExpectedHereDocEnd(delim string, p int) *parseError {
	return &parseError{kind: kindExpectedHereDocEnd, word: delim, pos: p}
}

func errExpectedQuote(quote byte, found string, p int) *parseError {
	return &parseError{kind: kindExpectedQuote, quote: quote, found: found, pos: p}
}

func errAtLeastOneArgument(instructionStart int) *parseError {
	return &parseError{kind: kindAtLeastOneArgument, pos: instructionStart}
}

func errAtLeastTwoArguments(instructionStart int) *parseError {
	return &parseError{kind: kindAtLeastTwoArguments, pos: instructionStart}
}

func errExactlyOneArgument(instructionStart int) *parseError {
	return &parseError{kind: kindExactlyOneArgument, pos: instructionStart}
}

func errUnknownInstruction(instructionStart int) *parseError {
	return &parseError{kind: kindUnknownInstruction, pos: instructionStart}
}

func errInvalidEscape(escapeStart int) *parseError {
	return &parseError{kind: kindInvalidEscape, pos: escapeStart}
}

func errDuplicateName(first, second int) *parseError {
	return &parseError{kind: kindDuplicateName, pos: second, pos2: first}
}

func errNoStage() *parseError { return &parseError{kind: kindNoStage} }

func errJSON(argumentsStart int) *parseError {
	return &parseError{kind: kindJSON, pos: argumentsStart}
}

// toError renders a parseError into the public Error, re-reading the
// triggering instruction's keyword from text when the message needs to name
// it (e.g. "FROM instruction requires at least one argument").
func (e *parseError) toError(text string, escapeByte byte) *Error {
	if e.kind == kindNoStage {
		return &Error{msg: "no stages in Dockerfile"}
	}

	var msg string
	switch e.kind {
	case kindOther:
		msg = e.msg
	case kindExpected:
		msg = fmt.Sprintf("expected %s", e.word)
	case kindExpectedHereDocEnd:
		msg = fmt.Sprintf("expected end of here-document %q", e.word)
	case kindExpectedQuote:
		msg = fmt.Sprintf("expected quote (%c), but found %s", e.quote, e.found)
	case kindAtLeastOneArgument:
		msg = fmt.Sprintf("%s instruction requires at least one argument", displayKeyword(text, e.pos, escapeByte))
	case kindAtLeastTwoArguments:
		msg = fmt.Sprintf("%s instruction requires at least two arguments", displayKeyword(text, e.pos, escapeByte))
	case kindExactlyOneArgument:
		msg = fmt.Sprintf("%s instruction requires exactly one argument", displayKeyword(text, e.pos, escapeByte))
	case kindUnknownInstruction:
		msg = fmt.Sprintf("unknown instruction: %s", rereadWord(text, e.pos, escapeByte))
	case kindInvalidEscape:
		msg = "invalid ESCAPE value, must be '\\' or '`'"
	case kindDuplicateName:
		firstLine, _ := findLineColumn(text, e.pos2)
		msg = fmt.Sprintf("duplicate stage name, first used at line %d", firstLine)
	case kindJSON:
		msg = "invalid JSON"
	}

	line, col := findLineColumn(text, e.pos)
	return &Error{msg: msg, line: line, column: col}
}

// displayKeyword re-reads the word at p and substitutes "HEALTHCHECK CMD"
// for a bare "HEALTHCHECK", matching how HEALTHCHECK's CMD sub-form is
// referred to in its own argument-count errors.
func displayKeyword(text string, p int, escapeByte byte) string {
	word := rereadWord(text, p, escapeByte)
	if word == "HEALTHCHECK" {
		return "HEALTHCHECK CMD"
	}
	return word
}

func rereadWord(text string, p int, escapeByte byte) string {
	s := text[p:]
	return collectNonWhitespaceUnescaped(text, &s, escapeByte).Value
}

// findLineColumn converts a byte offset into a 1-based (line, column) pair.
func findLineColumn(text string, p int) (line, column int) {
	line = 1
	lineStart := 0
	for i := 0; i < p && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, p - lineStart + 1
}
