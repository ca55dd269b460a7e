package dockerfile

// Byte category bitmask. All hot-path scanning consults classifyTable with
// one lookup and a mask test; escape/comment/quote handling is only taken
// when the relevant bit is set.
const (
	maskLine          = 1 << 0 // \n \r
	maskSpace         = 1 << 1 // space, tab
	maskWhitespace    = maskLine | maskSpace
	maskComment       = 1 << 3 // #
	maskDoubleQuote   = 1 << 4 // "
	maskPossibleEscape = 1 << 5 // \ or `
	maskEq            = 1 << 6 // =
)

var classifyTable = func() [256]byte {
	var t [256]byte
	t[' '] = maskSpace
	t['\t'] = maskSpace
	t['\n'] = maskLine
	t['\r'] = maskLine
	t['#'] = maskComment
	t['"'] = maskDoubleQuote
	t['\\'] = maskPossibleEscape
	t['`'] = maskPossibleEscape
	t['='] = maskEq
	return t
}()

// toUpperASCII8 clears the bit that distinguishes an ASCII letter's case,
// folding 'a'-'z' onto 'A'-'Z' (and leaving non-letters alone for the
// purposes of keyword matching, since only letters are ever compared).
const toUpperASCII8 = 0xDF

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const defaultEscapeByte = '\\'
