package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseJSONArraySimple(t *testing.T) {
	s := `["echo", "hello world"]` + "\n rest"
	elems, ok := parseJSONArray(`["echo", "hello world"]`, &s, '\\')
	assert.Check(t, ok)
	assert.Assert(t, is.Len(elems, 2))
	assert.Equal(t, elems[0].Value, "echo")
	assert.Equal(t, elems[1].Value, "hello world")
	assert.Equal(t, s, "\n rest")
}

func TestParseJSONArrayEmpty(t *testing.T) {
	s := "[]\n"
	elems, ok := parseJSONArray("[]\n", &s, '\\')
	assert.Check(t, ok)
	assert.Check(t, is.Len(elems, 0))
}

func TestParseJSONArrayEscapes(t *testing.T) {
	text := `["a\tb", "A"]`
	s := text
	elems, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, ok)
	assert.Equal(t, elems[0].Value, "a\tb")
	assert.Equal(t, elems[1].Value, "A")
}

func TestParseJSONArrayLiteralUTF8Passthrough(t *testing.T) {
	text := "[\"😀\"]"
	s := text
	elems, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, ok)
	assert.Equal(t, elems[0].Value, "😀")
}

func TestParseJSONArraySurrogatePairEscape(t *testing.T) {
	text := "[\"\\uD83D\\uDE00\"]"
	s := text
	elems, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, ok)
	assert.Equal(t, elems[0].Value, "\U0001F600")
}

func TestParseJSONArrayLoneSurrogateFails(t *testing.T) {
	text := `["\uDC00"]`
	s := text
	_, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, !ok)
	assert.Equal(t, s, text)
}

func TestParseJSONArrayLiteralNewlineFails(t *testing.T) {
	text := "[\"a\nb\"]"
	s := text
	_, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, !ok)
	assert.Equal(t, s, text)
}

func TestParseJSONArrayNotAnArray(t *testing.T) {
	text := "echo hello"
	s := text
	_, ok := parseJSONArray(text, &s, '\\')
	assert.Check(t, !ok)
}
