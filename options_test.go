package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseOptionsNameAndValue(t *testing.T) {
	text := "--from=build --chown=1000:1000 /src /dest"
	s := text
	flags := parseOptions(text, &s, '\\')
	assert.Assert(t, is.Len(flags, 2))

	assert.Equal(t, flags[0].Name.Value, "from")
	assert.Assert(t, flags[0].Value != nil)
	assert.Equal(t, flags[0].Value.Value, "build")

	assert.Equal(t, flags[1].Name.Value, "chown")
	assert.Assert(t, flags[1].Value != nil)
	assert.Equal(t, flags[1].Value.Value, "1000:1000")

	assert.Equal(t, s, "/src /dest")
}

func TestParseOptionsValuelessFlag(t *testing.T) {
	text := "--interactive cmd"
	s := text
	flags := parseOptions(text, &s, '\\')
	assert.Assert(t, is.Len(flags, 1))
	assert.Equal(t, flags[0].Name.Value, "interactive")
	assert.Assert(t, flags[0].Value == nil)
	assert.Equal(t, s, "cmd")
}

func TestParseOptionsNoneStopsAtFirstNonFlag(t *testing.T) {
	text := "/src /dest"
	s := text
	flags := parseOptions(text, &s, '\\')
	assert.Assert(t, is.Len(flags, 0))
	assert.Equal(t, s, "/src /dest")
}

func TestParseOptionsSpan(t *testing.T) {
	text := "--from=build rest"
	s := text
	flags := parseOptions(text, &s, '\\')
	assert.Assert(t, is.Len(flags, 1))
	f := flags[0]
	assert.Equal(t, text[f.FlagSpan().Start:f.FlagSpan().End], "--from")
	assert.Equal(t, text[f.Span().Start:f.Span().End], "--from=build")
}
