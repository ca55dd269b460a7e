package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestTokenFastPath(t *testing.T) {
	s := "from alpine"
	assert.Check(t, token(&s, "FROM"))
	assert.Equal(t, s, " alpine")
}

func TestTokenCaseInsensitive(t *testing.T) {
	s := "FrOm alpine"
	assert.Check(t, token(&s, "FROM"))
	assert.Equal(t, s, " alpine")
}

func TestTokenSlowToleratesEscapeMidKeyword(t *testing.T) {
	s := "FR\\\nOM alpine"
	assert.Check(t, tokenSlow(&s, "FROM", '\\'))
	assert.Equal(t, s, " alpine")
}

func TestTokenFailsOnMismatch(t *testing.T) {
	s := "COPY foo bar"
	assert.Check(t, !token(&s, "FROM"))
	assert.Equal(t, s, "COPY foo bar")
}

func TestStartsWithIgnoreASCIICaseLongWord(t *testing.T) {
	assert.Check(t, startsWithIgnoreASCIICase("healthcheck --foo", "HEALTHCHECK"))
	assert.Check(t, !startsWithIgnoreASCIICase("health", "HEALTHCHECK"))
}
