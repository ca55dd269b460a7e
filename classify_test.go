package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestClassifyTableWhitespace(t *testing.T) {
	for _, b := range []byte(" \t\n\r") {
		assert.Check(t, classifyTable[b]&maskWhitespace != 0)
	}
}

func TestClassifyTableSpaceAndLineBitsAreDisjoint(t *testing.T) {
	for _, b := range []byte(" \t") {
		assert.Check(t, classifyTable[b]&maskSpace != 0)
		assert.Check(t, classifyTable[b]&maskLine == 0)
	}
	for _, b := range []byte("\n\r") {
		assert.Check(t, classifyTable[b]&maskLine != 0)
		assert.Check(t, classifyTable[b]&maskSpace == 0)
	}
}

func TestClassifyTableEscapeBytes(t *testing.T) {
	assert.Check(t, classifyTable['\\']&maskPossibleEscape != 0)
	assert.Check(t, classifyTable['`']&maskPossibleEscape != 0)
	assert.Check(t, classifyTable['a']&maskPossibleEscape == 0)
}

func TestToUpperASCII8(t *testing.T) {
	assert.Equal(t, byte('f')&toUpperASCII8, byte('F'))
	assert.Equal(t, byte('F')&toUpperASCII8, byte('F'))
}
