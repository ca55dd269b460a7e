package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIterAllMatchesManualNext(t *testing.T) {
	text := "FROM alpine AS base\nARG X=1\nRUN echo hi\nCMD [\"/bin/sh\"]\n"

	it1, err := ParseIter(text)
	assert.NilError(t, err)
	var manual []Instruction
	for {
		instr, ok, nerr := it1.Next()
		assert.NilError(t, nerr)
		if !ok {
			break
		}
		manual = append(manual, instr)
	}

	it2, err := ParseIter(text)
	assert.NilError(t, err)
	var viaAll []Instruction
	for instr, rerr := range it2.All() {
		assert.NilError(t, rerr)
		viaAll = append(viaAll, instr)
	}

	assert.Assert(t, is.Len(viaAll, len(manual)))
	for i := range manual {
		assert.DeepEqual(t, manual[i], viaAll[i])
	}
}

func TestIterAllStopsOnError(t *testing.T) {
	text := "RUN echo hi\nFROM alpine\n"
	it, err := ParseIter(text)
	assert.NilError(t, err)

	var sawErr bool
	for instr, rerr := range it.All() {
		if rerr != nil {
			sawErr = true
			assert.Assert(t, instr == nil)
			break
		}
	}
	assert.Check(t, sawErr)
}

func TestIterArgAllowedBeforeFrom(t *testing.T) {
	text := "ARG FOO=1\nFROM alpine\n"
	it, err := ParseIter(text)
	assert.NilError(t, err)

	instr, ok, nerr := it.Next()
	assert.NilError(t, nerr)
	assert.Check(t, ok)
	_, isArg := instr.(*ArgInstruction)
	assert.Check(t, isArg)

	instr, ok, nerr = it.Next()
	assert.NilError(t, nerr)
	assert.Check(t, ok)
	_, isFrom := instr.(*FromInstruction)
	assert.Check(t, isFrom)

	_, ok, nerr = it.Next()
	assert.NilError(t, nerr)
	assert.Check(t, !ok)
}

func TestIterDirectivesExposed(t *testing.T) {
	text := "# escape=`\nFROM alpine\n"
	it, err := ParseIter(text)
	assert.NilError(t, err)
	assert.Assert(t, it.Directives.Escape != nil)
	assert.Equal(t, it.Directives.Escape.Value.Value, '`')
}
