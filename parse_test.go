package dockerfile

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseSimpleDockerfile(t *testing.T) {
	text := "FROM alpine AS base\nRUN echo hi\nCMD [\"/bin/sh\"]\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(doc.Instructions, 3))
	assert.Assert(t, is.Len(doc.Stages(), 1))

	stage, ok := doc.Stage("base")
	assert.Check(t, ok)
	assert.Equal(t, stage.From.Image.Value, "alpine")
	assert.Assert(t, is.Len(stage.Instructions, 2))
}

func TestParseGlobalArgsBeforeFrom(t *testing.T) {
	text := "ARG VERSION=1\nFROM alpine:${VERSION}\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	args := doc.GlobalArgs()
	assert.Assert(t, is.Len(args, 1))
	assert.Equal(t, args[0].Arguments.Value, "VERSION=1")
}

func TestParseNoStagesErrors(t *testing.T) {
	_, err := Parse("ARG FOO=1\n")
	assert.ErrorContains(t, err, "no stages")
}

func TestParseNonArgBeforeFromErrors(t *testing.T) {
	_, err := Parse("RUN echo hi\nFROM alpine\n")
	assert.ErrorContains(t, err, "expected FROM")
}

func TestParseDuplicateStageNameErrors(t *testing.T) {
	text := "FROM alpine AS base\nFROM alpine AS base\n"
	_, err := Parse(text)
	assert.ErrorContains(t, err, "duplicate stage name")
}

func TestParseMultiStage(t *testing.T) {
	text := "FROM golang AS build\nRUN go build\nFROM alpine\nCOPY --from=build /app /app\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(doc.Stages(), 2))
	stages := doc.Stages()
	assert.Equal(t, stages[1].From.Image.Value, "alpine")
}

func TestParseHereDocInRun(t *testing.T) {
	text := "FROM alpine\nRUN <<EOF\necho hi\nEOF\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	run := doc.Instructions[1].(*RunInstruction)
	assert.Assert(t, is.Len(run.HereDocs, 1))
	assert.Equal(t, run.HereDocs[0].Value, "echo hi\n")
}

func TestParseCopyHereDoc(t *testing.T) {
	text := "FROM alpine\nCOPY <<EOF /dest\nhello\nEOF\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	cp := doc.Instructions[1].(*CopyInstruction)
	assert.Equal(t, cp.Dest.Value, "/dest")
	assert.Assert(t, is.Len(cp.Src, 1))
	hd, ok := cp.Src[0].(HereDoc)
	assert.Check(t, ok)
	assert.Equal(t, hd.Value, "hello\n")
}

func TestParseAddTooFewArguments(t *testing.T) {
	_, err := Parse("FROM alpine\nADD onlyone\n")
	assert.ErrorContains(t, err, "at least two arguments")
}

func TestParseShellRequiresJSON(t *testing.T) {
	_, err := Parse("FROM alpine\nSHELL /bin/sh\n")
	assert.Check(t, err != nil)
}

func TestParseHealthcheckNone(t *testing.T) {
	text := "FROM alpine\nHEALTHCHECK NONE\n"
	doc, err := Parse(text)
	assert.NilError(t, err)
	hc := doc.Instructions[1].(*HealthcheckInstruction)
	_, isNone := hc.Arguments.(HealthcheckNone)
	assert.Check(t, isNone)
}

func TestParseOnbuildNestedRejected(t *testing.T) {
	_, err := Parse("FROM alpine\nONBUILD ONBUILD RUN echo hi\n")
	assert.Check(t, err != nil)
}
