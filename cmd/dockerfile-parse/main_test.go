package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/moby-labs/dockerfile-parser"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIJSONRoundTrip(t *testing.T) {
	text := "FROM alpine AS base\nRUN echo hi\nCMD [\"/bin/sh\"]\n"
	path := filepath.Join(t.TempDir(), "Dockerfile")
	assert.NilError(t, os.WriteFile(path, []byte(text), 0o644))

	out, err := runCLI(t, "--json", path)
	assert.NilError(t, err)
	assert.Check(t, json.Valid([]byte(out)))

	doc, perr := dockerfile.Parse(text)
	assert.NilError(t, perr)
	var want bytes.Buffer
	enc := json.NewEncoder(&want)
	enc.SetIndent("", "  ")
	assert.NilError(t, enc.Encode(doc))

	assert.Equal(t, out, want.String())
}

func TestCLIVersionFlag(t *testing.T) {
	out, err := runCLI(t, "--version")
	assert.NilError(t, err)
	assert.Equal(t, out, version+"\n")
}

func TestCLIReadsStdin(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString("FROM alpine\n"))
	cmd.SetArgs([]string{"-"})
	assert.NilError(t, cmd.Execute())
}

func TestCLIUnknownPathErrors(t *testing.T) {
	_, err := runCLI(t, filepath.Join(t.TempDir(), "missing"))
	assert.Check(t, err != nil)
}
