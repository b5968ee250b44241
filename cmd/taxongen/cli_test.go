package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `version: 1
package: apperrors
kinds:
  - name: IoError
    message_id: Err-00001
    code: 500
    description: Input / output error
  - name: ValidationError
    message_id: Err-00002
    code: 400
    description: Validation failed
variants:
  - name: NotFoundError
    kind: IoError
    doc: reports a missing filesystem entry.
  - name: SchemaViolationError
    kind: ValidationError
`

func writeManifest(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func captureCombinedOutput(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	output, err := captureCombinedOutput(createRootCmd(), "version")
	require.NoError(t, err)
	assert.Contains(t, output, "taxongen version:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "Platform:")
}

func TestValidateCmd_ValidManifest(t *testing.T) {
	path := writeManifest(t, testManifest)
	output, err := captureCombinedOutput(createRootCmd(), "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, output, "2 kinds, 2 variants")
}

func TestValidateCmd_ReportsEveryViolation(t *testing.T) {
	doc := "version: 3\npackage: x\nkinds:\n  - name: IoError\n    code: 500\n    description: d\n" +
		"variants:\n  - name: NotFoundError\n    kind: GhostError\n"
	path := writeManifest(t, doc)

	output, err := captureCombinedOutput(createRootCmd(), "validate", "-f", path)
	require.Error(t, err)
	assert.Contains(t, output, "unsupported manifest version 3")
	assert.Contains(t, output, "has no message_id")
	assert.Contains(t, output, `references kind "GhostError"`)
	assert.NotContains(t, output, "Usage:")
}

func TestValidateCmd_MissingManifest(t *testing.T) {
	_, err := captureCombinedOutput(createRootCmd(), "validate", "-f", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestGenerateCmd_WritesArtifact(t *testing.T) {
	path := writeManifest(t, testManifest)
	out := filepath.Join(filepath.Dir(path), "apperrors_gen.go")

	output, err := captureCombinedOutput(createRootCmd(), "generate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, output, "wrote "+out)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by taxongen. DO NOT EDIT.")
	assert.Contains(t, string(src), "package apperrors")
	assert.Contains(t, string(src), "var _ xgxtaxon.AsError = NotFoundError{}")
}

func TestGenerateCmd_ExplicitOutput(t *testing.T) {
	path := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "custom_gen.go")

	output, err := captureCombinedOutput(createRootCmd(), "generate", "-f", path, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, output, "wrote "+out)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestGenerateCmd_Check(t *testing.T) {
	path := writeManifest(t, testManifest)

	_, err := captureCombinedOutput(createRootCmd(), "generate", "-f", path, "--check")
	require.Error(t, err, "a missing artifact reads as stale")
	assert.Contains(t, err.Error(), "out of date")

	_, err = captureCombinedOutput(createRootCmd(), "generate", "-f", path)
	require.NoError(t, err)

	output, err := captureCombinedOutput(createRootCmd(), "generate", "-f", path, "--check")
	require.NoError(t, err)
	assert.Contains(t, output, "up to date:")
}

func TestGenerateCmd_InvalidManifestFailsBeforeWriting(t *testing.T) {
	doc := "version: 1\npackage: x\nkinds:\n  - name: IoError\n    message_id: E1\n    code: 500\n    description: d\n" +
		"variants:\n  - name: NotFoundError\n    kind: GhostError\n"
	path := writeManifest(t, doc)

	_, err := captureCombinedOutput(createRootCmd(), "generate", "-f", path)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(path), "x_gen.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestListCmd_RendersTables(t *testing.T) {
	path := writeManifest(t, testManifest)
	output, err := captureCombinedOutput(createRootCmd(), "list", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, output, "IoError")
	assert.Contains(t, output, "Err-00001")
	assert.Contains(t, output, "Server")
	assert.Contains(t, output, "Server::IoError::NotFoundError")
	assert.Contains(t, output, "Client::ValidationError::SchemaViolationError")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	_, err := captureCombinedOutput(createRootCmd(), "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
