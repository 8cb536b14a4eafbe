package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/cmd/figgen/commands"
)

const sampleTree = `{
	"name": "Landing",
	"nodes": [
		{
			"id": "1:1",
			"name": "Primary Button",
			"type": "FRAME",
			"children": [
				{"id": "1:2", "name": "Label", "type": "TEXT", "text": "Save"}
			]
		},
		{"id": "2:1", "name": "Status Badge", "type": "FRAME"}
	]
}`

func writeTree(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleTree), 0o600))

	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := commands.NewGenerateCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand_LocalInput(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runCommand(t, "--input", writeTree(t))
	require.NoError(t, err)

	assert.Contains(t, stdout, "btn btn-primary")
	assert.Contains(t, stdout, `<span class="btn-label">Save</span>`)
	assert.Contains(t, stdout, "figgen_root")
	assert.Contains(t, stdout, "<style>")
	assert.Contains(t, stdout, "Suggested imports:")

	assert.Contains(t, stderr, "Components used:")
	assert.Contains(t, stderr, "Button")
	assert.Contains(t, stderr, "Badge")
}

func TestGenerateCommand_OutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "markup.html")

	stdout, _, err := runCommand(t, "--input", writeTree(t), "--output", out, "--no-summary")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "btn btn-primary")
}

func TestGenerateCommand_OptionFlags(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCommand(t,
		"--input", writeTree(t),
		"--no-styles", "--no-debug-comments", "--no-imports", "--no-wrap", "--raw-ids",
		"--no-summary",
	)
	require.NoError(t, err)

	assert.NotContains(t, stdout, "<style>")
	assert.NotContains(t, stdout, "<!--")
	assert.NotContains(t, stdout, "figgen_root")
	assert.Contains(t, stdout, `id="1:1"`)
}

func TestGenerateCommand_InputErrors(t *testing.T) {
	t.Parallel()

	_, _, err := runCommand(t)
	assert.ErrorIs(t, err, commands.ErrNoInput)

	_, _, err = runCommand(t, "--input", "x.json", "--file", "abc123")
	assert.ErrorIs(t, err, commands.ErrBothInputs)

	_, _, err = runCommand(t, "--input", filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestGenerateCommand_InvalidTree(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "x"}`), 0o600))

	_, _, err := runCommand(t, "--input", path)
	assert.Error(t, err)
}
