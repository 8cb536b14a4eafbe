package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/cmd/figgen/commands"
	"github.com/uistudio/figgen/internal/classify"
)

func runComponents(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer

	cmd := commands.NewComponentsCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestComponentsCommand_Table(t *testing.T) {
	t.Parallel()

	out, err := runComponents(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Button")
	assert.Contains(t, out, "BreadCrumb")
	assert.Contains(t, out, "@uistudio/components")
}

func TestComponentsCommand_JSON(t *testing.T) {
	t.Parallel()

	out, err := runComponents(t, "--format", "json")
	require.NoError(t, err)

	var rows []struct {
		Kind   string `json:"kind"`
		Import string `json:"import"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(classify.AllKinds))
	assert.Equal(t, "Button", rows[0].Kind)
	assert.Equal(t, `import { Button } from "@uistudio/components";`, rows[0].Import)
}

func TestComponentsCommand_YAML(t *testing.T) {
	t.Parallel()

	out, err := runComponents(t, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "kind: Button")
	assert.Contains(t, out, "import:")
}

func TestComponentsCommand_BadFormat(t *testing.T) {
	t.Parallel()

	_, err := runComponents(t, "--format", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBadFormat)
}
