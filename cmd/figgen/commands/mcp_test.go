package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/cmd/figgen/commands"
)

func TestMCPCommand_Exists(t *testing.T) {
	t.Parallel()

	cmd := commands.NewMCPCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mcp", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestMCPCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := commands.NewMCPCommand()

	debug := cmd.Flags().Lookup("debug")
	require.NotNil(t, debug)
	assert.Equal(t, "false", debug.DefValue)

	config := cmd.Flags().Lookup("config")
	require.NotNil(t, config)
	assert.Empty(t, config.DefValue)
}
