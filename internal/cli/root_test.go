package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "minque", cmd.Use)
	assert.Contains(t, cmd.Long, "SQLite")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"check", "select", "first", "count", "tables"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("normalize"))
}

func TestSelectionCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"select", "first", "count"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)

			for _, flag := range []string{"records", "db", "table", "bind"} {
				assert.NotNil(t, sub.Flags().Lookup(flag), "flag --%s", flag)
			}
			assert.Equal(t, "[]", sub.Flags().Lookup("bind").DefValue)
		})
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check", "--format", "yaml", "a == b"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootCommand_ExecuteCheck(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"check", "a == b"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "canonical: a == b\nplaceholders: 0\n", buf.String())
}

func TestRootOptions_Logger(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&RootOptions{}).Logger(buf).Debug("compiled")
		assert.Empty(t, buf.String())
	})

	t.Run("verbose text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&RootOptions{Verbose: true, Format: "text"}).Logger(buf).Debug("compiled", "placeholders", 1)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=compiled")
		assert.Contains(t, buf.String(), "placeholders=1")
	})

	t.Run("verbose json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		(&RootOptions{Verbose: true, Format: "json"}).Logger(buf).Debug("compiled")
		assert.Contains(t, buf.String(), `"msg":"compiled"`)
	})
}
