package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/pipetools/internal/logging"
)

func TestRootCommands_Version(t *testing.T) {
	tests := []struct {
		name string
		cmd  func() *cobra.Command
		want string
	}{
		{"helptable", NewHelpTableCmd, "helptable version " + version + "\n"},
		{"add-namespace", NewAddNamespaceCmd, "add-namespace version " + version + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCmd(t, tt.cmd(), "", "--version")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRootCommands_SilenceCobraErrors(t *testing.T) {
	for _, cmd := range []*cobra.Command{NewHelpTableCmd(), NewAddNamespaceCmd()} {
		assert.True(t, cmd.SilenceErrors, cmd.Name())
		assert.True(t, cmd.SilenceUsage, cmd.Name())
	}
}

func TestCommonFlags(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "debug")

	cmd := NewHelpTableCmd()

	level := cmd.Flags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "debug", level.DefValue)

	output := cmd.Flags().ShorthandLookup("o")
	require.NotNil(t, output)
	assert.Equal(t, "output", output.Name)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := executeCmd(t, NewHelpTableCmd(), "", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure logging")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("x")))

	f, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}

func TestWriteOutput_File(t *testing.T) {
	messages := captureUI(t)
	cmd := NewHelpTableCmd()
	path := filepath.Join(t.TempDir(), "out", "table.md")

	require.NoError(t, writeOutput(cmd, path, []byte("data")))
	assert.Contains(t, messages.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}
