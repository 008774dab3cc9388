package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cameronsjo/pipetools/internal/ui"
)

// executeCmd runs cmd with stdin and args and returns stdout and stderr.
// Commands are built fresh per test so flag state never leaks.
func executeCmd(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// Set args to a non-nil slice so os.Args is never used
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// captureUI redirects ui messages to a buffer with colors disabled for the
// rest of the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()

	oldNoColor := color.NoColor
	oldOutput := ui.Output
	t.Cleanup(func() {
		color.NoColor = oldNoColor
		ui.Output = oldOutput
	})

	color.NoColor = true
	var buf bytes.Buffer
	ui.Output = &buf
	return &buf
}
