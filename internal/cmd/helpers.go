package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cameronsjo/pipetools/internal/fileutil"
	"github.com/cameronsjo/pipetools/internal/logging"
	"github.com/cameronsjo/pipetools/internal/ui"
)

// newLogger builds the command logger on the command's stderr.
func newLogger(cmd *cobra.Command, level string) (*zap.Logger, error) {
	logger, err := logging.NewLogger(logging.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		Name:   cmd.Name(),
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}

// readInput reads all of the command's stdin. When stdin is an interactive
// terminal a hint is printed first, since both tools wait for EOF.
func readInput(cmd *cobra.Command) ([]byte, error) {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		ui.Hint("Reading from stdin, press Ctrl-D to finish (pipe input for normal use)")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// isTerminal checks if r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeOutput writes data to path, or to the command's stdout if path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	ui.Success("Wrote %s", path)
	return nil
}
