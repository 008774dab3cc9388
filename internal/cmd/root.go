// Package cmd provides the CLI commands for pipetools.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/pipetools/internal/logging"
	"github.com/cameronsjo/pipetools/internal/manifest"
	"github.com/cameronsjo/pipetools/internal/ui"
)

const version = "0.1.0"

// commonOptions holds the flags shared by every command.
type commonOptions struct {
	logLevel string
	output   string
}

// bindCommonFlags registers --log-level and --output on cmd.
func bindCommonFlags(cmd *cobra.Command, o *commonOptions) {
	cmd.Flags().StringVar(&o.logLevel, "log-level", logging.LevelFromEnv(), "Log level (debug, info, warn, error); env "+logging.EnvLogLevel)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write to file instead of stdout (written atomically)")
}

// newRootCommand applies the settings shared by both binaries.
func newRootCommand(cmd *cobra.Command) *cobra.Command {
	cmd.Version = version
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetVersionTemplate(cmd.Name() + " version {{.Version}}\n")
	return cmd
}

// ExecuteHelpTable runs the helptable command. This is called by main.main().
func ExecuteHelpTable() {
	execute(NewHelpTableCmd())
}

// ExecuteAddNamespace runs the add-namespace command. This is called by main.main().
func ExecuteAddNamespace() {
	execute(NewAddNamespaceCmd())
}

func execute(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ui.Error("%v", err)
		if errors.Is(err, manifest.ErrMissingNamespace) {
			ui.Hint("Usage: %s", cmd.UseLine())
		}
		os.Exit(1)
	}
}
