package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cameronsjo/pipetools/internal/helptable"
)

type helpTableOptions struct {
	commonOptions
	template string
}

// NewHelpTableCmd creates the helptable command.
func NewHelpTableCmd() *cobra.Command {
	o := &helpTableOptions{}

	cmd := &cobra.Command{
		Use:   "helptable",
		Short: "Convert --help output into a Markdown table",
		Long: `Convert a program's --help output into a Markdown table.

Help text is read from stdin. Tabs expand to 8 spaces and lines indented by
16 spaces are joined onto the previous line, then every line of the form

  -f, --flag  Description

becomes a table row. Aliases get their own code span. Other lines are
ignored, so the header is printed even when nothing matches.

Templates receive {{ .Entries }} (Signature, Description) and have all
sprig functions plus codeSpans.

Examples:
  # Document a binary's flags
  ingress-controller --help | helptable > docs/flags.md

  # Write the table atomically
  ingress-controller --help 2>&1 | helptable -o docs/flags.md

  # Use a custom layout
  ingress-controller --help | helptable --template flags.md.tmpl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHelpTable(cmd, o)
		},
	}

	bindCommonFlags(cmd, &o.commonOptions)
	cmd.Flags().StringVar(&o.template, "template", "", "Go template file for the table (sprig functions available)")

	return newRootCommand(cmd)
}

func runHelpTable(cmd *cobra.Command, o *helpTableOptions) error {
	logger, err := newLogger(cmd, o.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var opts []helptable.Option
	if o.template != "" {
		tmpl, err := os.ReadFile(o.template)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		opts = append(opts, helptable.WithTemplate(string(tmpl)))
	}

	formatter, err := helptable.NewFormatter(opts...)
	if err != nil {
		return err
	}

	input, err := readInput(cmd)
	if err != nil {
		return err
	}

	entries := helptable.Parse(string(input))
	logger.Debug("parsed help text",
		zap.Int("bytes", len(input)),
		zap.Int("entries", len(entries)),
	)

	var buf bytes.Buffer
	if err := formatter.Render(&buf, entries); err != nil {
		return err
	}

	return writeOutput(cmd, o.output, buf.Bytes())
}
