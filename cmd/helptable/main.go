// Command helptable converts a program's --help output into a Markdown table.
package main

import "github.com/cameronsjo/pipetools/internal/cmd"

func main() {
	cmd.ExecuteHelpTable()
}
