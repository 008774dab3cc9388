// Package helptable turns the --help output of a command-line program into a
// Markdown table suitable for documentation pages.
//
// The conversion runs in three steps:
//
//   - Preprocess expands tabs and joins wrapped continuation lines
//   - MatchLine picks out flag entries ("-f, --flag  Description")
//   - a Formatter renders the entries through a text/template
//
// Lines that do not look like flag entries are skipped, so headers, usage
// banners and blank lines never produce rows:
//
//	Usage of ingress-controller:
//	  -h, --help          help for ingress-controller
//	      --v Level       number for the log level verbosity
//
// renders as
//
//	| Argument | Description |
//	|----------|-------------|
//	| `-h`, `--help` | help for ingress-controller |
//	| `--v Level` | number for the log level verbosity |
package helptable
