package helptable

import "strings"

const (
	// DefaultTabWidth is the number of spaces a tab expands to.
	DefaultTabWidth = 8

	// DefaultWrapIndent is the indentation (two tab stops) that marks a
	// wrapped continuation of the previous line.
	DefaultWrapIndent = 2 * DefaultTabWidth

	// columnGap separates a flag signature from its description.
	columnGap = "  "
)

// Entry is one flag from a help listing.
type Entry struct {
	// Signature is the flag token, e.g. "-f, --flag" or "--v Level".
	Signature string

	// Description is the help text that follows the signature.
	Description string
}

// Preprocess normalizes CRLF line endings, expands every tab to tabWidth
// spaces and joins wrapped lines. A newline followed by wrapIndent spaces is
// replaced with a single space, across the whole text.
func Preprocess(text string, tabWidth, wrapIndent int) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	if wrapIndent <= 0 {
		return text
	}
	return strings.ReplaceAll(text, "\n"+strings.Repeat(" ", wrapIndent), " ")
}

// MatchLine reports whether line is a flag entry and returns it.
//
// A flag entry is optional leading whitespace, a token starting with '-',
// a gap of two or more spaces and a non-empty description. The first gap
// ends the token, so single spaces inside a signature ("--v Level") are
// kept.
func MatchLine(line string) (Entry, bool) {
	rest := strings.TrimLeft(strings.TrimRight(line, "\r"), " \t")
	if !strings.HasPrefix(rest, "-") {
		return Entry{}, false
	}

	gap := strings.Index(rest, columnGap)
	if gap < 0 {
		return Entry{}, false
	}

	description := strings.TrimSpace(rest[gap:])
	if description == "" {
		return Entry{}, false
	}

	return Entry{Signature: rest[:gap], Description: description}, true
}

// Parse extracts flag entries from raw help text in input order.
func Parse(text string) []Entry {
	text = Preprocess(text, DefaultTabWidth, DefaultWrapIndent)

	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		if entry, ok := MatchLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// CodeSpans wraps a signature in inline code, giving each comma-separated
// alias its own span: "-f, --flag" becomes "`-f`, `--flag`".
func CodeSpans(signature string) string {
	return "`" + strings.ReplaceAll(signature, ", ", "`, `") + "`"
}
