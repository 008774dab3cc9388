package helptable

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed table.md.tmpl
var defaultTemplate string

// Formatter renders flag entries as a Markdown table.
type Formatter struct {
	tmpl *template.Template
}

// Option configures a Formatter.
type Option func(*formatterOptions)

type formatterOptions struct {
	template string
}

// WithTemplate replaces the built-in table template. The template receives
// a value with an Entries field and has the sprig functions plus codeSpans.
func WithTemplate(text string) Option {
	return func(o *formatterOptions) {
		o.template = text
	}
}

// NewFormatter parses the table template.
func NewFormatter(opts ...Option) (*Formatter, error) {
	o := formatterOptions{template: defaultTemplate}
	for _, opt := range opts {
		opt(&o)
	}

	tmpl, err := template.New("table").
		Funcs(sprig.TxtFuncMap()).
		Funcs(tableFuncs()).
		Parse(o.template)
	if err != nil {
		return nil, fmt.Errorf("parse table template: %w", err)
	}

	return &Formatter{tmpl: tmpl}, nil
}

// Format parses help text and writes the table to w. The header is always
// written, even when no entries match.
func (f *Formatter) Format(w io.Writer, text string) error {
	return f.Render(w, Parse(text))
}

// Render writes the table for entries to w.
func (f *Formatter) Render(w io.Writer, entries []Entry) error {
	data := struct {
		Entries []Entry
	}{Entries: entries}

	if err := f.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func tableFuncs() template.FuncMap {
	return template.FuncMap{
		"codeSpans": CodeSpans,
	}
}
