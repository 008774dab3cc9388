package helptable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const tableHeader = "| Argument | Description |\n|----------|-------------|\n"

func format(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	f, err := NewFormatter(opts...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, input))
	return buf.String()
}

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "alias code spans",
			input: "  -f, --flag  Does something.\n",
			want:  tableHeader + "| `-f`, `--flag` | Does something. |\n",
		},
		{
			name:  "rows keep input order",
			input: "-a, --alpha  desc1\n-b  desc2\n",
			want:  tableHeader + "| `-a`, `--alpha` | desc1 |\n| `-b` | desc2 |\n",
		},
		{
			name:  "section header yields no rows",
			input: "Flags:\n",
			want:  tableHeader,
		},
		{
			name:  "empty input yields header only",
			input: "",
			want:  tableHeader,
		},
		{
			name: "wrapped pflag output",
			input: "Usage of ingress:\n" +
				"      --annotations-prefix string   Prefix of the Ingress annotations specific to the NGINX\n" +
				"                controller. (default \"nginx.ingress.kubernetes.io\")\n",
			want: tableHeader +
				"| `--annotations-prefix string` | Prefix of the Ingress annotations specific to the NGINX controller. (default \"nginx.ingress.kubernetes.io\") |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format(t, tt.input))
		})
	}
}

func TestFormatter_OutputIsMarkdownTable(t *testing.T) {
	input := "Flags:\n" +
		"  -h, --help          help for ingress\n" +
		"      --v Level       log level verbosity\n" +
		"      --watch-namespace string\tNamespace to watch\n"

	out := format(t, input)

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	source := []byte(out)
	doc := md.Parser().Parse(text.NewReader(source))

	var tables, rows, codeSpans int
	require.NoError(t, ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTable:
			tables++
		case east.KindTableRow:
			rows++
		case ast.KindCodeSpan:
			codeSpans++
		}
		return ast.WalkContinue, nil
	}))

	assert.Equal(t, 1, tables)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, codeSpans)
}

func TestFormatter_CustomTemplate(t *testing.T) {
	tmpl := "{{ range .Entries }}{{ .Signature | upper }}={{ .Description | trunc 5 }};{{ end }}"

	out := format(t, "-a, --alpha  description\n-b  bee\n", WithTemplate(tmpl))

	assert.Equal(t, "-A, --ALPHA=descr;-B=bee;", out)
}

func TestFormatter_CustomTemplateHasCodeSpans(t *testing.T) {
	out := format(t, "-a, --alpha  x\n", WithTemplate("{{ range .Entries }}{{ codeSpans .Signature }}{{ end }}"))
	assert.Equal(t, "`-a`, `--alpha`", out)
}

func TestNewFormatter_InvalidTemplate(t *testing.T) {
	_, err := NewFormatter(WithTemplate("{{ range .Entries }"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse table template")
}

func TestFormatter_RenderError(t *testing.T) {
	f, err := NewFormatter(WithTemplate("{{ .Missing.Field }}"))
	require.NoError(t, err)

	err = f.Render(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render table")
}
