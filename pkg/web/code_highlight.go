package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
)

type codePreWrapper struct{}

func (codePreWrapper) Start(code bool, _ string) string {
	if code {
		return `<pre class="code" tabindex="0">`
	}
	return "<pre>"
}

func (codePreWrapper) End(_ bool) string {
	return "</pre>"
}

// CodeHighlight returns code as highlighted HTML using the named lexer
func CodeHighlight(code string, lexer string) (string, error) {
	l := lexers.Get(lexer)
	if l == nil {
		l = lexers.Fallback
	}
	formatter := html.New(
		html.WrapLongLines(true),
		html.TabWidth(2),
		html.WithPreWrapper(codePreWrapper{}),
	)

	iterator, err := l.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get("github"), iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HighlightJSON renders v as indented, highlighted JSON
func HighlightJSON(v any) (template.HTML, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	highlighted, err := CodeHighlight(string(b), "json")
	if err != nil {
		return "", fmt.Errorf("failed to highlight json: %w", err)
	}
	return template.HTML(highlighted), nil //nolint:gosec // chroma escapes the tokens
}
