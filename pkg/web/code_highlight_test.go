package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changesci/changes-web/pkg/models"
)

func TestCodeHighlight(t *testing.T) {
	out, err := CodeHighlight(`{"slug": "foo"}`, "json")
	require.NoError(t, err)

	assert.Contains(t, out, `<pre class="code" tabindex="0">`)
	assert.Contains(t, out, "slug")
	assert.Contains(t, out, "</pre>")
}

func TestCodeHighlightUnknownLexer(t *testing.T) {
	out, err := CodeHighlight("plain text", "no-such-lexer")
	require.NoError(t, err)

	assert.Contains(t, out, "plain text")
}

func TestHighlightJSONEscapes(t *testing.T) {
	out, err := HighlightJSON(&models.ProjectSummary{Slug: "foo", Name: "<script>"})
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "foo")
}
