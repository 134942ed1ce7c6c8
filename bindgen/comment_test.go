package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/errors"
)

func full(children ...*snapshot.Comment) *snapshot.Comment {
	return &snapshot.Comment{KindName: "FullComment", Nodes: children}
}

func paragraph(children ...*snapshot.Comment) *snapshot.Comment {
	return &snapshot.Comment{KindName: "Paragraph", Nodes: children}
}

func text(s string) *snapshot.Comment {
	return &snapshot.Comment{KindName: "Text", Content: s}
}

func inline(render string, args ...string) *snapshot.Comment {
	return &snapshot.Comment{KindName: "InlineCommand", Render: render, Args: args}
}

func TestRenderNullIsAbsent(t *testing.T) {
	r := NewCommentRenderer(nil)

	doc, ok, err := r.Render(&snapshot.Comment{KindName: "Null"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, doc)

	_, ok, err = r.Render(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRenderTextLinesVerbatim(t *testing.T) {
	doc, ok, err := NewCommentRenderer(nil).Render(full(text("first line"), text("second *line*")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/**\n * first line\n * second *line*\n */", doc)
}

func TestRenderParagraphs(t *testing.T) {
	doc, ok, err := NewCommentRenderer(nil).Render(full(
		paragraph(text(" A character string.")),
		paragraph(text(" The "), inline("monospaced", "CXString"), text(" type.")),
	))
	require.NoError(t, err)
	require.True(t, ok)

	// The separator after the last paragraph is stripped
	assert.Equal(t, "/**\n * A character string.\n *\n * The `CXString` type.\n */", doc)
}

func TestRenderInlineStyles(t *testing.T) {
	tests := []struct {
		name   string
		render string
		args   []string
		want   string
	}{
		{name: "normal", render: "normal", args: []string{"foo"}, want: "foo"},
		{name: "default is normal", render: "", args: []string{"foo"}, want: "foo"},
		{name: "bold", render: "bold", args: []string{"foo"}, want: "**foo**"},
		{name: "monospaced", render: "monospaced", args: []string{"foo"}, want: "`foo`"},
		{name: "emphasized", render: "emphasized", args: []string{"foo"}, want: "*foo*"},
		{name: "anchor renders nothing", render: "anchor", args: []string{"foo"}, want: ""},
		{name: "unknown renders nothing", render: "blink", args: []string{"foo"}, want: ""},
		{name: "arguments in order", render: "bold", args: []string{"a", "b"}, want: "**a****b**"},
		{name: "no arguments", render: "bold", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok, err := NewCommentRenderer(nil).Render(full(paragraph(text(" x "), inline(tt.render, tt.args...))))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "/**\n * x "+tt.want+"\n */", doc)
		})
	}
}

func TestRenderNestedParagraphIsMalformed(t *testing.T) {
	_, ok, err := NewCommentRenderer(nil).Render(full(
		paragraph(text(" fine")),
		paragraph(paragraph(text(" nested"))),
	))
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.IsMalformed(err))
	assert.Contains(t, err.Error(), "nested")
}

func TestRenderTopLevelInlineIsMalformed(t *testing.T) {
	_, _, err := NewCommentRenderer(nil).Render(full(inline("bold", "oops")))
	require.Error(t, err)
	assert.True(t, errors.IsMalformed(err))
}

func TestRenderSkipsUnrecognizedShapes(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewCommentRenderer(zap.New(core).Sugar())

	doc, ok, err := r.Render(full(
		paragraph(text(" Kept.")),
		&snapshot.Comment{KindName: "BlockCommand", Nodes: []*snapshot.Comment{paragraph(text(" dropped"))}},
		text("also kept"),
	))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/**\n * Kept.\n *\n * also kept\n */", doc)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "BlockCommand", entries[0].ContextMap()["kind"])
}

func TestRenderEmptyFullComment(t *testing.T) {
	doc, ok, err := NewCommentRenderer(nil).Render(full())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/**\n */", doc)
}
