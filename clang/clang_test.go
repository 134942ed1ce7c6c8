package clang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ffigen/errors"
)

func TestKindSpellingsRoundTrip(t *testing.T) {
	for k := range cursorKindNames {
		assert.Equal(t, k, ParseCursorKind(k.String()), "cursor kind %s", k)
	}
	for k := range typeKindNames {
		assert.Equal(t, k, ParseTypeKind(k.String()), "type kind %s", k)
	}
	for k := range commentKindNames {
		assert.Equal(t, k, ParseCommentKind(k.String()), "comment kind %s", k)
	}
	for k := range renderKindNames {
		got, ok := ParseInlineRenderKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestUnknownSpellings(t *testing.T) {
	assert.Equal(t, CursorOther, ParseCursorKind("ObjCInterfaceDecl"))
	assert.Equal(t, TypeOther, ParseTypeKind("BlockPointer"))
	assert.Equal(t, CommentNull, ParseCommentKind("Whatever"))

	_, ok := ParseInlineRenderKind("strikethrough")
	assert.False(t, ok)
	assert.Equal(t, "unknown", InlineRenderKind(42).String())
}

func TestLibclangSpellings(t *testing.T) {
	assert.Equal(t, "StructDecl", CursorStructDecl.String())
	assert.Equal(t, "Char_S", TypeCharS.String())
	assert.Equal(t, "UChar", TypeUChar.String())
	assert.Equal(t, "LongDouble", TypeLongDouble.String())
}

func TestCheckDiagnostics(t *testing.T) {
	t.Run("warnings only", func(t *testing.T) {
		diags := []Diagnostic{
			{Severity: SeverityWarning, Message: "unused macro"},
			{Severity: SeverityNote, Message: "declared here"},
		}
		assert.NoError(t, CheckDiagnostics("a.h", diags))
	})

	t.Run("errors", func(t *testing.T) {
		diags := []Diagnostic{
			{Severity: SeverityWarning, Message: "unused macro"},
			{Severity: SeverityError, Message: "'stdint.h' file not found"},
			{Severity: SeverityFatal, Message: "too many errors"},
		}
		err := CheckDiagnostics("a.h", diags)
		require.Error(t, err)
		assert.True(t, errors.IsProviderError(err))
		assert.Contains(t, err.Error(), "a.h")
		assert.Contains(t, err.Error(), "2 error diagnostic(s)")

		details := errors.GetAllDetails(err)
		assert.Contains(t, details, "error: 'stdint.h' file not found")
		assert.Contains(t, details, "fatal: too many errors")
		assert.NotEmpty(t, errors.GetAllHints(err))
	})
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, ParseSeverity("Error"))
	assert.Equal(t, SeverityFatal, ParseSeverity("fatal"))
	assert.Equal(t, SeverityIgnored, ParseSeverity("bogus"))
}
