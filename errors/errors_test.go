package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "rebuild with -tags libclang")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "rebuild with -tags libclang", hints[0])
}

func TestWithDetailf(t *testing.T) {
	err := WithDetailf(New("error"), "struct %s, node %s", "CXString", "FieldDecl")

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, "struct CXString, node FieldDecl", details[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestSentinelClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		malformed   bool
		unsupported bool
		declaration bool
		provider    bool
	}{
		{
			name:        "malformed",
			err:         NewMalformedError("struct %s: nested paragraph", "Foo"),
			malformed:   true,
			declaration: true,
		},
		{
			name:        "unsupported type",
			err:         NewUnsupportedTypeError("FunctionProto"),
			unsupported: true,
			declaration: true,
		},
		{
			name:     "provider",
			err:      Wrap(ErrProvider, "parse failed"),
			provider: true,
		},
		{
			name:     "provider unavailable",
			err:      WithHint(ErrProviderUnavailable, "hint"),
			provider: true,
		},
		{
			name: "unrelated",
			err:  New("boom"),
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.malformed, IsMalformed(tt.err))
			assert.Equal(t, tt.unsupported, IsUnsupportedType(tt.err))
			assert.Equal(t, tt.declaration, IsDeclarationError(tt.err))
			assert.Equal(t, tt.provider, IsProviderError(tt.err))
		})
	}
}

func TestUnsupportedTypeCarriesSpelling(t *testing.T) {
	err := NewUnsupportedTypeError("ConstantArray")
	assert.Contains(t, err.Error(), "ConstantArray")
	assert.Contains(t, err.Error(), "unsupported type kind")
}

func TestMarkPreservesClass(t *testing.T) {
	err := Mark(New("nested paragraph in comment"), ErrMalformed)
	assert.True(t, IsMalformed(err))
	assert.Equal(t, "nested paragraph in comment", err.Error())
}

func ExampleNewMalformedError() {
	err := NewMalformedError("struct %s has no spelling", "(unnamed)")
	fmt.Println(err)
	// Output: struct (unnamed) has no spelling: malformed declaration
}
