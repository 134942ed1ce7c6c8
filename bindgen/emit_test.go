package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitWithoutDocs(t *testing.T) {
	s := &StructDescriptor{
		Name: "CXStringSet",
		Size: 16,
		Fields: []FieldDescriptor{
			{Name: "Strings", Type: "ptr(CXString)", Offset: 0},
			{Name: "Count", Type: "uint", Offset: 8},
		},
	}

	want := `export const CXStringSetT = {
  // Byte size: 16
  struct: [
    /** Strings, offset 0 */ ptr(CXString),
    /** Count, offset 8 */ uint,
  ],
} as const;
`
	assert.Equal(t, want, NewEmitter("").Emit(s))
}

func TestEmitWithDocs(t *testing.T) {
	s := &StructDescriptor{
		Name: "struct Point",
		Size: 8,
		Doc:  "/**\n * A point.\n */",
		Fields: []FieldDescriptor{
			{Name: "x", Type: "int", Offset: 0, Doc: "/**\n * Horizontal.\n */"},
			{Name: "y", Type: "int", Offset: 4},
		},
	}

	want := `/**
 * A point.
 */
export const PointStruct = {
  // Byte size: 8
  struct: [
    /**
     * Horizontal.
     */
    /** x, offset 0 */ int,
    /** y, offset 4 */ int,
  ],
} as const;
`
	assert.Equal(t, want, NewEmitter("Struct").Emit(s))
}

func TestEmitEmptyStruct(t *testing.T) {
	got := NewEmitter("T").Emit(&StructDescriptor{Name: "Empty"})
	assert.Equal(t, "export const EmptyT = {\n  // Byte size: 0\n  struct: [\n  ],\n} as const;\n", got)
}

func TestJoinBlocks(t *testing.T) {
	assert.Equal(t, "", JoinBlocks(nil))
	assert.Equal(t, "a;\n", JoinBlocks([]string{"a;\n"}))
	assert.Equal(t, "a;\n\nb;\n", JoinBlocks([]string{"a;\n", "b;\n"}))
}
