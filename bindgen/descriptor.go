// Package bindgen turns a parsed C header into Deno FFI struct declarations.
//
// # Architecture
//
// Generation is one linear pass per header:
//  1. Collect buckets the translation unit's top-level declarations
//  2. Extractor reads each struct definition into a StructDescriptor,
//     using Resolver for field types and CommentRenderer for documentation
//  3. Emitter formats each descriptor as a textual block
//  4. Pipeline concatenates the blocks of every header into one artifact
//
// Nothing is shared between runs. Descriptors only hold strings and integers,
// so they stay valid after the provider's translation unit is disposed.
//
// # Failure model
//
// Shape problems (nested paragraphs, non-field struct members, empty names,
// bit-field offsets, unsupported type kinds) fail the current struct only.
// The pipeline records them in Result.Failures and moves on to the next
// declaration. Provider failures abort the run.
package bindgen

// FieldDescriptor is one struct member
type FieldDescriptor struct {
	Name string
	// Type is the resolved target token, e.g. "uint" or "ptr(CXString)"
	Type string
	// Offset is in whole bytes
	Offset int64
	// Doc is a rendered documentation block; empty when the field has none
	Doc string
}

// StructDescriptor is one struct definition with its layout
type StructDescriptor struct {
	Name   string
	Size   int64
	Fields []FieldDescriptor
	Doc    string
}

// HasDoc reports whether the struct carries documentation
func (s *StructDescriptor) HasDoc() bool {
	return s.Doc != ""
}
