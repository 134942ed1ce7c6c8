// Package clang defines the AST provider contract the generator consumes.
//
// The generator never talks to libclang directly. It walks Cursor, Type and
// Comment values handed out by a Parser; clang/libclang adapts the real
// library and clang/snapshot serves recorded trees from YAML.
//
// Handles are only valid until the owning TranslationUnit is disposed.
package clang

import "context"

// VisitResult is the per-node instruction returned by a Visitor
type VisitResult int

const (
	// Break stops the traversal entirely
	Break VisitResult = iota
	// Continue moves on to the next sibling without visiting children
	Continue
	// Recurse descends into the node's children before the next sibling
	Recurse
)

func (r VisitResult) String() string {
	switch r {
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Recurse:
		return "recurse"
	default:
		return "unknown"
	}
}

// Visitor is called once per visited node
type Visitor[T any] func(node T) VisitResult

// Visitable is any provider node with depth-first child visitation
type Visitable[T any] interface {
	Visit(visitor Visitor[T])
}

// VisitChildren walks node's children with visitor
func VisitChildren[T any](node Visitable[T], visitor Visitor[T]) {
	node.Visit(visitor)
}

// Children returns node's direct children in order
func Children[T any](node Visitable[T]) []T {
	var out []T
	node.Visit(func(child T) VisitResult {
		out = append(out, child)
		return Continue
	})
	return out
}

// Cursor identifies one declaration node in a parsed translation unit
type Cursor interface {
	Kind() CursorKind
	// KindSpelling is the provider's raw kind name, kept for diagnostics
	KindSpelling() string
	Spelling() string
	DisplayName() string
	Type() Type
	ParsedComment() Comment
	// OffsetOfField returns the field's offset in bits. Only meaningful for
	// field declarations; negative values are provider layout errors.
	OffsetOfField() int64
	IsDefinition() bool
	IsFromMainFile() bool
	// EnumIntegerType is the underlying integer type of an enum declaration
	EnumIntegerType() Type
	// EnumConstantValue returns an enum constant's value read as signed and
	// as unsigned
	EnumConstantValue() (int64, uint64)
	Visit(visitor Visitor[Cursor])
}

// Type describes a native type's shape, kind and size
type Type interface {
	Kind() TypeKind
	KindSpelling() string
	Spelling() string
	// SizeOf returns the size in bytes; negative values are layout errors
	SizeOf() int64
	// PointeeType is only meaningful for pointers
	PointeeType() Type
	// TypedefName is only meaningful for typedefs
	TypedefName() string
}

// Comment is one node of a parsed documentation comment
type Comment interface {
	Kind() CommentKind
	// Text is the content of a Text node
	Text() string
	RenderKind() InlineRenderKind
	NumArgs() int
	ArgText(i int) string
	Visit(visitor Visitor[Comment])
}

// TranslationUnit is one parsed header
type TranslationUnit interface {
	Cursor() Cursor
	Diagnostics() []Diagnostic
	Dispose()
}

// Parser turns a header into a TranslationUnit.
// Implementations must surface error diagnostics as an error rather than
// return a degenerate tree.
type Parser interface {
	Parse(ctx context.Context, header string, args []string) (TranslationUnit, error)
	Close() error
}
