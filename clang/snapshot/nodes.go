package snapshot

import (
	"github.com/teranos/ffigen/clang"
)

var (
	_ clang.Cursor  = (*Cursor)(nil)
	_ clang.Type    = (*Type)(nil)
	_ clang.Comment = (*Comment)(nil)
)

// Cursor is a recorded declaration node. It implements clang.Cursor.
type Cursor struct {
	KindName string   `yaml:"kind"`
	Name     string   `yaml:"name,omitempty"`
	Display  string   `yaml:"display,omitempty"`
	TypeInfo *Type    `yaml:"type,omitempty"`
	Doc      *Comment `yaml:"comment,omitempty"`
	Offset   int64    `yaml:"offset,omitempty"` // bits, field declarations only
	Forward  bool     `yaml:"forward,omitempty"`
	External bool     `yaml:"external,omitempty"` // declared in an included file
	// IntegerType is recorded for enum declarations only
	IntegerType *Type `yaml:"integer_type,omitempty"`
	// Value is recorded for enum constants only
	Value *EnumValue `yaml:"value,omitempty"`
	Nodes []*Cursor  `yaml:"children,omitempty"`
}

// EnumValue is an enum constant's value in both signed and unsigned reading
type EnumValue struct {
	Signed   int64  `yaml:"signed"`
	Unsigned uint64 `yaml:"unsigned"`
}

func (c *Cursor) Kind() clang.CursorKind { return clang.ParseCursorKind(c.KindName) }
func (c *Cursor) KindSpelling() string   { return c.KindName }
func (c *Cursor) Spelling() string       { return c.Name }

func (c *Cursor) DisplayName() string {
	if c.Display != "" {
		return c.Display
	}
	return c.Name
}

func (c *Cursor) Type() clang.Type {
	if c.TypeInfo == nil {
		return invalidType
	}
	return c.TypeInfo
}

func (c *Cursor) ParsedComment() clang.Comment {
	if c.Doc == nil {
		return nullComment
	}
	return c.Doc
}

func (c *Cursor) OffsetOfField() int64 { return c.Offset }
func (c *Cursor) IsDefinition() bool   { return !c.Forward }
func (c *Cursor) IsFromMainFile() bool { return !c.External }

func (c *Cursor) EnumIntegerType() clang.Type {
	if c.IntegerType == nil {
		return invalidType
	}
	return c.IntegerType
}

func (c *Cursor) EnumConstantValue() (int64, uint64) {
	if c.Value == nil {
		return 0, 0
	}
	return c.Value.Signed, c.Value.Unsigned
}

// Visit walks children depth-first, honoring the visitor's instruction
func (c *Cursor) Visit(visitor clang.Visitor[clang.Cursor]) {
	visitCursors(c.Nodes, visitor)
}

func visitCursors(nodes []*Cursor, visitor clang.Visitor[clang.Cursor]) bool {
	for _, n := range nodes {
		switch visitor(n) {
		case clang.Break:
			return false
		case clang.Recurse:
			if !visitCursors(n.Nodes, visitor) {
				return false
			}
		}
	}
	return true
}

// Type is a recorded type descriptor. It implements clang.Type.
type Type struct {
	KindName string `yaml:"kind"`
	Name     string `yaml:"spelling,omitempty"`
	Size     int64  `yaml:"size,omitempty"`
	Pointee  *Type  `yaml:"pointee,omitempty"`
	Typedef  string `yaml:"typedef,omitempty"`
}

var invalidType = &Type{KindName: clang.TypeInvalid.String(), Size: -1}

func (t *Type) Kind() clang.TypeKind { return clang.ParseTypeKind(t.KindName) }
func (t *Type) KindSpelling() string { return t.KindName }
func (t *Type) Spelling() string     { return t.Name }
func (t *Type) SizeOf() int64        { return t.Size }
func (t *Type) TypedefName() string  { return t.Typedef }

func (t *Type) PointeeType() clang.Type {
	if t.Pointee == nil {
		return invalidType
	}
	return t.Pointee
}

// Comment is a recorded documentation comment node. It implements clang.Comment.
type Comment struct {
	KindName string     `yaml:"kind"`
	Content  string     `yaml:"text,omitempty"`
	Render   string     `yaml:"render,omitempty"`
	Args     []string   `yaml:"args,omitempty"`
	Nodes    []*Comment `yaml:"children,omitempty"`
}

var nullComment = &Comment{KindName: clang.CommentNull.String()}

func (c *Comment) Kind() clang.CommentKind { return clang.ParseCommentKind(c.KindName) }
func (c *Comment) Text() string            { return c.Content }
func (c *Comment) NumArgs() int            { return len(c.Args) }

// RenderKind returns the recorded render kind. Unknown names report an
// out-of-range kind so renderers treat them as unrecognized.
func (c *Comment) RenderKind() clang.InlineRenderKind {
	if c.Render == "" {
		return clang.RenderNormal
	}
	if k, ok := clang.ParseInlineRenderKind(c.Render); ok {
		return k
	}
	return clang.InlineRenderKind(-1)
}

func (c *Comment) ArgText(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

func (c *Comment) Visit(visitor clang.Visitor[clang.Comment]) {
	visitComments(c.Nodes, visitor)
}

func visitComments(nodes []*Comment, visitor clang.Visitor[clang.Comment]) bool {
	for _, n := range nodes {
		switch visitor(n) {
		case clang.Break:
			return false
		case clang.Recurse:
			if !visitComments(n.Nodes, visitor) {
				return false
			}
		}
	}
	return true
}
