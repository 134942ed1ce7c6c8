package snapshot

import (
	"github.com/teranos/ffigen/clang"
)

// maxTypeDepth bounds pointer chains while capturing type descriptors
const maxTypeDepth = 32

// CaptureOptions controls what FromCursor records
type CaptureOptions struct {
	// MainFileOnly drops top-level declarations that come from included files
	MainFileOnly bool
}

// Capture records a whole translation unit as a snapshot File
func Capture(header string, args []string, tu clang.TranslationUnit, opts CaptureOptions) *File {
	f := &File{
		Version: FormatVersion,
		Header:  header,
		Args:    args,
		Root:    FromCursor(tu.Cursor(), opts),
	}
	for _, d := range tu.Diagnostics() {
		f.Diagnostics = append(f.Diagnostics, Diagnostic{
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}
	return f
}

// FromCursor copies a provider cursor and its whole subtree
func FromCursor(c clang.Cursor, opts CaptureOptions) *Cursor {
	root := fromCursor(c)
	c.Visit(func(child clang.Cursor) clang.VisitResult {
		if opts.MainFileOnly && !child.IsFromMainFile() {
			return clang.Continue
		}
		root.Nodes = append(root.Nodes, fromSubtree(child))
		return clang.Continue
	})
	return root
}

func fromSubtree(c clang.Cursor) *Cursor {
	node := fromCursor(c)
	c.Visit(func(child clang.Cursor) clang.VisitResult {
		node.Nodes = append(node.Nodes, fromSubtree(child))
		return clang.Continue
	})
	return node
}

func fromCursor(c clang.Cursor) *Cursor {
	node := &Cursor{
		KindName: c.KindSpelling(),
		Name:     c.Spelling(),
		Forward:  !c.IsDefinition(),
		External: !c.IsFromMainFile(),
	}
	if display := c.DisplayName(); display != c.Spelling() {
		node.Display = display
	}

	switch c.Kind() {
	case clang.CursorTranslationUnit:
		// The root has no type, comment or definition state worth recording
		node.Forward = false
		node.External = false
		return node
	case clang.CursorFieldDecl:
		node.Offset = c.OffsetOfField()
	case clang.CursorEnumDecl:
		if t := c.EnumIntegerType(); t != nil && t.Kind() != clang.TypeInvalid {
			node.IntegerType = FromType(t)
		}
	case clang.CursorEnumConstantDecl:
		signed, unsigned := c.EnumConstantValue()
		node.Value = &EnumValue{Signed: signed, Unsigned: unsigned}
	}

	if t := c.Type(); t != nil && t.Kind() != clang.TypeInvalid {
		node.TypeInfo = FromType(t)
	}
	if doc := c.ParsedComment(); doc != nil && doc.Kind() != clang.CommentNull {
		node.Doc = FromComment(doc)
	}
	return node
}

// FromType copies a type descriptor, following pointees
func FromType(t clang.Type) *Type {
	return fromType(t, 0)
}

func fromType(t clang.Type, depth int) *Type {
	out := &Type{
		KindName: t.KindSpelling(),
		Name:     t.Spelling(),
		Size:     t.SizeOf(),
	}
	switch t.Kind() {
	case clang.TypePointer:
		if depth < maxTypeDepth {
			out.Pointee = fromType(t.PointeeType(), depth+1)
		}
	case clang.TypeTypedef:
		out.Typedef = t.TypedefName()
	}
	return out
}

// FromComment copies a parsed comment tree
func FromComment(c clang.Comment) *Comment {
	out := &Comment{KindName: c.Kind().String()}
	switch c.Kind() {
	case clang.CommentText:
		out.Content = c.Text()
	case clang.CommentInlineCommand:
		out.Render = c.RenderKind().String()
		for i := 0; i < c.NumArgs(); i++ {
			out.Args = append(out.Args, c.ArgText(i))
		}
	}
	c.Visit(func(child clang.Comment) clang.VisitResult {
		out.Nodes = append(out.Nodes, FromComment(child))
		return clang.Continue
	})
	return out
}
