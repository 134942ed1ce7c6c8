//go:build libclang

package libclang

import (
	"context"

	goclang "github.com/go-clang/clang-v13/clang"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

// Available reports whether the libclang adapter is compiled in
const Available = true

// Parser parses headers with one shared libclang index
type Parser struct {
	index goclang.Index
}

// New creates a libclang index. Close must be called to release it.
func New(opts Options) (clang.Parser, error) {
	idx := goclang.NewIndex(boolToInt32(opts.ExcludeDeclarationsFromPCH), boolToInt32(opts.DisplayDiagnostics))
	return &Parser{index: idx}, nil
}

// Parse builds a translation unit for header with the given compiler args
func (p *Parser) Parse(ctx context.Context, header string, args []string) (clang.TranslationUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tu := p.index.ParseTranslationUnit(header, args, nil, uint32(goclang.TranslationUnit_SkipFunctionBodies))
	if tu == (goclang.TranslationUnit{}) {
		return nil, errors.WithDetailf(
			errors.Wrapf(errors.ErrProvider, "libclang could not build a translation unit for %s", header),
			"args: %v", args)
	}

	unit := &translationUnit{tu: tu}
	if err := clang.CheckDiagnostics(header, unit.Diagnostics()); err != nil {
		tu.Dispose()
		return nil, err
	}
	return unit, nil
}

// Close releases the libclang index
func (p *Parser) Close() error {
	p.index.Dispose()
	return nil
}

type translationUnit struct {
	tu goclang.TranslationUnit
}

func (u *translationUnit) Cursor() clang.Cursor {
	return cursor{c: u.tu.TranslationUnitCursor()}
}

func (u *translationUnit) Diagnostics() []clang.Diagnostic {
	n := u.tu.NumDiagnostics()
	out := make([]clang.Diagnostic, 0, n)
	for i := uint32(0); i < n; i++ {
		d := u.tu.Diagnostic(i)
		out = append(out, clang.Diagnostic{
			Severity: severity(d.Severity()),
			Message:  d.Spelling(),
		})
		d.Dispose()
	}
	return out
}

func (u *translationUnit) Dispose() {
	u.tu.Dispose()
}

func severity(s goclang.DiagnosticSeverity) clang.Severity {
	switch s {
	case goclang.Diagnostic_Note:
		return clang.SeverityNote
	case goclang.Diagnostic_Warning:
		return clang.SeverityWarning
	case goclang.Diagnostic_Error:
		return clang.SeverityError
	case goclang.Diagnostic_Fatal:
		return clang.SeverityFatal
	default:
		return clang.SeverityIgnored
	}
}

type cursor struct {
	c goclang.Cursor
}

func (c cursor) Kind() clang.CursorKind       { return clang.ParseCursorKind(c.KindSpelling()) }
func (c cursor) KindSpelling() string         { return c.c.Kind().Spelling() }
func (c cursor) Spelling() string             { return c.c.Spelling() }
func (c cursor) DisplayName() string          { return c.c.DisplayName() }
func (c cursor) Type() clang.Type             { return typ{t: c.c.Type()} }
func (c cursor) ParsedComment() clang.Comment { return comment{c: c.c.ParsedComment()} }
func (c cursor) OffsetOfField() int64         { return c.c.OffsetOfField() }
func (c cursor) IsDefinition() bool           { return c.c.IsCursorDefinition() }
func (c cursor) IsFromMainFile() bool         { return c.c.Location().IsFromMainFile() }
func (c cursor) EnumIntegerType() clang.Type  { return typ{t: c.c.EnumDeclIntegerType()} }

func (c cursor) EnumConstantValue() (int64, uint64) {
	return c.c.EnumConstantDeclValue(), c.c.EnumConstantDeclUnsignedValue()
}

func (c cursor) Visit(visitor clang.Visitor[clang.Cursor]) {
	c.c.Visit(func(child, parent goclang.Cursor) goclang.ChildVisitResult {
		switch visitor(cursor{c: child}) {
		case clang.Break:
			return goclang.ChildVisit_Break
		case clang.Recurse:
			return goclang.ChildVisit_Recurse
		default:
			return goclang.ChildVisit_Continue
		}
	})
}

type typ struct {
	t goclang.Type
}

func (t typ) Kind() clang.TypeKind    { return clang.ParseTypeKind(t.KindSpelling()) }
func (t typ) KindSpelling() string    { return t.t.Kind().Spelling() }
func (t typ) Spelling() string        { return t.t.Spelling() }
func (t typ) SizeOf() int64           { return t.t.SizeOf() }
func (t typ) PointeeType() clang.Type { return typ{t: t.t.PointeeType()} }
func (t typ) TypedefName() string     { return t.t.TypedefName() }

type comment struct {
	c goclang.Comment
}

func (c comment) Kind() clang.CommentKind {
	switch c.c.Kind() {
	case goclang.Comment_Text:
		return clang.CommentText
	case goclang.Comment_InlineCommand:
		return clang.CommentInlineCommand
	case goclang.Comment_HTMLStartTag:
		return clang.CommentHTMLStartTag
	case goclang.Comment_HTMLEndTag:
		return clang.CommentHTMLEndTag
	case goclang.Comment_Paragraph:
		return clang.CommentParagraph
	case goclang.Comment_BlockCommand:
		return clang.CommentBlockCommand
	case goclang.Comment_ParamCommand:
		return clang.CommentParamCommand
	case goclang.Comment_TParamCommand:
		return clang.CommentTParamCommand
	case goclang.Comment_VerbatimBlockCommand:
		return clang.CommentVerbatimBlockCommand
	case goclang.Comment_VerbatimBlockLine:
		return clang.CommentVerbatimBlockLine
	case goclang.Comment_VerbatimLine:
		return clang.CommentVerbatimLine
	case goclang.Comment_FullComment:
		return clang.CommentFullComment
	default:
		return clang.CommentNull
	}
}

func (c comment) Text() string { return c.c.TextComment_getText() }

func (c comment) RenderKind() clang.InlineRenderKind {
	switch c.c.InlineCommandComment_getRenderKind() {
	case goclang.CommentInlineCommandRenderKind_Normal:
		return clang.RenderNormal
	case goclang.CommentInlineCommandRenderKind_Bold:
		return clang.RenderBold
	case goclang.CommentInlineCommandRenderKind_Monospaced:
		return clang.RenderMonospaced
	case goclang.CommentInlineCommandRenderKind_Emphasized:
		return clang.RenderEmphasized
	case goclang.CommentInlineCommandRenderKind_Anchor:
		return clang.RenderAnchor
	default:
		return clang.InlineRenderKind(-1)
	}
}

func (c comment) NumArgs() int { return int(c.c.InlineCommandComment_getNumArgs()) }

func (c comment) ArgText(i int) string {
	return c.c.InlineCommandComment_getArgText(uint32(i))
}

// Visit walks comment children by index; libclang has no comment visitor
func (c comment) Visit(visitor clang.Visitor[clang.Comment]) {
	visitComment(c.c, visitor)
}

func visitComment(parent goclang.Comment, visitor clang.Visitor[clang.Comment]) bool {
	n := parent.NumChildren()
	for i := uint32(0); i < n; i++ {
		child := parent.Child(i)
		switch visitor(comment{c: child}) {
		case clang.Break:
			return false
		case clang.Recurse:
			if !visitComment(child, visitor) {
				return false
			}
		}
	}
	return true
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
