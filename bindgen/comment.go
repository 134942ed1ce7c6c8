package bindgen

import (
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

const (
	docOpen      = "/**"
	docSeparator = " *"
	docClose     = " */"
)

// CommentRenderer turns parsed documentation comments into JSDoc blocks
type CommentRenderer struct {
	log *zap.SugaredLogger
}

// NewCommentRenderer creates a renderer that reports unrecognized comment
// shapes on log. A nil log discards them.
func NewCommentRenderer(log *zap.SugaredLogger) *CommentRenderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &CommentRenderer{log: log}
}

// Render returns the JSDoc block for c. ok is false for a Null comment.
// Nested paragraphs and top-level inline commands are ErrMalformed.
func (r *CommentRenderer) Render(c clang.Comment) (doc string, ok bool, err error) {
	if c == nil || c.Kind() == clang.CommentNull {
		return "", false, nil
	}

	lines := []string{docOpen}
	var renderErr error

	c.Visit(func(child clang.Comment) clang.VisitResult {
		switch child.Kind() {
		case clang.CommentText:
			lines = append(lines, " * "+child.Text())
		case clang.CommentParagraph:
			text, err := r.paragraph(child)
			if err != nil {
				renderErr = err
				return clang.Break
			}
			lines = append(lines, docSeparator+text, docSeparator)
		case clang.CommentInlineCommand:
			renderErr = errors.NewMalformedError("inline command outside a paragraph")
			return clang.Break
		default:
			r.log.Warnw("Unrecognized comment shape, skipping",
				logger.FieldKind, child.Kind().String())
		}
		return clang.Continue
	})

	if renderErr != nil {
		return "", false, renderErr
	}

	if lines[len(lines)-1] == docSeparator {
		lines = lines[:len(lines)-1]
	}
	lines = append(lines, docClose)
	return strings.Join(lines, "\n"), true, nil
}

// paragraph concatenates a paragraph's text and inline commands
func (r *CommentRenderer) paragraph(p clang.Comment) (string, error) {
	var sb strings.Builder
	var err error

	p.Visit(func(child clang.Comment) clang.VisitResult {
		switch child.Kind() {
		case clang.CommentParagraph:
			err = errors.NewMalformedError("paragraph nested inside a paragraph")
			return clang.Break
		case clang.CommentText:
			sb.WriteString(child.Text())
		case clang.CommentInlineCommand:
			style := child.RenderKind()
			for i := 0; i < child.NumArgs(); i++ {
				sb.WriteString(renderInline(style, child.ArgText(i)))
			}
		}
		return clang.Continue
	})

	return sb.String(), err
}

func renderInline(style clang.InlineRenderKind, arg string) string {
	switch style {
	case clang.RenderNormal:
		return arg
	case clang.RenderBold:
		return "**" + arg + "**"
	case clang.RenderMonospaced:
		return "`" + arg + "`"
	case clang.RenderEmphasized:
		return "*" + arg + "*"
	default:
		return ""
	}
}
