package bindgen

import (
	"strings"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

// anonymousSpellings are the placeholder spellings libclang gives records
// without a name, e.g. "struct (unnamed at foo.h:3:1)"
var anonymousSpellings = []string{"(unnamed", "(anonymous"}

// Extractor reads struct definitions into descriptors
type Extractor struct {
	Resolver *Resolver
	Comments *CommentRenderer
}

// NewExtractor creates an extractor from its collaborators
func NewExtractor(resolver *Resolver, comments *CommentRenderer) *Extractor {
	if resolver == nil {
		resolver = NewResolver(0)
	}
	if comments == nil {
		comments = NewCommentRenderer(nil)
	}
	return &Extractor{Resolver: resolver, Comments: comments}
}

// Extract reads the struct at c. Only direct children are visited; any child
// other than a field declaration is ErrMalformed. Errors name the struct and
// the offending node kind.
func (e *Extractor) Extract(c clang.Cursor) (*StructDescriptor, error) {
	t := c.Type()
	name := t.Spelling()
	if name == "" || isAnonymous(name) {
		// Anonymous spellings carry the declaration's location
		where := name
		if where == "" {
			where = c.DisplayName()
		}
		return nil, errors.WithDetailf(
			errors.NewMalformedError("struct declaration %q has no resolvable name", where),
			"node kind: %s", c.KindSpelling())
	}

	size := t.SizeOf()
	if size < 0 {
		return nil, errors.WithDetailf(
			errors.NewMalformedError("struct %s has no valid layout (size %d)", name, size),
			"incomplete or dependent types report negative sizes")
	}

	desc := &StructDescriptor{Name: name, Size: size}

	doc, ok, err := e.Comments.Render(c.ParsedComment())
	if err != nil {
		return nil, wrapStructError(err, name, c.KindSpelling(), "documentation")
	}
	if ok {
		desc.Doc = doc
	}

	var fieldErr error
	c.Visit(func(child clang.Cursor) clang.VisitResult {
		if child.Kind() != clang.CursorFieldDecl {
			fieldErr = errors.WithDetailf(
				errors.NewMalformedError("struct %s has unsupported member of kind %s", name, child.KindSpelling()),
				"member: %s", child.DisplayName())
			return clang.Break
		}

		field, err := e.field(child)
		if err != nil {
			fieldErr = wrapStructError(err, name, child.KindSpelling(), child.DisplayName())
			return clang.Break
		}

		if n := len(desc.Fields); n > 0 && field.Offset < desc.Fields[n-1].Offset {
			fieldErr = errors.NewMalformedError("struct %s field %s at offset %d precedes field %s at offset %d",
				name, field.Name, field.Offset, desc.Fields[n-1].Name, desc.Fields[n-1].Offset)
			return clang.Break
		}

		desc.Fields = append(desc.Fields, *field)
		return clang.Continue
	})
	if fieldErr != nil {
		return nil, fieldErr
	}

	return desc, nil
}

func (e *Extractor) field(c clang.Cursor) (*FieldDescriptor, error) {
	name := c.DisplayName()

	typ, err := e.Resolver.Resolve(c.Type())
	if err != nil {
		return nil, err
	}

	bits := c.OffsetOfField()
	if bits < 0 {
		return nil, errors.NewMalformedError("field %s has no valid offset (%d)", name, bits)
	}
	if bits%8 != 0 {
		return nil, errors.WithHint(
			errors.NewMalformedError("field %s at bit offset %d is not byte aligned", name, bits),
			"bit-fields are not supported")
	}

	field := &FieldDescriptor{Name: name, Type: typ, Offset: bits / 8}

	doc, ok, err := e.Comments.Render(c.ParsedComment())
	if err != nil {
		return nil, errors.Wrapf(err, "documentation of field %s", name)
	}
	if ok {
		field.Doc = doc
	}
	return field, nil
}

func wrapStructError(err error, structName, kind, where string) error {
	return errors.WithDetailf(
		errors.Wrapf(err, "struct %s", structName),
		"node kind: %s, at: %s", kind, where)
}

func isAnonymous(spelling string) bool {
	for _, marker := range anonymousSpellings {
		if strings.Contains(spelling, marker) {
			return true
		}
	}
	return false
}
