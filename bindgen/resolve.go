package bindgen

import (
	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

// DefaultMaxPointerDepth bounds pointer nesting during resolution
const DefaultMaxPointerDepth = 16

// ScalarTokens maps scalar type kinds to Deno FFI tokens.
// LongDouble narrows to double; Deno has no wider float.
var ScalarTokens = map[clang.TypeKind]string{
	clang.TypeVoid:       "void",
	clang.TypeBool:       "bool",
	clang.TypeCharS:      "char",
	clang.TypeSChar:      "char",
	clang.TypeCharU:      "uchar",
	clang.TypeUChar:      "uchar",
	clang.TypeShort:      "short",
	clang.TypeUShort:     "ushort",
	clang.TypeInt:        "int",
	clang.TypeUInt:       "uint",
	clang.TypeLong:       "long",
	clang.TypeULong:      "ulong",
	clang.TypeLongLong:   "longlong",
	clang.TypeULongLong:  "ulonglong",
	clang.TypeFloat:      "float",
	clang.TypeDouble:     "double",
	clang.TypeLongDouble: "double",
}

// Resolver maps type descriptors to target tokens. It is stateless.
type Resolver struct {
	MaxDepth int
}

// NewResolver creates a resolver. maxDepth <= 0 uses DefaultMaxPointerDepth.
func NewResolver(maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPointerDepth
	}
	return &Resolver{MaxDepth: maxDepth}
}

// Resolve returns the token for t, or an ErrUnsupportedType error carrying
// the raw kind spelling.
func (r *Resolver) Resolve(t clang.Type) (string, error) {
	return r.resolve(t, 0)
}

func (r *Resolver) resolve(t clang.Type, depth int) (string, error) {
	kind := t.Kind()
	if token, ok := ScalarTokens[kind]; ok {
		return token, nil
	}

	switch kind {
	case clang.TypeTypedef:
		if name := typedefName(t); name != "" {
			return name, nil
		}
		return "", errors.NewMalformedError("typedef %q has no declared name", t.Spelling())
	case clang.TypePointer:
		if depth >= r.maxDepth() {
			return "", errors.WithDetailf(
				errors.Wrapf(errors.ErrUnsupportedType, "pointer nesting deeper than %d", r.maxDepth()),
				"type: %s", t.Spelling())
		}
		inner, err := r.pointee(t.PointeeType(), depth+1)
		if err != nil {
			return "", err
		}
		return "ptr(" + inner + ")", nil
	}

	return "", errors.NewUnsupportedTypeError(t.KindSpelling())
}

// pointee picks the inner token of a pointer: the typedef name, the nested
// pointer or scalar token, or the pointee's raw kind spelling.
func (r *Resolver) pointee(p clang.Type, depth int) (string, error) {
	switch p.Kind() {
	case clang.TypeTypedef, clang.TypePointer:
		return r.resolve(p, depth)
	}
	if token, ok := ScalarTokens[p.Kind()]; ok {
		return token, nil
	}
	return p.KindSpelling(), nil
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth <= 0 {
		return DefaultMaxPointerDepth
	}
	return r.MaxDepth
}

func typedefName(t clang.Type) string {
	if name := t.TypedefName(); name != "" {
		return name
	}
	return t.Spelling()
}
