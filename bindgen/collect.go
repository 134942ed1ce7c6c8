package bindgen

import (
	"github.com/teranos/ffigen/clang"
)

// Declarations holds a translation unit's top-level declarations by kind,
// each in source order
type Declarations struct {
	Structs   []clang.Cursor
	Typedefs  []clang.Cursor
	Functions []clang.Cursor
	// Ignored counts children of any other kind (macros, enums, variables)
	Ignored int
}

// Collect classifies root's direct children. It never recurses.
func Collect(root clang.Cursor) *Declarations {
	decls := &Declarations{}
	clang.VisitChildren[clang.Cursor](root, func(child clang.Cursor) clang.VisitResult {
		switch child.Kind() {
		case clang.CursorStructDecl:
			decls.Structs = append(decls.Structs, child)
		case clang.CursorTypedefDecl:
			decls.Typedefs = append(decls.Typedefs, child)
		case clang.CursorFunctionDecl:
			decls.Functions = append(decls.Functions, child)
		default:
			decls.Ignored++
		}
		return clang.Continue
	})
	return decls
}
