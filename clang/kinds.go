package clang

// CursorKind classifies a cursor. String values follow libclang's
// clang_getCursorKindSpelling so providers can map kinds by spelling.
type CursorKind int

const (
	CursorOther CursorKind = iota
	CursorTranslationUnit
	CursorStructDecl
	CursorUnionDecl
	CursorTypedefDecl
	CursorFunctionDecl
	CursorFieldDecl
	CursorEnumDecl
	CursorEnumConstantDecl
	CursorVarDecl
	CursorIntegerLiteral
	CursorMacroDefinition
)

var cursorKindNames = map[CursorKind]string{
	CursorOther:            "Other",
	CursorTranslationUnit:  "TranslationUnit",
	CursorStructDecl:       "StructDecl",
	CursorUnionDecl:        "UnionDecl",
	CursorTypedefDecl:      "TypedefDecl",
	CursorFunctionDecl:     "FunctionDecl",
	CursorFieldDecl:        "FieldDecl",
	CursorEnumDecl:         "EnumDecl",
	CursorEnumConstantDecl: "EnumConstantDecl",
	CursorVarDecl:          "VarDecl",
	CursorIntegerLiteral:   "IntegerLiteral",
	CursorMacroDefinition:  "macro definition",
}

var cursorKindsBySpelling = invert(cursorKindNames)

func (k CursorKind) String() string {
	if name, ok := cursorKindNames[k]; ok {
		return name
	}
	return "Other"
}

// ParseCursorKind maps a libclang cursor kind spelling to a CursorKind.
// Unknown spellings map to CursorOther.
func ParseCursorKind(spelling string) CursorKind {
	return cursorKindsBySpelling[spelling]
}

// TypeKind classifies a type descriptor. String values follow libclang's
// clang_getTypeKindSpelling.
type TypeKind int

const (
	TypeOther TypeKind = iota
	TypeInvalid
	TypeVoid
	TypeBool
	TypeCharU
	TypeUChar
	TypeUShort
	TypeUInt
	TypeULong
	TypeULongLong
	TypeCharS
	TypeSChar
	TypeShort
	TypeInt
	TypeLong
	TypeLongLong
	TypeFloat
	TypeDouble
	TypeLongDouble
	TypePointer
	TypeRecord
	TypeEnum
	TypeTypedef
	TypeElaborated
	TypeConstantArray
	TypeFunctionProto
)

var typeKindNames = map[TypeKind]string{
	TypeOther:         "Other",
	TypeInvalid:       "Invalid",
	TypeVoid:          "Void",
	TypeBool:          "Bool",
	TypeCharU:         "Char_U",
	TypeUChar:         "UChar",
	TypeUShort:        "UShort",
	TypeUInt:          "UInt",
	TypeULong:         "ULong",
	TypeULongLong:     "ULongLong",
	TypeCharS:         "Char_S",
	TypeSChar:         "SChar",
	TypeShort:         "Short",
	TypeInt:           "Int",
	TypeLong:          "Long",
	TypeLongLong:      "LongLong",
	TypeFloat:         "Float",
	TypeDouble:        "Double",
	TypeLongDouble:    "LongDouble",
	TypePointer:       "Pointer",
	TypeRecord:        "Record",
	TypeEnum:          "Enum",
	TypeTypedef:       "Typedef",
	TypeElaborated:    "Elaborated",
	TypeConstantArray: "ConstantArray",
	TypeFunctionProto: "FunctionProto",
}

var typeKindsBySpelling = invert(typeKindNames)

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "Other"
}

// ParseTypeKind maps a libclang type kind spelling to a TypeKind.
// Unknown spellings map to TypeOther.
func ParseTypeKind(spelling string) TypeKind {
	return typeKindsBySpelling[spelling]
}

// CommentKind classifies a parsed documentation comment node
type CommentKind int

const (
	CommentNull CommentKind = iota
	CommentText
	CommentInlineCommand
	CommentHTMLStartTag
	CommentHTMLEndTag
	CommentParagraph
	CommentBlockCommand
	CommentParamCommand
	CommentTParamCommand
	CommentVerbatimBlockCommand
	CommentVerbatimBlockLine
	CommentVerbatimLine
	CommentFullComment
)

var commentKindNames = map[CommentKind]string{
	CommentNull:                 "Null",
	CommentText:                 "Text",
	CommentInlineCommand:        "InlineCommand",
	CommentHTMLStartTag:         "HTMLStartTag",
	CommentHTMLEndTag:           "HTMLEndTag",
	CommentParagraph:            "Paragraph",
	CommentBlockCommand:         "BlockCommand",
	CommentParamCommand:         "ParamCommand",
	CommentTParamCommand:        "TParamCommand",
	CommentVerbatimBlockCommand: "VerbatimBlockCommand",
	CommentVerbatimBlockLine:    "VerbatimBlockLine",
	CommentVerbatimLine:         "VerbatimLine",
	CommentFullComment:          "FullComment",
}

var commentKindsBySpelling = invert(commentKindNames)

func (k CommentKind) String() string {
	if name, ok := commentKindNames[k]; ok {
		return name
	}
	return "Null"
}

// ParseCommentKind maps a comment kind name to a CommentKind.
// Unknown names map to CommentNull.
func ParseCommentKind(name string) CommentKind {
	return commentKindsBySpelling[name]
}

// InlineRenderKind is the formatting policy of an inline command's arguments
type InlineRenderKind int

const (
	RenderNormal InlineRenderKind = iota
	RenderBold
	RenderMonospaced
	RenderEmphasized
	RenderAnchor
)

var renderKindNames = map[InlineRenderKind]string{
	RenderNormal:     "normal",
	RenderBold:       "bold",
	RenderMonospaced: "monospaced",
	RenderEmphasized: "emphasized",
	RenderAnchor:     "anchor",
}

var renderKindsByName = invert(renderKindNames)

func (k InlineRenderKind) String() string {
	if name, ok := renderKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseInlineRenderKind maps a render kind name to an InlineRenderKind.
// The boolean is false for unknown names.
func ParseInlineRenderKind(name string) (InlineRenderKind, bool) {
	k, ok := renderKindsByName[name]
	return k, ok
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
