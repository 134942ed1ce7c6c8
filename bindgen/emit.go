package bindgen

import (
	"fmt"
	"strings"
)

// DefaultStructSuffix is appended to every emitted struct name
const DefaultStructSuffix = "T"

// Emitter formats struct descriptors as Deno FFI struct declarations
type Emitter struct {
	Suffix string
}

// NewEmitter creates an emitter. An empty suffix uses DefaultStructSuffix.
func NewEmitter(suffix string) *Emitter {
	if suffix == "" {
		suffix = DefaultStructSuffix
	}
	return &Emitter{Suffix: suffix}
}

// Name returns the emitted constant name for a struct spelling
func (e *Emitter) Name(spelling string) string {
	return strings.TrimPrefix(spelling, "struct ") + e.Suffix
}

// Emit returns one self-contained declaration block ending in a newline
func (e *Emitter) Emit(s *StructDescriptor) string {
	var sb strings.Builder

	if s.HasDoc() {
		sb.WriteString(s.Doc)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("export const %s = {\n", e.Name(s.Name)))
	sb.WriteString(fmt.Sprintf("  // Byte size: %d\n", s.Size))
	sb.WriteString("  struct: [\n")

	for _, f := range s.Fields {
		if f.Doc != "" {
			sb.WriteString(indent(f.Doc, "    "))
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("    /** %s, offset %d */ %s,\n", f.Name, f.Offset, f.Type))
	}

	sb.WriteString("  ],\n")
	sb.WriteString("} as const;\n")
	return sb.String()
}

// JoinBlocks concatenates emitted blocks with one blank line between them
func JoinBlocks(blocks []string) string {
	return strings.Join(blocks, "\n")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
