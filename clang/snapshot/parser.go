package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

var (
	_ clang.Parser          = (*Parser)(nil)
	_ clang.TranslationUnit = (*TranslationUnit)(nil)
)

// Parser replays recorded snapshots. A header "include/foo/bar.h" is served
// from "<Dir>/bar.yaml". Compiler arguments are ignored.
type Parser struct {
	Dir string
}

// NewParser creates a snapshot parser reading from dir
func NewParser(dir string) *Parser {
	return &Parser{Dir: dir}
}

// PathFor returns the snapshot file that serves header
func (p *Parser) PathFor(header string) string {
	base := filepath.Base(header)
	return filepath.Join(p.Dir, strings.TrimSuffix(base, filepath.Ext(base))+".yaml")
}

// Parse loads the snapshot recorded for header
func (p *Parser) Parse(ctx context.Context, header string, args []string) (clang.TranslationUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := p.PathFor(header)
	f, err := Load(path)
	if err != nil {
		err = errors.Mark(err, errors.ErrProvider)
		if os.IsNotExist(errors.UnwrapAll(err)) {
			err = errors.WithHintf(err, "record it with `ffigen dump --out %s %s`", path, header)
		}
		return nil, err
	}

	tu := &TranslationUnit{File: f}
	if err := clang.CheckDiagnostics(header, tu.Diagnostics()); err != nil {
		return nil, err
	}
	return tu, nil
}

// Close is a no-op; snapshots hold no native resources
func (p *Parser) Close() error {
	return nil
}

// TranslationUnit wraps a loaded snapshot. It implements clang.TranslationUnit.
type TranslationUnit struct {
	File *File
}

func (tu *TranslationUnit) Cursor() clang.Cursor { return tu.File.Root }

func (tu *TranslationUnit) Diagnostics() []clang.Diagnostic {
	return tu.File.ClangDiagnostics()
}

func (tu *TranslationUnit) Dispose() {}
