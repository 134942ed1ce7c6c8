package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ffigen/bindgen"
	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/config"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

var (
	dumpOut string
	dumpAll bool
)

// DumpCmd represents the dump command
var DumpCmd = &cobra.Command{
	Use:   "dump <header>",
	Short: "Record a header's AST as a YAML snapshot",
	Long: `Parse a header with the configured provider and write the whole tree
(declarations, types, field offsets, parsed comments, enum integer types,
enum constant values and diagnostics) as a YAML snapshot.

Snapshots let the snapshot provider regenerate bindings on machines without
libclang, and make provider output easy to inspect. With -vv every enum,
enum constant and integer literal is logged.

An existing snapshot is only replaced once the header parsed successfully.

Examples:
  ffigen dump include/clang-c/CXString.h
  ffigen dump include/clang-c/CXString.h --out testdata/ast/CXString.yaml
  ffigen dump include/clang-c/Index.h --all     # include declarations from other files`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	DumpCmd.Flags().StringVar(&dumpOut, "out", "-", `Snapshot file, "-" for stdout`)
	DumpCmd.Flags().BoolVar(&dumpAll, "all", false, "Include top-level declarations from included files")
	DumpCmd.Flags().String("provider", "", "AST provider: libclang or snapshot")
	DumpCmd.Flags().String("snapshot-dir", "", "Directory of recorded AST snapshots")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, _, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	clangArgs, err := cfg.ClangArgs()
	if err != nil {
		return err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return err
	}
	defer parser.Close()

	var buf bytes.Buffer
	file, err := dump(cmd.Context(), parser, args[0], clangArgs, snapshot.CaptureOptions{MainFileOnly: !dumpAll}, &buf)
	if err != nil {
		return err
	}

	if dumpOut == bindgen.StdoutPath {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return errors.Wrap(err, "failed to write snapshot")
	}

	if err := writeFileAtomic(dumpOut, buf.Bytes()); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %s (%d top-level declarations)\n", dumpOut, len(file.Root.Nodes))
	return nil
}

// dump captures header into a snapshot and writes it to w
func dump(ctx context.Context, parser clang.Parser, header string, args []string, opts snapshot.CaptureOptions, w io.Writer) (*snapshot.File, error) {
	tu, err := parser.Parse(ctx, header, args)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", header)
	}
	defer tu.Dispose()

	file := snapshot.Capture(header, args, tu, opts)
	logDeclarations(header, file.Root)

	if err := file.Encode(w); err != nil {
		return nil, err
	}
	return file, nil
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so a failed write never leaves a truncated snapshot behind
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), config.DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to set permissions on %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}

// logDeclarations reports declaration counts, then every enum, enum
// constant and integer literal at debug level
func logDeclarations(header string, root clang.Cursor) {
	log := logger.ChildLogger(logger.ComponentLogger("dump"), logger.FieldHeader, header)

	decls := bindgen.Collect(root)
	log.Infow("Captured declarations",
		logger.FieldStructs, len(decls.Structs),
		logger.FieldTypedefs, len(decls.Typedefs),
		logger.FieldFunctions, len(decls.Functions))

	root.Visit(func(c clang.Cursor) clang.VisitResult {
		switch c.Kind() {
		case clang.CursorEnumDecl:
			log.Debugw("Enum",
				logger.FieldEnum, c.Spelling(),
				logger.FieldIntegerType, c.EnumIntegerType().Spelling())
		case clang.CursorEnumConstantDecl:
			signed, unsigned := c.EnumConstantValue()
			log.Debugw("Enum constant",
				logger.FieldConstant, c.Spelling(),
				logger.FieldValue, signed,
				logger.FieldUnsignedValue, unsigned)
		case clang.CursorIntegerLiteral:
			log.Debugw("Integer literal", logger.FieldType, c.Type().Spelling())
		}
		return clang.Recurse
	})
}
