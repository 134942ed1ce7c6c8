package bindgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

func snapshotParser() clang.Parser {
	return snapshot.NewParser(filepath.Join("testdata", "ast"))
}

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestPipelineGeneratesGolden(t *testing.T) {
	p := New(snapshotParser(), Options{
		Headers:      []string{"include/clang-c/CXString.h"},
		MainFileOnly: true,
	}, nil)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, golden(t, "CXString.ts"), result.Output)
	assert.Len(t, result.Structs, 2)
	assert.Empty(t, result.Failures)
	assert.Zero(t, result.Skipped)
	assert.NotEmpty(t, result.RunID)
}

func TestPipelineIsIdempotent(t *testing.T) {
	opts := Options{Headers: []string{"include/clang-c/CXString.h", "include/Broken.h"}}

	first, err := New(snapshotParser(), opts, nil).Run(context.Background())
	require.NoError(t, err)
	second, err := New(snapshotParser(), opts, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Output, second.Output)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestPipelineContinuesPastMalformedStructs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	result, err := New(snapshotParser(), Options{
		Headers: []string{"include/Broken.h"},
	}, zap.New(core).Sugar()).Run(context.Background())
	require.NoError(t, err)

	// Empty name and nested paragraph fail; the forward declaration is skipped
	require.Len(t, result.Failures, 2)
	assert.True(t, errors.IsMalformed(result.Failures[0].Err))
	assert.Contains(t, result.Failures[0].Err.Error(), "no resolvable name")
	assert.Equal(t, "Nested", result.Failures[1].Struct)
	assert.Contains(t, result.Failures[1].Err.Error(), "paragraph nested inside a paragraph")
	assert.Equal(t, "include/Broken.h", result.Failures[1].Header)
	assert.Equal(t, 1, result.Skipped)

	require.Len(t, result.Structs, 1)
	assert.Equal(t, "Point", result.Structs[0].Name)
	assert.Contains(t, result.Output, "export const PointT = {")
	assert.Contains(t, result.Output, "    /**\n     * Vertical **position**\n     */\n    /** y, offset 8 */ ptr(char),")

	entries := logs.FilterMessage("Failed to extract struct").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Nested", entries[1].ContextMap()["struct"])
	assert.Equal(t, "include/Broken.h", entries[1].ContextMap()["header"])
}

func TestPipelineStrict(t *testing.T) {
	result, err := New(snapshotParser(), Options{
		Headers: []string{"include/Broken.h"},
		Strict:  true,
	}, nil).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDeclarationsFailed))
	require.NotNil(t, result)
	assert.Contains(t, result.Output, "PointT")
	assert.Len(t, errors.GetAllDetails(err), 2)
}

func TestPipelineConcatenatesHeadersInOrder(t *testing.T) {
	result, err := New(snapshotParser(), Options{
		Headers:      []string{"Broken.h", "CXString.h"},
		StructSuffix: "Struct",
	}, nil).Run(context.Background())
	require.NoError(t, err)

	names := make([]string, len(result.Structs))
	for i, s := range result.Structs {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Point", "CXString", "CXStringSet"}, names)
	assert.Contains(t, result.Output, "export const CXStringStruct = {")
}

func TestPipelineSkipsDuplicateStructs(t *testing.T) {
	result, err := New(snapshotParser(), Options{
		Headers: []string{"CXString.h", "CXString.h"},
	}, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Structs, 2)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, golden(t, "CXString.ts"), result.Output)
}

func TestPipelineMainFileOnly(t *testing.T) {
	dir := t.TempDir()
	f := &snapshot.File{
		Header: "local.h",
		Root: &snapshot.Cursor{
			KindName: "TranslationUnit",
			Nodes: []*snapshot.Cursor{
				record("Included", 4, field("a", 0, &snapshot.Type{KindName: "Int", Size: 4})),
				record("Local", 4, field("b", 0, &snapshot.Type{KindName: "Int", Size: 4})),
			},
		},
	}
	f.Root.Nodes[0].External = true

	out, err := os.Create(filepath.Join(dir, "local.yaml"))
	require.NoError(t, err)
	require.NoError(t, f.Encode(out))
	require.NoError(t, out.Close())

	run := func(mainFileOnly bool) *Result {
		result, err := New(snapshot.NewParser(dir), Options{
			Headers:      []string{"local.h"},
			MainFileOnly: mainFileOnly,
		}, nil).Run(context.Background())
		require.NoError(t, err)
		return result
	}

	filtered := run(true)
	require.Len(t, filtered.Structs, 1)
	assert.Equal(t, "Local", filtered.Structs[0].Name)
	assert.Equal(t, 1, filtered.Skipped)

	assert.Len(t, run(false).Structs, 2)
}

func TestPipelineProviderFailureAborts(t *testing.T) {
	_, err := New(snapshotParser(), Options{
		Headers: []string{"CXString.h", "missing.h"},
	}, nil).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsProviderError(err))
	assert.Contains(t, err.Error(), "failed to parse missing.h")
}

func TestPipelineRequiresHeaders(t *testing.T) {
	_, err := New(snapshotParser(), Options{}, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no headers")
}

func TestPipelineCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(snapshotParser(), Options{Headers: []string{"CXString.h"}}, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated", "structs.ts")

	require.NoError(t, WriteOutput(path, &Result{Output: "export const AT = {};\n"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export const AT = {};\n", string(data))
}

func TestPipelineTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := New(snapshotParser(), Options{
		Headers:      []string{"include/clang-c/CXString.h"},
		MainFileOnly: true,
		TraceFields:  true,
	}, zap.New(core).Sugar()).Run(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("Resolved field").All()
	require.Len(t, entries, 4)
	assert.Equal(t, "CXString", entries[0].ContextMap()["struct"])
	assert.Equal(t, "data", entries[0].ContextMap()["field"])
	assert.Equal(t, "ptr(void)", entries[0].ContextMap()["type"])
}

func TestPipelineLogsDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := New(snapshotParser(), Options{
		Headers: []string{"include/clang-c/CXString.h"},
	}, zap.New(core).Sugar()).Run(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("Parse diagnostic").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "warning", fields[logger.FieldSeverity])
	assert.Equal(t, "'CINDEX_LINKAGE' macro redefined", fields[logger.FieldMessage])
	assert.Equal(t, "include/clang-c/CXString.h", fields[logger.FieldHeader])
}
