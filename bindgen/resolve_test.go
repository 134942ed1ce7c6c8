package bindgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/errors"
)

func scalar(kind clang.TypeKind) *snapshot.Type {
	return &snapshot.Type{KindName: kind.String(), Name: strings.ToLower(kind.String()), Size: 4}
}

func typedef(name string) *snapshot.Type {
	return &snapshot.Type{KindName: "Typedef", Name: name, Typedef: name, Size: 16}
}

func pointerTo(t *snapshot.Type) *snapshot.Type {
	return &snapshot.Type{KindName: "Pointer", Name: t.Name + " *", Size: 8, Pointee: t}
}

func TestResolveScalars(t *testing.T) {
	r := NewResolver(0)

	tests := []struct {
		kind clang.TypeKind
		want string
	}{
		{clang.TypeBool, "bool"},
		{clang.TypeInt, "int"},
		{clang.TypeShort, "short"},
		{clang.TypeUShort, "ushort"},
		{clang.TypeUInt, "uint"},
		{clang.TypeSChar, "char"},
		{clang.TypeCharS, "char"},
		{clang.TypeCharU, "uchar"},
		{clang.TypeUChar, "uchar"},
		{clang.TypeFloat, "float"},
		{clang.TypeDouble, "double"},
		{clang.TypeLongDouble, "double"},
		{clang.TypeVoid, "void"},
		{clang.TypeLong, "long"},
		{clang.TypeULongLong, "ulonglong"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			first, err := r.Resolve(scalar(tt.kind))
			require.NoError(t, err)
			second, err := r.Resolve(scalar(tt.kind))
			require.NoError(t, err)

			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestResolveEveryScalarIsTotal(t *testing.T) {
	r := NewResolver(0)
	for kind, want := range ScalarTokens {
		got, err := r.Resolve(scalar(kind))
		require.NoError(t, err, kind.String())
		assert.Equal(t, want, got)
	}
}

func TestResolvePointerNesting(t *testing.T) {
	r := NewResolver(0)

	inner := []*snapshot.Type{scalar(clang.TypeInt), scalar(clang.TypeCharS), typedef("CXString")}
	for _, base := range inner {
		want, err := r.Resolve(base)
		require.NoError(t, err)

		current := base
		for depth := 1; depth <= 10; depth++ {
			current = pointerTo(current)
			want = "ptr(" + want + ")"

			got, err := r.Resolve(current)
			require.NoError(t, err)
			assert.Equal(t, want, got, "depth %d over %s", depth, base.KindName)
		}
	}
}

func TestResolvePointerToTypedef(t *testing.T) {
	got, err := NewResolver(0).Resolve(pointerTo(typedef("CXString")))
	require.NoError(t, err)
	assert.Equal(t, "ptr(CXString)", got)
}

func TestResolvePointerFallsBackToKindSpelling(t *testing.T) {
	record := &snapshot.Type{KindName: "Record", Name: "struct Foo", Size: 8}
	got, err := NewResolver(0).Resolve(pointerTo(record))
	require.NoError(t, err)
	assert.Equal(t, "ptr(Record)", got)

	fn := &snapshot.Type{KindName: "FunctionProto", Name: "void (int)", Size: 1}
	got, err = NewResolver(0).Resolve(pointerTo(fn))
	require.NoError(t, err)
	assert.Equal(t, "ptr(FunctionProto)", got)
}

func TestResolveTypedef(t *testing.T) {
	got, err := NewResolver(0).Resolve(typedef("CXErrorCode"))
	require.NoError(t, err)
	assert.Equal(t, "CXErrorCode", got)

	// libclang leaves the typedef name empty for some elaborated spellings
	got, err = NewResolver(0).Resolve(&snapshot.Type{KindName: "Typedef", Name: "size_t"})
	require.NoError(t, err)
	assert.Equal(t, "size_t", got)
}

func TestResolveUnsupportedKind(t *testing.T) {
	for _, kind := range []string{"Record", "Enum", "ConstantArray", "Elaborated", "Int128"} {
		t.Run(kind, func(t *testing.T) {
			_, err := NewResolver(0).Resolve(&snapshot.Type{KindName: kind})
			require.Error(t, err)
			assert.True(t, errors.IsUnsupportedType(err))
			assert.Contains(t, err.Error(), kind)
		})
	}
}

func TestResolvePointerDepthLimit(t *testing.T) {
	r := NewResolver(2)

	two := pointerTo(pointerTo(scalar(clang.TypeInt)))
	got, err := r.Resolve(two)
	require.NoError(t, err)
	assert.Equal(t, "ptr(ptr(int))", got)

	_, err = r.Resolve(pointerTo(two))
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedType(err))
	assert.Contains(t, err.Error(), "deeper than 2")
}
