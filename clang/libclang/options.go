// Package libclang adapts libclang (through go-clang) to the clang provider
// interfaces.
//
// The adapter needs cgo and the libclang development files, so it is only
// compiled with the `libclang` build tag:
//
//	go build -tags libclang ./cmd/ffigen
//
// Without the tag New returns errors.ErrProviderUnavailable and generation
// has to use recorded snapshots instead.
package libclang

// Options configures the libclang index
type Options struct {
	// ExcludeDeclarationsFromPCH mirrors clang_createIndex's first argument
	ExcludeDeclarationsFromPCH bool
	// DisplayDiagnostics lets libclang print diagnostics to stderr itself
	DisplayDiagnostics bool
}
