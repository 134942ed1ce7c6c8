//go:build !libclang

package libclang

import (
	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/errors"
)

// Available reports whether the libclang adapter is compiled in
const Available = false

// New always fails in builds without the libclang tag
func New(opts Options) (clang.Parser, error) {
	return nil, errors.WithHint(
		errors.Wrap(errors.ErrProviderUnavailable, "libclang provider not compiled in"),
		"rebuild with `go build -tags libclang` or set provider.kind = \"snapshot\"")
}
