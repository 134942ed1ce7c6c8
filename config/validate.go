package config

import (
	"github.com/teranos/ffigen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Generate.Headers) == 0 {
		return errors.WithHint(
			errors.New("generate.headers cannot be empty"),
			`add headers = ["include/foo.h"] under [generate]`)
	}
	for i, h := range c.Generate.Headers {
		if h == "" {
			return errors.Newf("generate.headers[%d] cannot be empty", i)
		}
	}

	if c.Generate.Output == "" {
		return errors.New(`generate.output cannot be empty (use "-" for stdout)`)
	}

	// Pointer depth: 0 would reject every pointer field
	if c.Generate.MaxPointerDepth <= 0 {
		return errors.Newf("generate.max_pointer_depth must be > 0, got %d", c.Generate.MaxPointerDepth)
	}

	if _, err := c.ClangArgs(); err != nil {
		return err
	}

	switch c.Provider.Kind {
	case ProviderLibclang:
	case ProviderSnapshot:
		if c.Provider.SnapshotDir == "" {
			return errors.New("provider.snapshot_dir cannot be empty when provider.kind is snapshot")
		}
	default:
		return errors.Newf("provider.kind must be %q or %q, got %q", ProviderLibclang, ProviderSnapshot, c.Provider.Kind)
	}

	switch c.Log.Theme {
	case "", "gruvbox", "everforest":
	default:
		return errors.Newf("log.theme must be gruvbox or everforest, got %q", c.Log.Theme)
	}

	return nil
}
