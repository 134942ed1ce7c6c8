package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/ffigen/bindgen"
	"github.com/teranos/ffigen/clang"
	"github.com/teranos/ffigen/clang/libclang"
	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/config"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

// Global flags, registered on the root command in main
var (
	ConfigPath string
	Verbosity  int
	JSONLogs   bool
)

// flagKeys maps command flags to the config keys they override
var flagKeys = map[string]string{
	"header":       "generate.headers",
	"output":       "generate.output",
	"strict":       "generate.strict",
	"suffix":       "generate.struct_suffix",
	"provider":     "provider.kind",
	"snapshot-dir": "provider.snapshot_dir",
}

// loadConfig resolves configuration for cmd, applying any of its flags that
// override config keys, and adjusts logging to the loaded [log] section
func loadConfig(cmd *cobra.Command) (*config.Config, *viper.Viper, config.Sources, error) {
	v, sources, err := config.NewViper(config.Options{Path: ConfigPath})
	if err != nil {
		return nil, nil, nil, err
	}

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, nil, nil, errors.Wrapf(err, "failed to bind --%s", flag)
			}
		}
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Log.Theme != "" {
		logger.SetTheme(cfg.Log.Theme)
	}
	if cfg.Log.JSON && !logger.JSONOutput {
		if err := logger.Initialize(Verbosity, true); err != nil {
			return nil, nil, nil, errors.Wrap(err, "failed to initialize JSON logging")
		}
	}
	return cfg, v, sources, nil
}

// loadValidConfig is loadConfig followed by Validate
func loadValidConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "invalid configuration"),
			"run `ffigen config validate` or `ffigen config show --sources`")
	}
	return cfg, nil
}

// newParser opens the configured AST provider
func newParser(cfg *config.Config) (clang.Parser, error) {
	switch cfg.Provider.Kind {
	case config.ProviderSnapshot:
		return snapshot.NewParser(cfg.Provider.SnapshotDir), nil
	default:
		return libclang.New(libclang.Options{ExcludeDeclarationsFromPCH: true})
	}
}

// pipelineOptions converts configuration into generation options
func pipelineOptions(cfg *config.Config) (bindgen.Options, error) {
	args, err := cfg.ClangArgs()
	if err != nil {
		return bindgen.Options{}, err
	}
	return bindgen.Options{
		Headers:         cfg.Generate.Headers,
		Args:            args,
		StructSuffix:    cfg.Generate.StructSuffix,
		MainFileOnly:    cfg.Generate.MainFileOnly,
		MaxPointerDepth: cfg.Generate.MaxPointerDepth,
		Strict:          cfg.Generate.Strict,
		TraceFields:     logger.ShouldLogTrace(Verbosity),
	}, nil
}

// generate runs the pipeline once for cfg
func generate(ctx context.Context, cfg *config.Config) (*bindgen.Result, error) {
	opts, err := pipelineOptions(cfg)
	if err != nil {
		return nil, err
	}

	parser, err := newParser(cfg)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	return bindgen.New(parser, opts, logger.ComponentLogger("bindgen")).Run(ctx)
}
