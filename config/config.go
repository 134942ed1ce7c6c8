// Package config loads ffigen.toml.
//
// Precedence (lowest to highest): defaults < user (~/.ffigen/ffigen.toml) <
// project (ffigen.toml found by walking up from the working directory, or an
// explicit --config path) < FFIGEN_* environment variables < command flags.
package config

import (
	"github.com/kballard/go-shellquote"

	"github.com/teranos/ffigen/errors"
)

// FileName is the project configuration file searched for upward
const FileName = "ffigen.toml"

// EnvPrefix prefixes environment overrides, e.g. FFIGEN_GENERATE_OUTPUT
const EnvPrefix = "FFIGEN"

// Provider kinds
const (
	ProviderLibclang = "libclang"
	ProviderSnapshot = "snapshot"
)

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Config represents the ffigen configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate" json:"generate"`
	Provider ProviderConfig `mapstructure:"provider" toml:"provider" yaml:"provider" json:"provider"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// GenerateConfig configures what is parsed and where the output goes
type GenerateConfig struct {
	Headers         []string `mapstructure:"headers" toml:"headers" yaml:"headers" json:"headers"`
	IncludePaths    []string `mapstructure:"include_paths" toml:"include_paths" yaml:"include_paths" json:"include_paths"`
	ClangArgs       string   `mapstructure:"clang_args" toml:"clang_args" yaml:"clang_args" json:"clang_args"` // shell-quoted
	Output          string   `mapstructure:"output" toml:"output" yaml:"output" json:"output"`                 // "-" = stdout
	StructSuffix    string   `mapstructure:"struct_suffix" toml:"struct_suffix" yaml:"struct_suffix" json:"struct_suffix"`
	MainFileOnly    bool     `mapstructure:"main_file_only" toml:"main_file_only" yaml:"main_file_only" json:"main_file_only"`
	MaxPointerDepth int      `mapstructure:"max_pointer_depth" toml:"max_pointer_depth" yaml:"max_pointer_depth" json:"max_pointer_depth"`
	Strict          bool     `mapstructure:"strict" toml:"strict" yaml:"strict" json:"strict"`
}

// ProviderConfig selects the AST provider
type ProviderConfig struct {
	Kind        string `mapstructure:"kind" toml:"kind" yaml:"kind" json:"kind"`                         // libclang | snapshot
	SnapshotDir string `mapstructure:"snapshot_dir" toml:"snapshot_dir" yaml:"snapshot_dir" json:"snapshot_dir"` // required for snapshot
}

// LogConfig configures console logging
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme"` // gruvbox, everforest
}

// ClangArgs returns the provider arguments: one -I per include path followed
// by the split clang_args
func (c *Config) ClangArgs() ([]string, error) {
	args := make([]string, 0, len(c.Generate.IncludePaths))
	for _, p := range c.Generate.IncludePaths {
		args = append(args, "-I"+p)
	}

	extra, err := shellquote.Split(c.Generate.ClangArgs)
	if err != nil {
		return nil, errors.Wrapf(err, "generate.clang_args %q", c.Generate.ClangArgs)
	}
	return append(args, extra...), nil
}
