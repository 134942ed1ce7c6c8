package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generate defaults
	v.SetDefault("generate.headers", []string{})
	v.SetDefault("generate.include_paths", []string{})
	v.SetDefault("generate.clang_args", "")
	v.SetDefault("generate.output", "-")
	v.SetDefault("generate.struct_suffix", "T")
	v.SetDefault("generate.main_file_only", true)
	v.SetDefault("generate.max_pointer_depth", 16)
	v.SetDefault("generate.strict", false)

	// Provider defaults
	v.SetDefault("provider.kind", ProviderLibclang)
	v.SetDefault("provider.snapshot_dir", "")

	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", "everforest")
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode
		panic(err)
	}
	return cfg
}
