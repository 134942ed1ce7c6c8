package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/ffigen/errors"
)

// Options locate configuration files. Zero values use the working directory
// and the user's home directory.
type Options struct {
	// Path is an explicit config file; it replaces the upward search
	Path string
	// Dir starts the upward search for ffigen.toml
	Dir string
	// Home holds .ffigen/ffigen.toml
	Home string
}

// NewViper builds a Viper instance with defaults, merged config files and
// environment binding. The returned Sources record which file set each key.
func NewViper(opts Options) (*viper.Viper, Sources, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Set up environment variable binding
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	sources := make(Sources)
	for _, file := range configFiles(opts) {
		if err := mergeFile(v, file, sources); err != nil {
			return nil, nil, err
		}
	}
	return v, sources, nil
}

// Load reads the configuration from all sources
func Load(opts Options) (*Config, error) {
	v, _, err := NewViper(opts)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path, ignoring the
// environment and other config files
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadWithViper(v)
}

// FindProjectConfig walks up from dir looking for ffigen.toml.
// Returns an empty string if none is found.
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// UserConfigPath returns ~/.ffigen/ffigen.toml for home
func UserConfigPath(home string) string {
	return filepath.Join(home, ".ffigen", FileName)
}

type configFile struct {
	path   string
	source ConfigSource
}

// configFiles lists existing config files, lowest precedence first
func configFiles(opts Options) []configFile {
	home := opts.Home
	if home == "" {
		home, _ = os.UserHomeDir()
	}

	var files []configFile
	if home != "" {
		user := UserConfigPath(home)
		if _, err := os.Stat(user); err == nil {
			files = append(files, configFile{path: user, source: SourceUser})
		}
	}

	if opts.Path != "" {
		// An explicit path must exist; mergeFile reports it otherwise
		return append(files, configFile{path: opts.Path, source: SourceExplicit})
	}

	dir := opts.Dir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir != "" {
		if project := FindProjectConfig(dir); project != "" {
			files = append(files, configFile{path: project, source: SourceProject})
		}
	}
	return files
}

func mergeFile(v *viper.Viper, file configFile, sources Sources) error {
	fileViper := viper.New()
	fileViper.SetConfigFile(file.path)
	fileViper.SetConfigType("toml")
	if err := fileViper.ReadInConfig(); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "failed to read config file %s", file.path),
			"check the TOML syntax or run `ffigen config init` for a starter file")
	}

	if err := v.MergeConfigMap(fileViper.AllSettings()); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", file.path)
	}
	for _, key := range fileViper.AllKeys() {
		sources[key] = SourceInfo{Source: file.source, Path: file.path}
	}
	return nil
}
