package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/ffigen/config"
	"github.com/teranos/ffigen/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ffigen configuration",
	Long: `Display, validate and create ffigen configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (FFIGEN_* prefix, e.g. FFIGEN_GENERATE_OUTPUT)
3. Project config (ffigen.toml, searched upward) or --config
4. User config (~/.ffigen/ffigen.toml)
5. Default values

Examples:
  ffigen config show                   # Show current configuration
  ffigen config show --format yaml     # Show configuration as YAML
  ffigen config show --sources         # Show where each value came from
  ffigen config validate               # Validate current configuration
  ffigen config init include/foo.h     # Write a starter ffigen.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init [header...]",
	Short: "Write a starter ffigen.toml",
	Long:  "Write a starter ffigen.toml in the current directory. An existing file is kept as ffigen.toml.back1.",
	RunE:  runConfigInit,
}

var (
	configFormat  string
	configSources bool
	configForce   bool
)

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	configShowCmd.Flags().BoolVar(&configSources, "sources", false, "Show the source of every setting")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing ffigen.toml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, v, sources, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if configSources {
		for _, s := range config.Introspect(v, sources) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-14v %s\n", s.Key, s.Value, pterm.Gray(fmt.Sprintf("%s %s", s.Source, s.SourcePath)))
		}
		return nil
	}

	data, err := marshalConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to JSON")
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to YAML")
		}
		return append([]byte("# ffigen configuration\n"), data...), nil
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal config to TOML")
		}
		return append([]byte("# ffigen configuration\n"), data...), nil
	default:
		return nil, errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, _, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	pterm.Success.Println("Configuration is valid")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if ConfigPath != "" {
		path = ConfigPath
	}

	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.WithHint(errors.Newf("%s already exists", path),
			"pass --force to overwrite it (a .back1 backup is kept)")
	}

	if err := config.WriteDefault(path, args); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}
