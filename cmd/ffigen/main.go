package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ffigen/cmd/ffigen/commands"
	"github.com/teranos/ffigen/errors"
	"github.com/teranos/ffigen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ffigen",
	Short: "ffigen - Deno FFI bindings from C headers",
	Long: `ffigen - Generate Deno FFI struct declarations from C headers.

ffigen parses headers with libclang (or replays recorded AST snapshots) and
writes struct layouts with byte offsets and rendered documentation.

Available commands:
  generate - Generate struct declarations
  check    - Verify the generated file is up to date
  watch    - Regenerate on header or config changes
  dump     - Record a header's AST as a YAML snapshot
  config   - Show, validate or create ffigen.toml
  version  - Show version information

Examples:
  ffigen config init include/clang-c/CXString.h
  ffigen generate
  ffigen check`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(commands.Verbosity, commands.JSONLogs); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Logger.Debugw("Logger initialized", logger.FieldVerbosity, logger.LevelName(commands.Verbosity))
		return nil
	},
}

func init() {
	// Status output goes to stderr; stdout carries generated code
	pterm.SetDefaultOutput(os.Stderr)

	rootCmd.PersistentFlags().CountVarP(&commands.Verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().StringVar(&commands.ConfigPath, "config", "", "Config file (default: ffigen.toml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&commands.JSONLogs, "json-logs", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.DumpCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		pterm.Error.Println(err.Error())
		for _, hint := range errors.GetAllHints(err) {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}
