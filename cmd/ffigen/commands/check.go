package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ffigen/bindgen"
	"github.com/teranos/ffigen/errors"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the generated file is up to date",
	Long: `Regenerate in memory and compare against generate.output on disk.

Prints a unified diff and exits non-zero when the file is out of date.
Intended for CI.

Examples:
  ffigen check
  ffigen check --provider snapshot --snapshot-dir testdata/ast`,
	RunE: runCheck,
}

func init() {
	addGenerateFlags(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Generate.Output == bindgen.StdoutPath {
		return errors.WithHint(errors.New("check needs an output file"),
			"set generate.output or pass --output")
	}

	result, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	check, err := bindgen.CheckOutput(cfg.Generate.Output, result.Output)
	if err != nil {
		return err
	}

	if check.UpToDate {
		pterm.Success.Printf("%s is up to date\n", cfg.Generate.Output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), check.Diff)
	return check.Err()
}
