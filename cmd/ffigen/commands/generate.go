package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ffigen/bindgen"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Deno FFI struct declarations from C headers",
	Long: `Parse the configured headers and write one TypeScript module of
Deno FFI struct descriptors.

Every struct definition becomes one block:

  export const CXStringT = {
    // Byte size: 16
    struct: [
      /** data, offset 0 */ ptr(void),
      /** private_flags, offset 8 */ uint,
    ],
  } as const;

Structs that cannot be described (bit-fields, nested records, unsupported
field types) are reported and skipped. Use --strict to fail instead.

Examples:
  ffigen generate                            # Use ffigen.toml
  ffigen generate -o -                       # Print to stdout
  ffigen generate --header include/foo.h     # Override the header list
  ffigen generate --provider snapshot --snapshot-dir testdata/ast`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(GenerateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("header", nil, "Headers to parse (overrides generate.headers)")
	cmd.Flags().StringP("output", "o", "", `Output file, "-" for stdout (overrides generate.output)`)
	cmd.Flags().Bool("strict", false, "Fail when any struct cannot be generated")
	cmd.Flags().String("suffix", "", "Suffix appended to struct names (overrides generate.struct_suffix)")
	cmd.Flags().String("provider", "", "AST provider: libclang or snapshot")
	cmd.Flags().String("snapshot-dir", "", "Directory of recorded AST snapshots")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig(cmd)
	if err != nil {
		return err
	}

	result, err := generate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if err := bindgen.WriteOutput(cfg.Generate.Output, result); err != nil {
		return err
	}

	reportResult(cfg.Generate.Output, result)
	return nil
}

func reportResult(output string, result *bindgen.Result) {
	target := output
	if target == bindgen.StdoutPath {
		target = "stdout"
	}
	pterm.Success.Printf("Generated %s (%d structs)\n", target, len(result.Structs))
	if n := len(result.Failures); n > 0 {
		pterm.Warning.Printf("%d struct(s) skipped due to errors:\n", n)
		for _, f := range result.Failures {
			pterm.Printf("  %s %s\n", pterm.Yellow(f.Struct), pterm.Gray(f.Err.Error()))
		}
	}
}
