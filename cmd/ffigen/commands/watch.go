package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ffigen/bindgen"
	"github.com/teranos/ffigen/clang/snapshot"
	"github.com/teranos/ffigen/config"
	"github.com/teranos/ffigen/logger"
	"github.com/teranos/ffigen/watch"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever a header or ffigen.toml changes",
	Long: `Generate once, then watch the configured headers and the config file
and regenerate on every change. With the snapshot provider the snapshot
files are watched instead of the headers.

Failed regenerations are logged; the previous output is left in place.

Examples:
  ffigen watch
  ffigen watch -v`,
	RunE: runWatch,
}

func init() {
	addGenerateFlags(WatchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	regenerate := func(ctx context.Context, changed []string) error {
		current, err := loadValidConfig(cmd)
		if err != nil {
			return err
		}
		result, err := generate(ctx, current)
		if err != nil {
			return err
		}
		if err := bindgen.WriteOutput(current.Generate.Output, result); err != nil {
			return err
		}
		reportResult(current.Generate.Output, result)
		return nil
	}

	if err := regenerate(ctx, nil); err != nil {
		pterm.Error.Printf("Initial generation failed: %v\n", err)
	}

	w, err := watch.New(watchedPaths(cfg), regenerate, logger.ComponentLogger("watch"))
	if err != nil {
		return err
	}
	defer w.Close()

	pterm.Info.Println("Watching for changes (Ctrl+C to stop)")
	return w.Run(ctx)
}

// watchedPaths lists the files whose changes affect the output
func watchedPaths(cfg *config.Config) []string {
	var paths []string
	if cfg.Provider.Kind == config.ProviderSnapshot {
		parser := snapshot.NewParser(cfg.Provider.SnapshotDir)
		for _, h := range cfg.Generate.Headers {
			paths = append(paths, parser.PathFor(h))
		}
	} else {
		paths = append(paths, cfg.Generate.Headers...)
	}

	if ConfigPath != "" {
		paths = append(paths, ConfigPath)
	} else if wd, err := os.Getwd(); err == nil {
		if project := config.FindProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}

	for i, p := range paths {
		paths[i] = filepath.Clean(p)
	}
	return paths
}
