package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ecworks/groundcover/pkg/rules"
	"ecworks/groundcover/pkg/rules/source"
)

var watchFile string

var rulesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a custom rule file and revalidate on change",
	Long: `Watch a custom rule file and revalidate the merged rule set whenever
it changes. Useful while authoring jurisdiction rules: save the file and
see validation results immediately. Runs until interrupted.`,
	RunE: runRulesWatch,
}

func init() {
	rulesWatchCmd.Flags().StringVarP(&watchFile, "file", "f", "", "rule file to watch")
	rulesWatchCmd.MarkFlagRequired("file")
	rulesCmd.AddCommand(rulesWatchCmd)
}

func runRulesWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	src := source.NewFileSource(watchFile)
	revalidate := func() error {
		custom, err := src.Load()
		if err != nil {
			fmt.Println(err)
			return err
		}
		if _, err := rules.NewRepository(custom); err != nil {
			fmt.Println(err)
			return err
		}
		fmt.Printf("%s: %d rule(s), no problems found\n", watchFile, len(custom))
		return nil
	}

	// Validate once before settling into the watch loop.
	revalidate()

	watcher, err := source.NewWatcher(watchFile, cfg.Rules.WatchDebounce, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, revalidate)
}
