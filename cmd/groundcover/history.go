package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ecworks/groundcover/pkg/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past evaluations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded evaluations, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full output of a recorded evaluation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove evaluations older than the retention window",
	RunE:  runHistoryPrune,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum records to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openHistoryStore(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROJECT\tJURISDICTION\tEVALUATED\tPRACTICES\tCOST")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t$%.2f\n",
			r.ID, r.ProjectName, r.Jurisdiction,
			r.EvaluatedAt.Format("2006-01-02 15:04"),
			r.PracticeCount, r.TotalEstimatedCost)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openHistoryStore(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(record.OutputJSON)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	store, err := openHistoryStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	pruner := history.NewPruner(store, history.RetentionConfig{
		RetentionDays: cfg.History.RetentionDays,
	}, logger)

	deleted, err := pruner.Prune(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("removed %d record(s)\n", deleted)
	return nil
}
