package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyJSON  bool
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recent builds from the render journal",
	Long: `Lists recent render runs, newest first. With a run id, shows the outcome
of every section in that run. --prune deletes runs older than the given age.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openJournal(cfg)
		if err != nil {
			return err
		}
		if store == nil {
			return fmt.Errorf("the render journal is disabled (journal.path is empty)")
		}
		defer database.Close()
		ctx := context.Background()

		if historyPrune > 0 {
			n, err := store.DeleteBefore(ctx, time.Now().Add(-historyPrune))
			if err != nil {
				return err
			}
			fmt.Printf("Pruned %d run(s)\n", n)
			return nil
		}

		if len(args) == 1 {
			run, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if historyJSON {
				return printJSON(run)
			}
			fmt.Printf("Run %s (%s, %s, %s)\n", run.ID, run.Trigger, run.StartedAt.Local().Format(time.DateTime), run.Duration)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SECTION\tSTATUS\tDURATION\tERROR")
			for _, o := range run.Sections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.Section, o.Status, o.Duration, o.Error)
			}
			return w.Flush()
		}

		runs, err := store.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}
		if historyJSON {
			return printJSON(runs)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet. Run `folio build` first.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTARTED\tTRIGGER\tDURATION\tFAILED\tSOURCE")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
				r.ID, r.StartedAt.Local().Format(time.DateTime), r.Trigger, r.Duration, r.FailedSections, r.Source)
		}
		return w.Flush()
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print JSON")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete runs older than this age (e.g. 720h)")
	rootCmd.AddCommand(historyCmd)
}
