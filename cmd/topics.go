package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/devaun0506/blackstar/internal/progression"
	"github.com/devaun0506/blackstar/internal/store"
	"github.com/devaun0506/blackstar/internal/ui"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [specialty]",
	Short: "Show topic priority scores",
	Long: `Show adaptive priority scores for question topics, highest first.
With a specialty argument, only that specialty's topics are scored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		var topics []string
		if len(args) == 1 {
			sp, ok := catalog.Specialty(args[0])
			if !ok {
				return fmt.Errorf("unknown specialty %q", args[0])
			}
			topics = sp.Topics
		} else {
			topics = catalog.Topics()
		}

		ctx := cmd.Context()
		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var data *store.SnapshotData
		if snap != nil {
			data = &snap.Data
		}

		prog := progression.NewStore(catalog, data, nil)
		scores := prog.ScoreTopics(topics, time.Now())

		sorted := make([]string, 0, len(scores))
		for t := range scores {
			sorted = append(sorted, t)
		}
		sort.Slice(sorted, func(i, j int) bool {
			if scores[sorted[i]] != scores[sorted[j]] {
				return scores[sorted[i]] > scores[sorted[j]]
			}
			return sorted[i] < sorted[j]
		})

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title.Render("Topic priorities"))
		for _, t := range sorted {
			fmt.Fprintf(out, "%s  %s\n", ui.Value.Render(fmt.Sprintf("%6.2f", scores[t])), ui.Label.Render(t))
		}
		return nil
	},
}
