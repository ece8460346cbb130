package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devaun0506/blackstar/internal/progression"
	"github.com/devaun0506/blackstar/internal/store"
	"github.com/devaun0506/blackstar/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career progression",
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
		summary := prog.Summary()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Title.Render("Career"))
		fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Difficulty:"), ui.Value.Render(summary.CurrentDifficulty))
		fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Shifts:"), ui.Value.Render(fmt.Sprintf("%d", summary.ShiftsCompleted)))
		fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Questions:"), ui.Value.Render(fmt.Sprintf("%d", summary.TotalQuestions)))
		fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Accuracy:"), ui.Value.Render(fmt.Sprintf("%.0f%%", summary.OverallAccuracy*100)))
		fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Best streak:"), ui.Value.Render(fmt.Sprintf("%d", summary.BestStreak)))

		last, err := st.EventRepo().LatestShiftTime(ctx)
		if err == nil && !last.IsZero() {
			fmt.Fprintf(out, "%s %s\n", ui.Label.Render("Last shift:"), ui.Value.Render(last.Local().Format("2006-01-02 15:04")))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Title.Render("Specialties"))
		for _, sp := range catalog.Specialties() {
			if prog.IsSpecialtyUnlocked(sp.Name) {
				mastery := prog.SpecialtyMastery(sp.Name)
				fmt.Fprintf(out, "%s  %s\n", ui.Unlocked.Render(sp.Name), ui.Bar(mastery, 20))
			} else {
				fmt.Fprintf(out, "%s\n", ui.Locked.Render(sp.Name+" (locked)"))
			}
		}

		if next := summary.NextUnlock; next != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.Title.Render("Next unlock: "+next.Name))
			keys := make([]string, 0, len(next.Progress))
			for k := range next.Progress {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%s  %s\n", ui.Label.Render(fmt.Sprintf("%-10s", k)), ui.Bar(next.Progress[k], 20))
			}
		}

		return nil
	},
}
