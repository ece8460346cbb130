package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/devaun0506/blackstar/internal/progression"
	"github.com/devaun0506/blackstar/internal/store"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [result.json]",
	Short: "Record a completed shift",
	Long: `Record a completed shift from a JSON result file (or stdin when no
file is given), apply unlocks and milestones, and save a new profile
snapshot.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := readShiftResult(args)
		if err != nil {
			return err
		}
		if result.ShiftID == "" {
			result.ShiftID = uuid.NewString()
		}

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

		prog := progression.NewStore(catalog, data, st.EventRepo())
		outcome := prog.CompleteShift(ctx, result, time.Now())
		printOutcome(cmd, result.ShiftID, outcome)

		seq, err := st.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		err = st.SnapshotRepo().Save(ctx, &store.Snapshot{
			Sequence:  seq,
			Timestamp: time.Now(),
			Data: store.SnapshotData{
				Version:     1,
				Progression: prog.SnapshotData(),
			},
		})
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := st.SnapshotRepo().Prune(ctx, cfg.SnapshotKeep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
		return nil
	},
}

func readShiftResult(args []string) (progression.ShiftResult, error) {
	var result progression.ShiftResult

	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return result, fmt.Errorf("read shift result: %w", err)
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("decode shift result: %w", err)
	}
	return result, nil
}

func printOutcome(cmd *cobra.Command, shiftID string, outcome *progression.ShiftOutcome) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Shift %s recorded.\n", shiftID)

	for _, level := range outcome.DifficultyUnlocks {
		fmt.Fprintf(out, "Difficulty unlocked: %s\n", level)
	}
	for _, name := range outcome.SpecialtyUnlocks {
		fmt.Fprintf(out, "Specialty unlocked: %s\n", name)
	}
	for _, m := range outcome.Milestones {
		if m.Reward != "" {
			fmt.Fprintf(out, "Milestone: %s (%s)\n", m.Name, m.Reward)
		} else {
			fmt.Fprintf(out, "Milestone: %s\n", m.Name)
		}
	}
	if adj := outcome.Adjustment; adj != nil {
		fmt.Fprintf(out, "Difficulty scaling: %s (now %.2f)\n", adj.Kind, adj.Scaling)
	}
}
