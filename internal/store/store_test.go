package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progression: &ProgressionSnapshotData{
				CurrentDifficulty: "Resident",
				ShiftsCompleted:   7,
				Weights:           &AdaptiveWeightsData{DifficultyScaling: 1.1},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	prog := snap.Data.Progression
	if prog == nil || prog.CurrentDifficulty != "Resident" || prog.ShiftsCompleted != 7 {
		t.Errorf("progression = %+v", prog)
	}
	if prog.Weights == nil || prog.Weights.DifficultyScaling != 1.1 {
		t.Errorf("weights = %+v", prog.Weights)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.NextSequence(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventRepoShiftEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	last, err := repo.LatestShiftTime(ctx)
	if err != nil {
		t.Fatalf("latest shift time (empty): %v", err)
	}
	if !last.IsZero() {
		t.Errorf("latest shift time = %v, want zero", last)
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendShiftEvent(ctx, ShiftEventData{
			ShiftID:   "shift-1",
			Questions: 20,
			Accuracy:  0.8,
			Streak:    6,
		})
		if err != nil {
			t.Fatalf("append shift %d: %v", i, err)
		}
	}

	count, err := repo.ShiftCount(ctx)
	if err != nil {
		t.Fatalf("shift count: %v", err)
	}
	if count != 3 {
		t.Errorf("shift count = %d, want 3", count)
	}

	last, err = repo.LatestShiftTime(ctx)
	if err != nil {
		t.Fatalf("latest shift time: %v", err)
	}
	if last.IsZero() {
		t.Error("latest shift time still zero after appends")
	}
}

func TestEventRepoUnlockAndMilestone(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendUnlockEvent(ctx, UnlockEventData{Kind: "difficulty", Name: "Resident"})
	if err != nil {
		t.Fatalf("append unlock without shift id: %v", err)
	}
	err = repo.AppendUnlockEvent(ctx, UnlockEventData{ShiftID: "shift-1", Kind: "specialty", Name: "Cardiology"})
	if err != nil {
		t.Fatalf("append unlock: %v", err)
	}

	err = repo.AppendMilestoneEvent(ctx, MilestoneEventData{
		ShiftID:     "shift-1",
		MilestoneID: "first_shift",
		Reward:      "White coat",
	})
	if err != nil {
		t.Fatalf("append milestone: %v", err)
	}

	unlocks, err := s.Client().UnlockEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count unlocks: %v", err)
	}
	if unlocks != 2 {
		t.Errorf("unlock events = %d, want 2", unlocks)
	}
}
