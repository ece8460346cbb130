package progression

import (
	"testing"
	"time"

	"github.com/devaun0506/blackstar/internal/clinical"
	"github.com/devaun0506/blackstar/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	catalog := testCatalog(t)
	s := NewStore(catalog, nil, nil)
	now := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 60,
			Accuracy:          fptr(0.8),
			Streak:            iptr(10),
			Specialties: map[string]SpecialtyResult{
				"Internal Medicine": {Questions: 60, Correct: 48, MissedTopics: []string{"Pneumonia"}},
			},
			Questions: []QuestionResult{{Topic: "Pneumonia", Correct: false}},
		}, now)
	}
	if !s.SetCurrentDifficulty(clinical.LevelResident) {
		t.Fatal("Resident not unlocked in setup")
	}

	restored := NewStore(catalog, &store.SnapshotData{Version: 1, Progression: s.SnapshotData()}, nil)

	if got := restored.CurrentDifficulty(); got != clinical.LevelResident {
		t.Errorf("CurrentDifficulty() = %v, want Resident", got)
	}
	if got, want := restored.UnlockedDifficulties(), s.UnlockedDifficulties(); len(got) != len(want) {
		t.Errorf("UnlockedDifficulties() = %v, want %v", got, want)
	}
	if got, want := restored.UnlockedSpecialties(), s.UnlockedSpecialties(); len(got) != len(want) {
		t.Errorf("UnlockedSpecialties() = %v, want %v", got, want)
	}
	if restored.ShiftsCompleted() != s.ShiftsCompleted() ||
		restored.TotalQuestions() != s.TotalQuestions() ||
		restored.OverallAccuracy() != s.OverallAccuracy() ||
		restored.CurrentStreak() != s.CurrentStreak() ||
		restored.BestStreak() != s.BestStreak() {
		t.Error("cumulative stats did not survive the round trip")
	}

	p, ok := restored.Performance("Internal Medicine")
	if !ok {
		t.Fatal("Performance(Internal Medicine) missing after restore")
	}
	if p.QuestionsSeen != 300 || p.CorrectAnswers != 240 {
		t.Errorf("performance = %d/%d, want 300/240", p.QuestionsSeen, p.CorrectAnswers)
	}
	if !p.WeakTopics["Pneumonia"] {
		t.Error("weak topic lost in round trip")
	}
	if !p.LastPracticed.Equal(now) {
		t.Errorf("LastPracticed = %v, want %v", p.LastPracticed, now)
	}

	if got, want := restored.DifficultyScaling(), s.DifficultyScaling(); got != want {
		t.Errorf("DifficultyScaling() = %v, want %v", got, want)
	}
	gw, _ := restored.TopicWeight("Pneumonia")
	ww, _ := s.TopicWeight("Pneumonia")
	if gw != ww {
		t.Errorf("TopicWeight(Pneumonia) = %v, want %v", gw, ww)
	}

	// Restored milestones stay fired.
	outcome := restored.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.8)}, now)
	for _, m := range outcome.Milestones {
		if m.ID == "first_shift" {
			t.Error("first_shift fired again after restore")
		}
	}
}

func TestLoadSnapshotIgnoresUnknownNames(t *testing.T) {
	catalog := testCatalog(t)
	ts := time.Now().UTC().Format(time.RFC3339)

	s := NewStore(catalog, &store.SnapshotData{
		Version: 1,
		Progression: &store.ProgressionSnapshotData{
			CurrentDifficulty:    "Chief",
			UnlockedDifficulties: []string{"Intern", "Chief"},
			UnlockedSpecialties:  []string{"Internal Medicine", "Astral Medicine"},
			Specialties: map[string]*store.SpecialtyPerformanceData{
				"Astral Medicine": {QuestionsSeen: 10, CorrectAnswers: 5, LastPracticed: &ts},
			},
			Weights: &store.AdaptiveWeightsData{
				TopicWeight:       map[string]float64{"Astral Projection": 3.0},
				DifficultyScaling: 9.5, // out of range, ignored
			},
		},
	}, nil)

	if got := s.CurrentDifficulty(); got != clinical.LevelIntern {
		t.Errorf("CurrentDifficulty() = %v, want Intern", got)
	}
	if got := s.UnlockedSpecialties(); len(got) != 1 {
		t.Errorf("UnlockedSpecialties() = %v, want only Internal Medicine", got)
	}
	if _, ok := s.Performance("Astral Medicine"); ok {
		t.Error("unknown specialty restored")
	}
	if _, ok := s.TopicWeight("Astral Projection"); ok {
		t.Error("unknown topic weight restored")
	}
	if got := s.DifficultyScaling(); got != 1.0 {
		t.Errorf("DifficultyScaling() = %v, want default 1.0", got)
	}
}

func TestLoadSnapshotLockedCurrentDifficulty(t *testing.T) {
	// A snapshot claiming a current difficulty outside the unlocked set
	// falls back to Intern.
	s := NewStore(testCatalog(t), &store.SnapshotData{
		Version: 1,
		Progression: &store.ProgressionSnapshotData{
			CurrentDifficulty:    "Attending",
			UnlockedDifficulties: []string{"Intern", "Resident"},
		},
	}, nil)

	if got := s.CurrentDifficulty(); got != clinical.LevelIntern {
		t.Errorf("CurrentDifficulty() = %v, want Intern fallback", got)
	}
	if got := s.UnlockedDifficulties(); len(got) != 2 {
		t.Errorf("UnlockedDifficulties() = %v, want [Intern Resident]", got)
	}
}
