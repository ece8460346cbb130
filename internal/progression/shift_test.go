package progression

import (
	"math"
	"testing"
	"time"

	"github.com/devaun0506/blackstar/internal/adaptive"
	"github.com/devaun0506/blackstar/internal/clinical"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestCompleteShiftAccumulates(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{
		QuestionsAnswered: 20,
		Accuracy:          fptr(0.8),
		Streak:            iptr(6),
		Specialties: map[string]SpecialtyResult{
			"Internal Medicine": {Questions: 20, Correct: 16, MissedTopics: []string{"Pneumonia"}},
		},
	}, now)

	if got := s.ShiftsCompleted(); got != 1 {
		t.Errorf("ShiftsCompleted() = %d, want 1", got)
	}
	if got := s.TotalQuestions(); got != 20 {
		t.Errorf("TotalQuestions() = %d, want 20", got)
	}
	// First shift: weight (n-1)/n = 0, so accuracy lands on the shift value.
	if got := s.OverallAccuracy(); got != 0.8 {
		t.Errorf("OverallAccuracy() = %v, want 0.8", got)
	}
	if got := s.CurrentStreak(); got != 6 {
		t.Errorf("CurrentStreak() = %d, want 6", got)
	}
	if got := s.BestStreak(); got != 6 {
		t.Errorf("BestStreak() = %d, want 6", got)
	}

	p, ok := s.Performance("Internal Medicine")
	if !ok {
		t.Fatal("Performance(Internal Medicine) missing")
	}
	if p.QuestionsSeen != 20 || p.CorrectAnswers != 16 {
		t.Errorf("performance = %d seen, %d correct, want 20, 16", p.QuestionsSeen, p.CorrectAnswers)
	}
	if !p.WeakTopics["Pneumonia"] {
		t.Error("Pneumonia not flagged weak")
	}
	if !p.LastPracticed.Equal(now) {
		t.Errorf("LastPracticed = %v, want %v", p.LastPracticed, now)
	}
}

func TestCompleteShiftMovingAverage(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.6)}, now)
	s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.9)}, now)

	// Shift 2: 0.6 * 1/2 + 0.9 * 1/2 = 0.75.
	if got := s.OverallAccuracy(); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("OverallAccuracy() after two shifts = %v, want 0.75", got)
	}

	s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.9)}, now)
	// Shift 3: 0.75 * 2/3 + 0.9 * 1/3 = 0.8.
	if got := s.OverallAccuracy(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("OverallAccuracy() after three shifts = %v, want 0.8", got)
	}
}

func TestCompleteShiftOptionalFields(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.9), Streak: iptr(8)}, now)
	outcome := s.CompleteShift(t.Context(), ShiftResult{QuestionsAnswered: 5}, now)

	// Absent accuracy: no average update, no scaling adjustment.
	if got := s.OverallAccuracy(); got != 0.9 {
		t.Errorf("OverallAccuracy() = %v, want unchanged 0.9", got)
	}
	if outcome.Adjustment != nil {
		t.Errorf("Adjustment = %+v, want nil without accuracy", outcome.Adjustment)
	}
	// Absent streak leaves both streak fields alone.
	if s.CurrentStreak() != 8 || s.BestStreak() != 8 {
		t.Errorf("streaks = %d/%d, want 8/8", s.CurrentStreak(), s.BestStreak())
	}
	// The shift itself still counts.
	if got := s.ShiftsCompleted(); got != 2 {
		t.Errorf("ShiftsCompleted() = %d, want 2", got)
	}
}

func TestCompleteShiftLowerStreakKeepsBest(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{Streak: iptr(12)}, now)
	s.CompleteShift(t.Context(), ShiftResult{Streak: iptr(3)}, now)

	if got := s.CurrentStreak(); got != 3 {
		t.Errorf("CurrentStreak() = %d, want 3", got)
	}
	if got := s.BestStreak(); got != 12 {
		t.Errorf("BestStreak() = %d, want 12", got)
	}
}

func TestCompleteShiftUnknownSpecialtySkipped(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)

	s.CompleteShift(t.Context(), ShiftResult{
		QuestionsAnswered: 10,
		Specialties: map[string]SpecialtyResult{
			"Astral Medicine": {Questions: 10, Correct: 5},
		},
	}, time.Now())

	if _, ok := s.Performance("Astral Medicine"); ok {
		t.Error("unknown specialty gained a performance record")
	}
	if got := s.TotalQuestions(); got != 10 {
		t.Errorf("TotalQuestions() = %d, want 10", got)
	}
}

func TestDifficultyUnlockProgression(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	var unlocks []clinical.Level
	for i := 0; i < 5; i++ {
		outcome := s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 60,
			Accuracy:          fptr(0.8),
			Streak:            iptr(10),
		}, now)
		unlocks = append(unlocks, outcome.DifficultyUnlocks...)
	}

	// Resident arrives on shift 5; Attending needs 12 shifts and 150+ more
	// questions, so it must not ride along.
	if len(unlocks) != 1 || unlocks[0] != clinical.LevelResident {
		t.Fatalf("difficulty unlocks = %v, want [Resident]", unlocks)
	}

	got := s.UnlockedDifficulties()
	if len(got) != 2 || got[0] != clinical.LevelIntern || got[1] != clinical.LevelResident {
		t.Errorf("UnlockedDifficulties() = %v, want prefix [Intern Resident]", got)
	}
}

func TestDifficultyUnlocksStayPrefix(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	// Stats that satisfy Attending on paper, long before Resident's shift
	// count: Attending still must not unlock ahead of Resident.
	for i := 0; i < 20; i++ {
		s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 30,
			Accuracy:          fptr(0.9),
			Streak:            iptr(15),
		}, now)

		levels := s.UnlockedDifficulties()
		for j := 1; j < len(levels); j++ {
			if levels[j] != levels[j-1]+1 {
				t.Fatalf("unlocked set %v is not a prefix after shift %d", levels, i+1)
			}
		}
	}

	// By shift 20 everything is open.
	if got := s.UnlockedDifficulties(); len(got) != 3 {
		t.Errorf("UnlockedDifficulties() = %v, want all three", got)
	}
}

func TestSpecialtyUnlockChain(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	var unlocked []string
	for i := 0; i < 5; i++ {
		outcome := s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 60,
			Accuracy:          fptr(0.8),
			Streak:            iptr(10),
			Specialties: map[string]SpecialtyResult{
				"Internal Medicine": {Questions: 60, Correct: 54},
			},
		}, now)
		unlocked = append(unlocked, outcome.SpecialtyUnlocks...)
	}

	// Emergency Medicine opens on shift 3 (3 shifts, accuracy 0.8 >= 0.65).
	// Cardiology needs Resident, which opens on shift 5, plus IM mastery
	// 0.8: by shift 5 IM has 300 questions at 0.9, mastery = 1 * 0.9 = 0.9.
	// Specialty checks run after difficulty checks, so Cardiology opens on
	// the same shift Resident does.
	want := []string{"Emergency Medicine", "Cardiology"}
	if len(unlocked) != len(want) {
		t.Fatalf("specialty unlocks = %v, want %v", unlocked, want)
	}
	for i := range want {
		if unlocked[i] != want[i] {
			t.Errorf("unlock[%d] = %q, want %q", i, unlocked[i], want[i])
		}
	}
}

func TestMilestonesFireOnce(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	outcome := s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.5)}, now)
	found := false
	for _, m := range outcome.Milestones {
		if m.ID == "first_shift" {
			found = true
		}
	}
	if !found {
		t.Fatal("first_shift did not fire on shift 1")
	}

	outcome = s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.5)}, now)
	for _, m := range outcome.Milestones {
		if m.ID == "first_shift" {
			t.Error("first_shift fired twice")
		}
	}
}

func TestCompleteShiftScalingAdjustment(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	outcome := s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.95)}, now)
	if outcome.Adjustment == nil || outcome.Adjustment.Kind != adaptive.AdjustIncrease {
		t.Fatalf("Adjustment = %+v, want increase", outcome.Adjustment)
	}
	if got := s.DifficultyScaling(); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("DifficultyScaling() = %v, want 1.05", got)
	}

	outcome = s.CompleteShift(t.Context(), ShiftResult{Accuracy: fptr(0.75)}, now)
	if outcome.Adjustment != nil {
		t.Errorf("Adjustment at target accuracy = %+v, want nil", outcome.Adjustment)
	}
}

func TestCompleteShiftRecordsAnswers(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{
		Questions: []QuestionResult{
			{Topic: "Pneumonia", Correct: false},
			{Topic: "Pneumonia", Correct: false},
			{Topic: "COPD Exacerbation", Correct: true},
		},
	}, now)

	if w, _ := s.TopicWeight("Pneumonia"); math.Abs(w-2.25) > 1e-9 {
		t.Errorf("TopicWeight(Pneumonia) = %v, want 2.25", w)
	}
	if w, _ := s.TopicWeight("COPD Exacerbation"); math.Abs(w-0.95) > 1e-9 {
		t.Errorf("TopicWeight(COPD Exacerbation) = %v, want 0.95", w)
	}
}
