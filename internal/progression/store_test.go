package progression

import (
	"testing"
	"time"

	"github.com/devaun0506/blackstar/internal/clinical"
)

func testCatalog(t *testing.T) *clinical.Catalog {
	t.Helper()
	c, err := clinical.New([]clinical.Specialty{
		{Name: "Internal Medicine", Topics: []string{"Pneumonia", "COPD Exacerbation"}},
		{
			Name:        "Emergency Medicine",
			Topics:      []string{"Trauma Triage"},
			Requirement: &clinical.Requirement{MinShifts: 3, MinAccuracy: 0.65},
		},
		{
			Name:   "Cardiology",
			Topics: []string{"Acute MI"},
			Requirement: &clinical.Requirement{
				RequiredDifficulty: "Resident",
				RequiredMastery:    &clinical.MasteryRef{Specialty: "Internal Medicine", Threshold: 0.8},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)

	if got := s.CurrentDifficulty(); got != clinical.LevelIntern {
		t.Errorf("CurrentDifficulty() = %v, want Intern", got)
	}
	if got := s.UnlockedDifficulties(); len(got) != 1 || got[0] != clinical.LevelIntern {
		t.Errorf("UnlockedDifficulties() = %v, want [Intern]", got)
	}
	if got := s.UnlockedSpecialties(); len(got) != 1 || got[0] != "Internal Medicine" {
		t.Errorf("UnlockedSpecialties() = %v, want [Internal Medicine]", got)
	}
	if s.ShiftsCompleted() != 0 || s.TotalQuestions() != 0 || s.OverallAccuracy() != 0 {
		t.Errorf("fresh store has nonzero stats: %d %d %v",
			s.ShiftsCompleted(), s.TotalQuestions(), s.OverallAccuracy())
	}
	if got := s.DifficultyScaling(); got != 1.0 {
		t.Errorf("DifficultyScaling() = %v, want 1.0", got)
	}
	if w, ok := s.TopicWeight("Pneumonia"); !ok || w != 1.0 {
		t.Errorf("TopicWeight(Pneumonia) = %v, %v, want 1.0, true", w, ok)
	}
}

func TestSetCurrentDifficulty(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)

	if s.SetCurrentDifficulty(clinical.LevelResident) {
		t.Error("SetCurrentDifficulty(Resident) = true on a fresh profile")
	}
	if got := s.CurrentDifficulty(); got != clinical.LevelIntern {
		t.Errorf("CurrentDifficulty() = %v after refused switch, want Intern", got)
	}

	// Unlock Resident by playing enough.
	acc := 0.8
	streak := 10
	for i := 0; i < 5; i++ {
		s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 60,
			Accuracy:          &acc,
			Streak:            &streak,
		}, time.Now())
	}

	if !s.SetCurrentDifficulty(clinical.LevelResident) {
		t.Error("SetCurrentDifficulty(Resident) = false after unlock")
	}
	if got := s.CurrentDifficulty(); got != clinical.LevelResident {
		t.Errorf("CurrentDifficulty() = %v, want Resident", got)
	}
}

func TestScoreTopicsUsesWeakTopics(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	acc := 0.7
	s.CompleteShift(t.Context(), ShiftResult{
		QuestionsAnswered: 10,
		Accuracy:          &acc,
		Specialties: map[string]SpecialtyResult{
			"Internal Medicine": {Questions: 10, Correct: 7, MissedTopics: []string{"Pneumonia"}},
		},
	}, now)

	scores := s.ScoreTopics([]string{"Pneumonia", "COPD Exacerbation"}, now)
	if scores["Pneumonia"] <= scores["COPD Exacerbation"] {
		t.Errorf("weak topic Pneumonia (%v) not scored above COPD Exacerbation (%v)",
			scores["Pneumonia"], scores["COPD Exacerbation"])
	}
}
