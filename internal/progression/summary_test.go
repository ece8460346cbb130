package progression

import (
	"testing"
	"time"

	"github.com/devaun0506/blackstar/internal/clinical"
)

func TestSummaryFreshProfile(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	sum := s.Summary()

	if sum.CurrentDifficulty != "Intern" {
		t.Errorf("CurrentDifficulty = %q, want Intern", sum.CurrentDifficulty)
	}
	if sum.UnlockedDifficulties != 1 || sum.UnlockedSpecialties != 1 {
		t.Errorf("unlocked counts = %d/%d, want 1/1", sum.UnlockedDifficulties, sum.UnlockedSpecialties)
	}

	next := sum.NextUnlock
	if next == nil || next.Kind != "difficulty" || next.Name != "Resident" {
		t.Fatalf("NextUnlock = %+v, want difficulty Resident", next)
	}
	if got := next.Progress["shifts"]; got != 0 {
		t.Errorf("shifts progress = %v, want 0", got)
	}
}

func TestSummaryNextUnlockAdvances(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	s.CompleteShift(t.Context(), ShiftResult{
		QuestionsAnswered: 25,
		Accuracy:          fptr(0.8),
	}, now)

	next := s.Summary().NextUnlock
	if next == nil || next.Name != "Resident" {
		t.Fatalf("NextUnlock = %+v, want Resident", next)
	}
	if got := next.Progress["shifts"]; got != 0.2 {
		t.Errorf("shifts progress = %v, want 0.2", got)
	}
	if got := next.Progress["questions"]; got != 0.5 {
		t.Errorf("questions progress = %v, want 0.5", got)
	}
}

func TestSummarySpecialtyAfterAllDifficulties(t *testing.T) {
	s := NewStore(testCatalog(t), nil, nil)
	now := time.Now()

	// Grind until every difficulty is open. Emergency Medicine opens along
	// the way, leaving Cardiology as the next specialty unlock.
	for i := 0; i < 20; i++ {
		s.CompleteShift(t.Context(), ShiftResult{
			QuestionsAnswered: 30,
			Accuracy:          fptr(0.9),
			Streak:            iptr(15),
		}, now)
	}
	if got := len(s.UnlockedDifficulties()); got != len(clinical.AllLevels()) {
		t.Fatalf("unlocked difficulties = %d, want all", got)
	}

	next := s.Summary().NextUnlock
	if next == nil || next.Kind != "specialty" || next.Name != "Cardiology" {
		t.Fatalf("NextUnlock = %+v, want specialty Cardiology", next)
	}
	// Resident is unlocked so the difficulty gate reads full; IM mastery is
	// zero because no specialty breakdowns were reported.
	if got := next.Progress["difficulty"]; got != 1 {
		t.Errorf("difficulty progress = %v, want 1", got)
	}
	if got := next.Progress["mastery"]; got != 0 {
		t.Errorf("mastery progress = %v, want 0", got)
	}
}
