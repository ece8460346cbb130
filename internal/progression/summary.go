package progression

import "github.com/devaun0506/blackstar/internal/unlock"

// Summary is the display-facing view of a profile's progression.
type Summary struct {
	CurrentDifficulty    string
	UnlockedDifficulties int
	UnlockedSpecialties  int
	ShiftsCompleted      int
	TotalQuestions       int
	OverallAccuracy      float64
	BestStreak           int
	NextUnlock           *NextUnlock
}

// NextUnlock describes the single next-closest unlock with normalized
// progress (0..1) per requirement field.
type NextUnlock struct {
	Kind     string // "difficulty" or "specialty"
	Name     string
	Progress map[string]float64
}

// Summary builds the progression summary. The next unlock is the first
// reachable locked difficulty level; if every level is open, the first
// locked specialty in catalog order.
func (s *Store) Summary() Summary {
	sum := Summary{
		CurrentDifficulty:    s.currentDifficulty.String(),
		UnlockedDifficulties: len(s.UnlockedDifficulties()),
		UnlockedSpecialties:  len(s.UnlockedSpecialties()),
		ShiftsCompleted:      s.shiftsCompleted,
		TotalQuestions:       s.totalQuestions,
		OverallAccuracy:      s.overallAccuracy,
		BestStreak:           s.bestStreak,
		NextUnlock:           s.nextUnlock(),
	}
	return sum
}

func (s *Store) nextUnlock() *NextUnlock {
	stats := s.stats()

	if req, ok := unlock.NextDifficulty(s.unlockedDifficulties); ok {
		return &NextUnlock{
			Kind:     "difficulty",
			Name:     req.Level.String(),
			Progress: unlock.DifficultyProgress(req, stats),
		}
	}

	for _, sp := range s.catalog.Specialties() {
		if s.unlockedSpecialties[sp.Name] {
			continue
		}
		return &NextUnlock{
			Kind:     "specialty",
			Name:     sp.Name,
			Progress: unlock.SpecialtyProgress(sp.Requirement, stats, s.unlockedDifficulties, s.SpecialtyMastery),
		}
	}

	return nil
}
