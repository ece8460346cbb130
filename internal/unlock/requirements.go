package unlock

import "github.com/devaun0506/blackstar/internal/clinical"

// DifficultyRequirement gates one difficulty level on cumulative stats.
// The table is static; it is never mutated at runtime.
type DifficultyRequirement struct {
	Level         clinical.Level
	MinShifts     int
	MinAccuracy   float64
	MinQuestions  int
	MinBestStreak int // 0 means no streak requirement
}

// DifficultyRequirements returns the unlock table for every level beyond
// Intern, in ascending level order.
func DifficultyRequirements() []DifficultyRequirement {
	return []DifficultyRequirement{
		{
			Level:        clinical.LevelResident,
			MinShifts:    5,
			MinAccuracy:  0.70,
			MinQuestions: 50,
		},
		{
			Level:         clinical.LevelAttending,
			MinShifts:     12,
			MinAccuracy:   0.75,
			MinQuestions:  150,
			MinBestStreak: 10,
		},
	}
}

// RequirementFor returns the unlock requirement for a level, if it has one.
func RequirementFor(level clinical.Level) (DifficultyRequirement, bool) {
	for _, req := range DifficultyRequirements() {
		if req.Level == level {
			return req, true
		}
	}
	return DifficultyRequirement{}, false
}
