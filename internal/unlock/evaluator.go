package unlock

import "github.com/devaun0506/blackstar/internal/clinical"

// Stats is the cumulative-state input the evaluators compare against.
type Stats struct {
	Shifts     int
	Accuracy   float64
	Questions  int
	BestStreak int
}

// MeetsDifficulty reports whether stats satisfy a difficulty requirement.
func MeetsDifficulty(req DifficultyRequirement, s Stats) bool {
	if s.Shifts < req.MinShifts {
		return false
	}
	if s.Accuracy < req.MinAccuracy {
		return false
	}
	if s.Questions < req.MinQuestions {
		return false
	}
	if req.MinBestStreak > 0 && s.BestStreak < req.MinBestStreak {
		return false
	}
	return true
}

// NextDifficulty returns the requirement for the lowest still-locked level
// whose predecessor is already unlocked, or false when every level is open.
func NextDifficulty(unlocked map[clinical.Level]bool) (DifficultyRequirement, bool) {
	for _, req := range DifficultyRequirements() {
		if unlocked[req.Level] {
			continue
		}
		if unlocked[req.Level-1] {
			return req, true
		}
		// Levels above a locked one are not reachable yet.
		break
	}
	return DifficultyRequirement{}, false
}

// MeetsSpecialty evaluates a specialty requirement against stats, the set of
// unlocked difficulty levels, and a mastery lookup. Only fields present on
// the requirement participate; every present field must pass (AND). A nil
// requirement passes trivially.
func MeetsSpecialty(req *clinical.Requirement, s Stats, unlocked map[clinical.Level]bool, mastery func(specialty string) float64) bool {
	if req == nil {
		return true
	}
	if req.MinShifts > 0 && s.Shifts < req.MinShifts {
		return false
	}
	if req.MinAccuracy > 0 && s.Accuracy < req.MinAccuracy {
		return false
	}
	if req.RequiredDifficulty != "" {
		level, ok := clinical.ParseLevel(req.RequiredDifficulty)
		if !ok || !unlocked[level] {
			return false
		}
	}
	if ref := req.RequiredMastery; ref != nil {
		if mastery == nil || mastery(ref.Specialty) < ref.Threshold {
			return false
		}
	}
	return true
}

// DifficultyProgress returns normalized progress ratios (capped at 1) per
// requirement field, keyed by field name, for display.
func DifficultyProgress(req DifficultyRequirement, s Stats) map[string]float64 {
	progress := map[string]float64{
		"shifts":    ratio(float64(s.Shifts), float64(req.MinShifts)),
		"accuracy":  ratio(s.Accuracy, req.MinAccuracy),
		"questions": ratio(float64(s.Questions), float64(req.MinQuestions)),
	}
	if req.MinBestStreak > 0 {
		progress["streak"] = ratio(float64(s.BestStreak), float64(req.MinBestStreak))
	}
	return progress
}

// SpecialtyProgress returns normalized progress ratios for the fields
// present on a specialty requirement.
func SpecialtyProgress(req *clinical.Requirement, s Stats, unlocked map[clinical.Level]bool, mastery func(specialty string) float64) map[string]float64 {
	progress := make(map[string]float64)
	if req == nil {
		return progress
	}
	if req.MinShifts > 0 {
		progress["shifts"] = ratio(float64(s.Shifts), float64(req.MinShifts))
	}
	if req.MinAccuracy > 0 {
		progress["accuracy"] = ratio(s.Accuracy, req.MinAccuracy)
	}
	if req.RequiredDifficulty != "" {
		progress["difficulty"] = 0
		if level, ok := clinical.ParseLevel(req.RequiredDifficulty); ok && unlocked[level] {
			progress["difficulty"] = 1
		}
	}
	if ref := req.RequiredMastery; ref != nil {
		var m float64
		if mastery != nil {
			m = mastery(ref.Specialty)
		}
		progress["mastery"] = ratio(m, ref.Threshold)
	}
	return progress
}

func ratio(have, want float64) float64 {
	if want <= 0 {
		return 1
	}
	r := have / want
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}
