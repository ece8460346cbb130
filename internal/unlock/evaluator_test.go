package unlock

import (
	"math"
	"testing"

	"github.com/devaun0506/blackstar/internal/clinical"
)

func TestMeetsDifficulty(t *testing.T) {
	resident, _ := RequirementFor(clinical.LevelResident)
	attending, _ := RequirementFor(clinical.LevelAttending)

	tests := []struct {
		name  string
		req   DifficultyRequirement
		stats Stats
		want  bool
	}{
		{"resident exact", resident, Stats{Shifts: 5, Accuracy: 0.70, Questions: 50}, true},
		{"resident short on shifts", resident, Stats{Shifts: 4, Accuracy: 0.80, Questions: 60}, false},
		{"resident short on accuracy", resident, Stats{Shifts: 5, Accuracy: 0.69, Questions: 60}, false},
		{"resident short on questions", resident, Stats{Shifts: 5, Accuracy: 0.80, Questions: 49}, false},
		{"attending exact", attending, Stats{Shifts: 12, Accuracy: 0.75, Questions: 150, BestStreak: 10}, true},
		{"attending short on streak", attending, Stats{Shifts: 12, Accuracy: 0.75, Questions: 150, BestStreak: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsDifficulty(tt.req, tt.stats); got != tt.want {
				t.Errorf("MeetsDifficulty(%+v, %+v) = %v, want %v", tt.req, tt.stats, got, tt.want)
			}
		})
	}
}

func TestDifficultyRequirementTable(t *testing.T) {
	reqs := DifficultyRequirements()
	if len(reqs) != 2 {
		t.Fatalf("len(DifficultyRequirements()) = %d, want 2", len(reqs))
	}

	resident := reqs[0]
	if resident.Level != clinical.LevelResident || resident.MinShifts != 5 ||
		resident.MinAccuracy != 0.70 || resident.MinQuestions != 50 || resident.MinBestStreak != 0 {
		t.Errorf("resident requirement = %+v", resident)
	}

	attending := reqs[1]
	if attending.Level != clinical.LevelAttending || attending.MinShifts != 12 ||
		attending.MinAccuracy != 0.75 || attending.MinQuestions != 150 || attending.MinBestStreak != 10 {
		t.Errorf("attending requirement = %+v", attending)
	}
}

func TestNextDifficulty(t *testing.T) {
	intern := map[clinical.Level]bool{clinical.LevelIntern: true}
	resident := map[clinical.Level]bool{clinical.LevelIntern: true, clinical.LevelResident: true}
	all := map[clinical.Level]bool{
		clinical.LevelIntern:    true,
		clinical.LevelResident:  true,
		clinical.LevelAttending: true,
	}

	req, ok := NextDifficulty(intern)
	if !ok || req.Level != clinical.LevelResident {
		t.Errorf("NextDifficulty(intern) = %v, %v", req.Level, ok)
	}

	req, ok = NextDifficulty(resident)
	if !ok || req.Level != clinical.LevelAttending {
		t.Errorf("NextDifficulty(resident) = %v, %v", req.Level, ok)
	}

	if _, ok := NextDifficulty(all); ok {
		t.Error("NextDifficulty(all) ok = true, want false")
	}
}

func TestMeetsSpecialty(t *testing.T) {
	unlocked := map[clinical.Level]bool{clinical.LevelIntern: true, clinical.LevelResident: true}
	mastery := func(s string) float64 {
		if s == "Internal Medicine" {
			return 0.85
		}
		return 0
	}

	tests := []struct {
		name  string
		req   *clinical.Requirement
		stats Stats
		want  bool
	}{
		{"nil requirement", nil, Stats{}, true},
		{"shifts only pass", &clinical.Requirement{MinShifts: 3}, Stats{Shifts: 3}, true},
		{"shifts only fail", &clinical.Requirement{MinShifts: 3}, Stats{Shifts: 2}, false},
		{
			"all fields pass",
			&clinical.Requirement{
				MinShifts:          8,
				MinAccuracy:        0.72,
				RequiredDifficulty: "Resident",
				RequiredMastery:    &clinical.MasteryRef{Specialty: "Internal Medicine", Threshold: 0.8},
			},
			Stats{Shifts: 10, Accuracy: 0.8},
			true,
		},
		{
			"one field failing blocks",
			&clinical.Requirement{
				MinShifts:          8,
				MinAccuracy:        0.72,
				RequiredDifficulty: "Attending",
			},
			Stats{Shifts: 10, Accuracy: 0.8},
			false,
		},
		{
			"mastery below threshold",
			&clinical.Requirement{RequiredMastery: &clinical.MasteryRef{Specialty: "Emergency Medicine", Threshold: 0.8}},
			Stats{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsSpecialty(tt.req, tt.stats, unlocked, mastery); got != tt.want {
				t.Errorf("MeetsSpecialty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyProgress(t *testing.T) {
	resident, _ := RequirementFor(clinical.LevelResident)
	progress := DifficultyProgress(resident, Stats{Shifts: 3, Accuracy: 0.35, Questions: 100})

	if got := progress["shifts"]; got != 0.6 {
		t.Errorf("shifts = %v, want 0.6", got)
	}
	if got := progress["accuracy"]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
	if got := progress["questions"]; got != 1.0 {
		t.Errorf("questions = %v, want capped 1.0", got)
	}
	if _, present := progress["streak"]; present {
		t.Error("streak present for requirement without streak")
	}

	attending, _ := RequirementFor(clinical.LevelAttending)
	progress = DifficultyProgress(attending, Stats{BestStreak: 5})
	if got := progress["streak"]; got != 0.5 {
		t.Errorf("streak = %v, want 0.5", got)
	}
}

func TestSpecialtyProgress(t *testing.T) {
	unlocked := map[clinical.Level]bool{clinical.LevelIntern: true}
	mastery := func(string) float64 { return 0.4 }

	req := &clinical.Requirement{
		MinShifts:          10,
		RequiredDifficulty: "Resident",
		RequiredMastery:    &clinical.MasteryRef{Specialty: "Internal Medicine", Threshold: 0.8},
	}
	progress := SpecialtyProgress(req, Stats{Shifts: 5}, unlocked, mastery)

	if got := progress["shifts"]; got != 0.5 {
		t.Errorf("shifts = %v, want 0.5", got)
	}
	if got := progress["difficulty"]; got != 0 {
		t.Errorf("difficulty = %v, want 0", got)
	}
	if got := progress["mastery"]; got != 0.5 {
		t.Errorf("mastery = %v, want 0.5", got)
	}
	if _, present := progress["accuracy"]; present {
		t.Error("accuracy present for requirement without accuracy")
	}

	if got := SpecialtyProgress(nil, Stats{}, unlocked, mastery); len(got) != 0 {
		t.Errorf("SpecialtyProgress(nil) = %v, want empty", got)
	}
}
