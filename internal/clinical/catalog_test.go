package clinical

import "testing"

func validSpecialties() []Specialty {
	return []Specialty{
		{Name: "Internal Medicine", Topics: []string{"Pneumonia", "COPD Exacerbation"}},
		{Name: "Emergency Medicine", Topics: []string{"Trauma Triage"}, Requirement: &Requirement{MinShifts: 3}},
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := New(validSpecialties())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := c.StartingSpecialty(); got != "Internal Medicine" {
		t.Errorf("StartingSpecialty() = %q, want %q", got, "Internal Medicine")
	}

	if got := len(c.Topics()); got != 3 {
		t.Errorf("len(Topics()) = %d, want 3", got)
	}

	owner, ok := c.TopicSpecialty("Trauma Triage")
	if !ok || owner != "Emergency Medicine" {
		t.Errorf("TopicSpecialty(Trauma Triage) = %q, %v, want Emergency Medicine, true", owner, ok)
	}

	if _, ok := c.TopicSpecialty("Astral Projection"); ok {
		t.Error("TopicSpecialty(unknown) ok = true, want false")
	}

	sp, ok := c.Specialty("Emergency Medicine")
	if !ok || sp.Requirement == nil || sp.Requirement.MinShifts != 3 {
		t.Errorf("Specialty(Emergency Medicine) = %+v, %v", sp, ok)
	}
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name        string
		specialties []Specialty
	}{
		{"empty", nil},
		{"starting specialty with requirement", []Specialty{
			{Name: "IM", Requirement: &Requirement{MinShifts: 1}},
		}},
		{"unnamed specialty", []Specialty{
			{Name: "IM"},
			{Name: ""},
		}},
		{"duplicate specialty", []Specialty{
			{Name: "IM"},
			{Name: "IM"},
		}},
		{"duplicate topic", []Specialty{
			{Name: "IM", Topics: []string{"Pneumonia"}},
			{Name: "EM", Topics: []string{"Pneumonia"}},
		}},
		{"unknown difficulty", []Specialty{
			{Name: "IM"},
			{Name: "EM", Requirement: &Requirement{RequiredDifficulty: "Chief"}},
		}},
		{"self mastery reference", []Specialty{
			{Name: "IM"},
			{Name: "EM", Requirement: &Requirement{RequiredMastery: &MasteryRef{Specialty: "EM", Threshold: 0.5}}},
		}},
		{"unknown mastery reference", []Specialty{
			{Name: "IM"},
			{Name: "EM", Requirement: &Requirement{RequiredMastery: &MasteryRef{Specialty: "Radiology", Threshold: 0.5}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.specialties); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if got := c.StartingSpecialty(); got != "Internal Medicine" {
		t.Errorf("StartingSpecialty() = %q, want Internal Medicine", got)
	}

	start, _ := c.Specialty(c.StartingSpecialty())
	if start.Requirement != nil {
		t.Error("starting specialty has a requirement")
	}

	// Every specialty should bring its own topics.
	for _, sp := range c.Specialties() {
		if len(sp.Topics) == 0 {
			t.Errorf("specialty %q has no topics", sp.Name)
		}
	}
}
