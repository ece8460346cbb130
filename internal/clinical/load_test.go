package clinical

import (
	"os"
	"path/filepath"
	"testing"
)

const validCatalogJSON = `{
  "specialties": [
    {"name": "Internal Medicine", "topics": ["Pneumonia", "COPD Exacerbation"]},
    {
      "name": "Cardiology",
      "topics": ["Acute MI"],
      "requirement": {
        "min_shifts": 8,
        "min_accuracy": 0.72,
        "required_difficulty": "Resident",
        "required_mastery": {"specialty": "Internal Medicine", "threshold": 0.8}
      }
    }
  ]
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(validCatalogJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sp, ok := c.Specialty("Cardiology")
	if !ok {
		t.Fatal("Specialty(Cardiology) not found")
	}
	req := sp.Requirement
	if req == nil || req.MinShifts != 8 || req.MinAccuracy != 0.72 {
		t.Errorf("Cardiology requirement = %+v", req)
	}
	if req.RequiredMastery == nil || req.RequiredMastery.Threshold != 0.8 {
		t.Errorf("Cardiology mastery = %+v", req.RequiredMastery)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{`},
		{"missing specialties", `{}`},
		{"empty specialties", `{"specialties": []}`},
		{"specialty without topics", `{"specialties": [{"name": "IM"}]}`},
		{"empty topic name", `{"specialties": [{"name": "IM", "topics": [""]}]}`},
		{"unknown requirement field", `{"specialties": [
			{"name": "IM", "topics": ["Pneumonia"]},
			{"name": "EM", "topics": ["Trauma Triage"], "requirement": {"min_gems": 3}}
		]}`},
		{"bad difficulty enum", `{"specialties": [
			{"name": "IM", "topics": ["Pneumonia"]},
			{"name": "EM", "topics": ["Trauma Triage"], "requirement": {"required_difficulty": "Chief"}}
		]}`},
		{"accuracy above 1", `{"specialties": [
			{"name": "IM", "topics": ["Pneumonia"]},
			{"name": "EM", "topics": ["Trauma Triage"], "requirement": {"min_accuracy": 1.5}}
		]}`},
		{"schema ok but self mastery ref", `{"specialties": [
			{"name": "IM", "topics": ["Pneumonia"]},
			{"name": "EM", "topics": ["Trauma Triage"],
			 "requirement": {"required_mastery": {"specialty": "EM", "threshold": 0.5}}}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(validCatalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := c.StartingSpecialty(); got != "Internal Medicine" {
		t.Errorf("StartingSpecialty() = %q, want Internal Medicine", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadFile(missing) error = nil, want error")
	}
}
