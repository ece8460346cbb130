package clinical

// Default returns the built-in specialty catalog. Internal Medicine is the
// starting specialty; every other specialty carries an unlock requirement.
// The tables here are data, not behavior; a deployment can replace them
// wholesale with LoadFile.
func Default() *Catalog {
	c, err := New(defaultSpecialties())
	if err != nil {
		// The seed tables are validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func defaultSpecialties() []Specialty {
	return []Specialty{
		{
			Name: "Internal Medicine",
			Topics: []string{
				"Pneumonia",
				"COPD Exacerbation",
				"Diabetes Management",
				"Hypertension",
				"Thyroid Disorders",
				"Anemia Workup",
			},
		},
		{
			Name: "Emergency Medicine",
			Topics: []string{
				"Chest Pain Triage",
				"Anaphylaxis",
				"Trauma Assessment",
				"Toxicology",
				"Stroke Recognition",
			},
			Requirement: &Requirement{
				MinShifts:   3,
				MinAccuracy: 0.65,
			},
		},
		{
			Name: "Cardiology",
			Topics: []string{
				"Acute Coronary Syndrome",
				"Heart Failure",
				"Atrial Fibrillation",
				"Valvular Disease",
				"Hypertensive Emergency",
			},
			Requirement: &Requirement{
				MinShifts:          8,
				MinAccuracy:        0.72,
				RequiredDifficulty: "Resident",
			},
		},
		{
			Name: "Pediatrics",
			Topics: []string{
				"Febrile Infant",
				"Croup",
				"Asthma Exacerbation",
				"Dehydration",
				"Otitis Media",
			},
			Requirement: &Requirement{
				MinShifts:   6,
				MinAccuracy: 0.70,
				RequiredMastery: &MasteryRef{
					Specialty: "Internal Medicine",
					Threshold: 0.8,
				},
			},
		},
		{
			Name: "Surgery",
			Topics: []string{
				"Acute Abdomen",
				"Appendicitis",
				"Bowel Obstruction",
				"Postoperative Fever",
				"Surgical Wound Care",
			},
			Requirement: &Requirement{
				MinShifts:          10,
				MinAccuracy:        0.75,
				RequiredDifficulty: "Resident",
				RequiredMastery: &MasteryRef{
					Specialty: "Emergency Medicine",
					Threshold: 0.8,
				},
			},
		},
		{
			Name: "Neurology",
			Topics: []string{
				"Seizure Management",
				"Ischemic Stroke",
				"Meningitis",
				"Delirium Workup",
				"Headache Red Flags",
			},
			Requirement: &Requirement{
				MinShifts:          12,
				RequiredDifficulty: "Attending",
			},
		},
	}
}
