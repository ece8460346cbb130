package milestone

// Milestone defines one career milestone. Predicate fields are optional;
// zero means the field does not participate. All present fields must pass
// for the milestone to fire.
type Milestone struct {
	ID          string
	Name        string
	Reward      string
	MinShifts   int
	MinAccuracy float64
	MinStreak   int
}

// Defaults returns the built-in milestone table.
func Defaults() []Milestone {
	return []Milestone{
		{ID: "first_shift", Name: "First Shift", Reward: "White coat", MinShifts: 1},
		{ID: "shift_regular", Name: "Shift Regular", Reward: "Coffee mug", MinShifts: 10},
		{ID: "shift_veteran", Name: "Shift Veteran", Reward: "Engraved stethoscope", MinShifts: 25},
		{ID: "ward_fixture", Name: "Ward Fixture", Reward: "Named on-call room", MinShifts: 50},
		{ID: "sharp_eye", Name: "Sharp Eye", Reward: "Diagnostics commendation", MinShifts: 5, MinAccuracy: 0.85},
		{ID: "hot_streak", Name: "Hot Streak", Reward: "Charge nurse's respect", MinStreak: 10},
		{ID: "unstoppable", Name: "Unstoppable", Reward: "Department plaque", MinStreak: 20},
	}
}

// Evaluator tracks which milestones have been achieved. Achievement is
// permanent: once a milestone fires it never fires again.
type Evaluator struct {
	defs     []Milestone
	achieved map[string]bool
}

// NewEvaluator creates an evaluator over the given definitions, restoring
// any previously achieved flags.
func NewEvaluator(defs []Milestone, achieved map[string]bool) *Evaluator {
	e := &Evaluator{
		defs:     defs,
		achieved: make(map[string]bool, len(achieved)),
	}
	for id, ok := range achieved {
		if ok {
			e.achieved[id] = true
		}
	}
	return e
}

// Evaluate checks every unachieved milestone against cumulative stats and
// returns the ones that newly fire, marking them achieved.
func (e *Evaluator) Evaluate(shifts int, accuracy float64, bestStreak int) []Milestone {
	var fired []Milestone
	for _, m := range e.defs {
		if e.achieved[m.ID] {
			continue
		}
		if m.MinShifts > 0 && shifts < m.MinShifts {
			continue
		}
		if m.MinAccuracy > 0 && accuracy < m.MinAccuracy {
			continue
		}
		if m.MinStreak > 0 && bestStreak < m.MinStreak {
			continue
		}
		e.achieved[m.ID] = true
		fired = append(fired, m)
	}
	return fired
}

// Achieved returns a copy of the achieved flags for persistence.
func (e *Evaluator) Achieved() map[string]bool {
	result := make(map[string]bool, len(e.achieved))
	for id := range e.achieved {
		result[id] = true
	}
	return result
}
