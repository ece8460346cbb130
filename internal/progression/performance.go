package progression

import "time"

// masteryVolumeTarget is the question count at which practice volume stops
// limiting the mastery score.
const masteryVolumeTarget = 50.0

// SpecialtyPerformance accumulates a player's history within one specialty.
// One record exists per catalog specialty from profile creation; records
// are never deleted.
type SpecialtyPerformance struct {
	QuestionsSeen  int
	CorrectAnswers int
	LastPracticed  time.Time
	WeakTopics     map[string]bool
}

func newSpecialtyPerformance() *SpecialtyPerformance {
	return &SpecialtyPerformance{
		WeakTopics: make(map[string]bool),
	}
}

// Accuracy returns lifetime accuracy within the specialty.
func (p *SpecialtyPerformance) Accuracy() float64 {
	if p.QuestionsSeen == 0 {
		return 0
	}
	return float64(p.CorrectAnswers) / float64(p.QuestionsSeen)
}

// Mastery combines practice volume and accuracy into a 0..1 score:
// min(1, questionsSeen/50) * accuracy * recencyFactor. The recency factor
// is fixed at 1.0 for now; it is the hook where time decay would plug in.
func (p *SpecialtyPerformance) Mastery() float64 {
	volume := float64(p.QuestionsSeen) / masteryVolumeTarget
	if volume > 1 {
		volume = 1
	}
	const recencyFactor = 1.0
	return volume * p.Accuracy() * recencyFactor
}

// record folds one shift's specialty breakdown into the record.
func (p *SpecialtyPerformance) record(questions, correct int, missedTopics []string, now time.Time) {
	p.QuestionsSeen += questions
	p.CorrectAnswers += correct
	p.LastPracticed = now
	for _, topic := range missedTopics {
		p.WeakTopics[topic] = true
	}
}
