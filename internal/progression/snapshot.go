package progression

import (
	"time"

	"github.com/devaun0506/blackstar/internal/adaptive"
	"github.com/devaun0506/blackstar/internal/clinical"
	"github.com/devaun0506/blackstar/internal/store"
)

// loadSnapshot overlays persisted progression state onto the freshly seeded
// store. Each field is applied only when present and valid; anything
// unrecognized (unknown level names, specialties or topics no longer in the
// catalog) is dropped silently so catalog edits never break old saves.
func (s *Store) loadSnapshot(d *store.ProgressionSnapshotData) {
	if d == nil {
		return
	}

	for _, name := range d.UnlockedDifficulties {
		if l, ok := clinical.ParseLevel(name); ok {
			s.unlockedDifficulties[l] = true
		}
	}
	if l, ok := clinical.ParseLevel(d.CurrentDifficulty); ok && s.unlockedDifficulties[l] {
		s.currentDifficulty = l
	}

	for _, name := range d.UnlockedSpecialties {
		if _, ok := s.catalog.Specialty(name); ok {
			s.unlockedSpecialties[name] = true
		}
	}

	if d.ShiftsCompleted > 0 {
		s.shiftsCompleted = d.ShiftsCompleted
	}
	if d.TotalQuestions > 0 {
		s.totalQuestions = d.TotalQuestions
	}
	if d.OverallAccuracy > 0 {
		s.overallAccuracy = d.OverallAccuracy
	}
	if d.CurrentStreak > 0 {
		s.currentStreak = d.CurrentStreak
	}
	if d.BestStreak > 0 {
		s.bestStreak = d.BestStreak
	}

	for name, sd := range d.Specialties {
		p, ok := s.specialties[name]
		if !ok || sd == nil {
			continue
		}
		p.QuestionsSeen = sd.QuestionsSeen
		p.CorrectAnswers = sd.CorrectAnswers
		if sd.LastPracticed != nil {
			if t, err := time.Parse(time.RFC3339, *sd.LastPracticed); err == nil {
				p.LastPracticed = t
			}
		}
		for _, topic := range sd.WeakTopics {
			p.WeakTopics[topic] = true
		}
	}

	if w := d.Weights; w != nil {
		for topic, v := range w.TopicWeight {
			if s.weights.Knows(topic) {
				s.weights.TopicWeight[topic] = v
			}
		}
		for topic, ms := range w.LastSeenMs {
			if s.weights.Knows(topic) {
				s.weights.LastSeenMs[topic] = ms
			}
		}
		for topic, f := range w.ErrorFrequency {
			if s.weights.Knows(topic) {
				s.weights.ErrorFreq[topic] = f
			}
		}
		if w.DifficultyScaling >= adaptive.MinScaling && w.DifficultyScaling <= adaptive.MaxScaling {
			s.weights.Scaling = w.DifficultyScaling
		}
	}
}

// SnapshotData exports the progression state for persistence. The result
// round-trips through loadSnapshot without loss.
func (s *Store) SnapshotData() *store.ProgressionSnapshotData {
	d := &store.ProgressionSnapshotData{
		CurrentDifficulty: s.currentDifficulty.String(),
		ShiftsCompleted:   s.shiftsCompleted,
		TotalQuestions:    s.totalQuestions,
		OverallAccuracy:   s.overallAccuracy,
		CurrentStreak:     s.currentStreak,
		BestStreak:        s.bestStreak,
		Specialties:       make(map[string]*store.SpecialtyPerformanceData, len(s.specialties)),
		Milestones:        s.milestones.Achieved(),
	}

	for _, l := range s.UnlockedDifficulties() {
		d.UnlockedDifficulties = append(d.UnlockedDifficulties, l.String())
	}
	d.UnlockedSpecialties = s.UnlockedSpecialties()

	for name, p := range s.specialties {
		sd := &store.SpecialtyPerformanceData{
			QuestionsSeen:  p.QuestionsSeen,
			CorrectAnswers: p.CorrectAnswers,
			WeakTopics:     sortedWeakTopics(p),
		}
		if !p.LastPracticed.IsZero() {
			ts := p.LastPracticed.UTC().Format(time.RFC3339)
			sd.LastPracticed = &ts
		}
		d.Specialties[name] = sd
	}

	d.Weights = &store.AdaptiveWeightsData{
		TopicWeight:       make(map[string]float64, len(s.weights.TopicWeight)),
		LastSeenMs:        make(map[string]int64, len(s.weights.LastSeenMs)),
		ErrorFrequency:    make(map[string]float64, len(s.weights.ErrorFreq)),
		DifficultyScaling: s.weights.Scaling,
	}
	for topic, v := range s.weights.TopicWeight {
		d.Weights.TopicWeight[topic] = v
	}
	for topic, ms := range s.weights.LastSeenMs {
		d.Weights.LastSeenMs[topic] = ms
	}
	for topic, f := range s.weights.ErrorFreq {
		d.Weights.ErrorFrequency[topic] = f
	}

	return d
}
