package store

import (
	"context"
	"time"
)

// SnapshotData captures the full player profile state at a point in time.
type SnapshotData struct {
	Version     int                      `json:"version"`
	Progression *ProgressionSnapshotData `json:"progression,omitempty"`
}

// ProgressionSnapshotData is the persisted shape of the progression engine.
// Every field is optional on load: absent fields restore to their defaults.
type ProgressionSnapshotData struct {
	CurrentDifficulty    string                              `json:"current_difficulty,omitempty"`
	UnlockedDifficulties []string                            `json:"unlocked_difficulties,omitempty"`
	UnlockedSpecialties  []string                            `json:"unlocked_specialties,omitempty"`
	ShiftsCompleted      int                                 `json:"shifts_completed,omitempty"`
	TotalQuestions       int                                 `json:"total_questions,omitempty"`
	OverallAccuracy      float64                             `json:"overall_accuracy,omitempty"`
	CurrentStreak        int                                 `json:"current_streak,omitempty"`
	BestStreak           int                                 `json:"best_streak,omitempty"`
	Specialties          map[string]*SpecialtyPerformanceData `json:"specialties,omitempty"`
	Weights              *AdaptiveWeightsData                `json:"weights,omitempty"`
	Milestones           map[string]bool                     `json:"milestones,omitempty"`
}

// SpecialtyPerformanceData is the persisted per-specialty record.
type SpecialtyPerformanceData struct {
	QuestionsSeen  int      `json:"questions_seen"`
	CorrectAnswers int      `json:"correct_answers"`
	LastPracticed  *string  `json:"last_practiced,omitempty"` // RFC 3339
	WeakTopics     []string `json:"weak_topics,omitempty"`
}

// AdaptiveWeightsData is the persisted adaptive-weight state.
type AdaptiveWeightsData struct {
	TopicWeight       map[string]float64 `json:"topic_weight,omitempty"`
	LastSeenMs        map[string]int64   `json:"last_seen_ms,omitempty"`
	ErrorFrequency    map[string]float64 `json:"error_frequency,omitempty"`
	DifficultyScaling float64            `json:"difficulty_scaling,omitempty"`
}

// Snapshot represents a point-in-time capture of profile state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ShiftEventData records one completed shift.
type ShiftEventData struct {
	ShiftID   string
	Questions int
	Accuracy  float64
	Streak    int
}

// UnlockEventData records a difficulty or specialty unlock.
type UnlockEventData struct {
	ShiftID string
	Kind    string // "difficulty" or "specialty"
	Name    string
}

// MilestoneEventData records a milestone being reached.
type MilestoneEventData struct {
	ShiftID     string
	MilestoneID string
	Reward      string
}

// EventRepo provides append and query access to progression events.
type EventRepo interface {
	// AppendShiftEvent records a completed shift.
	AppendShiftEvent(ctx context.Context, data ShiftEventData) error

	// AppendUnlockEvent records a difficulty or specialty unlock.
	AppendUnlockEvent(ctx context.Context, data UnlockEventData) error

	// AppendMilestoneEvent records a reached milestone.
	AppendMilestoneEvent(ctx context.Context, data MilestoneEventData) error

	// LatestShiftTime returns the timestamp of the most recent shift,
	// or the zero time if no shifts are recorded.
	LatestShiftTime(ctx context.Context) (time.Time, error)

	// ShiftCount returns the number of recorded shifts.
	ShiftCount(ctx context.Context) (int, error)
}
