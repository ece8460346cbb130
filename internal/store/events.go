package store

import (
	"context"
	"fmt"
	"time"

	"github.com/devaun0506/blackstar/ent"
	"github.com/devaun0506/blackstar/ent/shiftevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendShiftEvent(ctx context.Context, data ShiftEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ShiftEvent.Create().
		SetSequence(seqNum).
		SetShiftID(data.ShiftID).
		SetQuestions(data.Questions).
		SetAccuracy(data.Accuracy).
		SetStreak(data.Streak).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save shift event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendUnlockEvent(ctx context.Context, data UnlockEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.UnlockEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetName(data.Name)

	if data.ShiftID != "" {
		builder = builder.SetShiftID(data.ShiftID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save unlock event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendMilestoneEvent(ctx context.Context, data MilestoneEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MilestoneEvent.Create().
		SetSequence(seqNum).
		SetMilestoneID(data.MilestoneID).
		SetReward(data.Reward)

	if data.ShiftID != "" {
		builder = builder.SetShiftID(data.ShiftID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save milestone event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestShiftTime(ctx context.Context) (time.Time, error) {
	se, err := r.client.ShiftEvent.Query().
		Order(ent.Desc(shiftevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest shift time: %w", err)
	}
	return se.Timestamp, nil
}

func (r *eventRepo) ShiftCount(ctx context.Context) (int, error) {
	count, err := r.client.ShiftEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count shift events: %w", err)
	}
	return count, nil
}
