// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devaun0506/blackstar/ent/milestoneevent"
	"github.com/devaun0506/blackstar/ent/schema"
	"github.com/devaun0506/blackstar/ent/shiftevent"
	"github.com/devaun0506/blackstar/ent/snapshot"
	"github.com/devaun0506/blackstar/ent/unlockevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	milestoneeventMixin := schema.MilestoneEvent{}.Mixin()
	milestoneeventMixinFields0 := milestoneeventMixin[0].Fields()
	_ = milestoneeventMixinFields0
	milestoneeventFields := schema.MilestoneEvent{}.Fields()
	_ = milestoneeventFields
	// milestoneeventDescTimestamp is the schema descriptor for timestamp field.
	milestoneeventDescTimestamp := milestoneeventMixinFields0[1].Descriptor()
	// milestoneevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	milestoneevent.DefaultTimestamp = milestoneeventDescTimestamp.Default.(func() time.Time)
	// milestoneeventDescMilestoneID is the schema descriptor for milestone_id field.
	milestoneeventDescMilestoneID := milestoneeventFields[0].Descriptor()
	// milestoneevent.MilestoneIDValidator is a validator for the "milestone_id" field. It is called by the builders before save.
	milestoneevent.MilestoneIDValidator = milestoneeventDescMilestoneID.Validators[0].(func(string) error)
	// milestoneeventDescReward is the schema descriptor for reward field.
	milestoneeventDescReward := milestoneeventFields[1].Descriptor()
	// milestoneevent.DefaultReward holds the default value on creation for the reward field.
	milestoneevent.DefaultReward = milestoneeventDescReward.Default.(string)
	shifteventMixin := schema.ShiftEvent{}.Mixin()
	shifteventMixinFields0 := shifteventMixin[0].Fields()
	_ = shifteventMixinFields0
	shifteventFields := schema.ShiftEvent{}.Fields()
	_ = shifteventFields
	// shifteventDescTimestamp is the schema descriptor for timestamp field.
	shifteventDescTimestamp := shifteventMixinFields0[1].Descriptor()
	// shiftevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	shiftevent.DefaultTimestamp = shifteventDescTimestamp.Default.(func() time.Time)
	// shifteventDescShiftID is the schema descriptor for shift_id field.
	shifteventDescShiftID := shifteventFields[0].Descriptor()
	// shiftevent.ShiftIDValidator is a validator for the "shift_id" field. It is called by the builders before save.
	shiftevent.ShiftIDValidator = shifteventDescShiftID.Validators[0].(func(string) error)
	// shifteventDescQuestions is the schema descriptor for questions field.
	shifteventDescQuestions := shifteventFields[1].Descriptor()
	// shiftevent.DefaultQuestions holds the default value on creation for the questions field.
	shiftevent.DefaultQuestions = shifteventDescQuestions.Default.(int)
	// shifteventDescAccuracy is the schema descriptor for accuracy field.
	shifteventDescAccuracy := shifteventFields[2].Descriptor()
	// shiftevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	shiftevent.DefaultAccuracy = shifteventDescAccuracy.Default.(float64)
	// shifteventDescStreak is the schema descriptor for streak field.
	shifteventDescStreak := shifteventFields[3].Descriptor()
	// shiftevent.DefaultStreak holds the default value on creation for the streak field.
	shiftevent.DefaultStreak = shifteventDescStreak.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	unlockeventMixin := schema.UnlockEvent{}.Mixin()
	unlockeventMixinFields0 := unlockeventMixin[0].Fields()
	_ = unlockeventMixinFields0
	unlockeventFields := schema.UnlockEvent{}.Fields()
	_ = unlockeventFields
	// unlockeventDescTimestamp is the schema descriptor for timestamp field.
	unlockeventDescTimestamp := unlockeventMixinFields0[1].Descriptor()
	// unlockevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	unlockevent.DefaultTimestamp = unlockeventDescTimestamp.Default.(func() time.Time)
	// unlockeventDescKind is the schema descriptor for kind field.
	unlockeventDescKind := unlockeventFields[0].Descriptor()
	// unlockevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	unlockevent.KindValidator = unlockeventDescKind.Validators[0].(func(string) error)
	// unlockeventDescName is the schema descriptor for name field.
	unlockeventDescName := unlockeventFields[1].Descriptor()
	// unlockevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	unlockevent.NameValidator = unlockeventDescName.Validators[0].(func(string) error)
}
