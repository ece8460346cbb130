// Code generated by ent, DO NOT EDIT.

package unlockevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldKind, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldName, v))
}

// ShiftID applies equality check predicate on the "shift_id" field. It's identical to ShiftIDEQ.
func ShiftID(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldShiftID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldTimestamp, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContainsFold(FieldKind, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContainsFold(FieldName, v))
}

// ShiftIDEQ applies the EQ predicate on the "shift_id" field.
func ShiftIDEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEQ(FieldShiftID, v))
}

// ShiftIDNEQ applies the NEQ predicate on the "shift_id" field.
func ShiftIDNEQ(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNEQ(FieldShiftID, v))
}

// ShiftIDIn applies the In predicate on the "shift_id" field.
func ShiftIDIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIn(FieldShiftID, vs...))
}

// ShiftIDNotIn applies the NotIn predicate on the "shift_id" field.
func ShiftIDNotIn(vs ...string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotIn(FieldShiftID, vs...))
}

// ShiftIDGT applies the GT predicate on the "shift_id" field.
func ShiftIDGT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGT(FieldShiftID, v))
}

// ShiftIDGTE applies the GTE predicate on the "shift_id" field.
func ShiftIDGTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldGTE(FieldShiftID, v))
}

// ShiftIDLT applies the LT predicate on the "shift_id" field.
func ShiftIDLT(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLT(FieldShiftID, v))
}

// ShiftIDLTE applies the LTE predicate on the "shift_id" field.
func ShiftIDLTE(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldLTE(FieldShiftID, v))
}

// ShiftIDContains applies the Contains predicate on the "shift_id" field.
func ShiftIDContains(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContains(FieldShiftID, v))
}

// ShiftIDHasPrefix applies the HasPrefix predicate on the "shift_id" field.
func ShiftIDHasPrefix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasPrefix(FieldShiftID, v))
}

// ShiftIDHasSuffix applies the HasSuffix predicate on the "shift_id" field.
func ShiftIDHasSuffix(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldHasSuffix(FieldShiftID, v))
}

// ShiftIDIsNil applies the IsNil predicate on the "shift_id" field.
func ShiftIDIsNil() predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldIsNull(FieldShiftID))
}

// ShiftIDNotNil applies the NotNil predicate on the "shift_id" field.
func ShiftIDNotNil() predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldNotNull(FieldShiftID))
}

// ShiftIDEqualFold applies the EqualFold predicate on the "shift_id" field.
func ShiftIDEqualFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldEqualFold(FieldShiftID, v))
}

// ShiftIDContainsFold applies the ContainsFold predicate on the "shift_id" field.
func ShiftIDContainsFold(v string) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.FieldContainsFold(FieldShiftID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnlockEvent) predicate.UnlockEvent {
	return predicate.UnlockEvent(sql.NotPredicates(p))
}
