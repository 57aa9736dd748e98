package override

import "fmt"

// MethodOverride carries override metadata for an externally declared
// method. The zero value means nothing is known: not a designated
// initializer, factory classification inferred, available, not audited.
//
// Unlike the class and property records, the fields are exported: the
// annotation-ingestion collaborator populates them one by one and owns the
// pairing rules (UnavailableMessage is meaningful only while Unavailable is
// set, AdjustedSlotCount must cover every slot it records).
//
// Records compare with ==. The comparison covers the full payload word, so
// two records that differ only in stale bits beyond AdjustedSlotCount are
// unequal even though every read behaves identically on both.
type MethodOverride struct {
	// DesignatedInit marks the method as the canonical construction path
	// for its owning class.
	DesignatedInit bool

	// FactoryAsInit governs how a factory-style method is classified
	// downstream.
	FactoryAsInit FactoryAsInitKind

	// Unavailable marks the method unusable; UnavailableMessage says why.
	Unavailable        bool
	UnavailableMessage string

	// NullabilityAudited gates the payload: while false, no per-slot data
	// is valid no matter what Payload holds.
	NullabilityAudited bool

	// AdjustedSlotCount is the number of slots (return plus parameters)
	// with an explicitly recorded nullability. Reads at or beyond it fall
	// back to NonNullable without consulting the payload.
	AdjustedSlotCount uint8

	// Payload holds the packed per-slot kinds.
	Payload NullabilityPayload
}

// RecordSlotNullability stores kind at the given slot index, replacing any
// prior value there. The method must already be marked audited, the index
// must fit the payload, and the kind must be one of the three real kinds;
// violating any of these is a programming error and panics. Callers remain
// responsible for raising AdjustedSlotCount so that reads honor the new
// slot.
func (m *MethodOverride) RecordSlotNullability(index uint, kind NullableKind) {
	if !m.NullabilityAudited {
		panic(fmt.Errorf("override: recording slot %d nullability on a non-audited method", index))
	}
	m.Payload.SetSlot(index, kind)
}

// ReturnTypeInfo reports the recorded nullability of the return type.
func (m *MethodOverride) ReturnTypeInfo() NullableKind {
	return m.slotInfo(0)
}

// ParamTypeInfo reports the recorded nullability of the parameter at
// paramIndex. Parameters sit one slot above the return type, so only
// MaxNullabilitySlots-1 of them are representable; an index past that is a
// programming error and panics rather than wrapping onto the return slot.
func (m *MethodOverride) ParamTypeInfo(paramIndex uint) NullableKind {
	if paramIndex >= MaxNullabilitySlots-1 {
		panic(fmt.Errorf("override: parameter index %d out of range", paramIndex))
	}
	return m.slotInfo(paramIndex + 1)
}

func (m *MethodOverride) slotInfo(index uint) NullableKind {
	if !m.NullabilityAudited {
		panic(fmt.Errorf("override: reading slot %d nullability on a non-audited method", index))
	}
	// Slots that were never recorded read as non-nullable.
	if index >= uint(m.AdjustedSlotCount) {
		return NonNullable
	}
	return m.Payload.Slot(index)
}
