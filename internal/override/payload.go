package override

import "fmt"

const (
	nullableKindBits = 2
	nullableKindMask = 0b11
)

// MaxNullabilitySlots is how many 2-bit slots a 64-bit payload word holds.
// Slot 0 is the return type, so at most MaxNullabilitySlots-1 parameters fit.
const MaxNullabilitySlots = 64 / nullableKindBits

// NullabilityPayload packs per-slot NullableKind ordinals into a single
// 64-bit word, least-significant slot first. Slot 0 holds the return type,
// slot i+1 holds parameter i.
//
// Any binary serialization of method records (owned by external
// collaborators) must reproduce this layout exactly.
type NullabilityPayload uint64

// Slot extracts the kind recorded at the given slot index.
//
// The reserved ordinal 3 decodes as Unknown so future encoders cannot break
// existing readers. An index at or above MaxNullabilitySlots is a
// programming error and panics.
func (p NullabilityPayload) Slot(index uint) NullableKind {
	if index >= MaxNullabilitySlots {
		panic(fmt.Errorf("override: nullability slot %d out of range", index))
	}
	kind := NullableKind(uint64(p) >> (index * nullableKindBits) & nullableKindMask)
	if kind > Unknown {
		return Unknown
	}
	return kind
}

// SetSlot stores the kind at the given slot index, replacing whatever the
// slot held before. An index at or above MaxNullabilitySlots panics, and so
// does the reserved ordinal 3: decoders tolerate it, encoders must never
// put it on the wire.
func (p *NullabilityPayload) SetSlot(index uint, kind NullableKind) {
	if index >= MaxNullabilitySlots {
		panic(fmt.Errorf("override: nullability slot %d out of range", index))
	}
	if kind > Unknown {
		panic(fmt.Errorf("override: nullability kind %d is reserved", uint8(kind)))
	}
	shift := index * nullableKindBits
	word := uint64(*p) &^ (nullableKindMask << shift)
	*p = NullabilityPayload(word | uint64(kind)<<shift)
}
