// Package override defines the in-memory override records attached to
// externally declared API entities: classes, properties and methods.
//
// The records are plain value types. An external annotation source populates
// them field by field and the downstream import pipeline reads them; neither
// side lives here. The only externally binding contract is the bit layout of
// the packed nullability payload (see NullabilityPayload) together with the
// fixed enum ordinals below.
package override

import "fmt"

// BinaryExtension is the file extension used for the binary representation
// of API notes. Serialization itself belongs to external collaborators.
const BinaryExtension = "apinotesc"

// NullableKind describes the nullability of a particular value, whether it
// is a property, a parameter type, or a result type.
//
// The ordinals are part of the storage contract: they are packed directly
// into 2-bit payload fields and must not change.
type NullableKind uint8

const (
	// NonNullable marks a value that is never null.
	NonNullable NullableKind = iota
	// Nullable marks a value that may be null.
	Nullable
	// Unknown marks a value whose nullability has not been determined.
	Unknown
)

func (k NullableKind) String() string {
	switch k {
	case NonNullable:
		return "nonnull"
	case Nullable:
		return "nullable"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("NullableKind(%d)", uint8(k))
	}
}

// FactoryAsInitKind describes whether to classify a factory method as an
// initializer. Pure data; the classification itself happens downstream.
// Ordinals are fixed for the same reason as NullableKind.
type FactoryAsInitKind uint8

const (
	// FactoryInfer lets the consumer infer based on name and type (the default).
	FactoryInfer FactoryAsInitKind = iota
	// FactoryAsClassMethod forces treatment as a class method.
	FactoryAsClassMethod
	// FactoryAsInitializer forces treatment as an initializer.
	FactoryAsInitializer
)

func (k FactoryAsInitKind) String() string {
	switch k {
	case FactoryInfer:
		return "infer"
	case FactoryAsClassMethod:
		return "class-method"
	case FactoryAsInitializer:
		return "initializer"
	default:
		return fmt.Sprintf("FactoryAsInitKind(%d)", uint8(k))
	}
}
