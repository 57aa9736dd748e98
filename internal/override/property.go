package override

// PropertyOverride carries override metadata for an externally declared
// property. The zero value means the property has not been audited.
type PropertyOverride struct {
	nullabilityAudited bool
	nullable           NullableKind
}

// Nullability reports the audited nullability of the property. The second
// result is false when the property was never audited.
func (p PropertyOverride) Nullability() (NullableKind, bool) {
	if !p.nullabilityAudited {
		return NonNullable, false
	}
	return p.nullable, true
}

// SetNullability marks the property as audited and records its nullability,
// overwriting any prior value.
func (p *PropertyOverride) SetNullability(kind NullableKind) {
	p.nullabilityAudited = true
	p.nullable = kind
}
