package override

// ClassOverride carries override metadata for an externally declared class.
// The zero value means nothing is known about the class.
//
// The presence flag and the value live behind the accessors so that a set
// value always travels with its flag; there is no way to observe a stored
// kind without the flag being set.
type ClassOverride struct {
	hasDefaultNullability bool
	defaultNullability    NullableKind
}

// DefaultNullability reports the default nullability implied for properties
// and methods of this class. The second result is false when no default has
// been recorded; that is an ordinary answer, not an error.
func (c ClassOverride) DefaultNullability() (NullableKind, bool) {
	if !c.hasDefaultNullability {
		return NonNullable, false
	}
	return c.defaultNullability, true
}

// SetDefaultNullability records the default nullability for properties and
// methods of this class, overwriting any prior value.
func (c *ClassOverride) SetDefaultNullability(kind NullableKind) {
	c.hasDefaultNullability = true
	c.defaultNullability = kind
}
