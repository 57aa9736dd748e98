package override

import "testing"

func TestClassOverrideZeroValueHasNoDefault(t *testing.T) {
	var c ClassOverride
	if _, ok := c.DefaultNullability(); ok {
		t.Fatalf("zero-value ClassOverride should have no default nullability")
	}
}

func TestClassOverrideSetThenGet(t *testing.T) {
	for _, kind := range []NullableKind{NonNullable, Nullable, Unknown} {
		var c ClassOverride
		c.SetDefaultNullability(kind)
		got, ok := c.DefaultNullability()
		if !ok {
			t.Fatalf("default nullability missing after set(%v)", kind)
		}
		if got != kind {
			t.Fatalf("default nullability = %v, want %v", got, kind)
		}
	}
}

func TestClassOverrideSetOverwrites(t *testing.T) {
	var c ClassOverride
	c.SetDefaultNullability(Unknown)
	c.SetDefaultNullability(NonNullable)
	got, ok := c.DefaultNullability()
	if !ok || got != NonNullable {
		t.Fatalf("default nullability = %v, %v; want NonNullable, true", got, ok)
	}
}

func TestClassOverrideEquality(t *testing.T) {
	var a, b ClassOverride
	if a != b {
		t.Fatalf("two zero-value records must be equal")
	}
	a.SetDefaultNullability(Nullable)
	if a == b {
		t.Fatalf("present and absent records must differ")
	}
	b.SetDefaultNullability(Unknown)
	if a == b {
		t.Fatalf("records with different kinds must differ")
	}
	b.SetDefaultNullability(Nullable)
	if a != b {
		t.Fatalf("records with the same kind must be equal")
	}
}
