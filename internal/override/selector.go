package override

import "strings"

// SelectorRef is a borrowed view of a method selector, suitable for
// referencing selector data held elsewhere. It does not copy the
// identifiers it points at; the caller keeps the backing data alive for as
// long as the reference is used.
//
// NumPieces counts the selector's arguments: the nullary selector "foo" has
// a single identifier and NumPieces 0, while "foo:" has the same identifier
// and NumPieces 1.
type SelectorRef struct {
	NumPieces   uint
	Identifiers []string
}

// String renders the canonical selector spelling: the lone identifier for a
// nullary selector, otherwise each piece followed by a colon.
func (s SelectorRef) String() string {
	if s.NumPieces == 0 {
		if len(s.Identifiers) == 0 {
			return ""
		}
		return s.Identifiers[0]
	}
	var b strings.Builder
	for i := uint(0); i < s.NumPieces; i++ {
		if i < uint(len(s.Identifiers)) {
			b.WriteString(s.Identifiers[i])
		}
		b.WriteByte(':')
	}
	return b.String()
}
