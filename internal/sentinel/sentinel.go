// Package sentinel provides the process-unique marker the filter engine uses
// to tag dropped elements inside its intermediate results. The marker is
// recognized strictly by identity: Is compares against the singleton pointer,
// never by value, so an element that happens to look like the marker (same
// string form, a zero-value Marker constructed elsewhere) can never be
// mistaken for it.
package sentinel

import (
	"sync"

	"github.com/google/uuid"
)

// Marker is the sentinel type. Only the singleton returned by Value counts as
// the sentinel; any other Marker instance is ordinary data.
type Marker struct {
	id string
}

// String identifies the marker in debug output. The id plays no part in
// sentinel recognition.
func (m *Marker) String() string {
	return "sentinel(" + m.id + ")"
}

var (
	once   sync.Once
	marker *Marker
)

// Value returns the process-wide sentinel. The marker is allocated exactly
// once for the lifetime of the process.
func Value() *Marker {
	once.Do(func() {
		marker = &Marker{id: uuid.NewString()}
	})
	return marker
}

// Is reports whether v is the sentinel. The check is pointer identity against
// the singleton; structural equality would risk false positives for arbitrary
// element types and is deliberately not used.
func Is(v any) bool {
	m, ok := v.(*Marker)
	return ok && m == Value()
}
