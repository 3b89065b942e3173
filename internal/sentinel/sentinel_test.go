package sentinel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsSingleton(t *testing.T) {
	assert.Same(t, Value(), Value())
}

func TestIs_MatchesOnlyTheSingleton(t *testing.T) {
	assert.True(t, Is(Value()))

	// A distinct Marker is ordinary data, even though it has the same type
	// and (zero) structure.
	assert.False(t, Is(&Marker{}))
	assert.False(t, Is((*Marker)(nil)))
}

func TestIs_NoStructuralCollision(t *testing.T) {
	// Values that print like the sentinel must not match it.
	lookalike := fmt.Sprintf("%v", Value())
	assert.False(t, Is(lookalike))

	assert.False(t, Is(nil))
	assert.False(t, Is("sentinel"))
	assert.False(t, Is(struct{ id string }{id: "x"}))
}
