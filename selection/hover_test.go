package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitHover(t *testing.T) {
	const height = 5 // midpoint at 2

	tests := []struct {
		name              string
		dragIdx, hoverIdx int
		offset            int
		want              bool
	}{
		{"forward above midpoint", 0, 2, 1, false},
		{"forward at midpoint", 0, 2, 2, true},
		{"forward below midpoint", 0, 2, 4, true},
		{"backward below midpoint", 3, 1, 4, false},
		{"backward at midpoint", 3, 1, 2, true},
		{"backward above midpoint", 3, 1, 0, true},
		{"same index never commits", 2, 2, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommitHover(tt.dragIdx, tt.hoverIdx, tt.offset, height)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommitHoverDegenerateHeight(t *testing.T) {
	assert.False(t, CommitHover(0, 1, 0, 0))
	assert.False(t, CommitHover(0, 1, 0, -3))
}

// Adjacent cards must not oscillate: once a forward move commits past a
// midpoint, the reverse move at the same pointer offset must not commit.
func TestCommitHoverHysteresis(t *testing.T) {
	const height = 5

	// Dragging 0 over 1, pointer just past the midpoint: commits.
	assert.True(t, CommitHover(0, 1, 3, height))
	// After the swap the drag index is 1; the pointer still sits at
	// offset 3 over the same card, now index 0. A backward commit would
	// need the pointer above the midpoint, so nothing happens.
	assert.False(t, CommitHover(1, 0, 3, height))
}
