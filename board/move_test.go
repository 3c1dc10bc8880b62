package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveDistance(t *testing.T) {
	cases := []struct {
		name string
		mv   Move
		dist int
	}{
		{"one step right", Move{OX: 2, OY: 2, NX: 3, NY: 2}, 1},
		{"one step diagonal", Move{OX: 2, OY: 2, NX: 3, NY: 3}, 1},
		{"jump two straight", Move{OX: 2, OY: 2, NX: 4, NY: 2}, 2},
		{"jump two diagonal", Move{OX: 2, OY: 2, NX: 4, NY: 4}, 2},
		{"knight-shaped jump", Move{OX: 2, OY: 2, NX: 4, NY: 3}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.dist, tc.mv.Distance())
		})
	}
}

func TestMoveIsCloneIsJump(t *testing.T) {
	clone := Move{OX: 0, OY: 0, NX: 1, NY: 0}
	jump := Move{OX: 0, OY: 0, NX: 2, NY: 0}

	assert.True(t, clone.IsClone())
	assert.False(t, clone.IsJump())
	assert.True(t, jump.IsJump())
	assert.False(t, jump.IsClone())
}

func TestMoveString(t *testing.T) {
	mv := Move{OX: 0, OY: 0, NX: 1, NY: 1, Score: 3}
	assert.Contains(t, mv.String(), "clone")
	assert.Contains(t, mv.String(), "h=3")
}
