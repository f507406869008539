package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gridcalc/internal/grid"
)

func TestIsReference(t *testing.T) {
	t.Parallel()

	valid := []string{"A1", "A12", "D5", "Z99", "AB7"}
	for _, token := range valid {
		assert.True(t, IsReference(token), "token %q", token)
	}

	invalid := []string{"", "a1", "A", "12", "A123", "A1B", "#ERR", "A 1", "-A1", "###a32432"}
	for _, token := range invalid {
		assert.False(t, IsReference(token), "token %q", token)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token string
		want  grid.Pos
	}{
		{"A1", grid.Pos{Row: 0, Col: 0}},
		{"A12", grid.Pos{Row: 11, Col: 0}},
		{"D5", grid.Pos{Row: 4, Col: 3}},
		{"Z99", grid.Pos{Row: 98, Col: 25}},
		// Only the first letter contributes to the column.
		{"AB7", grid.Pos{Row: 6, Col: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := Resolve(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects non-reference tokens", func(t *testing.T) {
		for _, token := range []string{"", "a1", "A123", "7"} {
			_, err := Resolve(token)
			assert.Error(t, err, "token %q", token)
		}
	})
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A1", Name(grid.Pos{Row: 0, Col: 0}))
	assert.Equal(t, "D5", Name(grid.Pos{Row: 4, Col: 3}))
	assert.Equal(t, "(0,30)", Name(grid.Pos{Row: 0, Col: 30}))
}
