// File: grid/hash_test.go
package grid

import (
	"crypto/sha256"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromHash_MirrorSymmetry verifies the defining identicon property:
// column c and column N-1-c always agree, for even and odd sizes.
func TestFromHash_MirrorSymmetry(t *testing.T) {
	digest := sha256.Sum256([]byte("mirror"))
	for _, size := range []int{4, 5, 8, 10} {
		g, err := FromHash(digest[:], size)
		require.NoError(t, err, "size %d", size)
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				assert.Equal(t,
					g.Occupied(size-1-col, row), g.Occupied(col, row),
					"size %d: cell (%d,%d) breaks mirror symmetry", size, col, row)
			}
		}
	}
}

// TestFromHash_Deterministic checks that the same digest always derives
// the same grid, and a different digest (almost surely) a different one.
func TestFromHash_Deterministic(t *testing.T) {
	d1 := sha256.Sum256([]byte("alpha"))
	d2 := sha256.Sum256([]byte("beta"))

	a, err := FromHash(d1[:], 5)
	require.NoError(t, err)
	b, err := FromHash(d1[:], 5)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a.Cells(Foreground), b.Cells(Foreground)),
		"same digest must derive identical grids")

	c, err := FromHash(d2[:], 5)
	require.NoError(t, err)
	assert.NotEqual(t, a.Cells(Foreground), c.Cells(Foreground),
		"distinct digests should derive distinct grids")
}

// TestFromHash_ParityRule pins the derivation rule itself: even bytes
// occupy, odd bytes do not, walking the left half row-major.
func TestFromHash_ParityRule(t *testing.T) {
	// Size 4 → half = 2, 8 derived cells from bytes 0..7.
	digest := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	g, err := FromHash(digest, 4)
	require.NoError(t, err)

	want := map[Cell]bool{
		{0, 0}: true, {1, 0}: false, // bytes 0,1
		{0, 1}: true, {1, 1}: false, // bytes 2,3
		{0, 2}: true, {1, 2}: false, // bytes 4,5
		{0, 3}: true, {1, 3}: false, // bytes 6,7
	}
	for cell, occ := range want {
		assert.Equal(t, occ, g.Occupied(cell.Col, cell.Row), "cell %+v", cell)
		// And its mirror.
		assert.Equal(t, occ, g.Occupied(3-cell.Col, cell.Row), "mirror of %+v", cell)
	}
}

// TestFromHash_Validation covers the error taxonomy.
func TestFromHash_Validation(t *testing.T) {
	digest := sha256.Sum256([]byte("x"))
	_, err := FromHash(digest[:], 3)
	assert.ErrorIs(t, err, ErrGridSize)
	_, err = FromHash(digest[:7], 5)
	assert.ErrorIs(t, err, ErrHashLength)
	_, err = FromHash(nil, 5)
	assert.ErrorIs(t, err, ErrHashLength)
}
