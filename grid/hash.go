package grid

import "fmt"

// minDigestLen is the smallest digest accepted by FromHash. Any
// cryptographic digest (MD5 and up) clears it comfortably.
const minDigestLen = 8

// FromHash derives a mirrored occupancy grid from a cryptographic digest.
//
// Only the left half of each row (columns 0 .. ⌈N/2⌉-1) is derived directly:
// cell (c,r) is occupied iff digest[(r*⌈N/2⌉ + c) mod len(digest)] is even.
// Columns c ≥ ⌈N/2⌉ mirror column N-1-c, producing the vertical-axis
// symmetry identicons are recognized by.
//
// Returns ErrGridSize for an invalid size, ErrHashLength if the digest is
// shorter than 8 bytes.
// Complexity: O(N²).
func FromHash(digest []byte, size int) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, size)
	}
	if len(digest) < minDigestLen {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrHashLength, len(digest), minDigestLen)
	}

	half := (size + 1) / 2
	occupied := make([]bool, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < half; col++ {
			b := digest[(row*half+col)%len(digest)]
			if b%2 != 0 {
				continue
			}
			occupied[row*size+col] = true
			// Mirror across the vertical axis; the middle column of an
			// odd-sized grid mirrors onto itself.
			occupied[row*size+(size-1-col)] = true
		}
	}

	return &Grid{size: size, occupied: occupied}, nil
}
