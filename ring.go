package knothash

import (
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions backend the Go implementation of the knot hash: a ring of
// values is twisted by reversing runs of it, one run per length, while a cursor walks the ring by
// each length plus an ever-growing skip.

const (
	RingSize  = 256 /* Conventional ring size; one slot per byte value. */
	Size      = 16  /* Bytes in a dense digest of a RingSize ring. */
	BlockSize = 16  /* Ring values XOR-folded into each digest byte. */
	rounds    = 64
	/* Dense mode runs every message through 64 rounds with the same five lengths appended to it.
	Both values are fixed; changing either changes every digest ever produced. */
)

var suffix = [...]int{17, 31, 73, 47, 23}

var (
	ErrInvalidLength = errors.New("knothash: length exceeds ring size")
	ErrEmptyBuffer   = errors.New("knothash: ring size must be positive")
)

// Ring is the circular list twisted by the knot hash. Its cursor and skip survive between calls
// to Rounds, so calling Round twice is the same as calling Rounds(2, ...) once.
type Ring struct {
	list         []int
	cursor, skip int
}

// NewRing returns a ring holding 0, 1, ..., size-1 with its cursor and skip at zero.
func NewRing(size int) (*Ring, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyBuffer, size)
	}
	r := &Ring{list: make([]int, size)}
	for i := range r.list {
		r.list[i] = i
	}
	return r, nil
}

// Len returns the number of values in the ring.
func (r *Ring) Len() int { return len(r.list) }

// List returns a copy of the ring's values starting from index 0.
func (r *Ring) List() []int {
	return append([]int(nil), r.list...)
}

// Round runs a single round over lengths.
func (r *Ring) Round(lengths []int) error { return r.Rounds(1, lengths) }

// Rounds twists the ring n times over lengths. Every length is checked before the first reversal,
// so an ErrInvalidLength leaves the ring exactly as it was.
func (r *Ring) Rounds(n int, lengths []int) error {
	if err := r.check(lengths); err != nil {
		return err
	}
	size := len(r.list)
	for i := 0; i < n; i++ {
		for _, length := range lengths {
			r.reverse(r.cursor, length)
			r.cursor = (r.cursor + (length+r.skip)%size) % size
			r.skip++
		}
	}
	return nil
}

// Dense folds each consecutive BlockSize values of the ring into one byte by XOR. A trailing
// block shorter than BlockSize is folded as-is.
func (r *Ring) Dense() []byte {
	dense := make([]byte, 0, (len(r.list)+BlockSize-1)/BlockSize)
	for blk := r.list; len(blk) > 0; {
		n := min(len(blk), BlockSize)
		var folded int
		for _, v := range blk[:n] {
			folded ^= v
		}
		dense = append(dense, byte(folded))
		blk = blk[n:]
	}
	return dense
}

func (r *Ring) check(lengths []int) error {
	for i, length := range lengths {
		if length < 0 || length > len(r.list) {
			return fmt.Errorf("%w: lengths[%d] is %d, ring size is %d",
				ErrInvalidLength, i, length, len(r.list))
		}
	}
	return nil
}

// reverse flips the run of length values starting at cursor, wrapping past the end of the list.
// Pairs are swapped by index from both ends of the run toward its middle.
func (r *Ring) reverse(cursor, length int) {
	size := len(r.list)
	for i, j := cursor, cursor+length-1; i < j; i, j = i+1, j-1 {
		a, b := i%size, j%size
		r.list[a], r.list[b] = r.list[b], r.list[a]
	}
}
