package knothash

import (
	"encoding/hex"
	"fmt"
	"github.com/coregx/coregex"
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Sparse and dense front ends to Ring, plus the length-list parser used by the sparse mode.

/* A field of a length list is a run of digits, optionally padded with whitespace. */
var field = coregex.MustCompile(`^\s*\d+\s*$`)

// SparseHash runs one round of lengths over a ring of size values and returns the product of the
// ring's first two values.
func SparseHash(size int, lengths []int) (int, error) {
	if size < 2 {
		return 0, fmt.Errorf("%w: sparse hash needs at least 2 values, got %d", ErrEmptyBuffer, size)
	}
	r, err := NewRing(size)
	if err != nil {
		return 0, err
	}
	if err = r.Round(lengths); err != nil {
		return 0, err
	}
	return r.list[0] * r.list[1], nil
}

// DenseSum runs 64 rounds of msg's bytes, followed by the fixed suffix, over a ring of size values
// and returns the ring XOR-folded into one byte per BlockSize values.
func DenseSum(size int, msg []byte) ([]byte, error) {
	r, err := NewRing(size)
	if err != nil {
		return nil, err
	}
	if err = r.Rounds(rounds, denseLengths(msg)); err != nil {
		return nil, err
	}
	return r.Dense(), nil
}

// DenseHash is DenseSum rendered as lowercase hex; a RingSize ring yields 32 characters.
func DenseHash(size int, input string) (string, error) {
	sum, err := DenseSum(size, []byte(input))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Sum returns the dense digest of data over a RingSize ring.
func Sum(data []byte) (sum [Size]byte) {
	r, _ := NewRing(RingSize)
	_ = r.Rounds(rounds, denseLengths(data)) /* No byte can exceed RingSize. */
	copy(sum[:], r.Dense())
	return sum
}

// ParseLengths reads a comma-separated list of non-negative integers. Fields that are empty, not
// numeric, or too large for an int are skipped rather than reported.
func ParseLengths(s string) []int {
	var lengths []int
	for _, f := range strings.Split(s, ",") {
		if !field.MatchString(f) {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSpace(f)); err == nil {
			lengths = append(lengths, v)
		}
	}
	return lengths
}

func denseLengths(msg []byte) []int {
	lengths := make([]int, len(msg), len(msg)+len(suffix))
	for i, c := range msg {
		lengths[i] = int(c)
	}
	return append(lengths, suffix[:]...)
}
