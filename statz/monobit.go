package main

import (
	"encoding/binary"
	"github.com/p7r0x7/knothash"
	"math/big"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = uint32(2e4)

/* Every digest is Size bytes; the tally runs over each of its bits. */
const digestBits = knothash.Size * 8

// meanBias returns how far, on average, each digest bit strays from being set in exactly half of
// hashes, as a percentage of that half.
func meanBias(hashes map[uint32]*big.Int) float64 {
	tally := make([]int64, digestBits)
	for _, h := range hashes {
		for i := digestBits - 1; i >= 0; i-- {
			if h.Bit(i) == 1 {
				tally[i]++
			}
		}
	}
	half := int64(len(hashes) >> 1)
	var total int64
	for i := range tally {
		if d := tally[i] - half; d < 0 {
			total -= d
		} else {
			total += d
		}
	}
	return float64(total) / digestBits / float64(half) * 100
}

func integerDigests() map[uint32]*big.Int {
	hashes, msg := make(map[uint32]*big.Int, ints), make([]byte, 4)
	for i := ints; i > 0; i-- {
		binary.BigEndian.PutUint32(msg, i)
		sum := knothash.Sum(msg)
		hashes[i] = big.NewInt(0).SetBytes(sum[:])
	}
	return hashes
}

/* One long keystream is cut into consecutive 16-byte messages. */
func randomDigests() map[uint32]*big.Int {
	const msgSize = 16
	stream, hashes := fill(int(ints)*msgSize), make(map[uint32]*big.Int, ints)
	for i := uint32(0); i < ints; i++ {
		sum := knothash.Sum(stream[i*msgSize : (i+1)*msgSize])
		hashes[i] = big.NewInt(0).SetBytes(sum[:])
	}
	return hashes
}
