package knothash

import (
	"context"
	"fmt"
	"golang.org/x/sync/errgroup"
	"hash"
	"runtime"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface.

// Digest buffers everything written to it; every round of the knot hash walks the whole message,
// so nothing can be compressed until Sum is called.
type Digest struct {
	msg []byte
}

var threads = runtime.NumCPU()

func New() hash.Hash { return &Digest{} }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(buf []byte) (int, error) {
	d.msg = append(d.msg, buf...)
	return len(buf), nil
}

func (d *Digest) WriteString(s string) (int, error) {
	d.msg = append(d.msg, s...)
	return len(s), nil
}

// Sum appends the current digest to buf; d may keep being written to afterward.
func (d *Digest) Sum(buf []byte) []byte {
	sum := Sum(d.msg)
	return append(buf, sum[:]...)
}

func (d *Digest) Reset() {
	clear(d.msg)
	d.msg = d.msg[:0]
}

// SumAll dense-hashes every input over its own ring of size values, at most jobs at a time
// (runtime.NumCPU() when jobs <= 0), and returns the hex digests in input order. The first error
// stops new work from being scheduled and is returned alone.
func SumAll(ctx context.Context, size int, inputs []string, jobs int) ([]string, error) {
	if jobs <= 0 {
		jobs = threads
	}
	sums := make([]string, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break /* A worker failed or ctx was cancelled. */
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sum, err := DenseHash(size, input)
			if err != nil {
				return fmt.Errorf("knothash: SumAll: input %d: %w", i, err)
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sums, nil
}
