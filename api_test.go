package knothash

import (
	"context"
	"encoding/hex"
	"fmt"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"go.uber.org/goleak"
	"io"
	"testing"
)

/* SumAll spawns workers; none may outlive the tests. */
func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

func TestDigest(t *testing.T) {
	h := New()
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
	require.Equal(t, "a2582a3a0e66e6e86e3812dcb672a272", hex.EncodeToString(h.Sum(nil)))

	_, _ = h.Write([]byte("AoC "))
	_, _ = io.WriteString(h, "2017")
	prefix := []byte("sum:")
	out := h.Sum(prefix)
	require.Equal(t, "sum:", string(out[:4]))
	require.Equal(t, "33efeb34ea91902bb2f59c9920caa6cd", hex.EncodeToString(out[4:]))

	/* Sum does not disturb the state. */
	require.Equal(t, out[4:], h.Sum(nil))

	h.Reset()
	_, _ = h.Write([]byte("1,2,3"))
	require.Equal(t, "3efbe78a8d82f29979031a4aa0b16a9d", hex.EncodeToString(h.Sum(nil)))
}

func TestSumAll(t *testing.T) {
	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = string(keystream(i+1, byte(i)))
	}
	inputs[0], inputs[1] = "AoC 2017", "1,2,4"

	for _, jobs := range []int{0, 1, 3, 200} {
		sums, err := SumAll(context.Background(), RingSize, inputs, jobs)
		require.NoError(t, err)
		require.Len(t, sums, len(inputs))
		require.Equal(t, "33efeb34ea91902bb2f59c9920caa6cd", sums[0])
		require.Equal(t, "63960835bcdc130f0b66d7ff4f6a5a8e", sums[1])
		for i, input := range inputs {
			want, _ := DenseHash(RingSize, input)
			require.Equal(t, want, sums[i], "jobs %d input %d", jobs, i)
		}
	}

	sums, err := SumAll(context.Background(), RingSize, nil, 0)
	require.NoError(t, err)
	require.Empty(t, sums)
}

func TestSumAll_Errors(t *testing.T) {
	_, err := SumAll(context.Background(), 64, []string{"", "a", "b"}, 2)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = SumAll(context.Background(), 0, []string{""}, 2)
	require.ErrorIs(t, err, ErrEmptyBuffer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SumAll(ctx, RingSize, []string{"x", "y"}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkKnotHash(b *testing.B) {
	d, msg := New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Write(msg)
		d.Sum(nil)
		d.Reset()
	}
}

func BenchmarkSumAll(b *testing.B) {
	inputs := make([]string, 64)
	for i := range inputs {
		inputs[i] = string(keystream(1<<10, byte(i)))
	}
	b.SetBytes(int64(len(inputs)) << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SumAll(context.Background(), RingSize, inputs, 0)
	}
}

func BenchmarkRound(b *testing.B) {
	r, _ := NewRing(RingSize)
	lengths := denseLengths(keystream(64, 1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Round(lengths)
	}
	b.StopTimer()
	fmt.Printf("%x\n", r.Dense())
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
	}
	b.StopTimer()
	h.Reset()
}

func BenchmarkXXH3(b *testing.B) {
	h, msg := xxh3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(msg)
		h.Sum(nil)
	}
	b.StopTimer()
	h.Reset()
}
