package binpow

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func mulInt64(a int64, b int64) int64 {
	return a * b
}

func TestPowMonoidMatchesPow(t *testing.T) {
	for _, base := range []int64{2, 3, -2, 0, 1, 10} {
		for exp := int64(0); exp <= 15; exp++ {
			got, err := PowMonoid(int64(1), mulInt64, base, exp)
			require.Nil(t, err)
			require.Equal(t, MustPow(base, exp), got, "base %d, exp %d", base, exp)
		}
	}
}

func TestPowMonoidZeroExponent(t *testing.T) {
	got, err := PowMonoid(int64(1), mulInt64, 42, 0)
	require.Nil(t, err)
	require.Equal(t, int64(1), got)
}

func TestPowMonoidNegativeExponent(t *testing.T) {
	_, err := PowMonoid(int64(1), mulInt64, 2, -1)
	require.NotNil(t, err)
}

func TestPowMonoidStringRepetition(t *testing.T) {
	concat := func(a string, b string) string {
		return a + b
	}
	got, err := PowMonoid("", concat, "ab", 3)
	require.Nil(t, err)
	require.Equal(t, "ababab", got)

	got, err = PowMonoid("", concat, "x", 0)
	require.Nil(t, err)
	require.Equal(t, "", got)
}

func TestPowMonoidCombineCount(t *testing.T) {
	// One squaring combine per iteration, plus one result combine per
	// set bit of the exponent.
	for _, exp := range []uint64{1, 2, 3, 7, 8, 100, 1023, 1024} {
		calls := 0
		counting := func(a int64, b int64) int64 {
			calls++
			return a * b
		}
		_, err := PowMonoid(int64(1), counting, 1, exp)
		require.Nil(t, err)
		want := Iterations(exp) + bits.OnesCount64(exp)
		require.Equal(t, want, calls, "exponent %d", exp)
	}
}
