package binpow

import (
	"math/bits"

	"github.com/Invicton-Labs/go-binpow/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// Pow computes the base raised to the given power using iterative
// binary (square-and-multiply) exponentiation, which uses O(log exp)
// multiplications instead of the O(exp) of repeated multiplication.
// An exponent of 0 returns 1 for any base, including a base of 0.
// Negative exponents are a domain error; for floating-point bases,
// PowFloat supports them via the reciprocal.
//
// Integer overflow is not masked; it wraps however the base type's
// multiplication wraps. Floating-point rounding error accumulates
// over O(log exp) multiplications.
func Pow[BaseType constraints.Simple, ExpType constraints.Integer](base BaseType, exp ExpType) (BaseType, stackerr.Error) {
	if exp < 0 {
		return 0, stackerr.Errorf("exponent must be non-negative (got %d)", exp)
	}
	var result BaseType = 1
	a := base
	for exp > 0 {
		if exp&1 == 1 {
			result *= a
		}
		a *= a
		exp >>= 1
	}
	return result, nil
}

// MustPow is the same as Pow, but treats a negative exponent as
// programmer misuse and panics instead of returning an error.
func MustPow[BaseType constraints.Simple, ExpType constraints.Integer](base BaseType, exp ExpType) BaseType {
	if exp < 0 {
		panic("MustPow cannot be used with negative exponents")
	}
	v, _ := Pow(base, exp)
	return v
}

// PowFloat computes the base raised to the given power for
// floating-point bases. Unlike Pow, negative exponents are supported:
// the result is the reciprocal of the positive-exponent result, so
// PowFloat(b, -n) == 1 / PowFloat(b, n). A zero base with a negative
// exponent divides by zero and yields the corresponding IEEE
// infinity.
func PowFloat[BaseType constraints.Float, ExpType constraints.Integer](base BaseType, exp ExpType) BaseType {
	reciprocal := exp < 0
	var mag uint64
	if reciprocal {
		// Negating the minimum value of a signed type in place would
		// overflow back to itself, so take the magnitude through the
		// unsigned domain instead.
		mag = uint64(-(exp + 1)) + 1
	} else {
		mag = uint64(exp)
	}
	var result BaseType = 1
	a := base
	for mag > 0 {
		if mag&1 == 1 {
			result *= a
		}
		a *= a
		mag >>= 1
	}
	if reciprocal {
		return 1 / result
	}
	return result
}

// Iterations returns the number of square-and-multiply iterations
// that Pow performs for a given exponent: 0 for exponents <= 0,
// otherwise the bit length of the exponent (floor(log2(exp)) + 1).
func Iterations[ExpType constraints.Integer](exp ExpType) int {
	if exp <= 0 {
		return 0
	}
	return bits.Len64(uint64(exp))
}
