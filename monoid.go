package binpow

import (
	"github.com/Invicton-Labs/go-binpow/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// PowMonoid applies the same square-and-multiply iteration as Pow to
// an arbitrary associative operation with an identity element, so the
// loop can serve multiplicative structures beyond scalar numbers
// (e.g. string repetition, or any type with a well-defined combine).
// The combine function must be associative, and the identity value
// must satisfy combine(identity, x) == x for all x in the domain.
// Negative exponents are a domain error; there is no generic
// reciprocal.
func PowMonoid[T any, ExpType constraints.Integer](identity T, combine func(a T, b T) T, base T, exp ExpType) (T, stackerr.Error) {
	if exp < 0 {
		return identity, stackerr.Errorf("exponent must be non-negative (got %d)", exp)
	}
	result := identity
	a := base
	for exp > 0 {
		if exp&1 == 1 {
			result = combine(result, a)
		}
		a = combine(a, a)
		exp >>= 1
	}
	return result, nil
}
