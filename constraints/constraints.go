package constraints

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Complex is a constraint that permits any complex numeric type.
type Complex interface {
	~complex64 | ~complex128
}

// Simple is a constraint that permits any integer or floating-point
// type.
type Simple interface {
	Integer | Float
}

// Numeric is a constraint that permits any numeric type.
type Numeric interface {
	Simple | Complex
}

// Ordered is a constraint that permits any type that supports the
// < <= >= > operators.
type Ordered interface {
	Integer | Float | ~string
}
