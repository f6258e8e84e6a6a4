// Package reedsolomon implements Reed-Solomon error correction over
// GF(256), in the shape barcode libraries use it: an Encoder that appends
// parity symbols to a data block and a Decoder that corrects symbol errors
// in place.
//
// The field is built over the primitive polynomial 0x11d with generator
// element 2, and codeword roots start at alpha^0. A codeword of n symbols
// with twoS parity symbols tolerates up to twoS/2 corrupted symbols at
// unknown positions.
package reedsolomon

import "fmt"

// Field represents a GF(2^8) Galois field with precomputed exp/log tables.
//
// Fields are immutable after construction and safe for concurrent use.
type Field struct {
	expTable      []int
	logTable      []int
	primitive     int
	generatorBase int
	zero          *poly
	one           *poly
}

// Field256 is the field used by the stegano wire format: GF(256) over the
// primitive polynomial 0x11d, roots indexed from alpha^0.
var Field256 = NewField(0x11d, 0)

// NewField builds a GF(256) field over the given primitive polynomial.
// generatorBase is the exponent of the first root of the generator
// polynomial (0 or 1 in common codes).
func NewField(primitive, generatorBase int) *Field {
	f := &Field{
		expTable:      make([]int, 256),
		logTable:      make([]int, 256),
		primitive:     primitive,
		generatorBase: generatorBase,
	}

	x := 1
	for i := 0; i < 256; i++ {
		f.expTable[i] = x
		x <<= 1 // multiply by the generator element 2
		if x >= 256 {
			x ^= primitive
			x &= 0xff
		}
	}
	for i := 0; i < 255; i++ {
		f.logTable[f.expTable[i]] = i
	}
	// logTable[0] stays 0 but is never queried; Log panics on 0.

	f.zero = newPoly(f, []int{0})
	f.one = newPoly(f, []int{1})

	return f
}

// Exp returns the generator element raised to the power a.
func (f *Field) Exp(a int) int {
	return f.expTable[a%255]
}

// Log returns the discrete logarithm of a. Panics if a is 0, which has no
// logarithm; callers guard against zero operands.
func (f *Field) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}

	return f.logTable[a]
}

// Inverse returns the multiplicative inverse of a. Panics if a is 0.
func (f *Field) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse of 0")
	}

	return f.expTable[255-f.logTable[a]] // alpha^(255 - log a)
}

// Multiply returns the field product of a and b.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	return f.expTable[(f.logTable[a]+f.logTable[b])%255]
}

// Add returns the field sum of a and b (carry-less XOR).
func (f *Field) Add(a, b int) int {
	return a ^ b
}

// monomial builds the polynomial coefficient * x^degree.
func (f *Field) monomial(degree, coefficient int) *poly {
	if degree < 0 {
		panic(fmt.Sprintf("reedsolomon: negative monomial degree %d", degree))
	}
	if coefficient == 0 {
		return f.zero
	}

	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient

	return newPoly(f, coefficients)
}
