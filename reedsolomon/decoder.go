package reedsolomon

import (
	"fmt"

	"github.com/arloliu/stegano/errs"
)

// Decoder corrects symbol errors in Reed-Solomon codewords.
//
// Decoding uses syndrome computation, the extended Euclidean algorithm for
// the error locator and evaluator polynomials, a Chien search for error
// positions, and Forney's formula for magnitudes. Decoders are stateless
// and safe for concurrent use.
type Decoder struct {
	field *Field
}

// NewDecoder creates a Decoder over the given field.
func NewDecoder(field *Field) *Decoder {
	return &Decoder{field: field}
}

// Decode corrects up to twoS/2 symbol errors in received, in place, and
// returns the number of symbols corrected.
//
// received holds the full codeword (data followed by twoS parity symbols).
// Returns ErrUncorrectableErrors if the error pattern exceeds the
// correction budget.
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	p := newPoly(d.field, append([]int(nil), received...))

	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := p.evaluateAt(d.field.Exp(i + d.field.generatorBase))
		syndromeCoefficients[len(syndromeCoefficients)-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := newPoly(d.field, syndromeCoefficients)

	sigma, omega, err := d.runEuclideanAlgorithm(d.field.monomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}

	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)

	for i, location := range errorLocations {
		position := len(received) - 1 - d.field.Log(location)
		if position < 0 {
			return 0, fmt.Errorf("%w: bad error location", errs.ErrUncorrectableErrors)
		}
		received[position] ^= errorMagnitudes[i]
	}

	return len(errorLocations), nil
}

// DecodeBytes corrects a byte codeword in place and returns the data
// portion (codeword minus the trailing ecSymbols parity bytes) along with
// the number of symbols corrected.
func (d *Decoder) DecodeBytes(codeword []byte, ecSymbols int) ([]byte, int, error) {
	if len(codeword) <= ecSymbols {
		return nil, 0, fmt.Errorf("%w: codeword of %d symbols has no data beyond %d parity",
			errs.ErrUncorrectableErrors, len(codeword), ecSymbols)
	}

	received := make([]int, len(codeword))
	for i, b := range codeword {
		received[i] = int(b)
	}

	corrected, err := d.Decode(received, ecSymbols)
	if err != nil {
		return nil, 0, err
	}

	data := make([]byte, len(codeword)-ecSymbols)
	for i := range data {
		data[i] = byte(received[i])
	}

	return data, corrected, nil
}

// runEuclideanAlgorithm runs the extended Euclidean algorithm on a and b
// until the remainder degree drops below R/2, yielding the error locator
// sigma and error evaluator omega.
func (d *Decoder) runEuclideanAlgorithm(a, b *poly, R int) (sigma, omega *poly, err error) {
	if a.degree() < b.degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := d.field.zero, d.field.one

	for 2*r.degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.isZero() {
			// Euclidean algorithm already terminated?
			return nil, nil, fmt.Errorf("%w: r_{i-1} was zero", errs.ErrUncorrectableErrors)
		}

		r = rLastLast
		q := d.field.zero
		denominatorLeadingTerm := rLast.coefficient(rLast.degree())
		dltInverse := d.field.Inverse(denominatorLeadingTerm)
		for r.degree() >= rLast.degree() && !r.isZero() {
			degreeDiff := r.degree() - rLast.degree()
			scale := d.field.Multiply(r.coefficient(r.degree()), dltInverse)
			q = q.addOrSubtract(d.field.monomial(degreeDiff, scale))
			r = r.addOrSubtract(rLast.multiplyByMonomial(degreeDiff, scale))
		}

		t = q.multiply(tLast).addOrSubtract(tLastLast)

		if r.degree() >= rLast.degree() {
			return nil, nil, fmt.Errorf("%w: division algorithm failed to reduce polynomial",
				errs.ErrUncorrectableErrors)
		}
	}

	sigmaTildeAtZero := t.coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, fmt.Errorf("%w: sigmaTilde(0) was zero", errs.ErrUncorrectableErrors)
	}

	inverse := d.field.Inverse(sigmaTildeAtZero)
	sigma = t.multiplyScalar(inverse)
	omega = r.multiplyScalar(inverse)

	return sigma, omega, nil
}

// findErrorLocations runs a Chien search over the field for the roots of
// the error locator polynomial.
func (d *Decoder) findErrorLocations(errorLocator *poly) ([]int, error) {
	numErrors := errorLocator.degree()
	if numErrors == 1 {
		// Shortcut for the single-error case.
		return []int{errorLocator.coefficient(1)}, nil
	}

	result := make([]int, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if errorLocator.evaluateAt(i) == 0 {
			result = append(result, d.field.Inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, fmt.Errorf("%w: error locator degree does not match number of roots",
			errs.ErrUncorrectableErrors)
	}

	return result, nil
}

// findErrorMagnitudes applies Forney's formula at each error location.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *poly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := d.field.Inverse(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			term := d.field.Multiply(errorLocations[j], xiInverse)
			denominator = d.field.Multiply(denominator, term^1)
		}
		result[i] = d.field.Multiply(errorEvaluator.evaluateAt(xiInverse), d.field.Inverse(denominator))
		if d.field.generatorBase != 0 {
			result[i] = d.field.Multiply(result[i], xiInverse)
		}
	}

	return result
}
