package reedsolomon

// poly is a polynomial over a GF(256) field, coefficients stored from the
// highest-degree term down.
type poly struct {
	field        *Field
	coefficients []int
}

// newPoly builds a polynomial, stripping leading zero coefficients.
func newPoly(field *Field, coefficients []int) *poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficient list")
	}

	if len(coefficients) > 1 && coefficients[0] == 0 {
		// Leading term is zero; normalize by trimming.
		first := 1
		for first < len(coefficients) && coefficients[first] == 0 {
			first++
		}
		if first == len(coefficients) {
			return &poly{field: field, coefficients: []int{0}}
		}
		coefficients = coefficients[first:]
	}

	return &poly{field: field, coefficients: coefficients}
}

func (p *poly) degree() int {
	return len(p.coefficients) - 1
}

func (p *poly) isZero() bool {
	return p.coefficients[0] == 0
}

// coefficient returns the coefficient of the x^degree term.
func (p *poly) coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// evaluateAt evaluates the polynomial at a using Horner's scheme.
func (p *poly) evaluateAt(a int) int {
	if a == 0 {
		return p.coefficient(0)
	}

	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result ^= c
		}

		return result
	}

	result := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		result = p.field.Multiply(a, result) ^ c
	}

	return result
}

// addOrSubtract returns p + other (addition and subtraction coincide in
// characteristic 2).
func (p *poly) addOrSubtract(other *poly) *poly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}

	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sum := make([]int, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = smaller[i-diff] ^ larger[i]
	}

	return newPoly(p.field, sum)
}

// multiply returns the product polynomial p * other.
func (p *poly) multiply(other *poly) *poly {
	if p.isZero() || other.isZero() {
		return p.field.zero
	}

	a, b := p.coefficients, other.coefficients
	product := make([]int, len(a)+len(b)-1)
	for i, ac := range a {
		for j, bc := range b {
			product[i+j] ^= p.field.Multiply(ac, bc)
		}
	}

	return newPoly(p.field, product)
}

// multiplyScalar returns p scaled by the field element scalar.
func (p *poly) multiplyScalar(scalar int) *poly {
	if scalar == 0 {
		return p.field.zero
	}
	if scalar == 1 {
		return p
	}

	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}

	return newPoly(p.field, product)
}

// multiplyByMonomial returns p * coefficient * x^degree.
func (p *poly) multiplyByMonomial(degree, coefficient int) *poly {
	if degree < 0 {
		panic("reedsolomon: negative monomial degree")
	}
	if coefficient == 0 {
		return p.field.zero
	}

	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}

	return newPoly(p.field, product)
}

// divide returns the quotient and remainder of p / other.
func (p *poly) divide(other *poly) (quotient, remainder *poly) {
	if other.isZero() {
		panic("reedsolomon: divide by zero polynomial")
	}

	quotient = p.field.zero
	remainder = p

	denominatorLeading := other.coefficient(other.degree())
	inverseDenominator := p.field.Inverse(denominatorLeading)

	for remainder.degree() >= other.degree() && !remainder.isZero() {
		degreeDiff := remainder.degree() - other.degree()
		scale := p.field.Multiply(remainder.coefficient(remainder.degree()), inverseDenominator)
		term := other.multiplyByMonomial(degreeDiff, scale)
		iterationQuotient := p.field.monomial(degreeDiff, scale)
		quotient = quotient.addOrSubtract(iterationQuotient)
		remainder = remainder.addOrSubtract(term)
	}

	return quotient, remainder
}
