package core

import "github.com/holiman/uint256"

// Polynomial is a dense univariate polynomial: coefficients[i] is the
// coefficient of x^i. The slice may carry trailing zeros; Degree() reports
// the index of the highest non-zero coefficient, or -1 for the zero
// polynomial (including the empty slice). Polynomials are immutable: every
// operation returns a fresh value.
type Polynomial struct {
	coefficients []*FieldElement
}

// NewPolynomial wraps a coefficient slice as a Polynomial. The slice is not
// copied defensively by callers within this package; callers outside it
// should treat the slice as owned by the polynomial afterward.
func NewPolynomial(coefficients []*FieldElement) *Polynomial {
	return &Polynomial{coefficients: coefficients}
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p *Polynomial) Degree() int {
	if len(p.coefficients) == 0 {
		return -1
	}
	allZero := true
	maxIndex := 0
	for i, c := range p.coefficients {
		if !c.IsZero() {
			allZero = false
			maxIndex = i
		}
	}
	if allZero {
		return -1
	}
	return maxIndex
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return p.Degree() == -1 }

// LeadingCoefficient returns the coefficient of the highest-degree term.
// Precondition: Degree() >= 0.
func (p *Polynomial) LeadingCoefficient() *FieldElement {
	d := p.Degree()
	if d < 0 {
		panic("core: leading coefficient of the zero polynomial is undefined")
	}
	return p.coefficients[d]
}

// Coefficient returns the coefficient of x^degree, or the field's zero if
// degree is out of range.
func (p *Polynomial) Coefficient(degree int, field *Field) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return field.Zero()
	}
	return p.coefficients[degree]
}

func (p *Polynomial) fieldOf() *Field {
	for _, c := range p.coefficients {
		return c.Field()
	}
	return nil
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	if p.Degree() == -1 {
		return other.clone()
	}
	if other.Degree() == -1 {
		return p.clone()
	}
	field := p.fieldOf()
	size := len(p.coefficients)
	if len(other.coefficients) > size {
		size = len(other.coefficients)
	}
	out := make([]*FieldElement, size)
	for i := range out {
		out[i] = field.Zero()
	}
	for i, c := range p.coefficients {
		out[i] = out[i].Add(c)
	}
	for i, c := range other.coefficients {
		out[i] = out[i].Add(c)
	}
	return NewPolynomial(out)
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Neg()
	}
	return NewPolynomial(out)
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return p.Add(other.Neg())
}

// Mul returns p * other via schoolbook convolution.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	if len(p.coefficients) == 0 || len(other.coefficients) == 0 {
		return NewPolynomial(nil)
	}
	field := p.fieldOf()
	zero := field.Zero()
	size := len(p.coefficients) + len(other.coefficients) - 1
	out := make([]*FieldElement, size)
	for i := range out {
		out[i] = zero
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coefficients {
			if b.IsZero() {
				continue
			}
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(out)
}

// MulScalar returns p scaled by a single field element.
func (p *Polynomial) MulScalar(scalar *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(scalar)
	}
	return NewPolynomial(out)
}

// divide performs polynomial long division, returning (quotient, remainder).
// Precondition: denominator is not the zero polynomial.
func divide(numerator, denominator *Polynomial) (quotient, remainder *Polynomial) {
	if denominator.Degree() == -1 {
		panic("core: division by the zero polynomial")
	}
	if numerator.Degree() < denominator.Degree() {
		return NewPolynomial(nil), numerator.clone()
	}

	field := denominator.fieldOf()
	degree := numerator.Degree() - denominator.Degree() + 1
	remainder = numerator.clone()
	quotientCoeffs := make([]*FieldElement, degree)
	for i := range quotientCoeffs {
		quotientCoeffs[i] = field.Zero()
	}

	for i := 0; i < degree; i++ {
		if remainder.Degree() < denominator.Degree() {
			break
		}
		coefficient := remainder.LeadingCoefficient().Div(denominator.LeadingCoefficient())
		shift := remainder.Degree() - denominator.Degree()

		shiftCoeffs := make([]*FieldElement, shift+1)
		for j := range shiftCoeffs {
			shiftCoeffs[j] = field.Zero()
		}
		shiftCoeffs[shift] = coefficient

		subtrahend := NewPolynomial(shiftCoeffs).Mul(denominator)
		quotientCoeffs[shift] = coefficient
		remainder = remainder.Sub(subtrahend)
	}

	return NewPolynomial(quotientCoeffs), remainder
}

// QuotRem performs polynomial long division, returning both the quotient
// and the remainder, without requiring exact division.
func (p *Polynomial) QuotRem(denominator *Polynomial) (quotient, remainder *Polynomial) {
	return divide(p, denominator)
}

// DivExact returns p / denominator, and panics unless the division is
// exact, i.e. the remainder is the zero polynomial. This is the corrected
// reading of the reference implementation's exposed division operator
// (see DESIGN.md, Open Question (ii)).
func (p *Polynomial) DivExact(denominator *Polynomial) *Polynomial {
	quotient, remainder := divide(p, denominator)
	if remainder.Degree() != -1 {
		panic("core: inexact polynomial division")
	}
	return quotient
}

// Eval evaluates p at point using Horner's method in ascending form.
func (p *Polynomial) Eval(point *FieldElement) *FieldElement {
	field := point.Field()
	value := field.Zero()
	xi := field.One()
	for _, c := range p.coefficients {
		value = value.Add(c.Mul(xi))
		xi = xi.Mul(point)
	}
	return value
}

// EvalDomain maps Eval across every point of domain.
func (p *Polynomial) EvalDomain(domain []*FieldElement) []*FieldElement {
	out := make([]*FieldElement, len(domain))
	for i, d := range domain {
		out[i] = p.Eval(d)
	}
	return out
}

// InterpolateDomain returns the unique minimal-degree polynomial P such
// that P.Eval(domain[i]) == values[i] for every i, via Lagrange
// interpolation. Precondition: len(domain) == len(values) > 0 and domain
// holds distinct points.
func InterpolateDomain(domain, values []*FieldElement) *Polynomial {
	if len(domain) != len(values) {
		panic("core: domain/values length mismatch")
	}
	if len(domain) == 0 {
		panic("core: cannot interpolate over an empty domain")
	}
	field := domain[0].Field()
	x := NewPolynomial([]*FieldElement{field.Zero(), field.One()})
	acc := NewPolynomial(nil)

	for i := range domain {
		prod := NewPolynomial([]*FieldElement{values[i]})
		for j := range domain {
			if i == j {
				continue
			}
			denom := domain[i].Sub(domain[j])
			if denom.IsZero() {
				panic("core: duplicate x-coordinates in interpolation domain")
			}
			factor := NewPolynomial([]*FieldElement{domain[j].Neg()}).Add(x)
			factor = factor.MulScalar(field.One().Div(denom))
			prod = prod.Mul(factor)
		}
		acc = acc.Add(prod)
	}
	return acc
}

// ZerofierDomain returns the monic polynomial of degree len(domain) whose
// roots are exactly the points of domain.
func ZerofierDomain(domain []*FieldElement) *Polynomial {
	if len(domain) == 0 {
		panic("core: cannot build a zerofier over an empty domain")
	}
	field := domain[0].Field()
	acc := NewPolynomial([]*FieldElement{field.One()})
	for _, d := range domain {
		factor := NewPolynomial([]*FieldElement{d.Neg(), field.One()})
		acc = acc.Mul(factor)
	}
	return acc
}

// Scale returns the polynomial whose i-th coefficient is factor^i * c_i,
// satisfying Scale(factor).Eval(x) == p.Eval(factor * x).
func (p *Polynomial) Scale(factor *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	power := factor.Field().One()
	for i, c := range p.coefficients {
		out[i] = c.Mul(power)
		power = power.Mul(factor)
	}
	return NewPolynomial(out)
}

// Point is an (x, y) pair used for interpolation and colinearity testing.
type Point struct {
	X, Y *FieldElement
}

// TestColinearity reports whether the given points all lie on a single
// polynomial of degree <= 1.
func TestColinearity(points []Point) bool {
	domain := make([]*FieldElement, len(points))
	values := make([]*FieldElement, len(points))
	for i, pt := range points {
		domain[i] = pt.X
		values[i] = pt.Y
	}
	return InterpolateDomain(domain, values).Degree() <= 1
}

// Pow raises p to the power k via left-to-right square-and-multiply,
// scanning the exponent the same way FieldElement.Exp does. p^0 == 1 for
// any non-zero p; the zero polynomial raised to any power, including 0, is
// the zero polynomial.
func (p *Polynomial) Pow(k *uint256.Int) *Polynomial {
	if p.Degree() == -1 {
		return NewPolynomial(nil)
	}
	field := p.fieldOf()
	if k.IsZero() {
		return NewPolynomial([]*FieldElement{field.One()})
	}

	acc := NewPolynomial([]*FieldElement{field.One()})

	i := uint(128)
	for i > 0 {
		i--
		if k.Bit(i) == 1 {
			break
		}
	}

	for {
		acc = acc.Mul(acc)
		if k.Bit(i) == 1 {
			acc = acc.Mul(p)
		}
		if i == 0 {
			break
		}
		i--
	}
	return acc
}

// PowUint64 is a convenience wrapper around Pow for small exponents.
func (p *Polynomial) PowUint64(k uint64) *Polynomial {
	return p.Pow(uint256.NewInt(k))
}

func (p *Polynomial) clone() *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return NewPolynomial(out)
}

// Coefficients returns a defensive copy of p's coefficient slice.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}
