package core

// MPolynomial is a sparse multivariate polynomial: each term is an exponent
// vector mapped to its coefficient. Exponent vectors for different terms
// may have different lengths; operations right-pad the shorter vector with
// zeros before comparing, so [2,0] and [2] name the same term.
type MPolynomial struct {
	field        *Field
	coefficients map[string]*FieldElement
	exponents    map[string][]uint64
}

func expKey(exponents []uint64) string {
	// Trailing zero exponents are dropped so that [2,0] and [2] share a key.
	n := len(exponents)
	for n > 0 && exponents[n-1] == 0 {
		n--
	}
	b := make([]byte, 0, n*9)
	for _, e := range exponents[:n] {
		for e >= 0x80 {
			b = append(b, byte(e)|0x80)
			e >>= 7
		}
		b = append(b, byte(e))
		b = append(b, 0)
	}
	return string(b)
}

// NewMPolynomial builds the zero multivariate polynomial over field.
func NewMPolynomial(field *Field) *MPolynomial {
	return &MPolynomial{
		field:        field,
		coefficients: make(map[string]*FieldElement),
		exponents:    make(map[string][]uint64),
	}
}

// Field returns the field this polynomial's coefficients belong to.
func (m *MPolynomial) Field() *Field { return m.field }

// Constant builds the 0-variable constant polynomial holding value.
func Constant(value *FieldElement) *MPolynomial {
	m := NewMPolynomial(value.Field())
	m.setTerm([]uint64{}, value)
	return m
}

func (m *MPolynomial) setTerm(exponents []uint64, coefficient *FieldElement) {
	key := expKey(exponents)
	if coefficient.IsZero() {
		delete(m.coefficients, key)
		delete(m.exponents, key)
		return
	}
	m.coefficients[key] = coefficient
	m.exponents[key] = exponents
}

// IsZero reports whether m has no non-zero terms.
func (m *MPolynomial) IsZero() bool { return len(m.coefficients) == 0 }

// NumVariables returns the length of the longest exponent vector among
// m's terms.
func (m *MPolynomial) NumVariables() int {
	max := 0
	for _, exps := range m.exponents {
		if len(exps) > max {
			max = len(exps)
		}
	}
	return max
}

func padExponents(a, b []uint64) ([]uint64, []uint64) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa := make([]uint64, n)
	pb := make([]uint64, n)
	copy(pa, a)
	copy(pb, b)
	return pa, pb
}

// Variables returns the num identity monomials x_0 ... x_{num-1}, each with
// coefficient one, the standard basis used to lift univariate polynomials
// into num-variable space.
func Variables(num int, field *Field) []*MPolynomial {
	out := make([]*MPolynomial, num)
	for i := 0; i < num; i++ {
		exps := make([]uint64, num)
		exps[i] = 1
		m := NewMPolynomial(field)
		m.setTerm(exps, field.One())
		out[i] = m
	}
	return out
}

// Add returns m + other.
func (m *MPolynomial) Add(other *MPolynomial) *MPolynomial {
	out := NewMPolynomial(m.field)
	for key, exps := range m.exponents {
		out.coefficients[key] = m.coefficients[key]
		out.exponents[key] = exps
	}
	for key, exps := range other.exponents {
		if existing, ok := out.coefficients[key]; ok {
			sum := existing.Add(other.coefficients[key])
			if sum.IsZero() {
				delete(out.coefficients, key)
				delete(out.exponents, key)
			} else {
				out.coefficients[key] = sum
			}
		} else {
			out.coefficients[key] = other.coefficients[key]
			out.exponents[key] = exps
		}
	}
	return out
}

// Neg returns -m.
func (m *MPolynomial) Neg() *MPolynomial {
	out := NewMPolynomial(m.field)
	for key, exps := range m.exponents {
		out.coefficients[key] = m.coefficients[key].Neg()
		out.exponents[key] = exps
	}
	return out
}

// Sub returns m - other.
func (m *MPolynomial) Sub(other *MPolynomial) *MPolynomial {
	return m.Add(other.Neg())
}

// Mul returns m * other.
func (m *MPolynomial) Mul(other *MPolynomial) *MPolynomial {
	out := NewMPolynomial(m.field)
	for _, aExps := range m.exponents {
		aKey := expKey(aExps)
		aCoeff := m.coefficients[aKey]
		for _, bExps := range other.exponents {
			bKey := expKey(bExps)
			bCoeff := other.coefficients[bKey]

			pa, pb := padExponents(aExps, bExps)
			combined := make([]uint64, len(pa))
			for i := range pa {
				combined[i] = pa[i] + pb[i]
			}
			ckey := expKey(combined)
			product := aCoeff.Mul(bCoeff)
			if existing, ok := out.coefficients[ckey]; ok {
				sum := existing.Add(product)
				if sum.IsZero() {
					delete(out.coefficients, ckey)
					delete(out.exponents, ckey)
				} else {
					out.coefficients[ckey] = sum
				}
			} else if !product.IsZero() {
				out.coefficients[ckey] = product
				out.exponents[ckey] = combined
			}
		}
	}
	return out
}

// Pow raises m to a non-negative integer power by repeated multiplication.
func (m *MPolynomial) Pow(exponent uint64) *MPolynomial {
	if m.IsZero() {
		return NewMPolynomial(m.field)
	}
	acc := Constant(m.field.One())
	for i := uint64(0); i < exponent; i++ {
		acc = acc.Mul(m)
	}
	return acc
}

// Evaluate substitutes point into m and returns the resulting field
// element. len(point) must be >= m.NumVariables().
func (m *MPolynomial) Evaluate(point []*FieldElement) *FieldElement {
	acc := m.field.Zero()
	for key, exps := range m.exponents {
		term := m.coefficients[key]
		for i, e := range exps {
			if e == 0 {
				continue
			}
			term = term.Mul(point[i].ExpUint64(e))
		}
		acc = acc.Add(term)
	}
	return acc
}

// EvaluateSymbolic substitutes univariate polynomials for each variable and
// returns the resulting univariate polynomial.
func (m *MPolynomial) EvaluateSymbolic(point []*Polynomial) *Polynomial {
	acc := NewPolynomial(nil)
	for key, exps := range m.exponents {
		term := NewPolynomial([]*FieldElement{m.coefficients[key]})
		for i, e := range exps {
			if e == 0 {
				continue
			}
			term = term.Mul(point[i].PowUint64(e))
		}
		acc = acc.Add(term)
	}
	return acc
}

// Lift embeds a univariate polynomial as the variableIndex-th variable of a
// multivariate polynomial space with at least variableIndex+1 variables.
func Lift(p *Polynomial, variableIndex int, field *Field) *MPolynomial {
	if p.IsZero() {
		return NewMPolynomial(field)
	}
	variables := Variables(variableIndex+1, field)
	x := variables[variableIndex]

	acc := NewMPolynomial(field)
	for i, c := range p.Coefficients() {
		acc = acc.Add(Constant(c).Mul(x.Pow(uint64(i))))
	}
	return acc
}
