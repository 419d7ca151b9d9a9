package core

import (
	"testing"

	"github.com/holiman/uint256"
)

func smallField() *Field { return NewField(uint256.NewInt(7)) }

func poly(f *Field, coeffs ...uint64) *Polynomial {
	out := make([]*FieldElement, len(coeffs))
	for i, c := range coeffs {
		out[i] = f.NewUint64(c)
	}
	return NewPolynomial(out)
}

func TestPolynomialDegreeAndZero(t *testing.T) {
	f := smallField()
	if NewPolynomial(nil).Degree() != -1 {
		t.Fatal("empty polynomial should have degree -1")
	}
	if poly(f, 0, 0, 0).Degree() != -1 {
		t.Fatal("all-zero coefficients should have degree -1")
	}
	if got := poly(f, 1, 0, 3).Degree(); got != 2 {
		t.Fatalf("degree = %d, want 2", got)
	}
}

func TestPolynomialAddSubMul(t *testing.T) {
	f := smallField()
	a := poly(f, 1, 2) // 1 + 2x
	b := poly(f, 3, 4) // 3 + 4x

	sum := a.Add(b) // 4 + 6x
	if sum.Coefficient(0, f).Value().Uint64() != 4 || sum.Coefficient(1, f).Value().Uint64() != 6 {
		t.Fatalf("unexpected sum: %v", sum.Coefficients())
	}

	diff := a.Sub(b) // -2 -2x = 5 + 5x mod 7
	if diff.Coefficient(0, f).Value().Uint64() != 5 || diff.Coefficient(1, f).Value().Uint64() != 5 {
		t.Fatalf("unexpected diff: %v", diff.Coefficients())
	}

	// (1+2x)(3+4x) = 3 + 4x + 6x + 8x^2 = 3 + 10x + 8x^2 = 3 + 3x + x^2 mod 7
	prod := a.Mul(b)
	if prod.Coefficient(0, f).Value().Uint64() != 3 ||
		prod.Coefficient(1, f).Value().Uint64() != 3 ||
		prod.Coefficient(2, f).Value().Uint64() != 1 {
		t.Fatalf("unexpected product: %v", prod.Coefficients())
	}
}

func TestPolynomialDivExact(t *testing.T) {
	f := smallField()
	// (x-1)(x-2) = x^2 - 3x + 2
	divisor := poly(f, 5, 1) // x - 2 -> coefficients [-2, 1] = [5,1] mod 7
	product := poly(f, 2, 4, 1)
	// verify: divisor * (x-1) should equal product
	quotient := product.DivExact(divisor)
	if quotient.Degree() != 1 {
		t.Fatalf("quotient degree = %d, want 1", quotient.Degree())
	}
	recomposed := quotient.Mul(divisor)
	for i := 0; i <= product.Degree(); i++ {
		if !recomposed.Coefficient(i, f).Equal(product.Coefficient(i, f)) {
			t.Fatalf("recomposed product mismatch at coefficient %d", i)
		}
	}
}

func TestPolynomialDivExactPanicsOnRemainder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on inexact division")
		}
	}()
	f := smallField()
	numerator := poly(f, 1, 1, 1) // x^2+x+1
	denominator := poly(f, 0, 1)  // x
	numerator.DivExact(denominator)
}

func TestInterpolateDomainAndEval(t *testing.T) {
	f := smallField()
	domain := []*FieldElement{f.NewUint64(0), f.NewUint64(1), f.NewUint64(2)}
	values := []*FieldElement{f.NewUint64(1), f.NewUint64(3), f.NewUint64(7)} // 1 + x + x^2

	p := InterpolateDomain(domain, values)
	for i, d := range domain {
		if !p.Eval(d).Equal(values[i]) {
			t.Fatalf("interpolated polynomial disagrees at domain[%d]", i)
		}
	}
}

func TestZerofierDomainHasGivenRoots(t *testing.T) {
	f := smallField()
	domain := []*FieldElement{f.NewUint64(1), f.NewUint64(2), f.NewUint64(3)}
	z := ZerofierDomain(domain)
	for _, d := range domain {
		if !z.Eval(d).IsZero() {
			t.Fatalf("zerofier does not vanish at %s", d)
		}
	}
	if z.Degree() != len(domain) {
		t.Fatalf("zerofier degree = %d, want %d", z.Degree(), len(domain))
	}
}

func TestScaleMatchesEvaluationShift(t *testing.T) {
	f := smallField()
	p := poly(f, 1, 2, 3) // 1 + 2x + 3x^2
	factor := f.NewUint64(5)
	scaled := p.Scale(factor)

	x := f.NewUint64(4)
	lhs := scaled.Eval(x)
	rhs := p.Eval(factor.Mul(x))
	if !lhs.Equal(rhs) {
		t.Fatalf("scale(f).eval(x) = %s, want original.eval(f*x) = %s", lhs, rhs)
	}
}

func TestColinearityDetection(t *testing.T) {
	f := smallField()
	line := poly(f, 1, 2) // y = 1 + 2x
	pts := []Point{
		{X: f.NewUint64(0), Y: line.Eval(f.NewUint64(0))},
		{X: f.NewUint64(1), Y: line.Eval(f.NewUint64(1))},
		{X: f.NewUint64(2), Y: line.Eval(f.NewUint64(2))},
	}
	if !TestColinearity(pts) {
		t.Fatal("points on a line were reported as non-colinear")
	}

	pts[2].Y = pts[2].Y.Add(f.One())
	if TestColinearity(pts) {
		t.Fatal("perturbed point was reported as colinear")
	}
}

func TestPolynomialPowMatchesRepeatedMul(t *testing.T) {
	f := smallField()
	p := poly(f, 1, 1) // 1+x

	want := poly(f, 1)
	for i := 0; i < 4; i++ {
		want = want.Mul(p)
	}
	got := p.PowUint64(4)
	for i := 0; i <= 4; i++ {
		if !got.Coefficient(i, f).Equal(want.Coefficient(i, f)) {
			t.Fatalf("pow(4) mismatch at coefficient %d", i)
		}
	}
}
