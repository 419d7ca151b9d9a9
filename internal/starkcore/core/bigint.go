// Package core implements the prime-field and polynomial arithmetic the
// rest of the STARK core rests on.
package core

import "github.com/holiman/uint256"

// XGCD runs the iterative extended Euclidean algorithm on two unsigned
// 256-bit integers and returns (s, t, g, sNeg, tNeg) such that
//
//	(±s)*x + (±t)*y = g = gcd(x, y)
//
// with the sign of each Bézout coefficient carried in sNeg/tNeg rather than
// in the magnitude itself: the working modulus fills the full 256-bit
// range, so there is no spare bit to store a sign inside s or t.
func XGCD(x, y *uint256.Int) (s, t, g *uint256.Int, sNeg, tNeg bool) {
	oldR, r := x.Clone(), y.Clone()
	oldS, curS := uint256.NewInt(1), uint256.NewInt(0)
	oldT, curT := uint256.NewInt(0), uint256.NewInt(1)
	oldSNeg, curSNeg := false, false
	oldTNeg, curTNeg := false, false

	for !r.IsZero() {
		quotient := new(uint256.Int).Div(oldR, r)
		rem := new(uint256.Int).Sub(oldR, new(uint256.Int).Mul(quotient, r))
		oldR, r = r, rem

		oldT, curT, oldTNeg, curTNeg = stepBezout(oldT, curT, oldTNeg, curTNeg, quotient)
		oldS, curS, oldSNeg, curSNeg = stepBezout(oldS, curS, oldSNeg, curSNeg, quotient)
	}

	return oldS, oldT, oldR, oldSNeg, oldTNeg
}

// stepBezout advances one Bézout-coefficient pair (old, cur) by one round of
// the extended Euclidean algorithm, given the freshly computed quotient.
// It mirrors, term for term, the sign-case split of the reference
// implementation: four branches depending on the sign of old and cur,
// each choosing whether the update adds or subtracts magnitudes.
func stepBezout(old, cur *uint256.Int, oldNeg, curNeg bool, quotient *uint256.Int) (newOld, newCur *uint256.Int, newOldNeg, newCurNeg bool) {
	qc := new(uint256.Int).Mul(quotient, cur)
	newOld, newOldNeg = cur, curNeg

	switch {
	case oldNeg && curNeg:
		if qc.Cmp(old) > 0 {
			return newOld, new(uint256.Int).Sub(qc, old), newOldNeg, false
		}
		return newOld, new(uint256.Int).Sub(old, qc), newOldNeg, true
	case oldNeg && !curNeg:
		return newOld, new(uint256.Int).Add(qc, old), newOldNeg, true
	case !oldNeg && curNeg:
		return newOld, new(uint256.Int).Add(old, qc), newOldNeg, false
	default: // !oldNeg && !curNeg
		if qc.Cmp(old) > 0 {
			return newOld, new(uint256.Int).Sub(qc, old), newOldNeg, true
		}
		return newOld, new(uint256.Int).Sub(old, qc), newOldNeg, false
	}
}
