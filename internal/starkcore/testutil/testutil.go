// Package testutil collects small test fixtures: toy fields too small for
// real soundness but convenient for hand-checked arithmetic, the canonical
// STARK field, and deterministic power-of-two and coset domains over it.
// No test in this module imports it; the core and fri tests build their
// own fixtures. Grounded on the original test suite's own toy-field
// pattern (a field of characteristic 7 used throughout element_test.go).
package testutil

import (
	"github.com/holiman/uint256"

	"github.com/vybium/stark-core/internal/starkcore/core"
)

// SmallField returns the toy field F_7, used by tests that only need to
// check arithmetic identities, not cryptographic size.
func SmallField() *core.Field {
	return core.NewField(uint256.NewInt(7))
}

// StarkField returns the canonical 256-bit STARK field, F_p with
// p = 1 + 407*2^119.
func StarkField() *core.Field {
	return core.DefaultField()
}

// PowerOfTwoDomain returns the multiplicative subgroup of order n generated
// by field's canonical n-th root of unity, i.e. [1, g, g^2, ..., g^(n-1)].
// Precondition: n is a power of two and field is the canonical STARK field.
func PowerOfTwoDomain(field *core.Field, n uint64) []*core.FieldElement {
	root := field.PrimitiveNthRoot(uint256.NewInt(n))
	out := make([]*core.FieldElement, n)
	power := field.One()
	for i := uint64(0); i < n; i++ {
		out[i] = power
		power = power.Mul(root)
	}
	return out
}

// CosetDomain returns offset*domain, element-wise.
func CosetDomain(offset *core.FieldElement, domain []*core.FieldElement) []*core.FieldElement {
	out := make([]*core.FieldElement, len(domain))
	for i, d := range domain {
		out[i] = offset.Mul(d)
	}
	return out
}
