package core

import (
	"fmt"

	"github.com/holiman/uint256"
)

// primeModulus and generatorVal match the reference STARK-anatomy field: p = 1 + 407*2^119,
// a 119-bit-smooth prime, with g a canonical generator of the order-2^119
// subgroup of F_p^*.
var (
	primeModulus = uint256.MustFromDecimal("270497897142230380135924736767050121217")
	generatorVal = uint256.MustFromDecimal("85408008396924667383611388730472331217")
)

// Prime returns the canonical 256-bit STARK prime, 1 + 407*2^119.
func Prime() *uint256.Int { return new(uint256.Int).Set(primeModulus) }

// Field is an immutable prime field of characteristic p. Two fields are
// equal iff their moduli are equal.
type Field struct {
	p *uint256.Int
}

// NewField constructs the field of characteristic p. p must be greater
// than 1; this is a precondition violation, not a recoverable error.
func NewField(p *uint256.Int) *Field {
	if p.Cmp(uint256.NewInt(1)) <= 0 {
		panic("core: field modulus must be greater than 1")
	}
	return &Field{p: new(uint256.Int).Set(p)}
}

// DefaultField returns the canonical STARK field F_p with p = 1 + 407*2^119.
func DefaultField() *Field { return NewField(primeModulus) }

// Modulus returns a copy of the field's prime modulus.
func (f *Field) Modulus() *uint256.Int { return new(uint256.Int).Set(f.p) }

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool {
	return f.p.Cmp(other.p) == 0
}

// Zero returns the additive identity of f.
func (f *Field) Zero() *FieldElement {
	return &FieldElement{value: uint256.NewInt(0), field: f}
}

// One returns the multiplicative identity of f.
func (f *Field) One() *FieldElement {
	return &FieldElement{value: uint256.NewInt(1), field: f}
}

// New builds a FieldElement from a raw, already-canonical value. The caller
// guarantees 0 <= value < p; no reduction is performed.
func (f *Field) New(value *uint256.Int) *FieldElement {
	return &FieldElement{value: new(uint256.Int).Set(value), field: f}
}

// NewUint64 builds a FieldElement from a uint64, reducing modulo p.
func (f *Field) NewUint64(value uint64) *FieldElement {
	v := new(uint256.Int).Mod(uint256.NewInt(value), f.p)
	return &FieldElement{value: v, field: f}
}

// Generator returns the canonical generator of the order-2^119 subgroup.
// Precondition: f must be the canonical STARK prime field.
func (f *Field) Generator() *FieldElement {
	if f.p.Cmp(primeModulus) != 0 {
		panic("core: Generator is only defined for the canonical STARK prime field")
	}
	return f.New(generatorVal)
}

// PrimitiveNthRoot returns a primitive n-th root of unity in f.
// Preconditions: f is the canonical STARK prime field, n is a power of two,
// and n <= 2^119.
func (f *Field) PrimitiveNthRoot(n *uint256.Int) *FieldElement {
	if f.p.Cmp(primeModulus) != 0 {
		panic("core: PrimitiveNthRoot is only defined for the canonical STARK prime field")
	}
	maxOrder := new(uint256.Int).Lsh(uint256.NewInt(1), 119)
	if n.Cmp(maxOrder) > 0 || !isPowerOfTwo(n) {
		panic("core: n must be a power of two not exceeding 2^119")
	}

	root := f.Generator()
	order := maxOrder
	for order.Cmp(n) != 0 {
		root = root.Mul(root)
		order = new(uint256.Int).Rsh(order, 1)
	}
	return root
}

func isPowerOfTwo(n *uint256.Int) bool {
	if n.IsZero() {
		return false
	}
	nMinus1 := new(uint256.Int).Sub(n, uint256.NewInt(1))
	and := new(uint256.Int).And(n, nMinus1)
	return and.IsZero()
}

// Sample interprets byteArray as a big-endian unsigned integer and reduces
// it modulo p. Used to derive Fiat-Shamir challenges.
func (f *Field) Sample(byteArray []byte) *FieldElement {
	acc := new(uint256.Int).SetBytes(byteArray)
	acc.Mod(acc, f.p)
	return &FieldElement{value: acc, field: f}
}

// FieldElement is an immutable value in [0, field.p).
type FieldElement struct {
	value *uint256.Int
	field *Field
}

// Field returns the field this element belongs to.
func (e *FieldElement) Field() *Field { return e.field }

// Value returns a copy of the element's canonical representative.
func (e *FieldElement) Value() *uint256.Int { return new(uint256.Int).Set(e.value) }

// IsZero reports whether e is the additive identity.
func (e *FieldElement) IsZero() bool { return e.value.IsZero() }

// Equal reports whether two elements are equal (same field, same value).
func (e *FieldElement) Equal(other *FieldElement) bool {
	return e.field.Equals(other.field) && e.value.Cmp(other.value) == 0
}

func (e *FieldElement) requireSameField(other *FieldElement) {
	if !e.field.Equals(other.field) {
		panic("core: operands belong to different fields")
	}
}

// Add returns e + other.
func (e *FieldElement) Add(other *FieldElement) *FieldElement {
	e.requireSameField(other)
	v := new(uint256.Int).Add(e.value, other.value)
	v.Mod(v, e.field.p)
	return &FieldElement{value: v, field: e.field}
}

// Sub returns e - other, computed as (p + e - other) mod p to stay unsigned.
func (e *FieldElement) Sub(other *FieldElement) *FieldElement {
	e.requireSameField(other)
	v := new(uint256.Int).Add(e.field.p, e.value)
	v.Sub(v, other.value)
	v.Mod(v, e.field.p)
	return &FieldElement{value: v, field: e.field}
}

// Mul returns e * other.
func (e *FieldElement) Mul(other *FieldElement) *FieldElement {
	e.requireSameField(other)
	v := new(uint256.Int).Mul(e.value, other.value)
	v.Mod(v, e.field.p)
	return &FieldElement{value: v, field: e.field}
}

// Neg returns -e, i.e. (p - e) mod p.
func (e *FieldElement) Neg() *FieldElement {
	v := new(uint256.Int).Sub(e.field.p, e.value)
	v.Mod(v, e.field.p)
	return &FieldElement{value: v, field: e.field}
}

// Inv returns the multiplicative inverse of e via the extended Euclidean
// algorithm. Precondition: e is non-zero.
func (e *FieldElement) Inv() *FieldElement {
	if e.IsZero() {
		panic("core: cannot invert the zero field element")
	}
	s, _, _, sNeg, _ := XGCD(e.value, e.field.p)
	var v *uint256.Int
	if sNeg {
		v = new(uint256.Int).Sub(e.field.p, s)
		v.Mod(v, e.field.p)
	} else {
		v = new(uint256.Int).Mod(s, e.field.p)
	}
	return &FieldElement{value: v, field: e.field}
}

// Div returns e / other. Precondition: other is non-zero.
func (e *FieldElement) Div(other *FieldElement) *FieldElement {
	e.requireSameField(other)
	if other.IsZero() {
		panic("core: division by zero field element")
	}
	return e.Mul(other.Inv())
}

// Exp raises e to the power k via left-to-right square-and-multiply,
// scanning from bit 127 down to the first set bit, then on to bit 0 —
// matching the reference field-element exponentiation routine exactly.
// e^0 == 1 for every e, including 0^0 == 1.
func (e *FieldElement) Exp(k *uint256.Int) *FieldElement {
	acc := e.field.One()
	if k.IsZero() {
		return acc
	}

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
			acc = acc.Mul(e)
		}
		if i == 0 {
			break
		}
		i--
	}
	return acc
}

// ExpUint64 is a convenience wrapper around Exp for small exponents.
func (e *FieldElement) ExpUint64(k uint64) *FieldElement {
	return e.Exp(uint256.NewInt(k))
}

// Bytes returns the canonical little-endian limb encoding used by the
// transcript codec: four 64-bit limbs, least-significant first. This
// intentionally omits the field's prime (see DESIGN.md) since every
// object this repo serializes is decoded against a prime fixed by the
// enclosing Context, not recovered from the wire.
func (e *FieldElement) Bytes() []byte {
	return limbsLE(e.value)
}

// FromBytes parses the canonical little-endian limb encoding produced by
// FieldElement.Bytes back into an element of f. Precondition: len(b) == 32.
func (f *Field) FromBytes(b []byte) *FieldElement {
	if len(b) != 32 {
		panic("core: field element encoding must be exactly 32 bytes")
	}
	beLimbs := make([]byte, 32)
	for limb := 0; limb < 4; limb++ {
		dstStart := 32 - (limb+1)*8
		for j := 0; j < 8; j++ {
			beLimbs[dstStart+7-j] = b[limb*8+j]
		}
	}
	v := new(uint256.Int).SetBytes(beLimbs)
	v.Mod(v, f.p)
	return &FieldElement{value: v, field: f}
}

func limbsLE(v *uint256.Int) []byte {
	b := make([]byte, 32)
	limbs := v.Bytes32() // big-endian 32 bytes
	// Re-pack as four little-endian 64-bit limbs, least-significant limb first.
	for limb := 0; limb < 4; limb++ {
		srcStart := 32 - (limb+1)*8
		for j := 0; j < 8; j++ {
			b[limb*8+j] = limbs[srcStart+7-j]
		}
	}
	return b
}

func (e *FieldElement) String() string {
	return e.value.String()
}

func (f *Field) String() string {
	return fmt.Sprintf("F_%s", f.p.String())
}
