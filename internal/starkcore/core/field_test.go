package core

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestFieldArithmeticSmallField(t *testing.T) {
	f := NewField(uint256.NewInt(7))
	a := f.NewUint64(3)
	b := f.NewUint64(5)

	if got := a.Add(b); got.Value().Uint64() != 1 { // 3+5=8 mod 7 = 1
		t.Fatalf("3+5 mod 7 = %s, want 1", got)
	}
	if got := a.Sub(b); got.Value().Uint64() != 5 { // 3-5 = -2 mod 7 = 5
		t.Fatalf("3-5 mod 7 = %s, want 5", got)
	}
	if got := a.Mul(b); got.Value().Uint64() != 1 { // 15 mod 7 = 1
		t.Fatalf("3*5 mod 7 = %s, want 1", got)
	}
	if got := a.Neg(); got.Value().Uint64() != 4 { // -3 mod 7 = 4
		t.Fatalf("-3 mod 7 = %s, want 4", got)
	}
}

func TestFieldInvAndDiv(t *testing.T) {
	f := NewField(uint256.NewInt(7))
	for i := uint64(1); i < 7; i++ {
		a := f.NewUint64(i)
		inv := a.Inv()
		if !a.Mul(inv).Equal(f.One()) {
			t.Fatalf("%d * inv(%d) != 1 (got %s)", i, i, a.Mul(inv))
		}
	}

	a := f.NewUint64(6)
	b := f.NewUint64(3)
	if got := a.Div(b); got.Value().Uint64() != 2 {
		t.Fatalf("6/3 mod 7 = %s, want 2", got)
	}
}

func TestFieldExpMatchesRepeatedMul(t *testing.T) {
	f := NewField(uint256.NewInt(7))
	a := f.NewUint64(3)

	for k := uint64(0); k < 10; k++ {
		want := f.One()
		for i := uint64(0); i < k; i++ {
			want = want.Mul(a)
		}
		got := a.ExpUint64(k)
		if !got.Equal(want) {
			t.Fatalf("3^%d = %s, want %s", k, got, want)
		}
	}
}

func TestGeneratorHasOrder2To119(t *testing.T) {
	f := DefaultField()
	g := f.Generator()

	order := new(uint256.Int).Lsh(uint256.NewInt(1), 119)
	if !g.Exp(order).Equal(f.One()) {
		t.Fatalf("generator^(2^119) != 1")
	}
}

func TestPrimitiveNthRoot(t *testing.T) {
	f := DefaultField()
	n := uint256.NewInt(1024)
	root := f.PrimitiveNthRoot(n)

	if !root.Exp(n).Equal(f.One()) {
		t.Fatalf("root^n != 1")
	}
	half := new(uint256.Int).Rsh(n, 1)
	if root.Exp(half).Equal(f.One()) {
		t.Fatalf("root^(n/2) == 1, root is not primitive")
	}
}

func TestSampleMatchesBigEndianReduction(t *testing.T) {
	f := DefaultField()
	// sample([1,2,3]) interprets the bytes as the big-endian integer
	// 0x010203 = 66051, which is already reduced mod p.
	got := f.Sample([]byte{1, 2, 3})
	want := f.NewUint64(66051)
	if !got.Equal(want) {
		t.Fatalf("sample([1,2,3]) = %s, want %s", got, want)
	}
}

func TestFieldElementBytesRoundTrip(t *testing.T) {
	f := DefaultField()
	a := f.NewUint64(123456789)
	encoded := a.Bytes()
	if len(encoded) != 32 {
		t.Fatalf("encoded length = %d, want 32", len(encoded))
	}
	decoded := f.FromBytes(encoded)
	if !decoded.Equal(a) {
		t.Fatalf("round trip failed: got %s, want %s", decoded, a)
	}
}
