package core

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestXGCD(t *testing.T) {
	cases := []struct {
		name           string
		x, y           uint64
		wantG          uint64
		wantSNeg       bool
		wantTNeg       bool
	}{
		{"24,36", 24, 36, 12, true, false},
		{"36,24", 36, 24, 12, false, true},
		{"coprime", 17, 5, 1, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, tt, g, sNeg, tNeg := XGCD(uint256.NewInt(tc.x), uint256.NewInt(tc.y))
			if g.Uint64() != tc.wantG {
				t.Fatalf("gcd(%d,%d) = %d, want %d", tc.x, tc.y, g.Uint64(), tc.wantG)
			}
			if sNeg != tc.wantSNeg || tNeg != tc.wantTNeg {
				t.Fatalf("gcd(%d,%d) signs = (%v,%v), want (%v,%v)", tc.x, tc.y, sNeg, tNeg, tc.wantSNeg, tc.wantTNeg)
			}

			// Recompose the Bezout identity in signed 64-bit arithmetic and
			// check it actually holds: (+-s)*x + (+-t)*y == g.
			sv := int64(s.Uint64())
			if sNeg {
				sv = -sv
			}
			tv := int64(tt.Uint64())
			if tNeg {
				tv = -tv
			}
			got := sv*int64(tc.x) + tv*int64(tc.y)
			if got != int64(tc.wantG) {
				t.Fatalf("bezout identity failed: %d*%d + %d*%d = %d, want %d", sv, tc.x, tv, tc.y, got, tc.wantG)
			}
		})
	}
}
