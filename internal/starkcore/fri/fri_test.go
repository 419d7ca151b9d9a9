package fri

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/vybium/stark-core/internal/starkcore/config"
	"github.com/vybium/stark-core/internal/starkcore/core"
	"github.com/vybium/stark-core/internal/starkcore/transcript"
)

func lowDegreeCodeword(t *testing.T, field *core.Field, offset, omega *core.FieldElement, domainLength, degree int) []*core.FieldElement {
	t.Helper()
	coeffs := make([]*core.FieldElement, degree+1)
	for i := range coeffs {
		coeffs[i] = field.NewUint64(uint64(3*i + 7))
	}
	p := core.NewPolynomial(coeffs)

	domain := make([]*core.FieldElement, domainLength)
	power := field.One()
	for i := 0; i < domainLength; i++ {
		domain[i] = offset.Mul(power)
		power = power.Mul(omega)
	}
	return p.EvalDomain(domain)
}

func newTestContext(t *testing.T) (*Context, *core.Field) {
	t.Helper()
	field := core.DefaultField()
	const domainLength = 128

	omega := field.PrimitiveNthRoot(uint256.NewInt(domainLength))
	offset := field.Generator()

	cfg := config.DefaultConfig().WithExpansionFactor(2).WithNumColinearityTests(4)
	ctx := NewContext(offset, omega, domainLength, cfg)
	require.Equal(t, 3, ctx.NumRounds())
	return ctx, field
}

func TestProveThenVerifyAccepts(t *testing.T) {
	ctx, field := newTestContext(t)
	codeword := lowDegreeCodeword(t, field, ctx.Offset, ctx.Omega, ctx.DomainLength, 10)

	ps := transcript.New()
	_, err := ctx.Prove(codeword, ps)
	require.NoError(t, err)

	verifierStream, err := transcript.Deserialize(ps.Serialize())
	require.NoError(t, err)

	err = ctx.Verify(field, verifierStream)
	require.NoError(t, err)
}

func TestVerifyRejectsHighDegreeCodeword(t *testing.T) {
	ctx, field := newTestContext(t)
	// degree 100 is far above the bound the expansion factor of 2 allows
	// (domainLength/expansionFactor - 1 = 63).
	codeword := lowDegreeCodeword(t, field, ctx.Offset, ctx.Omega, ctx.DomainLength, 100)

	ps := transcript.New()
	_, err := ctx.Prove(codeword, ps)
	require.NoError(t, err)

	verifierStream, err := transcript.Deserialize(ps.Serialize())
	require.NoError(t, err)

	err = ctx.Verify(field, verifierStream)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedCodeword(t *testing.T) {
	ctx, field := newTestContext(t)
	codeword := lowDegreeCodeword(t, field, ctx.Offset, ctx.Omega, ctx.DomainLength, 10)

	ps := transcript.New()
	_, err := ctx.Prove(codeword, ps)
	require.NoError(t, err)

	encoded := ps.Serialize()
	// Flip a byte inside the final codeword object, without truncating the
	// stream: the 4-byte object count and the three 37-byte root objects
	// (tag, length, digest) end at byte 114, the codeword object's tag,
	// length and element count fill bytes 115..123, so byte 130 lies in the
	// codeword's first field element.
	if len(encoded) > 130 {
		encoded[130] ^= 0xFF
	}

	verifierStream, err := transcript.Deserialize(encoded)
	if err != nil {
		// A corrupted length prefix is also an acceptable rejection.
		return
	}
	err = ctx.Verify(field, verifierStream)
	require.Error(t, err)
}

func TestNumRoundsStopsAtExpansionFactor(t *testing.T) {
	field := core.DefaultField()
	cfg := config.DefaultConfig().WithExpansionFactor(8).WithNumColinearityTests(1)
	ctx := NewContext(field.Generator(), field.PrimitiveNthRoot(uint256.NewInt(16)), 16, cfg)
	require.Equal(t, 1, ctx.NumRounds())
}
