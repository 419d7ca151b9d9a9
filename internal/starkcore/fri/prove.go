package fri

import (
	"github.com/vybium/stark-core/internal/starkcore/core"
	"github.com/vybium/stark-core/internal/starkcore/transcript"
)

// halfInverse returns the inverse of two, the constant factor the butterfly
// fold divides by.
func halfInverse(field *core.Field) *core.FieldElement {
	return field.NewUint64(2).Inv()
}

// fold computes the next, half-length codeword from the current one: each
// pair of points (codeword[i], codeword[i+N/2]) — the two preimages of a
// single point under squaring in the domain — collapses to one value
// using the random challenge alpha, exactly as a polynomial's even/odd
// coefficient split collapses under evaluation at +-x.
func fold(codeword []*core.FieldElement, alpha *core.FieldElement, omega, offset *core.FieldElement) []*core.FieldElement {
	field := alpha.Field()
	one := field.One()
	half := len(codeword) / 2
	out := make([]*core.FieldElement, half)

	x := offset
	power := field.One()
	invHalf := halfInverse(field)

	for i := 0; i < half; i++ {
		xi := x.Mul(power)
		ratio := alpha.Div(xi)
		left := one.Add(ratio).Mul(codeword[i])
		right := one.Sub(ratio).Mul(codeword[half+i])
		out[i] = invHalf.Mul(left.Add(right))
		power = power.Mul(omega)
	}
	return out
}

// commit runs the commit phase: repeatedly Merkle-commits the current
// codeword, pushes its root, draws a folding challenge, and folds, until
// NumRounds rounds have produced a root. Returns every intermediate
// codeword, codewords[0] being the input and codewords[len-1] the final,
// un-foldable tail pushed as a raw object after its root.
func (c *Context) commit(codeword []*core.FieldElement, ps *transcript.ProofStream) ([][]*core.FieldElement, error) {
	numRounds := c.NumRounds()
	codewords := make([][]*core.FieldElement, 0, numRounds)

	omega, offset := c.Omega, c.Offset
	field := codeword[0].Field()

	for r := 0; r < numRounds; r++ {
		leaves := make([][]byte, len(codeword))
		for i, v := range codeword {
			leaves[i] = leafBytes(v)
		}
		root, err := core.Commit(leaves)
		if err != nil {
			return nil, err
		}
		ps.PushHash(root[:])
		c.Logger.Debug().Int("round", r).Int("codeword_len", len(codeword)).Hex("root", root[:]).Msg("fri commit round")

		if r == numRounds-1 {
			ps.PushObj(encodeCodeword(codeword))
			codewords = append(codewords, codeword)
			break
		}

		alpha := field.Sample(ps.ProverFiatShamir(c.FiatShamirBytes))
		codewords = append(codewords, codeword)
		codeword = fold(codeword, alpha, omega, offset)

		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	return codewords, nil
}

// query pushes one round's worth of spot checks: for each sampled index,
// the two pre-fold values and their post-fold counterpart, followed by the
// three Merkle authentication paths proving those values belong to their
// respective committed codewords.
func (c *Context) query(current, next []*core.FieldElement, indices []int, ps *transcript.ProofStream) error {
	half := len(current) / 2

	currentLeaves := make([][]byte, len(current))
	for i, v := range current {
		currentLeaves[i] = leafBytes(v)
	}
	nextLeaves := make([][]byte, len(next))
	for i, v := range next {
		nextLeaves[i] = leafBytes(v)
	}

	for _, aIdx := range indices {
		bIdx := aIdx + half
		ps.PushObj(encodePair(current[aIdx], current[bIdx]))
		ps.PushLeaf(leafBytes(next[aIdx]))

		aPath, err := core.Open(aIdx, currentLeaves)
		if err != nil {
			return err
		}
		bPath, err := core.Open(bIdx, currentLeaves)
		if err != nil {
			return err
		}
		cPath, err := core.Open(aIdx, nextLeaves)
		if err != nil {
			return err
		}
		ps.PushPath(aPath)
		ps.PushPath(bPath)
		ps.PushPath(cPath)
	}
	return nil
}

// Prove runs the full FRI prover: it commits the codeword's successive
// foldings, samples query indices via Fiat-Shamir, and pushes the
// authentication data the verifier needs for every sampled index at every
// round. Returns the top-level indices sampled, which the caller may need
// to cross-reference against the enclosing protocol's own queries.
func (c *Context) Prove(codeword []*core.FieldElement, ps *transcript.ProofStream) ([]int, error) {
	if len(codeword) != c.DomainLength {
		return nil, ErrInvalidCodewordLength
	}

	codewords, err := c.commit(codeword, ps)
	if err != nil {
		return nil, err
	}

	topLevelIndices := sampleIndices(
		ps.ProverFiatShamir(c.FiatShamirBytes),
		len(codewords[0])/2,
		len(codewords[len(codewords)-1]),
		c.NumColinearityTests,
	)

	indices := append([]int(nil), topLevelIndices...)
	for i := 0; i < len(codewords)-1; i++ {
		reduced := len(codewords[i]) / 2
		for j := range indices {
			indices[j] %= reduced
		}
		if err := c.query(codewords[i], codewords[i+1], indices, ps); err != nil {
			return nil, err
		}
	}

	c.Logger.Info().Int("num_rounds", c.NumRounds()).Msg("fri prove complete")
	return topLevelIndices, nil
}
