package fri

import (
	"github.com/vybium/stark-core/internal/starkcore/core"
	"github.com/vybium/stark-core/internal/starkcore/transcript"
)

// Verify runs the full FRI verifier against a transcript a prover produced
// with Prove. field identifies the working field (needed to decode the
// codeword and leaf values pulled from the transcript). Returns nil if
// every check passes. Otherwise it returns one of the sentinel errors in
// errors.go, a *transcript.ProofStreamError when an object is missing or
// has the wrong Kind, or the error core.Commit or core.Verify reports for
// a final codeword whose length is not a power of two or an
// authentication path of the wrong length.
func (c *Context) Verify(field *core.Field, ps *transcript.ProofStream) error {
	numRounds := c.NumRounds()

	roots := make([][32]byte, numRounds)
	alphas := make([]*core.FieldElement, numRounds-1)

	omega, offset := c.Omega, c.Offset

	for r := 0; r < numRounds; r++ {
		obj, err := ps.PullExpect(transcript.KindHash)
		if err != nil {
			return err
		}
		var root [32]byte
		copy(root[:], obj.Hash)
		roots[r] = root

		if r == numRounds-1 {
			break
		}
		alphas[r] = field.Sample(ps.VerifierFiatShamir(c.FiatShamirBytes))
	}

	lastObj, err := ps.PullExpect(transcript.KindObj)
	if err != nil {
		return err
	}
	lastCodeword := decodeCodeword(lastObj.Data, field)

	lastLeaves := make([][]byte, len(lastCodeword))
	for i, v := range lastCodeword {
		lastLeaves[i] = leafBytes(v)
	}
	recomputedRoot, err := core.Commit(lastLeaves)
	if err != nil {
		return err
	}
	if recomputedRoot != roots[numRounds-1] {
		return ErrMerkleRootMismatch
	}

	lastOmega, lastOffset := omega, offset
	for r := 0; r < numRounds-1; r++ {
		lastOmega = lastOmega.Mul(lastOmega)
		lastOffset = lastOffset.Mul(lastOffset)
	}

	degreeBound := len(lastCodeword)/c.ExpansionFactor - 1
	lastDomain := make([]*core.FieldElement, len(lastCodeword))
	x := lastOffset
	power := field.One()
	for i := range lastDomain {
		lastDomain[i] = x.Mul(power)
		power = power.Mul(lastOmega)
	}

	poly := core.InterpolateDomain(lastDomain, lastCodeword)
	reEvaluated := poly.EvalDomain(lastDomain)
	for i := range reEvaluated {
		if !reEvaluated[i].Equal(lastCodeword[i]) {
			return ErrFinalCodewordInconsistent
		}
	}
	if poly.Degree() > degreeBound {
		return ErrDegreeTooHigh
	}

	topLevelIndices := sampleIndices(
		ps.VerifierFiatShamir(c.FiatShamirBytes),
		c.DomainLength/2,
		len(lastCodeword),
		c.NumColinearityTests,
	)

	omega, offset = c.Omega, c.Offset
	domainLength := c.DomainLength

	for r := 0; r < numRounds-1; r++ {
		half := domainLength >> (r + 1)
		indices := make([]int, len(topLevelIndices))
		for i, idx := range topLevelIndices {
			indices[i] = idx % half
		}

		for _, aIdx := range indices {
			bIdx := aIdx + half

			pairObj, err := ps.PullExpect(transcript.KindObj)
			if err != nil {
				return err
			}
			ay, by := decodePair(pairObj.Data, field)

			cyObj, err := ps.PullExpect(transcript.KindLeaf)
			if err != nil {
				return err
			}
			cy := field.FromBytes(cyObj.Data)

			ax := offset.Mul(powInt(omega, aIdx))
			bx := offset.Mul(powInt(omega, bIdx))
			cx := alphas[r]

			if !core.TestColinearity([]core.Point{{X: ax, Y: ay}, {X: bx, Y: by}, {X: cx, Y: cy}}) {
				return ErrNotColinear
			}

			aPathObj, err := ps.PullExpect(transcript.KindPath)
			if err != nil {
				return err
			}
			bPathObj, err := ps.PullExpect(transcript.KindPath)
			if err != nil {
				return err
			}
			cPathObj, err := ps.PullExpect(transcript.KindPath)
			if err != nil {
				return err
			}

			ok, err := core.Verify(roots[r], domainLength>>r, aIdx, leafBytes(ay), pathFrom(aPathObj.Path))
			if err != nil {
				return err
			}
			if !ok {
				return ErrMerklePath
			}
			ok, err = core.Verify(roots[r], domainLength>>r, bIdx, leafBytes(by), pathFrom(bPathObj.Path))
			if err != nil {
				return err
			}
			if !ok {
				return ErrMerklePath
			}
			ok, err = core.Verify(roots[r+1], domainLength>>(r+1), aIdx, leafBytes(cy), pathFrom(cPathObj.Path))
			if err != nil {
				return err
			}
			if !ok {
				return ErrMerklePath
			}
		}

		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	c.Logger.Info().Int("num_rounds", numRounds).Bool("accepted", true).Msg("fri verify complete")
	return nil
}

func powInt(base *core.FieldElement, exp int) *core.FieldElement {
	return base.ExpUint64(uint64(exp))
}

func pathFrom(path [][]byte) [][32]byte {
	out := make([][32]byte, len(path))
	for i, d := range path {
		copy(out[i][:], d)
	}
	return out
}

