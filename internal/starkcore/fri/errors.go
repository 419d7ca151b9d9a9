package fri

import "errors"

// Verify returns one of these sentinel errors (wrapped where useful) so a
// caller can tell exactly which check a malicious or buggy prover failed,
// mirroring the taxonomy gnark-crypto's fri package exposes
// (ErrLowDegree, ErrMerkleRoot, ErrMerklePath, ...).
var (
	// ErrMerkleRootMismatch means a committed codeword's recomputed Merkle
	// root does not match the root the prover pushed earlier.
	ErrMerkleRootMismatch = errors.New("fri: merkle root does not match committed codeword")

	// ErrDegreeTooHigh means the final codeword's interpolant has degree
	// exceeding the bound the expansion factor allows.
	ErrDegreeTooHigh = errors.New("fri: final codeword does not correspond to a low-enough-degree polynomial")

	// ErrFinalCodewordInconsistent means the final codeword's own values do
	// not lie on its interpolating polynomial.
	ErrFinalCodewordInconsistent = errors.New("fri: final codeword is inconsistent with its interpolating polynomial")

	// ErrNotColinear means a queried triple of points failed the
	// colinearity check, i.e. two consecutive layers were not folded
	// consistently with the claimed challenge.
	ErrNotColinear = errors.New("fri: queried points are not colinear")

	// ErrMerklePath means an authentication path failed to verify against
	// its claimed root.
	ErrMerklePath = errors.New("fri: merkle authentication path failed to verify")

	// ErrInvalidCodewordLength means the codeword handed to Prove does not
	// match the FRI context's configured domain length.
	ErrInvalidCodewordLength = errors.New("fri: codeword length does not match domain length")
)
