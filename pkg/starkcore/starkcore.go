package starkcore

import (
	"github.com/vybium/stark-core/internal/starkcore/config"
	"github.com/vybium/stark-core/internal/starkcore/core"
	"github.com/vybium/stark-core/internal/starkcore/fri"
	"github.com/vybium/stark-core/internal/starkcore/transcript"
)

// Type aliases re-export the core arithmetic and protocol types so callers
// never need to import internal/starkcore/* packages directly.
type (
	Field        = core.Field
	FieldElement = core.FieldElement
	Polynomial   = core.Polynomial
	MPolynomial  = core.MPolynomial
	Point        = core.Point

	ProofStream    = transcript.ProofStream
	ProofStreamErr = transcript.ProofStreamError

	Config     = config.Config
	FRIContext = fri.Context
)

// DefaultField returns the canonical 256-bit STARK prime field,
// F_p with p = 1 + 407*2^119.
func DefaultField() *Field { return core.DefaultField() }

// NewPolynomial wraps a coefficient slice (coefficients[i] multiplies
// x^i) as a Polynomial.
func NewPolynomial(coefficients []*FieldElement) *Polynomial {
	return core.NewPolynomial(coefficients)
}

// InterpolateDomain returns the minimal-degree polynomial agreeing with
// values on domain.
func InterpolateDomain(domain, values []*FieldElement) *Polynomial {
	return core.InterpolateDomain(domain, values)
}

// NewProofStream returns an empty Fiat-Shamir transcript.
func NewProofStream() *ProofStream { return transcript.New() }

// DeserializeProofStream parses a transcript previously produced by
// (*ProofStream).Serialize.
func DeserializeProofStream(data []byte) (*ProofStream, error) {
	return transcript.Deserialize(data)
}

// DefaultConfig returns the default FRI tunables (see
// internal/starkcore/config for field documentation).
func DefaultConfig() *Config { return config.DefaultConfig() }

// NewFRIContext builds a FRI context over the given coset domain
// (offset * <omega>) and configuration.
func NewFRIContext(offset, omega *FieldElement, domainLength int, cfg *Config) *FRIContext {
	return fri.NewContext(offset, omega, domainLength, cfg)
}
