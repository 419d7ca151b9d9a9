// Package config gathers the tunable parameters of a FRI session behind a
// single immutable value, in the style of vybium-starks-vm's
// utils.Config: a DefaultConfig constructor, a Validate method, and
// With-prefixed functional setters that return a modified copy.
package config

import "fmt"

// Config holds the parameters a FRI prover/verifier pair must agree on
// out of band before running the protocol.
type Config struct {
	// ExpansionFactor is the blow-up factor between the polynomial's
	// natural degree and the evaluation domain size. Must be >= 1 and a
	// power of two in practice, though only >= 1 is enforced here.
	ExpansionFactor int

	// NumColinearityTests is the number of random query rounds the
	// verifier performs per FRI layer.
	NumColinearityTests int

	// FiatShamirBytes is the number of bytes requested from SHAKE256 per
	// Fiat-Shamir challenge draw.
	FiatShamirBytes int
}

// DefaultConfig returns reasonable defaults: a 4x expansion factor, 32
// colinearity tests per round (roughly 128-bit soundness against a
// malicious prover when combined with a 4x blow-up), and 32-byte
// Fiat-Shamir digests (256 bits, matching the Blake2b-256 Merkle digest
// size).
func DefaultConfig() *Config {
	return &Config{
		ExpansionFactor:     4,
		NumColinearityTests: 32,
		FiatShamirBytes:     32,
	}
}

// WithExpansionFactor returns a copy of c with ExpansionFactor set.
func (c *Config) WithExpansionFactor(factor int) *Config {
	cp := *c
	cp.ExpansionFactor = factor
	return &cp
}

// WithNumColinearityTests returns a copy of c with NumColinearityTests set.
func (c *Config) WithNumColinearityTests(n int) *Config {
	cp := *c
	cp.NumColinearityTests = n
	return &cp
}

// WithFiatShamirBytes returns a copy of c with FiatShamirBytes set.
func (c *Config) WithFiatShamirBytes(n int) *Config {
	cp := *c
	cp.FiatShamirBytes = n
	return &cp
}

// Validate checks the FRI-context invariants: a positive expansion factor,
// at least one colinearity test, and a non-empty Fiat-Shamir digest.
func (c *Config) Validate() error {
	if c.ExpansionFactor < 1 {
		return fmt.Errorf("config: expansion factor must be >= 1, got %d", c.ExpansionFactor)
	}
	if c.NumColinearityTests < 1 {
		return fmt.Errorf("config: num colinearity tests must be >= 1, got %d", c.NumColinearityTests)
	}
	if c.FiatShamirBytes < 1 {
		return fmt.Errorf("config: fiat-shamir byte count must be >= 1, got %d", c.FiatShamirBytes)
	}
	return nil
}
