// Package starkcore is the public facade over the STARK cryptographic
// core: prime-field and polynomial arithmetic, Merkle commitments, the
// Fiat-Shamir proof stream, and the FRI low-degree test. Callers outside
// this module should depend on this package rather than reaching into
// internal/starkcore directly.
package starkcore
