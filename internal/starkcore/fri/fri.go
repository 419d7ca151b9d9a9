// Package fri implements the FRI (Fast Reed-Solomon IOP of Proximity)
// low-degree test: a prover commits to a codeword believed to lie on a
// low-degree polynomial, and a verifier checks that claim by repeatedly
// folding the codeword in half and spot-checking colinearity, without ever
// seeing the polynomial itself.
package fri

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"github.com/vybium/stark-core/internal/starkcore/config"
	"github.com/vybium/stark-core/internal/starkcore/core"
	starklog "github.com/vybium/stark-core/internal/starkcore/log"
)

func blake2bSum(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Context fixes the parameters a FRI prover and verifier must agree on:
// the evaluation domain (offset * omega^i for i in [0, domainLength)), the
// expansion factor, and the number of colinearity spot checks per round.
type Context struct {
	Offset              *core.FieldElement
	Omega               *core.FieldElement
	DomainLength        int
	ExpansionFactor     int
	NumColinearityTests int
	FiatShamirBytes     int
	Logger              zerolog.Logger
}

// NewContext builds a FRI context from an explicit offset/generator pair
// and a Config for the tunable parameters. The logger defaults to a
// disabled (no-op) zerolog.Logger; use WithLogger to observe lifecycle
// events.
func NewContext(offset, omega *core.FieldElement, domainLength int, cfg *config.Config) *Context {
	if err := cfg.Validate(); err != nil {
		panic("fri: invalid config: " + err.Error())
	}
	return &Context{
		Offset:              offset,
		Omega:               omega,
		DomainLength:        domainLength,
		ExpansionFactor:     cfg.ExpansionFactor,
		NumColinearityTests: cfg.NumColinearityTests,
		FiatShamirBytes:     cfg.FiatShamirBytes,
		Logger:              starklog.Disabled(),
	}
}

// WithLogger returns a copy of c that logs lifecycle events to logger.
func (c *Context) WithLogger(logger zerolog.Logger) *Context {
	cp := *c
	cp.Logger = logger
	return &cp
}

// NumRounds returns how many commitment rounds Prove/Verify will run: the
// codeword is folded in half each round until it is no larger than the
// expansion factor, or four times the number of colinearity tests is no
// longer below its length.
func (c *Context) NumRounds() int {
	codewordLength := c.DomainLength
	rounds := 0
	for codewordLength > c.ExpansionFactor && 4*c.NumColinearityTests < codewordLength {
		codewordLength /= 2
		rounds++
	}
	return rounds
}

// EvalDomain returns the full evaluation domain [offset*omega^0, ...,
// offset*omega^(domainLength-1)].
func (c *Context) EvalDomain() []*core.FieldElement {
	out := make([]*core.FieldElement, c.DomainLength)
	x := c.Offset
	power := x.Field().One()
	for i := 0; i < c.DomainLength; i++ {
		out[i] = x.Mul(power)
		power = power.Mul(c.Omega)
	}
	return out
}

// sampleIndex reduces a byte string, read as a big-endian integer, modulo
// size.
func sampleIndex(b []byte, size int) int {
	acc := new(uint256.Int).SetBytes(b)
	acc.Mod(acc, uint256.NewInt(uint64(size)))
	return int(acc.Uint64())
}

// sampleIndices draws `number` distinct indices in [0, size), such that
// each index's reduction modulo reducedSize is also distinct — the
// property FRI's query phase needs so that no two top-level indices query
// the same position of the final, heavily-folded codeword. Every attempt
// appends a 4-byte big-endian counter to seed before hashing with
// Blake2b-256, and the counter advances by one after every attempt
// regardless of whether it was accepted.
//
// Precondition: number <= reducedSize (otherwise the pigeonhole principle
// makes termination impossible).
func sampleIndices(seed []byte, size, reducedSize, number int) []int {
	if number > reducedSize {
		panic("fri: not enough entropy in indices with respect to the final codeword")
	}

	indices := make([]int, 0, number)
	reducedSeen := make(map[int]bool, number)

	var counter uint32
	for len(indices) < number {
		var counterBuf [4]byte
		binary.BigEndian.PutUint32(counterBuf[:], counter)
		digest := blake2bSum(append(append([]byte(nil), seed...), counterBuf[:]...))

		index := sampleIndex(digest, size)
		reduced := index % reducedSize
		counter++

		if reducedSeen[reduced] {
			continue
		}
		reducedSeen[reduced] = true
		indices = append(indices, index)
	}
	return indices
}

