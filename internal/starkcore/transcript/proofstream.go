// Package transcript implements the Fiat–Shamir proof stream that the FRI
// prover and verifier use to exchange commitments and derive challenges.
package transcript

import (
	"golang.org/x/crypto/sha3"
)

// Kind discriminates the four shapes an object pushed onto a ProofStream
// can take, mirroring the reference implementation's Object<T> enum
// (HASH, PATH, LEAF, OBJ).
type Kind uint8

const (
	KindHash Kind = iota
	KindPath
	KindLeaf
	KindObj
)

// Object is one entry of a ProofStream. Exactly one of the fields below is
// meaningful, selected by Kind:
//
//	KindHash -> Hash   (a single digest)
//	KindPath -> Path   (a Merkle authentication path, digest per level)
//	KindLeaf -> Data   (an opaque serialized leaf value)
//	KindObj  -> Data   (an opaque serialized protocol object)
type Object struct {
	Kind Kind
	Hash []byte
	Path [][]byte
	Data []byte
}

// ProofStream is an append-only transcript shared between prover and
// verifier. The prover pushes every commitment and opened value it sends;
// the verifier replays the same stream, pulling objects in the order the
// prover pushed them. Fiat–Shamir challenges are derived by hashing a
// serialization of the objects exchanged so far.
type ProofStream struct {
	objects   []Object
	readIndex int
}

// New returns an empty ProofStream, ready for the prover to push into.
func New() *ProofStream {
	return &ProofStream{}
}

// PushHash appends a bare digest to the stream.
func (ps *ProofStream) PushHash(digest []byte) {
	h := make([]byte, len(digest))
	copy(h, digest)
	ps.objects = append(ps.objects, Object{Kind: KindHash, Hash: h})
}

// PushPath appends a Merkle authentication path (one digest per tree
// level, sibling-closest-to-leaf first).
func (ps *ProofStream) PushPath(path [][32]byte) {
	cp := make([][]byte, len(path))
	for i, d := range path {
		cp[i] = append([]byte(nil), d[:]...)
	}
	ps.objects = append(ps.objects, Object{Kind: KindPath, Path: cp})
}

// PushLeaf appends an opaque, already-serialized leaf value.
func (ps *ProofStream) PushLeaf(data []byte) {
	d := make([]byte, len(data))
	copy(d, data)
	ps.objects = append(ps.objects, Object{Kind: KindLeaf, Data: d})
}

// PushObj appends an opaque, already-serialized protocol object (e.g. a
// codeword, an index list).
func (ps *ProofStream) PushObj(data []byte) {
	d := make([]byte, len(data))
	copy(d, data)
	ps.objects = append(ps.objects, Object{Kind: KindObj, Data: d})
}

// Pull returns the next object in transcript order and advances the read
// cursor. Returns a *ProofStreamError wrapping ErrStreamExhausted if every
// object has already been pulled — this is how a verifier detects a
// truncated or malformed proof, so it is a returned error, not a panic.
func (ps *ProofStream) Pull() (Object, error) {
	if ps.readIndex >= len(ps.objects) {
		return Object{}, &ProofStreamError{Kind: ErrKindExhausted, Cause: ErrStreamExhausted}
	}
	obj := ps.objects[ps.readIndex]
	ps.readIndex++
	return obj, nil
}

// PullExpect pulls the next object and verifies it has the given Kind
// before returning it. A tag-swapped or otherwise malformed transcript
// surfaces as a *ProofStreamError wrapping ErrUnexpectedKind here, rather
// than being silently misread as whatever shape the caller assumed.
func (ps *ProofStream) PullExpect(want Kind) (Object, error) {
	obj, err := ps.Pull()
	if err != nil {
		return Object{}, err
	}
	if obj.Kind != want {
		return Object{}, &ProofStreamError{Kind: ErrKindMalformed, Cause: ErrUnexpectedKind}
	}
	return obj, nil
}

// Len reports the total number of objects ever pushed onto the stream.
func (ps *ProofStream) Len() int { return len(ps.objects) }

// ReadIndex reports how many objects have been pulled so far.
func (ps *ProofStream) ReadIndex() int { return ps.readIndex }

// ProverFiatShamir derives a numBytes-long challenge from every object
// pushed onto the stream so far. The prover calls this after pushing a
// commitment and before the corresponding challenge is needed.
func (ps *ProofStream) ProverFiatShamir(numBytes int) []byte {
	return shakeDigest(ps.serializeRange(0, len(ps.objects)), numBytes)
}

// VerifierFiatShamir derives the same numBytes-long challenge the prover
// would have derived at the point the verifier has reached, i.e. hashing
// only the objects pulled so far. For prover and verifier to agree, the
// verifier must call this at the same logical point the prover called
// ProverFiatShamir — immediately after pulling the objects that commitment
// covered, and before pulling anything past it.
func (ps *ProofStream) VerifierFiatShamir(numBytes int) []byte {
	return shakeDigest(ps.serializeRange(0, ps.readIndex), numBytes)
}

func shakeDigest(data []byte, numBytes int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, numBytes)
	if _, err := h.Read(out); err != nil {
		panic("transcript: shake256 read failed: " + err.Error())
	}
	return out
}
