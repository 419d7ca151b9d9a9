package core

import (
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// ErrMerkleLeafCount is returned when Commit or Open receives a leaf count
// that is not a power of two.
var ErrMerkleLeafCount = errors.New("core: merkle tree requires a power-of-two number of leaves")

// ErrMerklePathLength is returned by Verify when the supplied authentication
// path's length does not match the tree height implied by numLeaves.
var ErrMerklePathLength = errors.New("core: merkle authentication path has the wrong length")

// emptyLeafDigest is the Blake2b-256 digest of the empty string. Nothing
// in this file uses it: Commit, Open and Verify do not pad, and reject a
// leaf count that is not a power of two with ErrMerkleLeafCount.
var emptyLeafDigest = blake2b.Sum256(nil)

// leafDigest hashes a single already-serialized leaf with Blake2b-256.
func leafDigest(leaf []byte) [32]byte {
	return blake2b.Sum256(leaf)
}

func nodeDigest(left, right [32]byte) [32]byte {
	buf := make([]byte, 64)
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return blake2b.Sum256(buf)
}

// Commit builds a Merkle tree over leaves (already-serialized byte strings,
// one per leaf) and returns the root digest. len(leaves) must be a power of
// two and at least 1.
func Commit(leaves [][]byte) ([32]byte, error) {
	if len(leaves) == 0 || !isPowerOfTwoInt(len(leaves)) {
		return [32]byte{}, ErrMerkleLeafCount
	}
	level := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		level[i] = leafDigest(leaf)
	}
	return commitLevel(level), nil
}

func commitLevel(level [][32]byte) [32]byte {
	if len(level) == 1 {
		return level[0]
	}
	half := len(level) / 2
	left := commitLevel(level[:half])
	right := commitLevel(level[half:])
	return nodeDigest(left, right)
}

// Open returns the authentication path for the leaf at index, from the
// sibling closest to the leaf up to (but excluding) the root.
func Open(index int, leaves [][]byte) ([][32]byte, error) {
	if len(leaves) == 0 || !isPowerOfTwoInt(len(leaves)) {
		return nil, ErrMerkleLeafCount
	}
	if index < 0 || index >= len(leaves) {
		panic("core: merkle open index out of range")
	}
	level := make([][32]byte, len(leaves))
	for i, leaf := range leaves {
		level[i] = leafDigest(leaf)
	}
	return openLevel(index, level), nil
}

func openLevel(index int, level [][32]byte) [][32]byte {
	if len(level) == 1 {
		return nil
	}
	half := len(level) / 2
	if index < half {
		path := openLevel(index, level[:half])
		return append(path, commitLevel(level[half:]))
	}
	path := openLevel(index-half, level[half:])
	return append(path, commitLevel(level[:half]))
}

// Verify reports whether path is a valid authentication path proving that
// leaf sits at index in a tree of numLeaves leaves committed to root.
func Verify(root [32]byte, numLeaves, index int, leaf []byte, path [][32]byte) (bool, error) {
	if numLeaves == 0 || !isPowerOfTwoInt(numLeaves) {
		return false, ErrMerkleLeafCount
	}
	if index < 0 || index >= numLeaves {
		panic("core: merkle verify index out of range")
	}
	expectedLen := log2Int(numLeaves)
	if len(path) != expectedLen {
		return false, ErrMerklePathLength
	}

	digest := leafDigest(leaf)
	idx := index
	for _, sibling := range path {
		if idx&1 == 0 {
			digest = nodeDigest(digest, sibling)
		} else {
			digest = nodeDigest(sibling, digest)
		}
		idx >>= 1
	}
	return digest == root, nil
}

func isPowerOfTwoInt(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2Int(n int) int {
	count := 0
	for n > 1 {
		n >>= 1
		count++
	}
	return count
}

// encodeIndex renders index as a 4-byte big-endian value.
func encodeIndex(index int) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(index))
	return b
}
