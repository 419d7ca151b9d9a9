package fri

import (
	"encoding/binary"

	"github.com/vybium/stark-core/internal/starkcore/core"
)

// encodeCodeword renders a codeword as a length-prefixed concatenation of
// each element's canonical 32-byte encoding, the payload of a KindObj
// transcript entry.
func encodeCodeword(codeword []*core.FieldElement) []byte {
	buf := make([]byte, 4, 4+len(codeword)*32)
	binary.BigEndian.PutUint32(buf, uint32(len(codeword)))
	for _, c := range codeword {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}

func decodeCodeword(data []byte, field *core.Field) []*core.FieldElement {
	count := binary.BigEndian.Uint32(data[:4])
	out := make([]*core.FieldElement, count)
	pos := 4
	for i := uint32(0); i < count; i++ {
		out[i] = field.FromBytes(data[pos : pos+32])
		pos += 32
	}
	return out
}

// encodePair renders two field elements back to back, the payload of a
// query leaf object carrying a codeword's two pre-fold values.
func encodePair(a, b *core.FieldElement) []byte {
	return append(append([]byte{}, a.Bytes()...), b.Bytes()...)
}

func decodePair(data []byte, field *core.Field) (a, b *core.FieldElement) {
	return field.FromBytes(data[:32]), field.FromBytes(data[32:64])
}

// leafBytes is the canonical serialization of a single codeword value used
// as a Merkle leaf.
func leafBytes(v *core.FieldElement) []byte {
	return v.Bytes()
}
