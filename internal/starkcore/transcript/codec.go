package transcript

import "encoding/binary"

// Serialize renders the entire transcript (every object ever pushed,
// regardless of how much has been pulled) into a canonical byte string:
// a 4-byte object count followed by each object's tagged encoding. Used to
// persist a transcript for later replay, and to round-trip it through
// Deserialize (spec Testable Property #6).
func (ps *ProofStream) Serialize() []byte {
	return encodeObjects(ps.objects)
}

// serializeRange renders objects[start:end] the same way Serialize does,
// used internally to hash exactly the prefix of the transcript the prover
// or verifier has observed so far.
func (ps *ProofStream) serializeRange(start, end int) []byte {
	return encodeObjects(ps.objects[start:end])
}

func encodeObjects(objects []Object) []byte {
	buf := make([]byte, 4, 64)
	binary.BigEndian.PutUint32(buf, uint32(len(objects)))
	for _, obj := range objects {
		buf = encodeObject(buf, obj)
	}
	return buf
}

func encodeObject(buf []byte, obj Object) []byte {
	buf = append(buf, byte(obj.Kind))
	switch obj.Kind {
	case KindHash:
		buf = appendLenPrefixed(buf, obj.Hash)
	case KindPath:
		var countBuf [4]byte
		binary.BigEndian.PutUint32(countBuf[:], uint32(len(obj.Path)))
		buf = append(buf, countBuf[:]...)
		for _, d := range obj.Path {
			buf = appendLenPrefixed(buf, d)
		}
	case KindLeaf, KindObj:
		buf = appendLenPrefixed(buf, obj.Data)
	default:
		panic("transcript: unknown object kind during serialization")
	}
	return buf
}

func appendLenPrefixed(buf, data []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, data...)
}

// Deserialize parses the byte string produced by Serialize back into a
// fresh ProofStream with its read cursor at the start. Returns a
// *ProofStreamError of kind ErrKindMalformed wrapping ErrTruncated,
// ErrUnknownTag or ErrTrailingBytes on any truncation, unrecognized tag or
// leftover bytes, since the input may come from an untrusted prover.
func Deserialize(data []byte) (*ProofStream, error) {
	r := &byteReader{data: data}
	count, err := r.readUint32()
	if err != nil {
		return nil, &ProofStreamError{Kind: ErrKindMalformed, Cause: err}
	}

	objects := make([]Object, 0, count)
	for i := uint32(0); i < count; i++ {
		obj, err := decodeObject(r)
		if err != nil {
			return nil, &ProofStreamError{Kind: ErrKindMalformed, Cause: err}
		}
		objects = append(objects, obj)
	}
	if r.remaining() != 0 {
		return nil, &ProofStreamError{Kind: ErrKindMalformed, Cause: ErrTrailingBytes}
	}
	return &ProofStream{objects: objects}, nil
}

func decodeObject(r *byteReader) (Object, error) {
	tag, err := r.readByte()
	if err != nil {
		return Object{}, err
	}
	switch Kind(tag) {
	case KindHash:
		h, err := r.readLenPrefixed()
		if err != nil {
			return Object{}, err
		}
		return Object{Kind: KindHash, Hash: h}, nil
	case KindPath:
		count, err := r.readUint32()
		if err != nil {
			return Object{}, err
		}
		path := make([][]byte, count)
		for i := uint32(0); i < count; i++ {
			d, err := r.readLenPrefixed()
			if err != nil {
				return Object{}, err
			}
			path[i] = d
		}
		return Object{Kind: KindPath, Path: path}, nil
	case KindLeaf:
		d, err := r.readLenPrefixed()
		if err != nil {
			return Object{}, err
		}
		return Object{Kind: KindLeaf, Data: d}, nil
	case KindObj:
		d, err := r.readLenPrefixed()
		if err != nil {
			return Object{}, err
		}
		return Object{Kind: KindObj, Data: d}, nil
	default:
		return Object{}, ErrUnknownTag
	}
}

// byteReader is a minimal cursor over a byte slice used only by the codec;
// it exists so decode errors surface as plain errors rather than panics,
// since Deserialize's input is untrusted.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) remaining() int { return len(r.data) - r.pos }

func (r *byteReader) readByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, ErrTruncated
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) readUint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) readLenPrefixed() ([]byte, error) {
	n, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	if uint32(r.remaining()) < n {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return out, nil
}
