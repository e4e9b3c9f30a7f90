package sqlite

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeEmbedding encodes a vector as a little-endian sequence of IEEE 754
// float32 values without a length prefix; the length is derived from the
// BLOB size on decode. Components are narrowed to float32, which loses
// precision a cosine distance ranking does not care about.
func encodeEmbedding(vec []float64) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(float32(v)))
	}
	return b
}

// decodeEmbedding decodes a BLOB produced by encodeEmbedding.
func decodeEmbedding(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d (not multiple of 4)", len(b))
	}
	vec := make([]float64, len(b)/4)
	for i := range vec {
		vec[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return vec, nil
}
