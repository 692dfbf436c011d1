// Package bitvec provides distance functions over packed bit vectors.
//
// A bit vector is a borrowed []byte view over caller-managed memory;
// eight bits per byte, little-endian word reads for the fast path.
package bitvec

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// ErrLengthMismatch indicates bit vectors of different byte lengths.
type ErrLengthMismatch struct {
	A int
	B int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("bit vector length mismatch: %d vs %d bytes", e.A, e.B)
}

// Hamming returns the number of differing bits between a and b.
func Hamming(a, b []byte) (uint64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{A: len(a), B: len(b)}
	}
	var total uint64
	i := 0
	for ; i+8 <= len(a); i += 8 {
		v1 := binary.LittleEndian.Uint64(a[i:])
		v2 := binary.LittleEndian.Uint64(b[i:])
		total += uint64(bits.OnesCount64(v1 ^ v2))
	}
	for ; i < len(a); i++ {
		total += uint64(bits.OnesCount8(a[i] ^ b[i]))
	}
	return total, nil
}

// Jaccard returns the Jaccard distance 1 - |a∧b|/|a∨b| between a and b.
// Two vectors with an empty union have distance 0.
func Jaccard(a, b []byte) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrLengthMismatch{A: len(a), B: len(b)}
	}
	var and, or uint64
	i := 0
	for ; i+8 <= len(a); i += 8 {
		v1 := binary.LittleEndian.Uint64(a[i:])
		v2 := binary.LittleEndian.Uint64(b[i:])
		and += uint64(bits.OnesCount64(v1 & v2))
		or += uint64(bits.OnesCount64(v1 | v2))
	}
	for ; i < len(a); i++ {
		and += uint64(bits.OnesCount8(a[i] & b[i]))
		or += uint64(bits.OnesCount8(a[i] | b[i]))
	}
	if or == 0 {
		return 0, nil
	}
	return 1 - float64(and)/float64(or), nil
}
