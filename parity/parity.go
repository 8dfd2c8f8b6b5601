// Package parity implements the XOR redundancy scheme: one parity chunk is
// the byte-wise XOR of all k data chunks, which recovers exactly one missing
// chunk per group. Additional parity copies beyond the first do not raise
// the recoverable-erasure count; that would take a coefficient-based code.
package parity

import (
	"fmt"

	erasure "github.com/ursa-mikail/erasure-coding"
)

// Compute returns the byte-wise XOR of all chunks. Chunks must be non-empty
// and equal length: XOR over misaligned chunks silently produces garbage,
// so the guard is explicit.
func Compute(chunks [][]byte) ([]byte, error) {
	if len(chunks) == 0 {
		return nil, erasure.InvalidParamError{Reason: "no chunks"}
	}
	if err := checkLengths(chunks, len(chunks[0])); err != nil {
		return nil, err
	}
	p := make([]byte, len(chunks[0]))
	for _, c := range chunks {
		xorInto(p, c)
	}
	return p, nil
}

// Recover reconstructs the single missing chunk of a group. chunks has
// length k with exactly one nil entry; parity is the XOR over the full
// group. Returns the recovered chunk and its index. With two or more nil
// entries, or a nil parity, one XOR equation cannot separate the unknowns.
func Recover(chunks [][]byte, parity []byte) (missing []byte, index int, err error) {
	index = -1
	known := 0
	for i, c := range chunks {
		if c == nil {
			if index < 0 {
				index = i
			}
			continue
		}
		known++
	}
	if index < 0 {
		err = erasure.InvalidParamError{Reason: "no chunk missing"}
		return
	}
	if known < len(chunks)-1 || parity == nil {
		have := known
		if parity != nil {
			have++
		}
		err = erasure.InsufficientFragmentsError{Need: len(chunks), Got: have}
		return
	}
	if err = checkLengths(chunks, len(parity)); err != nil {
		return
	}
	missing = make([]byte, len(parity))
	copy(missing, parity)
	for _, c := range chunks {
		if c != nil {
			xorInto(missing, c)
		}
	}
	return
}

func checkLengths(chunks [][]byte, want int) error {
	for i, c := range chunks {
		if c != nil && len(c) != want {
			return erasure.InvalidParamError{
				Reason: fmt.Sprintf("chunk %d has length %d, want %d", i, len(c), want),
			}
		}
	}
	return nil
}

func xorInto(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}
