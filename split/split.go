// Package split divides a byte buffer into k equal-size chunks, zero-padding
// the last one so that every chunk aligns for XOR parity.
package split

import (
	"fmt"

	erasure "github.com/ursa-mikail/erasure-coding"
)

// Split cuts data into exactly k chunks of ceil(len(data)/k) bytes each.
// The tail of the last chunk is zero-padded. Each chunk is an independent
// copy, safe to mutate.
func Split(data []byte, k int) (chunks [][]byte, chunkSize int, err error) {
	if k <= 0 {
		err = erasure.InvalidParamError{Reason: fmt.Sprintf("k must be > 0, got %d", k)}
		return
	}
	if len(data) == 0 {
		err = erasure.InvalidParamError{Reason: "empty data"}
		return
	}
	chunkSize = (len(data) + k - 1) / k
	chunks = make([][]byte, k)
	for i := range chunks {
		chunks[i] = make([]byte, chunkSize)
		start := i * chunkSize
		if start < len(data) {
			copy(chunks[i], data[start:])
		}
	}
	return
}

// Join concatenates chunks in index order and truncates to originalLength,
// stripping the padding Split added.
func Join(chunks [][]byte, originalLength int) ([]byte, error) {
	if len(chunks) == 0 {
		return nil, erasure.InvalidParamError{Reason: "no chunks"}
	}
	if originalLength < 0 || originalLength > len(chunks)*len(chunks[0]) {
		return nil, erasure.InvalidParamError{
			Reason: fmt.Sprintf("original length %d out of range", originalLength),
		}
	}
	joined := make([]byte, 0, len(chunks)*len(chunks[0]))
	for i, c := range chunks {
		if len(c) != len(chunks[0]) {
			return nil, erasure.InvalidParamError{
				Reason: fmt.Sprintf("chunk %d has length %d, want %d", i, len(c), len(chunks[0])),
			}
		}
		joined = append(joined, c...)
	}
	return joined[:originalLength], nil
}
