// Package codec encodes a file into per-part fragment groups (k data + m
// XOR parity each) and reconstructs it from fragment subsets, verifying
// integrity through the metadata record produced at encode time.
package codec

import (
	"fmt"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/checksum"
)

// Codec holds the coding parameters. M > 1 emits extra copies of the same
// XOR parity: it does not raise the recoverable-erasure count, which stays
// at one missing data chunk per part.
type Codec struct {
	K, M int
	Sum  checksum.Algo // defaults to checksum.SHA256
}

func New(k, m int) (Codec, error) {
	c := Codec{K: k, M: m}
	return c, c.check()
}

// FromMeta builds the codec a metadata record was encoded with.
func FromMeta(fm FileMeta) (c Codec, err error) {
	c = Codec{K: fm.K, M: fm.M}
	if fm.Digest != "" {
		c.Sum, err = checksum.ByName(fm.Digest)
		if err != nil {
			return c, erasure.InvalidParamError{Reason: err.Error()}
		}
	}
	return c, c.check()
}

func (c Codec) check() error {
	if c.K < 1 {
		return erasure.InvalidParamError{Reason: fmt.Sprintf("k must be >= 1, got %d", c.K)}
	}
	if c.M < 1 {
		return erasure.InvalidParamError{Reason: fmt.Sprintf("m must be >= 1, got %d", c.M)}
	}
	return nil
}

func (c Codec) algo() checksum.Algo {
	if c.Sum.Sum == nil {
		return checksum.SHA256
	}
	return c.Sum
}
