package codec

import (
	"fmt"

	"github.com/pkg/errors"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/concur"
)

// EncodeFile splits data into numParts contiguous ranges of equal size
// (the last part absorbs the remainder), encodes each part independently,
// and returns fragments grouped by part alongside the file metadata.
// Parts are encoded concurrently; output order is part-index order.
func (c Codec) EncodeFile(name string, data []byte, numParts int) ([][]*erasure.Fragment, FileMeta, error) {
	var fm FileMeta
	if err := c.check(); err != nil {
		return nil, fm, err
	}
	if len(data) == 0 {
		return nil, fm, erasure.InvalidParamError{Reason: "empty data"}
	}
	if numParts < 1 || numParts > len(data) {
		return nil, fm, erasure.InvalidParamError{
			Reason: fmt.Sprintf("num_parts must be in [1,%d], got %d", len(data), numParts),
		}
	}
	partSize := len(data) / numParts
	frags := make([][]*erasure.Fragment, numParts)
	pms := make([]PartMeta, numParts)
	err := concur.Indexed(numParts, func(i int) error {
		lo := i * partSize
		hi := lo + partSize
		if i == numParts-1 {
			hi = len(data)
		}
		f, pm, err := c.EncodePart(i, data[lo:hi])
		if err != nil {
			return errors.Wrapf(err, "part %d", i)
		}
		frags[i], pms[i] = f, pm
		return nil
	})
	if err != nil {
		return nil, fm, err
	}
	fm = FileMeta{
		OriginalFilename: name,
		OriginalSize:     int64(len(data)),
		OriginalHash:     c.algo().Sum(data).Hex(),
		NumParts:         numParts,
		K:                c.K,
		M:                c.M,
		Digest:           c.algo().Name,
		Parts:            pms,
	}
	return frags, fm, nil
}

// DecodeFile reconstructs the whole file from per-part fragment subsets.
// Every part must decode; there is no partial output. The reassembled
// bytes are checked against the whole-file hash even though each part
// verified individually, so a part-ordering bug cannot pass silently.
func (c Codec) DecodeFile(parts [][]*erasure.Fragment, fm FileMeta) ([]byte, error) {
	if err := fm.Validate(); err != nil {
		return nil, err
	}
	if len(parts) != fm.NumParts {
		return nil, erasure.InvalidParamError{
			Reason: fmt.Sprintf("%d fragment groups for %d parts", len(parts), fm.NumParts),
		}
	}
	cc, err := FromMeta(fm)
	if err != nil {
		return nil, err
	}
	if fm.Digest == "" {
		// metadata written before digests were recorded: trust the caller's
		cc.Sum = c.algo()
	}
	decoded := make([][]byte, fm.NumParts)
	err = concur.Indexed(fm.NumParts, func(i int) error {
		out, err := cc.DecodePart(parts[i], fm.Parts[i])
		if err != nil {
			return errors.Wrapf(err, "part %d", i)
		}
		decoded[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	joined := make([]byte, 0, fm.OriginalSize)
	for _, p := range decoded {
		joined = append(joined, p...)
	}
	if cc.algo().Sum(joined).Hex() != fm.OriginalHash {
		return nil, errors.Wrap(erasure.ErrIntegrityCheckFailed, "file hash mismatch")
	}
	return joined, nil
}
