package codec

import (
	"fmt"

	"github.com/pkg/errors"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/checksum"
	"github.com/ursa-mikail/erasure-coding/parity"
	"github.com/ursa-mikail/erasure-coding/split"
)

// EncodePart encodes one part's data into k data fragments followed by m
// parity fragments, all tagged with the part index and a content digest.
func (c Codec) EncodePart(part int, data []byte) ([]*erasure.Fragment, PartMeta, error) {
	var pm PartMeta
	if err := c.check(); err != nil {
		return nil, pm, err
	}
	chunks, chunkSize, err := split.Split(data, c.K)
	if err != nil {
		return nil, pm, err
	}
	par, err := parity.Compute(chunks)
	if err != nil {
		return nil, pm, err
	}
	sum := c.algo().Sum
	frags := make([]*erasure.Fragment, 0, c.K+c.M)
	hashes := make([]string, 0, c.K+c.M)
	add := func(index int, b []byte) {
		f := erasure.NewFragment(part, index, b)
		f.Hash = sum(b)
		frags = append(frags, f)
		hashes = append(hashes, f.Hash.Hex())
	}
	for i, chunk := range chunks {
		add(i, chunk)
	}
	for i := 0; i < c.M; i++ {
		dup := make([]byte, len(par))
		copy(dup, par)
		add(c.K+i, dup)
	}
	pm = PartMeta{
		OriginalLength: len(data),
		ChunkSize:      chunkSize,
		K:              c.K,
		M:              c.M,
		NumFragments:   c.K + c.M,
		DataHash:       sum(data).Hex(),
		FragmentHashes: hashes,
	}
	return frags, pm, nil
}

// DecodePart reconstructs a part from a subset of its fragments. With all k
// data fragments present, parity is skipped; with k-1 present and a parity
// fragment, the missing chunk is recovered by XOR; any other shape is
// unrecoverable no matter how many fragments were supplied.
func (c Codec) DecodePart(frags []*erasure.Fragment, pm PartMeta) ([]byte, error) {
	if err := pm.Validate(); err != nil {
		return nil, err
	}
	if len(frags) < pm.K {
		return nil, erasure.InsufficientFragmentsError{Need: pm.K, Got: len(frags)}
	}
	sum := c.algo().Sum
	data := make([][]byte, pm.K)
	var par []byte
	parIndex := -1
	seen := make(map[int]bool, len(frags))
	for _, f := range frags {
		if f.Index < 0 || f.Index >= pm.NumFragments {
			return nil, erasure.InvalidParamError{
				Reason: fmt.Sprintf("fragment index %d out of range [0,%d)", f.Index, pm.NumFragments),
			}
		}
		if seen[f.Index] {
			return nil, erasure.InvalidParamError{
				Reason: fmt.Sprintf("duplicate fragment %d", f.Index),
			}
		}
		seen[f.Index] = true
		if len(f.Data) != pm.ChunkSize {
			return nil, erasure.InvalidParamError{
				Reason: fmt.Sprintf("fragment %d has %d bytes, chunk size is %d",
					f.Index, len(f.Data), pm.ChunkSize),
			}
		}
		if err := verifyFragment(f, pm, sum); err != nil {
			return nil, err
		}
		if f.Index < pm.K {
			data[f.Index] = f.Data
		} else if parIndex < 0 || f.Index < parIndex {
			par, parIndex = f.Data, f.Index
		}
	}
	var missing []int
	for i, chunk := range data {
		if chunk == nil {
			missing = append(missing, i)
		}
	}
	switch {
	case len(missing) == 0:
	case len(missing) == 1 && par != nil:
		rec, _, err := parity.Recover(data, par)
		if err != nil {
			return nil, err
		}
		data[missing[0]] = rec
	default:
		return nil, erasure.UnrecoverableError{Missing: missing, HaveParity: par != nil}
	}
	out, err := split.Join(data, pm.OriginalLength)
	if err != nil {
		return nil, err
	}
	if sum(out).Hex() != pm.DataHash {
		return nil, errors.Wrap(erasure.ErrIntegrityCheckFailed, "part data hash mismatch")
	}
	return out, nil
}

// verifyFragment checks a supplied fragment against the digest recorded at
// encode time, before its content participates in reconstruction.
func verifyFragment(f *erasure.Fragment, pm PartMeta, sum func([]byte) checksum.Hash) error {
	var want checksum.Hash
	if len(pm.FragmentHashes) == pm.NumFragments {
		var err error
		want, err = checksum.ParseHex(pm.FragmentHashes[f.Index])
		if err != nil {
			return erasure.InvalidParamError{
				Reason: fmt.Sprintf("fragment %d hash: %v", f.Index, err),
			}
		}
	} else if f.Hash != (checksum.Hash{}) {
		want = f.Hash
	} else {
		return nil
	}
	if sum(f.Data) != want {
		return errors.Wrapf(erasure.ErrIntegrityCheckFailed, "fragment %d", f.Index)
	}
	return nil
}
