package erasure

import "github.com/ursa-mikail/erasure-coding/checksum"

// Fragment is one stored unit of an encoded part: either a data chunk
// (Index in [0,k)) or a parity chunk (Index in [k,k+m)).
type Fragment struct {
	Part  int
	Index int
	Data  []byte
	Hash  checksum.Hash
}

func NewFragment(part, index int, data []byte) *Fragment {
	return &Fragment{
		Part:  part,
		Index: index,
		Data:  data,
	}
}

func (f *Fragment) IsParity(k int) bool {
	return f.Index >= k
}
