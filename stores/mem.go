package stores

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

type Mem struct {
	data   memMap
	dataMu sync.RWMutex
}

type memMap map[Ref][]byte

var _ Store = (*Mem)(nil)

func NewMem() *Mem {
	return &Mem{
		data: make(memMap),
	}
}

func (s *Mem) Put(ref Ref, b []byte) error {
	dup := make([]byte, len(b))
	copy(dup, b)
	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	s.data[ref] = dup
	return nil
}

func (s *Mem) Get(ref Ref) ([]byte, error) {
	s.dataMu.RLock()
	data, ok := s.data[ref]
	s.dataMu.RUnlock()
	if !ok {
		return nil, MissingDataError{errors.Errorf("no stored data for %s", ref)}
	}
	dup := make([]byte, len(data))
	copy(dup, data)
	return dup, nil
}

// Delete drops a fragment, simulating its loss.
func (s *Mem) Delete(ref Ref) {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()
	delete(s.data, ref)
}

func (s *Mem) Ls() ([]LsEntry, error) {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	entries := make([]LsEntry, 0, len(s.data))
	for ref, data := range s.data {
		entries = append(entries, LsEntry{Ref: ref, Size: int64(len(data))})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Ref, entries[j].Ref
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		return a.Index < b.Index
	})
	return entries, nil
}
