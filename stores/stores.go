// Package stores persists fragments as addressable blobs, one blob per
// (part, fragment) pair. Which fragments get read back for a decode is the
// caller's decision; a store only answers what it holds.
package stores

import "fmt"

type Ref struct {
	Part  int
	Index int
}

func (r Ref) String() string {
	return fmt.Sprintf("part %d fragment %d", r.Part, r.Index)
}

type Store interface {
	Put(Ref, []byte) error
	Get(Ref) ([]byte, error)
	Lister
}

type Lister interface {
	Ls() ([]LsEntry, error)
}

type LsEntry struct {
	Ref  Ref
	Size int64
}

type MissingDataError struct {
	Err error
}

var _ error = MissingDataError{}

func (err MissingDataError) Error() string {
	return fmt.Sprintf("missing data: %v", err.Err)
}
