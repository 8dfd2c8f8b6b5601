package stores

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Dir stores each fragment as one file named p<part>.f<index> under Path.
type Dir struct {
	Path string
}

var _ Store = Dir{}

func (d Dir) FullPath(ref Ref) string {
	return filepath.Join(d.Path, fmt.Sprintf("p%04d.f%04d", ref.Part, ref.Index))
}

func (d Dir) Put(ref Ref, b []byte) error {
	if err := os.MkdirAll(d.Path, 0755); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(d.FullPath(ref), b, 0644), "put %s", ref)
}

func (d Dir) Get(ref Ref) ([]byte, error) {
	b, err := os.ReadFile(d.FullPath(ref))
	if os.IsNotExist(err) {
		return nil, MissingDataError{errors.Errorf("no stored data for %s", ref)}
	}
	return b, err
}

func (d Dir) Ls() ([]LsEntry, error) {
	des, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, err
	}
	var entries []LsEntry
	for _, de := range des {
		var ref Ref
		n, err := fmt.Sscanf(de.Name(), "p%d.f%d", &ref.Part, &ref.Index)
		if err != nil || n != 2 {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, err
		}
		entries = append(entries, LsEntry{Ref: ref, Size: info.Size()})
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
