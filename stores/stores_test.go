package stores_test

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"

	"github.com/ursa-mikail/erasure-coding/stores"
)

func testStore(t *testing.T, s stores.Store) {
	refA := stores.Ref{Part: 0, Index: 2}
	refB := stores.Ref{Part: 1, Index: 0}

	_, err := s.Get(refA)
	assert.ErrorAs(t, err, &stores.MissingDataError{})

	assert.NoError(t, s.Put(refB, []byte("second")))
	assert.NoError(t, s.Put(refA, []byte("first")))

	b, err := s.Get(refA)
	assert.NoError(t, err)
	assert.Equal(t, []byte("first"), b)

	entries, err := s.Ls()
	assert.NoError(t, err)
	assert.Equal(t, []stores.LsEntry{
		{Ref: refA, Size: 5},
		{Ref: refB, Size: 6},
	}, entries)
}

func TestMem(t *testing.T) {
	testStore(t, stores.NewMem())
}

func TestMemCopies(t *testing.T) {
	s := stores.NewMem()
	ref := stores.Ref{}
	orig := []byte("abc")
	assert.NoError(t, s.Put(ref, orig))
	orig[0] = 'x'
	b, err := s.Get(ref)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
	b[1] = 'y'
	again, err := s.Get(ref)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemDelete(t *testing.T) {
	s := stores.NewMem()
	ref := stores.Ref{Part: 2, Index: 3}
	assert.NoError(t, s.Put(ref, []byte("abc")))
	s.Delete(ref)
	_, err := s.Get(ref)
	assert.ErrorAs(t, err, &stores.MissingDataError{})
}

func TestDir(t *testing.T) {
	testStore(t, stores.Dir{Path: filepath.Join(t.TempDir(), "frags")})
}

func TestDirFilenames(t *testing.T) {
	d := stores.Dir{Path: t.TempDir()}
	ref := stores.Ref{Part: 1, Index: 12}
	assert.NoError(t, d.Put(ref, []byte("abc")))
	assert.Equal(t, filepath.Join(d.Path, "p0001.f0012"), d.FullPath(ref))
	_, err := os.Stat(d.FullPath(ref))
	assert.NoError(t, err)
}

func TestDirLsSkipsStrays(t *testing.T) {
	d := stores.Dir{Path: t.TempDir()}
	assert.NoError(t, d.Put(stores.Ref{}, []byte("abc")))
	err := os.WriteFile(filepath.Join(d.Path, "metadata.json"), []byte("{}"), 0644)
	assert.NoError(t, err)
	entries, err := d.Ls()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
