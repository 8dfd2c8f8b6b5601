package parity_test

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/parity"
	"github.com/ursa-mikail/erasure-coding/split"
)

func TestCompute(t *testing.T) {
	chunks := [][]byte{{1, 2}, {3, 4}, {5, 6}}
	p, err := parity.Compute(chunks)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1 ^ 3 ^ 5, 2 ^ 4 ^ 6}, p)
}

func TestComputeErrors(t *testing.T) {
	_, err := parity.Compute(nil)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, err = parity.Compute([][]byte{{1, 2}, {3}})
	assert.IsType(t, erasure.InvalidParamError{}, err)
}

func TestRecoverEachIndex(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	const k = 5
	chunks, _, err := split.Split(data, k)
	assert.NoError(t, err)
	p, err := parity.Compute(chunks)
	assert.NoError(t, err)
	for i := 0; i < k; i++ {
		subset := make([][]byte, k)
		copy(subset, chunks)
		subset[i] = nil
		rec, index, err := parity.Recover(subset, p)
		assert.NoError(t, err)
		assert.Equal(t, i, index)
		assert.Equal(t, chunks[i], rec)
	}
}

func TestRecoverErrors(t *testing.T) {
	chunks := [][]byte{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	p, err := parity.Compute(chunks)
	assert.NoError(t, err)

	// nothing missing
	_, _, err = parity.Recover(chunks, p)
	assert.IsType(t, erasure.InvalidParamError{}, err)

	// two unknowns, one equation
	subset := [][]byte{nil, nil, chunks[2], chunks[3]}
	_, _, err = parity.Recover(subset, p)
	insufficient := erasure.InsufficientFragmentsError{}
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Need)
	assert.Equal(t, 3, insufficient.Got)

	// missing chunk but no parity
	subset = [][]byte{nil, chunks[1], chunks[2], chunks[3]}
	_, _, err = parity.Recover(subset, nil)
	assert.ErrorAs(t, err, &erasure.InsufficientFragmentsError{})

	// misaligned chunk
	subset = [][]byte{nil, chunks[1], chunks[2], {9}}
	_, _, err = parity.Recover(subset, p)
	assert.IsType(t, erasure.InvalidParamError{}, err)
}
