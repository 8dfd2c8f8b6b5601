package split_test

import (
	"bytes"
	"testing"

	assert "github.com/stretchr/testify/require"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/split"
)

func TestSplitExact(t *testing.T) {
	data := []byte("abcdefgh")
	chunks, chunkSize, err := split.Split(data, 4)
	assert.NoError(t, err)
	assert.Equal(t, 2, chunkSize)
	assert.Len(t, chunks, 4)
	assert.Equal(t, []byte("ab"), chunks[0])
	assert.Equal(t, []byte("gh"), chunks[3])
}

func TestSplitPadding(t *testing.T) {
	data := []byte("abcdefghij")
	chunks, chunkSize, err := split.Split(data, 4)
	assert.NoError(t, err)
	assert.Equal(t, 3, chunkSize)
	assert.Len(t, chunks, 4)
	assert.Equal(t, []byte("abc"), chunks[0])
	assert.Equal(t, []byte{'j', 0, 0}, chunks[3])
}

func TestSplitErrors(t *testing.T) {
	_, _, err := split.Split(nil, 4)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, _, err = split.Split([]byte("abc"), 0)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, _, err = split.Split([]byte("abc"), -1)
	assert.IsType(t, erasure.InvalidParamError{}, err)
}

func TestSplitCopies(t *testing.T) {
	data := []byte("abcd")
	chunks, _, err := split.Split(data, 2)
	assert.NoError(t, err)
	chunks[0][0] = 'x'
	assert.Equal(t, byte('a'), data[0])
}

func TestJoinRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 9, 10, 11, 1000} {
		data := bytes.Repeat([]byte("0123456789"), 1+n/10)[:n]
		for _, k := range []int{1, 2, 3, 4, 7} {
			chunks, _, err := split.Split(data, k)
			assert.NoError(t, err)
			joined, err := split.Join(chunks, len(data))
			assert.NoError(t, err)
			assert.Equal(t, data, joined, "n=%d k=%d", n, k)
		}
	}
}

func TestJoinErrors(t *testing.T) {
	_, err := split.Join(nil, 0)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, err = split.Join([][]byte{{1, 2}, {3}}, 3)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, err = split.Join([][]byte{{1, 2}}, 3)
	assert.IsType(t, erasure.InvalidParamError{}, err)
	_, err = split.Join([][]byte{{1, 2}}, -1)
	assert.IsType(t, erasure.InvalidParamError{}, err)
}
