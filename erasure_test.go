package erasure_test

import (
	"testing"

	assert "github.com/stretchr/testify/require"

	erasure "github.com/ursa-mikail/erasure-coding"
)

func TestFragmentIsParity(t *testing.T) {
	const k = 4
	assert.False(t, erasure.NewFragment(0, 0, nil).IsParity(k))
	assert.False(t, erasure.NewFragment(0, 3, nil).IsParity(k))
	assert.True(t, erasure.NewFragment(0, 4, nil).IsParity(k))
	assert.True(t, erasure.NewFragment(0, 5, nil).IsParity(k))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid parameter: empty data",
		erasure.InvalidParamError{Reason: "empty data"}.Error())
	assert.Equal(t, "insufficient fragments: need 4, got 3",
		erasure.InsufficientFragmentsError{Need: 4, Got: 3}.Error())
	assert.Equal(t, "unrecoverable: 2 data chunks missing [1 3]",
		erasure.UnrecoverableError{Missing: []int{1, 3}, HaveParity: true}.Error())
	assert.Equal(t, "unrecoverable: data chunk 2 missing with no parity",
		erasure.UnrecoverableError{Missing: []int{2}}.Error())
}
