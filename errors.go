package erasure

import (
	"errors"
	"fmt"
)

// ErrIntegrityCheckFailed reports a digest mismatch at part, file or
// fragment level: reconstruction went through mechanically but the content
// is wrong. Distinct from the subset-shape errors below, which mean the
// caller should supply a different fragment selection.
var ErrIntegrityCheckFailed = errors.New("checksum verification failed")

type InvalidParamError struct {
	Reason string
}

var _ error = InvalidParamError{}

func (err InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", err.Reason)
}

// InsufficientFragmentsError means fewer fragments were supplied than the
// minimum the subset could ever be reconstructed from.
type InsufficientFragmentsError struct {
	Need, Got int
}

var _ error = InsufficientFragmentsError{}

func (err InsufficientFragmentsError) Error() string {
	return fmt.Sprintf("insufficient fragments: need %d, got %d", err.Need, err.Got)
}

// UnrecoverableError means the subset was large enough but has the wrong
// shape for XOR recovery: two or more data chunks missing, or one missing
// with no parity present.
type UnrecoverableError struct {
	Missing    []int
	HaveParity bool
}

var _ error = UnrecoverableError{}

func (err UnrecoverableError) Error() string {
	if len(err.Missing) == 1 && !err.HaveParity {
		return fmt.Sprintf("unrecoverable: data chunk %d missing with no parity", err.Missing[0])
	}
	return fmt.Sprintf("unrecoverable: %d data chunks missing %v", len(err.Missing), err.Missing)
}
