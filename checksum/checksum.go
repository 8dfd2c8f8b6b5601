package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
)

const Size = sha256.Size

type Hash [Size]byte

func (h *Hash) LoadSlice(b []byte) error {
	if len(b) != Size {
		return fmt.Errorf("invalid checksum length: %d", len(b))
	}
	copy(h[:], b)
	return nil
}

func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func ParseHex(s string) (h Hash, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return
	}
	err = h.LoadSlice(b)
	return
}

// Algo is a named 256-bit digest. The codec treats the digest as opaque:
// any collision-resistant function fits, the name is recorded in metadata
// so decode picks the same one.
type Algo struct {
	Name string
	Sum  func([]byte) Hash
}

var (
	SHA256 = Algo{"sha256", sumSHA256}
	BLAKE3 = Algo{"blake3", sumBLAKE3}
)

func sumSHA256(b []byte) Hash { return Hash(sha256.Sum256(b)) }
func sumBLAKE3(b []byte) Hash { return Hash(blake3.Sum256(b)) }

var algos = map[string]Algo{
	SHA256.Name: SHA256,
	BLAKE3.Name: BLAKE3,
}

func ByName(name string) (Algo, error) {
	a, ok := algos[name]
	if !ok {
		return Algo{}, errors.New("unknown digest: " + name)
	}
	return a, nil
}
