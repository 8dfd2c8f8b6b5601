package codec

import (
	"encoding/json"
	"fmt"
	"io"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/checksum"
)

// PartMeta describes one encoded part. It is produced by EncodePart and is
// the read-only input DecodePart needs to make reconstruction deterministic
// and verifiable.
type PartMeta struct {
	OriginalLength int      `json:"original_length"`
	ChunkSize      int      `json:"chunk_size"`
	K              int      `json:"k"`
	M              int      `json:"m"`
	NumFragments   int      `json:"num_fragments"`
	DataHash       string   `json:"data_hash"`
	FragmentHashes []string `json:"fragment_hashes,omitempty"`
}

func (pm PartMeta) Validate() error {
	if pm.K < 1 || pm.M < 1 {
		return erasure.InvalidParamError{Reason: fmt.Sprintf("k=%d m=%d", pm.K, pm.M)}
	}
	if pm.NumFragments != pm.K+pm.M {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("num_fragments %d != k+m %d", pm.NumFragments, pm.K+pm.M),
		}
	}
	if pm.OriginalLength < 1 || pm.ChunkSize < 1 {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("original_length=%d chunk_size=%d", pm.OriginalLength, pm.ChunkSize),
		}
	}
	if pm.ChunkSize*pm.K < pm.OriginalLength {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("chunk_size %d * k %d < original_length %d",
				pm.ChunkSize, pm.K, pm.OriginalLength),
		}
	}
	if n := len(pm.FragmentHashes); n != 0 && n != pm.NumFragments {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("%d fragment hashes for %d fragments", n, pm.NumFragments),
		}
	}
	return nil
}

// FileMeta is the root record binding encode and decode together. Part
// order is significant: it is the reassembly order.
type FileMeta struct {
	OriginalFilename string     `json:"original_filename"`
	OriginalSize     int64      `json:"original_size"`
	OriginalHash     string     `json:"original_hash"`
	NumParts         int        `json:"num_parts"`
	K                int        `json:"k"`
	M                int        `json:"m"`
	Digest           string     `json:"digest,omitempty"`
	Parts            []PartMeta `json:"parts"`
}

func (fm FileMeta) Validate() error {
	if fm.NumParts != len(fm.Parts) {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("num_parts %d != %d part records", fm.NumParts, len(fm.Parts)),
		}
	}
	if fm.Digest != "" {
		if _, err := checksum.ByName(fm.Digest); err != nil {
			return erasure.InvalidParamError{Reason: err.Error()}
		}
	}
	total := int64(0)
	for i, pm := range fm.Parts {
		if err := pm.Validate(); err != nil {
			return err
		}
		if pm.K != fm.K || pm.M != fm.M {
			return erasure.InvalidParamError{
				Reason: fmt.Sprintf("part %d has k=%d m=%d, file has k=%d m=%d",
					i, pm.K, pm.M, fm.K, fm.M),
			}
		}
		total += int64(pm.OriginalLength)
	}
	if total != fm.OriginalSize {
		return erasure.InvalidParamError{
			Reason: fmt.Sprintf("part lengths sum to %d, original_size is %d", total, fm.OriginalSize),
		}
	}
	return nil
}

func (fm FileMeta) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fm)
}

func ReadFileMeta(r io.Reader) (fm FileMeta, err error) {
	err = json.NewDecoder(r).Decode(&fm)
	if err != nil {
		return
	}
	err = fm.Validate()
	return
}
