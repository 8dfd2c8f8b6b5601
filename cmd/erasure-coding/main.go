package main

import (
	"fmt"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	erasure "github.com/ursa-mikail/erasure-coding"
	"github.com/ursa-mikail/erasure-coding/checksum"
	"github.com/ursa-mikail/erasure-coding/codec"
	"github.com/ursa-mikail/erasure-coding/stores"
)

const metaFilename = "metadata.json"

func main() {
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func start() error {
	args := os.Args[1:]
	if len(args) < 1 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "encode":
		return cmdEncode(args)
	case "decode":
		return cmdDecode(args)
	case "info":
		return cmdInfo(args)
	case "-h", "--help", "help":
		usage(os.Stdout)
		return nil
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func cmdEncode(args []string) error {
	fl := flag.NewFlagSet("encode", flag.ExitOnError)
	in := fl.String("in", "", "input file")
	out := fl.String("out", "", "output fragment directory")
	parts := fl.Int("parts", 2, "number of parts")
	k := fl.Int("k", 4, "data fragments per part")
	m := fl.Int("m", 1, "parity fragments per part")
	digest := fl.String("digest", checksum.SHA256.Name, "digest: sha256 or blake3")
	fl.Parse(args)
	if *in == "" || *out == "" {
		return errors.New("encode: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	c, err := codec.New(*k, *m)
	if err != nil {
		return err
	}
	c.Sum, err = checksum.ByName(*digest)
	if err != nil {
		return err
	}
	frags, fm, err := c.EncodeFile(filepath.Base(*in), data, *parts)
	if err != nil {
		return err
	}

	store := stores.Dir{Path: *out}
	nfrags := 0
	for _, group := range frags {
		for _, f := range group {
			err := store.Put(stores.Ref{Part: f.Part, Index: f.Index}, f.Data)
			if err != nil {
				return err
			}
			nfrags++
		}
	}
	w, err := os.Create(filepath.Join(*out, metaFilename))
	if err != nil {
		return err
	}
	defer w.Close()
	if err := fm.Write(w); err != nil {
		return err
	}

	fmt.Printf("encoded %s (%s, %s)\n",
		fm.OriginalFilename, humanize.IBytes(uint64(fm.OriginalSize)), fm.OriginalHash)
	fmt.Printf("%d parts x (%d data + %d parity) = %d fragments in %s\n",
		fm.NumParts, fm.K, fm.M, nfrags, *out)
	for i, pm := range fm.Parts {
		fmt.Printf("  part %d: %s in chunks of %s\n", i,
			humanize.IBytes(uint64(pm.OriginalLength)), humanize.IBytes(uint64(pm.ChunkSize)))
	}
	return nil
}

func cmdDecode(args []string) error {
	fl := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fl.String("in", "", "fragment directory")
	out := fl.String("out", "", "output file")
	metaPath := fl.String("meta", "", "metadata file (default <dir>/"+metaFilename+")")
	drop := fl.String("drop", "", "fragments to treat as lost, e.g. 0:3,1:4")
	fl.Parse(args)
	if *in == "" || *out == "" {
		return errors.New("decode: -in and -out are required")
	}
	if *metaPath == "" {
		*metaPath = filepath.Join(*in, metaFilename)
	}

	r, err := os.Open(*metaPath)
	if err != nil {
		return err
	}
	fm, err := codec.ReadFileMeta(r)
	r.Close()
	if err != nil {
		return err
	}
	dropped, err := parseDrop(*drop)
	if err != nil {
		return err
	}

	store := stores.Dir{Path: *in}
	parts := make([][]*erasure.Fragment, fm.NumParts)
	lost := 0
	for i := 0; i < fm.NumParts; i++ {
		for j := 0; j < fm.Parts[i].NumFragments; j++ {
			ref := stores.Ref{Part: i, Index: j}
			if dropped[ref] {
				lost++
				continue
			}
			b, err := store.Get(ref)
			if err != nil {
				if errors.As(err, &stores.MissingDataError{}) {
					lost++
					continue
				}
				return err
			}
			parts[i] = append(parts[i], erasure.NewFragment(i, j, b))
		}
	}

	c, err := codec.FromMeta(fm)
	if err != nil {
		return err
	}
	data, err := c.DecodeFile(parts, fm)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return err
	}
	fmt.Printf("reconstructed %s (%s) from %s, %d fragments unavailable\n",
		*out, humanize.IBytes(uint64(len(data))), *in, lost)
	fmt.Printf("hash verified: %s\n", fm.OriginalHash)
	return nil
}

func cmdInfo(args []string) error {
	fl := flag.NewFlagSet("info", flag.ExitOnError)
	metaPath := fl.String("meta", "", "metadata file")
	fl.Parse(args)
	if *metaPath == "" {
		return errors.New("info: -meta is required")
	}
	r, err := os.Open(*metaPath)
	if err != nil {
		return err
	}
	defer r.Close()
	fm, err := codec.ReadFileMeta(r)
	if err != nil {
		return err
	}
	digest := fm.Digest
	if digest == "" {
		digest = checksum.SHA256.Name
	}
	fmt.Printf("%s: %s, %d parts, k=%d m=%d, digest %s\n",
		fm.OriginalFilename, humanize.IBytes(uint64(fm.OriginalSize)), fm.NumParts,
		fm.K, fm.M, digest)
	fmt.Printf("hash: %s\n", fm.OriginalHash)
	for i, pm := range fm.Parts {
		fmt.Printf("  part %d: %d bytes, %d fragments of %d bytes, hash %s\n",
			i, pm.OriginalLength, pm.NumFragments, pm.ChunkSize, pm.DataHash)
	}
	return nil
}
