package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ursa-mikail/erasure-coding/stores"
)

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: erasure-coding <command> [options]\n")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "commands:\n")
	fmt.Fprintf(w, "\tencode\t--in FILE --out DIR [--parts N] [--k K] [--m M] [--digest NAME]\n")
	fmt.Fprintf(w, "\tdecode\t--in DIR --out FILE [--meta FILE] [--drop LIST]\n")
	fmt.Fprintf(w, "\tinfo\t--meta FILE\n")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\tex: encode --in report.pdf --out frags --parts 3 --k 4 --m 1\n")
	fmt.Fprintf(w, "\tex: decode --in frags --out report.pdf --drop 0:3,2:1\n")
}

// parseDrop reads a comma-separated list of part:fragment pairs naming
// fragments to treat as lost.
func parseDrop(s string) (map[stores.Ref]bool, error) {
	dropped := make(map[stores.Ref]bool)
	if s == "" {
		return dropped, nil
	}
	for _, pair := range strings.Split(s, ",") {
		var ref stores.Ref
		n, err := fmt.Sscanf(pair, "%d:%d", &ref.Part, &ref.Index)
		if err != nil || n != 2 {
			return nil, fmt.Errorf("invalid drop entry %q, want part:fragment", pair)
		}
		dropped[ref] = true
	}
	return dropped, nil
}
