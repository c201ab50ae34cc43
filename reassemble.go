package jffs2

import (
	"fmt"
	"io"
	"sort"
)

// reassemble orders a file's fragments by ascending logical offset (stable
// among ties, spec §4.6) and writes each one's decompressed payload to w in
// order. No hole-filling is performed: well-formed images tile [0, isize)
// contiguously (spec §3, §9).
func (r *Reader) reassemble(w io.Writer, frags []*Fragment) error {
	ordered := make([]*Fragment, len(frags))
	copy(ordered, frags)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Offset < ordered[j].Offset
	})

	for _, f := range ordered {
		out, err := decode(f)
		if err != nil {
			r.log.Printf("jffs2: codec %s failed at offset %d: %s", f.Compr, f.Offset, err)
			return fmt.Errorf("jffs2: fragment at offset %d: %w", f.Offset, err)
		}
		// If a decoder over-produces, truncate to the declared size; if it
		// under-produces, emit what it produced (spec §4.6).
		if uint32(len(out)) > f.Dsize {
			out = out[:f.Dsize]
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// fileSize returns the greatest offset+dsize across a file's fragments, the
// expected reassembled length for a well-formed image (spec §3).
func fileSize(frags []*Fragment) uint64 {
	var max uint64
	for _, f := range frags {
		end := uint64(f.Offset) + uint64(f.Dsize)
		if end > max {
			max = end
		}
	}
	return max
}
