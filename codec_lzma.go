package jffs2

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// lzmaDictSize is the fixed dictionary size jffs2 uses for its LZMA fragments;
// unlike a standalone .lzma file, none of this is stored on disk (spec §4.7).
const lzmaDictSize = 0x2000

// lzmaProperties encodes lc=lp=pb=0, jffs2's fixed LZMA parameter choice.
const lzmaProperties = (0*5 + 0) * 9 + 0

// decompressLzma backs codec tag 8 (LZMA, spec §4.7). The on-disk payload
// lacks the standard 13-byte .lzma header, so it is reconstructed here
// (properties byte, 4-byte little-endian dict size, 8-byte little-endian
// uncompressed size) and prepended before handing the stream to
// ulikunitz/xz's LZMA1 reader, exactly as spec §4.7 describes.
func decompressLzma(src []byte, dsize int) ([]byte, error) {
	var header [13]byte
	header[0] = lzmaProperties
	binary.LittleEndian.PutUint32(header[1:5], lzmaDictSize)
	binary.LittleEndian.PutUint64(header[5:13], uint64(dsize))

	full := make([]byte, 0, len(header)+len(src))
	full = append(full, header[:]...)
	full = append(full, src...)

	lr, err := lzma.NewReader(bytes.NewReader(full))
	if err != nil {
		return nil, err
	}

	out := bytes.NewBuffer(make([]byte, 0, dsize))
	if _, err := io.Copy(out, lr); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func init() {
	RegisterDecompressor(CodecLzma, decompressLzma)
}
