package jffs2

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// decompressZlib backs codec tag 6 (ZLIB, spec §4.7) with klauspost/compress's
// zlib reader, the same library the teacher registers its GZip backend with
// (comp_xz.go/comp_zstd.go follow the identical registration shape for their
// own codecs).
func decompressZlib(src []byte, dsize int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out := make([]byte, 0, dsize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func init() {
	RegisterDecompressor(CodecZlib, decompressZlib)
}
