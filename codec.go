package jffs2

import "fmt"

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "NONE"
	case CodecZero:
		return "ZERO"
	case CodecRtime:
		return "RTIME"
	case CodecRubinMips:
		return "RUBINMIPS"
	case CodecCopy:
		return "COPY"
	case CodecDynrubin:
		return "DYNRUBIN"
	case CodecZlib:
		return "ZLIB"
	case CodecLzo:
		return "LZO"
	case CodecLzma:
		return "LZMA"
	}
	return fmt.Sprintf("Codec(%d)", uint8(c))
}

// decompressFunc decodes one fragment's compressed bytes, given the expected
// decompressed length. Implementations should treat dsize as a hint for
// buffer sizing, not a hard contract to meet exactly; reassemble() truncates
// or accepts a short result (spec §4.6).
type decompressFunc func(src []byte, dsize int) ([]byte, error)

// decoders is the codec dispatch table (spec §4.7, §9: "model as ... a
// dispatch table keyed by codec tag"). NONE/ZERO/RTIME are registered
// unconditionally from this file's init since they need no external library;
// ZLIB/LZMA/LZO/DYNRUBIN register themselves from their own files so each
// codec's dependency lives next to its decoder, mirroring how squashfs splits
// GZip/XZ/ZSTD backends across comp_xz.go/comp_zstd.go.
var decoders = map[Codec]decompressFunc{}

// RegisterDecompressor installs (or replaces) the decoder used for a codec
// tag. Exported so a caller can substitute a verified implementation for the
// codecs this reader treats as external collaborators (LZO, DYNRUBIN; spec
// §9) without forking the dispatcher.
func RegisterDecompressor(c Codec, fn decompressFunc) {
	decoders[c] = fn
}

func init() {
	RegisterDecompressor(CodecNone, decompressNone)
	RegisterDecompressor(CodecZero, decompressZero)
	RegisterDecompressor(CodecRtime, decompressRtime)
}

// decode dispatches one fragment to its codec's decoder (spec §4.7).
func decode(f *Fragment) ([]byte, error) {
	switch f.Compr {
	case CodecRubinMips, CodecCopy:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f.Compr)
	}

	fn, ok := decoders[f.Compr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f.Compr)
	}

	out, err := fn(f.data, int(f.Dsize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrCodecFailure, f.Compr, err)
	}
	return out, nil
}

// decompressNone copies the compressed bytes verbatim (codec tag 0, spec §4.7).
func decompressNone(src []byte, dsize int) ([]byte, error) {
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

// decompressZero emits dsize zero bytes without reading src (codec tag 1, spec §4.7).
func decompressZero(src []byte, dsize int) ([]byte, error) {
	return make([]byte, dsize), nil
}
