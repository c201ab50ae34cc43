package jffs2

// fragmentHeaderSize is the 56-byte fixed prefix of an inode node payload,
// before the csize-byte compressed data (spec §3, §4.4).
const fragmentHeaderSize = 56

// Codec names the compression algorithm a fragment's payload was written with
// (spec §4.7).
type Codec uint8

const (
	CodecNone      Codec = 0
	CodecZero      Codec = 1
	CodecRtime     Codec = 2
	CodecRubinMips Codec = 3 // fatal: ErrUnsupported
	CodecCopy      Codec = 4 // fatal: ErrUnsupported
	CodecDynrubin  Codec = 5
	CodecZlib      Codec = 6
	CodecLzo       Codec = 7
	CodecLzma      Codec = 8
)

// Fragment is one inode-node's slice of a file's contents: a logical offset
// range, its compressed/decompressed sizes, the codec it was written with, and
// a zero-copy pointer at the compressed bytes inside the image (spec §3).
type Fragment struct {
	Version  uint32
	Isize    uint32 // total resultant file size recorded by this node
	Mtime    uint32
	Offset   uint32 // logical offset within the file
	Csize    uint32 // compressed size
	Dsize    uint32 // decompressed size
	Compr    Codec
	data     []byte // compressed payload, aliasing the image
}

// scanInode parses one JFFS2_NODETYPE_INODE payload. dataOff is the absolute
// offset into the image at which the compressed bytes begin.
//
// Version reconciliation (spec §4.4): a new fragment is discarded only if an
// existing fragment at the *same* logical offset has a strictly greater
// version; otherwise it is appended, undeduplicated, and reassembly ordering
// is handled later by the fragment reassembler (§4.6).
func (r *Reader) scanInode(payload []byte, dataOff int) error {
	if len(payload) < fragmentHeaderSize {
		return ErrTruncated
	}

	order := r.src.order
	ino := order.Uint32(payload[0:4])
	version := order.Uint32(payload[4:8])
	// mode(4) uid(2) gid(2) at [8:16]: parsed fields, discarded per spec §3.
	isize := order.Uint32(payload[16:20])
	// atime(4) at [20:24]: discarded.
	mtime := order.Uint32(payload[24:28])
	// ctime(4) at [28:32]: discarded.
	foffset := order.Uint32(payload[32:36])
	csize := order.Uint32(payload[36:40])
	dsize := order.Uint32(payload[40:44])
	compr := Codec(payload[44])
	// usercompr(1) at [45], flags(2) at [46:48], data_crc(4) at [48:52],
	// node_crc(4) at [52:56]: parsed, discarded per spec §3.

	if int(csize)+fragmentHeaderSize > len(payload) {
		return ErrTruncated
	}

	for _, old := range r.inodes[ino] {
		if old.Offset == foffset && old.Version > version {
			return nil
		}
	}

	data, err := r.src.slice(dataOff, int(csize))
	if err != nil {
		return err
	}

	r.inodes[ino] = append(r.inodes[ino], &Fragment{
		Version: version,
		Isize:   isize,
		Mtime:   mtime,
		Offset:  foffset,
		Csize:   csize,
		Dsize:   dsize,
		Compr:   compr,
		data:    data,
	})
	return nil
}
