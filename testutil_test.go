package jffs2

import "encoding/binary"

// imageBuilder assembles a synthetic JFFS2 image byte-by-byte for tests: the
// retrieval pack carries no jffs2 fixture files, so node encoding has to be
// built by hand from spec.md §3/§6's field layout.
type imageBuilder struct {
	order binary.ByteOrder
	buf   []byte
}

func newImageBuilder(little bool) *imageBuilder {
	order := binary.ByteOrder(binary.LittleEndian)
	magic := []byte{0x85, 0x19}
	if !little {
		order = binary.BigEndian
		magic = []byte{0x19, 0x85}
	}
	return &imageBuilder{order: order, buf: append([]byte{}, magic...)}
}

func (b *imageBuilder) putU16(v uint16) {
	var tmp [2]byte
	b.order.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *imageBuilder) putU32(v uint32) {
	var tmp [4]byte
	b.order.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *imageBuilder) putU8(v uint8) {
	b.buf = append(b.buf, v)
}

// addDirent appends one JFFS2_NODETYPE_DIRENT node (spec §3, §6): 12-byte
// common header, 28-byte dirent prefix, then the raw name bytes and padding.
func (b *imageBuilder) addDirent(pino, version, ino, mctime uint32, ntype DirentType, name string) {
	nameBytes := []byte(name)
	totlen := uint32(nodeHeaderSize + direntHeaderSize + len(nameBytes))

	start := b.beginNode()
	b.putU16(nodetypeDirent)
	b.putU32(totlen)
	b.putU32(0) // hdr_crc, ignored

	b.putU32(pino)
	b.putU32(version)
	b.putU32(ino)
	b.putU32(mctime)
	b.putU8(uint8(len(nameBytes)))
	b.putU8(uint8(ntype))
	b.putU16(0) // unused
	b.putU32(0) // node_crc
	b.putU32(0) // name_crc
	b.buf = append(b.buf, nameBytes...)

	b.pad(start, totlen)
}

// addInode appends one JFFS2_NODETYPE_INODE node (spec §3, §6): 12-byte
// common header, 56-byte fixed prefix, then csize compressed bytes.
func (b *imageBuilder) addInode(ino, version, isize, offset uint32, compr Codec, data []byte) {
	csize := uint32(len(data))
	dsize := expectedDsize(compr, data, isize)
	totlen := uint32(nodeHeaderSize + fragmentHeaderSize + len(data))

	start := b.beginNode()
	b.putU16(nodetypeInode)
	b.putU32(totlen)
	b.putU32(0) // hdr_crc

	b.putU32(ino)
	b.putU32(version)
	b.putU32(0) // mode
	b.putU16(0) // uid
	b.putU16(0) // gid
	b.putU32(isize)
	b.putU32(0) // atime
	b.putU32(0) // mtime
	b.putU32(0) // ctime
	b.putU32(offset)
	b.putU32(csize)
	b.putU32(dsize)
	b.putU8(uint8(compr))
	b.putU8(0) // usercompr
	b.putU16(0) // flags
	b.putU32(0) // data_crc
	b.putU32(0) // node_crc
	b.buf = append(b.buf, data...)

	b.pad(start, totlen)
}

// addInodeExplicit lets a test set csize/dsize independently of len(data), for
// truncation and short-read test cases.
func (b *imageBuilder) addInodeExplicit(ino, version, isize, offset, csize, dsize uint32, compr Codec, data []byte) {
	totlen := uint32(nodeHeaderSize + fragmentHeaderSize + len(data))

	start := b.beginNode()
	b.putU16(nodetypeInode)
	b.putU32(totlen)
	b.putU32(0)

	b.putU32(ino)
	b.putU32(version)
	b.putU32(0)
	b.putU16(0)
	b.putU16(0)
	b.putU32(isize)
	b.putU32(0)
	b.putU32(0)
	b.putU32(0)
	b.putU32(offset)
	b.putU32(csize)
	b.putU32(dsize)
	b.putU8(uint8(compr))
	b.putU8(0)
	b.putU16(0)
	b.putU32(0)
	b.putU32(0)
	b.buf = append(b.buf, data...)

	b.pad(start, totlen)
}

// beginNode writes a node's magic (in the image's own byte order) and returns
// the node's start offset. The two magic bytes newImageBuilder puts at offset
// 0 are the first node's own magic, since scan reads its first node header at
// offset 0, so the first node reuses them instead of writing them again.
func (b *imageBuilder) beginNode() int {
	if len(b.buf) == 2 {
		return 0
	}
	start := len(b.buf)
	b.putU16(0x1985)
	return start
}

func (b *imageBuilder) pad(start int, totlen uint32) {
	want := int(pad4(totlen))
	for len(b.buf)-start < want {
		b.buf = append(b.buf, 0)
	}
}

func expectedDsize(compr Codec, data []byte, isize uint32) uint32 {
	switch compr {
	case CodecNone:
		return uint32(len(data))
	default:
		return isize
	}
}

// bytes returns the image. Once at least one node has been added, one node
// header's worth of erased-flash filler (0xFF) follows the last node: scan
// only reads a node whose totlen fits in the bytes left after its own 12-byte
// header, so a node ending flush with the image would not be read.
func (b *imageBuilder) bytes() []byte {
	if len(b.buf) <= 2 {
		return b.buf
	}
	out := append([]byte{}, b.buf...)
	for i := 0; i < nodeHeaderSize; i++ {
		out = append(out, 0xFF)
	}
	return out
}
