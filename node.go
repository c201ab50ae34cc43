package jffs2

// Node header layout (spec §3, §4.2): 12 bytes, magic/nodetype/totlen/hdr_crc.
const (
	magicLE = 0x1985
	magicBE = 0x8519

	nodeHeaderSize = 12

	nodetypeDirent = 0xE001
	nodetypeInode  = 0xE002
)

// pad4 rounds x up to the next multiple of 4, per spec §4.2.
func pad4(x uint32) uint32 {
	if r := x % 4; r != 0 {
		return x + (4 - r)
	}
	return x
}

// scan walks the image once, populating the dirent and inode tables (spec §4.2).
//
// The resync step advances by 4 bytes, not 2, on a magic mismatch even though
// the magic itself is only 2 bytes wide. That is preserved verbatim to match
// the reference tool's behavior (spec §9, open question 1) rather than "fixed".
func (r *Reader) scan() error {
	src := r.src
	length := src.Len()
	idx := 0

	for idx <= length-nodeHeaderSize {
		magic, err := src.u16(idx)
		if err != nil {
			return err
		}
		if magic != magicLE {
			idx += 4
			continue
		}

		nodetype, err := src.u16(idx + 2)
		if err != nil {
			return err
		}
		totlen, err := src.u32(idx + 4)
		if err != nil {
			return err
		}
		// hdr_crc at idx+8 is parsed and ignored per spec §3.

		if totlen == 0 || int(totlen) > length-(idx+nodeHeaderSize) {
			r.log.Printf("jffs2: scan stopped at offset %d (totlen=%d)", idx, totlen)
			break
		}

		payload, err := src.slice(idx+nodeHeaderSize, int(totlen)-nodeHeaderSize)
		if err != nil {
			return err
		}

		switch nodetype {
		case nodetypeDirent:
			if err := r.scanDirent(payload); err != nil {
				return err
			}
		case nodetypeInode:
			// compressed data begins at node start + 12 + 56 (spec §4.4).
			dataOff := idx + nodeHeaderSize + fragmentHeaderSize
			if err := r.scanInode(payload, dataOff); err != nil {
				return err
			}
		}

		idx += int(pad4(totlen))
	}

	return nil
}
