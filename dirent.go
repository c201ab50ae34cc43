package jffs2

import (
	"bytes"
	"unicode/utf8"
)

// direntHeaderSize is the 28-byte fixed prefix of a dirent node payload,
// before the nsize-byte name (spec §3, §4.3).
const direntHeaderSize = 28

// Dirent is the most recently observed directory-entry record for one inode
// number, keyed by Ino in Reader.dirents. Only the fields a path resolver and
// the output façade need are retained; CRCs and the unused padding bytes are
// parsed and discarded (spec §3).
type Dirent struct {
	Pino    uint32     // parent inode number
	Version uint32     // version this record was written at
	Ino     uint32     // this dirent's inode number (0 denotes unlink, spec §4.3)
	Mctime  uint32
	Type    DirentType
	Name    string
}

// scanDirent parses one JFFS2_NODETYPE_DIRENT payload and applies the
// version-reconciliation rule of spec §4.3: the stored record for a given Ino
// is always the one with the highest observed Version; ties keep whichever
// was seen later (append-only log semantics).
func (r *Reader) scanDirent(payload []byte) error {
	if len(payload) < direntHeaderSize {
		return ErrTruncated
	}

	order := r.src.order
	pino := order.Uint32(payload[0:4])
	version := order.Uint32(payload[4:8])
	ino := order.Uint32(payload[8:12])
	mctime := order.Uint32(payload[12:16])
	nsize := payload[16]
	ntype := DirentType(payload[17])
	// payload[18:20] unused, payload[20:24] node_crc, payload[24:28] name_crc: ignored.

	if int(nsize)+direntHeaderSize > len(payload) {
		return ErrTruncated
	}

	raw := payload[direntHeaderSize : direntHeaderSize+int(nsize)]
	if nul := bytes.IndexByte(raw, 0); nul >= 0 {
		raw = raw[:nul]
	}
	if !utf8.Valid(raw) {
		return ErrBadName
	}
	name := string(raw)

	if old, ok := r.dirents[ino]; ok && old.Version > version {
		return nil
	}

	r.dirents[ino] = &Dirent{
		Pino:    pino,
		Version: version,
		Ino:     ino,
		Mctime:  mctime,
		Type:    ntype,
		Name:    name,
	}
	return nil
}
