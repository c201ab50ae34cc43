// Package jffs2 reads a JFFS2 on-disk image and reconstructs the directory
// tree it encodes, without mounting it or writing one back.
package jffs2

import (
	"encoding/binary"
	"log"
)

// Reader scans a JFFS2 image once and answers queries against the resulting
// dirent/inode tables (spec §4, §5). Construction, scanning and
// enumeration/extraction happen in sequence from one goroutine; a Reader has
// no internal locking because the spec rules out concurrent use of a single
// instance.
type Reader struct {
	src *byteSource

	dirents map[uint32]*Dirent
	inodes  map[uint32][]*Fragment

	log      *log.Logger
	hopLimit int
	rootIno  uint32
}

// Open mmaps path and scans it (spec §4.1, §4.2). The mapping is released by
// Close.
func Open(path string, opts ...Option) (*Reader, error) {
	src, err := openFile(path)
	if err != nil {
		return nil, err
	}
	r := newReader(src, opts...)
	if err := r.scan(); err != nil {
		src.Close()
		return nil, err
	}
	return r, nil
}

// New builds a Reader directly over an in-memory image, for callers that
// already hold the bytes (e.g. tests, or a buffer read from something other
// than a plain file). The buffer is not copied and must outlive the Reader.
func New(data []byte, opts ...Option) (*Reader, error) {
	src, err := newByteSource(data)
	if err != nil {
		return nil, err
	}
	r := newReader(src, opts...)
	if err := r.scan(); err != nil {
		return nil, err
	}
	return r, nil
}

func newReader(src *byteSource, opts ...Option) *Reader {
	r := &Reader{
		src:      src,
		dirents:  make(map[uint32]*Dirent),
		inodes:   make(map[uint32][]*Fragment),
		log:      log.Default(),
		hopLimit: maxPathHops,
		rootIno:  rootIno,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases the underlying mapping. Safe to call on a Reader built with New.
func (r *Reader) Close() error {
	return r.src.Close()
}

// LittleEndian reports the endianness detected when the image was opened (spec §3).
func (r *Reader) LittleEndian() bool {
	return r.src.order == binary.LittleEndian
}

// DirentCount and InodeCount expose scan results for diagnostics (cmd/jffs2's
// "info" subcommand, grounded on cmd/sqfs/main.go's showInfo).
func (r *Reader) DirentCount() int { return len(r.dirents) }
func (r *Reader) InodeCount() int  { return len(r.inodes) }
