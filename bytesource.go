package jffs2

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// byteSource is a read-only, zero-copy view of an entire jffs2 image. It is
// created once when a Reader is opened and lives for the Reader's lifetime;
// every fragment payload handed to a codec is a subslice of data, never a copy.
type byteSource struct {
	data  []byte
	order binary.ByteOrder

	mmap bool
	f    *os.File
}

// openFile mmaps path read-only and detects endianness from the first two bytes.
func openFile(path string) (*byteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jffs2: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("jffs2: %w", err)
	}
	if st.Size() == 0 {
		f.Close()
		return nil, ErrNotJFFS2
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("jffs2: mmap: %w", err)
	}

	bs, err := newByteSource(data)
	if err != nil {
		unix.Munmap(data)
		f.Close()
		return nil, err
	}
	bs.mmap = true
	bs.f = f
	return bs, nil
}

// newByteSource wraps an in-memory buffer (used directly by New, and by
// openFile once the image has been mapped). The buffer is not copied.
func newByteSource(data []byte) (*byteSource, error) {
	if len(data) < 2 {
		return nil, ErrNotJFFS2
	}

	switch {
	case data[0] == 0x85 && data[1] == 0x19:
		return &byteSource{data: data, order: binary.LittleEndian}, nil
	case data[0] == 0x19 && data[1] == 0x85:
		return &byteSource{data: data, order: binary.BigEndian}, nil
	default:
		return nil, ErrNotJFFS2
	}
}

func (b *byteSource) Len() int {
	return len(b.data)
}

// slice returns a zero-copy view of data[off:off+n], failing with ErrTruncated
// if the range runs past the end of the image.
func (b *byteSource) slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(b.data) {
		return nil, ErrTruncated
	}
	return b.data[off : off+n], nil
}

func (b *byteSource) u16(off int) (uint16, error) {
	s, err := b.slice(off, 2)
	if err != nil {
		return 0, err
	}
	return b.order.Uint16(s), nil
}

func (b *byteSource) u32(off int) (uint32, error) {
	s, err := b.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return b.order.Uint32(s), nil
}

// Close unmaps the image, if it was opened from a path. A byteSource built
// directly from a caller-owned buffer via New is a no-op to close.
func (b *byteSource) Close() error {
	if !b.mmap {
		return nil
	}
	err := unix.Munmap(b.data)
	b.data = nil
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}
	return err
}
