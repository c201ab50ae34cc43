package jffs2

import (
	"fmt"
	"io/fs"
)

// DirentType is the on-disk dirent type byte. jffs2 reuses the classic Unix
// dirent d_type values; only Dir and Reg are meaningful to this reader, the
// rest are recognized so String() is readable but otherwise skipped (spec
// §4.8: "Other dirent types are skipped").
type DirentType uint8

const (
	DirentUnknown DirentType = 0
	DirentFifo    DirentType = 1
	DirentChrdev  DirentType = 2
	DirentDir     DirentType = 4
	DirentBlkdev  DirentType = 6
	DirentReg     DirentType = 8
	DirentLink    DirentType = 10
	DirentSock    DirentType = 12
)

func (t DirentType) String() string {
	switch t {
	case DirentUnknown:
		return "UNKNOWN"
	case DirentFifo:
		return "FIFO"
	case DirentChrdev:
		return "CHRDEV"
	case DirentDir:
		return "DIR"
	case DirentBlkdev:
		return "BLKDEV"
	case DirentReg:
		return "REG"
	case DirentLink:
		return "LINK"
	case DirentSock:
		return "SOCK"
	default:
		return fmt.Sprintf("DirentType(%d)", uint8(t))
	}
}

// IsDir reports whether this is the directory dirent type this reader acts on.
func (t DirentType) IsDir() bool {
	return t == DirentDir
}

// IsRegular reports whether this is the regular-file dirent type this reader acts on.
func (t DirentType) IsRegular() bool {
	return t == DirentReg
}

// Mode returns an fs.FileMode carrying only the type bit implied by t, no
// permission bits: jffs2 mode/uid/gid fields are parsed and discarded (spec §3).
func (t DirentType) Mode() fs.FileMode {
	switch t {
	case DirentDir:
		return fs.ModeDir
	case DirentReg:
		return 0
	case DirentLink:
		return fs.ModeSymlink
	case DirentChrdev:
		return fs.ModeCharDevice | fs.ModeDevice
	case DirentBlkdev:
		return fs.ModeDevice
	case DirentFifo:
		return fs.ModeNamedPipe
	case DirentSock:
		return fs.ModeSocket
	default:
		return fs.ModeIrregular
	}
}
