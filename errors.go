package jffs2

import "errors"

// Package-specific error variables that can be used with errors.Is() for error handling.
var (
	// ErrNotJFFS2 is returned when the first two bytes of the image match neither
	// the little-endian nor the big-endian magic.
	ErrNotJFFS2 = errors.New("jffs2: image signature not found")

	// ErrTruncated is returned when a node header or payload extends past the
	// end of the image, or a dirent/inode record is shorter than its fixed prefix.
	ErrTruncated = errors.New("jffs2: truncated node or payload")

	// ErrBadName is returned when a dirent's name bytes are not valid UTF-8.
	ErrBadName = errors.New("jffs2: dirent name is not valid utf-8")

	// ErrUnresolved is returned when a dirent's parent inode is not present in
	// the dirent table, and by Reader.Open when no regular file has the
	// requested path.
	ErrUnresolved = errors.New("jffs2: parent dirent not found")

	// ErrCycle is returned when path resolution exceeds the hop bound without
	// reaching the root inode.
	ErrCycle = errors.New("jffs2: parent chain did not reach root inode")

	// ErrUnsupported is returned for codec tags this reader will never decode:
	// RUBINMIPS, COPY, and any tag outside the known range.
	ErrUnsupported = errors.New("jffs2: unsupported compression codec")

	// ErrCodecFailure is returned when a decoder rejects its input (the RTIME
	// and DYNRUBIN decoders also reject input that runs out before the
	// declared decompressed size is reached). A decoder that returns fewer
	// bytes than that size without an error is not treated as a failure.
	ErrCodecFailure = errors.New("jffs2: codec failed to decompress fragment")

	// ErrPathEscape is returned when a resolved path normalizes to ".." or a
	// path starting with "../", e.g. a root-level dirent literally named
	// "..". Resolution is refused rather than handed to a sink.
	ErrPathEscape = errors.New("jffs2: resolved path escapes root")
)
