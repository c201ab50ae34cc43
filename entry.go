package jffs2

import (
	"bytes"
	"io"
	"sort"
)

// Entry is one resolved path in the reconstructed tree: a directory or a
// regular file, with that file's fragment records in scan order (spec §3's
// output model). Other dirent types are never surfaced here (spec §4.8).
type Entry struct {
	Path      string
	IsFile    bool
	Fragments []*Fragment
}

// Size is the sum of the entry's fragments' decompressed sizes (spec §3);
// zero for directories.
func (e *Entry) Size() int64 {
	var total int64
	for _, f := range e.Fragments {
		total += int64(f.Dsize)
	}
	return total
}

// Entries enumerates every directory and regular-file dirent as metadata
// only — no decompression happens here (spec §4.8). Every dirent is
// resolved, so one whose path cannot be resolved fails the whole call.
func (r *Reader) Entries() ([]*Entry, error) {
	entries := make([]*Entry, 0, len(r.dirents))

	// Sorted so callers get deterministic output; iteration over a Go map
	// isn't, and spec §8 requires scanning to be deterministic even though
	// cross-file write order during extraction is explicitly unspecified (§5).
	inos := make([]uint32, 0, len(r.dirents))
	for ino := range r.dirents {
		inos = append(inos, ino)
	}
	sort.Slice(inos, func(i, j int) bool { return inos[i] < inos[j] })

	for _, ino := range inos {
		path, ntype, err := r.resolvePath(ino)
		if err != nil {
			return nil, err
		}

		switch {
		case ntype.IsDir():
			entries = append(entries, &Entry{Path: path, IsFile: false})
		case ntype.IsRegular():
			entries = append(entries, &Entry{Path: path, IsFile: true, Fragments: r.inodes[ino]})
		}
	}

	return entries, nil
}

// Open returns a reader over the reassembled, decompressed bytes of the
// regular file at path (not present in the Rust original this spec was
// distilled from; grounded on the teacher's file.go OpenFile/File pair,
// trimmed to this reader's two entry kinds — see SPEC_FULL.md "supplemented
// features"). Unlike Extract, this decodes exactly one file's fragments.
func (r *Reader) Open(path string) (io.ReadCloser, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.Path != path {
			continue
		}
		if !e.IsFile {
			return nil, ErrUnresolved
		}
		var buf bytes.Buffer
		if err := r.reassemble(&buf, e.Fragments); err != nil {
			return nil, err
		}
		return io.NopCloser(&buf), nil
	}

	return nil, ErrUnresolved
}
