package jffs2

import (
	"path"
	"strings"
)

// maxPathHops bounds parent-pointer traversal in resolvePath: an intentional
// cycle guard, not a realistic tree-depth limit (spec §4.5).
const maxPathHops = 32

// rootIno is the synthetic inode number every resolved path ultimately climbs
// to; the name of a dirent whose parent is rootIno becomes the top-level path
// component, and no dirent for rootIno itself is looked up (spec §6).
const rootIno = 1

// resolvePath climbs from ino's dirent to the root via parent-inode pointers,
// returning a normalized relative path and the dirent's type (spec §4.5).
//
// A resolved path that escapes the root (e.g. a root-level dirent literally
// named ".." or embedding "/..") is refused with ErrPathEscape rather than
// handed back to a caller that might feed it straight to a sink (spec §8's
// "contains no .. or empty components" invariant; spec §9's traversal-above-
// root recommendation). Dirent names are never checked for embedded path
// separators at scan time, so this check has to happen after normalization,
// not before.
func (r *Reader) resolvePath(ino uint32) (string, DirentType, error) {
	cur, ok := r.dirents[ino]
	if !ok {
		return "", 0, ErrUnresolved
	}
	ntype := cur.Type

	var parts []string
	for hop := 0; ; hop++ {
		if hop >= r.hopLimit {
			return "", 0, ErrCycle
		}
		if cur.Pino == r.rootIno {
			parts = append(parts, cur.Name)
			break
		}
		parts = append(parts, cur.Name)
		parent, ok := r.dirents[cur.Pino]
		if !ok {
			return "", 0, ErrUnresolved
		}
		cur = parent
	}

	// parts was built root-ward, i.e. reversed relative to the final path.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	joined, err := normalizeJoin(parts)
	if err != nil {
		return "", 0, err
	}
	return joined, ntype, nil
}

// normalizeJoin lexically joins path components the way path.Join does
// (collapsing "." and ".." and redundant separators), drops a trailing empty
// component left over from an nsize==0 dirent name (spec §8), and rejects any
// result that still traverses above the root: path.Join has nothing above
// the root to absorb a leading "..", so path.Join("..") returns ".." rather
// than ".", and a name like "a/../../x" can normalize to "../x".
func normalizeJoin(parts []string) (string, error) {
	joined := path.Join(parts...)
	if joined == "." {
		return "", nil
	}
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", ErrPathEscape
	}
	return joined, nil
}
