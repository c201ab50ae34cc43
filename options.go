package jffs2

import "log"

// Option configures a Reader at construction time (spec §9's "carry the
// detected endianness/behavior as an immutable property of the reader", the
// same functional-options idiom the teacher uses for Superblock construction).
type Option func(r *Reader)

// WithLogger directs diagnostic output (where the scan stopped, decode failures)
// to l instead of log.Default().
func WithLogger(l *log.Logger) Option {
	return func(r *Reader) {
		r.log = l
	}
}

// WithHopLimit overrides the path-resolution cycle guard (spec §4.5 default: 32).
func WithHopLimit(n int) Option {
	return func(r *Reader) {
		r.hopLimit = n
	}
}

// WithRootInode overrides the synthetic root inode number (spec §3 default: 1).
// Exists for images produced by tooling that reserves inode numbers below the
// conventional root, mirroring the teacher's own InodeOffset option.
func WithRootInode(ino uint32) Option {
	return func(r *Reader) {
		r.rootIno = ino
	}
}
