package jffs2

// decompressRtime implements the jffs2 RTIME codec (tag 2, spec §4.7), a
// simple self-referential run coder: each input byte is followed by a repeat
// count, and position[] tracks the output index just past where that byte
// value last appeared so the repeat can copy from there, possibly copying through bytes it
// is itself still producing (the "permits self-referential runs" case).
func decompressRtime(src []byte, dsize int) ([]byte, error) {
	var position [256]int
	dst := make([]byte, 0, dsize)
	pos := 0

	for len(dst) < dsize {
		if pos+2 > len(src) {
			return dst, ErrCodecFailure
		}
		v := src[pos]
		pos++
		r := src[pos]
		pos++

		back := position[v]
		dst = append(dst, v)
		position[v] = len(dst)

		if r == 0 {
			continue
		}

		repeat := int(r)
		if back+repeat >= len(dst) {
			for repeat > 0 {
				dst = append(dst, dst[back])
				back++
				repeat--
			}
		} else {
			dst = append(dst, dst[back:back+repeat]...)
		}
	}

	return dst, nil
}
