package text

// Pointer denotes a position within a specific Text value: the gap before
// grapheme index Idx. A Pointer only carries its own offset and the length of
// the text it was produced from, so Text values can be copied and passed by
// value (as Edition/Selection state is) without invalidating pointers derived
// from them — callers must still pair a Pointer with the Text it came from
// when calling Sub or At.
type Pointer struct {
	idx int
	len int
}

// pointerIn builds a pointer bound to a text of the given length at grapheme
// offset idx, clamped to [0, length].
func pointerIn(length, idx int) Pointer {
	if idx < 0 {
		idx = 0
	}
	if idx > length {
		idx = length
	}
	return Pointer{idx: idx, len: length}
}

// PointerAt returns a pointer to the gap at the given grapheme offset.
func (t Text) PointerAt(offset int) Pointer { return pointerIn(len(t.graphemes), offset) }

// Left returns the pointer at the very beginning of t.
func (t Text) Left() Pointer { return pointerIn(len(t.graphemes), 0) }

// Right returns the pointer at the very end of t.
func (t Text) Right() Pointer { return pointerIn(len(t.graphemes), len(t.graphemes)) }

// Index returns the pointer's raw grapheme offset.
func (p Pointer) Index() int { return p.idx }

// Next moves the pointer one grapheme forward. ok is false at the right end.
func (p Pointer) Next() (Pointer, bool) {
	if p.idx >= p.len {
		return p, false
	}
	return Pointer{idx: p.idx + 1, len: p.len}, true
}

// Prev moves the pointer one grapheme backward. ok is false at the left end.
func (p Pointer) Prev() (Pointer, bool) {
	if p.idx <= 0 {
		return p, false
	}
	return Pointer{idx: p.idx - 1, len: p.len}, true
}

// Before reports whether p sits strictly before q.
func (p Pointer) Before(q Pointer) bool { return p.idx < q.idx }

// Equal reports whether p and q denote the same offset.
func (p Pointer) Equal(q Pointer) bool { return p.idx == q.idx }

// Min returns whichever of p, q has the smaller offset.
func Min(p, q Pointer) Pointer {
	if q.idx < p.idx {
		return q
	}
	return p
}

// Max returns whichever of p, q has the larger offset.
func Max(p, q Pointer) Pointer {
	if q.idx > p.idx {
		return q
	}
	return p
}

// Sub returns the substring of t between the pointers from and to, regardless
// of which argument has the smaller offset.
func (t Text) Sub(from, to Pointer) Text {
	lo, hi := from.idx, to.idx
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.graphemes) {
		hi = len(t.graphemes)
	}
	if lo >= hi {
		return Text{}
	}
	return Text{graphemes: append([]string(nil), t.graphemes[lo:hi]...)}
}
