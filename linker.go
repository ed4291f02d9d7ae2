package glyph

// link stamps each segment's positional context from rolling state carried
// across the sequence: the current on-curve point, the control point of
// the preceding QuadTo, and the origin of the current subpath. A ClosePath
// clears the current point; the point "after a close" is undefined until
// the next MoveTo.
func link(segments []Segment) {
	var current, control, origin *Point

	for _, s := range segments {
		s.setContext(Context{Start: current, Control: control, Origin: origin})

		if m, ok := s.(*MoveTo); ok {
			p := m.P
			origin = &p
		}

		if end, ok := s.End(); ok {
			e := end
			current = &e
			if q, ok := s.(*QuadTo); ok {
				c := q.Control
				control = &c
			} else {
				control = nil
			}
		} else {
			current = nil
			control = nil
		}
	}
}
