package glyph

import (
	"fmt"
	"math"
	"unicode"
)

// rawSegment is a tokenized path segment before arity validation: a
// command letter and the flat coordinate list that followed it.
type rawSegment struct {
	cmd    byte
	coords []float64
}

// pathTokenizer scans path text left to right, accumulating one number at
// a time. A minus sign only flags the pending number as negative; it does
// not finalize a number in progress, so a sign directly following digits
// is absorbed into the same number. A second decimal point within a
// number keeps advancing the decimal counter instead of acting as a
// separator. Both behaviors are pinned by TestTokenizePath.
type pathTokenizer struct {
	segments []rawSegment

	value    float64
	decimals int
	negative bool
	inNumber bool
}

// tokenizePath converts raw path text into an ordered sequence of raw
// segments. Coordinates appearing before the first command letter are a
// parse error.
func tokenizePath(d string) ([]rawSegment, error) {
	tk := &pathTokenizer{}
	for _, c := range d {
		switch {
		case unicode.IsLetter(c):
			if err := tk.finishNumber(); err != nil {
				return nil, err
			}
			tk.segments = append(tk.segments, rawSegment{cmd: byte(c)})
		case unicode.IsDigit(c):
			tk.digit(int(c - '0'))
		case c == '-':
			tk.negative = true
		case c == '.':
			tk.decimals++
		default:
			if err := tk.finishNumber(); err != nil {
				return nil, err
			}
		}
	}
	if err := tk.finishNumber(); err != nil {
		return nil, err
	}
	return tk.segments, nil
}

func (tk *pathTokenizer) digit(d int) {
	if tk.decimals == 0 {
		tk.value *= 10
	}
	tk.value += math.Pow(0.1, float64(tk.decimals)) * float64(d)
	if tk.decimals > 0 {
		tk.decimals++
	}
	tk.inNumber = true
}

// finishNumber flushes an in-progress number onto the current segment's
// coordinate list, applying the pending sign.
func (tk *pathTokenizer) finishNumber() error {
	if !tk.inNumber {
		return nil
	}
	if tk.negative {
		tk.value *= -1
	}
	if len(tk.segments) == 0 {
		return fmt.Errorf("path data begins with a number: %g", tk.value)
	}
	last := &tk.segments[len(tk.segments)-1]
	last.coords = append(last.coords, tk.value)

	tk.value = 0
	tk.decimals = 0
	tk.negative = false
	tk.inNumber = false
	return nil
}

// segmentArity maps each recognized command letter to its coordinate
// count.
var segmentArity = map[byte]int{'M': 2, 'L': 2, 'Q': 4, 'Z': 0}

// buildSegments validates the arity of every tokenized segment and
// converts it to its typed form. Unrecognized command letters and wrong
// coordinate counts fail fast with a descriptive error.
func buildSegments(raw []rawSegment) ([]Segment, error) {
	segments := make([]Segment, 0, len(raw))
	for i, r := range raw {
		want, ok := segmentArity[r.cmd]
		if !ok {
			return nil, fmt.Errorf("segment %d: unsupported path command %q", i, r.cmd)
		}
		if len(r.coords) != want {
			return nil, fmt.Errorf("segment %d: command %q expects %d coordinates, got %d",
				i, r.cmd, want, len(r.coords))
		}
		switch r.cmd {
		case 'M':
			segments = append(segments, &MoveTo{P: Pt(r.coords[0], r.coords[1])})
		case 'L':
			segments = append(segments, &LineTo{P: Pt(r.coords[0], r.coords[1])})
		case 'Q':
			segments = append(segments, &QuadTo{
				Control: Pt(r.coords[0], r.coords[1]),
				P:       Pt(r.coords[2], r.coords[3]),
			})
		case 'Z':
			segments = append(segments, &ClosePath{})
		}
	}
	return segments, nil
}
