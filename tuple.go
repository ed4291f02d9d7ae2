package glyph

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate pair as it appears in attribute text.
type Tuple [2]float64

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number %q: %s", i.Value, err)
	}
	return n, nil
}

func parseTuple(l *gl.Lexer) (Tuple, error) {
	var t Tuple

	l.ConsumeWhiteSpace()
	n, err := parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[0] = n

	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()

	n, err = parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[1] = n

	return t, nil
}
