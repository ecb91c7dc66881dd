package converter

import (
	"github.com/riverfjs/tgrender/internal/annotation"
	"github.com/riverfjs/tgrender/internal/flavor"
	"github.com/riverfjs/tgrender/internal/scalar"
)

// estimate returns an upper bound on the bytes rendering will produce: every
// fragment plus a separator in front of it, every scalar at its worst-case
// escaped size across modes, and after each newline the prefixes of all
// line-oriented annotations.
func estimate(dec scalar.Decoder, events []resolvedEvent, fl *flavor.Flavor) int {
	n, linePrefixes := 0, 0
	sep := fl.MaxSeparatorLen()
	for _, e := range events {
		if e.fragment != "" {
			n += len(e.fragment) + sep
		}
		if e.Place == annotation.Open {
			linePrefixes += len(fl.LinePrefix(e.Kind.Type()))
		}
	}

	var scratch [16]byte
	for {
		r, _, ok := dec.Next()
		if !ok {
			break
		}
		worst := 0
		for _, mode := range flavor.Modes {
			worst = max(worst, len(fl.AppendEscaped(scratch[:0], r, mode)))
		}
		n += worst
		if r == '\n' {
			n += linePrefixes
		}
	}
	return n
}
