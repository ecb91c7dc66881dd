package annotation

import (
	"cmp"
	"slices"
)

// Compare orders boundary events for emission:
//
//  1. by offset, ascending;
//  2. at equal offsets, every Close before any Open, so adjacent spans do
//     not overlap;
//  3. Opens at the same offset by ascending Seq (declaration order);
//  4. Closes at the same offset by descending Seq, so the innermost of
//     well-nested spans closes first.
func Compare(a, b Event) int {
	if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
		return c
	}
	if a.Place != b.Place {
		if a.Place == Close {
			return -1
		}
		return 1
	}
	if a.Place == Open {
		return cmp.Compare(a.Seq, b.Seq)
	}
	return cmp.Compare(b.Seq, a.Seq)
}

// Sort sorts events in place with Compare.
func Sort(events []Event) {
	slices.SortFunc(events, Compare)
}
