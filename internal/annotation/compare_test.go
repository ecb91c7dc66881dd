package annotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want int
	}{
		{
			name: "lower offset first",
			a:    Event{Offset: 1, Place: Open, Seq: 5},
			b:    Event{Offset: 2, Place: Close, Seq: 0},
			want: -1,
		},
		{
			name: "close before open at same offset",
			a:    Event{Offset: 3, Place: Close, Seq: 0},
			b:    Event{Offset: 3, Place: Open, Seq: 1},
			want: -1,
		},
		{
			name: "open after close at same offset",
			a:    Event{Offset: 3, Place: Open, Seq: 0},
			b:    Event{Offset: 3, Place: Close, Seq: 1},
			want: 1,
		},
		{
			name: "opens by ascending seq",
			a:    Event{Offset: 0, Place: Open, Seq: 0},
			b:    Event{Offset: 0, Place: Open, Seq: 1},
			want: -1,
		},
		{
			name: "closes by descending seq",
			a:    Event{Offset: 4, Place: Close, Seq: 0},
			b:    Event{Offset: 4, Place: Close, Seq: 1},
			want: 1,
		},
		{
			name: "identical",
			a:    Event{Offset: 4, Place: Close, Seq: 1},
			b:    Event{Offset: 4, Place: Close, Seq: 1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "comparator must be antisymmetric")
		})
	}
}

func TestSort_NestedAndAdjacent(t *testing.T) {
	// "abcdef": bold [0,6), italic [2,4), underline [4,6), strike [0,6)
	events := Build([]Annotation{
		New(Bold{}, 0, 6),
		New(Italic{}, 2, 4),
		New(Underline{}, 4, 6),
		New(Strikethrough{}, 0, 6),
	}, 6, nil)

	Sort(events)

	type key struct {
		Offset int
		Place  Place
		Seq    int
	}
	got := make([]key, len(events))
	for i, e := range events {
		got[i] = key{e.Offset, e.Place, e.Seq}
	}

	want := []key{
		{0, Open, 0},
		{0, Open, 3},
		{2, Open, 1},
		{4, Close, 1},
		{4, Open, 2},
		{6, Close, 3},
		{6, Close, 2},
		{6, Close, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_ZeroWidthFollowsPlaceRule(t *testing.T) {
	events := Build([]Annotation{
		New(Bold{}, 2, 2),
		New(Italic{}, 0, 2),
	}, 4, nil)

	Sort(events)

	// At offset 2 every close precedes every open, the zero-width bold's
	// own close included.
	assert.Equal(t, Open, events[0].Place)
	assert.Equal(t, 1, events[0].Seq)
	assert.Equal(t, Close, events[1].Place)
	assert.Equal(t, 1, events[1].Seq)
	assert.Equal(t, Close, events[2].Place)
	assert.Equal(t, 0, events[2].Seq)
	assert.Equal(t, Open, events[3].Place)
	assert.Equal(t, 0, events[3].Seq)
}
