package annotation

// Place says whether an event opens or closes its annotation.
type Place uint8

const (
	Open Place = iota
	Close
)

func (p Place) String() string {
	if p == Close {
		return "close"
	}
	return "open"
}

// Event is one boundary of an annotation.
type Event struct {
	Offset int
	Place  Place
	Kind   Kind
	// Seq is the index of the annotation in the input slice.
	Seq int
}

// Clamp reports the annotation's offsets limited to [0, textLen] with
// end >= start, and whether any adjustment was made.
func (a Annotation) Clamp(textLen int) (start, end int, clamped bool) {
	start = min(max(a.Start, 0), textLen)
	end = min(max(a.End, start), textLen)
	return start, end, start != a.Start || end != a.End
}

// Build expands anns into 2*len(anns) events, an Open at each start and a
// Close at each end. Offsets are clamped to [0, textLen]; clamped annotations
// still produce both events. onClamp, when non-nil, is called for every
// annotation whose offsets had to be adjusted.
func Build(anns []Annotation, textLen int, onClamp func(seq int, a Annotation)) []Event {
	events := make([]Event, 0, 2*len(anns))
	for seq, a := range anns {
		start, end, clamped := a.Clamp(textLen)
		if clamped && onClamp != nil {
			onClamp(seq, a)
		}
		events = append(events,
			Event{Offset: start, Place: Open, Kind: a.Kind, Seq: seq},
			Event{Offset: end, Place: Close, Kind: a.Kind, Seq: seq},
		)
	}
	return events
}
