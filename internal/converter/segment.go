package converter

import (
	"slices"

	"github.com/riverfjs/tgrender/internal/annotation"
	"github.com/riverfjs/tgrender/internal/flavor"
)

// resolvedEvent 是已查好 fragment 的边界事件
type resolvedEvent struct {
	annotation.Event
	fragment string
}

// LineScope 跟踪一个尚未闭合、需要逐行前缀的实体（如 MarkdownV2 引用）
type LineScope struct {
	Seq    int
	Prefix string
}

// resolve looks the fragments of every event up in fl. events must be in
// Build order, an Open immediately followed by the Close of the same
// annotation, so each kind's fragments are built once.
func resolve(events []annotation.Event, fl *flavor.Flavor) []resolvedEvent {
	out := make([]resolvedEvent, len(events))
	for i := 0; i+1 < len(events); i += 2 {
		open, close := fl.Fragments(events[i].Kind)
		out[i] = resolvedEvent{Event: events[i], fragment: open}
		out[i+1] = resolvedEvent{Event: events[i+1], fragment: close}
	}
	return out
}

func sortResolved(events []resolvedEvent) {
	slices.SortFunc(events, func(a, b resolvedEvent) int {
		return annotation.Compare(a.Event, b.Event)
	})
}
