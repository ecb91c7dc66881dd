package converter

import (
	"math"
	"unicode/utf16"

	"github.com/rs/zerolog"

	"github.com/riverfjs/tgrender/internal/annotation"
	"github.com/riverfjs/tgrender/internal/buffer"
	"github.com/riverfjs/tgrender/internal/flavor"
	"github.com/riverfjs/tgrender/internal/scalar"
)

// EventWalker 按 UTF-16 偏移遍历文本，在每个位置先输出到期的边界事件，再输出转义后的字符
type EventWalker struct {
	buf    *buffer.MarkupBuffer
	flavor *flavor.Flavor
	events []resolvedEvent
	next   int

	// Number of open code spans/blocks; content inside is escaped as code.
	codeDepth int

	// Open line-oriented scopes, outermost first.
	lineScopes []LineScope
	// A newline was written inside a line scope and its prefixes are due.
	linePending bool

	// Per-annotation progress, indexed by Seq.
	progress []scopeState

	// The fragment written last, if nothing has been written after it.
	lastFragment string

	scratch []byte
}

type scopeState uint8

const (
	scopePending scopeState = iota
	scopeOpen
	scopeClosed
)

func newEventWalker(fl *flavor.Flavor, events []resolvedEvent, capacity int) *EventWalker {
	return &EventWalker{
		buf:      buffer.New(capacity),
		flavor:   fl,
		events:   events,
		progress: make([]scopeState, len(events)/2),
		scratch:  make([]byte, 0, 16),
	}
}

// RenderString 将 text 与 annotations 渲染为 fl 格式的标记字符串
//
// 没有任何 annotation 时原样返回 text，不做转义。
func RenderString(text string, anns []annotation.Annotation, fl *flavor.Flavor, log zerolog.Logger) string {
	if len(anns) == 0 {
		return text
	}
	newDecoder := func() scalar.Decoder { return scalar.NewString(text) }
	return render(newDecoder, scalar.Len16(text), anns, fl, log)
}

// RenderUTF16 与 RenderString 相同，但文本以 UTF-16 code units 给出
//
// 不成对的代理项被替换为 U+FFFD。
func RenderUTF16(units []uint16, anns []annotation.Annotation, fl *flavor.Flavor, log zerolog.Logger) string {
	if len(anns) == 0 {
		return string(utf16.Decode(units))
	}
	newDecoder := func() scalar.Decoder { return scalar.NewUTF16(units) }
	return render(newDecoder, len(units), anns, fl, log)
}

func render(newDecoder func() scalar.Decoder, textLen int, anns []annotation.Annotation, fl *flavor.Flavor, log zerolog.Logger) string {
	events := annotation.Build(anns, textLen, func(seq int, a annotation.Annotation) {
		log.Debug().
			Int("seq", seq).
			Stringer("kind", a.Kind.Type()).
			Int("start", a.Start).
			Int("end", a.End).
			Int("text_len", textLen).
			Msg("annotation offsets clamped")
	})
	resolved := resolve(events, fl)
	sortResolved(resolved)

	w := newEventWalker(fl, resolved, estimate(newDecoder(), resolved, fl))
	w.Walk(newDecoder())
	return w.Result()
}

// Walk consumes dec, interleaving content with the walker's events.
func (w *EventWalker) Walk(dec scalar.Decoder) {
	idx := 0
	for {
		// Events inside a surrogate pair have offset < idx by now and
		// fire right after the pair.
		w.drain(idx)
		r, units, ok := dec.Next()
		if !ok {
			break
		}
		w.onText(r)
		idx += units
	}
	w.drain(math.MaxInt)
}

// Result 返回渲染结果
func (w *EventWalker) Result() string {
	return w.buf.String()
}

func (w *EventWalker) drain(idx int) {
	for w.next < len(w.events) && w.events[w.next].Offset <= idx {
		e := w.events[w.next]
		w.next++
		if e.Place == annotation.Open {
			w.onOpen(e)
		} else {
			w.onClose(e)
		}
	}
}

// --- Event handling ---

func (w *EventWalker) onOpen(e resolvedEvent) {
	w.flushLinePrefix()
	w.writeFragment(e.fragment)

	// A zero-width annotation's close sorts before its open; it leaves no
	// scope behind.
	if w.progress[e.Seq] == scopeClosed {
		return
	}
	w.progress[e.Seq] = scopeOpen

	t := e.Kind.Type()
	if t.IsCode() {
		w.codeDepth++
	}
	if prefix := w.flavor.LinePrefix(t); prefix != "" {
		w.lineScopes = append(w.lineScopes, LineScope{Seq: e.Seq, Prefix: prefix})
	}
}

func (w *EventWalker) onClose(e resolvedEvent) {
	wasOpen := w.progress[e.Seq] == scopeOpen
	w.progress[e.Seq] = scopeClosed

	t := e.Kind.Type()
	if !wasOpen {
		w.flushLinePrefix()
		w.writeFragment(e.fragment)
		return
	}
	if w.flavor.LinePrefix(t) != "" {
		// A scope closing right after a newline takes no prefix for the
		// empty line that follows.
		w.popLineScope(e.Seq)
	} else {
		w.flushLinePrefix()
	}
	if t.IsCode() {
		w.codeDepth--
	}
	w.writeFragment(e.fragment)
}

func (w *EventWalker) writeFragment(f string) {
	if f == "" {
		return
	}
	w.buf.WriteString(w.flavor.Separator(w.lastFragment, f))
	w.buf.WriteString(f)
	w.lastFragment = f
}

func (w *EventWalker) onText(r rune) {
	w.flushLinePrefix()
	mode := flavor.Text
	if w.codeDepth > 0 {
		mode = flavor.Code
	}
	w.scratch = w.flavor.AppendEscaped(w.scratch[:0], r, mode)
	w.buf.Write(w.scratch)
	w.lastFragment = ""
	if r == '\n' && len(w.lineScopes) > 0 {
		w.linePending = true
	}
}

// --- Line scope helpers ---

func (w *EventWalker) flushLinePrefix() {
	if !w.linePending {
		return
	}
	w.linePending = false
	for _, scope := range w.lineScopes {
		w.buf.WriteString(scope.Prefix)
	}
	if len(w.lineScopes) > 0 {
		w.lastFragment = ""
	}
}

func (w *EventWalker) popLineScope(seq int) {
	for i := len(w.lineScopes) - 1; i >= 0; i-- {
		if w.lineScopes[i].Seq == seq {
			w.lineScopes = append(w.lineScopes[:i], w.lineScopes[i+1:]...)
			break
		}
	}
	if len(w.lineScopes) == 0 {
		w.linePending = false
	}
}
