// Package flavor defines markup flavors: tables of the fragments written
// around each formatting kind, and the escaping applied to text between them.
package flavor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/riverfjs/tgrender/internal/annotation"
)

// Mode selects how content text is escaped.
type Mode uint8

const (
	// Text is ordinary formatted text.
	Text Mode = iota
	// Code is text inside an inline code span or a code block.
	Code
)

// Modes lists every escaping mode.
var Modes = [...]Mode{Text, Code}

// EscapeFunc appends r to dst, escaped for mode.
type EscapeFunc func(dst []byte, r rune, mode Mode) []byte

// Tag holds the fragments for one formatting type.
type Tag struct {
	Open  string
	Close string

	// Wrap builds the fragments from a non-empty payload. Open and Close
	// are used when Wrap is nil or the payload is empty.
	Wrap func(payload string) (open, close string)

	// LinePrefix is written at the start of every line after the first
	// while the tag is open.
	LinePrefix string
}

// Definition describes a flavor to New.
type Definition struct {
	Name string
	// ParseMode is the Telegram Bot API parse_mode the output targets, or
	// "" when the output is not meant to be sent.
	ParseMode string
	// Extension is the file extension used for rendered files.
	Extension string
	Tags      map[annotation.Type]Tag
	Escape    EscapeFunc

	// Separator is written between two adjacent fragments for which
	// NeedsSeparator reports true, so the parser does not read them as a
	// single delimiter.
	Separator      string
	NeedsSeparator func(prev, next string) bool
}

// Flavor is an immutable markup table. A *Flavor is safe for concurrent use.
type Flavor struct {
	name      string
	parseMode string
	ext       string
	tags      [annotation.NumTypes]Tag
	escape    EscapeFunc
	sep       string
	needsSep  func(prev, next string) bool
}

// New validates def and builds a Flavor from it. Every formatting type must
// have a tag, even if that tag writes nothing.
func New(def Definition) (*Flavor, error) {
	var errs criterio.FieldErrorsBuilder
	if strings.TrimSpace(def.Name) == "" {
		errs = errs.Append("name", errors.New("is required"))
	}
	if def.Escape == nil {
		errs = errs.Append("escape", errors.New("is required"))
	}
	if def.NeedsSeparator != nil && def.Separator == "" {
		errs = errs.Append("separator", errors.New("is required with NeedsSeparator"))
	}
	for t := annotation.Type(0); t < annotation.NumTypes; t++ {
		if _, ok := def.Tags[t]; !ok {
			errs = errs.Append(fmt.Sprintf("tags[%s]", t), errors.New("missing tag"))
		}
	}
	for t := range def.Tags {
		if t >= annotation.NumTypes {
			errs = errs.Append(fmt.Sprintf("tags[%d]", t), errors.New("unknown type"))
		}
	}
	if err := errs.ToError(); err != nil {
		return nil, fmt.Errorf("flavor %q: %w", def.Name, err)
	}

	f := &Flavor{
		name:      def.Name,
		parseMode: def.ParseMode,
		ext:       def.Extension,
		escape:    def.Escape,
		sep:       def.Separator,
		needsSep:  def.NeedsSeparator,
	}
	for t, tag := range def.Tags {
		f.tags[t] = tag
	}
	return f, nil
}

// MustNew is like New but panics on an invalid definition. It is meant for
// package-level flavor tables.
func MustNew(def Definition) *Flavor {
	f, err := New(def)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the flavor name.
func (f *Flavor) Name() string { return f.name }

// ParseMode returns the Telegram parse_mode the flavor targets.
func (f *Flavor) ParseMode() string { return f.parseMode }

// Extension returns the file extension for rendered output.
func (f *Flavor) Extension() string { return f.ext }

// Fragments returns the opening and closing fragments for k.
func (f *Flavor) Fragments(k annotation.Kind) (open, close string) {
	tag := f.tags[k.Type()]
	if tag.Wrap != nil {
		if p := k.Payload(); p != "" {
			return tag.Wrap(p)
		}
	}
	return tag.Open, tag.Close
}

// LinePrefix returns the per-line prefix for t, if any.
func (f *Flavor) LinePrefix(t annotation.Type) string {
	return f.tags[t].LinePrefix
}

// AppendEscaped appends r to dst, escaped for mode.
func (f *Flavor) AppendEscaped(dst []byte, r rune, mode Mode) []byte {
	return f.escape(dst, r, mode)
}

// Separator returns what must be written between the fragment prev, already
// in the output, and next, written right after it. It is usually "".
func (f *Flavor) Separator(prev, next string) string {
	if f.needsSep == nil || prev == "" || next == "" || !f.needsSep(prev, next) {
		return ""
	}
	return f.sep
}

// MaxSeparatorLen is the most bytes Separator can return.
func (f *Flavor) MaxSeparatorLen() int {
	if f.needsSep == nil {
		return 0
	}
	return len(f.sep)
}

var builtin = map[string]*Flavor{}

func register(f *Flavor) *Flavor {
	builtin[strings.ToLower(f.name)] = f
	return f
}

// Lookup returns the built-in flavor with the given name, ignoring case.
func Lookup(name string) (*Flavor, bool) {
	f, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Names returns the names of the built-in flavors, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for _, f := range builtin {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}
