// Package annotation models formatting ranges over a text and the boundary
// events derived from them.
package annotation

import "strconv"

// Type identifies a formatting kind without its payload.
type Type uint8

const (
	TypeBold Type = iota
	TypeItalic
	TypeUnderline
	TypeStrikethrough
	TypeSpoiler
	TypeBlockquote
	TypeExpandableBlockquote
	TypeInlineCode
	TypeCodeBlock
	TypeHyperlink
	TypeMention
	TypeCustomEmoji

	// NumTypes is the number of formatting types. Tables indexed by Type
	// use it as their length.
	NumTypes
)

var typeNames = [NumTypes]string{
	TypeBold:                 "bold",
	TypeItalic:               "italic",
	TypeUnderline:            "underline",
	TypeStrikethrough:        "strikethrough",
	TypeSpoiler:              "spoiler",
	TypeBlockquote:           "blockquote",
	TypeExpandableBlockquote: "expandable_blockquote",
	TypeInlineCode:           "inline_code",
	TypeCodeBlock:            "code_block",
	TypeHyperlink:            "hyperlink",
	TypeMention:              "mention",
	TypeCustomEmoji:          "custom_emoji",
}

// String returns the snake_case name of the type.
func (t Type) String() string {
	if t < NumTypes {
		return typeNames[t]
	}
	return "unknown"
}

// IsCode reports whether content inside the type is literal code.
func (t Type) IsCode() bool {
	return t == TypeInlineCode || t == TypeCodeBlock
}

// Kind is a formatting kind, possibly carrying a payload. The set of
// implementations is closed: only the types in this package satisfy it.
type Kind interface {
	Type() Type
	// Payload returns the serialized payload, or "" for kinds without one.
	Payload() string
	kind()
}

type (
	Bold                 struct{}
	Italic               struct{}
	Underline            struct{}
	Strikethrough        struct{}
	Spoiler              struct{}
	Blockquote           struct{}
	ExpandableBlockquote struct{}
	InlineCode           struct{}
)

// CodeBlock is a preformatted block with an optional language tag.
type CodeBlock struct {
	Language string
}

// Hyperlink links the annotated text to URL.
type Hyperlink struct {
	URL string
}

// Mention links the annotated text to a user by numeric id.
type Mention struct {
	UserID uint64
}

// CustomEmoji replaces the annotated text with the custom emoji ID.
type CustomEmoji struct {
	ID string
}

func (Bold) Type() Type                 { return TypeBold }
func (Italic) Type() Type               { return TypeItalic }
func (Underline) Type() Type            { return TypeUnderline }
func (Strikethrough) Type() Type        { return TypeStrikethrough }
func (Spoiler) Type() Type              { return TypeSpoiler }
func (Blockquote) Type() Type           { return TypeBlockquote }
func (ExpandableBlockquote) Type() Type { return TypeExpandableBlockquote }
func (InlineCode) Type() Type           { return TypeInlineCode }
func (CodeBlock) Type() Type            { return TypeCodeBlock }
func (Hyperlink) Type() Type            { return TypeHyperlink }
func (Mention) Type() Type              { return TypeMention }
func (CustomEmoji) Type() Type          { return TypeCustomEmoji }

func (Bold) Payload() string                 { return "" }
func (Italic) Payload() string               { return "" }
func (Underline) Payload() string            { return "" }
func (Strikethrough) Payload() string        { return "" }
func (Spoiler) Payload() string              { return "" }
func (Blockquote) Payload() string           { return "" }
func (ExpandableBlockquote) Payload() string { return "" }
func (InlineCode) Payload() string           { return "" }
func (k CodeBlock) Payload() string          { return k.Language }
func (k Hyperlink) Payload() string          { return k.URL }
func (k Mention) Payload() string            { return strconv.FormatUint(k.UserID, 10) }
func (k CustomEmoji) Payload() string        { return k.ID }

func (Bold) kind()                 {}
func (Italic) kind()               {}
func (Underline) kind()            {}
func (Strikethrough) kind()        {}
func (Spoiler) kind()              {}
func (Blockquote) kind()           {}
func (ExpandableBlockquote) kind() {}
func (InlineCode) kind()           {}
func (CodeBlock) kind()            {}
func (Hyperlink) kind()            {}
func (Mention) kind()              {}
func (CustomEmoji) kind()          {}

// Annotation applies Kind to the half-open range [Start, End) of a text.
// Offsets are UTF-16 code units.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// New returns an annotation of kind k over [start, end).
func New(k Kind, start, end int) Annotation {
	return Annotation{Kind: k, Start: start, End: end}
}
