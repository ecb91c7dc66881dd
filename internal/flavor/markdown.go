package flavor

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/tgrender/internal/annotation"
)

// markdownV2Reserved must be escaped with a backslash anywhere in MarkdownV2
// text outside code.
const markdownV2Reserved = "_*[]()~`>#+-=|{}.!\\"

// markdownV2Delimiters are the delimiter characters that merge with a
// neighbouring delimiter of the same character, as in ___ for italic next to
// underline.
const markdownV2Delimiters = "_*~|"

// MarkdownV2 renders Telegram's MarkdownV2 parse mode.
var MarkdownV2 = register(MustNew(Definition{
	Name:      "markdownv2",
	ParseMode: "MarkdownV2",
	Extension: ".md",
	Escape:    escapeMarkdownV2,

	// Telegram ignores \r, so it can split ___ into _\r__.
	Separator:      "\r",
	NeedsSeparator: mergesMarkdownV2,

	Tags: map[annotation.Type]Tag{
		annotation.TypeBold:          {Open: "*", Close: "*"},
		annotation.TypeItalic:        {Open: "_", Close: "_"},
		annotation.TypeUnderline:     {Open: "__", Close: "__"},
		annotation.TypeStrikethrough: {Open: "~", Close: "~"},
		annotation.TypeSpoiler:       {Open: "||", Close: "||"},
		annotation.TypeBlockquote:    {Open: ">", LinePrefix: ">"},
		annotation.TypeExpandableBlockquote: {
			Open:       "**>",
			Close:      "||",
			LinePrefix: ">",
		},
		annotation.TypeInlineCode: {Open: "`", Close: "`"},
		annotation.TypeCodeBlock: {
			Open:  "```\n",
			Close: "```",
			Wrap: func(lang string) (string, string) {
				return "```" + lang + "\n", "```"
			},
		},
		annotation.TypeHyperlink: {
			Wrap: func(url string) (string, string) {
				return "[", "](" + markdownV2Target(url) + ")"
			},
		},
		annotation.TypeMention: {
			Wrap: func(id string) (string, string) {
				return "[", "](tg://user?id=" + id + ")"
			},
		},
		annotation.TypeCustomEmoji: {
			Wrap: func(id string) (string, string) {
				return "![", "](tg://emoji?id=" + markdownV2Target(id) + ")"
			},
		},
	},
}))

// escapeMarkdownV2 backslash-escapes every reserved character in text; in
// code only ` and \ are escaped.
func escapeMarkdownV2(dst []byte, r rune, mode Mode) []byte {
	switch {
	case r >= utf8.RuneSelf:
		return utf8.AppendRune(dst, r)
	case mode == Code && (r == '`' || r == '\\'):
		return append(dst, '\\', byte(r))
	case mode == Text && strings.IndexByte(markdownV2Reserved, byte(r)) >= 0:
		return append(dst, '\\', byte(r))
	}
	return append(dst, byte(r))
}

// mergesMarkdownV2 reports whether next, written right after prev, would be
// read together with it as one longer delimiter.
func mergesMarkdownV2(prev, next string) bool {
	last := prev[len(prev)-1]
	return last == next[0] && strings.IndexByte(markdownV2Delimiters, last) >= 0
}

// markdownV2Target escapes ) and \ inside the (...) part of a link.
func markdownV2Target(v string) string {
	if !strings.ContainsAny(v, `)\`) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 4)
	for i := 0; i < len(v); i++ {
		if v[i] == ')' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	return b.String()
}
