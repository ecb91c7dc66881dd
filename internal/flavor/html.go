package flavor

import (
	"unicode/utf8"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/tgrender/internal/annotation"
)

// HTML renders the subset of HTML accepted by the Telegram Bot API with
// parse_mode=HTML.
var HTML = register(MustNew(Definition{
	Name:      "html",
	ParseMode: "HTML",
	Extension: ".html",
	Escape:    escapeHTML,
	Tags: map[annotation.Type]Tag{
		annotation.TypeBold:                 {Open: "<b>", Close: "</b>"},
		annotation.TypeItalic:               {Open: "<i>", Close: "</i>"},
		annotation.TypeUnderline:            {Open: "<u>", Close: "</u>"},
		annotation.TypeStrikethrough:        {Open: "<s>", Close: "</s>"},
		annotation.TypeSpoiler:              {Open: "<tg-spoiler>", Close: "</tg-spoiler>"},
		annotation.TypeBlockquote:           {Open: "<blockquote>", Close: "</blockquote>"},
		annotation.TypeExpandableBlockquote: {Open: "<blockquote expandable>", Close: "</blockquote>"},
		annotation.TypeInlineCode:           {Open: "<code>", Close: "</code>"},
		annotation.TypeCodeBlock: {
			Open:  "<pre>",
			Close: "</pre>",
			Wrap: func(lang string) (string, string) {
				return `<pre><code class="language-` + htmlAttr(lang) + `">`, "</code></pre>"
			},
		},
		// A link without a target is rendered as plain text.
		annotation.TypeHyperlink: {
			Wrap: func(url string) (string, string) {
				return `<a href="` + htmlHref(url) + `">`, "</a>"
			},
		},
		annotation.TypeMention: {
			Wrap: func(id string) (string, string) {
				return `<a href="tg://user?id=` + id + `">`, "</a>"
			},
		},
		annotation.TypeCustomEmoji: {
			Wrap: func(id string) (string, string) {
				return `<tg-emoji emoji-id="` + htmlAttr(id) + `">`, "</tg-emoji>"
			},
		},
	},
}))

// escapeHTML escapes &, <, > and " the same way in text and code.
func escapeHTML(dst []byte, r rune, _ Mode) []byte {
	if r < utf8.RuneSelf {
		if esc := util.EscapeHTMLByte(byte(r)); esc != nil {
			return append(dst, esc...)
		}
		return append(dst, byte(r))
	}
	return utf8.AppendRune(dst, r)
}

func htmlAttr(v string) string {
	return string(util.EscapeHTML([]byte(v)))
}

func htmlHref(url string) string {
	return string(util.EscapeHTML(util.URLEscape([]byte(url), false)))
}
