package flavor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/riverfjs/tgrender/internal/annotation"
)

const (
	sgrCode  = "\x1b[36m"
	sgrReset = "\x1b[39m"
	quoteBar = "│ "
)

// ANSI previews messages in a terminal with SGR styling and OSC 8 links.
// Its output is never sent to Telegram.
var ANSI = register(MustNew(Definition{
	Name:      "ansi",
	Extension: ".ansi",
	Escape:    escapeANSI,
	Tags: map[annotation.Type]Tag{
		annotation.TypeBold:                 {Open: "\x1b[1m", Close: "\x1b[22m"},
		annotation.TypeItalic:               {Open: "\x1b[3m", Close: "\x1b[23m"},
		annotation.TypeUnderline:            {Open: "\x1b[4m", Close: "\x1b[24m"},
		annotation.TypeStrikethrough:        {Open: "\x1b[9m", Close: "\x1b[29m"},
		annotation.TypeSpoiler:              {Open: "\x1b[7m", Close: "\x1b[27m"},
		annotation.TypeBlockquote:           {Open: quoteBar, LinePrefix: quoteBar},
		annotation.TypeExpandableBlockquote: {Open: quoteBar, LinePrefix: quoteBar},
		annotation.TypeInlineCode:           {Open: sgrCode, Close: sgrReset},
		annotation.TypeCodeBlock:            {Open: sgrCode, Close: sgrReset},
		annotation.TypeHyperlink: {
			Wrap: func(url string) (string, string) {
				return ansi.SetHyperlink(stripControl(url)), ansi.ResetHyperlink()
			},
		},
		annotation.TypeMention: {
			Wrap: func(id string) (string, string) {
				return ansi.SetHyperlink("tg://user?id=" + id), ansi.ResetHyperlink()
			},
		},
		// The emoji's fallback text is already part of the content.
		annotation.TypeCustomEmoji: {},
	},
}))

// escapeANSI shows C0 control characters other than newline and tab in
// caret notation so content cannot inject terminal sequences.
func escapeANSI(dst []byte, r rune, _ Mode) []byte {
	if (r < 0x20 && r != '\n' && r != '\t') || r == 0x7f {
		return append(dst, '^', byte(r)^0x40)
	}
	return utf8.AppendRune(dst, r)
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
