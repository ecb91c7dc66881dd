package tgrender

import (
	"github.com/riverfjs/tgrender/internal/annotation"
	"github.com/riverfjs/tgrender/internal/util"
)

// Telegram entity types.
const (
	EntityBold                 = "bold"
	EntityItalic               = "italic"
	EntityUnderline            = "underline"
	EntityStrikethrough        = "strikethrough"
	EntitySpoiler              = "spoiler"
	EntityBlockquote           = "blockquote"
	EntityExpandableBlockquote = "expandable_blockquote"
	EntityCode                 = "code"
	EntityPre                  = "pre"
	EntityTextLink             = "text_link"
	EntityTextMention          = "text_mention"
	EntityCustomEmoji          = "custom_emoji"
)

// Annotations 将 Bot API 实体转换为渲染用的标注
//
// 自动识别的实体（mention、hashtag、url、email、bot_command 等）不需要
// 标记，和未知类型一起被跳过。输出保持实体的原有顺序。
func Annotations(entities []MessageEntity) []Annotation {
	anns := make([]Annotation, 0, len(entities))
	for _, e := range entities {
		k, ok := entityKind(e)
		if !ok {
			Logger.Debug().
				Str("type", e.Type).
				Int("offset", e.Offset).
				Int("length", e.Length).
				Msg("entity skipped")
			continue
		}
		anns = append(anns, annotation.New(k, e.Offset, e.End()))
	}
	return anns
}

func entityKind(e MessageEntity) (Kind, bool) {
	switch e.Type {
	case EntityBold:
		return Bold{}, true
	case EntityItalic:
		return Italic{}, true
	case EntityUnderline:
		return Underline{}, true
	case EntityStrikethrough:
		return Strikethrough{}, true
	case EntitySpoiler:
		return Spoiler{}, true
	case EntityBlockquote:
		return Blockquote{}, true
	case EntityExpandableBlockquote:
		return ExpandableBlockquote{}, true
	case EntityCode:
		return InlineCode{}, true
	case EntityPre:
		return CodeBlock{Language: util.NormalizeLanguage(e.Language)}, true
	case EntityTextLink:
		return Hyperlink{URL: e.URL}, true
	case EntityTextMention:
		if e.User == nil {
			return nil, false
		}
		return Mention{UserID: e.User.ID}, true
	case EntityCustomEmoji:
		return CustomEmoji{ID: e.CustomEmojiID}, true
	}
	return nil, false
}
