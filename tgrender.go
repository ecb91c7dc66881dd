// Package tgrender 将纯文本与格式标注（Telegram MessageEntity）渲染为标记字符串
//
// 标注是以 UTF-16 code units 计的半开区间。渲染器把每个标注拆成一对
// 边界事件，按确定的顺序排序后单遍遍历文本，在正确的位置写出标签，
// 并按目标格式转义内容。
//
// 核心功能：
//   - 将 (text, annotations) 渲染为 HTML、MarkdownV2 或 ANSI 终端预览
//   - 将 Bot API 的 MessageEntity 列表转换为标注
//   - 按 Telegram 长度限制拆分长消息
//
// 主要 API：
//   - Render(): 渲染 UTF-8 文本
//   - RenderUTF16(): 渲染 UTF-16 code units 文本
//   - RenderChunks(): 拆分并渲染，返回可发送的 Message 列表
//
// 示例：
//
//	out := tgrender.Render("Hello World", []tgrender.Annotation{
//	    tgrender.NewAnnotation(tgrender.Bold{}, 0, 5),
//	}, tgrender.HTML)
//	// out == "<b>Hello</b> World"
package tgrender

import (
	"github.com/riverfjs/tgrender/internal/annotation"
	"github.com/riverfjs/tgrender/internal/converter"
	"github.com/riverfjs/tgrender/internal/flavor"
)

// 导出类型别名
type (
	Annotation = annotation.Annotation
	Kind       = annotation.Kind
	Flavor     = flavor.Flavor

	Bold                 = annotation.Bold
	Italic               = annotation.Italic
	Underline            = annotation.Underline
	Strikethrough        = annotation.Strikethrough
	Spoiler              = annotation.Spoiler
	Blockquote           = annotation.Blockquote
	ExpandableBlockquote = annotation.ExpandableBlockquote
	InlineCode           = annotation.InlineCode
	CodeBlock            = annotation.CodeBlock
	Hyperlink            = annotation.Hyperlink
	Mention              = annotation.Mention
	CustomEmoji          = annotation.CustomEmoji
)

// Built-in flavors.
var (
	HTML       = flavor.HTML
	MarkdownV2 = flavor.MarkdownV2
	ANSI       = flavor.ANSI
)

// NewAnnotation returns an annotation of kind k over [start, end).
func NewAnnotation(k Kind, start, end int) Annotation {
	return annotation.New(k, start, end)
}

// LookupFlavor returns the built-in flavor registered under name.
func LookupFlavor(name string) (*Flavor, bool) {
	return flavor.Lookup(name)
}

// Render 将 text 与 anns 渲染为 fl 格式的标记
//
// 没有标注时原样返回 text（不转义）。越界偏移会被截断到文本范围内。
// fl 为 nil 时使用默认配置的格式。
func Render(text string, anns []Annotation, fl *Flavor) string {
	return converter.RenderString(text, anns, flavorOrDefault(fl), Logger)
}

// RenderUTF16 与 Render 相同，但文本以 UTF-16 code units 给出
func RenderUTF16(units []uint16, anns []Annotation, fl *Flavor) string {
	return converter.RenderUTF16(units, anns, flavorOrDefault(fl), Logger)
}

// RenderEntities 将 Bot API 实体转换为标注后渲染，返回可直接发送的 Message
func RenderEntities(text string, entities []MessageEntity, fl *Flavor) Message {
	fl = flavorOrDefault(fl)
	return Message{
		Text:      converter.RenderString(text, Annotations(entities), fl, Logger),
		ParseMode: fl.ParseMode(),
	}
}

func flavorOrDefault(fl *Flavor) *Flavor {
	if fl != nil {
		return fl
	}
	return defaultRenderOptions().Flavor
}
