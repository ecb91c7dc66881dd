package tgrender

import (
	"testing"
	"unicode/utf16"
)

// TestRender_NoAnnotations 测试没有标注时原样返回
func TestRender_NoAnnotations(t *testing.T) {
	if got := Render("<tag>&", nil, HTML); got != "<tag>&" {
		t.Errorf("Render() = %q, want %q", got, "<tag>&")
	}
}

// TestRender_Properties 测试渲染的基本性质
func TestRender_Properties(t *testing.T) {
	tests := []struct {
		name string
		text string
		anns []Annotation
		want string
	}{
		{
			name: "single bold",
			text: "Hi",
			anns: []Annotation{NewAnnotation(Bold{}, 0, 2)},
			want: "<b>Hi</b>",
		},
		{
			name: "disjoint",
			text: "Hello World",
			anns: []Annotation{NewAnnotation(Bold{}, 0, 5), NewAnnotation(Italic{}, 6, 11)},
			want: "<b>Hello</b> <i>World</i>",
		},
		{
			name: "nested",
			text: "abcdef",
			anns: []Annotation{NewAnnotation(Bold{}, 0, 6), NewAnnotation(Italic{}, 2, 4)},
			want: "<b>ab<i>cd</i>ef</b>",
		},
		{
			name: "surrogate pair",
			text: "😀!",
			anns: []Annotation{NewAnnotation(Bold{}, 0, 2)},
			want: "<b>😀</b>!",
		},
		{
			name: "escaping",
			text: "<b>&",
			anns: []Annotation{NewAnnotation(Bold{}, 0, 4)},
			want: "<b>&lt;b&gt;&amp;</b>",
		},
		{
			name: "nil flavor uses default",
			text: "x",
			anns: []Annotation{NewAnnotation(Spoiler{}, 0, 1)},
			want: "<tg-spoiler>x</tg-spoiler>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl := HTML
			if tt.name == "nil flavor uses default" {
				fl = nil
			}
			if got := Render(tt.text, tt.anns, fl); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRenderUTF16 测试 UTF-16 输入
func TestRenderUTF16(t *testing.T) {
	units := utf16.Encode([]rune("📌 pin"))
	got := RenderUTF16(units, []Annotation{NewAnnotation(Underline{}, 3, 6)}, MarkdownV2)
	if want := "📌 __pin__"; got != want {
		t.Errorf("RenderUTF16() = %q, want %q", got, want)
	}
}

// TestAnnotations 测试 MessageEntity 到标注的转换
func TestAnnotations(t *testing.T) {
	entities := []MessageEntity{
		{Type: EntityBold, Offset: 0, Length: 4},
		{Type: "hashtag", Offset: 5, Length: 3},
		{Type: EntityPre, Offset: 9, Length: 2, Language: "py"},
		{Type: EntityTextLink, Offset: 12, Length: 1, URL: "https://t.me"},
		{Type: EntityTextMention, Offset: 14, Length: 1, User: &User{ID: 7}},
		{Type: EntityTextMention, Offset: 15, Length: 1},
		{Type: EntityCustomEmoji, Offset: 16, Length: 2, CustomEmojiID: "99"},
		{Type: EntityExpandableBlockquote, Offset: 0, Length: 18},
	}
	want := []Annotation{
		NewAnnotation(Bold{}, 0, 4),
		NewAnnotation(CodeBlock{Language: "python"}, 9, 11),
		NewAnnotation(Hyperlink{URL: "https://t.me"}, 12, 13),
		NewAnnotation(Mention{UserID: 7}, 14, 15),
		NewAnnotation(CustomEmoji{ID: "99"}, 16, 18),
		NewAnnotation(ExpandableBlockquote{}, 0, 18),
	}

	got := Annotations(entities)
	if len(got) != len(want) {
		t.Fatalf("Annotations() returned %d, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Annotations()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestRenderEntities 测试实体渲染与 parse mode
func TestRenderEntities(t *testing.T) {
	text := "run go test"
	entities := []MessageEntity{
		{Type: EntityCode, Offset: 4, Length: 7},
		{Type: "bot_command", Offset: 0, Length: 3},
	}
	got := RenderEntities(text, entities, MarkdownV2)
	if got.Text != "run `go test`" {
		t.Errorf("RenderEntities() text = %q", got.Text)
	}
	if got.ParseMode != "MarkdownV2" {
		t.Errorf("RenderEntities() parse mode = %q", got.ParseMode)
	}
}

// TestLookupFlavor 测试按名称查找格式
func TestLookupFlavor(t *testing.T) {
	fl, ok := LookupFlavor(" HTML ")
	if !ok || fl != HTML {
		t.Errorf("LookupFlavor(HTML) = %v, %v", fl, ok)
	}
	if _, ok := LookupFlavor("bbcode"); ok {
		t.Error("LookupFlavor(bbcode) should fail")
	}
}
