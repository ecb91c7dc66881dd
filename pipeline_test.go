package tgrender

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestStripNewlinesAdjust 测试去除首尾换行并调整 entity
// 只含换行符的文本曾导致 slice bounds out of range
func TestStripNewlinesAdjust(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		entities     []MessageEntity
		wantText     string
		wantEntities []MessageEntity
	}{
		{name: "single newline", text: "\n"},
		{name: "only newlines", text: "\n\n\n\n"},
		{name: "empty", text: ""},
		{name: "leading", text: "\n\ntest", wantText: "test"},
		{name: "trailing", text: "test\n\n", wantText: "test"},
		{name: "both", text: "\n\ntest\n\n", wantText: "test"},
		{
			name:         "only newlines drops entities",
			text:         "\n\n",
			entities:     []MessageEntity{{Type: "bold", Offset: 0, Length: 2}},
			wantEntities: nil,
		},
		{
			name:         "entity shifted",
			text:         "\n\nhello world\n\n",
			entities:     []MessageEntity{{Type: "bold", Offset: 2, Length: 5}},
			wantText:     "hello world",
			wantEntities: []MessageEntity{{Type: "bold", Offset: 0, Length: 5}},
		},
		{
			name:         "entity clipped",
			text:         "\n\nhello\n\n",
			entities:     []MessageEntity{{Type: "bold", Offset: 0, Length: 7}},
			wantText:     "hello",
			wantEntities: []MessageEntity{{Type: "bold", Offset: 0, Length: 5}},
		},
		{
			name:     "entity in stripped area",
			text:     "\n\nhello\n\n",
			entities: []MessageEntity{{Type: "bold", Offset: 0, Length: 1}},
			wantText: "hello",
		},
		{
			name:         "unchanged",
			text:         "hi",
			entities:     []MessageEntity{{Type: "italic", Offset: 0, Length: 2}},
			wantText:     "hi",
			wantEntities: []MessageEntity{{Type: "italic", Offset: 0, Length: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotEntities := stripNewlinesAdjust(tt.text, tt.entities)
			if gotText != tt.wantText {
				t.Errorf("stripNewlinesAdjust() text = %q, want %q", gotText, tt.wantText)
			}
			if diff := cmp.Diff(tt.wantEntities, gotEntities); diff != "" {
				t.Errorf("stripNewlinesAdjust() entities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRenderChunks_Single 测试短消息只产生一条
func TestRenderChunks_Single(t *testing.T) {
	entities := []MessageEntity{{Type: "bold", Offset: 2, Length: 5}}
	got := RenderChunks("  Hello World\n", entities)
	if len(got) != 1 {
		t.Fatalf("RenderChunks() returned %d messages, want 1", len(got))
	}
	if got[0].Text != "<b>Hello</b> World" {
		t.Errorf("RenderChunks() text = %q", got[0].Text)
	}
	if got[0].ParseMode != "HTML" {
		t.Errorf("RenderChunks() parse mode = %q, want HTML", got[0].ParseMode)
	}
}

// TestRenderChunks_ZeroLengthEntity 测试长度为 0 的实体与直接渲染结果一致
func TestRenderChunks_ZeroLengthEntity(t *testing.T) {
	entities := []MessageEntity{{Type: "bold", Offset: 3, Length: 0}}
	got := RenderChunks("  ab\n", entities)
	if len(got) != 1 {
		t.Fatalf("RenderChunks() returned %d messages, want 1", len(got))
	}
	if want := RenderEntities("ab", []MessageEntity{{Type: "bold", Offset: 1, Length: 0}}, nil).Text; got[0].Text != want {
		t.Errorf("RenderChunks() text = %q, want %q", got[0].Text, want)
	}
	if got[0].Text != "a</b><b>b" {
		t.Errorf("RenderChunks() text = %q, want %q", got[0].Text, "a</b><b>b")
	}
}

// TestRenderChunks_SplitsLongMessages 测试按长度限制拆分并裁剪实体
func TestRenderChunks_SplitsLongMessages(t *testing.T) {
	text := strings.Repeat("a", 6) + "\n" + strings.Repeat("b", 6)
	entities := []MessageEntity{{Type: "italic", Offset: 3, Length: 7}}

	got := RenderChunks(text, entities, WithMaxMessageLength(8), WithFlavor(MarkdownV2))
	want := []string{"aaa_aaa_", "_bbb_bbb"}
	if len(got) != len(want) {
		t.Fatalf("RenderChunks() returned %d messages, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i].Text, want[i])
		}
		if got[i].ParseMode != "MarkdownV2" {
			t.Errorf("message %d parse mode = %q", i, got[i].ParseMode)
		}
	}
}

// TestRenderChunks_Blank 测试空白文本不产生消息
func TestRenderChunks_Blank(t *testing.T) {
	if got := RenderChunks(" \n\t", nil); len(got) != 0 {
		t.Errorf("RenderChunks() = %+v, want none", got)
	}
}

// TestRenderChunks_WithConfig 测试通过 RenderConfig 配置
func TestRenderChunks_WithConfig(t *testing.T) {
	cfg := &RenderConfig{Flavor: "ansi", MaxMessageLength: 0, TrimSpace: false}
	got := RenderChunks(" x ", []MessageEntity{{Type: "bold", Offset: 1, Length: 1}}, WithConfig(cfg))
	if len(got) != 1 {
		t.Fatalf("RenderChunks() returned %d messages, want 1", len(got))
	}
	if got[0].Text != " \x1b[1mx\x1b[22m " {
		t.Errorf("RenderChunks() text = %q", got[0].Text)
	}
	if got[0].ParseMode != "" {
		t.Errorf("ansi parse mode = %q, want empty", got[0].ParseMode)
	}
}

// TestWithConfig_UnknownFlavor 测试未知格式保留默认值
func TestWithConfig_UnknownFlavor(t *testing.T) {
	opts := applyOptions(WithConfig(&RenderConfig{Flavor: "bbcode", MaxMessageLength: 100}))
	if opts.Flavor != HTML {
		t.Errorf("flavor = %s, want html", opts.Flavor.Name())
	}
	if opts.MaxMessageLength != 100 {
		t.Errorf("max length = %d, want 100", opts.MaxMessageLength)
	}
}
