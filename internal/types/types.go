package types

// MessageEntity 表示 Telegram 消息实体
//
// Offset 与 Length 以 UTF-16 code units 计。
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	User          *User  `json:"user,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// End returns the exclusive end offset of the entity.
func (e MessageEntity) End() int {
	return e.Offset + e.Length
}

// User 是 text_mention 实体指向的用户，只保留渲染需要的字段
type User struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// Flavor is the name of the markup flavor, see flavor.Lookup.
	Flavor string
	// MaxMessageLength limits each chunk produced by message splitting, in
	// UTF-16 code units.
	MaxMessageLength int
	// TrimSpace strips surrounding whitespace before splitting.
	TrimSpace bool
}

// DefaultMaxMessageLength is Telegram's limit for a text message.
const DefaultMaxMessageLength = 4096

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Flavor:           "html",
		MaxMessageLength: DefaultMaxMessageLength,
		TrimSpace:        true,
	}
}
