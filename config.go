package tgrender

import (
	"sync"

	"github.com/riverfjs/tgrender/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// DefaultMaxMessageLength is Telegram's limit for a text message.
const DefaultMaxMessageLength = types.DefaultMaxMessageLength

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
