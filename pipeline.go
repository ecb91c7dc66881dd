package tgrender

// RenderChunks 完整管道：(text, entities) → 可发送的消息列表
//
// 步骤：
//  1. 按配置去除首尾空白并调整实体偏移
//  2. 按 MaxMessageLength（UTF-16 code units）在换行处拆分，跨界实体被裁剪到两侧；
//     长度为 0 的实体归入其偏移所在的块（位于拆分点时归入后一块）
//  3. 去除每块首尾换行后逐块渲染
//
// 长度限制作用于纯文本而非渲染后的标记，这与 Telegram 计算消息长度的方式一致。
// 空白文本返回空列表。
func RenderChunks(text string, entities []MessageEntity, opts ...Option) []Message {
	options := applyOptions(opts...)

	if options.TrimSpace {
		text, entities = TrimSpace(text, entities)
	}
	if text == "" {
		return nil
	}

	chunks := SplitEntities(text, entities, options.MaxMessageLength)
	result := make([]Message, 0, len(chunks))
	for i, chunk := range chunks {
		chunkText, chunkEntities := stripNewlinesAdjust(chunk.Text, chunk.Entities)
		if chunkText == "" {
			continue
		}
		Logger.Debug().
			Int("chunk", i).
			Int("utf16_len", UTF16Len(chunkText)).
			Int("entities", len(chunkEntities)).
			Msg("rendering chunk")
		result = append(result, RenderEntities(chunkText, chunkEntities, options.Flavor))
	}
	return result
}
