package tgrender

import (
	"strings"
	"unicode"

	"github.com/riverfjs/tgrender/internal/scalar"
	"github.com/riverfjs/tgrender/internal/types"
)

// 导出类型别名
type (
	MessageEntity = types.MessageEntity
	User          = types.User
)

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return scalar.Len16(text)
}

// TextChunk represents a chunk of text with its entities.
type TextChunk struct {
	Text     string
	Entities []MessageEntity
}

// findNewlinePositions returns the byte index right after each newline.
func findNewlinePositions(text string) []int {
	var points []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			points = append(points, i+1)
		}
	}
	return points
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each byte position.
// result[i] is the UTF-16 offset at byte position i; positions inside a
// multi-byte rune carry the offset just past it.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	cum := 0
	prev := 0
	for i, r := range text {
		for j := prev; j <= i; j++ {
			offsets[j] = cum
		}
		cum += scalar.Units(r)
		prev = i + 1
	}
	for j := prev; j <= len(text); j++ {
		offsets[j] = cum
	}
	return offsets
}

// isRuneStart reports whether byte position i of text begins a rune.
func isRuneStart(text string, i int) bool {
	return i == len(text) || text[i]&0xC0 != 0x80
}

// SplitEntities splits (text, entities) into chunks not exceeding maxUTF16Len UTF-16 code units.
//
// Tries to split at newline boundaries. Entities that span a split boundary
// are clipped into both chunks.
func SplitEntities(text string, entities []MessageEntity, maxUTF16Len int) []TextChunk {
	offsets := buildUTF16OffsetTable(text)
	total := offsets[len(text)]
	if total <= maxUTF16Len || maxUTF16Len <= 0 {
		return []TextChunk{{Text: text, Entities: entities}}
	}

	// Build list of candidate split points (newline positions)
	splitPoints := findNewlinePositions(text)

	// Determine actual split positions using greedy packing
	var chunksRanges [][2]int // [byteStart, byteEnd]
	byteStart := 0

	for byteStart < len(text) {
		utf16Budget := offsets[byteStart] + maxUTF16Len

		if total <= utf16Budget {
			// Remaining text fits
			chunksRanges = append(chunksRanges, [2]int{byteStart, len(text)})
			break
		}

		// Find the last split point that fits within budget
		bestSplit := -1
		for _, sp := range splitPoints {
			if sp <= byteStart {
				continue
			}
			if offsets[sp] > utf16Budget {
				break
			}
			bestSplit = sp
		}

		if bestSplit == -1 {
			// No newline split fits -- hard split at the last rune boundary
			// within budget
			bestSplit = byteStart
			for i := byteStart + 1; i <= len(text) && offsets[i] <= utf16Budget; i++ {
				if isRuneStart(text, i) {
					bestSplit = i
				}
			}
			if bestSplit == byteStart {
				// A single rune wider than the budget; force progress
				bestSplit = byteStart + 1
				for !isRuneStart(text, bestSplit) {
					bestSplit++
				}
			}
		}

		chunksRanges = append(chunksRanges, [2]int{byteStart, bestSplit})
		byteStart = bestSplit
	}

	// Assign entities to chunks, clipping as needed
	result := make([]TextChunk, 0, len(chunksRanges))
	for i, chunkRange := range chunksRanges {
		chunkByteStart, chunkByteEnd := chunkRange[0], chunkRange[1]
		last := i == len(chunksRanges)-1
		result = append(result, TextChunk{
			Text:     text[chunkByteStart:chunkByteEnd],
			Entities: clipEntities(entities, offsets[chunkByteStart], offsets[chunkByteEnd], last),
		})
	}

	return result
}

// clipEntities returns the entities overlapping [start, end), clipped to it
// and rebased so start becomes offset 0. A zero-length entity is kept when
// its offset lies in [start, end), or at end itself if withEnd is set.
func clipEntities(entities []MessageEntity, start, end int, withEnd bool) []MessageEntity {
	var clipped []MessageEntity
	for _, ent := range entities {
		if ent.Length == 0 {
			if ent.Offset >= start && (ent.Offset < end || withEnd && ent.Offset == end) {
				ent.Offset -= start
				clipped = append(clipped, ent)
			}
			continue
		}
		// Check overlap
		if ent.End() <= start || ent.Offset >= end {
			continue
		}
		clippedStart := max(ent.Offset, start)
		clippedEnd := min(ent.End(), end)
		if clippedEnd <= clippedStart {
			continue
		}
		ent.Offset = clippedStart - start
		ent.Length = clippedEnd - clippedStart
		clipped = append(clipped, ent)
	}
	return clipped
}

// TrimSpace removes leading and trailing whitespace while adjusting entities.
func TrimSpace(text string, entities []MessageEntity) (string, []MessageEntity) {
	return trimAdjust(text, entities, unicode.IsSpace)
}

// stripNewlinesAdjust strips leading/trailing newlines from text and adjusts entity offsets.
func stripNewlinesAdjust(text string, entities []MessageEntity) (string, []MessageEntity) {
	return trimAdjust(text, entities, func(r rune) bool { return r == '\n' })
}

func trimAdjust(text string, entities []MessageEntity, cut func(rune) bool) (string, []MessageEntity) {
	trimmed := strings.TrimRightFunc(strings.TrimLeftFunc(text, cut), cut)
	if trimmed == text {
		return text, entities
	}
	if trimmed == "" {
		return "", nil
	}

	leading := len(text) - len(strings.TrimLeftFunc(text, cut))
	utf16Start := UTF16Len(text[:leading])
	return trimmed, clipEntities(entities, utf16Start, utf16Start+UTF16Len(trimmed), true)
}
