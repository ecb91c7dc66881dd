// Package update extracts renderable text and entities from Telegram Bot
// API JSON: a bare {"text","entities"} object, a Message, or an Update that
// wraps one.
package update

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/tidwall/gjson"

	"github.com/riverfjs/tgrender/internal/types"
)

// Source names.
const (
	SourceText    = "text"
	SourceCaption = "caption"
)

// Source is one renderable part of a message: its body or its caption.
type Source struct {
	Name     string
	Text     string
	Entities []types.MessageEntity
}

// ErrNoText is returned when the document has neither text nor caption.
var ErrNoText = errors.New("no text or caption found")

// messageFields lists the Update fields that carry a Message, in the order
// they are tried.
var messageFields = []string{
	"message",
	"edited_message",
	"channel_post",
	"edited_channel_post",
	"business_message",
	"edited_business_message",
}

var sourceFields = []struct {
	name     string
	text     string
	entities string
}{
	{name: SourceText, text: "text", entities: "entities"},
	{name: SourceCaption, text: "caption", entities: "caption_entities"},
}

// Extract returns the text and caption found in data. path, when non-empty,
// is a gjson path selecting the message inside data (e.g. "result.0.message").
// Without a path, a top-level Update is unwrapped automatically.
func Extract(data []byte, path string) ([]Source, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	msg := gjson.ParseBytes(data)
	if path != "" {
		msg = msg.Get(path)
		if !msg.Exists() {
			return nil, fmt.Errorf("path %q not found", path)
		}
	} else if !hasSource(msg) {
		for _, field := range messageFields {
			if m := msg.Get(field); m.IsObject() {
				msg = m
				break
			}
		}
	}

	var sources []Source
	for _, f := range sourceFields {
		text := msg.Get(f.text)
		if text.Type != gjson.String {
			continue
		}
		src := Source{Name: f.name, Text: text.String()}
		if ents := msg.Get(f.entities); ents.IsArray() {
			if err := json.Unmarshal([]byte(ents.Raw), &src.Entities); err != nil {
				return nil, fmt.Errorf("decode %s: %w", f.entities, err)
			}
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, ErrNoText
	}
	return sources, nil
}

func hasSource(msg gjson.Result) bool {
	for _, f := range sourceFields {
		if msg.Get(f.text).Exists() {
			return true
		}
	}
	return false
}

// Select returns the source named name, or the first source when name is
// empty.
func Select(sources []Source, name string) (Source, error) {
	for _, src := range sources {
		if name == "" || src.Name == name {
			return src, nil
		}
	}
	return Source{}, fmt.Errorf("no %s in input", name)
}

// Validate checks the entities of s. Offsets past the end of the text are
// allowed; rendering clamps them.
func (s Source) Validate() error {
	var errs criterio.FieldErrorsBuilder
	for i, e := range s.Entities {
		field := fmt.Sprintf("%s[%d]", entitiesField(s.Name), i)
		if e.Type == "" {
			errs = errs.Append(field+".type", errors.New("is required"))
		}
		if e.Offset < 0 {
			errs = errs.Append(field+".offset", fmt.Errorf("must not be negative, got %d", e.Offset))
		}
		if e.Length < 0 {
			errs = errs.Append(field+".length", fmt.Errorf("must not be negative, got %d", e.Length))
		}
	}
	return errs.ToError()
}

func entitiesField(name string) string {
	for _, f := range sourceFields {
		if f.name == name {
			return f.entities
		}
	}
	return "entities"
}
