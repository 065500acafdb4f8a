// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package symphony

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/aiku/chatom/pkg/chatom"
)

// StreamType is Symphony's conversation kind.
type StreamType string

const (
	StreamIM   StreamType = "IM"
	StreamMIM  StreamType = "MIM"
	StreamRoom StreamType = "ROOM"
	StreamPost StreamType = "POST"
)

var messageMLTagRe = regexp.MustCompile(`<[^>]+>`)

// Channel is a Symphony stream.
type Channel struct {
	chatom.Channel

	StreamType StreamType `yaml:"stream_type,omitempty" json:"stream_type,omitempty"`
}

// FromStreamType converts Symphony's stream kinds to channel types. An IM
// is a two-party direct stream, an MIM a multi-party one.
func FromStreamType(t StreamType) chatom.ChannelType {
	switch t {
	case StreamIM:
		return chatom.ChannelTypeDirect
	case StreamMIM:
		return chatom.ChannelTypeGroup
	case StreamRoom, StreamPost:
		return chatom.ChannelTypePrivate
	default:
		return chatom.ChannelTypeUnknown
	}
}

// Message is a Symphony message. Content carries the MessageML source;
// PresentationML is the agent-rendered variant.
type Message struct {
	chatom.Message

	PresentationML string `yaml:"presentation_ml,omitempty" json:"presentation_ml,omitempty"`
	// Data is the message's entity data JSON, carrying structured
	// mentions, hashtags, and cashtags.
	Data string `yaml:"data,omitempty" json:"data,omitempty"`
	// Tags are the users structurally mentioned through entity data.
	Tags []*chatom.User `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// RenderedContent returns the human-readable message text: the
// PresentationML when the agent provided one, stripped of tags, otherwise
// the MessageML content stripped the same way.
func (m *Message) RenderedContent() string {
	src := m.PresentationML
	if src == "" {
		src = m.Content
	}
	return strings.TrimSpace(messageMLTagRe.ReplaceAllString(src, ""))
}

// MentionsUser reports whether user appears in the structured tags or in
// the MessageML mention markup.
func (m *Message) MentionsUser(user *chatom.User) bool {
	if user == nil || user.ID == "" {
		return false
	}
	for _, tag := range m.Tags {
		if tag != nil && tag.ID == user.ID {
			return true
		}
	}
	return m.Message.MentionsUser(user.ID)
}

// ExtractMentionsFromData pulls mentioned user IDs out of Symphony entity
// data JSON. Entity data is an object keyed by placeholder index, each
// entry typed com.symphony.user.mention with a userId value.
func ExtractMentionsFromData(data string) []string {
	if data == "" || !gjson.Valid(data) {
		return nil
	}
	var ids []string
	gjson.Parse(data).ForEach(func(_, entity gjson.Result) bool {
		if entity.Get("type").String() != "com.symphony.user.mention" {
			return true
		}
		entity.Get("id").ForEach(func(_, id gjson.Result) bool {
			if id.Get("type").String() == "com.symphony.user.userId" {
				if v := id.Get("value").String(); v != "" {
					ids = append(ids, v)
				}
			}
			return true
		})
		return true
	})
	return ids
}

// ExtractHashtagsFromData pulls hashtag values out of entity data JSON.
// Cashtags share the structure under the org.symphonyoss.fin.security type.
func ExtractHashtagsFromData(data string) []string {
	return extractTaxonomy(data, "org.symphonyoss.taxonomy", "org.symphonyoss.taxonomy.hashtag")
}

// ExtractCashtagsFromData pulls cashtag values out of entity data JSON.
func ExtractCashtagsFromData(data string) []string {
	return extractTaxonomy(data, "org.symphonyoss.fin.security", "org.symphonyoss.fin.security.id.ticker")
}

func extractTaxonomy(data, entityType, idType string) []string {
	if data == "" || !gjson.Valid(data) {
		return nil
	}
	var values []string
	gjson.Parse(data).ForEach(func(_, entity gjson.Result) bool {
		if entity.Get("type").String() != entityType {
			return true
		}
		entity.Get("id").ForEach(func(_, id gjson.Result) bool {
			if id.Get("type").String() == idType {
				if v := id.Get("value").String(); v != "" {
					values = append(values, v)
				}
			}
			return true
		})
		return true
	})
	return values
}

// ApplyData fills in the message's structured fields from its entity data:
// tags become incomplete users, and mention IDs join Mentions.
func (m *Message) ApplyData() {
	for _, id := range ExtractMentionsFromData(m.Data) {
		u := &chatom.User{Identifiable: chatom.Identifiable{ID: id, Incomplete: true}}
		m.Tags = append(m.Tags, u)
		m.Mentions = append(m.Mentions, u)
	}
}
