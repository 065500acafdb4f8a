// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"
	"go.mau.fi/util/ptr"

	"github.com/aiku/chatom/pkg/chatom"
)

// Subtype is a Slack message subtype. Only subtypes the unified model
// cares about are enumerated; everything else stays a raw string.
type Subtype string

const (
	SubtypeNone            Subtype = ""
	SubtypeBotMessage      Subtype = "bot_message"
	SubtypeChannelJoin     Subtype = "channel_join"
	SubtypeChannelLeave    Subtype = "channel_leave"
	SubtypeMessageChanged  Subtype = "message_changed"
	SubtypeThreadBroadcast Subtype = "thread_broadcast"
)

// Message is a Slack message. Slack identifies messages by their ts
// timestamp, which doubles as the thread key.
type Message struct {
	chatom.Message

	Ts        string  `yaml:"ts" json:"ts"`
	ThreadTs  string  `yaml:"thread_ts,omitempty" json:"thread_ts,omitempty"`
	Subtype   Subtype `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	BotID     string  `yaml:"bot_id,omitempty" json:"bot_id,omitempty"`
	TeamID    string  `yaml:"team_id,omitempty" json:"team_id,omitempty"`
	Permalink string  `yaml:"permalink,omitempty" json:"permalink,omitempty"`
}

// IsThreadReply reports whether the message lives inside a thread started
// by another message.
func (m *Message) IsThreadReply() bool {
	return m.ThreadTs != "" && m.ThreadTs != m.Ts
}

// IsThreadParent reports whether the message started a thread.
func (m *Message) IsThreadParent() bool {
	return m.ThreadTs != "" && m.ThreadTs == m.Ts
}

func (m *Message) IsBotMessage() bool {
	return m.BotID != "" || m.Subtype == SubtypeBotMessage
}

// TsTime converts a Slack ts ("1712345678.000200") to a time.Time.
func TsTime(ts string) time.Time {
	head, tail, _ := strings.Cut(ts, ".")
	sec, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return time.Time{}
	}
	var micro int64
	if tail != "" {
		micro, _ = strconv.ParseInt(tail, 10, 64)
	}
	return time.Unix(sec, micro*int64(time.Microsecond)).UTC()
}

func messageTypeFromSubtype(subtype Subtype) chatom.MessageType {
	switch subtype {
	case SubtypeChannelJoin:
		return chatom.MessageTypeJoin
	case SubtypeChannelLeave:
		return chatom.MessageTypeLeave
	case SubtypeNone, SubtypeBotMessage, SubtypeThreadBroadcast:
		return chatom.MessageTypeDefault
	default:
		return chatom.MessageTypeSystem
	}
}

// FromSlackMsg converts a slack-go message to the chatom model. The author
// and channel come back incomplete; resolve them through the client when
// full entities are needed.
func FromSlackMsg(sm *slackapi.Msg) *Message {
	if sm == nil {
		return nil
	}
	msg := &Message{
		Message: chatom.Message{
			Identifiable: chatom.Identifiable{ID: sm.Timestamp},
			Content:      sm.Text,
			Backend:      "slack",
			Type:         messageTypeFromSubtype(Subtype(sm.SubType)),
			CreatedAt:    TsTime(sm.Timestamp),
			Raw:          sm,
		},
		Ts:       sm.Timestamp,
		ThreadTs: sm.ThreadTimestamp,
		Subtype:  Subtype(sm.SubType),
		BotID:    sm.BotID,
		TeamID:   sm.Team,
	}
	if sm.User != "" {
		msg.Author = &chatom.User{Identifiable: chatom.Identifiable{ID: sm.User, Incomplete: true}}
	}
	if sm.Channel != "" {
		msg.Channel = &chatom.Channel{Identifiable: chatom.Identifiable{ID: sm.Channel, Incomplete: true}}
	}
	if msg.IsThreadReply() {
		msg.Thread = &chatom.Thread{
			Identifiable:  chatom.Identifiable{ID: sm.ThreadTimestamp},
			ParentChannel: msg.Channel,
		}
	}
	for _, f := range sm.Files {
		msg.Attachments = append(msg.Attachments, chatom.Attachment{
			Identifiable: chatom.Identifiable{ID: f.ID, Name: f.Name},
			Filename:     f.Name,
			URL:          f.URLPrivate,
			ContentType:  f.Mimetype,
			Size:         int64(f.Size),
		})
	}
	for _, id := range chatom.ExtractMentionIDs(sm.Text, "slack") {
		msg.Mentions = append(msg.Mentions, &chatom.User{
			Identifiable: chatom.Identifiable{ID: id, Incomplete: true},
		})
	}
	return msg
}

// FromSlackChannel converts a slack-go channel to the chatom model.
func FromSlackChannel(sc *slackapi.Channel) *chatom.Channel {
	if sc == nil {
		return nil
	}
	ch := &chatom.Channel{
		Identifiable: chatom.Identifiable{ID: sc.ID, Name: sc.Name},
		Topic:        sc.Topic.Value,
		IsArchived:   sc.IsArchived,
	}
	switch {
	case sc.IsIM:
		ch.ChannelType = chatom.ChannelTypeDirect
	case sc.IsMpIM:
		ch.ChannelType = chatom.ChannelTypeGroup
	case sc.IsPrivate:
		ch.ChannelType = chatom.ChannelTypePrivate
	default:
		ch.ChannelType = chatom.ChannelTypePublic
	}
	if sc.NumMembers > 0 {
		ch.MemberCount = ptr.Ptr(sc.NumMembers)
	}
	return ch
}

// ArchiveLink builds the message permalink from its workspace domain,
// channel and ts, the way Slack's archives URLs are laid out.
func ArchiveLink(domain, channelID, ts string) string {
	if domain == "" || channelID == "" || ts == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.slack.com/archives/%s/p%s", domain, channelID, strings.Replace(ts, ".", "", 1))
}
