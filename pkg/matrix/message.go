// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package matrix

import (
	"time"

	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/aiku/chatom/pkg/chatom"
)

func messageTypeFromMsgType(t event.MessageType) chatom.MessageType {
	switch t {
	case event.MsgText, event.MsgEmote, event.MsgNotice:
		return chatom.MessageTypeDefault
	case event.MsgImage, event.MsgFile, event.MsgAudio, event.MsgVideo:
		return chatom.MessageTypeDefault
	default:
		return chatom.MessageTypeUnknown
	}
}

// FromEvent converts an m.room.message event to the chatom model. The HTML
// formatted body, when present, is carried as the formatted content so
// round-tripping does not lose markup.
func FromEvent(evt *event.Event) *chatom.Message {
	if evt == nil {
		return nil
	}
	content := evt.Content.AsMessage()
	msg := &chatom.Message{
		Identifiable: chatom.Identifiable{ID: string(evt.ID)},
		Backend:      "matrix",
		CreatedAt:    time.UnixMilli(evt.Timestamp).UTC(),
		Raw:          evt,
	}
	if evt.Sender != "" {
		msg.Author = &FromUserID(evt.Sender).User
	}
	if evt.RoomID != "" {
		msg.Channel = &chatom.Channel{Identifiable: chatom.Identifiable{ID: string(evt.RoomID), Incomplete: true}}
	}
	if content == nil {
		msg.Type = chatom.MessageTypeUnknown
		return msg
	}
	msg.Content = content.Body
	msg.Type = messageTypeFromMsgType(content.MsgType)
	if content.Format == event.FormatHTML && content.FormattedBody != "" {
		msg.FormattedContent = content.FormattedBody
	}
	if rel := content.RelatesTo; rel != nil {
		if rel.Type == event.RelThread && rel.EventID != "" {
			msg.Thread = &chatom.Thread{
				Identifiable:  chatom.Identifiable{ID: string(rel.EventID)},
				ParentChannel: msg.Channel,
			}
		}
		if reply := rel.GetReplyTo(); reply != "" {
			msg.Type = chatom.MessageTypeReply
			msg.Reference = &chatom.MessageReference{
				MessageID: string(reply),
				ChannelID: string(evt.RoomID),
			}
		}
	}
	return msg
}

// RoomID returns the message's channel as a mautrix room ID.
func RoomID(ch *chatom.Channel) id.RoomID {
	if ch == nil {
		return ""
	}
	return id.RoomID(ch.ID)
}
