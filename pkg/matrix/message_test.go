// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package matrix

import (
	"testing"

	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/aiku/chatom/pkg/chatom"
)

func messageEvent(content *event.MessageEventContent) *event.Event {
	return &event.Event{
		ID:        id.EventID("$evt1"),
		RoomID:    id.RoomID("!room:example.com"),
		Sender:    id.UserID("@alice:example.com"),
		Timestamp: 1712345678000,
		Type:      event.EventMessage,
		Content:   event.Content{Parsed: content},
	}
}

func TestFromEvent(t *testing.T) {
	t.Parallel()
	evt := messageEvent(&event.MessageEventContent{
		MsgType: event.MsgText,
		Body:    "hello",
	})
	msg := FromEvent(evt)
	if msg.ID != "$evt1" || msg.Backend != "matrix" {
		t.Errorf("message: got %+v", msg)
	}
	if msg.Content != "hello" {
		t.Errorf("Content: got %q", msg.Content)
	}
	if msg.AuthorID() != "@alice:example.com" {
		t.Errorf("AuthorID: got %q", msg.AuthorID())
	}
	if msg.ChannelID() != "!room:example.com" {
		t.Errorf("ChannelID: got %q", msg.ChannelID())
	}
	if msg.CreatedAt.UnixMilli() != 1712345678000 {
		t.Errorf("CreatedAt: got %v", msg.CreatedAt)
	}
}

func TestFromEventFormattedBody(t *testing.T) {
	t.Parallel()
	evt := messageEvent(&event.MessageEventContent{
		MsgType:       event.MsgText,
		Body:          "bold",
		Format:        event.FormatHTML,
		FormattedBody: "<b>bold</b>",
	})
	msg := FromEvent(evt)
	if msg.FormattedContent != "<b>bold</b>" {
		t.Errorf("FormattedContent: got %q", msg.FormattedContent)
	}
}

func TestFromEventThread(t *testing.T) {
	t.Parallel()
	evt := messageEvent(&event.MessageEventContent{
		MsgType: event.MsgText,
		Body:    "threaded",
		RelatesTo: &event.RelatesTo{
			Type:    event.RelThread,
			EventID: id.EventID("$root"),
		},
	})
	msg := FromEvent(evt)
	if msg.ThreadID() != "$root" {
		t.Errorf("ThreadID: got %q, want %q", msg.ThreadID(), "$root")
	}
}

func TestFromEventReply(t *testing.T) {
	t.Parallel()
	rel := (&event.RelatesTo{}).SetReplyTo(id.EventID("$orig"))
	evt := messageEvent(&event.MessageEventContent{
		MsgType:   event.MsgText,
		Body:      "replying",
		RelatesTo: rel,
	})
	msg := FromEvent(evt)
	if msg.Type != chatom.MessageTypeReply {
		t.Errorf("Type: got %q, want reply", msg.Type)
	}
	if msg.Reference == nil || msg.Reference.MessageID != "$orig" {
		t.Errorf("Reference: got %+v", msg.Reference)
	}
}
