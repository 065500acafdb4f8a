// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package slack

import (
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/aiku/chatom/pkg/chatom"
)

func TestUserMention(t *testing.T) {
	t.Parallel()
	u := &User{User: chatom.User{Identifiable: chatom.Identifiable{ID: "U04AB"}}}
	if got := u.Mention(); got != "<@U04AB>" {
		t.Errorf("Mention: got %q, want %q", got, "<@U04AB>")
	}
	if got := chatom.MentionUser(u); got != "<@U04AB>" {
		t.Errorf("MentionUser: got %q, want %q", got, "<@U04AB>")
	}
}

func TestTsTime(t *testing.T) {
	t.Parallel()
	got := TsTime("1712345678.000200")
	want := time.Unix(1712345678, 200*int64(time.Microsecond)).UTC()
	if !got.Equal(want) {
		t.Errorf("TsTime: got %v, want %v", got, want)
	}
	if !TsTime("garbage").IsZero() {
		t.Error("TsTime should return zero time for malformed input")
	}
}

func TestThreadPredicates(t *testing.T) {
	t.Parallel()
	parent := &Message{Ts: "100.1", ThreadTs: "100.1"}
	if !parent.IsThreadParent() || parent.IsThreadReply() {
		t.Error("message whose ts equals thread_ts is the thread parent")
	}
	reply := &Message{Ts: "100.2", ThreadTs: "100.1"}
	if !reply.IsThreadReply() || reply.IsThreadParent() {
		t.Error("message whose ts differs from thread_ts is a thread reply")
	}
	plain := &Message{Ts: "100.3"}
	if plain.IsThreadReply() || plain.IsThreadParent() {
		t.Error("unthreaded message is neither parent nor reply")
	}
}

func TestFromSlackMsg(t *testing.T) {
	t.Parallel()
	sm := &slackapi.Msg{
		Timestamp:       "1712345678.000200",
		ThreadTimestamp: "1712345670.000100",
		Channel:         "C024BE7LR",
		User:            "U1",
		Text:            "hi <@U2>",
	}
	msg := FromSlackMsg(sm)
	if msg.ID != sm.Timestamp {
		t.Errorf("ID: got %q, want ts %q", msg.ID, sm.Timestamp)
	}
	if msg.Backend != "slack" {
		t.Errorf("Backend: got %q", msg.Backend)
	}
	if !msg.IsThreadReply() {
		t.Error("message should be a thread reply")
	}
	if msg.Thread == nil || msg.Thread.ID != "1712345670.000100" {
		t.Errorf("Thread: got %+v", msg.Thread)
	}
	if msg.AuthorID() != "U1" || msg.ChannelID() != "C024BE7LR" {
		t.Errorf("IDs: author %q channel %q", msg.AuthorID(), msg.ChannelID())
	}
	if len(msg.Mentions) != 1 || msg.Mentions[0].ID != "U2" {
		t.Errorf("Mentions: got %+v", msg.Mentions)
	}
	if msg.Author == nil || msg.Author.IsComplete() {
		t.Error("author should be an incomplete reference")
	}
}

func TestFromSlackMsgBot(t *testing.T) {
	t.Parallel()
	msg := FromSlackMsg(&slackapi.Msg{
		Timestamp: "1.0",
		BotID:     "B1",
		SubType:   "bot_message",
	})
	if !msg.IsBotMessage() {
		t.Error("bot_message subtype should be detected")
	}
	if msg.Type != chatom.MessageTypeDefault {
		t.Errorf("Type: got %q, want default", msg.Type)
	}
}

func TestFromSlackChannel(t *testing.T) {
	t.Parallel()
	sc := &slackapi.Channel{}
	sc.ID = "C1"
	sc.Name = "general"
	sc.IsPrivate = true
	ch := FromSlackChannel(sc)
	if ch.ChannelType != chatom.ChannelTypePrivate {
		t.Errorf("ChannelType: got %q, want private", ch.ChannelType)
	}

	im := &slackapi.Channel{}
	im.ID = "D1"
	im.IsIM = true
	if got := FromSlackChannel(im); got.ChannelType != chatom.ChannelTypeDirect {
		t.Errorf("IM ChannelType: got %q, want direct", got.ChannelType)
	}
}

func TestPresenceFromSlack(t *testing.T) {
	t.Parallel()
	u := chatom.NewUser("U1", "alice", "alice")
	if p := PresenceFromSlack(u, "active"); p.Status != chatom.PresenceOnline {
		t.Errorf("active: got %q", p.Status)
	}
	if p := PresenceFromSlack(u, "away"); p.Status != chatom.PresenceIdle {
		t.Errorf("away: got %q", p.Status)
	}
	if p := PresenceFromSlack(u, ""); p.Status != chatom.PresenceUnknown {
		t.Errorf("empty: got %q", p.Status)
	}
}

func TestToSlackPresence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status chatom.PresenceStatus
		want   string
	}{
		{chatom.PresenceOnline, "active"},
		{chatom.PresenceIdle, "away"},
		{chatom.PresenceDND, "away"},
		{chatom.PresenceInvisible, "away"},
		{chatom.PresenceOffline, "away"},
		{chatom.PresenceUnknown, "auto"},
	}
	for _, tt := range tests {
		if got := ToSlackPresence(tt.status); got != tt.want {
			t.Errorf("ToSlackPresence(%q): got %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestArchiveLink(t *testing.T) {
	t.Parallel()
	got := ArchiveLink("acme", "C024BE7LR", "1712345678.000200")
	want := "https://acme.slack.com/archives/C024BE7LR/p1712345678000200"
	if got != want {
		t.Errorf("ArchiveLink: got %q, want %q", got, want)
	}
	if ArchiveLink("", "C1", "1.0") != "" {
		t.Error("missing domain should yield empty link")
	}
}
