// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package email

import (
	"regexp"
	"testing"

	"github.com/aiku/chatom/pkg/chatom"
)

func TestUserMention(t *testing.T) {
	t.Parallel()
	u := &User{User: chatom.User{
		Identifiable: chatom.Identifiable{Name: "Alice"},
		Email:        "alice@example.com",
	}}
	want := "<a href='mailto:alice@example.com'>Alice</a>"
	if got := u.Mention(); got != want {
		t.Errorf("Mention: got %q, want %q", got, want)
	}
	noAddr := &User{User: chatom.User{Identifiable: chatom.Identifiable{Name: "Bob"}}}
	if got := noAddr.Mention(); got != "Bob" {
		t.Errorf("Mention fallback: got %q, want %q", got, "Bob")
	}
}

func TestNewMessageID(t *testing.T) {
	t.Parallel()
	idRe := regexp.MustCompile(`^<[0-9a-f-]{36}@example\.com>$`)
	got := NewMessageID("example.com")
	if !idRe.MatchString(got) {
		t.Errorf("NewMessageID: got %q", got)
	}
	if NewMessageID("example.com") == got {
		t.Error("Message-IDs should be unique")
	}
	if defaulted := NewMessageID(""); defaulted == "" {
		t.Error("empty domain should still produce an ID")
	}
}

func TestReplySubject(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"status update", "Re: status update"},
		{"Re: status update", "Re: status update"},
		{"RE: status update", "RE: status update"},
		{"", "Re: "},
	}
	for _, tt := range tests {
		if got := ReplySubject(tt.in); got != tt.want {
			t.Errorf("ReplySubject(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromChatom(t *testing.T) {
	t.Parallel()
	orig := chatom.NewMessage("body text", "email")
	orig.ReplyTo = &chatom.Message{Identifiable: chatom.Identifiable{ID: "<root@example.com>"}}
	em := FromChatom(orig, "hello", "me@example.com", []string{"you@example.com"})
	if em.Subject != "hello" || em.From != "me@example.com" {
		t.Errorf("headers: got %+v", em)
	}
	if em.ID == "" {
		t.Error("a Message-ID should be generated")
	}
	if em.InReplyTo != "<root@example.com>" {
		t.Errorf("InReplyTo: got %q", em.InReplyTo)
	}
	if len(em.References) != 1 || em.References[0] != "<root@example.com>" {
		t.Errorf("References: got %v", em.References)
	}
}

func TestFromChatomFormattedContent(t *testing.T) {
	t.Parallel()
	orig := chatom.NewMessage("plain", "email",
		chatom.WithFormattedContent("<p>rich</p>"),
	)
	em := FromChatom(orig, "s", "a@b.c", []string{"d@e.f"})
	if em.HTMLBody != "<p>rich</p>" {
		t.Errorf("HTMLBody: got %q", em.HTMLBody)
	}
	if em.Content != "plain" {
		t.Errorf("Content: got %q", em.Content)
	}
}
