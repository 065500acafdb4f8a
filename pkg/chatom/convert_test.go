// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import (
	"testing"

	"github.com/aiku/chatom/pkg/format"
)

func TestToFormattedMetadata(t *testing.T) {
	t.Parallel()
	m := NewMessage("hello", "slack",
		WithID("M1"),
		WithAuthor(NewUser("U1", "alice", "alice")),
		WithChannel(&Channel{Identifiable: Identifiable{ID: "C1"}}),
	)
	fm := m.ToFormatted()
	if got := fm.Render(format.Plaintext); got != "hello" {
		t.Errorf("Render: got %q, want %q", got, "hello")
	}
	if fm.Meta("source_backend") != "slack" {
		t.Errorf("source_backend: got %v", fm.Meta("source_backend"))
	}
	if fm.Meta("message_id") != "M1" {
		t.Errorf("message_id: got %v", fm.Meta("message_id"))
	}
	if fm.Meta("author_id") != "U1" {
		t.Errorf("author_id: got %v", fm.Meta("author_id"))
	}
	if fm.Meta("channel_id") != "C1" {
		t.Errorf("channel_id: got %v", fm.Meta("channel_id"))
	}
}

func TestToFormattedPrefersFormattedContent(t *testing.T) {
	t.Parallel()
	m := NewMessage("plain", "matrix",
		WithFormattedContent("<b>rich</b>"),
	)
	fm := m.ToFormatted()
	if got := fm.Render(format.Plaintext); got != "<b>rich</b>" {
		t.Errorf("Render: got %q, want %q", got, "<b>rich</b>")
	}
}

func TestToFormattedCopiesAttachments(t *testing.T) {
	t.Parallel()
	m := NewMessage("see file", "discord",
		WithAttachments(Attachment{
			Filename:    "report.pdf",
			URL:         "https://cdn.example/report.pdf",
			ContentType: "application/pdf",
			Size:        2048,
		}),
	)
	fm := m.ToFormatted()
	if len(fm.Attachments) != 1 {
		t.Fatalf("Attachments: got %d, want 1", len(fm.Attachments))
	}
	att := fm.Attachments[0]
	if att.Filename != "report.pdf" || att.Size != 2048 {
		t.Errorf("attachment: got %+v", att)
	}
}

func TestFromFormatted(t *testing.T) {
	t.Parallel()
	fm := format.NewBuilder().
		Text("status: ").
		Bold("up").
		Meta("origin", "probe").
		Build()

	slackMsg := FromFormatted(fm, "slack")
	if slackMsg.Content != "status: *up*" {
		t.Errorf("slack content: got %q", slackMsg.Content)
	}
	if slackMsg.Backend != "slack" {
		t.Errorf("Backend: got %q, want %q", slackMsg.Backend, "slack")
	}
	if slackMsg.Metadata["origin"] != "probe" {
		t.Errorf("metadata should be copied, got %v", slackMsg.Metadata)
	}

	discordMsg := FromFormatted(fm, "discord")
	if discordMsg.Content != "status: **up**" {
		t.Errorf("discord content: got %q", discordMsg.Content)
	}

	bare := FromFormatted(fm, "")
	if bare.Content != "status: up" {
		t.Errorf("empty backend should render plaintext, got %q", bare.Content)
	}
}

func TestPlainTextRoundTrip(t *testing.T) {
	t.Parallel()
	// Plain spans render byte-identically in every dialect, so converting a
	// plain message between backends must preserve the text exactly.
	original := NewMessage("just words, no markup", "irc")
	for _, target := range []string{"discord", "slack", "matrix", "symphony", "email", "irc", "mattermost"} {
		converted := FromFormatted(original.ToFormatted(), target)
		if converted.Content != original.Content {
			t.Errorf("%s: got %q, want %q", target, converted.Content, original.Content)
		}
	}
}

func TestRenderFor(t *testing.T) {
	t.Parallel()
	m := NewMessage("opaque **text**", "discord")
	// Content is treated as opaque: no re-parsing into markup spans.
	if got := m.RenderFor("slack"); got != "opaque **text**" {
		t.Errorf("RenderFor: got %q", got)
	}
}
