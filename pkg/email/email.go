// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package email treats mail threads as channels: a channel is the set of
// participants, a thread is keyed by the root Message-ID, and mentions are
// mailto anchors in the HTML body.
package email

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is an email participant.
type User struct {
	chatom.User
}

func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	if u.Email == "" {
		return u.Name
	}
	return fmt.Sprintf("<a href='mailto:%s'>%s</a>", u.Email, u.Name)
}

// Message is an email. The chatom ID is the RFC 5322 Message-ID; threads
// follow the In-Reply-To chain back to the root message.
type Message struct {
	chatom.Message

	Subject    string   `yaml:"subject" json:"subject"`
	From       string   `yaml:"from" json:"from"`
	To         []string `yaml:"to" json:"to"`
	Cc         []string `yaml:"cc,omitempty" json:"cc,omitempty"`
	InReplyTo  string   `yaml:"in_reply_to,omitempty" json:"in_reply_to,omitempty"`
	References []string `yaml:"references,omitempty" json:"references,omitempty"`
	// HTMLBody is the text/html alternative, empty for plaintext-only mail.
	HTMLBody string `yaml:"html_body,omitempty" json:"html_body,omitempty"`
}

// NewMessageID generates an RFC 5322 Message-ID under domain.
func NewMessageID(domain string) string {
	if domain == "" {
		domain = "chatom.local"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// ReplySubject prefixes subject with "Re: " unless it already is a reply.
func ReplySubject(subject string) string {
	if len(subject) >= 3 && (subject[:3] == "Re:" || subject[:3] == "RE:") {
		return subject
	}
	return "Re: " + subject
}

// FromChatom wraps a unified message as an email, generating a Message-ID
// when the message has none and rendering formatted content to HTML.
func FromChatom(msg *chatom.Message, subject, from string, to []string) *Message {
	em := &Message{
		Message: *msg,
		Subject: subject,
		From:    from,
		To:      to,
	}
	em.Backend = "email"
	if em.ID == "" {
		em.ID = NewMessageID("")
	}
	if msg.FormattedContent != "" {
		em.HTMLBody = msg.FormattedContent
	}
	if rid := msg.ReplyToID(); rid != "" {
		em.InReplyTo = rid
		em.References = append(em.References, rid)
	}
	return em
}
