// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import (
	"fmt"
	"strings"
)

// Convenience constructors deriving a new message from an existing one.
// Each is a pure constructor: no I/O, no mutation of the receiver. Computed
// defaults come first, caller options are applied on top.

// AsReply creates a reply to this message: same channel, same backend,
// ReplyTo pointing at the receiver.
func (m *Message) AsReply(content string, opts ...Option) *Message {
	reply := &Message{
		Content: content,
		Channel: m.Channel,
		ReplyTo: m,
		Type:    MessageTypeReply,
		Backend: m.Backend,
	}
	reply.apply(opts)
	return reply
}

// AsThreadReply creates a reply in this message's thread. If the receiver
// is already threaded the reply joins that thread; otherwise a new thread
// is started on the receiver, with the thread ID equal to the receiver's ID.
func (m *Message) AsThreadReply(content string, opts ...Option) *Message {
	reply := &Message{
		Content: content,
		Channel: m.Channel,
		Thread:  m.threadOrNew(),
		ReplyTo: m,
		Type:    MessageTypeReply,
		Backend: m.Backend,
	}
	reply.apply(opts)
	return reply
}

// AsQuoteReply creates a threaded reply that quotes the receiver: every line
// of the original content is prefixed with "> ", followed by a blank line
// and the new content. Threading behaves like AsThreadReply.
func (m *Message) AsQuoteReply(content string, opts ...Option) *Message {
	lines := strings.Split(m.Content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	quoted := strings.Join(lines, "\n")

	reply := &Message{
		Content: quoted + "\n\n" + content,
		Channel: m.Channel,
		Thread:  m.threadOrNew(),
		ReplyTo: m,
		Type:    MessageTypeReply,
		Backend: m.Backend,
	}
	reply.apply(opts)
	return reply
}

// AsForward creates a forward of this message into targetChannel, with
// attribution to the original author and channel prepended to the content.
func (m *Message) AsForward(targetChannel *Channel, opts ...Option) *Message {
	authorName := m.AuthorName()
	if authorName == "" {
		authorName = "Unknown"
	}
	channelName := m.ChannelName()
	if channelName == "" {
		if m.Channel != nil && m.Channel.ID != "" {
			channelName = m.Channel.ID
		} else {
			channelName = "unknown"
		}
	}

	forward := &Message{
		Content:       fmt.Sprintf("[Forwarded from %s in #%s]\n%s", authorName, channelName, m.Content),
		Channel:       targetChannel,
		ForwardedFrom: m,
		Type:          MessageTypeForward,
		Backend:       m.Backend,
	}
	forward.apply(opts)
	return forward
}

// AsDMToAuthor creates a message addressed directly to this message's
// author. The returned message's channel is an incomplete DIRECT channel
// that a backend adapter must resolve (look up or create the DM) before
// sending. It fails with ErrNoAuthor when the receiver has no author.
func (m *Message) AsDMToAuthor(content string, opts ...Option) (*Message, error) {
	if m.Author == nil {
		return nil, fmt.Errorf("cannot create DM: %w", ErrNoAuthor)
	}

	dm := &Message{
		Content: content,
		Channel: DMTo(m.Author),
		Backend: m.Backend,
	}
	dm.apply(opts)
	return dm, nil
}

// threadOrNew returns the receiver's thread, or a fresh thread rooted on
// the receiver.
func (m *Message) threadOrNew() *Thread {
	if m.Thread != nil {
		return m.Thread
	}
	return &Thread{
		Identifiable:  Identifiable{ID: m.ID},
		ParentChannel: m.Channel,
		ParentMessage: m,
	}
}
