// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "time"

// MessageType classifies a message.
type MessageType string

const (
	MessageTypeDefault       MessageType = "default"
	MessageTypeReply         MessageType = "reply"
	MessageTypeSystem        MessageType = "system"
	MessageTypeJoin          MessageType = "join"
	MessageTypeLeave         MessageType = "leave"
	MessageTypePin           MessageType = "pin"
	MessageTypeThreadCreated MessageType = "thread_created"
	MessageTypeForward       MessageType = "forward"
	MessageTypeCall          MessageType = "call"
	MessageTypeUnknown       MessageType = "unknown"
)

// MessageReference is a lightweight cross-message pointer made of plain ID
// strings. Unlike ReplyTo and ForwardedFrom it carries no ownership of the
// referenced message.
type MessageReference struct {
	MessageID string `yaml:"message_id,omitempty" json:"message_id,omitempty"`
	ChannelID string `yaml:"channel_id,omitempty" json:"channel_id,omitempty"`
	GuildID   string `yaml:"guild_id,omitempty" json:"guild_id,omitempty"`
}

// Message is a message on a chat platform.
//
// Author, Channel, Thread, ReplyTo, and ForwardedFrom are shared references:
// the referenced entity's lifetime is independent of the message, and the
// same User or Channel is commonly referenced from many messages at once.
type Message struct {
	Identifiable `yaml:",inline"`

	// Content is the message text in the backend's native markup.
	Content string   `yaml:"content,omitempty" json:"content,omitempty"`
	Author  *User    `yaml:"author,omitempty" json:"author,omitempty"`
	Channel *Channel `yaml:"channel,omitempty" json:"channel,omitempty"`
	Thread  *Thread  `yaml:"thread,omitempty" json:"thread,omitempty"`
	// Organization the message belongs to, if applicable.
	Organization *Organization `yaml:"organization,omitempty" json:"organization,omitempty"`
	Type         MessageType   `yaml:"message_type,omitempty" json:"message_type,omitempty"`

	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	EditedAt  time.Time `yaml:"edited_at,omitempty" json:"edited_at,omitempty"`
	IsEdited  bool      `yaml:"is_edited,omitempty" json:"is_edited,omitempty"`
	IsPinned  bool      `yaml:"is_pinned,omitempty" json:"is_pinned,omitempty"`
	IsBot     bool      `yaml:"is_bot,omitempty" json:"is_bot,omitempty"`
	IsSystem  bool      `yaml:"is_system,omitempty" json:"is_system,omitempty"`

	// Mentions lists users the backend already parsed out of the message.
	// For mentions still embedded in Content, see MentionedUserIDs.
	Mentions    []*User      `yaml:"mentions,omitempty" json:"mentions,omitempty"`
	Attachments []Attachment `yaml:"attachments,omitempty" json:"attachments,omitempty"`
	Embeds      []Embed      `yaml:"embeds,omitempty" json:"embeds,omitempty"`
	Reactions   []Reaction   `yaml:"reactions,omitempty" json:"reactions,omitempty"`

	// Reference points at another message by ID (replies, forwards).
	Reference *MessageReference `yaml:"reference,omitempty" json:"reference,omitempty"`
	// ReplyTo is the message this one replies to.
	ReplyTo *Message `yaml:"reply_to,omitempty" json:"reply_to,omitempty"`
	// ForwardedFrom is the original message if this one is a forward.
	ForwardedFrom *Message `yaml:"forwarded_from,omitempty" json:"forwarded_from,omitempty"`

	// FormattedContent is the rich rendition of Content (HTML, MessageML,
	// ...). It is treated as an opaque pre-rendered string, never re-parsed.
	FormattedContent string `yaml:"formatted_content,omitempty" json:"formatted_content,omitempty"`
	// Raw is the unmodified backend payload the message was built from.
	Raw any `yaml:"-" json:"-"`
	// Backend names the platform this message originated from ("slack",
	// "discord", ...).
	Backend  string         `yaml:"backend,omitempty" json:"backend,omitempty"`
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Option overrides a computed field on a message under construction. The
// convenience constructors and FromFormatted apply options after their own
// defaults.
type Option func(*Message)

// WithID sets the message ID.
func WithID(id string) Option { return func(m *Message) { m.ID = id } }

// WithAuthor sets the message author.
func WithAuthor(u *User) Option { return func(m *Message) { m.Author = u } }

// WithChannel sets the message channel.
func WithChannel(c *Channel) Option { return func(m *Message) { m.Channel = c } }

// WithThread sets the message thread.
func WithThread(t *Thread) Option { return func(m *Message) { m.Thread = t } }

// WithOrganization sets the owning organization.
func WithOrganization(o *Organization) Option { return func(m *Message) { m.Organization = o } }

// WithType sets the message type.
func WithType(t MessageType) Option { return func(m *Message) { m.Type = t } }

// WithCreatedAt sets the creation time.
func WithCreatedAt(t time.Time) Option { return func(m *Message) { m.CreatedAt = t } }

// WithMentions sets the pre-parsed mention list.
func WithMentions(users ...*User) Option { return func(m *Message) { m.Mentions = users } }

// WithAttachments sets the attachment list.
func WithAttachments(atts ...Attachment) Option { return func(m *Message) { m.Attachments = atts } }

// WithEmbeds sets the embed list.
func WithEmbeds(embeds ...Embed) Option { return func(m *Message) { m.Embeds = embeds } }

// WithReference sets the lightweight message reference.
func WithReference(ref *MessageReference) Option { return func(m *Message) { m.Reference = ref } }

// WithFormattedContent sets the rich content rendition.
func WithFormattedContent(s string) Option { return func(m *Message) { m.FormattedContent = s } }

// WithRaw attaches the raw backend payload.
func WithRaw(raw any) Option { return func(m *Message) { m.Raw = raw } }

// WithMeta stores one metadata key.
func WithMeta(key string, value any) Option {
	return func(m *Message) {
		if m.Metadata == nil {
			m.Metadata = map[string]any{}
		}
		m.Metadata[key] = value
	}
}

// NewMessage creates a message with the given content and backend name,
// applying any options on top.
func NewMessage(content, backend string, opts ...Option) *Message {
	m := &Message{
		Content: content,
		Type:    MessageTypeDefault,
		Backend: backend,
	}
	m.apply(opts)
	return m
}

func (m *Message) apply(opts []Option) {
	for _, opt := range opts {
		opt(m)
	}
}

// AuthorID returns the author's ID, or "" without an author.
func (m *Message) AuthorID() string {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID
}

// ChannelID returns the channel's ID, or "" without a channel.
func (m *Message) ChannelID() string {
	if m.Channel == nil {
		return ""
	}
	return m.Channel.ID
}

// ThreadID returns the thread's ID, or "" without a thread.
func (m *Message) ThreadID() string {
	if m.Thread == nil {
		return ""
	}
	return m.Thread.ID
}

// ReplyToID returns the replied-to message's ID, or "" when not a reply.
func (m *Message) ReplyToID() string {
	if m.ReplyTo == nil {
		return ""
	}
	return m.ReplyTo.ID
}

// ForwardedFromID returns the original message's ID, or "" when not a forward.
func (m *Message) ForwardedFromID() string {
	if m.ForwardedFrom == nil {
		return ""
	}
	return m.ForwardedFrom.ID
}

// AuthorName returns the author's name, falling back to the "author_name"
// metadata key.
func (m *Message) AuthorName() string {
	if m.Author != nil && m.Author.Name != "" {
		return m.Author.Name
	}
	if v, ok := m.Metadata["author_name"].(string); ok {
		return v
	}
	return ""
}

// ChannelName returns the channel's name, falling back to the
// "channel_name" metadata key.
func (m *Message) ChannelName() string {
	if m.Channel != nil && m.Channel.Name != "" {
		return m.Channel.Name
	}
	if v, ok := m.Metadata["channel_name"].(string); ok {
		return v
	}
	return ""
}

// IsReply reports whether this message replies to another.
func (m *Message) IsReply() bool {
	return m.Type == MessageTypeReply || m.Reference != nil || m.ReplyTo != nil
}

// IsForwarded reports whether this message was forwarded from another.
func (m *Message) IsForwarded() bool {
	return m.Type == MessageTypeForward || m.ForwardedFrom != nil
}

// IsInThread reports whether this message is part of a thread.
func (m *Message) IsInThread() bool {
	return m.Thread != nil
}

// IsDM reports whether the message was sent in a direct message channel,
// falling back to the "is_dm" / "is_im" metadata keys.
func (m *Message) IsDM() bool {
	if m.Channel != nil {
		return m.Channel.IsDM()
	}
	if v, ok := m.Metadata["is_dm"].(bool); ok && v {
		return true
	}
	if v, ok := m.Metadata["is_im"].(bool); ok && v {
		return true
	}
	return false
}

// HasAttachments reports whether the message carries attachments.
func (m *Message) HasAttachments() bool {
	return len(m.Attachments) > 0
}

// HasEmbeds reports whether the message carries embeds.
func (m *Message) HasEmbeds() bool {
	return len(m.Embeds) > 0
}

// MentionIDs returns the IDs of the pre-parsed mentioned users, skipping
// users without an ID.
func (m *Message) MentionIDs() []string {
	ids := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		if u != nil && u.ID != "" {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// MentionedUserIDs parses Content with the backend's mention syntax and
// returns the user IDs found, in match order. It returns nil when either
// Content or Backend is empty.
func (m *Message) MentionedUserIDs() []string {
	if m.Content == "" || m.Backend == "" {
		return nil
	}
	return ExtractMentionIDs(m.Content, m.Backend)
}

// MentionedChannelIDs parses Content with the backend's channel mention
// syntax and returns the channel IDs found, in match order.
func (m *Message) MentionedChannelIDs() []string {
	if m.Content == "" || m.Backend == "" {
		return nil
	}
	return ExtractChannelIDs(m.Content, m.Backend)
}

// MentionsUser reports whether the given user ID appears either in the
// pre-parsed mention list or in the message content.
func (m *Message) MentionsUser(userID string) bool {
	for _, u := range m.Mentions {
		if u != nil && u.ID == userID {
			return true
		}
	}
	for _, id := range m.MentionedUserIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

// ReplyContext bundles the objects useful for manually constructing a reply.
type ReplyContext struct {
	Channel *Channel
	Message *Message
	Thread  *Thread
	Author  *User
}

// Context returns the reply context for this message.
func (m *Message) Context() ReplyContext {
	return ReplyContext{
		Channel: m.Channel,
		Message: m,
		Thread:  m.Thread,
		Author:  m.Author,
	}
}
