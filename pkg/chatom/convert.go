// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "github.com/aiku/chatom/pkg/format"

// ToFormatted lifts the message into the backend-agnostic intermediate
// representation. FormattedContent, when set, is preferred over Content as
// the richer rendition; either way the text is carried as a single opaque
// plain span, never re-parsed into markup spans. Attachments are copied
// into independent descriptors, and the metadata always carries
// source_backend and message_id (plus author_id / channel_id when known).
func (m *Message) ToFormatted() *format.FormattedMessage {
	fm := format.New()

	text := m.FormattedContent
	if text == "" {
		text = m.Content
	}
	fm.AddText(text)

	for _, att := range m.Attachments {
		fm.AddAttachment(format.Attachment{
			Filename:    att.Filename,
			URL:         att.URL,
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}

	fm.SetMeta("source_backend", m.Backend)
	fm.SetMeta("message_id", m.ID)
	if id := m.AuthorID(); id != "" {
		fm.SetMeta("author_id", id)
	}
	if id := m.ChannelID(); id != "" {
		fm.SetMeta("channel_id", id)
	}

	return fm
}

// FromFormatted renders a FormattedMessage into a new message for the
// target backend: the spans are rendered in the backend's dialect (plain
// text when the backend name is empty), formatted attachments become native
// attachments, and the metadata map is copied. Options apply on top of the
// computed fields.
func FromFormatted(fm *format.FormattedMessage, backend string, opts ...Option) *Message {
	target := format.Plaintext
	if backend != "" {
		target = format.ForBackend(backend)
	}

	var attachments []Attachment
	for _, att := range fm.Attachments {
		attachments = append(attachments, Attachment{
			Filename:    att.Filename,
			URL:         att.URL,
			ContentType: att.ContentType,
			Size:        att.Size,
		})
	}

	metadata := make(map[string]any, len(fm.Metadata))
	for k, v := range fm.Metadata {
		metadata[k] = v
	}

	m := &Message{
		Content:     fm.Render(target),
		Type:        MessageTypeDefault,
		Backend:     backend,
		Attachments: attachments,
		Metadata:    metadata,
	}
	m.apply(opts)
	return m
}

// RenderFor converts the message's content into the named backend's
// dialect: ToFormatted followed by a dialect render. Content that already
// carries backend-specific markup is treated as opaque text, so the
// conversion is lossless only for plain text.
func (m *Message) RenderFor(backend string) string {
	return m.ToFormatted().RenderFor(backend)
}
