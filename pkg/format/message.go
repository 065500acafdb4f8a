// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package format

import "strings"

// Attachment describes a file carried alongside formatted content. It is an
// independent copy, never shared with the platform entity it came from.
type Attachment struct {
	Filename    string
	URL         string
	ContentType string
	Size        int64
}

// FormattedMessage is the backend-agnostic intermediate representation of a
// message: typed spans, attachment descriptors, and an open metadata map.
type FormattedMessage struct {
	Spans       []Span
	Attachments []Attachment
	Metadata    map[string]any
}

// New returns an empty FormattedMessage with initialized metadata.
func New() *FormattedMessage {
	return &FormattedMessage{Metadata: map[string]any{}}
}

// AddText appends a plain text span. Empty text is ignored.
func (m *FormattedMessage) AddText(text string) {
	if text == "" {
		return
	}
	m.Spans = append(m.Spans, Span{Type: SpanText, Text: text})
}

// AddSpan appends an arbitrary span.
func (m *FormattedMessage) AddSpan(span Span) {
	m.Spans = append(m.Spans, span)
}

// AddAttachment appends an attachment descriptor.
func (m *FormattedMessage) AddAttachment(att Attachment) {
	m.Attachments = append(m.Attachments, att)
}

// SetMeta stores a metadata value, initializing the map if needed.
func (m *FormattedMessage) SetMeta(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = map[string]any{}
	}
	m.Metadata[key] = value
}

// Meta returns a metadata value, or nil when absent.
func (m *FormattedMessage) Meta(key string) any {
	if m.Metadata == nil {
		return nil
	}
	return m.Metadata[key]
}

// IsEmpty reports whether the message carries no spans and no attachments.
func (m *FormattedMessage) IsEmpty() bool {
	return len(m.Spans) == 0 && len(m.Attachments) == 0
}

// Render concatenates all spans in the given dialect. Malformed span
// structures render best-effort; rendering never fails.
func (m *FormattedMessage) Render(f Format) string {
	var b strings.Builder
	for _, span := range m.Spans {
		b.WriteString(span.render(f))
	}
	return b.String()
}

// RenderFor renders the spans in the dialect of the named backend.
func (m *FormattedMessage) RenderFor(backend string) string {
	return m.Render(ForBackend(backend))
}
