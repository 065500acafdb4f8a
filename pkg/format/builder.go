// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package format

// Builder assembles a FormattedMessage span by span.
//
//	fm := format.NewBuilder().Bold("Alert").Text(": check this").Build()
//	fm.Render(format.SlackMarkdown) // "*Alert*: check this"
type Builder struct {
	msg *FormattedMessage
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{msg: New()}
}

// Text appends a plain text span.
func (b *Builder) Text(text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanText, Text: text})
	return b
}

// Bold appends a bold span.
func (b *Builder) Bold(text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanBold, Text: text})
	return b
}

// Italic appends an italic span.
func (b *Builder) Italic(text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanItalic, Text: text})
	return b
}

// Strike appends a strikethrough span.
func (b *Builder) Strike(text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanStrike, Text: text})
	return b
}

// Code appends an inline code span.
func (b *Builder) Code(text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanCode, Text: text})
	return b
}

// CodeBlock appends a fenced code block span with an optional language hint.
func (b *Builder) CodeBlock(language, text string) *Builder {
	b.msg.AddSpan(Span{Type: SpanCodeBlock, Text: text, Language: language})
	return b
}

// Link appends a hyperlink span.
func (b *Builder) Link(text, url string) *Builder {
	b.msg.AddSpan(Span{Type: SpanLink, Text: text, URL: url})
	return b
}

// Newline appends a literal line break as a plain text span.
func (b *Builder) Newline() *Builder {
	b.msg.AddSpan(Span{Type: SpanText, Text: "\n"})
	return b
}

// Attachment appends an attachment descriptor.
func (b *Builder) Attachment(att Attachment) *Builder {
	b.msg.AddAttachment(att)
	return b
}

// Meta stores a metadata value.
func (b *Builder) Meta(key string, value any) *Builder {
	b.msg.SetMeta(key, value)
	return b
}

// Build returns the assembled FormattedMessage.
func (b *Builder) Build() *FormattedMessage {
	return b.msg
}
