// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package format

import "html"

// SpanType discriminates the variant stored in a Span.
type SpanType string

const (
	SpanText      SpanType = "text"
	SpanBold      SpanType = "bold"
	SpanItalic    SpanType = "italic"
	SpanStrike    SpanType = "strike"
	SpanCode      SpanType = "code"
	SpanCodeBlock SpanType = "code_block"
	SpanLink      SpanType = "link"
)

// Span is a single typed run of message content.
type Span struct {
	Type SpanType
	Text string
	// URL is set for SpanLink.
	URL string
	// Language is an optional syntax hint for SpanCodeBlock.
	Language string
}

// render writes the span in the given dialect. Plain text spans render
// byte-identically in every dialect; that property is what makes the
// plaintext round trip exact.
func (s Span) render(f Format) string {
	switch s.Type {
	case SpanBold:
		switch f {
		case Markdown:
			return "**" + s.Text + "**"
		case SlackMarkdown:
			return "*" + s.Text + "*"
		case HTML, MessageML:
			return "<b>" + html.EscapeString(s.Text) + "</b>"
		default:
			return s.Text
		}
	case SpanItalic:
		switch f {
		case Markdown, SlackMarkdown:
			return "_" + s.Text + "_"
		case HTML, MessageML:
			return "<i>" + html.EscapeString(s.Text) + "</i>"
		default:
			return s.Text
		}
	case SpanStrike:
		switch f {
		case Markdown:
			return "~~" + s.Text + "~~"
		case SlackMarkdown:
			return "~" + s.Text + "~"
		case HTML, MessageML:
			return "<s>" + html.EscapeString(s.Text) + "</s>"
		default:
			return s.Text
		}
	case SpanCode:
		switch f {
		case Markdown, SlackMarkdown:
			return "`" + s.Text + "`"
		case HTML, MessageML:
			return "<code>" + html.EscapeString(s.Text) + "</code>"
		default:
			return s.Text
		}
	case SpanCodeBlock:
		switch f {
		case Markdown:
			return "```" + s.Language + "\n" + s.Text + "\n```"
		case SlackMarkdown:
			// Slack ignores language hints.
			return "```\n" + s.Text + "\n```"
		case HTML, MessageML:
			if s.Language != "" {
				return `<pre><code class="language-` + html.EscapeString(s.Language) + `">` + html.EscapeString(s.Text) + "</code></pre>"
			}
			return "<pre><code>" + html.EscapeString(s.Text) + "</code></pre>"
		default:
			return s.Text
		}
	case SpanLink:
		text := s.Text
		if text == "" {
			text = s.URL
		}
		switch f {
		case Markdown:
			return "[" + text + "](" + s.URL + ")"
		case SlackMarkdown:
			return "<" + s.URL + "|" + text + ">"
		case HTML, MessageML:
			return `<a href="` + s.URL + `">` + html.EscapeString(text) + "</a>"
		default:
			if s.URL == "" || s.URL == text {
				return text
			}
			return text + " (" + s.URL + ")"
		}
	default:
		return s.Text
	}
}
