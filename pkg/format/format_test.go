// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package format

import (
	"fmt"
	"testing"
)

func TestForBackend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		backend string
		want    Format
	}{
		{"discord", Markdown},
		{"mattermost", Markdown},
		{"slack", SlackMarkdown},
		{"matrix", HTML},
		{"email", HTML},
		{"symphony", MessageML},
		{"irc", Plaintext},
		{"Slack", SlackMarkdown},
		{"telegram", Plaintext},
		{"", Plaintext},
	}
	for _, tt := range tests {
		if got := ForBackend(tt.backend); got != tt.want {
			t.Errorf("ForBackend(%q): got %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestSpanRendering(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		span Span
		f    Format
		want string
	}{
		{"bold markdown", Span{Type: SpanBold, Text: "hi"}, Markdown, "**hi**"},
		{"bold slack", Span{Type: SpanBold, Text: "hi"}, SlackMarkdown, "*hi*"},
		{"bold html", Span{Type: SpanBold, Text: "hi"}, HTML, "<b>hi</b>"},
		{"bold messageml", Span{Type: SpanBold, Text: "hi"}, MessageML, "<b>hi</b>"},
		{"bold plaintext", Span{Type: SpanBold, Text: "hi"}, Plaintext, "hi"},
		{"html escapes content", Span{Type: SpanBold, Text: "a<b"}, HTML, "<b>a&lt;b</b>"},
		{"italic markdown", Span{Type: SpanItalic, Text: "hi"}, Markdown, "_hi_"},
		{"strike markdown", Span{Type: SpanStrike, Text: "hi"}, Markdown, "~~hi~~"},
		{"strike slack", Span{Type: SpanStrike, Text: "hi"}, SlackMarkdown, "~hi~"},
		{"code html", Span{Type: SpanCode, Text: "x := 1"}, HTML, "<code>x := 1</code>"},
		{"code block with language", Span{Type: SpanCodeBlock, Text: "x := 1", Language: "go"}, Markdown, "```go\nx := 1\n```"},
		{"code block slack drops language", Span{Type: SpanCodeBlock, Text: "x := 1", Language: "go"}, SlackMarkdown, "```\nx := 1\n```"},
		{"link markdown", Span{Type: SpanLink, Text: "docs", URL: "https://x.dev"}, Markdown, "[docs](https://x.dev)"},
		{"link slack", Span{Type: SpanLink, Text: "docs", URL: "https://x.dev"}, SlackMarkdown, "<https://x.dev|docs>"},
		{"link html", Span{Type: SpanLink, Text: "docs", URL: "https://x.dev"}, HTML, `<a href="https://x.dev">docs</a>`},
		{"link plaintext", Span{Type: SpanLink, Text: "docs", URL: "https://x.dev"}, Plaintext, "docs (https://x.dev)"},
		{"bare link plaintext", Span{Type: SpanLink, URL: "https://x.dev"}, Plaintext, "https://x.dev"},
		{"plain text identical everywhere", Span{Type: SpanText, Text: "a<b & c"}, HTML, "a<b & c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.span.render(tt.f); got != tt.want {
				t.Errorf("render: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddTextIgnoresEmpty(t *testing.T) {
	t.Parallel()
	m := New()
	m.AddText("")
	if !m.IsEmpty() {
		t.Error("empty AddText should leave the message empty")
	}
	m.AddText("x")
	if m.IsEmpty() {
		t.Error("message with a span should not be empty")
	}
}

func TestBuilder(t *testing.T) {
	t.Parallel()
	m := NewBuilder().
		Text("deploy ").
		Bold("v2.1").
		Text(" to ").
		Code("prod").
		Newline().
		Link("changelog", "https://x.dev/cl").
		Build()

	wantSlack := "deploy *v2.1* to `prod`\n<https://x.dev/cl|changelog>"
	if got := m.Render(SlackMarkdown); got != wantSlack {
		t.Errorf("slack render: got %q, want %q", got, wantSlack)
	}
	wantMD := "deploy **v2.1** to `prod`\n[changelog](https://x.dev/cl)"
	if got := m.Render(Markdown); got != wantMD {
		t.Errorf("markdown render: got %q, want %q", got, wantMD)
	}
}

func ExampleBuilder() {
	msg := NewBuilder().
		Text("build ").
		Bold("passed").
		Build()

	fmt.Println(msg.Render(Markdown))
	fmt.Println(msg.Render(SlackMarkdown))
	fmt.Println(msg.Render(HTML))
	fmt.Println(msg.Render(Plaintext))
	// Output:
	// build **passed**
	// build *passed*
	// build <b>passed</b>
	// build passed
}

func ExampleForBackend() {
	fmt.Println(ForBackend("slack"))
	fmt.Println(ForBackend("unknown-platform"))
	// Output:
	// slack_markdown
	// plaintext
}
