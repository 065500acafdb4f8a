// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package format provides a backend-agnostic intermediate representation of
// message content. A FormattedMessage is a sequence of typed spans plus
// attachment descriptors and an open metadata map; it can be rendered to any
// supported platform dialect (Slack mrkdwn, Discord markdown, MessageML,
// HTML, plain text).
package format

import "strings"

// Format identifies a platform markup dialect.
type Format string

const (
	// Plaintext renders spans with no markup at all.
	Plaintext Format = "plaintext"
	// Markdown is standard markdown as used by Discord and Mattermost
	// (double-asterisk bold).
	Markdown Format = "markdown"
	// SlackMarkdown is Slack's mrkdwn dialect (single-asterisk bold).
	SlackMarkdown Format = "slack_markdown"
	// HTML is used by Matrix formatted bodies and HTML email.
	HTML Format = "html"
	// MessageML is Symphony's XML-flavored markup.
	MessageML Format = "messageml"
)

// backendFormats maps lowercase backend names to their rendering dialect.
var backendFormats = map[string]Format{
	"discord":    Markdown,
	"mattermost": Markdown,
	"slack":      SlackMarkdown,
	"matrix":     HTML,
	"email":      HTML,
	"symphony":   MessageML,
	"irc":        Plaintext,
}

// ForBackend returns the rendering dialect for a backend name. Unknown or
// empty backend names fall back to Plaintext.
func ForBackend(backend string) Format {
	if f, ok := backendFormats[strings.ToLower(backend)]; ok {
		return f
	}
	return Plaintext
}
