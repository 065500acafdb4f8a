// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package backend

import "github.com/aiku/chatom/pkg/format"

// Capabilities describes what a platform can express. The matrix is fixed
// per platform; adapters return one of the package-level values below.
type Capabilities struct {
	Format format.Format

	Threads      bool
	Reactions    bool
	Edits        bool
	Attachments  bool
	Embeds       bool
	TypingEvents bool
	Presence     bool

	// MaxMessageLength is the platform's hard limit in characters,
	// 0 when there is no practical limit.
	MaxMessageLength int
}

var (
	DiscordCapabilities = Capabilities{
		Format:           format.Markdown,
		Threads:          true,
		Reactions:        true,
		Edits:            true,
		Attachments:      true,
		Embeds:           true,
		TypingEvents:     true,
		Presence:         true,
		MaxMessageLength: 2000,
	}

	SlackCapabilities = Capabilities{
		Format:           format.SlackMarkdown,
		Threads:          true,
		Reactions:        true,
		Edits:            true,
		Attachments:      true,
		Embeds:           true,
		TypingEvents:     true,
		Presence:         true,
		MaxMessageLength: 40000,
	}

	MattermostCapabilities = Capabilities{
		Format:           format.Markdown,
		Threads:          true,
		Reactions:        true,
		Edits:            true,
		Attachments:      true,
		TypingEvents:     true,
		Presence:         true,
		MaxMessageLength: 16383,
	}

	MatrixCapabilities = Capabilities{
		Format:       format.HTML,
		Threads:      true,
		Reactions:    true,
		Edits:        true,
		Attachments:  true,
		TypingEvents: true,
		Presence:     true,
	}

	SymphonyCapabilities = Capabilities{
		Format:      format.MessageML,
		Threads:     true,
		Attachments: true,
		Presence:    true,
	}

	IRCCapabilities = Capabilities{
		Format:           format.Plaintext,
		MaxMessageLength: 512,
	}

	EmailCapabilities = Capabilities{
		Format:      format.HTML,
		Threads:     true,
		Attachments: true,
	}
)
