// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "strings"

// Mentionable is implemented by user variants that render their own
// platform mention markup. The base User renders its display name, so any
// platform variant that embeds User inherits a safe fallback; variants
// override Mention with their platform's syntax (discord `<@!id>`, slack
// `<@id>`, ...).
type Mentionable interface {
	Mention() string
}

// ChannelMentionable is the channel-side counterpart of Mentionable.
type ChannelMentionable interface {
	Mention() string
}

// Mention renders the generic fallback mention for a user: its display name.
func (u *User) Mention() string {
	return u.BestDisplayName()
}

// Mention renders the generic channel mention: "#name", falling back to
// "#id".
func (c *Channel) Mention() string {
	if c.Name != "" {
		return "#" + c.Name
	}
	return "#" + c.ID
}

// MentionUser renders the mention markup for a user, dispatching on its
// concrete variant. Nil users render as "".
func MentionUser(u Mentionable) string {
	if u == nil {
		return ""
	}
	return u.Mention()
}

// MentionChannel renders the mention markup for a channel, dispatching on
// its concrete variant. Nil channels render as "".
func MentionChannel(c ChannelMentionable) string {
	if c == nil {
		return ""
	}
	return c.Mention()
}

// MentionUserForBackend renders the mention markup for a user keyed on a
// backend name, for callers that hold a plain User and a string backend
// identifier rather than a typed platform variant. Unrecognized backends
// fall back to the display name; rendering never fails.
func MentionUserForBackend(u *User, backend string) string {
	if u == nil {
		return ""
	}
	switch strings.ToLower(backend) {
	case "discord", "slack":
		if u.ID != "" {
			return "<@" + u.ID + ">"
		}
		return u.BestDisplayName()
	case "symphony":
		if u.ID != "" {
			return `<mention uid="` + u.ID + `"/>`
		}
		if u.Email != "" {
			return `<mention email="` + u.Email + `"/>`
		}
		return "@" + u.BestDisplayName()
	default:
		return u.BestDisplayName()
	}
}

// MentionChannelForBackend renders the channel mention markup keyed on a
// backend name. Discord and Slack use `<#id>` when the ID is known; every
// other backend uses the generic "#name" / "#id" form.
func MentionChannelForBackend(c *Channel, backend string) string {
	if c == nil {
		return ""
	}
	switch strings.ToLower(backend) {
	case "discord", "slack":
		if c.ID != "" {
			return "<#" + c.ID + ">"
		}
		return "#" + c.Name
	default:
		if c.Name != "" {
			return "#" + c.Name
		}
		return "#" + c.ID
	}
}

// BroadcastMentions holds a backend's fixed special-mention strings. Empty
// fields mean the platform has no equivalent.
type BroadcastMentions struct {
	// Here addresses currently-active members.
	Here string
	// Channel addresses all members of the channel.
	Channel string
	// Everyone addresses all members of the organization or channel.
	Everyone string
}

// broadcastTable lists the fixed per-backend broadcast mention strings.
// These are constants, not computed markup.
var broadcastTable = map[string]BroadcastMentions{
	"discord": {
		Here:     "@here",
		Everyone: "@everyone",
	},
	"slack": {
		Here:     "<!here>",
		Channel:  "<!channel>",
		Everyone: "<!everyone>",
	},
	"symphony": {
		// Symphony has no @here equivalent; broadcast-all uses a mention tag.
		Everyone: `<mention uid="all"/>`,
	},
}

// BroadcastFor returns the broadcast mention strings for a backend.
// Unknown backends yield the zero value.
func BroadcastFor(backend string) BroadcastMentions {
	return broadcastTable[strings.ToLower(backend)]
}
