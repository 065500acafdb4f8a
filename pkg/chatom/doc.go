// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package chatom provides a unified data model over chat-platform APIs.
//
// Calling code works with one set of entities — [User], [Channel], [Message],
// [Thread], [Organization], [Presence] — regardless of which backend
// (Discord, Slack, Mattermost, Matrix, Symphony, IRC, Email) is in use.
// Platform packages under pkg/ provide richer variants of these entities and
// converters from vendor SDK payloads.
//
// # Mentions
//
// Mention markup differs per platform. [MentionUser] dispatches through the
// [Mentionable] interface: platform user variants render their own markup,
// and the base [User] falls back to its display name. When only a backend
// name string is available, [MentionUserForBackend] and
// [MentionChannelForBackend] select the markup by name. The inverse
// direction — recovering mention targets from raw message content — is
// handled by [ParseMentions], [ParseChannelMentions] and their id-projection
// helpers.
//
// # Format conversion
//
// [Message.ToFormatted] lifts a message into the backend-agnostic
// format.FormattedMessage representation; [FromFormatted] renders one back
// into a message for a target backend's dialect. [Message.RenderFor] chains
// the two for quick cross-backend content conversion.
//
// # Concurrency
//
// Everything in this package is synchronous and stateless across calls: no
// shared mutable state, no locks, no I/O. All functions are safe to call
// concurrently.
package chatom
