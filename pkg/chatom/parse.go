// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import (
	"regexp"
	"strings"
)

// MentionMatch is a user mention recovered from message content.
type MentionMatch struct {
	// UserID is the extracted user ID (or email, for Symphony email
	// mentions).
	UserID string
	// Start and End delimit the raw mention in the original string.
	Start int
	End   int
	// Raw is the mention substring exactly as it appeared.
	Raw string
}

// ChannelMentionMatch is a channel mention recovered from message content.
type ChannelMentionMatch struct {
	ChannelID string
	Start     int
	End       int
	Raw       string
}

var (
	// Discord: <@123456789> or <@!123456789> (nickname marker ignored).
	discordMentionRe = regexp.MustCompile(`<@!?(\d+)>`)
	// Slack: <@U123ABC456>.
	slackMentionRe = regexp.MustCompile(`<@([A-Z0-9]+)>`)
	// Symphony: <mention uid="123"/> or <mention email="user@example.com"/>.
	symphonyMentionRe = regexp.MustCompile(`<mention\s+(?:uid="([^"]+)"|email="([^"]+)")\s*/>`)

	// Discord: <#123456789>.
	discordChannelRe = regexp.MustCompile(`<#(\d+)>`)
	// Slack: <#C123ABC456> or <#C123ABC456|channel-name>.
	slackChannelRe = regexp.MustCompile(`<#([A-Z0-9]+)(?:\|[^>]*)?>`)
)

var mentionPatterns = map[string]*regexp.Regexp{
	"discord":  discordMentionRe,
	"slack":    slackMentionRe,
	"symphony": symphonyMentionRe,
}

var channelMentionPatterns = map[string]*regexp.Regexp{
	"discord": discordChannelRe,
	"slack":   slackChannelRe,
}

// ParseMentions recovers user mentions from message content using the
// backend's mention syntax. Matches are returned in content order,
// non-overlapping. Unknown backends yield nil rather than an error, and
// malformed content yields fewer or no matches; parsing never fails.
func ParseMentions(content, backend string) []MentionMatch {
	pattern, ok := mentionPatterns[strings.ToLower(backend)]
	if !ok {
		return nil
	}

	var matches []MentionMatch
	for _, idx := range pattern.FindAllStringSubmatchIndex(content, -1) {
		// idx[2:4] is the first capture group, idx[4:6] the second
		// (Symphony email). Exactly one is non-empty per match.
		id := groupAt(content, idx, 1)
		if id == "" && len(idx) >= 6 {
			id = groupAt(content, idx, 2)
		}
		matches = append(matches, MentionMatch{
			UserID: id,
			Start:  idx[0],
			End:    idx[1],
			Raw:    content[idx[0]:idx[1]],
		})
	}
	return matches
}

// ExtractMentionIDs projects ParseMentions onto just the user IDs,
// preserving match order and duplicates.
func ExtractMentionIDs(content, backend string) []string {
	matches := ParseMentions(content, backend)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.UserID
	}
	return ids
}

// ParseChannelMentions recovers channel mentions from message content.
// Only Discord and Slack define channel mention syntax; every other
// backend yields nil.
func ParseChannelMentions(content, backend string) []ChannelMentionMatch {
	pattern, ok := channelMentionPatterns[strings.ToLower(backend)]
	if !ok {
		return nil
	}

	var matches []ChannelMentionMatch
	for _, idx := range pattern.FindAllStringSubmatchIndex(content, -1) {
		matches = append(matches, ChannelMentionMatch{
			ChannelID: groupAt(content, idx, 1),
			Start:     idx[0],
			End:       idx[1],
			Raw:       content[idx[0]:idx[1]],
		})
	}
	return matches
}

// ExtractChannelIDs projects ParseChannelMentions onto just the channel
// IDs, preserving match order and duplicates.
func ExtractChannelIDs(content, backend string) []string {
	matches := ParseChannelMentions(content, backend)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ChannelID
	}
	return ids
}

// groupAt returns capture group n from a FindAllStringSubmatchIndex entry,
// or "" when the group did not participate in the match.
func groupAt(content string, idx []int, n int) string {
	lo, hi := idx[2*n], idx[2*n+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return content[lo:hi]
}
