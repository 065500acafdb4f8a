// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package slack maps Slack entities, mrkdwn mentions, and message
// timestamps onto the chatom model and provides a slack-go adapter.
package slack

import (
	"fmt"

	slackapi "github.com/slack-go/slack"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is a Slack user. Mentions render as <@ID>; Slack clients expand the
// ID to the user's current display name.
type User struct {
	chatom.User

	TeamID   string `yaml:"team_id,omitempty" json:"team_id,omitempty"`
	IsAdmin  bool   `yaml:"is_admin,omitempty" json:"is_admin,omitempty"`
	Timezone string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
}

func (u *User) Mention() string {
	if u == nil || u.ID == "" {
		return ""
	}
	return fmt.Sprintf("<@%s>", u.ID)
}

// FromSlackUser converts a slack-go user to the chatom model.
func FromSlackUser(su *slackapi.User) *User {
	if su == nil {
		return nil
	}
	display := su.Profile.DisplayName
	if display == "" {
		display = su.RealName
	}
	if display == "" {
		display = su.Name
	}
	u := &User{
		User: chatom.User{
			Identifiable: chatom.Identifiable{ID: su.ID, Name: su.Name},
			Handle:       su.Name,
			DisplayName:  display,
			Email:        su.Profile.Email,
			IsBot:        su.IsBot,
		},
		TeamID:   su.TeamID,
		IsAdmin:  su.IsAdmin,
		Timezone: su.TZ,
	}
	if su.Profile.Image512 != "" {
		u.Avatar = &chatom.Avatar{URL: su.Profile.Image512}
	}
	return u
}

// PresenceFromSlack maps Slack's presence strings onto the chatom model.
// Slack only distinguishes active and away over the API.
func PresenceFromSlack(user *chatom.User, presence string) *chatom.Presence {
	p := &chatom.Presence{User: user}
	switch presence {
	case "active":
		p.Status = chatom.PresenceOnline
	case "away":
		p.Status = chatom.PresenceIdle
	case "":
		p.Status = chatom.PresenceUnknown
	default:
		p.Status = chatom.PresenceOffline
	}
	return p
}

// ToSlackPresence maps a generic presence status onto the strings Slack's
// users.setPresence API accepts: online becomes active, unknown becomes
// auto, everything else becomes away.
func ToSlackPresence(status chatom.PresenceStatus) string {
	switch status {
	case chatom.PresenceOnline:
		return "active"
	case chatom.PresenceUnknown:
		return "auto"
	default:
		return "away"
	}
}
