// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package discord maps Discord entities and mention syntax onto the chatom
// model and provides a discordgo-backed adapter.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is a Discord user. Mentions render in Discord's nickname-mention
// form so that clients highlight the user regardless of server nickname.
type User struct {
	chatom.User

	Discriminator string `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	GlobalName    string `yaml:"global_name,omitempty" json:"global_name,omitempty"`
	IsSystem      bool   `yaml:"is_system,omitempty" json:"is_system,omitempty"`
	Banner        string `yaml:"banner,omitempty" json:"banner,omitempty"`
}

func (u *User) Mention() string {
	if u == nil || u.ID == "" {
		return ""
	}
	return fmt.Sprintf("<@!%s>", u.ID)
}

// FromDiscordgoUser converts a discordgo user to the chatom model.
func FromDiscordgoUser(du *discordgo.User) *User {
	if du == nil {
		return nil
	}
	u := &User{
		User: chatom.User{
			Identifiable: chatom.Identifiable{ID: du.ID, Name: du.Username},
			Handle:       du.Username,
			DisplayName:  du.GlobalName,
			IsBot:        du.Bot,
		},
		Discriminator: du.Discriminator,
		GlobalName:    du.GlobalName,
		IsSystem:      du.System,
	}
	if u.DisplayName == "" {
		u.DisplayName = du.Username
	}
	if url := du.AvatarURL(""); url != "" {
		u.Avatar = &chatom.Avatar{URL: url}
	}
	return u
}
