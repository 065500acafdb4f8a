// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mattermost maps Mattermost entities onto the chatom model and
// provides a Client4-backed adapter.
package mattermost

import (
	"strings"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is a Mattermost user. Mattermost mentions are @username text with
// no ID-bearing syntax, so Mention falls back to the handle.
type User struct {
	chatom.User

	Nickname string `yaml:"nickname,omitempty" json:"nickname,omitempty"`
	Roles    string `yaml:"roles,omitempty" json:"roles,omitempty"`
}

func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	if u.Handle != "" {
		return "@" + u.Handle
	}
	return u.BestDisplayName()
}

// FromUser converts a Mattermost user to the chatom model.
func FromUser(mu *model.User) *User {
	if mu == nil {
		return nil
	}
	display := mu.Nickname
	if display == "" {
		display = strings.TrimSpace(mu.FirstName + " " + mu.LastName)
	}
	if display == "" {
		display = mu.Username
	}
	return &User{
		User: chatom.User{
			Identifiable: chatom.Identifiable{ID: mu.Id, Name: mu.Username},
			Handle:       mu.Username,
			DisplayName:  display,
			Email:        mu.Email,
			IsBot:        mu.IsBot,
		},
		Nickname: mu.Nickname,
		Roles:    mu.Roles,
	}
}
