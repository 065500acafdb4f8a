// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

// Avatar is a user's avatar image.
type Avatar struct {
	Identifiable `yaml:",inline"`

	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
	IsDefault bool   `yaml:"is_default,omitempty" json:"is_default,omitempty"`
}

// User is a chat platform user. Platform packages embed User in richer
// variants (discord.User, slack.User, ...) that know their own mention
// markup.
type User struct {
	Identifiable `yaml:",inline"`

	// DisplayName can differ from Name. NewUser derives it from
	// Name/Handle/ID in that priority order; a value set explicitly is
	// never re-derived.
	DisplayName string  `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Handle      string  `yaml:"handle,omitempty" json:"handle,omitempty"`
	Email       string  `yaml:"email,omitempty" json:"email,omitempty"`
	Avatar      *Avatar `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	IsBot       bool    `yaml:"is_bot,omitempty" json:"is_bot,omitempty"`
	// AppID is set for bot users on platforms that distinguish the owning app.
	AppID string `yaml:"app_id,omitempty" json:"app_id,omitempty"`
}

// NewUser creates a User with the display name derived from name, handle,
// and id, in that priority order.
func NewUser(id, name, handle string) *User {
	u := &User{
		Identifiable: Identifiable{ID: id, Name: name},
		Handle:       handle,
	}
	u.DisplayName = u.BestDisplayName()
	return u
}

// BestDisplayName returns the best available display name: the explicit
// DisplayName, then Name, Handle, and ID.
func (u *User) BestDisplayName() string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Name != "":
		return u.Name
	case u.Handle != "":
		return u.Handle
	default:
		return u.ID
	}
}

// MentionName returns the handle or name, whichever is available, for
// platforms that mention users by name rather than ID.
func (u *User) MentionName() string {
	if u.Handle != "" {
		return u.Handle
	}
	return u.Name
}

// AvatarURL returns the avatar image URL, or "" when no avatar is set.
func (u *User) AvatarURL() string {
	if u.Avatar == nil {
		return ""
	}
	return u.Avatar.URL
}

// IsResolvable reports whether a backend could resolve this user: any of
// ID, name, handle, or email suffices.
func (u User) IsResolvable() bool {
	return u.ID != "" || u.Name != "" || u.Handle != "" || u.Email != ""
}
