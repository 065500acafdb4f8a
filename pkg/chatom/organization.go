// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

// Organization is the top-level container for users and channels: a Discord
// guild, a Slack workspace, a Mattermost team, a Symphony pod.
type Organization struct {
	Identifiable `yaml:",inline"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	IconURL     string `yaml:"icon_url,omitempty" json:"icon_url,omitempty"`
	// MemberCount is approximate and nil when the platform did not report one.
	MemberCount *int  `yaml:"member_count,omitempty" json:"member_count,omitempty"`
	Owner       *User `yaml:"owner,omitempty" json:"owner,omitempty"`
}

// DisplayName returns the name, falling back to the ID.
func (o *Organization) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	return o.ID
}

// OwnerID returns the owner's user ID, or "" when unset.
func (o *Organization) OwnerID() string {
	if o.Owner == nil {
		return ""
	}
	return o.Owner.ID
}
