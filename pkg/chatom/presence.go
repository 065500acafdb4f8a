// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "time"

// PresenceStatus is a platform-agnostic presence state.
type PresenceStatus string

const (
	PresenceOnline    PresenceStatus = "online"
	PresenceIdle      PresenceStatus = "idle"
	PresenceDND       PresenceStatus = "dnd"
	PresenceInvisible PresenceStatus = "invisible"
	PresenceOffline   PresenceStatus = "offline"
	PresenceUnknown   PresenceStatus = "unknown"
)

// Presence is a user's presence on a platform. Platform packages embed it
// in variants carrying platform-specific detail.
type Presence struct {
	// User the presence belongs to.
	User *User `yaml:"user,omitempty" json:"user,omitempty"`
	// Status is the generic presence state.
	Status PresenceStatus `yaml:"status,omitempty" json:"status,omitempty"`
	// StatusText is the free-form status message, if the platform has one.
	StatusText string `yaml:"status_text,omitempty" json:"status_text,omitempty"`
	// LastActiveAt is the last activity time, zero when unknown.
	LastActiveAt time.Time `yaml:"last_active_at,omitempty" json:"last_active_at,omitempty"`
}

// IsOnline reports whether the user is actively online.
func (p *Presence) IsOnline() bool {
	return p.Status == PresenceOnline
}
