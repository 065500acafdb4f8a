// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package symphony maps Symphony streams, MessageML, and entity data onto
// the chatom model. Symphony has no maintained Go SDK, so this package is
// model-only: it shapes payloads for and from the Symphony REST agent.
package symphony

import (
	"fmt"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is a Symphony user. Mentions render as MessageML mention tags.
type User struct {
	chatom.User

	Company string `yaml:"company,omitempty" json:"company,omitempty"`
}

func (u *User) Mention() string {
	if u == nil || u.ID == "" {
		return ""
	}
	return fmt.Sprintf("<mention uid=%q/>", u.ID)
}

// PresenceCategory maps a chatom presence status to Symphony's presence
// category strings.
func PresenceCategory(status chatom.PresenceStatus) string {
	switch status {
	case chatom.PresenceOnline:
		return "AVAILABLE"
	case chatom.PresenceIdle:
		return "AWAY"
	case chatom.PresenceDND:
		return "BUSY"
	case chatom.PresenceOffline, chatom.PresenceInvisible:
		return "OFF_WORK"
	default:
		return "AVAILABLE"
	}
}

// PresenceFromCategory maps Symphony's presence categories back onto the
// chatom model.
func PresenceFromCategory(user *chatom.User, category string) *chatom.Presence {
	p := &chatom.Presence{User: user}
	switch category {
	case "AVAILABLE":
		p.Status = chatom.PresenceOnline
	case "AWAY", "BE_RIGHT_BACK":
		p.Status = chatom.PresenceIdle
	case "BUSY", "ON_THE_PHONE", "IN_A_MEETING":
		p.Status = chatom.PresenceDND
	case "OUT_OF_OFFICE", "OFF_WORK", "OFFLINE":
		p.Status = chatom.PresenceOffline
	default:
		p.Status = chatom.PresenceUnknown
	}
	return p
}
