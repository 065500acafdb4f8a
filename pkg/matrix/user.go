// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package matrix maps Matrix events and user IDs onto the chatom model and
// provides a mautrix-backed adapter.
package matrix

import (
	"fmt"

	"maunium.net/go/mautrix/id"

	"github.com/aiku/chatom/pkg/chatom"
)

// User is a Matrix user. Mentions render the fully qualified user ID;
// users without a handle fall back to their display name.
type User struct {
	chatom.User

	// Homeserver is the server part of the MXID, matrix.org when unset.
	Homeserver string `yaml:"homeserver,omitempty" json:"homeserver,omitempty"`
}

func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	if u.Handle == "" {
		return u.Name
	}
	hs := u.Homeserver
	if hs == "" {
		hs = "matrix.org"
	}
	return fmt.Sprintf("@%s:%s", u.Handle, hs)
}

// UserID returns the user as a mautrix MXID.
func (u *User) UserID() id.UserID {
	if u == nil {
		return ""
	}
	if u.ID != "" {
		return id.UserID(u.ID)
	}
	return id.UserID(u.Mention())
}

// FromUserID converts an MXID into the chatom model, splitting out the
// localpart and homeserver.
func FromUserID(userID id.UserID) *User {
	u := &User{
		User: chatom.User{
			Identifiable: chatom.Identifiable{ID: string(userID)},
			Handle:       userID.Localpart(),
		},
		Homeserver: userID.Homeserver(),
	}
	u.Name = u.Handle
	u.DisplayName = u.Handle
	return u
}
