// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "time"

// Thread is a message thread within a channel.
type Thread struct {
	Identifiable `yaml:",inline"`

	// ParentChannel is the channel the thread lives in.
	ParentChannel *Channel `yaml:"parent_channel,omitempty" json:"parent_channel,omitempty"`
	// ParentMessage is the message the thread was started on.
	ParentMessage *Message `yaml:"parent_message,omitempty" json:"parent_message,omitempty"`
	MessageCount  int      `yaml:"message_count,omitempty" json:"message_count,omitempty"`
	IsLocked      bool     `yaml:"is_locked,omitempty" json:"is_locked,omitempty"`

	CreatedAt     time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	LastMessageAt time.Time `yaml:"last_message_at,omitempty" json:"last_message_at,omitempty"`
}

// ParentMessageID returns the parent message's ID, or "" when unset.
func (t *Thread) ParentMessageID() string {
	if t.ParentMessage == nil {
		return ""
	}
	return t.ParentMessage.ID
}

// IsResolvable reports whether a backend could resolve this thread: an ID
// or a parent message suffices.
func (t Thread) IsResolvable() bool {
	return t.ID != "" || t.ParentMessage != nil
}
