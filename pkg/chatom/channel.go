// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "fmt"

// ChannelType classifies a channel or room.
type ChannelType string

const (
	ChannelTypePublic       ChannelType = "public"
	ChannelTypePrivate      ChannelType = "private"
	ChannelTypeDirect       ChannelType = "direct"
	ChannelTypeGroup        ChannelType = "group"
	ChannelTypeThread       ChannelType = "thread"
	ChannelTypeForum        ChannelType = "forum"
	ChannelTypeAnnouncement ChannelType = "announcement"
	ChannelTypeUnknown      ChannelType = "unknown"
)

// Channel is a channel or room on a chat platform.
//
// Parent and Users are shared references: the same User or Channel value is
// commonly referenced from many entities at once, and constructors never
// copy them.
type Channel struct {
	Identifiable `yaml:",inline"`

	Topic       string      `yaml:"topic,omitempty" json:"topic,omitempty"`
	ChannelType ChannelType `yaml:"channel_type,omitempty" json:"channel_type,omitempty"`
	IsArchived  bool        `yaml:"is_archived,omitempty" json:"is_archived,omitempty"`
	// MemberCount is nil when the platform did not report one.
	MemberCount *int `yaml:"member_count,omitempty" json:"member_count,omitempty"`
	// Parent is set for threads and subchannels.
	Parent *Channel `yaml:"parent,omitempty" json:"parent,omitempty"`
	// Users lists the targets of a DIRECT or GROUP channel; it has no
	// meaning for other channel types.
	Users []*User `yaml:"users,omitempty" json:"users,omitempty"`
}

// NewChannel validates ch and returns it. When ch.ChannelType is unknown
// (or empty) and users are supplied, the type is inferred: one user means
// DIRECT, two or more mean GROUP.
//
// Validation fails with an error wrapping ErrInvalidChannel when a DIRECT
// channel has more than one user or a GROUP channel has exactly one. A
// DIRECT channel with zero or one user is valid: zero users occur during
// construction before resolution.
func NewChannel(ch Channel) (*Channel, error) {
	if ch.ChannelType == "" {
		ch.ChannelType = ChannelTypeUnknown
	}
	if len(ch.Users) > 0 && ch.ChannelType == ChannelTypeUnknown {
		if len(ch.Users) == 1 {
			ch.ChannelType = ChannelTypeDirect
		} else {
			ch.ChannelType = ChannelTypeGroup
		}
	}
	if err := ch.validateUsers(); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *Channel) validateUsers() error {
	if len(c.Users) == 0 {
		return nil
	}
	switch c.ChannelType {
	case ChannelTypeDirect:
		if len(c.Users) != 1 {
			return fmt.Errorf("%w: DIRECT channel must have exactly 1 user, got %d", ErrInvalidChannel, len(c.Users))
		}
	case ChannelTypeGroup:
		if len(c.Users) < 2 {
			return fmt.Errorf("%w: GROUP channel must have at least 2 users, got %d", ErrInvalidChannel, len(c.Users))
		}
	}
	return nil
}

// DMTo creates an incomplete DIRECT channel targeting user. A backend
// adapter must resolve it (look up or create the actual DM channel) before
// sending.
func DMTo(user *User) *Channel {
	ch := &Channel{
		ChannelType: ChannelTypeDirect,
		Users:       []*User{user},
	}
	ch.MarkIncomplete()
	return ch
}

// GroupDMTo creates an incomplete GROUP channel targeting users. It fails
// with a validation error for fewer than two users.
func GroupDMTo(users ...*User) (*Channel, error) {
	ch, err := NewChannel(Channel{
		ChannelType: ChannelTypeGroup,
		Users:       users,
	})
	if err != nil {
		return nil, err
	}
	ch.MarkIncomplete()
	return ch, nil
}

// IsComplete reports whether the channel has a platform-assigned ID. A DM
// channel with users but no ID still needs resolution.
func (c Channel) IsComplete() bool {
	if len(c.Users) > 0 && c.ID == "" {
		return false
	}
	return c.ID != "" && !c.Incomplete
}

// IsResolvable reports whether a backend could resolve this channel: an ID,
// a name, or target users (for DMs) suffices.
func (c Channel) IsResolvable() bool {
	return c.ID != "" || c.Name != "" || len(c.Users) > 0
}

// ParentID returns the parent channel's ID, or "" without a parent.
func (c *Channel) ParentID() string {
	if c.Parent == nil {
		return ""
	}
	return c.Parent.ID
}

// IsThread reports whether this channel is a thread.
func (c *Channel) IsThread() bool {
	return c.ChannelType == ChannelTypeThread
}

// IsDM reports whether this channel is a direct or group direct message.
func (c *Channel) IsDM() bool {
	return c.ChannelType == ChannelTypeDirect || c.ChannelType == ChannelTypeGroup
}

// IsPublic reports whether this channel is public.
func (c *Channel) IsPublic() bool {
	return c.ChannelType == ChannelTypePublic
}

// IsPrivate reports whether this channel is private.
func (c *Channel) IsPrivate() bool {
	return c.ChannelType == ChannelTypePrivate
}
