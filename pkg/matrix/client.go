// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package matrix

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/aiku/chatom/pkg/backend"
	"github.com/aiku/chatom/pkg/chatom"
)

type Config struct {
	HomeserverURL string `yaml:"homeserver_url"`
	UserID        string `yaml:"user_id"`
	AccessToken   string `yaml:"access_token"`
}

// Client is the mautrix-backed adapter.
type Client struct {
	log    zerolog.Logger
	client *mautrix.Client
}

var _ backend.Backend = (*Client)(nil)

func NewClient(log zerolog.Logger, cfg Config) (*Client, error) {
	client, err := mautrix.NewClient(cfg.HomeserverURL, id.UserID(cfg.UserID), cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix client: %w", err)
	}
	return &Client{
		log:    log.With().Str("backend", "matrix").Logger(),
		client: client,
	}, nil
}

func (c *Client) Name() string {
	return "matrix"
}

func (c *Client) Capabilities() backend.Capabilities {
	return backend.MatrixCapabilities
}

func (c *Client) Connect(ctx context.Context) error {
	whoami, err := c.client.Whoami(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify matrix access token: %w", err)
	}
	c.log.Debug().
		Str("user_id", string(whoami.UserID)).
		Msg("Verified Matrix access token")
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return nil
}

func (c *Client) FetchUser(ctx context.Context, userID string) (*chatom.User, error) {
	mxid := id.UserID(userID)
	u := FromUserID(mxid)
	profile, err := c.client.GetProfile(ctx, mxid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s: %w", userID, err)
	}
	if profile.DisplayName != "" {
		u.DisplayName = profile.DisplayName
	}
	if profile.AvatarURL.IsEmpty() {
		return &u.User, nil
	}
	u.Avatar = &chatom.Avatar{URL: profile.AvatarURL.String()}
	return &u.User, nil
}

// FetchChannel resolves a room. Matrix room state is not fetched eagerly;
// only the canonical name is looked up.
func (c *Client) FetchChannel(ctx context.Context, roomID string) (*chatom.Channel, error) {
	ch := &chatom.Channel{
		Identifiable: chatom.Identifiable{ID: roomID},
		ChannelType:  chatom.ChannelTypePrivate,
	}
	var nameContent event.RoomNameEventContent
	err := c.client.StateEvent(ctx, id.RoomID(roomID), event.StateRoomName, "", &nameContent)
	if err == nil && nameContent.Name != "" {
		ch.Name = nameContent.Name
	}
	return ch, nil
}

func (c *Client) ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	if ch == nil {
		return nil, backend.ErrUnresolvedChannel
	}
	if ch.ID != "" {
		return ch, nil
	}
	if ch.ChannelType == chatom.ChannelTypeDirect && len(ch.Users) == 1 {
		resp, err := c.client.CreateRoom(ctx, &mautrix.ReqCreateRoom{
			IsDirect: true,
			Preset:   "trusted_private_chat",
			Invite:   []id.UserID{id.UserID(ch.Users[0].ID)},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create DM room: %w", err)
		}
		resolved := *ch
		resolved.ID = string(resp.RoomID)
		resolved.Incomplete = false
		return &resolved, nil
	}
	return nil, fmt.Errorf("%w: channel has no ID", backend.ErrUnresolvedChannel)
}

func (c *Client) SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error) {
	ch, err := c.ResolveChannel(ctx, msg.Channel)
	if err != nil {
		return nil, err
	}
	content := &event.MessageEventContent{
		MsgType: event.MsgText,
		Body:    msg.Content,
	}
	if msg.FormattedContent != "" {
		content.Format = event.FormatHTML
		content.FormattedBody = msg.FormattedContent
	}
	if tid := msg.ThreadID(); tid != "" {
		content.RelatesTo = &event.RelatesTo{
			Type:    event.RelThread,
			EventID: id.EventID(tid),
		}
	} else if msg.ReplyTo != nil && msg.ReplyTo.ID != "" {
		content.RelatesTo = (&event.RelatesTo{}).SetReplyTo(id.EventID(msg.ReplyTo.ID))
	}
	resp, err := c.client.SendMessageEvent(ctx, RoomID(ch), event.EventMessage, content)
	if err != nil {
		return nil, fmt.Errorf("failed to send message event: %w", err)
	}
	c.log.Debug().
		Str("room_id", ch.ID).
		Str("event_id", string(resp.EventID)).
		Msg("Sent message event")
	sent := *msg
	sent.ID = string(resp.EventID)
	sent.Channel = ch
	return &sent, nil
}
