// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package mattermost

import (
	"context"
	"fmt"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/rs/zerolog"

	"github.com/aiku/chatom/pkg/backend"
	"github.com/aiku/chatom/pkg/chatom"
)

type Config struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token"`
}

// Client is the Client4-backed adapter.
type Client struct {
	log    zerolog.Logger
	client *model.Client4
	selfID string
}

var _ backend.Backend = (*Client)(nil)

func NewClient(log zerolog.Logger, cfg Config) *Client {
	c := model.NewAPIv4Client(cfg.ServerURL)
	c.SetToken(cfg.Token)
	return &Client{
		log:    log.With().Str("backend", "mattermost").Logger(),
		client: c,
	}
}

func (c *Client) Name() string {
	return "mattermost"
}

func (c *Client) Capabilities() backend.Capabilities {
	return backend.MattermostCapabilities
}

func (c *Client) Connect(ctx context.Context) error {
	me, _, err := c.client.GetMe(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to authenticate with mattermost: %w", err)
	}
	c.selfID = me.Id
	c.log.Debug().
		Str("user_id", me.Id).
		Str("username", me.Username).
		Msg("Authenticated with Mattermost")
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return nil
}

func (c *Client) FetchUser(ctx context.Context, id string) (*chatom.User, error) {
	mu, _, err := c.client.GetUser(ctx, id, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &FromUser(mu).User, nil
}

func (c *Client) FetchChannel(ctx context.Context, id string) (*chatom.Channel, error) {
	mc, _, err := c.client.GetChannel(ctx, id, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", id, err)
	}
	return FromChannel(mc), nil
}

// ProfileImage fetches a user's avatar bytes.
func (c *Client) ProfileImage(ctx context.Context, userID string) ([]byte, error) {
	data, _, err := c.client.GetProfileImage(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile image for %s: %w", userID, err)
	}
	return data, nil
}

// ResolveChannel opens a direct channel between the authenticated user and
// the single member of an incomplete direct channel.
func (c *Client) ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	if ch == nil {
		return nil, backend.ErrUnresolvedChannel
	}
	if ch.ID != "" {
		return ch, nil
	}
	if ch.ChannelType == chatom.ChannelTypeDirect && len(ch.Users) == 1 {
		if c.selfID == "" {
			return nil, backend.ErrNotConnected
		}
		dc, _, err := c.client.CreateDirectChannel(ctx, c.selfID, ch.Users[0].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create direct channel: %w", err)
		}
		return FromChannel(dc), nil
	}
	return nil, fmt.Errorf("%w: channel has no ID", backend.ErrUnresolvedChannel)
}

func (c *Client) SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error) {
	ch, err := c.ResolveChannel(ctx, msg.Channel)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		ChannelId: ch.ID,
		Message:   msg.Content,
		RootId:    msg.ThreadID(),
	}
	created, _, err := c.client.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	c.log.Debug().
		Str("channel_id", ch.ID).
		Str("post_id", created.Id).
		Msg("Created post")
	sent := FromPost(created)
	sent.Channel = ch
	return sent, nil
}
