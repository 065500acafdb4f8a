// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package slack

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	slackapi "github.com/slack-go/slack"

	"github.com/aiku/chatom/pkg/backend"
	"github.com/aiku/chatom/pkg/chatom"
)

type Config struct {
	Token string `yaml:"token"`
	// Domain is the workspace subdomain, used to build archive links.
	Domain string `yaml:"domain,omitempty"`
}

// Client is the slack-go backed adapter.
type Client struct {
	log    zerolog.Logger
	api    *slackapi.Client
	domain string
	botID  string
}

var _ backend.Backend = (*Client)(nil)

func NewClient(log zerolog.Logger, cfg Config) *Client {
	return &Client{
		log:    log.With().Str("backend", "slack").Logger(),
		api:    slackapi.New(cfg.Token),
		domain: cfg.Domain,
	}
}

func (c *Client) Name() string {
	return "slack"
}

func (c *Client) Capabilities() backend.Capabilities {
	return backend.SlackCapabilities
}

func (c *Client) Connect(ctx context.Context) error {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate with slack: %w", err)
	}
	c.botID = resp.UserID
	c.log.Debug().
		Str("user_id", resp.UserID).
		Str("team", resp.Team).
		Msg("Authenticated with Slack")
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return nil
}

func (c *Client) FetchUser(ctx context.Context, id string) (*chatom.User, error) {
	su, err := c.api.GetUserInfoContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &FromSlackUser(su).User, nil
}

func (c *Client) FetchChannel(ctx context.Context, id string) (*chatom.Channel, error) {
	sc, err := c.api.GetConversationInfoContext(ctx, &slackapi.GetConversationInfoInput{
		ChannelID: id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", id, err)
	}
	return FromSlackChannel(sc), nil
}

// FetchPresence resolves a user's presence. Slack only reports active or
// away over the API.
func (c *Client) FetchPresence(ctx context.Context, user *chatom.User) (*chatom.Presence, error) {
	resp, err := c.api.GetUserPresenceContext(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch presence for %s: %w", user.ID, err)
	}
	return PresenceFromSlack(user, resp.Presence), nil
}

func (c *Client) ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	if ch == nil {
		return nil, backend.ErrUnresolvedChannel
	}
	if ch.ID != "" {
		return ch, nil
	}
	if (ch.ChannelType == chatom.ChannelTypeDirect || ch.ChannelType == chatom.ChannelTypeGroup) && len(ch.Users) > 0 {
		userIDs := make([]string, len(ch.Users))
		for i, u := range ch.Users {
			userIDs[i] = u.ID
		}
		opened, _, _, err := c.api.OpenConversationContext(ctx, &slackapi.OpenConversationParameters{
			Users: userIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open conversation: %w", err)
		}
		return FromSlackChannel(opened), nil
	}
	return nil, fmt.Errorf("%w: channel has no ID", backend.ErrUnresolvedChannel)
}

func (c *Client) SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error) {
	ch, err := c.ResolveChannel(ctx, msg.Channel)
	if err != nil {
		return nil, err
	}
	opts := []slackapi.MsgOption{slackapi.MsgOptionText(msg.Content, false)}
	if tid := msg.ThreadID(); tid != "" {
		opts = append(opts, slackapi.MsgOptionTS(tid))
	}
	channelID, ts, err := c.api.PostMessageContext(ctx, ch.ID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}
	c.log.Debug().
		Str("channel_id", channelID).
		Str("ts", ts).
		Msg("Posted message")
	sent := *msg
	sent.ID = ts
	sent.Channel = ch
	sent.CreatedAt = TsTime(ts)
	return &sent, nil
}
