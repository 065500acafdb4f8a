// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/aiku/chatom/pkg/backend"
	"github.com/aiku/chatom/pkg/chatom"
)

type Config struct {
	Token string `yaml:"token"`
}

// Client is the discordgo-backed adapter. The session owns the gateway
// connection; the client only reshapes entities.
type Client struct {
	log     zerolog.Logger
	session *discordgo.Session
}

var _ backend.Backend = (*Client)(nil)

func NewClient(log zerolog.Logger, cfg Config) (*Client, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &Client{
		log:     log.With().Str("backend", "discord").Logger(),
		session: session,
	}, nil
}

func (c *Client) Name() string {
	return "discord"
}

func (c *Client) Capabilities() backend.Capabilities {
	return backend.DiscordCapabilities
}

func (c *Client) Connect(ctx context.Context) error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	c.log.Debug().Msg("Connected to Discord gateway")
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.session.Close()
}

func (c *Client) FetchUser(ctx context.Context, id string) (*chatom.User, error) {
	du, err := c.session.User(id, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &FromDiscordgoUser(du).User, nil
}

func (c *Client) FetchChannel(ctx context.Context, id string) (*chatom.Channel, error) {
	dc, err := c.session.Channel(id, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", id, err)
	}
	return FromDiscordgoChannel(dc), nil
}

// ResolveChannel opens a DM channel for incomplete direct channels. Other
// channel kinds must already carry a platform ID.
func (c *Client) ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	if ch == nil {
		return nil, backend.ErrUnresolvedChannel
	}
	if ch.ID != "" {
		return ch, nil
	}
	if ch.ChannelType == chatom.ChannelTypeDirect && len(ch.Users) == 1 {
		dc, err := c.session.UserChannelCreate(ch.Users[0].ID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to open DM channel: %w", err)
		}
		return FromDiscordgoChannel(dc), nil
	}
	return nil, fmt.Errorf("%w: channel has no ID", backend.ErrUnresolvedChannel)
}

func (c *Client) SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error) {
	ch, err := c.ResolveChannel(ctx, msg.Channel)
	if err != nil {
		return nil, err
	}
	send := &discordgo.MessageSend{Content: msg.Content}
	if msg.ReplyTo != nil && msg.ReplyTo.ID != "" {
		send.Reference = &discordgo.MessageReference{
			MessageID: msg.ReplyTo.ID,
			ChannelID: ch.ID,
		}
	}
	sent, err := c.session.ChannelMessageSendComplex(ch.ID, send, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	c.log.Debug().
		Str("channel_id", ch.ID).
		Str("message_id", sent.ID).
		Msg("Sent message")
	return &FromDiscordgoMessage(sent).Message, nil
}
