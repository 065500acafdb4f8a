// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	mail "github.com/wneessen/go-mail"

	"github.com/aiku/chatom/pkg/backend"
	"github.com/aiku/chatom/pkg/chatom"
)

type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// From is the sender address used for all outgoing mail.
	From string `yaml:"from"`
	// Domain is the Message-ID domain, derived from From when empty.
	Domain string `yaml:"domain,omitempty"`
}

// Client is the go-mail backed SMTP adapter. Email is send-only here;
// inbound mail handling belongs to a mailbox poller, not this package.
type Client struct {
	log    zerolog.Logger
	cfg    Config
	client *mail.Client
}

var _ backend.Backend = (*Client)(nil)

func NewClient(log zerolog.Logger, cfg Config) (*Client, error) {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.Port != 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	if cfg.Domain == "" {
		if _, domain, ok := strings.Cut(cfg.From, "@"); ok {
			cfg.Domain = domain
		}
	}
	return &Client{
		log:    log.With().Str("backend", "email").Logger(),
		cfg:    cfg,
		client: client,
	}, nil
}

func (c *Client) Name() string {
	return "email"
}

func (c *Client) Capabilities() backend.Capabilities {
	return backend.EmailCapabilities
}

// Connect is a no-op: SMTP sessions are dialed per send.
func (c *Client) Connect(ctx context.Context) error {
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Close()
}

// FetchUser builds a participant from an address. There is no directory to
// ask, so the result is as complete as the address itself.
func (c *Client) FetchUser(ctx context.Context, address string) (*chatom.User, error) {
	local, _, ok := strings.Cut(address, "@")
	if !ok {
		return nil, fmt.Errorf("invalid email address %q", address)
	}
	return &chatom.User{
		Identifiable: chatom.Identifiable{ID: address, Name: local},
		Email:        address,
	}, nil
}

// FetchChannel is unsupported: email channels exist only as participant
// sets, never as addressable entities.
func (c *Client) FetchChannel(ctx context.Context, id string) (*chatom.Channel, error) {
	return nil, fmt.Errorf("email has no addressable channels")
}

func (c *Client) ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	if ch == nil || len(ch.Users) == 0 {
		return nil, fmt.Errorf("%w: email channels need recipients", backend.ErrUnresolvedChannel)
	}
	return ch, nil
}

func (c *Client) SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error) {
	ch, err := c.ResolveChannel(ctx, msg.Channel)
	if err != nil {
		return nil, err
	}
	to := make([]string, 0, len(ch.Users))
	for _, u := range ch.Users {
		if u.Email != "" {
			to = append(to, u.Email)
		}
	}
	if len(to) == 0 {
		return nil, fmt.Errorf("%w: recipients have no addresses", backend.ErrUnresolvedChannel)
	}

	subject, _ := msg.Metadata["subject"].(string)
	if subject == "" {
		subject = "(no subject)"
	}
	em := FromChatom(msg, subject, c.cfg.From, to)
	if em.ID == "" || !strings.HasSuffix(em.ID, "@"+c.cfg.Domain+">") {
		em.ID = NewMessageID(c.cfg.Domain)
	}

	m := mail.NewMsg()
	if err := m.From(c.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(to...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(em.Subject)
	m.SetMessageIDWithValue(strings.Trim(em.ID, "<>"))
	if em.InReplyTo != "" {
		m.SetGenHeader(mail.HeaderInReplyTo, em.InReplyTo)
		m.SetGenHeader(mail.HeaderReferences, strings.Join(em.References, " "))
	}
	m.SetBodyString(mail.TypeTextPlain, em.Content)
	if em.HTMLBody != "" {
		m.AddAlternativeString(mail.TypeTextHTML, em.HTMLBody)
	}

	if err := c.client.DialAndSendWithContext(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to send mail: %w", err)
	}
	c.log.Debug().
		Str("message_id", em.ID).
		Int("recipients", len(to)).
		Msg("Sent mail")
	return &em.Message, nil
}
