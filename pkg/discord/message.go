// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package discord

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"go.mau.fi/util/ptr"

	"github.com/aiku/chatom/pkg/chatom"
)

// Guild is the Discord organization. Discord calls them guilds in the API
// and servers in the UI.
type Guild struct {
	chatom.Organization

	PremiumTier              int      `yaml:"premium_tier,omitempty" json:"premium_tier,omitempty"`
	NSFWLevel                int      `yaml:"nsfw_level,omitempty" json:"nsfw_level,omitempty"`
	PreferredLocale          string   `yaml:"preferred_locale,omitempty" json:"preferred_locale,omitempty"`
	ApproximateMemberCount   int      `yaml:"approximate_member_count,omitempty" json:"approximate_member_count,omitempty"`
	ApproximatePresenceCount int      `yaml:"approximate_presence_count,omitempty" json:"approximate_presence_count,omitempty"`
	VanityURLCode            string   `yaml:"vanity_url_code,omitempty" json:"vanity_url_code,omitempty"`
	Features                 []string `yaml:"features,omitempty" json:"features,omitempty"`
}

// FromDiscordgoGuild converts a discordgo guild to the chatom model.
func FromDiscordgoGuild(dg *discordgo.Guild) *Guild {
	if dg == nil {
		return nil
	}
	g := &Guild{
		Organization: chatom.Organization{
			Identifiable: chatom.Identifiable{ID: dg.ID, Name: dg.Name},
			Description:  dg.Description,
		},
		PremiumTier:              int(dg.PremiumTier),
		NSFWLevel:                int(dg.NSFWLevel),
		PreferredLocale:          dg.PreferredLocale,
		ApproximateMemberCount:   dg.ApproximateMemberCount,
		ApproximatePresenceCount: dg.ApproximatePresenceCount,
		VanityURLCode:            dg.VanityURLCode,
	}
	if dg.MemberCount != 0 {
		g.MemberCount = ptr.Ptr(dg.MemberCount)
	}
	if dg.OwnerID != "" {
		g.Owner = &chatom.User{Identifiable: chatom.Identifiable{ID: dg.OwnerID, Incomplete: true}}
	}
	if url := dg.IconURL(""); url != "" {
		g.IconURL = url
	}
	for _, f := range dg.Features {
		g.Features = append(g.Features, string(f))
	}
	return g
}

// Message is a Discord message with the guild identifier preserved.
type Message struct {
	chatom.Message

	GuildID string `yaml:"guild_id,omitempty" json:"guild_id,omitempty"`
}

// FromDiscordgoChannel converts a discordgo channel to the chatom model.
func FromDiscordgoChannel(dc *discordgo.Channel) *chatom.Channel {
	if dc == nil {
		return nil
	}
	ch := &chatom.Channel{
		Identifiable: chatom.Identifiable{ID: dc.ID, Name: dc.Name},
		Topic:        dc.Topic,
	}
	switch dc.Type {
	case discordgo.ChannelTypeDM:
		ch.ChannelType = chatom.ChannelTypeDirect
	case discordgo.ChannelTypeGroupDM:
		ch.ChannelType = chatom.ChannelTypeGroup
	case discordgo.ChannelTypeGuildPublicThread, discordgo.ChannelTypeGuildPrivateThread, discordgo.ChannelTypeGuildNewsThread:
		ch.ChannelType = chatom.ChannelTypeThread
	default:
		ch.ChannelType = chatom.ChannelTypePublic
	}
	if dc.ParentID != "" {
		ch.Parent = &chatom.Channel{Identifiable: chatom.Identifiable{ID: dc.ParentID, Incomplete: true}}
	}
	for _, recipient := range dc.Recipients {
		if ru := FromDiscordgoUser(recipient); ru != nil {
			ch.Users = append(ch.Users, &ru.User)
		}
	}
	return ch
}

func messageTypeFromDiscordgo(t discordgo.MessageType) chatom.MessageType {
	switch t {
	case discordgo.MessageTypeDefault:
		return chatom.MessageTypeDefault
	case discordgo.MessageTypeReply:
		return chatom.MessageTypeReply
	case discordgo.MessageTypeGuildMemberJoin:
		return chatom.MessageTypeJoin
	case discordgo.MessageTypeChannelPinnedMessage:
		return chatom.MessageTypePin
	case discordgo.MessageTypeThreadCreated:
		return chatom.MessageTypeThreadCreated
	default:
		return chatom.MessageTypeUnknown
	}
}

// FromDiscordgoMessage converts a discordgo message to the chatom model.
// The raw message is retained for callers that need fields outside the
// unified model.
func FromDiscordgoMessage(dm *discordgo.Message) *Message {
	if dm == nil {
		return nil
	}
	msg := &Message{
		Message: chatom.Message{
			Identifiable: chatom.Identifiable{ID: dm.ID},
			Content:      dm.Content,
			Backend:      "discord",
			Type:         messageTypeFromDiscordgo(dm.Type),
			IsPinned:     dm.Pinned,
			Raw:          dm,
		},
		GuildID: dm.GuildID,
	}
	if !dm.Timestamp.IsZero() {
		msg.CreatedAt = dm.Timestamp
	}
	if dm.Author != nil {
		msg.Author = &FromDiscordgoUser(dm.Author).User
	}
	if dm.ChannelID != "" {
		msg.Channel = &chatom.Channel{Identifiable: chatom.Identifiable{ID: dm.ChannelID, Incomplete: true}}
	}
	if dm.GuildID != "" {
		msg.Organization = &chatom.Organization{Identifiable: chatom.Identifiable{ID: dm.GuildID, Incomplete: true}}
	}
	for _, mu := range dm.Mentions {
		msg.Mentions = append(msg.Mentions, &FromDiscordgoUser(mu).User)
	}
	for _, att := range dm.Attachments {
		msg.Attachments = append(msg.Attachments, chatom.Attachment{
			Identifiable: chatom.Identifiable{ID: att.ID, Name: att.Filename},
			Filename:     att.Filename,
			URL:          att.URL,
			ContentType:  att.ContentType,
			Size:         int64(att.Size),
		})
	}
	if ref := dm.MessageReference; ref != nil {
		msg.Reference = &chatom.MessageReference{
			MessageID: ref.MessageID,
			ChannelID: ref.ChannelID,
			GuildID:   ref.GuildID,
		}
	}
	if dm.ReferencedMessage != nil {
		msg.ReplyTo = &FromDiscordgoMessage(dm.ReferencedMessage).Message
	}
	return msg
}

// Permalink returns the canonical message URL, or "" when the message is
// missing the IDs the URL needs. DMs use "@me" in place of the guild ID.
func (m *Message) Permalink() string {
	if m == nil || m.ID == "" || m.ChannelID() == "" {
		return ""
	}
	guild := m.GuildID
	if guild == "" {
		guild = "@me"
	}
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guild, m.ChannelID(), m.ID)
}

// SnowflakeTime extracts the creation time encoded in a Discord snowflake
// ID, for messages fetched without timestamps.
func SnowflakeTime(id string) (int64, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	const discordEpochMS = 1420070400000
	return int64(n>>22) + discordEpochMS, true
}
