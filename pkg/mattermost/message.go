// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package mattermost

import (
	"time"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/aiku/chatom/pkg/chatom"
)

// FromChannel converts a Mattermost channel to the chatom model.
func FromChannel(mc *model.Channel) *chatom.Channel {
	if mc == nil {
		return nil
	}
	ch := &chatom.Channel{
		Identifiable: chatom.Identifiable{ID: mc.Id, Name: mc.DisplayName},
		Topic:        mc.Purpose,
		IsArchived:   mc.DeleteAt != 0,
	}
	if ch.Name == "" {
		ch.Name = mc.Name
	}
	switch mc.Type {
	case model.ChannelTypeDirect:
		ch.ChannelType = chatom.ChannelTypeDirect
	case model.ChannelTypeGroup:
		ch.ChannelType = chatom.ChannelTypeGroup
	case model.ChannelTypePrivate:
		ch.ChannelType = chatom.ChannelTypePrivate
	default:
		ch.ChannelType = chatom.ChannelTypePublic
	}
	return ch
}

func messageTypeFromPost(postType string) chatom.MessageType {
	switch postType {
	case model.PostTypeDefault:
		return chatom.MessageTypeDefault
	case model.PostTypeJoinChannel, model.PostTypeJoinTeam:
		return chatom.MessageTypeJoin
	case model.PostTypeLeaveChannel, model.PostTypeLeaveTeam:
		return chatom.MessageTypeLeave
	default:
		return chatom.MessageTypeSystem
	}
}

// FromPost converts a Mattermost post to the chatom model. RootId keys the
// thread the same way reply posts reference it.
func FromPost(post *model.Post) *chatom.Message {
	if post == nil {
		return nil
	}
	msg := &chatom.Message{
		Identifiable: chatom.Identifiable{ID: post.Id},
		Content:      post.Message,
		Backend:      "mattermost",
		Type:         messageTypeFromPost(post.Type),
		CreatedAt:    time.UnixMilli(post.CreateAt).UTC(),
		IsPinned:     post.IsPinned,
		Raw:          post,
	}
	if post.EditAt != 0 {
		msg.EditedAt = time.UnixMilli(post.EditAt).UTC()
		msg.IsEdited = true
	}
	if post.UserId != "" {
		msg.Author = &chatom.User{Identifiable: chatom.Identifiable{ID: post.UserId, Incomplete: true}}
	}
	if post.ChannelId != "" {
		msg.Channel = &chatom.Channel{Identifiable: chatom.Identifiable{ID: post.ChannelId, Incomplete: true}}
	}
	if post.RootId != "" {
		msg.Type = chatom.MessageTypeReply
		msg.Thread = &chatom.Thread{
			Identifiable:  chatom.Identifiable{ID: post.RootId},
			ParentChannel: msg.Channel,
		}
		msg.Reference = &chatom.MessageReference{
			MessageID: post.RootId,
			ChannelID: post.ChannelId,
		}
	}
	for _, fileID := range post.FileIds {
		msg.Attachments = append(msg.Attachments, chatom.Attachment{
			Identifiable: chatom.Identifiable{ID: fileID, Incomplete: true},
		})
	}
	return msg
}
