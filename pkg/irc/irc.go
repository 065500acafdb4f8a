// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package irc maps IRC PRIVMSG lines onto the chatom model. IRC has no
// entity IDs, so users are keyed by nick and channels by name; everything
// is plaintext and the package is model-only.
package irc

import (
	"regexp"
	"strings"

	"github.com/aiku/chatom/pkg/chatom"
)

var (
	// :nick!user@host PRIVMSG #channel :message text
	privmsgRe = regexp.MustCompile(`^:([^!\s]+)(?:!([^@\s]+)@(\S+))? PRIVMSG (\S+) :(.*)$`)

	ctcpActionPrefix = "\x01ACTION "
	ctcpSuffix       = "\x01"
)

// User is an IRC user. Mentions are the bare nick; IRC clients highlight
// on nick substrings.
type User struct {
	chatom.User

	Host string `yaml:"host,omitempty" json:"host,omitempty"`
}

func (u *User) Mention() string {
	if u == nil {
		return ""
	}
	if u.Handle != "" {
		return u.Handle
	}
	return u.Name
}

// Message is an IRC message. IsAction marks CTCP ACTION ("/me") lines.
type Message struct {
	chatom.Message

	IsAction bool `yaml:"is_action,omitempty" json:"is_action,omitempty"`
}

// FromRaw parses a raw PRIVMSG line. It returns nil for lines that are not
// PRIVMSGs; other IRC commands carry no message content.
func FromRaw(line string) *Message {
	groups := privmsgRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if groups == nil {
		return nil
	}
	nick, ident, host, target, text := groups[1], groups[2], groups[3], groups[4], groups[5]

	msg := &Message{
		Message: chatom.Message{
			Content: text,
			Backend: "irc",
			Type:    chatom.MessageTypeDefault,
			Raw:     line,
		},
	}
	if strings.HasPrefix(text, ctcpActionPrefix) {
		msg.IsAction = true
		msg.Content = strings.TrimSuffix(strings.TrimPrefix(text, ctcpActionPrefix), ctcpSuffix)
	}

	hostmask := host
	if ident != "" && host != "" {
		hostmask = ident + "@" + host
	}
	author := &User{
		User: chatom.User{
			Identifiable: chatom.Identifiable{ID: nick, Name: nick},
			Handle:       nick,
			DisplayName:  nick,
		},
		Host: hostmask,
	}
	msg.Author = &author.User

	ch := &chatom.Channel{
		Identifiable: chatom.Identifiable{ID: target, Name: target},
	}
	if strings.HasPrefix(target, "#") || strings.HasPrefix(target, "&") {
		ch.ChannelType = chatom.ChannelTypePublic
	} else {
		// The target is a nick, so the line is a direct message.
		ch.ChannelType = chatom.ChannelTypeDirect
		ch.Users = append(ch.Users, msg.Author)
	}
	msg.Channel = ch
	return msg
}

// MentionsNick reports whether text mentions nick as a whole word, the way
// IRC clients decide whether to highlight.
func MentionsNick(text, nick string) bool {
	if nick == "" {
		return false
	}
	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == ';' || r == '\t'
	}) {
		if strings.EqualFold(word, nick) {
			return true
		}
	}
	return false
}
