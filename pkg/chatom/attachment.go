// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

// Attachment is a file attached to a message.
type Attachment struct {
	Identifiable `yaml:",inline"`

	Filename    string `yaml:"filename,omitempty" json:"filename,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	ContentType string `yaml:"content_type,omitempty" json:"content_type,omitempty"`
	Size        int64  `yaml:"size,omitempty" json:"size,omitempty"`
}

// EmbedField is a single name/value pair inside an Embed.
type EmbedField struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
	Inline bool   `yaml:"inline,omitempty" json:"inline,omitempty"`
}

// Embed is a rich content card attached to a message.
type Embed struct {
	Title        string       `yaml:"title,omitempty" json:"title,omitempty"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	URL          string       `yaml:"url,omitempty" json:"url,omitempty"`
	Color        int          `yaml:"color,omitempty" json:"color,omitempty"`
	ImageURL     string       `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	ThumbnailURL string       `yaml:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Fields       []EmbedField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Reaction is an emoji reaction on a message.
type Reaction struct {
	// Emoji is the platform's reaction identifier: a unicode emoji or an
	// emoji name like "thumbsup".
	Emoji string  `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	Count int     `yaml:"count,omitempty" json:"count,omitempty"`
	Users []*User `yaml:"users,omitempty" json:"users,omitempty"`
	// Me reports whether the connected account added this reaction.
	Me bool `yaml:"me,omitempty" json:"me,omitempty"`
}
