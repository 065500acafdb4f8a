// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package backend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/aiku/chatom/pkg/chatom"
	"github.com/aiku/chatom/pkg/format"
)

type stubBackend struct {
	name string
}

func (s *stubBackend) Name() string                  { return s.name }
func (s *stubBackend) Capabilities() Capabilities    { return Capabilities{Format: format.Plaintext} }
func (s *stubBackend) Connect(context.Context) error { return nil }
func (s *stubBackend) Close(context.Context) error   { return nil }
func (s *stubBackend) SendMessage(_ context.Context, msg *chatom.Message) (*chatom.Message, error) {
	return msg, nil
}
func (s *stubBackend) FetchUser(context.Context, string) (*chatom.User, error) {
	return nil, ErrNotConnected
}
func (s *stubBackend) FetchChannel(context.Context, string) (*chatom.Channel, error) {
	return nil, ErrNotConnected
}
func (s *stubBackend) ResolveChannel(_ context.Context, ch *chatom.Channel) (*chatom.Channel, error) {
	return ch, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	b := &stubBackend{name: "slack"}
	if err := r.Register(b); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := r.Get("slack")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != b {
		t.Error("Get should return the registered backend")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(&stubBackend{name: "irc"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(&stubBackend{name: "irc"}); err == nil {
		t.Error("registering the same name twice should fail")
	}
}

func TestRegistryUnknown(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	_, err := r.Get("nope")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Get: got %v, want ErrNotRegistered", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	for _, name := range []string{"slack", "discord", "matrix"} {
		if err := r.Register(&stubBackend{name: name}); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	want := []string{"discord", "matrix", "slack"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names: got %v, want %v", got, want)
	}
}

func TestRegistryRemove(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(&stubBackend{name: "email"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !r.Remove("email") {
		t.Error("Remove should report present backend")
	}
	if r.Remove("email") {
		t.Error("Remove should report missing backend")
	}
}

func TestDecodeConfigStrict(t *testing.T) {
	t.Parallel()
	type cfg struct {
		Token string `yaml:"token"`
	}
	var c cfg
	if err := DecodeConfig([]byte("token: abc\n"), &c); err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if c.Token != "abc" {
		t.Errorf("Token: got %q, want %q", c.Token, "abc")
	}
	if err := DecodeConfig([]byte("token: abc\ntypo_key: x\n"), &c); err == nil {
		t.Error("unknown keys should fail strict decoding")
	}
}

func TestCapabilityFormatsMatchDialects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		caps Capabilities
		want format.Format
	}{
		{"discord", DiscordCapabilities, format.Markdown},
		{"slack", SlackCapabilities, format.SlackMarkdown},
		{"mattermost", MattermostCapabilities, format.Markdown},
		{"matrix", MatrixCapabilities, format.HTML},
		{"symphony", SymphonyCapabilities, format.MessageML},
		{"irc", IRCCapabilities, format.Plaintext},
		{"email", EmailCapabilities, format.HTML},
	}
	for _, tt := range tests {
		if tt.caps.Format != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.caps.Format, tt.want)
		}
		if tt.caps.Format != format.ForBackend(tt.name) {
			t.Errorf("%s: capability format disagrees with ForBackend", tt.name)
		}
	}
}
