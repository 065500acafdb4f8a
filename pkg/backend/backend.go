// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package backend defines the adapter boundary between the chatom entity
// model and vendor chat SDKs. Adapters are thin pass-through wrappers: they
// reformat requests and responses to and from the vendor SDK, which owns
// connection handling, retry, and rate limiting.
package backend

import (
	"context"
	"errors"

	"github.com/aiku/chatom/pkg/chatom"
)

var (
	// ErrNotRegistered is returned by Registry lookups for unknown backends.
	ErrNotRegistered = errors.New("backend not registered")
	// ErrNotConnected is returned by adapter operations before Connect.
	ErrNotConnected = errors.New("backend not connected")
	// ErrUnresolvedChannel is returned when a send targets a channel that
	// could not be resolved to a platform ID.
	ErrUnresolvedChannel = errors.New("channel is not resolved")
)

// Backend adapts one chat platform to the chatom entity model. All
// implementations must be safe for concurrent use once connected.
type Backend interface {
	// Name returns the lowercase backend identifier ("slack", "discord", ...).
	Name() string
	// Capabilities returns the platform's fixed capability matrix.
	Capabilities() Capabilities

	// Connect authenticates against the platform. Connection lifecycle
	// details (websockets, event feeds) belong to the vendor SDK.
	Connect(ctx context.Context) error
	// Close releases the platform session.
	Close(ctx context.Context) error

	// SendMessage delivers msg to its channel, resolving incomplete
	// channels first, and returns the sent message with platform-assigned
	// identifiers filled in.
	SendMessage(ctx context.Context, msg *chatom.Message) (*chatom.Message, error)
	// FetchUser resolves a user by platform ID.
	FetchUser(ctx context.Context, id string) (*chatom.User, error)
	// FetchChannel resolves a channel by platform ID.
	FetchChannel(ctx context.Context, id string) (*chatom.Channel, error)
	// ResolveChannel turns an incomplete channel (e.g. a DMTo intent) into
	// a complete one with a platform-assigned ID. Complete channels are
	// returned unchanged.
	ResolveChannel(ctx context.Context, ch *chatom.Channel) (*chatom.Channel, error)
}
