// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "errors"

var (
	// ErrInvalidChannel wraps channel construction validation failures:
	// a DIRECT channel with more than one user, or a GROUP channel with
	// exactly one.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrNoAuthor is returned by Message.AsDMToAuthor when the source
	// message has no author to address.
	ErrNoAuthor = errors.New("message has no author")
)
