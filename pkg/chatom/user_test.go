// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

import "testing"

func TestBestDisplayName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "explicit display name wins",
			user: User{Identifiable: Identifiable{ID: "U1", Name: "alice"}, DisplayName: "Alice A", Handle: "aa"},
			want: "Alice A",
		},
		{
			name: "name before handle",
			user: User{Identifiable: Identifiable{ID: "U1", Name: "alice"}, Handle: "aa"},
			want: "alice",
		},
		{
			name: "handle before id",
			user: User{Identifiable: Identifiable{ID: "U1"}, Handle: "aa"},
			want: "aa",
		},
		{
			name: "id as last resort",
			user: User{Identifiable: Identifiable{ID: "U1"}},
			want: "U1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.user.BestDisplayName(); got != tt.want {
				t.Errorf("BestDisplayName: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewUserDerivesDisplayName(t *testing.T) {
	t.Parallel()
	u := NewUser("U1", "alice", "aa")
	if u.DisplayName != "alice" {
		t.Errorf("DisplayName: got %q, want %q", u.DisplayName, "alice")
	}
}

func TestIdentifiableCompleteness(t *testing.T) {
	t.Parallel()
	i := Identifiable{ID: "X"}
	if !i.IsComplete() {
		t.Error("identifiable with ID should be complete")
	}
	i.MarkIncomplete()
	if i.IsComplete() {
		t.Error("MarkIncomplete should make it incomplete")
	}
	i.MarkComplete()
	if !i.IsComplete() {
		t.Error("MarkComplete should restore completeness")
	}
	if (Identifiable{}).IsResolvable() {
		t.Error("empty identifiable should not be resolvable")
	}
	if !(Identifiable{Name: "n"}).IsResolvable() {
		t.Error("named identifiable should be resolvable")
	}
}

func TestUserIsResolvable(t *testing.T) {
	t.Parallel()
	if !(User{Email: "a@b.c"}).IsResolvable() {
		t.Error("user with only an email should be resolvable")
	}
	if (User{}).IsResolvable() {
		t.Error("empty user should not be resolvable")
	}
}
