// Copyright 2024-2026 Aiku AI
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package chatom

// Identifiable is the base of every platform entity. The ID is
// platform-assigned and stays empty until the entity is resolved by a
// backend adapter.
//
// Incomplete marks an entity that represents an intent to resolve (for
// example a DM channel that only names its target user) rather than a
// concrete platform object. Backend adapters are responsible for resolving
// incomplete entities — assigning an ID — before use.
type Identifiable struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	Incomplete bool   `yaml:"incomplete,omitempty" json:"incomplete,omitempty"`
}

// MarkIncomplete flags the entity as pending backend resolution.
func (i *Identifiable) MarkIncomplete() {
	i.Incomplete = true
}

// MarkComplete clears the incomplete flag.
func (i *Identifiable) MarkComplete() {
	i.Incomplete = false
}

// IsComplete reports whether the entity has a platform-assigned ID and is
// not awaiting resolution.
func (i Identifiable) IsComplete() bool {
	return i.ID != "" && !i.Incomplete
}

// IsResolvable reports whether a backend could resolve this entity. An
// entity without an ID may still be valid if other resolvable attributes
// are present; entity types with richer attributes shadow this method.
func (i Identifiable) IsResolvable() bool {
	return i.ID != "" || i.Name != ""
}
