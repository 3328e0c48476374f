/*
Copyright 2026 GDCF Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

// Creator is the partial identity of a level's author embedded directly in
// level listings: a user id, a display name, and an optional account id.
// AccountID is nil when the creator has no linked (registered) account, in
// which case they can never be upgraded to a full User.
type Creator struct {
	UserID    uint64
	Name      string
	AccountID *uint64
}

// HasAccount reports whether this Creator can be upgraded to a User.
func (c Creator) HasAccount() bool {
	return c.AccountID != nil
}

// User is a fully resolved player profile.
type User struct {
	UserID        uint64
	AccountID     uint64
	Name          string
	Stars         uint32
	Demons        uint32
	CreatorPoints uint32
	Rank          uint32
}
