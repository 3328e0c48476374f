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

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// GameVersion models the version of a Geometry Dash client. Versions uploaded
// before the game started tracking version numbers report the sentinel wire
// value 10, which decodes to the Unknown variant rather than "major 1, minor
// 0". Every other wire value splits into major = v/10, minor = v%10.
type GameVersion struct {
	unknown bool
	version *semver.Version
}

// UnknownGameVersion is the variant used for levels uploaded before GD
// started tracking client versions. Its wire representation is "10".
func UnknownGameVersion() GameVersion {
	return GameVersion{unknown: true}
}

// GameVersionFromUint8 decodes the wire representation of a GameVersion.
func GameVersionFromUint8(v uint8) GameVersion {
	if v == 10 {
		return UnknownGameVersion()
	}

	major := v / 10
	minor := v % 10

	version := semver.New(uint64(major), uint64(minor), 0, "", "")

	return GameVersion{version: version}
}

// ParseGameVersion parses the decimal wire representation of a GameVersion.
func ParseGameVersion(s string) (GameVersion, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return GameVersion{}, fmt.Errorf("parsing game version %q: %w", s, err)
	}

	return GameVersionFromUint8(uint8(v)), nil
}

// Uint8 encodes the GameVersion back to its wire representation.
func (g GameVersion) Uint8() uint8 {
	if g.unknown || g.version == nil {
		return 10
	}

	return uint8(g.version.Major())*10 + uint8(g.version.Minor())
}

// Unknown reports whether this is the Unknown variant.
func (g GameVersion) Unknown() bool {
	return g.unknown
}

// String renders the decimal wire representation, matching the Rust
// ToString impl rather than semver's dotted form.
func (g GameVersion) String() string {
	return strconv.FormatUint(uint64(g.Uint8()), 10)
}

// AtLeast reports whether g is the same version as, or newer than, other.
// Unknown is never considered comparable: it reports false against any
// argument, including itself, since "before version tracking existed" has
// no ordering relative to a concrete version.
func (g GameVersion) AtLeast(other GameVersion) bool {
	if g.unknown || other.unknown {
		return false
	}

	return !g.version.LessThan(other.version)
}

// Equal reports whether two GameVersions encode the same wire value.
func (g GameVersion) Equal(other GameVersion) bool {
	return g.Uint8() == other.Uint8()
}

// MarshalJSON encodes g as its wire representation, the same byte a
// CacheStore would have decoded it from.
func (g GameVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Uint8())
}

func (g *GameVersion) UnmarshalJSON(data []byte) error {
	var v uint8
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*g = GameVersionFromUint8(v)

	return nil
}
