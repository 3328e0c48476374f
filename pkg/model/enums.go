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
	"strconv"
)

// LevelLength is the possible level lengths known to GDCF.
type LevelLength int

const (
	LevelLengthTiny LevelLength = iota
	LevelLengthShort
	LevelLengthMedium
	LevelLengthLong
	LevelLengthExtraLong
	LevelLengthUnknown
)

// ParseLevelLength decodes the wire integer representation of a LevelLength.
func ParseLevelLength(value string) LevelLength {
	switch value {
	case "0":
		return LevelLengthTiny
	case "1":
		return LevelLengthShort
	case "2":
		return LevelLengthMedium
	case "3":
		return LevelLengthLong
	case "4":
		return LevelLengthExtraLong
	default:
		return LevelLengthUnknown
	}
}

// DemonRating is the difficulty rating of a demon level.
type DemonRating int

const (
	DemonRatingEasy DemonRating = iota
	DemonRatingMedium
	DemonRatingHard
	DemonRatingInsane
	DemonRatingExtreme
	DemonRatingUnknown
)

// ParseDemonRating decodes the wire integer representation of a DemonRating.
// Both the request encoding (1-5) and the response encoding (10-50) are
// accepted, since the two requests/responses that carry this value disagree
// on scale.
func ParseDemonRating(value string) DemonRating {
	switch value {
	case "1", "10":
		return DemonRatingEasy
	case "2", "20":
		return DemonRatingMedium
	case "3", "30":
		return DemonRatingHard
	case "4", "40":
		return DemonRatingInsane
	case "5", "50":
		return DemonRatingExtreme
	default:
		return DemonRatingUnknown
	}
}

// LevelRating is the overall difficulty rating of a level.
type LevelRating struct {
	// kind discriminates the Auto/Demon/NotAvailable/graded/Unknown shapes.
	kind  levelRatingKind
	demon DemonRating
}

type levelRatingKind int

const (
	levelRatingAuto levelRatingKind = iota
	levelRatingDemon
	levelRatingNotAvailable
	levelRatingEasy
	levelRatingNormal
	levelRatingHard
	levelRatingHarder
	levelRatingInsane
	levelRatingUnknown
)

func LevelRatingAuto() LevelRating           { return LevelRating{kind: levelRatingAuto} }
func LevelRatingNotAvailable() LevelRating   { return LevelRating{kind: levelRatingNotAvailable} }
func LevelRatingEasy() LevelRating           { return LevelRating{kind: levelRatingEasy} }
func LevelRatingNormal() LevelRating         { return LevelRating{kind: levelRatingNormal} }
func LevelRatingHard() LevelRating           { return LevelRating{kind: levelRatingHard} }
func LevelRatingHarder() LevelRating         { return LevelRating{kind: levelRatingHarder} }
func LevelRatingInsane() LevelRating         { return LevelRating{kind: levelRatingInsane} }
func LevelRatingUnknown() LevelRating        { return LevelRating{kind: levelRatingUnknown} }
func LevelRatingDemonOf(d DemonRating) LevelRating {
	return LevelRating{kind: levelRatingDemon, demon: d}
}

// IsDemon reports whether the rating is the Demon variant, and if so, its
// DemonRating.
func (r LevelRating) IsDemon() (DemonRating, bool) {
	if r.kind != levelRatingDemon {
		return DemonRating(0), false
	}

	return r.demon, true
}

func (r LevelRating) Equal(other LevelRating) bool {
	return r.kind == other.kind && r.demon == other.demon
}

// ParseLevelRating decodes the response-side integer representation of a
// non-demon, non-auto rating.
func ParseLevelRating(value string) LevelRating {
	switch value {
	case "0":
		return LevelRatingNotAvailable()
	case "10":
		return LevelRatingEasy()
	case "20":
		return LevelRatingNormal()
	case "30":
		return LevelRatingHard()
	case "40":
		return LevelRatingHarder()
	case "50":
		return LevelRatingInsane()
	default:
		return LevelRatingUnknown()
	}
}

// levelRatingJSON mirrors LevelRating's unexported fields for
// marshalling; a CacheStore persisting a Level needs a faithful round trip
// through encoding/json, which only ever sees exported fields.
type levelRatingJSON struct {
	Kind  levelRatingKind `json:"kind"`
	Demon DemonRating     `json:"demon,omitempty"`
}

func (r LevelRating) MarshalJSON() ([]byte, error) {
	return json.Marshal(levelRatingJSON{Kind: r.kind, Demon: r.demon})
}

func (r *LevelRating) UnmarshalJSON(data []byte) error {
	var aux levelRatingJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.kind = aux.Kind
	r.demon = aux.Demon

	return nil
}

// ProcessDifficulty reconstructs a LevelRating from the three indices the GD
// wire format splits it across: the raw rating, and the is_auto/is_demon
// flags that change how the raw rating is interpreted.
func ProcessDifficulty(rating string, isAuto, isDemon bool) LevelRating {
	switch {
	case isDemon:
		return LevelRatingDemonOf(ParseDemonRating(rating))
	case isAuto:
		return LevelRatingAuto()
	default:
		return ParseLevelRating(rating)
	}
}

// Featured is a level's featured state.
type Featured struct {
	featured bool
	wasFeatured bool
	weight   uint32
}

func FeaturedNotFeatured() Featured { return Featured{} }
func FeaturedUnfeatured() Featured  { return Featured{wasFeatured: true} }
func FeaturedWeight(weight uint32) Featured {
	return Featured{featured: true, weight: weight}
}

// Weight returns the featured weight and true if the level is currently
// featured.
func (f Featured) Weight() (uint32, bool) {
	return f.weight, f.featured
}

type featuredJSON struct {
	Featured    bool   `json:"featured"`
	WasFeatured bool   `json:"was_featured,omitempty"`
	Weight      uint32 `json:"weight,omitempty"`
}

func (f Featured) MarshalJSON() ([]byte, error) {
	return json.Marshal(featuredJSON{Featured: f.featured, WasFeatured: f.wasFeatured, Weight: f.weight})
}

func (f *Featured) UnmarshalJSON(data []byte) error {
	var aux featuredJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	f.featured = aux.Featured
	f.wasFeatured = aux.WasFeatured
	f.weight = aux.Weight

	return nil
}

// ParseFeatured decodes the wire representation of Featured: -1 means never
// featured, 0 means unfeatured-but-was, any other value is the weight.
func ParseFeatured(value string) (Featured, error) {
	switch value {
	case "-1":
		return FeaturedNotFeatured(), nil
	case "0":
		return FeaturedUnfeatured(), nil
	default:
		weight, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return Featured{}, err
		}

		return FeaturedWeight(uint32(weight)), nil
	}
}
