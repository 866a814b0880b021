// Package xmlx holds the three document shapes the legacy client kept
// as plain XML rather than in an FDB table: the character save object,
// level-behavior definitions, and localization tables. These are data
// shapes only (encoding/xml-tagged structs), grounded on
// original_source's modules/xml/src/obj, modules/xml/src/behavior.rs and
// modules/xml/src/localization/interner.rs; no FDB logic lives here, per
// this suite's "external collaborators at interface depth" scope.
package xmlx

import "encoding/xml"

// Object is a player's character save: the root of the <obj> document.
// Simplified from the original's nine embedded components down to the
// fields most tools need; each component keeps its own element so the
// shape stays recognizable against the source.
type Object struct {
	XMLName xml.Name `xml:"obj"`
	Version uint32   `xml:"v,attr"`

	Minifig      Minifig      `xml:"mf"`
	Character    Character    `xml:"char"`
	Destructible Destructible `xml:"dest"`
	Inventory    Inventory    `xml:"inv"`
	Level        Level        `xml:"lvl"`
	Flags        Flags        `xml:"flag"`
	Respawn      Respawn      `xml:"res"`
	Missions     Missions     `xml:"mis"`
	Pets         Pets         `xml:"pet"`
}

// Minifig is the player's minifigure customization.
type Minifig struct {
	Shirt     uint32 `xml:"si,attr"`
	Pants     uint32 `xml:"pi,attr"`
	HairID    uint32 `xml:"h,attr"`
	HairColor uint32 `xml:"hc,attr"`
}

// Character holds the base stats and identity of the saved character.
type Character struct {
	Name       string `xml:"nm,attr"`
	AccountID  uint64 `xml:"acct,attr"`
	Level      uint32 `xml:"lvl,attr"`
	Currency   int64  `xml:"cc,attr"`
	University uint32 `xml:"univ,attr"`
}

// Destructible holds health/armor/imagination and related stats.
type Destructible struct {
	Health      int32 `xml:"hp,attr"`
	MaxHealth   int32 `xml:"maxhp,attr"`
	Armor       int32 `xml:"armor,attr"`
	Imagination int32 `xml:"imag,attr"`
}

// Inventory is a flat list of item stacks. The original format spreads
// items across multiple typed "bags"; this keeps one list tagged with
// the bag it came from, which round-trips the same information with a
// simpler Go shape.
type Inventory struct {
	Items []InventoryItem `xml:"items>i"`
}

// InventoryItem is one item stack.
type InventoryItem struct {
	LOT   int32  `xml:"l,attr"`
	ID    uint64 `xml:"id,attr"`
	Count uint32 `xml:"c,attr"`
	Bag   uint32 `xml:"b,attr"`
	Slot  int32  `xml:"s,attr"`
}

// Level tracks levelling progression.
type Level struct {
	CurrentLevel          uint32 `xml:"l,attr"`
	UnassignedSkillPoints uint32 `xml:"u,attr"`
}

// Flags stores arbitrary on/off gameplay flags, keyed by their numeric
// flag ID; the original format run-length encodes a bitset, this keeps
// just the IDs that are set.
type Flags struct {
	Set []uint64 `xml:"f"`
}

// Respawn lists the known respawn points.
type Respawn struct {
	Points []RespawnPoint `xml:"point"`
}

// RespawnPoint is a single saved respawn location.
type RespawnPoint struct {
	ZoneID uint32  `xml:"zi,attr"`
	X      float32 `xml:"x,attr"`
	Y      float32 `xml:"y,attr"`
	Z      float32 `xml:"z,attr"`
}

// Missions tracks mission/achievement progress.
type Missions struct {
	Entries []MissionEntry `xml:"m"`
}

// MissionEntry is one mission's completion state.
type MissionEntry struct {
	ID        uint32 `xml:"id,attr"`
	State     uint32 `xml:"state,attr"`
	Completed bool   `xml:"done,attr"`
}

// Pets lists owned, tamed pets.
type Pets struct {
	Owned []Pet `xml:"p"`
}

// Pet is one tamed pet.
type Pet struct {
	LOT       int32  `xml:"l,attr"`
	ID        uint64 `xml:"id,attr"`
	Name      string `xml:"nm,attr"`
	Moderated bool   `xml:"mod,attr"`
}
