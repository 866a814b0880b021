package xmlx

import "encoding/xml"

// Behavior is one model behavior document, as stored in the
// ObjectBehaviors table's BLOB column. Grounded on original_source's
// modules/xml/src/behavior.rs Behavior/CompoundAction/Action shape.
type Behavior struct {
	XMLName xml.Name         `xml:"Behavior"`
	Version string           `xml:"version,attr"`
	Name    string           `xml:"Name"`
	Actions []CompoundAction `xml:"CompoundAction"`
}

// CompoundAction groups a list of actions executed together.
type CompoundAction struct {
	Actions []Action `xml:"Action"`
}

// Action is a single named behavior step with its string-encoded
// arguments. The original models strongly-typed, per-action-kind
// argument structs; this keeps the raw attribute list instead, which
// round-trips any action kind without needing one Go type per variant.
type Action struct {
	Name string     `xml:"name,attr"`
	Args []xml.Attr `xml:",any,attr"`
}
