package xmlx

import (
	"encoding/xml"
	"fmt"
)

// StringKey identifies one interned localization string. Grounded on
// original_source's modules/xml/src/localization/interner.rs Interner,
// whose job — turning a string into a small integer key and back — is
// served in Go by an ordinary map plus slice; the original's unsafe
// 'static lifetime trick exists only to work around Rust's borrow
// checker and has no Go analogue worth keeping.
type StringKey uint32

// Interner deduplicates repeated translation-table strings (locale
// names, key paths) into small integer keys.
type Interner struct {
	ids   map[string]StringKey
	names []string
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]StringKey)}
}

// Get returns the key for name, if it has already been interned.
func (in *Interner) Get(name string) (StringKey, bool) {
	k, ok := in.ids[name]
	return k, ok
}

// Intern returns name's key, assigning it a new one on first use.
func (in *Interner) Intern(name string) StringKey {
	if k, ok := in.ids[name]; ok {
		return k
	}
	k := StringKey(len(in.names))
	in.names = append(in.names, name)
	in.ids[name] = k
	return k
}

// Lookup returns the string behind k.
func (in *Interner) Lookup(k StringKey) (string, bool) {
	if int(k) >= len(in.names) {
		return "", false
	}
	return in.names[int(k)], true
}

// LocaleTable is the localization document for one locale: a flat list
// of key/value translation pairs, as the client's locale XML stores
// them. Multiple LocaleTables (one per supported language) key into the
// same set of interned string paths.
type LocaleTable struct {
	XMLName  xml.Name      `xml:"Locale"`
	Language string        `xml:"locale,attr"`
	Entries  []LocaleEntry `xml:"Phrase"`
}

// LocaleEntry is one translated string, keyed by its string ID (e.g.
// "UI_ALERT_BLADDER_FULL").
type LocaleEntry struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// Index builds a lookup map from a LocaleTable's entries, the shape
// most consumers actually want.
func (t LocaleTable) Index() map[string]string {
	m := make(map[string]string, len(t.Entries))
	for _, e := range t.Entries {
		m[e.ID] = e.Value
	}
	return m
}

// Resolve looks up id across a set of per-language tables in order,
// returning the first match, for a "fall back to English" style lookup.
func Resolve(tables []LocaleTable, id string) (string, error) {
	for _, t := range tables {
		for _, e := range t.Entries {
			if e.ID == id {
				return e.Value, nil
			}
		}
	}
	return "", fmt.Errorf("xmlx: no translation found for %q", id)
}
