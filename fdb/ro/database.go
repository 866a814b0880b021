// Package ro is the zero-copy view over an FDB buffer: thin handles
// (buffer + offset) that walk the raw layout on demand without allocation.
// Every handle in this package is a Cursor plus the minimum state needed
// to re-derive its children, the same discipline as the teacher's
// compactindexsized.DB/Bucket pair and the original Handle<T> wrapper
// (modules/data/src/fdb/ro/mod.rs in the source this was distilled from).
package ro

import (
	"sort"

	"github.com/LUDevNet/assembly-fdb/fdb/cursor"
	"github.com/LUDevNet/assembly-fdb/fdb/raw"
)

// Database is the root handle over an FDB buffer.
type Database struct {
	c cursor.Cursor
}

// Open wraps buf in a Database handle. It does not validate anything
// beyond what reading the 8-byte header requires; corruption further in
// is only discovered when the affected subtree is traversed, per the
// "a corrupt inner structure poisons only its subtree" error model.
func Open(buf []byte) (Database, error) {
	c := cursor.New(buf)
	if _, err := cursor.Cast(c, 0, headerDecoder); err != nil {
		return Database{}, err
	}
	return Database{c: c}, nil
}

func (d Database) header() raw.Header {
	h, _ := cursor.Cast(d.c, 0, headerDecoder)
	return h
}

// Tables returns the table list. Touches the top-level array eagerly, so
// it can fail; everything below it is traversed lazily.
func (d Database) Tables() (Tables, error) {
	h := d.header()
	s, err := cursor.CastSlice(d.c, h.Tables.BaseOffset, h.Tables.Count, tableHeaderDecoder)
	if err != nil {
		return Tables{}, err
	}
	return Tables{c: d.c, headers: s}, nil
}

// Tables is the table-header array: Database.Tables()[i] gives a
// TableHeader (def+data offsets), but table names are only known once the
// TableDef is read, so ByName resolves names lazily during the search.
type Tables struct {
	c       cursor.Cursor
	headers cursor.Slice[raw.TableHeader]
}

func (t Tables) Len() int {
	return t.headers.Len()
}

// At returns the i'th table in file order (== name order, since the
// format requires the table list to be sorted ascending by name).
func (t Tables) At(i int) (Table, error) {
	th := t.headers.At(i)
	def, err := cursor.Cast(t.c, th.Def, tableDefDecoder)
	if err != nil {
		return Table{}, err
	}
	data, err := cursor.Cast(t.c, th.Data, tableDataDecoder)
	if err != nil {
		return Table{}, err
	}
	return Table{c: t.c, def: def, data: data}, nil
}

// nameAt reads just the name of the i'th table, for the binary search in
// ByName; it avoids resolving TableData (not needed for a name compare).
func (t Tables) nameAt(i int) (string, error) {
	th := t.headers.At(i)
	def, err := cursor.Cast(t.c, th.Def, tableDefDecoder)
	if err != nil {
		return "", err
	}
	b, err := t.c.CStr(def.NameOffset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ByName performs a binary search over the (assumed ascending, Latin-1
// byte order) table list. Returns (Table{}, false, nil) on a clean miss; a
// non-nil error means a table header or name along the search path could
// not be read (a corruption, not a miss).
func (t Tables) ByName(name string) (Table, bool, error) {
	n := t.Len()
	var searchErr error
	idx := sort.Search(n, func(i int) bool {
		if searchErr != nil {
			return true
		}
		got, err := t.nameAt(i)
		if err != nil {
			searchErr = err
			return true
		}
		return got >= name
	})
	if searchErr != nil {
		return Table{}, false, searchErr
	}
	if idx >= n {
		return Table{}, false, nil
	}
	got, err := t.nameAt(idx)
	if err != nil {
		return Table{}, false, err
	}
	if got != name {
		return Table{}, false, nil
	}
	tbl, err := t.At(idx)
	if err != nil {
		return Table{}, false, err
	}
	return tbl, true, nil
}
