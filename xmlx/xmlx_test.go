package xmlx_test

import (
	"encoding/xml"
	"testing"

	"github.com/LUDevNet/assembly-fdb/xmlx"
)

func TestObjectRoundTrip(t *testing.T) {
	obj := xmlx.Object{
		Version: 1,
		Character: xmlx.Character{
			Name:  "Test Minifig",
			Level: 12,
		},
		Inventory: xmlx.Inventory{
			Items: []xmlx.InventoryItem{
				{LOT: 6416, ID: 1, Count: 1, Bag: 0, Slot: 0},
			},
		},
	}
	data, err := xml.Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got xmlx.Object
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Character.Name != "Test Minifig" || got.Character.Level != 12 {
		t.Fatalf("character mismatch: %+v", got.Character)
	}
	if len(got.Inventory.Items) != 1 || got.Inventory.Items[0].LOT != 6416 {
		t.Fatalf("inventory mismatch: %+v", got.Inventory)
	}
}

func TestBehaviorRoundTrip(t *testing.T) {
	b := xmlx.Behavior{
		Version: "1.0",
		Name:    "FastAttack",
		Actions: []xmlx.CompoundAction{
			{Actions: []xmlx.Action{{Name: "Damage"}}},
		},
	}
	data, err := xml.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got xmlx.Behavior
	if err := xml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Name != "FastAttack" || len(got.Actions) != 1 || len(got.Actions[0].Actions) != 1 {
		t.Fatalf("behavior mismatch: %+v", got)
	}
}

func TestInterner(t *testing.T) {
	in := xmlx.NewInterner()
	a := in.Intern("UI_ALERT_BLADDER_FULL")
	b := in.Intern("UI_ALERT_BLADDER_FULL")
	if a != b {
		t.Fatalf("interning the same string twice produced different keys: %d != %d", a, b)
	}
	c := in.Intern("UI_ALERT_HUNGER_FULL")
	if c == a {
		t.Fatal("interning distinct strings produced the same key")
	}
	name, ok := in.Lookup(a)
	if !ok || name != "UI_ALERT_BLADDER_FULL" {
		t.Fatalf("Lookup(%d) = %q, %v", a, name, ok)
	}
}

func TestResolveFallsThroughTables(t *testing.T) {
	de := xmlx.LocaleTable{Language: "de_DE", Entries: []xmlx.LocaleEntry{{ID: "GREETING", Value: "Hallo"}}}
	en := xmlx.LocaleTable{Language: "en_US", Entries: []xmlx.LocaleEntry{
		{ID: "GREETING", Value: "Hello"},
		{ID: "FAREWELL", Value: "Goodbye"},
	}}

	got, err := xmlx.Resolve([]xmlx.LocaleTable{de, en}, "GREETING")
	if err != nil || got != "Hallo" {
		t.Fatalf("Resolve(GREETING) = %q, %v; want Hallo", got, err)
	}
	got, err = xmlx.Resolve([]xmlx.LocaleTable{de, en}, "FAREWELL")
	if err != nil || got != "Goodbye" {
		t.Fatalf("Resolve(FAREWELL) = %q, %v; want Goodbye", got, err)
	}
	if _, err := xmlx.Resolve([]xmlx.LocaleTable{de, en}, "MISSING"); err == nil {
		t.Fatal("expected error for an unresolvable key")
	}
}
