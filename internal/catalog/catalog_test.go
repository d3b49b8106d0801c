package catalog

import (
	"testing"
)

var testEntries = []Entry{
	{Key: "knight", Name: "Knight", Rarity: "Common", Elixir: 3, Type: "Troop"},
	{Key: "baby-dragon", Name: "Baby Dragon", Rarity: "Epic", Elixir: 4, Type: "Troop"},
	{Key: "miner", Name: "Miner", Rarity: "Legendary", Elixir: 3, Type: "Troop"},
}

func TestFind(t *testing.T) {
	cat := FromEntries(testEntries)

	tests := []struct {
		identifier string
		wantKey    string
		wantOK     bool
	}{
		{"Knight", "knight", true},
		{"knight", "knight", true},
		{"  BABY DRAGON  ", "baby-dragon", true},
		{"baby-dragon", "baby-dragon", true},
		{"Golem", "", false},
	}
	for _, tt := range tests {
		entry, ok := cat.Find(tt.identifier)
		if ok != tt.wantOK {
			t.Errorf("Find(%q) ok = %v, want %v", tt.identifier, ok, tt.wantOK)
			continue
		}
		if ok && entry.Key != tt.wantKey {
			t.Errorf("Find(%q) = %q, want %q", tt.identifier, entry.Key, tt.wantKey)
		}
	}
}

func TestRarity(t *testing.T) {
	cat := FromEntries(testEntries)

	if rarity, ok := cat.Rarity("miner"); !ok || rarity != "Legendary" {
		t.Errorf("Rarity(miner) = %q, %v", rarity, ok)
	}
	if _, ok := cat.Rarity("Golem"); ok {
		t.Error("Rarity should miss for unknown cards")
	}
}

func TestRequire(t *testing.T) {
	cat := FromEntries(testEntries)

	if _, err := cat.Require("Knight"); err != nil {
		t.Errorf("Require(Knight): %v", err)
	}
	if _, err := cat.Require("Golem"); err == nil {
		t.Error("Require should fail for unknown cards")
	}
}
