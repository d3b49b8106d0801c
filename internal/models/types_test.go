package models

import "testing"

func TestCardNextLevel(t *testing.T) {
	card := Card{Name: "Knight", Rarity: Common, Level: 1}
	next, ok := card.NextLevel()
	if !ok || next != 2 {
		t.Errorf("NextLevel() = %d, %v; want 2, true", next, ok)
	}

	card.Level = MaxCardLevel
	if _, ok := card.NextLevel(); ok {
		t.Error("capped card should have no next level")
	}
}

func TestPlayerDataCloneIsIndependent(t *testing.T) {
	original := &PlayerData{
		Profile: PlayerProfile{KingLevel: 5, XPIntoLevel: 100},
		Inventory: Inventory{
			Gold:      1000,
			Gems:      50,
			WildCards: map[Rarity]int{Common: 10},
		},
		Cards: []Card{{Name: "Knight", Rarity: Common, Level: 3, Count: 20}},
	}

	clone := original.Clone()
	clone.Inventory.Gold = 0
	clone.Inventory.WildCards[Common] = 0
	clone.Cards[0].Level = 9
	clone.Cards[0].Count = 0

	if original.Inventory.Gold != 1000 {
		t.Errorf("clone mutation leaked into original gold: %d", original.Inventory.Gold)
	}
	if original.Inventory.WildCards[Common] != 10 {
		t.Errorf("clone mutation leaked into original wild cards: %d", original.Inventory.WildCards[Common])
	}
	if original.Cards[0].Level != 3 || original.Cards[0].Count != 20 {
		t.Errorf("clone mutation leaked into original card: %+v", original.Cards[0])
	}
}

func TestPlayerDataValidate(t *testing.T) {
	valid := func() *PlayerData {
		return &PlayerData{
			Profile:   PlayerProfile{KingLevel: 1},
			Inventory: Inventory{WildCards: map[Rarity]int{}},
			Cards:     []Card{{Name: "Knight", Rarity: Common, Level: 1, Count: 0}},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid player data rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*PlayerData)
	}{
		{"no cards", func(p *PlayerData) { p.Cards = nil }},
		{"king level zero", func(p *PlayerData) { p.Profile.KingLevel = 0 }},
		{"negative xp", func(p *PlayerData) { p.Profile.XPIntoLevel = -1 }},
		{"negative gold", func(p *PlayerData) { p.Inventory.Gold = -1 }},
		{"negative gems", func(p *PlayerData) { p.Inventory.Gems = -1 }},
		{"unknown wild rarity", func(p *PlayerData) { p.Inventory.WildCards["Mythic"] = 1 }},
		{"negative wild count", func(p *PlayerData) { p.Inventory.WildCards[Common] = -1 }},
		{"empty card name", func(p *PlayerData) { p.Cards[0].Name = "" }},
		{"unknown card rarity", func(p *PlayerData) { p.Cards[0].Rarity = "Mythic" }},
		{"level below range", func(p *PlayerData) { p.Cards[0].Level = 0 }},
		{"level above cap", func(p *PlayerData) { p.Cards[0].Level = MaxCardLevel + 1 }},
		{"negative count", func(p *PlayerData) { p.Cards[0].Count = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			if err := p.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
