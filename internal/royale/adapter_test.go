package royale

import (
	"testing"

	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

func TestPlayerDataFromSnapshot(t *testing.T) {
	data := gamedata.New()
	snapshot := &Snapshot{
		Tag:       "#2PP0G9JY",
		Name:      "Tester",
		ExpPoints: 70,
		Cards: []SnapshotCard{
			{Name: "Knight", Rarity: "common", Level: 10, Count: 500},
			{Name: "Miner", Rarity: "LEGENDARY", Level: 11, Count: 2},
		},
	}

	player, err := PlayerDataFromSnapshot(snapshot, 10000, 250, data)
	if err != nil {
		t.Fatalf("PlayerDataFromSnapshot: %v", err)
	}

	// 70 XP is exactly the cumulative total for king level 3.
	if player.Profile.KingLevel != 3 || player.Profile.XPIntoLevel != 0 {
		t.Errorf("profile = %+v, want king level 3 with 0 XP into level", player.Profile)
	}
	if player.Inventory.Gold != 10000 || player.Inventory.Gems != 250 {
		t.Errorf("balances = %+v, want the supplied values", player.Inventory)
	}
	if len(player.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(player.Cards))
	}
	if player.Cards[0].Rarity != models.Common || player.Cards[1].Rarity != models.Legendary {
		t.Errorf("rarities not normalized: %+v", player.Cards)
	}
	for _, rarity := range models.AllRarities() {
		if pool, ok := player.Inventory.WildCards[rarity]; !ok || pool != 0 {
			t.Errorf("wild card pool for %s = %d, want 0", rarity, pool)
		}
	}
}

func TestPlayerDataFromSnapshotSkipsMalformedEntries(t *testing.T) {
	data := gamedata.New()
	snapshot := &Snapshot{
		ExpPoints: 0,
		Cards: []SnapshotCard{
			{Name: "", Rarity: "Common", Level: 5, Count: 10},
			{Name: "Mystery", Rarity: "hero", Level: 5, Count: 10},
			{Name: "Knight", Rarity: "", Level: 5, Count: 10},
			{Name: "Archers", Rarity: "Common", Level: 5, Count: 10},
		},
	}

	player, err := PlayerDataFromSnapshot(snapshot, 0, 0, data)
	if err != nil {
		t.Fatalf("PlayerDataFromSnapshot: %v", err)
	}
	if len(player.Cards) != 1 || player.Cards[0].Name != "Archers" {
		t.Errorf("got cards %+v, want only the well-formed entry", player.Cards)
	}
}

func TestPlayerDataFromSnapshotClampsRanges(t *testing.T) {
	data := gamedata.New()
	snapshot := &Snapshot{
		Cards: []SnapshotCard{
			{Name: "Knight", Rarity: "Common", Level: 0, Count: -5},
			{Name: "Archers", Rarity: "Common", Level: 99, Count: 10},
		},
	}

	player, err := PlayerDataFromSnapshot(snapshot, 0, 0, data)
	if err != nil {
		t.Fatalf("PlayerDataFromSnapshot: %v", err)
	}
	if player.Cards[0].Level != 1 || player.Cards[0].Count != 0 {
		t.Errorf("low card not clamped: %+v", player.Cards[0])
	}
	if player.Cards[1].Level != models.MaxCardLevel {
		t.Errorf("high card not clamped: %+v", player.Cards[1])
	}
}

func TestPlayerDataFromSnapshotRejectsEmpty(t *testing.T) {
	data := gamedata.New()
	snapshot := &Snapshot{
		Cards: []SnapshotCard{{Name: "Mystery", Rarity: "hero", Level: 5, Count: 10}},
	}

	if _, err := PlayerDataFromSnapshot(snapshot, 0, 0, data); err == nil {
		t.Fatal("expected error when no usable cards remain")
	}
}
