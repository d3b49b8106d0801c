// Package loader reads player state from local JSON files.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/royaleforge/levelcalc/internal/catalog"
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// playerJSON mirrors models.PlayerData but keeps rarity as a raw string so
// it can be filled from the catalog and normalized before validation
type playerJSON struct {
	Profile   models.PlayerProfile `json:"profile"`
	Inventory inventoryJSON        `json:"inventory"`
	Cards     []cardJSON           `json:"cards"`
}

type inventoryJSON struct {
	Gold      int            `json:"gold"`
	Gems      int            `json:"gems"`
	WildCards map[string]int `json:"wild_cards"`
}

type cardJSON struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
	Count  int    `json:"count"`
}

// LoadPlayerData reads a player data JSON file. Cards with no rarity are
// resolved through the catalog; cat may be nil when every card carries its
// rarity. The result is validated before being returned.
func LoadPlayerData(path string, cat *catalog.Catalog, data *gamedata.GameData) (*models.PlayerData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read player data: %w", err)
	}

	var payload playerJSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse player data: %w", err)
	}

	wildCards := make(map[models.Rarity]int, len(models.AllRarities()))
	for _, rarity := range models.AllRarities() {
		wildCards[rarity] = 0
	}
	for name, count := range payload.Inventory.WildCards {
		rarity, err := data.NormalizeRarity(name)
		if err != nil {
			return nil, fmt.Errorf("inventory: %w", err)
		}
		wildCards[rarity] = count
	}

	cards := make([]models.Card, 0, len(payload.Cards))
	for _, entry := range payload.Cards {
		rawRarity := entry.Rarity
		if rawRarity == "" {
			if cat == nil {
				return nil, fmt.Errorf("card %q has no rarity and no catalog is available", entry.Name)
			}
			meta, err := cat.Require(entry.Name)
			if err != nil {
				return nil, err
			}
			rawRarity = meta.Rarity
		}
		rarity, err := data.NormalizeRarity(rawRarity)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		cards = append(cards, models.Card{
			Name:   entry.Name,
			Rarity: rarity,
			Level:  entry.Level,
			Count:  entry.Count,
		})
	}

	player := &models.PlayerData{
		Profile: payload.Profile,
		Inventory: models.Inventory{
			Gold:      payload.Inventory.Gold,
			Gems:      payload.Inventory.Gems,
			WildCards: wildCards,
		},
		Cards: cards,
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("invalid player data: %w", err)
	}
	return player, nil
}
