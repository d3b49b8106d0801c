package royale

import (
	"fmt"

	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// PlayerDataFromSnapshot converts an API snapshot plus the user-supplied
// gold and gem balances into validated solver input. The king progression is
// derived from the snapshot's total XP; malformed card entries are skipped.
func PlayerDataFromSnapshot(snapshot *Snapshot, gold, gems int, data *gamedata.GameData) (*models.PlayerData, error) {
	progress := data.ProgressFromTotalXP(snapshot.ExpPoints)

	var cards []models.Card
	for _, entry := range snapshot.Cards {
		if entry.Name == "" || entry.Rarity == "" {
			continue
		}
		rarity, err := data.NormalizeRarity(entry.Rarity)
		if err != nil {
			continue
		}

		level := entry.Level
		if level < 1 {
			level = 1
		}
		if level > models.MaxCardLevel {
			level = models.MaxCardLevel
		}

		count := entry.Count
		if count < 0 {
			count = 0
		}

		cards = append(cards, models.Card{
			Name:   entry.Name,
			Rarity: rarity,
			Level:  level,
			Count:  count,
		})
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("snapshot did not include any cards to plan for")
	}

	wildCards := make(map[models.Rarity]int, len(models.AllRarities()))
	for _, rarity := range models.AllRarities() {
		wildCards[rarity] = 0
	}

	player := &models.PlayerData{
		Profile: models.PlayerProfile{
			KingLevel:   progress.Level,
			XPIntoLevel: progress.XPIntoLevel,
		},
		Inventory: models.Inventory{
			Gold:      gold,
			Gems:      gems,
			WildCards: wildCards,
		},
		Cards: cards,
	}
	if err := player.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot produced invalid player data: %w", err)
	}
	return player, nil
}
