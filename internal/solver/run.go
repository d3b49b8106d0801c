// Package solver implements the upgrade-planning engine: a greedy max-XP
// simulator, a greedy min-cost-to-target simulator, and an iterative
// refinement search for the minimal gem or gold spend needed to reach a
// king level.
package solver

import (
	"math"

	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// candidate is one affordable upgrade, rebuilt from scratch every selection
// round and never persisted
type candidate struct {
	index              int
	fromLevel          int
	toLevel            int
	goldCost           int
	cardsRequired      int
	cardsUsed          int
	wildUsed           int
	gemsUsed           int
	xpGained           int
	efficiency         float64
	materialEfficiency float64
}

// run owns the private simulation state for one solver invocation. It is
// seeded with deep copies of the player's inventory and cards, so the
// caller's state is never touched.
type run struct {
	data     *gamedata.GameData
	settings models.Settings

	inventory models.Inventory
	cards     []models.Card

	wildReserve map[models.Rarity]int
	wildUsage   map[models.Rarity]int

	initialGold int
	initialGems int
	gemsUsed    int
	xpTotal     int

	actions []models.UpgradeAction
}

func newRun(player *models.PlayerData, settings models.Settings, data *gamedata.GameData) *run {
	r := &run{
		data:        data,
		settings:    settings,
		inventory:   player.Inventory.Clone(),
		cards:       make([]models.Card, len(player.Cards)),
		wildReserve: make(map[models.Rarity]int),
		wildUsage:   make(map[models.Rarity]int),
	}
	copy(r.cards, player.Cards)

	if r.inventory.WildCards == nil {
		r.inventory.WildCards = make(map[models.Rarity]int)
	}
	for _, rarity := range models.AllRarities() {
		if _, ok := r.inventory.WildCards[rarity]; !ok {
			r.inventory.WildCards[rarity] = 0
		}
		if settings.KeepWildBuffer {
			r.wildReserve[rarity] = int(math.Round(float64(r.inventory.WildCards[rarity]) * gamedata.WildCardBufferRatio))
		}
		r.wildUsage[rarity] = 0
	}

	r.initialGold = r.inventory.Gold
	r.initialGems = r.inventory.Gems
	r.xpTotal = data.TotalXPForLevel(player.Profile.KingLevel) + player.Profile.XPIntoLevel
	return r
}

// availableWild returns the spendable wild cards for a rarity, net of any
// reserved buffer
func (r *run) availableWild(rarity models.Rarity) int {
	available := r.inventory.WildCards[rarity] - r.wildReserve[rarity]
	if available < 0 {
		return 0
	}
	return available
}

// buildCandidate constructs the upgrade candidate for one card, or false if
// the card is capped, a table row is missing, or the upgrade cannot be fully
// paid for under the current settings. The efficiency field is left for the
// solver to fill, since the two solvers rank candidates differently.
func (r *run) buildCandidate(index int) (candidate, bool) {
	card := r.cards[index]
	toLevel, ok := card.NextLevel()
	if !ok {
		return candidate{}, false
	}

	cardsRequired, okReq := r.data.MaterialRequirement(card.Rarity, toLevel)
	goldCost, okGold := r.data.GoldCost(toLevel)
	xpGained, okXP := r.data.XPReward(toLevel)
	if !okReq || !okGold || !okXP {
		return candidate{}, false
	}

	cardsUsed := min(card.Count, cardsRequired)
	remaining := cardsRequired - cardsUsed

	wildUsed := min(remaining, r.availableWild(card.Rarity))
	remaining -= wildUsed

	gemsUsed := 0
	if remaining > 0 {
		if !r.settings.UseGems {
			return candidate{}, false
		}
		gemsUsed = r.data.GemCost(card.Rarity, remaining)
		remaining = 0
	}

	if !r.settings.InfiniteGold && goldCost > r.inventory.Gold {
		return candidate{}, false
	}
	if gemsUsed > r.inventory.Gems {
		return candidate{}, false
	}

	if r.settings.InfiniteGold {
		// Gold is out of scope in materials-bottleneck mode; spend is
		// reported as zero.
		goldCost = 0
	}

	materialEfficiency := 0.0
	if cardsRequired > 0 {
		materialEfficiency = float64(xpGained) / float64(cardsRequired)
	}

	return candidate{
		index:              index,
		fromLevel:          card.Level,
		toLevel:            toLevel,
		goldCost:           goldCost,
		cardsRequired:      cardsRequired,
		cardsUsed:          cardsUsed,
		wildUsed:           wildUsed,
		gemsUsed:           gemsUsed,
		xpGained:           xpGained,
		materialEfficiency: materialEfficiency,
	}, true
}

// commit applies a candidate to the simulation state and appends the action
// record. Candidates are only committed after passing every affordability
// check in buildCandidate.
func (r *run) commit(c candidate) {
	card := &r.cards[c.index]
	card.Count -= c.cardsUsed
	card.Level = c.toLevel

	r.inventory.Gold -= c.goldCost
	r.inventory.Gems -= c.gemsUsed
	r.inventory.WildCards[card.Rarity] -= c.wildUsed
	r.wildUsage[card.Rarity] += c.wildUsed
	r.gemsUsed += c.gemsUsed
	r.xpTotal += c.xpGained

	r.actions = append(r.actions, models.UpgradeAction{
		CardName:           card.Name,
		Rarity:             card.Rarity,
		FromLevel:          c.fromLevel,
		ToLevel:            c.toLevel,
		GoldCost:           c.goldCost,
		CardsUsed:          c.cardsUsed,
		WildCardsUsed:      c.wildUsed,
		GemsUsed:           c.gemsUsed,
		XPGained:           c.xpGained,
		EfficiencyRatio:    c.efficiency,
		MaterialEfficiency: c.materialEfficiency,
	})
}

// result freezes the run into an immutable plan result
func (r *run) result() *models.PlanResult {
	totalXP := 0
	for _, action := range r.actions {
		totalXP += action.XPGained
	}

	progress := r.data.ProgressFromTotalXP(r.xpTotal)
	wildUsed := make(map[models.Rarity]int, len(r.wildUsage))
	for rarity, used := range r.wildUsage {
		wildUsed[rarity] = used
	}

	return &models.PlanResult{
		Actions:            r.actions,
		TotalXPGained:      totalXP,
		FinalProfile:       models.PlayerProfile{KingLevel: progress.Level, XPIntoLevel: progress.XPIntoLevel},
		FinalGold:          r.inventory.Gold,
		FinalGems:          r.inventory.Gems,
		TotalGoldSpent:     r.initialGold - r.inventory.Gold,
		TotalWildCardsUsed: wildUsed,
		TotalGemsUsed:      r.gemsUsed,
	}
}
