package solver

import (
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// UnlimitedCurrency is the ceiling used to seed the minimal-currency search.
// It is far above any spend reachable with the shipped tables.
const UnlimitedCurrency = 1_000_000_000

// MinimizeGems finds the smallest gem spend that still reaches the target
// king level, holding gold at the player's actual balance. It replays the
// min-cost simulation with a strictly decreasing gem ceiling until the
// target becomes unreachable; the last feasible result is minimal.
func MinimizeGems(player *models.PlayerData, targetLevel int, data *gamedata.GameData) *models.PlanResult {
	return refine(player, targetLevel, data,
		func(trial *models.PlayerData, ceiling int) {
			trial.Inventory.Gems = ceiling
		},
		func(result *models.PlanResult) int {
			return result.TotalGemsUsed
		},
	)
}

// MinimizeGold finds the smallest gold spend that still reaches the target
// king level, with unlimited gems as compensation.
func MinimizeGold(player *models.PlayerData, targetLevel int, data *gamedata.GameData) *models.PlanResult {
	return refine(player, targetLevel, data,
		func(trial *models.PlayerData, ceiling int) {
			trial.Inventory.Gold = ceiling
			trial.Inventory.Gems = UnlimitedCurrency
		},
		func(result *models.PlanResult) int {
			return result.TotalGoldSpent
		},
	)
}

// refine is the shared refinement loop. The ceiling is strictly decreasing
// and bounded below by zero, so the loop terminates: each iteration either
// finds a strictly smaller feasible spend or certifies infeasibility at the
// new ceiling. If even the unlimited ceiling never reaches the target, the
// result is a synthetic zero-spend plan over the unmodified starting state.
func refine(
	player *models.PlayerData,
	targetLevel int,
	data *gamedata.GameData,
	applyCeiling func(*models.PlayerData, int),
	usage func(*models.PlanResult) int,
) *models.PlanResult {
	settings := models.Settings{UseGems: true, GemToGoldRatio: models.DefaultGemToGoldRatio}

	ceiling := UnlimitedCurrency
	var best *models.PlanResult
	for {
		trial := player.Clone()
		applyCeiling(trial, ceiling)

		s := NewMinCostSolver(trial, settings, data, targetLevel)
		result := s.Plan()
		if result.FinalProfile.KingLevel < s.TargetLevel() {
			break
		}

		best = result
		used := usage(result)
		if used == 0 {
			break
		}
		ceiling = used - 1
	}

	if best == nil {
		return emptyResult(player)
	}
	return best
}

// emptyResult reflects the player's starting state with zero spend
func emptyResult(player *models.PlayerData) *models.PlanResult {
	wildUsed := make(map[models.Rarity]int, len(models.AllRarities()))
	for _, rarity := range models.AllRarities() {
		wildUsed[rarity] = 0
	}
	return &models.PlanResult{
		FinalProfile:       player.Profile,
		FinalGold:          player.Inventory.Gold,
		FinalGems:          player.Inventory.Gems,
		TotalWildCardsUsed: wildUsed,
	}
}
