package solver

import (
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// MinCostSolver greedily upgrades towards a target king level and stops as
// soon as the target's cumulative XP is reached. Overshoot is allowed: the
// final upgrade may carry the total past the target.
type MinCostSolver struct {
	r           *run
	targetLevel int
}

// NewMinCostSolver seeds a solver with a private copy of the player state.
// A target at or below the player's current king level falls back to the
// next level on the curve.
func NewMinCostSolver(player *models.PlayerData, settings models.Settings, data *gamedata.GameData, targetLevel int) *MinCostSolver {
	if targetLevel <= player.Profile.KingLevel {
		targetLevel = player.Profile.KingLevel + 1
	}
	if max := data.MaxKingLevel(); targetLevel > max {
		targetLevel = max
	}
	return &MinCostSolver{r: newRun(player, settings, data), targetLevel: targetLevel}
}

// TargetLevel returns the resolved target king level
func (s *MinCostSolver) TargetLevel() int {
	return s.targetLevel
}

// Plan runs the simulation until the target XP is reached or no affordable
// upgrade remains. A target that is already met returns an empty trace
// without evaluating any candidate.
func (s *MinCostSolver) Plan() *models.PlanResult {
	targetXP := s.r.data.TotalXPForLevel(s.targetLevel)
	for s.r.xpTotal < targetXP {
		best, ok := s.selectCandidate()
		if !ok {
			break
		}
		s.r.commit(best)
	}
	return s.r.result()
}

// selectCandidate picks the candidate with the lowest raw cost per XP.
// Unlike the max-XP solver there is no table override: the objective is
// actual spend, not long-term value. Ties prefer fewer gems, then lower
// gold, then higher XP, in that strict priority order.
func (s *MinCostSolver) selectCandidate() (candidate, bool) {
	var best candidate
	found := false
	for index := range s.r.cards {
		c, ok := s.r.buildCandidate(index)
		if !ok {
			continue
		}
		c.efficiency = rawEfficiency(c)
		if !found || betterMinCost(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

// rawEfficiency is (gold + gems) per XP gained
func rawEfficiency(c candidate) float64 {
	xp := float64(c.xpGained)
	if xp == 0 {
		xp = 1
	}
	return float64(c.goldCost+c.gemsUsed) / xp
}

func betterMinCost(c, best candidate) bool {
	if c.efficiency != best.efficiency {
		return c.efficiency < best.efficiency
	}
	if c.gemsUsed != best.gemsUsed {
		return c.gemsUsed < best.gemsUsed
	}
	if c.goldCost != best.goldCost {
		return c.goldCost < best.goldCost
	}
	return c.xpGained > best.xpGained
}
