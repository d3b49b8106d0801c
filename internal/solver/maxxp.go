package solver

import (
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
)

// MaxXPSolver greedily applies the most XP-efficient affordable upgrade
// until none remain. It never backtracks: once an upgrade is committed it
// stays in the plan.
type MaxXPSolver struct {
	r *run
}

// NewMaxXPSolver seeds a solver with a private copy of the player state
func NewMaxXPSolver(player *models.PlayerData, settings models.Settings, data *gamedata.GameData) *MaxXPSolver {
	return &MaxXPSolver{r: newRun(player, settings, data)}
}

// Plan runs the simulation to exhaustion and returns the full action trace.
// Termination is guaranteed: every commit raises one card's level, and
// levels are capped.
func (s *MaxXPSolver) Plan() *models.PlanResult {
	for {
		best, ok := s.selectCandidate()
		if !ok {
			break
		}
		s.r.commit(best)
	}
	return s.r.result()
}

// selectCandidate rebuilds all candidates and picks the one with the lowest
// efficiency value, breaking ties by higher XP. Strict comparisons keep the
// first card in list order on a full tie.
func (s *MaxXPSolver) selectCandidate() (candidate, bool) {
	var best candidate
	found := false
	for index := range s.r.cards {
		c, ok := s.r.buildCandidate(index)
		if !ok {
			continue
		}
		c.efficiency = s.efficiency(c)
		if !found || c.efficiency < best.efficiency ||
			(c.efficiency == best.efficiency && c.xpGained > best.xpGained) {
			best = c
			found = true
		}
	}
	return best, found
}

// efficiency scores a candidate; lower is better. A table override wins
// outside materials-bottleneck mode. In materials-bottleneck mode the score
// is cards per XP; otherwise it is the gold-equivalent spend per XP, with
// gems converted at the configured ratio.
func (s *MaxXPSolver) efficiency(c candidate) float64 {
	if override, ok := s.r.data.EfficiencyOverride(c.toLevel); ok && !s.r.settings.InfiniteGold {
		return override
	}

	xp := float64(c.xpGained)
	if xp == 0 {
		xp = 1
	}
	if s.r.settings.InfiniteGold {
		return float64(c.cardsRequired) / xp
	}

	gemPenalty := float64(c.gemsUsed) * s.r.settings.GemToGoldRatio
	return (float64(c.goldCost) + gemPenalty) / xp
}
