// Package gamedata holds the static Clash Royale economy tables and the
// accessors the solvers use to read them. All tables are immutable and
// loaded once.
package gamedata

import (
	"fmt"
	"math"
	"strings"

	"github.com/royaleforge/levelcalc/internal/models"
)

// KingLevelRow is one row of the king XP curve
type KingLevelRow struct {
	Level      int
	Cumulative int // total XP required to reach this level
	XPToNext   int // XP from this level to the next (0 = terminal)
}

// KingProgress describes a position on the king XP curve
type KingProgress struct {
	Level       int
	XPIntoLevel int
	XPToNext    int
	TotalXP     int
}

// NextLevel returns the next king level, or false at the terminal row
func (p KingProgress) NextLevel() (int, bool) {
	if p.XPToNext == 0 {
		return 0, false
	}
	return p.Level + 1, true
}

// GameData is the central access point for the deterministic economy tables
type GameData struct {
	kingLevels []KingLevelRow
	cumulative map[int]int
}

// New builds the lookup tables. The king curve rows are derived from the
// per-level increments, which keeps the cumulative column monotonic by
// construction.
func New() *GameData {
	g := &GameData{
		kingLevels: make([]KingLevelRow, len(kingXPToNext)),
		cumulative: make(map[int]int, len(kingXPToNext)),
	}
	total := 0
	for i, toNext := range kingXPToNext {
		level := i + 1
		g.kingLevels[i] = KingLevelRow{Level: level, Cumulative: total, XPToNext: toNext}
		g.cumulative[level] = total
		total += toNext
	}
	return g
}

// MaterialRequirement returns the card copies required to upgrade a card of
// the given rarity to targetLevel
func (g *GameData) MaterialRequirement(rarity models.Rarity, targetLevel int) (int, bool) {
	table, ok := cardRequirements[rarity]
	if !ok {
		return 0, false
	}
	req, ok := table[targetLevel]
	return req, ok
}

// GoldCost returns the gold cost of upgrading any card to targetLevel
func (g *GameData) GoldCost(targetLevel int) (int, bool) {
	cost, ok := goldCosts[targetLevel]
	return cost, ok
}

// XPReward returns the king XP gained by upgrading any card to targetLevel
func (g *GameData) XPReward(targetLevel int) (int, bool) {
	xp, ok := xpRewards[targetLevel]
	return xp, ok
}

// EfficiencyOverride returns the pinned ranking value for targetLevel, if any
func (g *GameData) EfficiencyOverride(targetLevel int) (float64, bool) {
	override, ok := efficiencyOverrides[targetLevel]
	return override, ok
}

// GemValue returns the gem price of one missing card copy of the rarity
func (g *GameData) GemValue(rarity models.Rarity) float64 {
	return gemValues[rarity]
}

// GemCost converts a card shortfall into a gem cost, rounded to the nearest
// integer (half away from zero)
func (g *GameData) GemCost(rarity models.Rarity, missing int) int {
	return int(math.Round(float64(missing) * g.GemValue(rarity)))
}

// MaxKingLevel returns the terminal level of the king XP curve
func (g *GameData) MaxKingLevel() int {
	return g.kingLevels[len(g.kingLevels)-1].Level
}

// TotalXPForLevel returns the cumulative XP required to reach a king level.
// The level is clamped to the curve's range.
func (g *GameData) TotalXPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if max := g.MaxKingLevel(); level > max {
		level = max
	}
	return g.cumulative[level]
}

// ProgressFromTotalXP resolves a running XP total against the king curve:
// the greatest row whose cumulative XP is at most totalXP. Progress into the
// level is clamped to [0, XPToNext] and forced to 0 at the terminal row.
func (g *GameData) ProgressFromTotalXP(totalXP int) KingProgress {
	current := g.kingLevels[0]
	for _, row := range g.kingLevels {
		if totalXP >= row.Cumulative {
			current = row
		} else {
			break
		}
	}

	xpInto := totalXP - current.Cumulative
	if current.XPToNext > 0 {
		if xpInto > current.XPToNext {
			xpInto = current.XPToNext
		}
	} else {
		xpInto = 0
	}
	if xpInto < 0 {
		xpInto = 0
	}

	return KingProgress{
		Level:       current.Level,
		XPIntoLevel: xpInto,
		XPToNext:    current.XPToNext,
		TotalXP:     totalXP,
	}
}

// NormalizeRarity canonicalizes a rarity string from external input
func (g *GameData) NormalizeRarity(raw string) (models.Rarity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty rarity")
	}
	canonical := models.Rarity(strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:]))
	if !canonical.IsValid() {
		return "", fmt.Errorf("unknown rarity %q", raw)
	}
	return canonical, nil
}
