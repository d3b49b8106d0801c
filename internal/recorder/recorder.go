// Package recorder persists plan summaries for later comparison. The solver
// core never touches this; it is wired in by the front-ends only.
package recorder

import "github.com/royaleforge/levelcalc/internal/models"

// PlanRecord is one solved plan, reduced to its summary numbers.
type PlanRecord struct {
	Mode           string // "maxxp", "mincost", "min-gems", "min-gold"
	Source         string // "file", "api", "web"
	ActionCount    int
	TotalXPGained  int
	TotalGoldSpent int
	TotalGemsUsed  int
	FinalKingLevel int
}

// NewPlanRecord summarizes a plan result.
func NewPlanRecord(mode, source string, result *models.PlanResult) *PlanRecord {
	return &PlanRecord{
		Mode:           mode,
		Source:         source,
		ActionCount:    len(result.Actions),
		TotalXPGained:  result.TotalXPGained,
		TotalGoldSpent: result.TotalGoldSpent,
		TotalGemsUsed:  result.TotalGemsUsed,
		FinalKingLevel: result.FinalProfile.KingLevel,
	}
}

// Recorder persists plan history.
type Recorder interface {
	RecordPlan(record *PlanRecord) error
	Close() error
}
