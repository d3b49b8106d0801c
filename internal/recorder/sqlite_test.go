package recorder

import (
	"path/filepath"
	"testing"

	"github.com/royaleforge/levelcalc/internal/models"
)

func TestSQLiteRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")
	rec, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer rec.Close()

	result := &models.PlanResult{
		Actions:        make([]models.UpgradeAction, 3),
		TotalXPGained:  450,
		TotalGoldSpent: 12000,
		TotalGemsUsed:  7,
		FinalProfile:   models.PlayerProfile{KingLevel: 9, XPIntoLevel: 80},
	}
	record := NewPlanRecord("maxxp", "file", result)
	if record.ActionCount != 3 || record.FinalKingLevel != 9 {
		t.Fatalf("unexpected record: %+v", record)
	}

	if err := rec.RecordPlan(record); err != nil {
		t.Fatalf("RecordPlan: %v", err)
	}
	if err := rec.RecordPlan(NewPlanRecord("min-gems", "web", result)); err != nil {
		t.Fatalf("RecordPlan: %v", err)
	}

	var count int
	if err := rec.db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&count); err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if count != 2 {
		t.Errorf("plan rows = %d, want 2", count)
	}

	var mode string
	var xp int
	err = rec.db.QueryRow("SELECT mode, total_xp FROM plans ORDER BY id LIMIT 1").Scan(&mode, &xp)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}
	if mode != "maxxp" || xp != 450 {
		t.Errorf("stored row = (%q, %d), want (maxxp, 450)", mode, xp)
	}
}

func TestSQLiteRecorderReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.db")

	rec, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	if err := rec.RecordPlan(&PlanRecord{Mode: "maxxp", Source: "file"}); err != nil {
		t.Fatalf("RecordPlan: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rec, err = NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer rec.Close()

	var count int
	if err := rec.db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&count); err != nil {
		t.Fatalf("count plans: %v", err)
	}
	if count != 1 {
		t.Errorf("plan rows after reopen = %d, want 1", count)
	}
}
