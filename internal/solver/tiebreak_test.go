package solver

import "testing"

func TestBetterMinCostPriorityOrder(t *testing.T) {
	base := candidate{efficiency: 10, gemsUsed: 5, goldCost: 1000, xpGained: 50}

	tests := []struct {
		name   string
		c      candidate
		better bool
	}{
		{"lower efficiency wins", candidate{efficiency: 9, gemsUsed: 99, goldCost: 9999, xpGained: 1}, true},
		{"higher efficiency loses", candidate{efficiency: 11, gemsUsed: 0, goldCost: 0, xpGained: 999}, false},
		{"tied efficiency, fewer gems wins", candidate{efficiency: 10, gemsUsed: 4, goldCost: 9999, xpGained: 1}, true},
		{"tied efficiency, more gems loses", candidate{efficiency: 10, gemsUsed: 6, goldCost: 0, xpGained: 999}, false},
		{"tied gems, lower gold wins", candidate{efficiency: 10, gemsUsed: 5, goldCost: 999, xpGained: 1}, true},
		{"tied gems, higher gold loses", candidate{efficiency: 10, gemsUsed: 5, goldCost: 1001, xpGained: 999}, false},
		{"tied gold, higher xp wins", candidate{efficiency: 10, gemsUsed: 5, goldCost: 1000, xpGained: 51}, true},
		{"full tie keeps incumbent", candidate{efficiency: 10, gemsUsed: 5, goldCost: 1000, xpGained: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := betterMinCost(tt.c, base); got != tt.better {
				t.Errorf("betterMinCost(%+v, base) = %v, want %v", tt.c, got, tt.better)
			}
		})
	}
}
