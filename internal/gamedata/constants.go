package gamedata

import "github.com/royaleforge/levelcalc/internal/models"

// cardRequirements maps rarity -> target level -> card copies required.
// Each rarity starts at a different level, so its table only has rows from
// (start level + 1) through the cap. A missing row means the upgrade path
// does not exist for that rarity.
var cardRequirements = map[models.Rarity]map[int]int{
	models.Common: {
		2: 2, 3: 4, 4: 10, 5: 20, 6: 50, 7: 100, 8: 200, 9: 400,
		10: 800, 11: 1000, 12: 1500, 13: 2500, 14: 5000, 15: 7500, 16: 10000,
	},
	models.Rare: {
		4: 2, 5: 4, 6: 10, 7: 20, 8: 50, 9: 100, 10: 200,
		11: 400, 12: 500, 13: 750, 14: 1250, 15: 1750, 16: 2500,
	},
	models.Epic: {
		7: 2, 8: 4, 9: 10, 10: 20, 11: 40, 12: 50,
		13: 100, 14: 200, 15: 300, 16: 400,
	},
	models.Legendary: {
		10: 2, 11: 4, 12: 6, 13: 10, 14: 20, 15: 30, 16: 40,
	},
	models.Champion: {
		12: 2, 13: 8, 14: 20, 15: 30, 16: 50,
	},
}

// goldCosts maps target level -> gold cost (shared across rarities)
var goldCosts = map[int]int{
	2: 5, 3: 20, 4: 50, 5: 150, 6: 400, 7: 1000, 8: 2000, 9: 4000,
	10: 8000, 11: 15000, 12: 35000, 13: 75000, 14: 100000, 15: 150000, 16: 250000,
}

// xpRewards maps target level -> king XP gained (shared across rarities)
var xpRewards = map[int]int{
	2: 4, 3: 5, 4: 6, 5: 10, 6: 25, 7: 50, 8: 100, 9: 200,
	10: 400, 11: 600, 12: 800, 13: 1600, 14: 2000, 15: 3000, 16: 5000,
}

// efficiencyOverrides pins the ranking value for the top upgrade levels.
// The raw gold/XP ratio understates their real cost (elite wild cards), so
// the max-XP solver ranks them with these fixed values instead.
var efficiencyOverrides = map[int]float64{
	15: 75.0,
	16: 95.0,
}

// gemValues maps rarity -> gems per missing card copy
var gemValues = map[models.Rarity]float64{
	models.Common:    0.06,
	models.Rare:      0.3,
	models.Epic:      3.0,
	models.Legendary: 75.0,
	models.Champion:  125.0,
}

// kingXPToNext holds the XP needed to advance from each king level to the
// next. Index 0 is level 1; the last entry is the terminal level (0 = no
// further progression).
var kingXPToNext = []int{
	20, 50, 100, 200, 400, 600, 800, 1000, 1500, 2500,
	4000, 6000, 8000, 11000, 14000, 17000, 21000, 25000, 29000, 33000,
	38000, 43000, 48000, 53000, 58000, 65000, 73000, 82000, 91000, 100000,
	110000, 120000, 130000, 140000, 150000, 160000, 170000, 180000, 190000, 0,
}

// WildCardBufferRatio is the fraction of each wild card pool held back when
// Settings.KeepWildBuffer is enabled
const WildCardBufferRatio = 0.20
