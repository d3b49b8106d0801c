package models

import "fmt"

// Rarity represents the card rarities in the game
type Rarity string

const (
	Common    Rarity = "Common"
	Rare      Rarity = "Rare"
	Epic      Rarity = "Epic"
	Legendary Rarity = "Legendary"
	Champion  Rarity = "Champion"
)

// AllRarities returns all rarities in deterministic order
func AllRarities() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary, Champion}
}

// IsValid reports whether r is one of the known rarities
func (r Rarity) IsValid() bool {
	switch r {
	case Common, Rare, Epic, Legendary, Champion:
		return true
	}
	return false
}

// MaxCardLevel is the hard level cap for every card
const MaxCardLevel = 16

// Card is one upgradeable card owned by the player
type Card struct {
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Level  int    `json:"level"`
	Count  int    `json:"count"`
}

// NextLevel returns the next upgrade target, or false if the card is capped
func (c *Card) NextLevel() (int, bool) {
	if c.Level >= MaxCardLevel {
		return 0, false
	}
	return c.Level + 1, true
}

// Inventory holds the player's spendable resources
type Inventory struct {
	Gold      int            `json:"gold"`
	Gems      int            `json:"gems"`
	WildCards map[Rarity]int `json:"wild_cards"`
}

// Clone creates a deep copy of the inventory
func (i *Inventory) Clone() Inventory {
	clone := Inventory{
		Gold:      i.Gold,
		Gems:      i.Gems,
		WildCards: make(map[Rarity]int, len(i.WildCards)),
	}
	for rarity, count := range i.WildCards {
		clone.WildCards[rarity] = count
	}
	return clone
}

// PlayerProfile is the player's king level progression
type PlayerProfile struct {
	KingLevel   int `json:"king_level"`
	XPIntoLevel int `json:"xp_into_level"`
}

// PlayerData is the complete player state handed to a solver
type PlayerData struct {
	Profile   PlayerProfile `json:"profile"`
	Inventory Inventory     `json:"inventory"`
	Cards     []Card        `json:"cards"`
}

// Clone creates a deep copy of the player data. Solvers always run against
// their own copy, so concurrent runs never share mutable state.
func (p *PlayerData) Clone() *PlayerData {
	clone := &PlayerData{
		Profile:   p.Profile,
		Inventory: p.Inventory.Clone(),
		Cards:     make([]Card, len(p.Cards)),
	}
	copy(clone.Cards, p.Cards)
	return clone
}

// Validate checks the external-input contract before a solver is invoked
func (p *PlayerData) Validate() error {
	if p.Profile.KingLevel < 1 {
		return fmt.Errorf("king level must be at least 1, got %d", p.Profile.KingLevel)
	}
	if p.Profile.XPIntoLevel < 0 {
		return fmt.Errorf("xp into level must not be negative, got %d", p.Profile.XPIntoLevel)
	}
	if p.Inventory.Gold < 0 {
		return fmt.Errorf("gold must not be negative, got %d", p.Inventory.Gold)
	}
	if p.Inventory.Gems < 0 {
		return fmt.Errorf("gems must not be negative, got %d", p.Inventory.Gems)
	}
	for rarity, count := range p.Inventory.WildCards {
		if !rarity.IsValid() {
			return fmt.Errorf("unknown wild card rarity %q", rarity)
		}
		if count < 0 {
			return fmt.Errorf("wild cards (%s) must not be negative, got %d", rarity, count)
		}
	}
	if len(p.Cards) == 0 {
		return fmt.Errorf("player data must include at least one card")
	}
	for _, card := range p.Cards {
		if card.Name == "" {
			return fmt.Errorf("card with empty name")
		}
		if !card.Rarity.IsValid() {
			return fmt.Errorf("card %s: unknown rarity %q", card.Name, card.Rarity)
		}
		if card.Level < 1 || card.Level > MaxCardLevel {
			return fmt.Errorf("card %s: level %d out of range [1, %d]", card.Name, card.Level, MaxCardLevel)
		}
		if card.Count < 0 {
			return fmt.Errorf("card %s: count must not be negative, got %d", card.Name, card.Count)
		}
	}
	return nil
}

// Settings configures a solver run
type Settings struct {
	// UseGems allows buying missing card copies with gems
	UseGems bool
	// InfiniteGold ignores gold costs entirely (materials bottleneck mode)
	InfiniteGold bool
	// KeepWildBuffer reserves a fraction of each wild card pool
	KeepWildBuffer bool
	// GemToGoldRatio converts gem spend into a gold-equivalent penalty when
	// ranking candidates (max-XP mode only)
	GemToGoldRatio float64
}

// DefaultGemToGoldRatio is the assumed gold value of one gem
const DefaultGemToGoldRatio = 125.0

// DefaultSettings returns the settings used when the caller supplies none
func DefaultSettings() Settings {
	return Settings{
		KeepWildBuffer: true,
		GemToGoldRatio: DefaultGemToGoldRatio,
	}
}

// UpgradeAction is one committed upgrade in a plan, in commit order
type UpgradeAction struct {
	CardName           string
	Rarity             Rarity
	FromLevel          int
	ToLevel            int
	GoldCost           int
	CardsUsed          int
	WildCardsUsed      int
	GemsUsed           int
	XPGained           int
	EfficiencyRatio    float64
	MaterialEfficiency float64
}

// PlanResult is the immutable outcome of a solver run
type PlanResult struct {
	Actions            []UpgradeAction
	TotalXPGained      int
	FinalProfile       PlayerProfile
	FinalGold          int
	FinalGems          int
	TotalGoldSpent     int
	TotalWildCardsUsed map[Rarity]int
	TotalGemsUsed      int
}
