package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/royaleforge/levelcalc/internal/catalog"
	"github.com/royaleforge/levelcalc/internal/config"
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/loader"
	"github.com/royaleforge/levelcalc/internal/models"
	"github.com/royaleforge/levelcalc/internal/recorder"
	"github.com/royaleforge/levelcalc/internal/solver"
)

var (
	playerDataPath string
	configFile     string
	mode           string
	targetLevel    int
	useGems        bool
	infiniteGold   bool
	spendWild      bool
	gemGoldRatio   float64
	reportPath     string
	quiet          bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "levelcalc",
		Short: "Clash Royale card upgrade planner",
		Long: `A greedy simulation planner that sequences card upgrades
for maximum king XP per resource, or for the cheapest path
to a target king level.`,
		Run: runPlanner,
	}

	rootCmd.Flags().StringVarP(&playerDataPath, "player-data", "p", "", "Path to the player data JSON file")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "levelcalc.yaml", "Path to YAML config file")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "maxxp", "Planning mode: maxxp, mincost, min-gems, min-gold")
	rootCmd.Flags().IntVarP(&targetLevel, "target-level", "t", 0, "Target king level for mincost/min-gems/min-gold (default: next level)")
	rootCmd.Flags().BoolVar(&useGems, "use-gems", false, "Allow spending gems on missing card copies")
	rootCmd.Flags().BoolVar(&infiniteGold, "infinite-gold", false, "Ignore gold costs and plan the pure card bottleneck")
	rootCmd.Flags().BoolVar(&spendWild, "spend-wild-cards", false, "Spend the full wild card pools instead of keeping a buffer")
	rootCmd.Flags().Float64Var(&gemGoldRatio, "gem-gold-ratio", 0, "Gold value of one gem for ranking purposes")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Optional path to write the plan as a text file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	_ = rootCmd.Flags().MarkHidden("gem-gold-ratio")
	_ = rootCmd.MarkFlagRequired("player-data")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPlanner(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Clash Level Calculator   │")
		titleColor.Println("│  Upgrade Planner          │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if gemGoldRatio <= 0 {
		gemGoldRatio = cfg.Planner.GemToGoldRatio
	}

	data := gamedata.New()

	// The catalog is only needed for cards whose rarity is missing from the
	// input file; a fetch failure is not fatal here.
	cat, err := catalog.New(cfg.Catalog.FallbackPath)
	if err != nil {
		cat = nil
		if !quiet {
			infoColor.Printf("Note: card catalog unavailable (%v); rarities must be present in the input\n\n", err)
		}
	}

	player, err := loader.LoadPlayerData(playerDataPath, cat, data)
	if err != nil {
		color.Red("Error loading player data: %v", err)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("📦 Loaded %d cards | Gold %s | Gems %s | King Level %d\n\n",
			len(player.Cards), formatAmount(player.Inventory.Gold),
			formatAmount(player.Inventory.Gems), player.Profile.KingLevel)
	}

	settings := models.Settings{
		UseGems:        useGems,
		InfiniteGold:   infiniteGold,
		KeepWildBuffer: !spendWild,
		GemToGoldRatio: gemGoldRatio,
	}

	result, title, err := solve(player, settings, data)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

	successColor.Printf("✓ %s: %d upgrades planned\n\n", title, len(result.Actions))
	printPlan(result)
	printSummary(result)

	if reportPath != "" {
		if err := os.WriteFile(reportPath, []byte(formatReport(title, result)), 0o644); err != nil {
			color.Red("Error writing report: %v", err)
			os.Exit(1)
		}
		if !quiet {
			infoColor.Printf("\nReport written to %s\n", reportPath)
		}
	}

	recordPlan(cfg, result)
}

func solve(player *models.PlayerData, settings models.Settings, data *gamedata.GameData) (*models.PlanResult, string, error) {
	switch mode {
	case "maxxp":
		return solver.NewMaxXPSolver(player, settings, data).Plan(), "Max XP plan", nil
	case "mincost":
		s := solver.NewMinCostSolver(player, settings, data, targetLevel)
		return s.Plan(), fmt.Sprintf("Min cost plan to king level %d", s.TargetLevel()), nil
	case "min-gems":
		return solver.MinimizeGems(player, targetLevel, data), "Minimal gem spend plan", nil
	case "min-gold":
		return solver.MinimizeGold(player, targetLevel, data), "Minimal gold spend plan", nil
	default:
		return nil, "", fmt.Errorf("unknown mode %q (want maxxp, mincost, min-gems or min-gold)", mode)
	}
}

func printPlan(result *models.PlanResult) {
	if len(result.Actions) == 0 {
		fmt.Println("No upgrades available.")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Card", "Rarity", "Upgrade", "Gold", "Cards", "Wild", "Gems", "XP", "Ratio"}),
	)
	for i, action := range result.Actions {
		row := []string{
			fmt.Sprintf("%d", i+1),
			action.CardName,
			string(action.Rarity),
			fmt.Sprintf("%d → %d", action.FromLevel, action.ToLevel),
			formatAmount(action.GoldCost),
			formatAmount(action.CardsUsed),
			formatAmount(action.WildCardsUsed),
			formatAmount(action.GemsUsed),
			"+" + formatAmount(action.XPGained),
			fmt.Sprintf("%.2f", action.EfficiencyRatio),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func printSummary(result *models.PlanResult) {
	successColor := color.New(color.FgGreen)

	fmt.Printf("\nTotal XP gained: %s\n", formatAmount(result.TotalXPGained))
	successColor.Printf("Projected King Level: %d (+%s XP into level)\n",
		result.FinalProfile.KingLevel, formatAmount(result.FinalProfile.XPIntoLevel))
	fmt.Printf("Gold spent: %s (remaining %s)\n", formatAmount(result.TotalGoldSpent), formatAmount(result.FinalGold))
	fmt.Printf("Gems spent: %s (remaining %s)\n", formatAmount(result.TotalGemsUsed), formatAmount(result.FinalGems))
	for _, rarity := range models.AllRarities() {
		if used := result.TotalWildCardsUsed[rarity]; used > 0 {
			fmt.Printf("Wild cards spent (%s): %s\n", rarity, formatAmount(used))
		}
	}
}

func formatReport(title string, result *models.PlanResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", title)
	fmt.Fprintf(&b, "Upgrades planned: %d\n", len(result.Actions))
	fmt.Fprintf(&b, "Total XP gained: %s\n", formatAmount(result.TotalXPGained))
	fmt.Fprintf(&b, "Projected King Level: %d (+%s XP into level)\n",
		result.FinalProfile.KingLevel, formatAmount(result.FinalProfile.XPIntoLevel))
	fmt.Fprintf(&b, "Gold spent: %s\n", formatAmount(result.TotalGoldSpent))
	fmt.Fprintf(&b, "Gems spent: %s\n", formatAmount(result.TotalGemsUsed))
	for _, action := range result.Actions {
		fmt.Fprintf(&b, "- %s: %d->%d | Gold %s | Cards %s | Wild %s | Gems %s | XP +%s | Ratio %.2f\n",
			action.CardName, action.FromLevel, action.ToLevel,
			formatAmount(action.GoldCost), formatAmount(action.CardsUsed),
			formatAmount(action.WildCardsUsed), formatAmount(action.GemsUsed),
			formatAmount(action.XPGained), action.EfficiencyRatio)
	}
	return b.String()
}

func recordPlan(cfg *config.Config, result *models.PlanResult) {
	if cfg.Database.SQLitePath == "" {
		return
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		color.Yellow("Warning: could not open plan history database: %v", err)
		return
	}
	defer rec.Close()
	if err := rec.RecordPlan(recorder.NewPlanRecord(mode, "file", result)); err != nil {
		color.Yellow("Warning: could not record plan: %v", err)
	}
}

// formatAmount renders an integer with thousands separators
func formatAmount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
