// Web front-end: a single form that accepts player state (pasted JSON or a
// player tag resolved through the Clash Royale API) and renders the planned
// upgrade path.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/royaleforge/levelcalc/internal/catalog"
	"github.com/royaleforge/levelcalc/internal/config"
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
	"github.com/royaleforge/levelcalc/internal/recorder"
	"github.com/royaleforge/levelcalc/internal/royale"
	"github.com/royaleforge/levelcalc/internal/solver"
)

var configFile = flag.String("config", "levelcalc.yaml", "Path to YAML config file")

type server struct {
	cfg      *config.Config
	data     *gamedata.GameData
	catalog  *catalog.Catalog
	recorder recorder.Recorder
	tmpl     *template.Template
}

type pageData struct {
	RawJSON   string
	PlayerTag string
	GoldInput string
	GemsInput string
	Source    string
	Mode      string
	UseGems   bool
	InfGold   bool
	SpendWild bool
	Errors    []string
	Result    *models.PlanResult
	Rarities  []models.Rarity
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cat, err := catalog.New(cfg.Catalog.FallbackPath)
	if err != nil {
		log.Printf("card catalog unavailable: %v (rarities must be present in pasted JSON)", err)
		cat = nil
	}

	var rec recorder.Recorder = recorder.NoopRecorder{}
	if cfg.Database.SQLitePath != "" {
		sqliteRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("plan history disabled: %v", err)
		} else {
			rec = sqliteRec
			defer sqliteRec.Close()
		}
	}

	s := &server{
		cfg:      cfg,
		data:     gamedata.New(),
		catalog:  cat,
		recorder: rec,
		tmpl:     template.Must(template.New("index").Parse(indexTemplate)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("levelcalc web planner listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := pageData{
		RawJSON:  samplePlayerJSON,
		Source:   "json",
		Mode:     "maxxp",
		Rarities: models.AllRarities(),
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		s.handleSubmit(r, &page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, page); err != nil {
		log.Printf("render: %v", err)
	}
}

func (s *server) handleSubmit(r *http.Request, page *pageData) {
	page.Source = r.FormValue("source")
	page.Mode = r.FormValue("mode")
	page.PlayerTag = r.FormValue("player_tag")
	page.GoldInput = r.FormValue("gold")
	page.GemsInput = r.FormValue("gems")
	page.UseGems = r.FormValue("use_gems") == "on"
	page.InfGold = r.FormValue("infinite_gold") == "on"
	page.SpendWild = r.FormValue("spend_wild_cards") == "on"
	if raw := r.FormValue("player_json"); raw != "" {
		page.RawJSON = raw
	}

	player, err := s.playerData(page)
	if err != nil {
		page.Errors = append(page.Errors, err.Error())
		return
	}

	settings := models.Settings{
		UseGems:        page.UseGems,
		InfiniteGold:   page.InfGold,
		KeepWildBuffer: !page.SpendWild,
		GemToGoldRatio: s.cfg.Planner.GemToGoldRatio,
	}

	switch page.Mode {
	case "maxxp":
		page.Result = solver.NewMaxXPSolver(player, settings, s.data).Plan()
	case "mincost":
		page.Result = solver.NewMinCostSolver(player, settings, s.data, 0).Plan()
	case "min-gems":
		page.Result = solver.MinimizeGems(player, 0, s.data)
	case "min-gold":
		page.Result = solver.MinimizeGold(player, 0, s.data)
	default:
		page.Errors = append(page.Errors, fmt.Sprintf("unknown mode %q", page.Mode))
		return
	}

	if err := s.recorder.RecordPlan(recorder.NewPlanRecord(page.Mode, "web", page.Result)); err != nil {
		log.Printf("record plan: %v", err)
	}
}

func (s *server) playerData(page *pageData) (*models.PlayerData, error) {
	if page.Source == "api" {
		tag := strings.TrimSpace(page.PlayerTag)
		if tag == "" {
			return nil, fmt.Errorf("player tag is required when using the API")
		}
		gold, err := parseAmount(page.GoldInput)
		if err != nil {
			return nil, fmt.Errorf("gold must be a whole number")
		}
		gems, err := parseAmount(page.GemsInput)
		if err != nil {
			return nil, fmt.Errorf("gems must be a whole number")
		}

		client := royale.NewClient(s.cfg.Royale.APIKey)
		snapshot, err := client.PlayerSnapshot(tag)
		if err != nil {
			return nil, err
		}
		return royale.PlayerDataFromSnapshot(snapshot, gold, gems, s.data)
	}

	return s.playerDataFromJSON(page.RawJSON)
}

func (s *server) playerDataFromJSON(raw string) (*models.PlayerData, error) {
	var payload struct {
		Profile   models.PlayerProfile `json:"profile"`
		Inventory struct {
			Gold      int            `json:"gold"`
			Gems      int            `json:"gems"`
			WildCards map[string]int `json:"wild_cards"`
		} `json:"inventory"`
		Cards []struct {
			Name   string `json:"name"`
			Rarity string `json:"rarity"`
			Level  int    `json:"level"`
			Count  int    `json:"count"`
		} `json:"cards"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("player JSON could not be parsed: %w", err)
	}

	wildCards := make(map[models.Rarity]int)
	for _, rarity := range models.AllRarities() {
		wildCards[rarity] = 0
	}
	for name, count := range payload.Inventory.WildCards {
		rarity, err := s.data.NormalizeRarity(name)
		if err != nil {
			return nil, err
		}
		wildCards[rarity] = count
	}

	var cards []models.Card
	for _, entry := range payload.Cards {
		rawRarity := entry.Rarity
		if rawRarity == "" {
			if s.catalog == nil {
				return nil, fmt.Errorf("card %q has no rarity and the card catalog is unavailable", entry.Name)
			}
			meta, err := s.catalog.Require(entry.Name)
			if err != nil {
				return nil, err
			}
			rawRarity = meta.Rarity
		}
		rarity, err := s.data.NormalizeRarity(rawRarity)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.Name, err)
		}
		cards = append(cards, models.Card{Name: entry.Name, Rarity: rarity, Level: entry.Level, Count: entry.Count})
	}

	player := &models.PlayerData{
		Profile: payload.Profile,
		Inventory: models.Inventory{
			Gold:      payload.Inventory.Gold,
			Gems:      payload.Inventory.Gems,
			WildCards: wildCards,
		},
		Cards: cards,
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}
	return player, nil
}

func parseAmount(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, nil
	}
	return strconv.Atoi(cleaned)
}
