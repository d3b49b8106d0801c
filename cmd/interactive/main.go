// Interactive planner: prompts for a player tag and balances, fetches the
// player's state from the Clash Royale API (or a saved response), and shows
// the three standard planning scenarios side by side.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/royaleforge/levelcalc/internal/config"
	"github.com/royaleforge/levelcalc/internal/gamedata"
	"github.com/royaleforge/levelcalc/internal/models"
	"github.com/royaleforge/levelcalc/internal/royale"
	"github.com/royaleforge/levelcalc/internal/solver"
)

var (
	configFile  = flag.String("config", "levelcalc.yaml", "Path to YAML config file")
	offlineFile = flag.String("offline-file", "", "Path to a saved API JSON response for offline use")
	reportPath  = flag.String("report", "", "Optional path to write the combined scenario output")
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

var inputLabels = []string{"Player tag", "Available gold", "Available gems"}

type resultsMsg struct {
	output string
	err    error
}

type model struct {
	cfg    *config.Config
	data   *gamedata.GameData
	inputs []textinput.Model
	focus  int

	planning bool
	output   string
	err      error
}

func newModel(cfg *config.Config) model {
	inputs := make([]textinput.Model, len(inputLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		inputs[i] = ti
	}
	inputs[0].Placeholder = "#2PP0G9JY"
	inputs[1].Placeholder = "450000"
	inputs[2].Placeholder = "1000"
	inputs[0].Focus()

	return model{
		cfg:    cfg,
		data:   gamedata.New(),
		inputs: inputs,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "q":
			if m.output != "" || m.err != nil {
				return m, tea.Quit
			}
		case "enter":
			if m.planning {
				return m, nil
			}
			if m.output != "" || m.err != nil {
				return m, tea.Quit
			}
			if m.focus < len(m.inputs)-1 {
				m.inputs[m.focus].Blur()
				m.focus++
				m.inputs[m.focus].Focus()
				return m, nil
			}
			m.planning = true
			return m, m.runScenarios()
		case "tab", "shift+tab", "up", "down":
			if m.planning || m.output != "" {
				return m, nil
			}
			m.inputs[m.focus].Blur()
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focus--
			} else {
				m.focus++
			}
			if m.focus < 0 {
				m.focus = len(m.inputs) - 1
			}
			if m.focus >= len(m.inputs) {
				m.focus = 0
			}
			m.inputs[m.focus].Focus()
			return m, nil
		}

	case resultsMsg:
		m.planning = false
		m.output = msg.output
		m.err = msg.err
		return m, nil
	}

	if !m.planning && m.output == "" {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Clash Level Calculator — scenario comparison"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\npress q to quit\n")
	case m.output != "":
		b.WriteString(m.output)
		b.WriteString("\npress q to quit\n")
	case m.planning:
		b.WriteString("Fetching player data and planning…\n")
	default:
		for i, input := range m.inputs {
			b.WriteString(labelStyle.Render(inputLabels[i]+": "))
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("enter to continue, esc to abort"))
		b.WriteString("\n")
	}
	return b.String()
}

// runScenarios resolves the inputs, fetches the snapshot and runs the three
// comparison plans off the UI goroutine.
func (m model) runScenarios() tea.Cmd {
	tag := strings.TrimSpace(m.inputs[0].Value())
	goldRaw := m.inputs[1].Value()
	gemsRaw := m.inputs[2].Value()

	return func() tea.Msg {
		gold, err := parseAmount(goldRaw)
		if err != nil {
			return resultsMsg{err: fmt.Errorf("gold must be a whole number: %w", err)}
		}
		gems, err := parseAmount(gemsRaw)
		if err != nil {
			return resultsMsg{err: fmt.Errorf("gems must be a whole number: %w", err)}
		}

		snapshot, err := loadSnapshot(m.cfg, tag)
		if err != nil {
			return resultsMsg{err: err}
		}

		player, err := royale.PlayerDataFromSnapshot(snapshot, gold, gems, m.data)
		if err != nil {
			return resultsMsg{err: err}
		}

		output := formatScenarios(player, m.data, m.cfg.Planner.GemToGoldRatio)
		if *reportPath != "" {
			if err := os.WriteFile(*reportPath, []byte(output), 0o644); err != nil {
				return resultsMsg{err: fmt.Errorf("write report: %w", err)}
			}
		}
		return resultsMsg{output: output}
	}
}

func loadSnapshot(cfg *config.Config, tag string) (*royale.Snapshot, error) {
	if *offlineFile != "" {
		raw, err := os.ReadFile(*offlineFile)
		if err != nil {
			return nil, fmt.Errorf("read offline file: %w", err)
		}
		var snapshot royale.Snapshot
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return nil, fmt.Errorf("parse offline file: %w", err)
		}
		return &snapshot, nil
	}

	client := royale.NewClient(cfg.Royale.APIKey)
	return client.PlayerSnapshot(tag)
}

func formatScenarios(player *models.PlayerData, data *gamedata.GameData, gemRatio float64) string {
	scenarios := []struct {
		title    string
		settings models.Settings
	}{
		{
			"All Resources (Gold + Gems + Cards) — gem costs are estimates",
			models.Settings{UseGems: true, GemToGoldRatio: gemRatio},
		},
		{
			"Gold + Cards Only",
			models.Settings{GemToGoldRatio: gemRatio},
		},
		{
			"Card Bottleneck (Infinite Gold)",
			models.Settings{InfiniteGold: true, GemToGoldRatio: gemRatio},
		},
	}

	var b strings.Builder
	for _, sc := range scenarios {
		result := solver.NewMaxXPSolver(player.Clone(), sc.settings, data).Plan()

		b.WriteString(headerStyle.Render("=== " + sc.title + " ==="))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Projected King Level: %d (+%d XP into level)\n",
			result.FinalProfile.KingLevel, result.FinalProfile.XPIntoLevel)
		fmt.Fprintf(&b, "Upgrades planned: %d\n", len(result.Actions))
		fmt.Fprintf(&b, "Total XP gained: %d\n", result.TotalXPGained)
		fmt.Fprintf(&b, "Gold spent: %d\n", result.TotalGoldSpent)
		fmt.Fprintf(&b, "Gems spent: %d\n", result.TotalGemsUsed)
		if len(result.Actions) == 0 {
			b.WriteString("No upgrades available for this scenario.\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func parseAmount(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, nil
	}
	return strconv.Atoi(cleaned)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *offlineFile == "" {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(newModel(cfg))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running planner: %v\n", err)
		os.Exit(1)
	}
}
