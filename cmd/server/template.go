package main

const samplePlayerJSON = `{
  "profile": {"king_level": 11, "xp_into_level": 1200},
  "inventory": {"gold": 450000, "gems": 1000, "wild_cards": {"Common": 200, "Rare": 50}},
  "cards": [
    {"name": "Knight", "rarity": "Common", "level": 12, "count": 1800},
    {"name": "Musketeer", "rarity": "Rare", "level": 10, "count": 320},
    {"name": "Baby Dragon", "rarity": "Epic", "level": 8, "count": 14},
    {"name": "Miner", "rarity": "Legendary", "level": 10, "count": 3}
  ]
}`

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Clash Level Calculator</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; color: #222; }
textarea { width: 100%; height: 14rem; font-family: monospace; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: right; }
th { background: #eee; }
td:nth-child(2), td:nth-child(3) { text-align: left; }
.error { color: #b00; }
fieldset { margin: 1rem 0; }
</style>
</head>
<body>
<h1>Clash Level Calculator</h1>

{{range .Errors}}<p class="error">{{.}}</p>{{end}}

<form method="post">
<fieldset>
<legend>Player state</legend>
<label><input type="radio" name="source" value="json" {{if ne .Source "api"}}checked{{end}}> Paste player JSON</label>
<label><input type="radio" name="source" value="api" {{if eq .Source "api"}}checked{{end}}> Fetch by player tag</label>
<p><textarea name="player_json">{{.RawJSON}}</textarea></p>
<p>
<label>Player tag <input name="player_tag" value="{{.PlayerTag}}" placeholder="#2PP0G9JY"></label>
<label>Gold <input name="gold" value="{{.GoldInput}}"></label>
<label>Gems <input name="gems" value="{{.GemsInput}}"></label>
</p>
</fieldset>

<fieldset>
<legend>Planner</legend>
<label>Mode
<select name="mode">
<option value="maxxp" {{if eq .Mode "maxxp"}}selected{{end}}>Maximize XP</option>
<option value="mincost" {{if eq .Mode "mincost"}}selected{{end}}>Cheapest path to next king level</option>
<option value="min-gems" {{if eq .Mode "min-gems"}}selected{{end}}>Minimal gems to next king level</option>
<option value="min-gold" {{if eq .Mode "min-gold"}}selected{{end}}>Minimal gold to next king level</option>
</select>
</label>
<label><input type="checkbox" name="use_gems" {{if .UseGems}}checked{{end}}> Spend gems on missing cards</label>
<label><input type="checkbox" name="infinite_gold" {{if .InfGold}}checked{{end}}> Ignore gold (card bottleneck)</label>
<label><input type="checkbox" name="spend_wild_cards" {{if .SpendWild}}checked{{end}}> Spend full wild card pools</label>
</fieldset>

<p><button type="submit">Plan upgrades</button></p>
</form>

{{with .Result}}
<h2>Plan</h2>
<p>
Upgrades: <strong>{{len .Actions}}</strong> |
Total XP: <strong>{{.TotalXPGained}}</strong> |
Projected King Level: <strong>{{.FinalProfile.KingLevel}}</strong> (+{{.FinalProfile.XPIntoLevel}} XP) |
Gold spent: <strong>{{.TotalGoldSpent}}</strong> |
Gems spent: <strong>{{.TotalGemsUsed}}</strong>
</p>
{{if .Actions}}
<table>
<tr><th>#</th><th>Card</th><th>Rarity</th><th>Upgrade</th><th>Gold</th><th>Cards</th><th>Wild</th><th>Gems</th><th>XP</th><th>Ratio</th></tr>
{{range $i, $a := .Actions}}
<tr>
<td>{{$i}}</td><td>{{$a.CardName}}</td><td>{{$a.Rarity}}</td>
<td>{{$a.FromLevel}} → {{$a.ToLevel}}</td>
<td>{{$a.GoldCost}}</td><td>{{$a.CardsUsed}}</td><td>{{$a.WildCardsUsed}}</td>
<td>{{$a.GemsUsed}}</td><td>+{{$a.XPGained}}</td><td>{{printf "%.2f" $a.EfficiencyRatio}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No upgrades available for these settings.</p>
{{end}}
{{end}}

</body>
</html>`
