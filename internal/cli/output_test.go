package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pfrederiksen/dotafeed/internal/record"
)

func sampleTournaments() []record.Tournament {
	return []record.Tournament{
		{
			Name:      "The International 2024",
			Path:      "/The_International/2024",
			URL:       "https://liquipedia.net/dota2/The_International/2024",
			Year:      2024,
			Tier:      "Premier Tournaments",
			Dates:     "Sep 4 - 15, 2024",
			PrizePool: "$2,570,000",
		},
		{
			Name: "DreamLeague Season 22",
			Tier: "Major Tournaments",
		},
	}
}

func TestWriteTournamentsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTournaments(&buf, sampleTournaments(), FormatText); err != nil {
		t.Fatalf("WriteTournaments() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Found 2 tournaments") {
		t.Errorf("missing count header in output:\n%s", out)
	}
	if !strings.Contains(out, "The International 2024") {
		t.Errorf("missing tournament name in output:\n%s", out)
	}
	if !strings.Contains(out, "Tier: Premier Tournaments") {
		t.Errorf("missing tier in output:\n%s", out)
	}
	if !strings.Contains(out, "Prize Pool: $2,570,000") {
		t.Errorf("missing prize pool in output:\n%s", out)
	}
}

func TestWriteTournamentsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTournaments(&buf, nil, FormatText); err != nil {
		t.Fatalf("WriteTournaments() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No tournaments found.") {
		t.Errorf("unexpected empty output: %s", buf.String())
	}
}

func TestWriteTournamentsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTournaments(&buf, sampleTournaments(), FormatJSON); err != nil {
		t.Fatalf("WriteTournaments() error: %v", err)
	}

	var decoded []record.Tournament
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected 2 tournaments in JSON, got %d", len(decoded))
	}
	if decoded[0].Name != "The International 2024" {
		t.Errorf("unexpected name: %s", decoded[0].Name)
	}
}

func TestWriteTournamentDetailsText(t *testing.T) {
	details := &record.TournamentDetails{
		Name:      "The International 2024",
		Dates:     "Sep 4 - 15, 2024",
		PrizePool: "$2,570,000",
		Teams: []record.TeamRef{
			{Name: "Team Liquid", Path: "/Team_Liquid"},
			{Name: "Gaimin Gladiators", Path: "/Gaimin_Gladiators"},
		},
		Matches: []*record.BracketMatch{
			{Team1: "Team Liquid", Team2: "Gaimin Gladiators", Score1: "2", Score2: "0"},
			{
				Team1: "Team Falcons", Team2: "Team Liquid", Score1: "1", Score2: "2",
				Details: &record.Match{Duration: 2312, RadiantWin: true, RadiantScore: 34, DireScore: 21},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteTournamentDetails(&buf, details, FormatText); err != nil {
		t.Fatalf("WriteTournamentDetails() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Tournament: The International 2024") {
		t.Errorf("missing tournament header:\n%s", out)
	}
	if !strings.Contains(out, "Teams (2):") {
		t.Errorf("missing teams header:\n%s", out)
	}
	if !strings.Contains(out, "Team Liquid vs Gaimin Gladiators: 2-0") {
		t.Errorf("missing match line:\n%s", out)
	}
	if !strings.Contains(out, "Winner: Radiant") {
		t.Errorf("missing enriched telemetry line:\n%s", out)
	}
}

func TestWriteMatchText(t *testing.T) {
	m := &record.Match{
		MatchID:      7890123456,
		Duration:     2312,
		RadiantWin:   true,
		RadiantScore: 34,
		DireScore:    21,
		LeagueName:   "The International 2024",
		Players: []record.PlayerPerformance{
			{HeroID: 53, Kills: 8, Deaths: 2, Assists: 15, GoldPerMin: 612, XPPerMin: 702},
		},
	}

	var buf bytes.Buffer
	if err := WriteMatch(&buf, m, FormatText); err != nil {
		t.Fatalf("WriteMatch() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Match ID: 7890123456") {
		t.Errorf("missing match ID:\n%s", out)
	}
	if !strings.Contains(out, "Winner: Radiant") {
		t.Errorf("missing winner:\n%s", out)
	}
	if !strings.Contains(out, "Score: Radiant 34 - 21 Dire") {
		t.Errorf("missing score:\n%s", out)
	}
	if !strings.Contains(out, "League: The International 2024") {
		t.Errorf("missing league:\n%s", out)
	}
	if !strings.Contains(out, "Hero 53: 8/2/15 KDA") {
		t.Errorf("missing player line:\n%s", out)
	}
}

func TestWritePlayerText(t *testing.T) {
	result := &PlayerResult{
		Player: &record.Player{
			AccountID:   76482434,
			Personaname: "Miracle-",
			Country:     "JO",
			RankTier:    80,
		},
		Matches: []record.PlayerMatch{
			{MatchID: 1, HeroID: 5, Kills: 10, Deaths: 3, Assists: 7, PlayerSlot: 0, RadiantWin: true},
		},
	}

	var buf bytes.Buffer
	if err := WritePlayer(&buf, result, FormatText); err != nil {
		t.Fatalf("WritePlayer() error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Account ID: 76482434") {
		t.Errorf("missing account ID:\n%s", out)
	}
	if !strings.Contains(out, "Name: Miracle-") {
		t.Errorf("missing name:\n%s", out)
	}
	if !strings.Contains(out, "Recent Matches (1):") {
		t.Errorf("missing matches header:\n%s", out)
	}
	if !strings.Contains(out, "Win") {
		t.Errorf("missing outcome:\n%s", out)
	}
}

func TestOutputFormatValidation(t *testing.T) {
	tests := []struct {
		flag  string
		valid bool
	}{
		{"text", true},
		{"json", true},
		{"JSON", true}, // case-insensitive
		{"yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flagFormat = tt.flag
			_, err := outputFormat()
			if tt.valid && err != nil {
				t.Errorf("outputFormat(%q) unexpected error: %v", tt.flag, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("outputFormat(%q) expected error", tt.flag)
			}
		})
	}
	flagFormat = "text"
}
