package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/dotafeed/internal/record"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// PlayerResult bundles a player profile with optional recent matches.
type PlayerResult struct {
	Player  *record.Player       `json:"player"`
	Matches []record.PlayerMatch `json:"matches,omitempty"`
}

// TeamResult bundles a team profile with optional recent matches.
type TeamResult struct {
	Team    *record.Team       `json:"team"`
	Matches []record.TeamMatch `json:"matches,omitempty"`
}

// writeJSON outputs any result as indented JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// WriteTournaments writes a tournament listing
func WriteTournaments(w io.Writer, tournaments []record.Tournament, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, tournaments)
	}

	if len(tournaments) == 0 {
		fmt.Fprintln(w, "No tournaments found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d tournaments:\n\n", len(tournaments))
	for _, t := range tournaments {
		fmt.Fprintf(w, "  %s\n", t.Name)
		fmt.Fprintf(w, "    Tier: %s\n", t.Tier)
		fmt.Fprintf(w, "    Dates: %s\n", t.Dates)
		fmt.Fprintf(w, "    Prize Pool: %s\n", t.PrizePool)
		fmt.Fprintf(w, "    URL: %s\n\n", t.URL)
	}

	return nil
}

// WriteTournamentDetails writes a tournament page with teams and matches
func WriteTournamentDetails(w io.Writer, details *record.TournamentDetails, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, details)
	}

	fmt.Fprintf(w, "Tournament: %s\n", details.Name)
	if details.Dates != "" {
		fmt.Fprintf(w, "Dates: %s\n", details.Dates)
	}
	if details.PrizePool != "" {
		fmt.Fprintf(w, "Prize Pool: %s\n", details.PrizePool)
	}

	fmt.Fprintf(w, "\nTeams (%d):\n", len(details.Teams))
	for _, team := range details.Teams {
		fmt.Fprintf(w, "  - %s\n", team.Name)
	}

	fmt.Fprintf(w, "\nMatches (%d):\n", len(details.Matches))
	for _, m := range details.Matches {
		if m.Score1 != "" || m.Score2 != "" {
			fmt.Fprintf(w, "  %s vs %s: %s-%s\n", m.Team1, m.Team2, m.Score1, m.Score2)
		} else {
			fmt.Fprintf(w, "  %s vs %s\n", m.Team1, m.Team2)
		}
		if m.Details != nil {
			fmt.Fprintf(w, "    Duration: %ds, Winner: %s, Score: %d-%d\n",
				m.Details.Duration, m.Details.Winner(), m.Details.RadiantScore, m.Details.DireScore)
		}
	}

	return nil
}

// WriteMatch writes match telemetry
func WriteMatch(w io.Writer, m *record.Match, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, m)
	}

	fmt.Fprintf(w, "Match ID: %d\n", m.MatchID)
	fmt.Fprintf(w, "Duration: %d seconds\n", m.Duration)
	fmt.Fprintf(w, "Winner: %s\n", m.Winner())
	fmt.Fprintf(w, "Score: Radiant %d - %d Dire\n", m.RadiantScore, m.DireScore)
	if m.LeagueName != "" {
		fmt.Fprintf(w, "League: %s\n", m.LeagueName)
	}

	fmt.Fprintf(w, "\nPlayers (%d):\n", len(m.Players))
	for _, p := range m.Players {
		fmt.Fprintf(w, "  Hero %d: %d/%d/%d KDA, %d GPM, %d XPM\n",
			p.HeroID, p.Kills, p.Deaths, p.Assists, p.GoldPerMin, p.XPPerMin)
	}

	return nil
}

// WritePlayer writes a player profile with optional match history
func WritePlayer(w io.Writer, result *PlayerResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	p := result.Player
	fmt.Fprintf(w, "Account ID: %d\n", p.AccountID)
	if p.Personaname != "" {
		fmt.Fprintf(w, "Name: %s\n", p.Personaname)
	}
	if p.ProName != "" {
		fmt.Fprintf(w, "Pro Name: %s\n", p.ProName)
	}
	if p.Country != "" {
		fmt.Fprintf(w, "Country: %s\n", p.Country)
	}
	if p.RankTier > 0 {
		fmt.Fprintf(w, "Rank Tier: %d\n", p.RankTier)
	}
	if p.LeaderboardRank > 0 {
		fmt.Fprintf(w, "Leaderboard Rank: %d\n", p.LeaderboardRank)
	}

	if len(result.Matches) > 0 {
		fmt.Fprintf(w, "\nRecent Matches (%d):\n", len(result.Matches))
		for _, m := range result.Matches {
			outcome := "Loss"
			if m.Won() {
				outcome = "Win"
			}
			fmt.Fprintf(w, "  %d: Hero %d, %d/%d/%d KDA, %s\n",
				m.MatchID, m.HeroID, m.Kills, m.Deaths, m.Assists, outcome)
		}
	}

	return nil
}

// WriteTeam writes a team profile with optional match history
func WriteTeam(w io.Writer, result *TeamResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	t := result.Team
	fmt.Fprintf(w, "Team ID: %d\n", t.TeamID)
	fmt.Fprintf(w, "Name: %s\n", t.Name)
	if t.Tag != "" {
		fmt.Fprintf(w, "Tag: %s\n", t.Tag)
	}
	if t.Rating > 0 {
		fmt.Fprintf(w, "Rating: %.1f\n", t.Rating)
	}
	fmt.Fprintf(w, "Record: %d-%d\n", t.Wins, t.Losses)

	if len(result.Matches) > 0 {
		fmt.Fprintf(w, "\nRecent Matches (%d):\n", len(result.Matches))
		for _, m := range result.Matches {
			outcome := "Loss"
			if m.Won() {
				outcome = "Win"
			}
			opponent := m.OpposingTeamName
			if opponent == "" {
				opponent = "Unknown"
			}
			fmt.Fprintf(w, "  %d: vs %s, %s\n", m.MatchID, opponent, outcome)
		}
	}

	return nil
}

// WriteProMatches writes the professional match feed
func WriteProMatches(w io.Writer, matches []record.ProMatch, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, matches)
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No pro matches found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d pro matches:\n\n", len(matches))
	for _, m := range matches {
		radiant := m.RadiantName
		if radiant == "" {
			radiant = "Radiant"
		}
		dire := m.DireName
		if dire == "" {
			dire = "Dire"
		}
		fmt.Fprintf(w, "  %d: %s %d - %d %s", m.MatchID, radiant, m.RadiantScore, m.DireScore, dire)
		if m.LeagueName != "" {
			fmt.Fprintf(w, " (%s)", m.LeagueName)
		}
		fmt.Fprintln(w)
	}

	return nil
}

// WriteHeroes writes the hero list
func WriteHeroes(w io.Writer, heroes []record.Hero, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, heroes)
	}

	fmt.Fprintf(w, "Found %d heroes:\n\n", len(heroes))
	for _, h := range heroes {
		fmt.Fprintf(w, "  %3d  %-24s %s / %s\n", h.ID, h.LocalizedName, h.PrimaryAttr, h.AttackType)
	}

	return nil
}

// WriteTournamentSearch writes wiki search results
func WriteTournamentSearch(w io.Writer, results []record.SearchResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No tournaments found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d results:\n\n", len(results))
	for _, r := range results {
		fmt.Fprintf(w, "  %s\n    %s\n", r.Name, r.Path)
	}

	return nil
}

// WritePlayerSearch writes player search results
func WritePlayerSearch(w io.Writer, results []record.PlayerSearchResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No players found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d players:\n\n", len(results))
	for _, r := range results {
		fmt.Fprintf(w, "  %s (account %d)\n", r.Personaname, r.AccountID)
	}

	return nil
}
