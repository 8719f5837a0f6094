package record

import "strconv"

// Tournament is a single entry from the wiki tournament listing.
type Tournament struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	URL       string `json:"url"`
	Year      int    `json:"year"`
	Tier      string `json:"tier"`
	Dates     string `json:"dates"`
	PrizePool string `json:"prize_pool"`
}

// TeamRef is a participating team as listed on a tournament page.
type TeamRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// BracketMatch is a match scraped from a tournament bracket. Scores are kept
// as text since the wiki shows placeholders like "W" and "FF" for walkovers.
type BracketMatch struct {
	Team1   string `json:"team1"`
	Team2   string `json:"team2"`
	Score1  string `json:"score1"`
	Score2  string `json:"score2"`
	MatchID string `json:"match_id,omitempty"`
	Details *Match `json:"details,omitempty"`
}

// TelemetryID returns the bracket match ID as a numeric telemetry match ID.
// Returns false when the bracket carries no usable ID.
func (m *BracketMatch) TelemetryID() (int64, bool) {
	if m.MatchID == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(m.MatchID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// TournamentDetails is the full scrape of a single tournament page.
type TournamentDetails struct {
	Name      string          `json:"name"`
	Path      string          `json:"path"`
	URL       string          `json:"url"`
	Dates     string          `json:"dates"`
	PrizePool string          `json:"prize_pool"`
	Teams     []TeamRef       `json:"teams"`
	Matches   []*BracketMatch `json:"matches"`
}

// SearchResult is a tournament page found via the wiki search endpoint.
type SearchResult struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// PlayerPerformance is one player's line from match telemetry.
type PlayerPerformance struct {
	AccountID  int64 `json:"account_id"`
	HeroID     int   `json:"hero_id"`
	Kills      int   `json:"kills"`
	Deaths     int   `json:"deaths"`
	Assists    int   `json:"assists"`
	GoldPerMin int   `json:"gold_per_min"`
	XPPerMin   int   `json:"xp_per_min"`
}

// Match is the normalized telemetry summary for a single match.
type Match struct {
	MatchID       int64               `json:"match_id"`
	Duration      int                 `json:"duration"`
	StartTime     int64               `json:"start_time"`
	RadiantWin    bool                `json:"radiant_win"`
	RadiantScore  int                 `json:"radiant_score"`
	DireScore     int                 `json:"dire_score"`
	LeagueID      int64               `json:"league_id"`
	LeagueName    string              `json:"league_name,omitempty"`
	RadiantTeamID int64               `json:"radiant_team_id,omitempty"`
	DireTeamID    int64               `json:"dire_team_id,omitempty"`
	Players       []PlayerPerformance `json:"players"`
}

// Winner returns the winning side as a display string.
func (m *Match) Winner() string {
	if m.RadiantWin {
		return "Radiant"
	}
	return "Dire"
}

// Player is a player profile from the telemetry API.
type Player struct {
	AccountID       int64  `json:"account_id"`
	Personaname     string `json:"personaname,omitempty"`
	ProName         string `json:"name,omitempty"`
	Country         string `json:"country,omitempty"`
	RankTier        int    `json:"rank_tier,omitempty"`
	LeaderboardRank int    `json:"leaderboard_rank,omitempty"`
}

// PlayerMatch is one entry of a player's recent match history.
type PlayerMatch struct {
	MatchID    int64 `json:"match_id"`
	PlayerSlot int   `json:"player_slot"`
	RadiantWin bool  `json:"radiant_win"`
	Duration   int   `json:"duration"`
	StartTime  int64 `json:"start_time"`
	HeroID     int   `json:"hero_id"`
	Kills      int   `json:"kills"`
	Deaths     int   `json:"deaths"`
	Assists    int   `json:"assists"`
}

// Won reports whether the player's side won the match. Slots 0-127 are
// Radiant, 128-255 are Dire.
func (m PlayerMatch) Won() bool {
	radiant := m.PlayerSlot < 128
	return radiant == m.RadiantWin
}

// PlayerSearchResult is one hit from a player name search.
type PlayerSearchResult struct {
	AccountID   int64   `json:"account_id"`
	Personaname string  `json:"personaname"`
	Similarity  float64 `json:"similarity"`
}

// Team is a professional team profile.
type Team struct {
	TeamID        int64   `json:"team_id"`
	Name          string  `json:"name"`
	Tag           string  `json:"tag,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	LastMatchTime int64   `json:"last_match_time,omitempty"`
}

// TeamMatch is one entry of a team's recent match history.
type TeamMatch struct {
	MatchID          int64  `json:"match_id"`
	RadiantWin       bool   `json:"radiant_win"`
	Radiant          bool   `json:"radiant"`
	Duration         int    `json:"duration"`
	StartTime        int64  `json:"start_time"`
	LeagueID         int64  `json:"leagueid"`
	LeagueName       string `json:"league_name,omitempty"`
	OpposingTeamID   int64  `json:"opposing_team_id,omitempty"`
	OpposingTeamName string `json:"opposing_team_name,omitempty"`
}

// Won reports whether the team won the match.
func (m TeamMatch) Won() bool {
	return m.Radiant == m.RadiantWin
}

// ProMatch is one entry of the professional match feed.
type ProMatch struct {
	MatchID       int64  `json:"match_id"`
	Duration      int    `json:"duration"`
	StartTime     int64  `json:"start_time"`
	RadiantTeamID int64  `json:"radiant_team_id,omitempty"`
	RadiantName   string `json:"radiant_name,omitempty"`
	DireTeamID    int64  `json:"dire_team_id,omitempty"`
	DireName      string `json:"dire_name,omitempty"`
	LeagueID      int64  `json:"leagueid"`
	LeagueName    string `json:"league_name,omitempty"`
	RadiantScore  int    `json:"radiant_score"`
	DireScore     int    `json:"dire_score"`
	RadiantWin    bool   `json:"radiant_win"`
}

// Hero is a playable hero from the static hero list.
type Hero struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	LocalizedName string   `json:"localized_name"`
	PrimaryAttr   string   `json:"primary_attr"`
	AttackType    string   `json:"attack_type"`
	Roles         []string `json:"roles"`
}
