package opendota

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/dotafeed/internal/logger"
	"github.com/pfrederiksen/dotafeed/internal/ratelimit"
	"github.com/pfrederiksen/dotafeed/internal/record"
)

const (
	DefaultBaseURL = "https://api.opendota.com/api"
	Timeout        = 30 * time.Second

	// MaxPlayerMatches is the API's page size ceiling for match history.
	MaxPlayerMatches = 100

	defaultPlayerMatches = 20
)

// Client is a client for the OpenDota API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *ratelimit.Limiter
}

// New creates a new OpenDota API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: Timeout},
		limiter: ratelimit.New(0),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON builds the URL, adds the API key, issues the request, and decodes
// the JSON response. Handles 404 and a single 429 retry via Retry-After.
func (c *Client) doJSON(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	c.limiter.Wait()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		logger.Error("API request failed", logger.Fields{"path": path}, err)
		return fmt.Errorf("opendota http: %w", err)
	}
	defer res.Body.Close()
	logger.RecordTiming("opendota.request", time.Since(start))

	if res.StatusCode == http.StatusTooManyRequests {
		if ra := res.Header.Get("Retry-After"); ra != "" {
			if sec, _ := strconv.Atoi(ra); sec > 0 {
				logger.Warn("Rate limited by API, waiting", logger.Fields{"seconds": sec})
				select {
				case <-time.After(time.Duration(sec) * time.Second):
				case <-ctx.Done():
					return ctx.Err()
				}
				return c.doJSON(ctx, path, q, out)
			}
		}
	}

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// matchPayload is the subset of the raw match response that the summary
// keeps. The league name arrives nested under a league object.
type matchPayload struct {
	MatchID       int64  `json:"match_id"`
	Duration      int    `json:"duration"`
	StartTime     int64  `json:"start_time"`
	RadiantWin    bool   `json:"radiant_win"`
	RadiantScore  int    `json:"radiant_score"`
	DireScore     int    `json:"dire_score"`
	LeagueID      int64  `json:"leagueid"`
	RadiantTeamID int64  `json:"radiant_team_id"`
	DireTeamID    int64  `json:"dire_team_id"`
	League        struct {
		Name string `json:"name"`
	} `json:"league"`
	Players []struct {
		AccountID  int64 `json:"account_id"`
		HeroID     int   `json:"hero_id"`
		Kills      int   `json:"kills"`
		Deaths     int   `json:"deaths"`
		Assists    int   `json:"assists"`
		GoldPerMin int   `json:"gold_per_min"`
		XPPerMin   int   `json:"xp_per_min"`
	} `json:"players"`
}

// Match fetches a match by ID and returns the normalized telemetry summary.
func (c *Client) Match(ctx context.Context, matchID int64) (*record.Match, error) {
	var payload matchPayload
	if err := c.doJSON(ctx, fmt.Sprintf("/matches/%d", matchID), nil, &payload); err != nil {
		return nil, err
	}

	m := &record.Match{
		MatchID:       payload.MatchID,
		Duration:      payload.Duration,
		StartTime:     payload.StartTime,
		RadiantWin:    payload.RadiantWin,
		RadiantScore:  payload.RadiantScore,
		DireScore:     payload.DireScore,
		LeagueID:      payload.LeagueID,
		LeagueName:    payload.League.Name,
		RadiantTeamID: payload.RadiantTeamID,
		DireTeamID:    payload.DireTeamID,
		Players:       make([]record.PlayerPerformance, 0, len(payload.Players)),
	}
	for _, p := range payload.Players {
		m.Players = append(m.Players, record.PlayerPerformance{
			AccountID:  p.AccountID,
			HeroID:     p.HeroID,
			Kills:      p.Kills,
			Deaths:     p.Deaths,
			Assists:    p.Assists,
			GoldPerMin: p.GoldPerMin,
			XPPerMin:   p.XPPerMin,
		})
	}

	return m, nil
}

// playerPayload wraps the nested profile object of the player endpoint.
type playerPayload struct {
	Profile struct {
		AccountID   int64  `json:"account_id"`
		Personaname string `json:"personaname"`
		Name        string `json:"name"`
		Country     string `json:"loccountrycode"`
	} `json:"profile"`
	RankTier        int `json:"rank_tier"`
	LeaderboardRank int `json:"leaderboard_rank"`
}

// Player fetches a player profile by account ID.
func (c *Client) Player(ctx context.Context, accountID int64) (*record.Player, error) {
	var payload playerPayload
	if err := c.doJSON(ctx, fmt.Sprintf("/players/%d", accountID), nil, &payload); err != nil {
		return nil, err
	}

	return &record.Player{
		AccountID:       payload.Profile.AccountID,
		Personaname:     payload.Profile.Personaname,
		ProName:         payload.Profile.Name,
		Country:         payload.Profile.Country,
		RankTier:        payload.RankTier,
		LeaderboardRank: payload.LeaderboardRank,
	}, nil
}

// PlayerMatches fetches a player's recent matches. Limit defaults to 20 and
// is clamped to MaxPlayerMatches.
func (c *Client) PlayerMatches(ctx context.Context, accountID int64, limit int) ([]record.PlayerMatch, error) {
	if limit <= 0 {
		limit = defaultPlayerMatches
	}
	if limit > MaxPlayerMatches {
		limit = MaxPlayerMatches
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var matches []record.PlayerMatch
	if err := c.doJSON(ctx, fmt.Sprintf("/players/%d/matches", accountID), q, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Team fetches a team profile by ID.
func (c *Client) Team(ctx context.Context, teamID int64) (*record.Team, error) {
	var team record.Team
	if err := c.doJSON(ctx, fmt.Sprintf("/teams/%d", teamID), nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// TeamMatches fetches a team's recent matches.
func (c *Client) TeamMatches(ctx context.Context, teamID int64) ([]record.TeamMatch, error) {
	var matches []record.TeamMatch
	if err := c.doJSON(ctx, fmt.Sprintf("/teams/%d/matches", teamID), nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// SearchPlayers searches for players by name.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]record.PlayerSearchResult, error) {
	q := url.Values{}
	q.Set("q", query)

	var results []record.PlayerSearchResult
	if err := c.doJSON(ctx, "/search", q, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ProMatches fetches the professional match feed. A nonzero lessThanMatchID
// pages backwards through older matches.
func (c *Client) ProMatches(ctx context.Context, lessThanMatchID int64) ([]record.ProMatch, error) {
	var q url.Values
	if lessThanMatchID > 0 {
		q = url.Values{}
		q.Set("less_than_match_id", strconv.FormatInt(lessThanMatchID, 10))
	}

	var matches []record.ProMatch
	if err := c.doJSON(ctx, "/proMatches", q, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Heroes fetches the static hero list.
func (c *Client) Heroes(ctx context.Context) ([]record.Hero, error) {
	var heroes []record.Hero
	if err := c.doJSON(ctx, "/heroes", nil, &heroes); err != nil {
		return nil, err
	}
	return heroes, nil
}
