package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/dotafeed/internal/config"
	"github.com/pfrederiksen/dotafeed/internal/liquipedia"
	"github.com/pfrederiksen/dotafeed/internal/logger"
	"github.com/pfrederiksen/dotafeed/internal/opendota"
	"github.com/pfrederiksen/dotafeed/internal/record"
	"github.com/pfrederiksen/dotafeed/internal/webcache"
)

var (
	// ErrLiquipediaDisabled is returned by wiki operations when the source
	// is disabled in the config.
	ErrLiquipediaDisabled = errors.New("liquipedia source is disabled in config")

	// ErrOpenDotaDisabled is returned by API operations when the source is
	// disabled in the config.
	ErrOpenDotaDisabled = errors.New("opendota source is disabled in config")
)

// Collector aggregates the enabled data sources behind one API.
type Collector struct {
	liquipedia *liquipedia.Scraper
	opendota   *opendota.Client
}

// New builds a Collector from config, constructing only the enabled sources.
func New(cfg *config.Config) (*Collector, error) {
	c := &Collector{}

	if cfg.Sources.Liquipedia.Enabled {
		var cache *webcache.Cache
		if cfg.Cache.Enabled {
			var err error
			cache, err = webcache.New(cfg.Cache.Dir, cfg.Cache.FreshFor())
			if err != nil {
				return nil, fmt.Errorf("initializing page cache: %w", err)
			}
		}

		c.liquipedia = liquipedia.New(liquipedia.Config{
			BaseURL:     cfg.Sources.Liquipedia.BaseURL,
			UserAgent:   cfg.Sources.Liquipedia.UserAgent,
			MinInterval: cfg.Sources.Liquipedia.Interval(),
			Cache:       cache,
		})
	}

	if cfg.Sources.OpenDota.Enabled {
		opts := []opendota.Option{
			opendota.WithMinInterval(cfg.Sources.OpenDota.Interval()),
		}
		if cfg.Sources.OpenDota.BaseURL != "" {
			opts = append(opts, opendota.WithBaseURL(cfg.Sources.OpenDota.BaseURL))
		}
		if cfg.Sources.OpenDota.APIKey != "" {
			opts = append(opts, opendota.WithAPIKey(cfg.Sources.OpenDota.APIKey))
		}
		c.opendota = opendota.New(opts...)
	}

	return c, nil
}

// Tournaments lists tournaments from the wiki for a year (0 = current),
// optionally filtered by tier.
func (c *Collector) Tournaments(year int, tier string) ([]record.Tournament, error) {
	if c.liquipedia == nil {
		return nil, ErrLiquipediaDisabled
	}
	return c.liquipedia.Tournaments(year, tier)
}

// TournamentDetails fetches a tournament page from the wiki.
func (c *Collector) TournamentDetails(path string) (*record.TournamentDetails, error) {
	if c.liquipedia == nil {
		return nil, ErrLiquipediaDisabled
	}
	return c.liquipedia.TournamentDetails(path)
}

// SearchTournaments searches the wiki for tournament pages.
func (c *Collector) SearchTournaments(query string) ([]record.SearchResult, error) {
	if c.liquipedia == nil {
		return nil, ErrLiquipediaDisabled
	}
	return c.liquipedia.SearchTournaments(query)
}

// MatchDetails fetches normalized match telemetry from the API.
func (c *Collector) MatchDetails(ctx context.Context, matchID int64) (*record.Match, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.Match(ctx, matchID)
}

// Player fetches a player profile from the API.
func (c *Collector) Player(ctx context.Context, accountID int64) (*record.Player, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.Player(ctx, accountID)
}

// PlayerMatches fetches a player's recent matches from the API.
func (c *Collector) PlayerMatches(ctx context.Context, accountID int64, limit int) ([]record.PlayerMatch, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.PlayerMatches(ctx, accountID, limit)
}

// SearchPlayers searches the API for players by name.
func (c *Collector) SearchPlayers(ctx context.Context, query string) ([]record.PlayerSearchResult, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.SearchPlayers(ctx, query)
}

// Team fetches a team profile from the API.
func (c *Collector) Team(ctx context.Context, teamID int64) (*record.Team, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.Team(ctx, teamID)
}

// TeamMatches fetches a team's recent matches from the API.
func (c *Collector) TeamMatches(ctx context.Context, teamID int64) ([]record.TeamMatch, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.TeamMatches(ctx, teamID)
}

// ProMatches fetches the professional match feed from the API.
func (c *Collector) ProMatches(ctx context.Context, lessThanMatchID int64) ([]record.ProMatch, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.ProMatches(ctx, lessThanMatchID)
}

// Heroes fetches the static hero list from the API.
func (c *Collector) Heroes(ctx context.Context) ([]record.Hero, error) {
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}
	return c.opendota.Heroes(ctx)
}

// TournamentWithMatches fetches a tournament from the wiki and enriches its
// bracket matches with telemetry from the API. Matches without a usable
// telemetry ID are left as scraped; per-match fetch failures are logged and
// skipped so one bad ID doesn't lose the tournament.
func (c *Collector) TournamentWithMatches(ctx context.Context, path string) (*record.TournamentDetails, error) {
	if c.liquipedia == nil {
		return nil, ErrLiquipediaDisabled
	}
	if c.opendota == nil {
		return nil, ErrOpenDotaDisabled
	}

	details, err := c.liquipedia.TournamentDetails(path)
	if err != nil {
		return nil, err
	}

	for _, m := range details.Matches {
		id, ok := m.TelemetryID()
		if !ok {
			continue
		}

		telemetry, err := c.opendota.Match(ctx, id)
		if err != nil {
			logger.Warn("Skipping match enrichment", logger.Fields{
				"match_id": id,
				"error":    err.Error(),
			})
			continue
		}
		m.Details = telemetry
	}

	return details, nil
}
