package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTournamentsCmd() *cobra.Command {
	var (
		year int
		tier string
	)

	cmd := &cobra.Command{
		Use:   "tournaments",
		Short: "List tournaments from the wiki",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			tournaments, err := c.Tournaments(year, tier)
			if err != nil {
				return fmt.Errorf("fetching tournaments: %w", err)
			}

			return WriteTournaments(cmd.OutOrStdout(), tournaments, format)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (default: current year)")
	cmd.Flags().StringVar(&tier, "tier", "", "Filter by tier (e.g. Premier, Major, Minor)")

	return cmd
}

func newTournamentCmd() *cobra.Command {
	var withMatches bool

	cmd := &cobra.Command{
		Use:   "tournament <path>",
		Short: "Show details for a tournament page",
		Long: `Show details for a tournament page, e.g.:

  dotafeed tournament /The_International/2024

With --with-matches, bracket matches are enriched with telemetry from the
match API where a match ID is available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			path := args[0]
			if withMatches {
				details, err := c.TournamentWithMatches(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("fetching tournament: %w", err)
				}
				return WriteTournamentDetails(cmd.OutOrStdout(), details, format)
			}

			details, err := c.TournamentDetails(path)
			if err != nil {
				return fmt.Errorf("fetching tournament: %w", err)
			}
			return WriteTournamentDetails(cmd.OutOrStdout(), details, format)
		},
	}

	cmd.Flags().BoolVar(&withMatches, "with-matches", false, "Enrich bracket matches with telemetry")

	return cmd
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Show telemetry for a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matchID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid match ID: %s", args[0])
			}

			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			match, err := c.MatchDetails(cmd.Context(), matchID)
			if err != nil {
				return fmt.Errorf("fetching match %d: %w", matchID, err)
			}

			return WriteMatch(cmd.OutOrStdout(), match, format)
		},
	}
}

func newPlayerCmd() *cobra.Command {
	var (
		withMatches bool
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "player <account-id>",
		Short: "Show a player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account ID: %s", args[0])
			}

			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			player, err := c.Player(cmd.Context(), accountID)
			if err != nil {
				return fmt.Errorf("fetching player %d: %w", accountID, err)
			}

			result := &PlayerResult{Player: player}
			if withMatches {
				matches, err := c.PlayerMatches(cmd.Context(), accountID, limit)
				if err != nil {
					return fmt.Errorf("fetching player matches: %w", err)
				}
				result.Matches = matches
			}

			return WritePlayer(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().BoolVar(&withMatches, "matches", false, "Include recent matches")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of recent matches (max 100)")

	return cmd
}

func newTeamCmd() *cobra.Command {
	var withMatches bool

	cmd := &cobra.Command{
		Use:   "team <team-id>",
		Short: "Show a team profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid team ID: %s", args[0])
			}

			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			team, err := c.Team(cmd.Context(), teamID)
			if err != nil {
				return fmt.Errorf("fetching team %d: %w", teamID, err)
			}

			result := &TeamResult{Team: team}
			if withMatches {
				matches, err := c.TeamMatches(cmd.Context(), teamID)
				if err != nil {
					return fmt.Errorf("fetching team matches: %w", err)
				}
				result.Matches = matches
			}

			return WriteTeam(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().BoolVar(&withMatches, "matches", false, "Include recent matches")

	return cmd
}

func newProMatchesCmd() *cobra.Command {
	var before int64

	cmd := &cobra.Command{
		Use:   "pro-matches",
		Short: "List recent professional matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			matches, err := c.ProMatches(cmd.Context(), before)
			if err != nil {
				return fmt.Errorf("fetching pro matches: %w", err)
			}

			return WriteProMatches(cmd.OutOrStdout(), matches, format)
		},
	}

	cmd.Flags().Int64Var(&before, "before", 0, "Only matches with ID below this (for paging)")

	return cmd
}

func newHeroesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heroes",
		Short: "List all heroes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			heroes, err := c.Heroes(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching heroes: %w", err)
			}

			return WriteHeroes(cmd.OutOrStdout(), heroes, format)
		},
	}
}

func newSearchCmd() *cobra.Command {
	var players bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tournaments on the wiki, or players with --players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCollector()
			if err != nil {
				return err
			}
			format, err := outputFormat()
			if err != nil {
				return err
			}

			if players {
				results, err := c.SearchPlayers(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("searching players: %w", err)
				}
				return WritePlayerSearch(cmd.OutOrStdout(), results, format)
			}

			results, err := c.SearchTournaments(args[0])
			if err != nil {
				return fmt.Errorf("searching tournaments: %w", err)
			}
			return WriteTournamentSearch(cmd.OutOrStdout(), results, format)
		},
	}

	cmd.Flags().BoolVar(&players, "players", false, "Search players instead of tournaments")

	return cmd
}
