package liquipedia

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dotafeed/internal/webcache"
)

func loadFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func TestParseTournaments(t *testing.T) {
	doc := loadFixture(t, "tournaments_2024.html")

	tournaments := parseTournaments(doc, 2024, "", DefaultBaseURL)

	if len(tournaments) != 6 {
		t.Fatalf("expected 6 tournaments, got %d", len(tournaments))
	}

	tierCount := make(map[string]int)
	for _, tr := range tournaments {
		tierCount[tr.Tier]++
	}

	expected := map[string]int{
		"Premier Tournaments": 2,
		"Major Tournaments":   3,
		"Minor Tournaments":   1,
	}
	for tier, count := range expected {
		if tierCount[tier] != count {
			t.Errorf("expected %d tournaments in tier %q, got %d", count, tier, tierCount[tier])
		}
	}

	first := tournaments[0]
	if first.Name != "The International 2024" {
		t.Errorf("unexpected name: %s", first.Name)
	}
	if first.Path != "/The_International/2024" {
		t.Errorf("unexpected path: %s", first.Path)
	}
	if first.URL != DefaultBaseURL+"/The_International/2024" {
		t.Errorf("unexpected URL: %s", first.URL)
	}
	if first.Year != 2024 {
		t.Errorf("unexpected year: %d", first.Year)
	}
	if first.Dates != "Sep 4 - 15, 2024" {
		t.Errorf("unexpected dates: %s", first.Dates)
	}
	if first.PrizePool != "$2,570,000" {
		t.Errorf("unexpected prize pool: %s", first.PrizePool)
	}
}

func TestParseTournamentsTierFilter(t *testing.T) {
	doc := loadFixture(t, "tournaments_2024.html")

	tests := []struct {
		tier     string
		expected int
	}{
		{"Premier", 2},
		{"premier", 2}, // case-insensitive
		{"Major", 3},
		{"Minor", 1},
		{"Qualifier", 0},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			tournaments := parseTournaments(doc, 2024, tt.tier, DefaultBaseURL)
			if len(tournaments) != tt.expected {
				t.Errorf("tier %q: expected %d tournaments, got %d", tt.tier, tt.expected, len(tournaments))
			}
		})
	}
}

func TestParseTournamentDetails(t *testing.T) {
	doc := loadFixture(t, "tournament_page.html")

	details := parseTournamentDetails(doc, "/The_International/2024", DefaultBaseURL)

	if details.Name != "The International 2024" {
		t.Errorf("unexpected name: %s", details.Name)
	}
	if details.Dates != "Sep 4 - 15, 2024" {
		t.Errorf("unexpected dates: %s", details.Dates)
	}
	if details.PrizePool != "$2,570,000" {
		t.Errorf("unexpected prize pool: %s", details.PrizePool)
	}

	if len(details.Teams) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(details.Teams))
	}
	if details.Teams[0].Name != "Team Liquid" || details.Teams[0].Path != "/Team_Liquid" {
		t.Errorf("unexpected first team: %+v", details.Teams[0])
	}

	// Third bracket entry has a single opponent and must be skipped.
	if len(details.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(details.Matches))
	}

	m := details.Matches[0]
	if m.Team1 != "Team Liquid" || m.Team2 != "Gaimin Gladiators" {
		t.Errorf("unexpected opponents: %q vs %q", m.Team1, m.Team2)
	}
	if m.Score1 != "2" || m.Score2 != "0" {
		t.Errorf("unexpected scores: %s-%s", m.Score1, m.Score2)
	}
	if m.MatchID != "7890123456" {
		t.Errorf("unexpected match ID: %s", m.MatchID)
	}
}

func TestParseTournamentDetailsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}

	details := parseTournamentDetails(doc, "/Nothing", DefaultBaseURL)

	if details.Name != "" {
		t.Errorf("expected empty name, got %q", details.Name)
	}
	if len(details.Teams) != 0 {
		t.Errorf("expected no teams, got %d", len(details.Teams))
	}
	if len(details.Matches) != 0 {
		t.Errorf("expected no matches, got %d", len(details.Matches))
	}
}

func TestParseSearchResults(t *testing.T) {
	data := []byte(`["international",["The International","The International 2024"],["",""],` +
		`["https://liquipedia.net/dota2/The_International","https://liquipedia.net/dota2/The_International/2024"]]`)

	results, err := parseSearchResults(data, "https://liquipedia.net/dota2")
	if err != nil {
		t.Fatalf("parseSearchResults() error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "The International" {
		t.Errorf("unexpected name: %s", results[0].Name)
	}
	if results[0].Path != "/The_International" {
		t.Errorf("unexpected path: %s", results[0].Path)
	}
	if results[1].Path != "/The_International/2024" {
		t.Errorf("unexpected path: %s", results[1].Path)
	}
}

func TestParseSearchResultsMalformed(t *testing.T) {
	if _, err := parseSearchResults([]byte(`{"not":"an array"}`), DefaultBaseURL); err == nil {
		t.Error("expected error for non-array response")
	}
	if _, err := parseSearchResults([]byte(`["query",["a"]]`), DefaultBaseURL); err == nil {
		t.Error("expected error for truncated response")
	}
}

func TestTournamentsUsesCache(t *testing.T) {
	fixture, err := os.ReadFile("../../testdata/fixtures/tournaments_2024.html")
	if err != nil {
		t.Fatal(err)
	}

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("unexpected User-Agent: %s", ua)
		}
		w.Write(fixture) // nolint:errcheck
	}))
	defer server.Close()

	cache, err := webcache.New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	s := New(Config{BaseURL: server.URL, Cache: cache})

	for i := 0; i < 2; i++ {
		tournaments, err := s.Tournaments(2024, "")
		if err != nil {
			t.Fatalf("Tournaments() error on call %d: %v", i+1, err)
		}
		if len(tournaments) != 6 {
			t.Errorf("call %d: expected 6 tournaments, got %d", i+1, len(tournaments))
		}
	}

	if hits != 1 {
		t.Errorf("expected 1 server hit, got %d (second call should be cached)", hits)
	}
}

func TestFetchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	s := New(Config{BaseURL: server.URL})

	if _, err := s.TournamentDetails("/Missing_Page"); err == nil {
		t.Error("expected error for 404 response")
	}
}
