package liquipedia

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/dotafeed/internal/record"
)

var (
	datesLabel = regexp.MustCompile(`(?i)^dates?:$`)
	prizeLabel = regexp.MustCompile(`(?i)^prize pool:$`)
)

// parseTournaments extracts tournament cards from the yearly listing page.
// The listing groups tournaments into tier sections: each div.divRow holds
// the cards for the tier named by the preceding h3 header.
func parseTournaments(doc *goquery.Document, year int, tier, baseURL string) []record.Tournament {
	tournaments := make([]record.Tournament, 0)

	doc.Find("div.divRow").Each(func(_ int, section *goquery.Selection) {
		sectionTier := strings.TrimSpace(section.PrevAllFiltered("h3").First().Text())
		if sectionTier == "" {
			sectionTier = "Unknown"
		}

		if tier != "" && !strings.Contains(strings.ToLower(sectionTier), strings.ToLower(tier)) {
			return
		}

		section.Find("div.tournament-card").Each(func(_ int, card *goquery.Selection) {
			if t, ok := parseTournamentCard(card, year, sectionTier, baseURL); ok {
				tournaments = append(tournaments, t)
			}
		})
	})

	return tournaments
}

// parseTournamentCard extracts one tournament from a listing card. Cards
// without a link are skipped.
func parseTournamentCard(card *goquery.Selection, year int, tier, baseURL string) (record.Tournament, bool) {
	link := card.Find("a").First()
	if link.Length() == 0 {
		return record.Tournament{}, false
	}

	path := link.AttrOr("href", "")
	name := strings.TrimSpace(link.AttrOr("title", ""))
	if name == "" {
		name = strings.TrimSpace(link.Text())
	}

	return record.Tournament{
		Name:      name,
		Path:      path,
		URL:       baseURL + path,
		Year:      year,
		Tier:      tier,
		Dates:     strings.TrimSpace(card.Find("div.tournament-date").First().Text()),
		PrizePool: strings.TrimSpace(card.Find("div.prize").First().Text()),
	}, true
}

// parseTournamentDetails extracts the infobox, team cards, and bracket
// matches from a tournament page.
func parseTournamentDetails(doc *goquery.Document, path, baseURL string) *record.TournamentDetails {
	details := &record.TournamentDetails{
		Path:    path,
		URL:     baseURL + path,
		Teams:   make([]record.TeamRef, 0),
		Matches: make([]*record.BracketMatch, 0),
	}

	details.Name = strings.TrimSpace(doc.Find("h1.firstHeading").First().Text())

	infobox := doc.Find("div.infobox-center").First()
	if infobox.Length() > 0 {
		details.Dates = infoboxValue(infobox, datesLabel)
		details.PrizePool = infoboxValue(infobox, prizeLabel)
	}

	doc.Find("div.teamcard").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("a").First()
		if link.Length() == 0 {
			return
		}
		name := strings.TrimSpace(link.AttrOr("title", ""))
		if name == "" {
			name = strings.TrimSpace(link.Text())
		}
		details.Teams = append(details.Teams, record.TeamRef{
			Name: name,
			Path: link.AttrOr("href", ""),
		})
	})

	doc.Find("div.brkts-match").Each(func(_ int, matchDiv *goquery.Selection) {
		if m := parseBracketMatch(matchDiv); m != nil {
			details.Matches = append(details.Matches, m)
		}
	})

	return details
}

// infoboxValue finds the label div matching the pattern and returns the text
// of its next sibling, the value cell.
func infoboxValue(infobox *goquery.Selection, label *regexp.Regexp) string {
	var value string
	infobox.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if label.MatchString(strings.TrimSpace(sel.Text())) {
			value = strings.TrimSpace(sel.Next().Text())
			return false
		}
		return true
	})
	return value
}

// parseBracketMatch extracts one match from a bracket entry. Entries with
// fewer than two opponents are bracket placeholders and are skipped.
func parseBracketMatch(matchDiv *goquery.Selection) *record.BracketMatch {
	entries := matchDiv.Find("div.brkts-opponent-entry")
	if entries.Length() < 2 {
		return nil
	}

	m := &record.BracketMatch{
		Team1:   strings.TrimSpace(entries.Eq(0).Text()),
		Team2:   strings.TrimSpace(entries.Eq(1).Text()),
		MatchID: matchDiv.AttrOr("data-match-id", ""),
	}

	scores := matchDiv.Find("div.brkts-opponent-score")
	if scores.Length() > 0 {
		m.Score1 = strings.TrimSpace(scores.Eq(0).Text())
	}
	if scores.Length() > 1 {
		m.Score2 = strings.TrimSpace(scores.Eq(1).Text())
	}

	return m
}

// parseSearchResults decodes an opensearch response. The endpoint returns a
// four-element JSON array: query, page names, descriptions, page URLs.
func parseSearchResults(data []byte, baseURL string) ([]record.SearchResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("unexpected search response shape: %d elements", len(raw))
	}

	var names, urls []string
	if err := json.Unmarshal(raw[1], &names); err != nil {
		return nil, fmt.Errorf("parsing search result names: %w", err)
	}
	if err := json.Unmarshal(raw[3], &urls); err != nil {
		return nil, fmt.Errorf("parsing search result URLs: %w", err)
	}

	results := make([]record.SearchResult, 0, len(names))
	for i, name := range names {
		r := record.SearchResult{Name: name}
		if i < len(urls) {
			r.URL = urls[i]
			r.Path = strings.TrimPrefix(urls[i], baseURL)
		}
		if r.Path == "" || r.Path == r.URL {
			r.Path = "/" + strings.ReplaceAll(name, " ", "_")
		}
		results = append(results, r)
	}

	return results, nil
}
