// Package liquipedia provides HTTP fetching and HTML parsing for Dota 2
// tournament data from the Liquipedia wiki.
//
// The scraper fetches the yearly tournament listing and individual tournament
// pages and extracts tournament cards, infobox fields, participating teams,
// and bracket matches. Pages are cached on disk and requests are spaced by a
// minimum interval per the wiki's scraping policy.
package liquipedia
