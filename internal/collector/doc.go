// Package collector wires the enabled data sources together behind a single
// API: tournament data from the wiki scraper, match telemetry from the REST
// client, and the cross-source enrichment that joins them.
package collector
