// Package cli implements the command-line interface for dotafeed.
//
// The cli package provides the Cobra-based CLI with subcommands for
// tournament listings, tournament pages, match telemetry, player and team
// profiles, the pro match feed, heroes, and search, with text and JSON
// output. It coordinates the config, collector, liquipedia, and opendota
// packages.
package cli
