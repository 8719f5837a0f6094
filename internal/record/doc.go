// Package record defines the normalized records produced by the data
// sources: tournaments, brackets, and team rosters from the wiki, and match
// telemetry, player, and team profiles from the REST API.
//
// Records are built once by the fetching side and not mutated afterwards.
// Fields that are missing from the source carry their zero value.
package record
