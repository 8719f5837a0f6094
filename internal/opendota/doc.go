// Package opendota is a client for the OpenDota REST API, covering match
// telemetry, player and team profiles, the professional match feed, and the
// static hero list. Responses are decoded into the normalized types of the
// record package.
package opendota
