// Package config loads the YAML configuration that controls which data
// sources are enabled and how they are contacted (base URLs, rate limits,
// credentials, cache settings).
package config
