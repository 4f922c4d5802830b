// Package config loads, normalizes, and validates releasedeck's TOML
// configuration.
//
// Load resolves the file path (explicit flag, then ~/.config/releasedeck/
// config.toml, then ./releasedeck.toml), merges the file over Default(),
// fills omitted values, and rejects inconsistent settings. The [search]
// section exposes the full ranking weight table so relevance tuning never
// requires a rebuild.
package config
