package config

import "releasedeck/internal/search"

const (
	defaultCatalogPath = "~/.local/share/releasedeck/catalog.json"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults, including the
// canonical search weight table.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Path: defaultCatalogPath,
		},
		Search: search.DefaultWeights(),
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
