package config

import "fmt"

var validLogFormats = map[string]bool{
	"console": true,
	"text":    true,
	"json":    true,
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate rejects configurations the engine cannot run with. Weight values
// must be non-negative; normalize has already replaced zeroes with defaults.
func (c *Config) Validate() error {
	weights := map[string]int{
		"search.phrase_exact":       c.Search.PhraseExact,
		"search.phrase_prefix":      c.Search.PhrasePrefix,
		"search.phrase_substring":   c.Search.PhraseSubstring,
		"search.token_exact":        c.Search.TokenExact,
		"search.token_prefix":       c.Search.TokenPrefix,
		"search.token_substring":    c.Search.TokenSubstring,
		"search.token_fuzzy":        c.Search.TokenFuzzy,
		"search.fuzzy_max_distance": c.Search.FuzzyMaxDistance,
		"search.all_tokens":         c.Search.AllTokens,
		"search.acronym":            c.Search.Acronym,
		"search.metadata":           c.Search.Metadata,
		"search.description":        c.Search.Description,
	}
	for key, value := range weights {
		if value < 0 {
			return fmt.Errorf("%s: must not be negative, got %d", key, value)
		}
	}

	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
