package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeSearch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCatalog() error {
	path := strings.TrimSpace(c.Catalog.Path)
	if path == "" {
		path = defaultCatalogPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	c.Catalog.Path = expanded
	return nil
}

// normalizeSearch fills omitted weight fields with their canonical defaults
// so a config file only needs to list the weights it changes.
func (c *Config) normalizeSearch() {
	defaults := Default().Search
	fill := func(value *int, fallback int) {
		if *value == 0 {
			*value = fallback
		}
	}
	fill(&c.Search.PhraseExact, defaults.PhraseExact)
	fill(&c.Search.PhrasePrefix, defaults.PhrasePrefix)
	fill(&c.Search.PhraseSubstring, defaults.PhraseSubstring)
	fill(&c.Search.TokenExact, defaults.TokenExact)
	fill(&c.Search.TokenPrefix, defaults.TokenPrefix)
	fill(&c.Search.TokenSubstring, defaults.TokenSubstring)
	fill(&c.Search.TokenFuzzy, defaults.TokenFuzzy)
	fill(&c.Search.FuzzyMaxDistance, defaults.FuzzyMaxDistance)
	fill(&c.Search.AllTokens, defaults.AllTokens)
	fill(&c.Search.Acronym, defaults.Acronym)
	fill(&c.Search.Metadata, defaults.Metadata)
	fill(&c.Search.Description, defaults.Description)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
