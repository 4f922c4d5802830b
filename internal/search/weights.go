package search

// Weights is the central scoring table. Every signal's contribution is
// defined here rather than inline so tuning is a one-place change and tests
// can assert against the table instead of magic numbers.
//
// The three phrase tiers are mutually exclusive with only the strongest
// applying; every other signal is additive.
type Weights struct {
	// Whole-phrase comparison of normalized title against normalized query.
	PhraseExact     int `toml:"phrase_exact"`
	PhrasePrefix    int `toml:"phrase_prefix"`
	PhraseSubstring int `toml:"phrase_substring"`

	// Per-query-token match quality against the best title token.
	TokenExact       int `toml:"token_exact"`
	TokenPrefix      int `toml:"token_prefix"`
	TokenSubstring   int `toml:"token_substring"`
	TokenFuzzy       int `toml:"token_fuzzy"`
	FuzzyMaxDistance int `toml:"fuzzy_max_distance"`

	// AllTokens applies once when every query token matched some title token.
	AllTokens int `toml:"all_tokens"`

	// Acronym applies when the query equals the title's first-letter acronym.
	Acronym int `toml:"acronym"`

	// Metadata applies when the platform contains the query or the category
	// equals it; Description when the description contains the query.
	Metadata    int `toml:"metadata"`
	Description int `toml:"description"`
}

// DefaultWeights returns the canonical scoring table.
func DefaultWeights() Weights {
	return Weights{
		PhraseExact:      100,
		PhrasePrefix:     80,
		PhraseSubstring:  60,
		TokenExact:       10,
		TokenPrefix:      5,
		TokenSubstring:   2,
		TokenFuzzy:       4,
		FuzzyMaxDistance: 2,
		AllTokens:        40,
		Acronym:          30,
		Metadata:         20,
		Description:      5,
	}
}
