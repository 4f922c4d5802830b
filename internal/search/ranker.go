package search

import (
	"log/slog"
	"sort"
	"strings"

	"releasedeck/internal/catalog"
	"releasedeck/internal/logging"
	"releasedeck/internal/textutil"
)

// Ranker scores records against a query using a configurable weight table.
// It keeps no state between calls and is safe for concurrent use.
type Ranker struct {
	weights Weights
	logger  *slog.Logger
}

// NewRanker constructs a Ranker. A nil logger disables scoring diagnostics.
func NewRanker(weights Weights, logger *slog.Logger) *Ranker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Ranker{
		weights: weights,
		logger:  logging.NewComponentLogger(logger, "ranker"),
	}
}

// scoredRecord pairs a record with its relevance score for one ranking pass.
type scoredRecord struct {
	record catalog.Record
	score  int
}

// Rank scores every record against query, drops non-matches, and returns the
// survivors ordered by descending score with ties keeping input order. A
// query that normalizes to the empty string (blank or all punctuation) is an
// identity: the input comes back unchanged.
func (r *Ranker) Rank(records []catalog.Record, query string) []catalog.Record {
	normalized := textutil.Normalize(query)
	if normalized == "" {
		return records
	}
	queryTokens := strings.Split(normalized, " ")

	scored := make([]scoredRecord, 0, len(records))
	for _, record := range records {
		score := r.score(record, normalized, queryTokens)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredRecord{record: record, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	r.logger.Debug("ranking complete",
		logging.String("query", normalized),
		logging.Int("candidates", len(records)),
		logging.Int("matches", len(scored)))

	results := make([]catalog.Record, len(scored))
	for i, entry := range scored {
		results[i] = entry.record
	}
	return results
}

func (r *Ranker) score(record catalog.Record, query string, queryTokens []string) int {
	w := r.weights
	title := textutil.Normalize(record.Title)

	score := 0
	switch {
	case title == query:
		score += w.PhraseExact
	case strings.HasPrefix(title, query):
		score += w.PhrasePrefix
	case strings.Contains(title, query):
		score += w.PhraseSubstring
	}

	titleTokens := textutil.Tokenize(record.Title)
	tokenScore := 0
	tokenMatches := 0
	for _, queryToken := range queryTokens {
		if best := r.bestTokenWeight(queryToken, titleTokens); best > 0 {
			tokenScore += best
			tokenMatches++
		}
	}
	score += tokenScore
	if tokenMatches == len(queryTokens) {
		score += w.AllTokens
	}

	if acronym := textutil.Acronym(record.Title); len(acronym) > 1 && acronym == query {
		score += w.Acronym
	}

	// query is non-empty here, so Contains on an absent field is never true.
	platform := textutil.Normalize(record.Platform)
	category := textutil.Normalize(record.Category)
	if strings.Contains(platform, query) || category == query {
		score += w.Metadata
	}

	if strings.Contains(textutil.Normalize(record.Description), query) {
		score += w.Description
	}

	r.logger.Debug("calculating relevance score",
		logging.String("record_id", record.ID),
		logging.String("title", record.Title),
		logging.Int("token_matches", tokenMatches),
		logging.Int("token_score", tokenScore),
		logging.Int("score", score))

	return score
}

// bestTokenWeight returns the strongest weight queryToken earns against any
// single title token. Per pair the tiers are checked in precedence order
// (exact, prefix, substring, fuzzy); across title tokens the highest value
// wins, so a fuzzy hit on one token can outweigh a substring hit on another.
func (r *Ranker) bestTokenWeight(queryToken string, titleTokens []string) int {
	w := r.weights
	best := 0
	for _, titleToken := range titleTokens {
		if titleToken == queryToken {
			// An exact token match is the top tier; stop looking.
			return w.TokenExact
		}
		var weight int
		switch {
		case strings.HasPrefix(titleToken, queryToken):
			weight = w.TokenPrefix
		case strings.Contains(titleToken, queryToken):
			weight = w.TokenSubstring
		case Distance(queryToken, titleToken) <= w.FuzzyMaxDistance:
			weight = w.TokenFuzzy
		}
		if weight > best {
			best = weight
		}
	}
	return best
}
