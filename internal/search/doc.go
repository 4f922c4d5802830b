// Package search implements the relevance engine that orders release records
// against a free-text query.
//
// Scoring combines four signal groups. A tiered whole-phrase comparison of
// the normalized title awards the single strongest of exact, prefix, or
// substring. Token coverage awards each query token its best match against
// any title token, with Levenshtein distance providing typo tolerance, plus a
// bonus when every query token found a home. An acronym check lets "mha"
// reach "My Hero Academia". Finally platform, category, and description
// matches contribute small metadata weights that never outrank a title hit.
// All weights live in one Weights table so tuning is a one-place change.
//
// Ranking is a pure function of its inputs: nothing is cached between calls,
// records are never mutated, and the engine is safe for concurrent use.
package search
