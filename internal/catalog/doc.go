// Package catalog defines the release record model shared by the search
// engine and the CLI.
//
// Records are supplied by an upstream aggregator (TMDB, AniList, Trakt, or a
// local export of one) and are read-only to everything in this repository:
// the engine reorders and filters them but never mutates or copies their
// contents. Load enforces the one structural requirement, a non-empty title,
// at the boundary so the stages downstream stay total functions.
package catalog
