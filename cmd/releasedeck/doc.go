// Package main hosts the releasedeck CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the search engine for terminal use:
// ranking a release catalog against a query, listing catalog categories, and
// scaffolding configuration. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: ranking behavior belongs in internal/search, the
// record model in internal/catalog. This package only translates flags into
// calls and results into tables or JSON.
package main
