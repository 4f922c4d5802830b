package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"releasedeck/internal/catalog"
	"releasedeck/internal/logging"
	"releasedeck/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var catalogFlag string
	var categoryFlag string
	var jsonFlag bool
	var verboseFlag bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Rank catalog records against a free-text query",
		Long: `Search the release catalog and print records ordered by relevance.

Matching is typo tolerant and accent/punctuation insensitive: "beach" finds
"Bleach", "spider man" finds "Spider-Man", and "mha" finds "My Hero Academia"
via its acronym. An empty query lists the catalog in its stored order.

Examples:
  releasedeck search "attack on titan"
  releasedeck search bleach --category Anime
  releasedeck search frieren --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logLevel := cfg.Logging.Level
			if verboseFlag {
				logLevel = "debug"
			}
			logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
				Level:  logLevel,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			catalogPath := cfg.Catalog.Path
			if catalogFlag != "" {
				catalogPath = catalogFlag
			}
			records, err := catalog.LoadFile(catalogPath)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			engine := search.NewEngine(cfg.Search, logger)
			results := engine.Search(records, categoryFlag, query)

			if jsonFlag {
				return writeJSON(cmd, results)
			}
			writeRecords(cmd, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFlag, "catalog", "", "Catalog JSON file (overrides configuration)")
	cmd.Flags().StringVar(&categoryFlag, "category", catalog.CategoryAll, "Restrict results to one category")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show per-record scoring diagnostics")

	return cmd
}

func writeRecords(cmd *cobra.Command, records []catalog.Record) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching releases.")
		return
	}

	headers := []string{"Title", "Category", "Platform", "Release Date"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{record.Title, record.Category, record.Platform, record.ReleaseDate})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderRows(cmd.OutOrStdout(), headers, rows))
}
