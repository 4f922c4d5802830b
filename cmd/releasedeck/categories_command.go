package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"releasedeck/internal/catalog"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var catalogFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories and their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			catalogPath := cfg.Catalog.Path
			if catalogFlag != "" {
				catalogPath = catalogFlag
			}
			records, err := catalog.LoadFile(catalogPath)
			if err != nil {
				return err
			}

			counts := catalog.Categories(records)
			if jsonFlag {
				return writeJSON(cmd, counts)
			}

			rows := make([][]string, 0, len(counts))
			for _, entry := range counts {
				rows = append(rows, []string{entry.Name, strconv.Itoa(entry.Count)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(cmd.OutOrStdout(), []string{"Category", "Records"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFlag, "catalog", "", "Catalog JSON file (overrides configuration)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit categories as JSON")

	return cmd
}
