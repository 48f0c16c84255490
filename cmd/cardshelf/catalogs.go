package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewfx2/cardshelf/internal/cli"
	"github.com/andrewfx2/cardshelf/internal/config"
)

func catalogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List configured catalogs",
		RunE:  runCatalogs,
	}
}

func runCatalogs(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ids := cfg.CatalogIDs()
	if len(ids) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No catalogs configured. Add a catalogs section to your config file."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Configured catalogs"))
	for _, id := range ids {
		entry := cfg.Catalogs[id]
		dim, _ := entry.Dimension()
		line := fmt.Sprintf("%s  table=%s  group=%s  page=%d",
			cli.LabelStyle.Render(id), entry.Table, dim, entry.PageSize)
		fmt.Println(line)
		if entry.Description != "" {
			fmt.Println("  " + cli.SubtleStyle.Render(entry.Description))
		}
	}
	return nil
}
