package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewfx2/cardshelf/internal/config"
	"github.com/andrewfx2/cardshelf/internal/store"
	"github.com/andrewfx2/cardshelf/internal/tui"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [catalog...]",
		Short: "Browse catalogs interactively",
		Long: `Open the interactive browser. With no arguments every configured catalog
opens in its own tab; name catalogs to open a subset.`,
		RunE: runBrowse,
	}

	cmd.Flags().Bool("test-mode", false, "Browse built-in sample data instead of the remote store")
	_ = viper.BindPFlag("browse.test_mode", cmd.Flags().Lookup("test-mode"))

	return cmd
}

func runBrowse(_ *cobra.Command, args []string) error {
	if viper.GetBool("browse.test_mode") {
		app, err := tui.New(
			tui.WithFetcher(store.StaticFetcher(store.SampleCards())),
			tui.WithCatalogs([]config.Catalog{{
				ID:    "sample",
				Table: "sample_cards",
				Title: "Sample Checklist",
			}}),
			tui.WithTestMode(),
		)
		if err != nil {
			return err
		}
		return app.Run()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	catalogs, err := selectCatalogs(cfg, args)
	if err != nil {
		return err
	}

	client, err := store.NewClient(cfg.Store)
	if err != nil {
		return err
	}

	app, err := tui.New(
		tui.WithFetcher(client),
		tui.WithCatalogs(catalogs),
	)
	if err != nil {
		return err
	}
	return app.Run()
}

// selectCatalogs resolves the positional catalog ids, defaulting to every
// configured catalog in stable order.
func selectCatalogs(cfg *config.Config, ids []string) ([]config.Catalog, error) {
	if len(ids) == 0 {
		ids = cfg.CatalogIDs()
	}

	catalogs := make([]config.Catalog, 0, len(ids))
	for _, id := range ids {
		entry, err := cfg.Lookup(id)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, entry)
	}
	return catalogs, nil
}
