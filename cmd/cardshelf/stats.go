package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewfx2/cardshelf/internal/catalog"
	"github.com/andrewfx2/cardshelf/internal/cli"
	"github.com/andrewfx2/cardshelf/internal/common"
	"github.com/andrewfx2/cardshelf/internal/config"
	"github.com/andrewfx2/cardshelf/internal/model"
	"github.com/andrewfx2/cardshelf/internal/store"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <catalog>",
		Short: "Show summary statistics for a catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}

	cmd.Flags().Bool("test-mode", false, "Use built-in sample data instead of the remote store")
	_ = viper.BindPFlag("stats.test_mode", cmd.Flags().Lookup("test-mode"))

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	var cards []model.Card
	title := args[0]

	if viper.GetBool("stats.test_mode") {
		cards = store.SampleCards()
		title = "Sample Checklist"
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		entry, err := cfg.Lookup(args[0])
		if err != nil {
			return err
		}
		title = entry.Title

		client, err := store.NewClient(cfg.Store)
		if err != nil {
			return err
		}
		cards, err = client.FetchAll(cmd.Context(), entry.Table)
		if err != nil {
			return common.NewUserError("failed to fetch catalog", err)
		}
	}

	if len(cards) == 0 {
		return fmt.Errorf("%w %q", common.ErrNoCards, args[0])
	}

	stats := catalog.Tally(cards)
	teams := catalog.TeamOptions(cards)
	sets := catalog.SetOptions(cards)

	fmt.Println(cli.TitleStyle.Render(cli.CardIcon + " " + title))
	printStat("Cards", stats.Total)
	printStat("Rookies", stats.Rookies)
	printStat("Autographs", stats.Autos)
	printStat("Memorabilia", stats.Mem)
	printStat("Serial #'d", stats.Serialed)
	printStat("Teams", len(teams))
	printStat("Sets", len(sets))
	return nil
}

func printStat(label string, value int) {
	fmt.Printf("%s %d\n", cli.LabelStyle.Render(label), value)
}
