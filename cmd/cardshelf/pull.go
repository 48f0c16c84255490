package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewfx2/cardshelf/internal/cli"
	"github.com/andrewfx2/cardshelf/internal/common"
	"github.com/andrewfx2/cardshelf/internal/config"
	"github.com/andrewfx2/cardshelf/internal/model"
	"github.com/andrewfx2/cardshelf/internal/store"
)

func pullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <catalog>",
		Short: "Download a catalog and export it",
		Long: `Fetch every record of a configured catalog from the remote store and
write it out as JSON or CSV, for scripting or offline use.`,
		Args: cobra.ExactArgs(1),
		RunE: runPull,
	}

	cmd.Flags().StringP("format", "f", "json", "Output format (json, csv)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	_ = viper.BindPFlag("pull.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("pull.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runPull(cmd *cobra.Command, args []string) error {
	format := viper.GetString("pull.format")
	if format != "json" && format != "csv" {
		return fmt.Errorf("unsupported format %q (want json or csv)", format)
	}

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

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Fetching "+entry.Table),
		progressbar.OptionClearOnFinish(),
	)
	cfg.Store.OnPage = func(total int) {
		_ = bar.Set(total)
	}

	client, err := store.NewClient(cfg.Store)
	if err != nil {
		return err
	}

	cards, err := client.FetchAll(cmd.Context(), entry.Table)
	_ = bar.Finish()
	if err != nil {
		return common.NewUserError("failed to fetch catalog", err)
	}

	out := os.Stdout
	if path := viper.GetString("pull.output"); path != "" {
		path = config.ExpandPath(path)
		f, createErr := os.Create(path) //nolint:gosec // user-supplied output path
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if format == "csv" {
		err = writeCSV(out, cards)
	} else {
		err = writeJSON(out, cards)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, cli.FormatSuccess(fmt.Sprintf("Pulled %d cards from %s", len(cards), entry.Table)))
	return nil
}

func writeJSON(w io.Writer, cards []model.Card) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, cards []model.Card) error {
	cw := csv.NewWriter(w)
	header := []string{"set", "card", "player", "team_city", "team_name", "rookie", "auto", "mem", "serial", "sps", "odds", "points"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range cards {
		record := []string{
			c.SetName, c.CardNumber, c.Description,
			c.TeamCity, c.TeamName,
			c.Rookie, c.Auto, c.Mem,
			c.SerialNumbered, c.ShortPrints, c.Odds, c.PointValue,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
