// Package config provides configuration loading for the application.
package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/andrewfx2/cardshelf/internal/catalog"
	"github.com/andrewfx2/cardshelf/internal/common"
	"github.com/andrewfx2/cardshelf/internal/store"
)

// DefaultPageSize is the all-cards-mode page size when a catalog does not
// set one.
const DefaultPageSize = 200

// Catalog is the immutable per-instance configuration for one browsable
// table: data-source identity, branding, pagination and default grouping.
type Catalog struct {
	ID          string
	Table       string
	Title       string
	Description string
	ImageURL    string
	GroupBy     string
	PageSize    int
}

// Dimension resolves the configured default grouping dimension.
func (c Catalog) Dimension() (catalog.Dimension, error) {
	if c.GroupBy == "" {
		return catalog.ByTeam, nil
	}
	return catalog.ParseDimension(c.GroupBy)
}

// Validate checks one catalog entry.
func (c Catalog) Validate() error {
	if c.Table == "" {
		return fmt.Errorf("%w: catalog %q: table is required", common.ErrInvalidConfig, c.ID)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("%w: catalog %q: page size must be positive", common.ErrInvalidConfig, c.ID)
	}
	if _, err := c.Dimension(); err != nil {
		return fmt.Errorf("%w: catalog %q: %v", common.ErrInvalidConfig, c.ID, err)
	}
	return nil
}

// Config is the resolved application configuration.
type Config struct {
	Catalogs map[string]Catalog
	Store    store.Config
}

// Load reads store and catalog settings from Viper. Precedence (config file
// vs CARDSHELF_ env vars vs flags) is handled by Viper itself.
func Load() (*Config, error) {
	cfg := &Config{
		Store: store.Config{
			URL: viper.GetString("store.url"),
			Key: viper.GetString("store.key"),
		},
		Catalogs: make(map[string]Catalog),
	}

	raw := viper.GetStringMap("catalogs")
	for id := range raw {
		sub := viper.Sub("catalogs." + id)
		if sub == nil {
			continue
		}
		entry := Catalog{
			ID:          id,
			Table:       sub.GetString("table"),
			Title:       sub.GetString("title"),
			Description: sub.GetString("description"),
			ImageURL:    sub.GetString("image_url"),
			GroupBy:     sub.GetString("group_by"),
			PageSize:    sub.GetInt("page_size"),
		}
		if entry.Title == "" {
			entry.Title = entry.Table
		}
		if entry.PageSize == 0 {
			entry.PageSize = DefaultPageSize
		}
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		cfg.Catalogs[id] = entry
	}

	return cfg, nil
}

// Validate checks the loaded configuration is usable for commands that hit
// the remote store.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if len(c.Catalogs) == 0 {
		return fmt.Errorf("%w: no catalogs configured", common.ErrMissingConfig)
	}
	return nil
}

// CatalogIDs returns the configured catalog ids in stable order.
func (c *Config) CatalogIDs() []string {
	ids := make([]string, 0, len(c.Catalogs))
	for id := range c.Catalogs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup finds a catalog by id.
func (c *Config) Lookup(id string) (Catalog, error) {
	entry, ok := c.Catalogs[id]
	if !ok {
		return Catalog{}, fmt.Errorf("%w %q (configured: %v)", common.ErrUnknownCatalog, id, c.CatalogIDs())
	}
	return entry, nil
}
