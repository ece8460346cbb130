package cmd

import (
	"fmt"

	"github.com/devaun0506/blackstar/internal/clinical"
	"github.com/devaun0506/blackstar/internal/config"
	"github.com/devaun0506/blackstar/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blackstar",
	Short: "Clinical shift trainer progression engine",
	Long:  "Blackstar — progression tracking for the clinical shift trainer: difficulty and specialty unlocks, adaptive topic weighting, and career milestones.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BLACKSTAR_DB env var)")

	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BLACKSTAR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves configuration and opens the profile database.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return st, cfg, nil
}

// loadCatalog returns the specialty catalog, preferring a JSON override
// when BLACKSTAR_CATALOG is set.
func loadCatalog(cfg *config.Config) (*clinical.Catalog, error) {
	if cfg.CatalogPath == "" {
		return clinical.Default(), nil
	}
	catalog, err := clinical.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	return catalog, nil
}
