// Package cli implements the command-line interface for cubecomb.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PlayWeird/cube-combinatorics/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubecomb",
	Short: "Rubik's Cube solver and state toolkit",
	Long: `cubecomb - a Rubik's Cube permutation toolkit.

Solve scrambled cubes layer by layer, validate arbitrary sticker
arrangements against the reachability invariants, generate scrambles,
and keep a history of past solves.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubecomb/cubecomb.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// initConfig loads the optional config file. Flags override config values.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	viper.AddConfigPath(filepath.Join(home, ".cubecomb"))
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("cubecomb")
	viper.AutomaticEnv()

	viper.SetDefault("scramble_length", 25)

	// Missing config file is fine; a broken one is not.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config: %s\n", viper.ConfigFileUsed())
	}
}

// getDBPath returns the database path from flag, config, or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return viper.GetString("db_path")
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
