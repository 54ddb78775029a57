package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/camden-git/paranuarabackend/config"
	"github.com/camden-git/paranuarabackend/database"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:          "paranuara",
	Short:        "Relationship queries over the people and companies of Paranuara",
	SilenceUsage: true,
	Long: `paranuara serves common-friend, favourite-food and employee queries
over a SQLite database of people and companies.

Configuration comes from the environment, or from a .env file in the
working directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Printf("Info: No .env file found or error loading: %v", err)
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase opens and migrates the configured SQLite database.
func openDatabase() (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		log.Printf("Ensuring database directory exists: %s", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}
	db, err := database.InitGormDB(cfg.DatabasePath, database.ParseLogLevel(cfg.DBLogLevel))
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrateModels(db); err != nil {
		database.Close(db)
		return nil, err
	}
	return db, nil
}
