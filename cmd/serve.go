package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/camden-git/paranuarabackend/config"
	"github.com/camden-git/paranuarabackend/database"
	"github.com/camden-git/paranuarabackend/handlers"
	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/workers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var flagSeed bool

func init() {
	serveCmd.Flags().BoolVar(&flagSeed, "seed", false, "Replace the database contents with PEOPLE_FILE and COMPANIES_FILE before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if flagSeed {
		log.Printf("Seeding database from %s and %s", cfg.CompaniesFile, cfg.PeopleFile)
		importer := workers.NewImporter(db, cfg.ImportQueueSize, cfg.NumImportWorkers)
		if _, err := importer.ImportFiles(cfg.CompaniesFile, cfg.PeopleFile, workers.ImportOptions{Replace: true}); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	people := repository.NewPersonRepository(db)
	companies := repository.NewCompanyRepository(db)
	opts := handlers.RouterOptions{
		People:         people,
		Companies:      companies,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}

	switch cfg.DirectoryMode {
	case config.DirectoryModeMemory:
		mem := &repository.MemoryDirectory{}
		if err := mem.ReloadFromDB(db); err != nil {
			return fmt.Errorf("failed to load directory into memory: %w", err)
		}
		opts.Directory = mem
		opts.Refresh = func() error { return mem.ReloadFromDB(db) }
		log.Printf("Serving queries from an in-memory snapshot")
	default:
		opts.Directory = repository.NewGormDirectory(people, companies)
		log.Printf("Serving queries straight from the database")
	}

	serverAddr := ":" + cfg.Port
	log.Printf("Using database: %s", cfg.DatabasePath)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handlers.NewRouter(opts),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return server.ListenAndServe()
}
