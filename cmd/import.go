package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camden-git/paranuarabackend/database"
	"github.com/camden-git/paranuarabackend/workers"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load people and companies from JSON files into the database",
	Long: `Read the companies and people JSON arrays, validate every record and
write the accepted ones in a single transaction.

Invalid records are reported and skipped unless --strict is given. A
duplicate index aborts the whole import.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

var (
	flagPeopleFile    string
	flagCompaniesFile string
	flagReplace       bool
	flagStrict        bool
)

func init() {
	importCmd.Flags().StringVar(&flagPeopleFile, "people", "", "people JSON file (default PEOPLE_FILE)")
	importCmd.Flags().StringVar(&flagCompaniesFile, "companies", "", "companies JSON file (default COMPANIES_FILE)")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "Clear existing people and companies first")
	importCmd.Flags().BoolVar(&flagStrict, "strict", false, "Abort when any record fails validation")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	peopleFile := flagPeopleFile
	if peopleFile == "" {
		peopleFile = cfg.PeopleFile
	}
	companiesFile := flagCompaniesFile
	if companiesFile == "" {
		companiesFile = cfg.CompaniesFile
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer database.Close(db)

	importer := workers.NewImporter(db, cfg.ImportQueueSize, cfg.NumImportWorkers)
	report, err := importer.ImportFiles(companiesFile, peopleFile, workers.ImportOptions{Replace: flagReplace, Strict: flagStrict})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d companies and %d people\n", report.Companies, report.People)
	for _, rej := range report.Rejected {
		fmt.Fprintf(out, "  skipped %v\n", rej)
	}
	return nil
}
