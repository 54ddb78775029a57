package workers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/utils"
)

// record kinds
const (
	KindPerson  = "person"
	KindCompany = "company"
)

// ErrRejectedRecords is returned when strict mode is on and any record failed validation.
var ErrRejectedRecords = errors.New("import rejected invalid records")

type ImportJob struct {
	Kind     string
	Position int
	Raw      json.RawMessage
}

type importResult struct {
	job     ImportJob
	person  *models.Person
	company *models.Company
	err     error
}

// RecordError is one record the importer refused, with its position in the source file.
type RecordError struct {
	Kind     string
	Position int
	Err      error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("%s #%d: %v", e.Kind, e.Position, e.Err)
}

// ImportReport summarises one import run.
type ImportReport struct {
	People    int
	Companies int
	Rejected  []RecordError
}

type ImportOptions struct {
	// Replace clears both tables inside the same transaction before writing.
	Replace bool
	// Strict aborts the whole import when any record is rejected.
	Strict  bool
}

// Importer decodes and validates records on a pool of workers, then writes
// every accepted record in a single transaction.
type Importer struct {
	DB         *gorm.DB
	QueueSize  int
	NumWorkers int
}

func NewImporter(db *gorm.DB, queueSize, numWorkers int) *Importer {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	return &Importer{DB: db, QueueSize: queueSize, NumWorkers: numWorkers}
}

// ImportFiles reads the companies and people JSON arrays and imports them.
func (im *Importer) ImportFiles(companiesPath, peoplePath string, opts ImportOptions) (*ImportReport, error) {
	companies, err := utils.ReadJSONRecords(companiesPath)
	if err != nil {
		return nil, err
	}
	people, err := utils.ReadJSONRecords(peoplePath)
	if err != nil {
		return nil, err
	}
	log.Printf("Importing %d companies from %s and %d people from %s", len(companies), companiesPath, len(people), peoplePath)
	return im.Import(companies, people, opts)
}

// Import validates the raw records and writes the accepted ones.
// Nothing is written when the transaction fails, e.g. on a duplicate index.
func (im *Importer) Import(companies, people []json.RawMessage, opts ImportOptions) (*ImportReport, error) {
	results := im.process(companies, people)

	report := &ImportReport{}
	var acceptedCompanies []models.Company
	var acceptedPeople []models.Person
	for _, res := range results {
		if res.err != nil {
			report.Rejected = append(report.Rejected, RecordError{Kind: res.job.Kind, Position: res.job.Position, Err: res.err})
			continue
		}
		switch res.job.Kind {
		case KindCompany:
			acceptedCompanies = append(acceptedCompanies, *res.company)
		case KindPerson:
			acceptedPeople = append(acceptedPeople, *res.person)
		}
	}
	for _, rej := range report.Rejected {
		log.Printf("Warning: Skipping %v", rej)
	}
	if opts.Strict && len(report.Rejected) > 0 {
		return report, fmt.Errorf("%w: %d record(s)", ErrRejectedRecords, len(report.Rejected))
	}

	err := im.DB.Transaction(func(tx *gorm.DB) error {
		if opts.Replace {
			if err := tx.Where("1 = 1").Delete(&models.Person{}).Error; err != nil {
				return fmt.Errorf("failed to clear people: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&models.Company{}).Error; err != nil {
				return fmt.Errorf("failed to clear companies: %w", err)
			}
		}
		if err := repository.NewCompanyRepository(tx).CreateBatch(acceptedCompanies); err != nil {
			return err
		}
		return repository.NewPersonRepository(tx).CreateBatch(acceptedPeople)
	})
	if err != nil {
		return report, fmt.Errorf("import failed, nothing was written: %w", err)
	}

	report.Companies = len(acceptedCompanies)
	report.People = len(acceptedPeople)
	log.Printf("Imported %d companies and %d people (%d rejected)", report.Companies, report.People, len(report.Rejected))
	return report, nil
}

// process fans the records out to the workers and returns the results in input order,
// companies first.
func (im *Importer) process(companies, people []json.RawMessage) []importResult {
	jobQueue := make(chan ImportJob, im.QueueSize)
	resultQueue := make(chan importResult, im.QueueSize)

	var wg sync.WaitGroup
	wg.Add(im.NumWorkers)
	for i := 0; i < im.NumWorkers; i++ {
		go im.worker(jobQueue, resultQueue, &wg)
	}

	go func() {
		for i, raw := range companies {
			jobQueue <- ImportJob{Kind: KindCompany, Position: i, Raw: raw}
		}
		for i, raw := range people {
			jobQueue <- ImportJob{Kind: KindPerson, Position: i, Raw: raw}
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(resultQueue)
	}()

	results := make([]importResult, 0, len(companies)+len(people))
	for res := range resultQueue {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i].job, results[j].job
		if a.Kind != b.Kind {
			return a.Kind == KindCompany
		}
		return a.Position < b.Position
	})
	return results
}

func (im *Importer) worker(jobs <-chan ImportJob, results chan<- importResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		results <- decodeRecord(job)
	}
}

func decodeRecord(job ImportJob) importResult {
	res := importResult{job: job}
	switch job.Kind {
	case KindCompany:
		var in models.CompanyInput
		if err := json.Unmarshal(job.Raw, &in); err != nil {
			res.err = fmt.Errorf("malformed company: %w", err)
			return res
		}
		res.company, res.err = in.Build()
	case KindPerson:
		var in models.PersonInput
		if err := json.Unmarshal(job.Raw, &in); err != nil {
			res.err = fmt.Errorf("malformed person: %w", err)
			return res
		}
		res.person, res.err = in.Build()
	default:
		res.err = fmt.Errorf("unknown record kind '%s'", job.Kind)
	}
	return res
}
