package repository

import (
	"errors"

	"github.com/camden-git/paranuarabackend/models"
)

var (
	// ErrNotFound is returned when a lookup by index matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write would break index uniqueness.
	ErrDuplicate = errors.New("duplicate index")
)

// Directory is the read-only view of people and companies the query services run against.
// Implementations never mutate what they return and assume index uniqueness.
type Directory interface {
	FindPersonByIndex(index int) (*models.Person, error)
	FindCompanyByIndex(index int) (*models.Company, error)
	// FindPeopleByIndices silently omits indices with no match; duplicates collapse.
	FindPeopleByIndices(indices []int) ([]models.Person, error)
	// FindPeopleByCompany returns everybody whose company_id matches, dead or alive.
	FindPeopleByCompany(companyIndex int) ([]models.Person, error)
}

// Snapshotter is implemented by directories that can pin a consistent view
// for the duration of one query.
type Snapshotter interface {
	Snapshot() Directory
}

// PersonRepositoryInterface defines the methods for person data operations
type PersonRepositoryInterface interface {
	Create(person *models.Person) error
	CreateBatch(people []models.Person) error
	GetByIndex(index int) (*models.Person, error)
	FindByIndices(indices []int) ([]models.Person, error)
	ListByCompany(companyIndex int) ([]models.Person, error)
	ListAll() ([]models.Person, error)
}

// CompanyRepositoryInterface defines the methods for company data operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	CreateBatch(companies []models.Company) error
	GetByIndex(index int) (*models.Company, error)
	ListAll() ([]models.Company, error)
}
