package repository

import (
	"github.com/camden-git/paranuarabackend/models"
)

// GormDirectory serves Directory reads straight from the database repositories.
// Every call observes the database as of that statement; it does not pin a snapshot.
type GormDirectory struct {
	People    PersonRepositoryInterface
	Companies CompanyRepositoryInterface
}

// NewGormDirectory creates a Directory over the given repositories
func NewGormDirectory(people PersonRepositoryInterface, companies CompanyRepositoryInterface) *GormDirectory {
	return &GormDirectory{People: people, Companies: companies}
}

func (d *GormDirectory) FindPersonByIndex(index int) (*models.Person, error) {
	return d.People.GetByIndex(index)
}

func (d *GormDirectory) FindCompanyByIndex(index int) (*models.Company, error) {
	return d.Companies.GetByIndex(index)
}

func (d *GormDirectory) FindPeopleByIndices(indices []int) ([]models.Person, error) {
	return d.People.FindByIndices(indices)
}

func (d *GormDirectory) FindPeopleByCompany(companyIndex int) ([]models.Person, error) {
	return d.People.ListByCompany(companyIndex)
}
