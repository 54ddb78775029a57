package services

import (
	"fmt"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
)

// Roster is a company together with its living employees.
type Roster struct {
	Company   models.Company  `json:"company"`
	Employees []models.Person `json:"employees"`
}

// EmployeesOf returns the living people whose company_id matches company.
// It is recomputed from the directory on every call.
func EmployeesOf(dir repository.Directory, company *models.Company) ([]models.Person, error) {
	people, err := dir.FindPeopleByCompany(company.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees of company %d: %w", company.Index, err)
	}
	living := make([]models.Person, 0, len(people))
	for _, p := range people {
		if p.HasDied || !p.WorksFor(company.Index) {
			continue
		}
		living = append(living, p)
	}
	sortByName(living)
	return living, nil
}
