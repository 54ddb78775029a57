package services

import (
	"errors"
	"fmt"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
)

// QueryService answers the relationship queries over a Directory.
// It never writes, logs or retries; every failure is returned to the caller.
type QueryService struct {
	dir repository.Directory
}

// NewQueryService creates a new query service
func NewQueryService(dir repository.Directory) *QueryService {
	return &QueryService{dir: dir}
}

// view pins one consistent snapshot per call when the directory supports it.
func (s *QueryService) view() repository.Directory {
	if snap, ok := s.dir.(repository.Snapshotter); ok {
		return snap.Snapshot()
	}
	return s.dir
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// Person looks up a single person. Returns repository.ErrNotFound when absent.
func (s *QueryService) Person(index int) (*models.Person, error) {
	return s.view().FindPersonByIndex(index)
}

// Company looks up a single company. Returns repository.ErrNotFound when absent.
func (s *QueryService) Company(index int) (*models.Company, error) {
	return s.view().FindCompanyByIndex(index)
}

// CommonFriends runs the common-friends query for two person indices.
func (s *QueryService) CommonFriends(subjectA, subjectB int, filter CommonFriendsFilter) (*CommonFriendsResult, error) {
	return CommonFriends(s.view(), subjectA, subjectB, filter)
}

// Foods resolves a person and classifies their favourite foods.
func (s *QueryService) Foods(index int, wantFruits, wantVegetables models.OptionalBool) (*FoodClassification, error) {
	person, err := s.view().FindPersonByIndex(index)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up person %d: %w", index, err)
	}
	result := ClassifyFoods(person, wantFruits, wantVegetables)
	return &result, nil
}

// Roster resolves a company and lists its living employees.
func (s *QueryService) Roster(companyIndex int) (*Roster, error) {
	dir := s.view()
	company, err := dir.FindCompanyByIndex(companyIndex)
	if err != nil {
		if isNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up company %d: %w", companyIndex, err)
	}
	employees, err := EmployeesOf(dir, company)
	if err != nil {
		return nil, err
	}
	return &Roster{Company: *company, Employees: employees}, nil
}
