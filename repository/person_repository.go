package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camden-git/paranuarabackend/database"
	"github.com/camden-git/paranuarabackend/models"
)

const createBatchSize = 200

// PersonRepository handles database operations for Person entities
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

func assignGUID(person *models.Person) {
	if person.GUID == "" {
		person.GUID = uuid.New().String()
	}
}

// Create creates a new person record in the database
func (r *PersonRepository) Create(person *models.Person) error {
	assignGUID(person)
	err := r.DB.Create(person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: person index %d", ErrDuplicate, person.Index)
		}
		return fmt.Errorf("failed to create person %d: %w", person.Index, err)
	}
	return nil
}

// CreateBatch inserts many people at once. Callers wanting all-or-nothing
// behaviour run it on a transaction handle.
func (r *PersonRepository) CreateBatch(people []models.Person) error {
	if len(people) == 0 {
		return nil
	}
	for i := range people {
		assignGUID(&people[i])
	}
	err := r.DB.CreateInBatches(people, createBatchSize).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: people batch", ErrDuplicate)
		}
		return fmt.Errorf("failed to create %d people: %w", len(people), err)
	}
	return nil
}

// GetByIndex retrieves a person by their business index
func (r *PersonRepository) GetByIndex(index int) (*models.Person, error) {
	var person models.Person
	err := r.DB.Where("person_index = ?", index).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get person by index %d: %w", index, err)
	}
	return &person, nil
}

// FindByIndices retrieves every person whose index is in indices. Unknown indices are skipped.
func (r *PersonRepository) FindByIndices(indices []int) ([]models.Person, error) {
	if len(indices) == 0 {
		return []models.Person{}, nil
	}
	where, args, err := database.PeopleByIndicesFilter(indices)
	if err != nil {
		return nil, err
	}
	var people []models.Person
	if err := r.DB.Where(where, args...).Order("person_index ASC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people by indices: %w", err)
	}
	return people, nil
}

// ListByCompany retrieves all people employed by companyIndex, including the deceased
func (r *PersonRepository) ListByCompany(companyIndex int) ([]models.Person, error) {
	where, args, err := database.PeopleByCompanyFilter(companyIndex)
	if err != nil {
		return nil, err
	}
	var people []models.Person
	if err := r.DB.Where(where, args...).Order("person_index ASC").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to list people for company %d: %w", companyIndex, err)
	}
	return people, nil
}

// ListAll retrieves all people, ordered by index
func (r *PersonRepository) ListAll() ([]models.Person, error) {
	var people []models.Person
	err := r.DB.Order("person_index ASC").Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}
