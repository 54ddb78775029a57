package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/camden-git/paranuarabackend/models"
)

// CompanyRepository handles database operations for Company entities
type CompanyRepository struct {
	DB *gorm.DB
}

// NewCompanyRepository creates a new instance of CompanyRepository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

// Create creates a new company record in the database
func (r *CompanyRepository) Create(company *models.Company) error {
	err := r.DB.Create(company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: company index %d", ErrDuplicate, company.Index)
		}
		return fmt.Errorf("failed to create company %s: %w", company.Name, err)
	}
	return nil
}

// CreateBatch inserts many companies at once
func (r *CompanyRepository) CreateBatch(companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}
	err := r.DB.CreateInBatches(companies, createBatchSize).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: companies batch", ErrDuplicate)
		}
		return fmt.Errorf("failed to create %d companies: %w", len(companies), err)
	}
	return nil
}

// GetByIndex retrieves a company by its business index
func (r *CompanyRepository) GetByIndex(index int) (*models.Company, error) {
	var company models.Company
	err := r.DB.Where("company_index = ?", index).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company by index %d: %w", index, err)
	}
	return &company, nil
}

// ListAll retrieves all companies, ordered by index
func (r *CompanyRepository) ListAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.DB.Order("company_index ASC").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}
