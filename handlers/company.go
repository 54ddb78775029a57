package handlers

import (
	"fmt"
	"net/http"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/services"
)

type CompanyHandler struct {
	Queries   *services.QueryService
	Companies repository.CompanyRepositoryInterface
	People    repository.PersonRepositoryInterface
	Refresh   RefreshFunc
}

func (ch *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r, "company_id")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}

	company, err := ch.Queries.Company(index)
	if err != nil {
		writeServiceError(w, fmt.Errorf("company %d: %w", index, err), "to retrieve company")
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (ch *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := ch.Companies.ListAll()
	if err != nil {
		writeServiceError(w, err, "to list companies")
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (ch *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CompanyInput
	if err := decodeBody(w, r, &req); err != nil {
		WriteAPIError(w, http.StatusNotAcceptable, CodeInvalidBody, err.Error())
		return
	}
	company, err := req.Build()
	if err != nil {
		writeServiceError(w, err, "to validate company")
		return
	}

	if err := ch.Companies.Create(company); err != nil {
		writeServiceError(w, err, "to create company")
		return
	}
	refreshAfterWrite(ch.Refresh)
	writeJSON(w, http.StatusCreated, company)
}

// ListEmployees serves the living employees of a company.
func (ch *CompanyHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r, "company_id")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}

	roster, err := ch.Queries.Roster(index)
	if err != nil {
		writeServiceError(w, fmt.Errorf("company %d: %w", index, err), "to list employees")
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// CreateEmployee creates a person employed by the company in the path,
// whatever company_id the body carries.
func (ch *CompanyHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r, "company_id")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	company, err := ch.Companies.GetByIndex(index)
	if err != nil {
		writeServiceError(w, fmt.Errorf("company %d: %w", index, err), "to retrieve company")
		return
	}

	var req models.PersonInput
	if err := decodeBody(w, r, &req); err != nil {
		WriteAPIError(w, http.StatusNotAcceptable, CodeInvalidBody, err.Error())
		return
	}
	person, err := req.Build()
	if err != nil {
		writeServiceError(w, err, "to validate person")
		return
	}
	companyID := company.Index
	person.CompanyID = &companyID

	if err := ch.People.Create(person); err != nil {
		writeServiceError(w, err, "to create employee")
		return
	}
	refreshAfterWrite(ch.Refresh)
	writeJSON(w, http.StatusCreated, person)
}
