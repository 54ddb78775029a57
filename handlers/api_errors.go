package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/services"
)

// error codes carried in APIErrorDetail.Code
const (
	CodeNotFound        = "not_found"
	CodeSubjectNotFound = "subject_not_found"
	CodeInvalidParam    = "invalid_parameter"
	CodeInvalidBody     = "invalid_body"
	CodeValidation      = "validation_failed"
	CodeDuplicate       = "duplicate_index"
	CodeInternal        = "internal_error"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	writeAPIErrors(w, httpStatus, []APIErrorDetail{{Code: code, Detail: detail}})
}

func writeAPIErrors(w http.ResponseWriter, httpStatus int, details []APIErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	status := strconv.Itoa(httpStatus)
	for i := range details {
		details[i].Status = status
	}
	_ = json.NewEncoder(w).Encode(APIErrorResponse{Errors: details})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// writeServiceError maps an error from the query or write path onto an HTTP response.
// Anything unrecognised is logged and reported as a 500 without leaking details.
func writeServiceError(w http.ResponseWriter, err error, action string) {
	var (
		subjectErr    *services.SubjectNotFoundError
		filterErr     *services.InvalidFilterError
		validationErr *models.ValidationError
	)
	switch {
	case errors.As(err, &subjectErr):
		WriteAPIError(w, http.StatusNotFound, CodeSubjectNotFound, subjectErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.As(err, &filterErr):
		WriteAPIError(w, http.StatusNotAcceptable, CodeInvalidParam, filterErr.Error())
	case errors.As(err, &validationErr):
		details := make([]APIErrorDetail, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, APIErrorDetail{Code: CodeValidation, Detail: f.Field + " " + f.Message})
		}
		writeAPIErrors(w, http.StatusNotAcceptable, details)
	case errors.Is(err, repository.ErrDuplicate):
		// clients match on the capitalised word
		WriteAPIError(w, http.StatusConflict, CodeDuplicate, "Duplicate entry: "+err.Error())
	default:
		log.Printf("Error %s: %v", action, err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed "+action)
	}
}
