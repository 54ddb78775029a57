package models

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[\w.+\-]+@\w+\.[a-z]{2,3}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a Person or Company fails construction-time checks.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// report fields by their JSON names so errors line up with request bodies
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("paranuara_email", func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// ValidatePerson checks a person before it is written anywhere.
func ValidatePerson(p *Person) error {
	return validateEntity("person", p)
}

// ValidateCompany checks a company before it is written anywhere.
func ValidateCompany(c *Company) error {
	if err := validateEntity("company", c); err != nil {
		return err
	}
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Entity: "company", Fields: []FieldError{{Field: "company", Message: "must not be blank"}}}
	}
	return nil
}

func validateEntity(entity string, v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate %s: %w", entity, err)
	}
	out := &ValidationError{Entity: entity}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(fe), Message: describe(fe)})
	}
	return out
}

// fieldPath drops the leading struct name from the namespace, e.g. Person.friends[0].index -> friends[0].index.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be >= " + fe.Param()
	case "paranuara_email":
		return "not a valid email address"
	default:
		return "failed " + fe.Tag()
	}
}
