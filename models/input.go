package models

// PersonInput is the wire form of a person being created or imported.
// The required numeric fields are pointers so a missing key can be told
// apart from an explicit zero; they shadow the embedded Person's fields.
type PersonInput struct {
	Person
	Index *int `json:"index"`
	Age   *int `json:"age"`
}

// Build checks required fields, then validates and returns the person.
func (in *PersonInput) Build() (*Person, error) {
	var missing []FieldError
	if in.Index == nil {
		missing = append(missing, FieldError{Field: "index", Message: "is required"})
	}
	if in.Age == nil {
		missing = append(missing, FieldError{Field: "age", Message: "is required"})
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Entity: "person", Fields: missing}
	}

	person := in.Person
	person.ID = 0
	person.Index = *in.Index
	person.Age = *in.Age
	if err := ValidatePerson(&person); err != nil {
		return nil, err
	}
	return &person, nil
}

// CompanyInput is the wire form of a company being created or imported.
type CompanyInput struct {
	Index *int   `json:"index"`
	Name  string `json:"company"`
}

// Build checks required fields, then validates and returns the company.
func (in *CompanyInput) Build() (*Company, error) {
	if in.Index == nil {
		return nil, &ValidationError{Entity: "company", Fields: []FieldError{{Field: "index", Message: "is required"}}}
	}
	company := &Company{Index: *in.Index, Name: in.Name}
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}
	return company, nil
}
