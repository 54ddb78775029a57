package database

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Predicates are built here and handed to GORM's Where so that GORM keeps
// ownership of column mapping and the JSON serializers on people rows.

// PeopleByIndicesFilter builds the WHERE clause for a bulk lookup of person indices.
// Duplicate indices are harmless: IN matches each row once.
func PeopleByIndicesFilter(indices []int) (string, []interface{}, error) {
	sqlStr, args, err := sq.Eq{"person_index": indices}.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build SQL for PeopleByIndices: %w", err)
	}
	return sqlStr, args, nil
}

// PeopleByCompanyFilter matches every person, dead or alive, whose company_id equals companyIndex.
func PeopleByCompanyFilter(companyIndex int) (string, []interface{}, error) {
	sqlStr, args, err := sq.Eq{"company_id": companyIndex}.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build SQL for PeopleByCompany: %w", err)
	}
	return sqlStr, args, nil
}
