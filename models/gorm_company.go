package models

// Company represents an employer using GORM.
// It corresponds to the 'companies' table. Employees are not stored here;
// they are derived from people.company_id on every read.
type Company struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Index int    `gorm:"column:company_index;not null;uniqueIndex" json:"index" validate:"gte=0"`
	Name  string `gorm:"column:name;not null" json:"company" validate:"required"`
}

// TableName explicitly sets the table name for GORM.
func (Company) TableName() string {
	return "companies"
}
