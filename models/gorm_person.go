package models

// FriendRef is a back-reference to another person by index.
// The referenced person is not guaranteed to exist.
type FriendRef struct {
	Index int `json:"index" validate:"gte=0"`
}

// Person represents an inhabitant of Paranuara using GORM.
// It corresponds to the 'people' table.
type Person struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Index     int    `gorm:"column:person_index;not null;uniqueIndex" json:"index" validate:"gte=0"`
	GUID      string `gorm:"column:guid" json:"guid,omitempty"`
	Name      string `gorm:"column:name" json:"name"`
	Age       int    `gorm:"column:age;not null" json:"age" validate:"gte=0"`
	Address   string `gorm:"column:address" json:"address"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Email     string `gorm:"column:email" json:"email" validate:"omitempty,paranuara_email"`
	EyeColor  string `gorm:"column:eye_color" json:"eyeColor"`
	Gender    string `gorm:"column:gender" json:"gender"`
	HasDied   bool   `gorm:"column:has_died;not null;default:false" json:"has_died"`
	CompanyID *int   `gorm:"column:company_id;index" json:"company_id"` // nullable, references Company.Index

	FavouriteFood []string    `gorm:"column:favourite_food;serializer:json" json:"favouriteFood"`
	Friends       []FriendRef `gorm:"column:friends;serializer:json" json:"friends" validate:"dive"`

	// descriptive fields carried through from the source data set
	About      string   `gorm:"column:about" json:"about,omitempty"`
	Balance    string   `gorm:"column:balance" json:"balance,omitempty"`
	Picture    string   `gorm:"column:picture" json:"picture,omitempty"`
	Greeting   string   `gorm:"column:greeting" json:"greeting,omitempty"`
	Registered string   `gorm:"column:registered" json:"registered,omitempty"`
	Tags       []string `gorm:"column:tags;serializer:json" json:"tags,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// WorksFor reports whether the person's employer reference matches companyIndex.
func (p Person) WorksFor(companyIndex int) bool {
	return p.CompanyID != nil && *p.CompanyID == companyIndex
}
