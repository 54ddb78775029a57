// Package fixtures holds the small sample population the tests run against.
//
// Person 2 (Bonnie Bass) lists herself as a friend; person 595 (Dorthy
// Simmons) only lists person 0. Person 0 (Carmella Lambert) is deceased and
// is the only employee of company 58.
package fixtures

import "github.com/camden-git/paranuarabackend/models"

func intPtr(v int) *int { return &v }

// People returns a fresh copy of the sample people on every call.
func People() []models.Person {
	return []models.Person{
		{
			GUID:          "49c04b8d-0a96-4319-b310-d6aa8269adca",
			Index:         2,
			Name:          "Bonnie Bass",
			Age:           54,
			Address:       "455 Dictum Court, Nadine, Mississippi, 6499",
			Phone:         "+1 (823) 428-3710",
			Email:         "bonniebass@earthmark.com",
			EyeColor:      "blue",
			Gender:        "female",
			CompanyID:     intPtr(59),
			FavouriteFood: []string{"orange", "beetroot", "banana", "strawberry"},
			Friends:       []models.FriendRef{{Index: 0}, {Index: 1}, {Index: 2}},
			Balance:       "$2,119.44",
			Tags:          []string{"quis", "sunt", "sit", "aliquip", "pariatur", "quis", "nulla"},
		},
		{
			GUID:          "beca7ed2-163e-47c5-9b62-5962fffb7d01",
			Index:         595,
			Name:          "Dorthy Simmons",
			Age:           49,
			Address:       "130 Fay Court, Mayfair, New York, 4184",
			Phone:         "+1 (972) 529-3994",
			Email:         "dorthysimmons@earthmark.com",
			EyeColor:      "brown",
			Gender:        "female",
			CompanyID:     intPtr(59),
			FavouriteFood: []string{"orange", "beetroot", "banana", "strawberry"},
			Friends:       []models.FriendRef{{Index: 0}},
			Balance:       "$3,795.56",
		},
		{
			GUID:          "5e71dc5d-61c0-4f3b-8b92-d77310c7fa43",
			Index:         0,
			Name:          "Carmella Lambert",
			Age:           61,
			Address:       "628 Sumner Place, Sperryville, American Samoa, 9819",
			Phone:         "+1 (910) 567-3630",
			Email:         "carmellalambert@earthmark.com",
			EyeColor:      "blue",
			Gender:        "female",
			HasDied:       true,
			CompanyID:     intPtr(58),
			FavouriteFood: []string{"orange", "apple", "banana", "strawberry"},
			Friends:       []models.FriendRef{{Index: 0}, {Index: 1}, {Index: 2}},
			Balance:       "$2,418.59",
		},
	}
}

// Companies returns a fresh copy of the sample companies on every call.
func Companies() []models.Company {
	return []models.Company{
		{Index: 0, Name: "NETBOOK"},
		{Index: 58, Name: "JAMNATION"},
		{Index: 59, Name: "BRAINCLIP"},
	}
}
