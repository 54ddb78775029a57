package services

import (
	"encoding/json"

	"github.com/camden-git/paranuarabackend/models"
)

var (
	fruitSet     = newStringSet("apple", "banana", "cucumber", "orange", "strawberry")
	vegetableSet = newStringSet("beetroot", "carrot", "celery")
)

type stringSet map[string]struct{}

func newStringSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// FoodClassification is the outcome of ClassifyFoods. A nil category slice
// means the category was not requested; an empty one means nothing matched.
type FoodClassification struct {
	Name       string
	Age        int
	Favourite  []string
	Fruits     []string
	Vegetables []string
}

// MarshalJSON only emits the labels that were produced.
func (c FoodClassification) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"name": c.Name,
		"age":  c.Age,
	}
	if c.Favourite != nil {
		out["favourite"] = c.Favourite
	}
	if c.Fruits != nil {
		out["fruits"] = c.Fruits
	}
	if c.Vegetables != nil {
		out["vegetables"] = c.Vegetables
	}
	return json.Marshal(out)
}

// ClassifyFoods splits a person's favourite foods into fruits and vegetables.
//
// With both flags unset the raw list comes back as Favourite. A flag set to
// true adds that category; a flag set to false leaves it out. Matching is
// exact and case-sensitive, and duplicates collapse.
func ClassifyFoods(person *models.Person, wantFruits, wantVegetables models.OptionalBool) FoodClassification {
	result := FoodClassification{Name: person.Name, Age: person.Age}

	if !wantFruits.Set && !wantVegetables.Set {
		result.Favourite = append([]string{}, person.FavouriteFood...)
		return result
	}
	if wantFruits.IsTrue() {
		result.Fruits = intersect(person.FavouriteFood, fruitSet)
	}
	if wantVegetables.IsTrue() {
		result.Vegetables = intersect(person.FavouriteFood, vegetableSet)
	}
	return result
}

// intersect keeps first-occurrence order and never returns nil.
func intersect(foods []string, category stringSet) []string {
	out := []string{}
	seen := make(map[string]bool, len(foods))
	for _, f := range foods {
		if _, ok := category[f]; !ok || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
