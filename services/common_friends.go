package services

import (
	"fmt"
	"sort"

	"github.com/facette/natsort"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
)

// CommonFriendsFilter narrows the candidates of a common-friends query.
// Unset fields impose no constraint.
type CommonFriendsFilter struct {
	EyeColor models.OptionalString
	HasDied  models.OptionalBool
}

// Matches reports whether person passes every set field of the filter.
func (f CommonFriendsFilter) Matches(person *models.Person) bool {
	return f.EyeColor.Matches(person.EyeColor) && f.HasDied.Matches(person.HasDied)
}

// PersonSummary is the subset of a person returned alongside query results.
type PersonSummary struct {
	Index     int                `json:"index"`
	Name      string             `json:"name"`
	Age       int                `json:"age"`
	Address   string             `json:"address"`
	Phone     string             `json:"phone"`
	Email     string             `json:"email"`
	CompanyID *int               `json:"company_id"`
	Friends   []models.FriendRef `json:"friends"`
}

// CommonFriend is a candidate that survived filtering.
type CommonFriend struct {
	PersonSummary
	EyeColor string `json:"eyeColor"`
	HasDied  bool   `json:"has_died"`
}

// CommonFriendsResult holds both subjects and their shared friends.
type CommonFriendsResult struct {
	Persons       [2]PersonSummary `json:"persons"`
	CommonFriends []CommonFriend   `json:"common_friends"`
}

// Summarize copies the display fields of a person.
func Summarize(p *models.Person) PersonSummary {
	friends := p.Friends
	if friends == nil {
		friends = []models.FriendRef{}
	}
	return PersonSummary{
		Index:     p.Index,
		Name:      p.Name,
		Age:       p.Age,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		CompanyID: p.CompanyID,
		Friends:   friends,
	}
}

// CommonFriends finds the people both subjects list as friends, excluding the
// subjects themselves, then applies filter. Both subjects must exist; a
// missing one fails the whole query with a *SubjectNotFoundError.
func CommonFriends(dir repository.Directory, subjectA, subjectB int, filter CommonFriendsFilter) (*CommonFriendsResult, error) {
	a, err := resolveSubject(dir, SubjectA, subjectA)
	if err != nil {
		return nil, err
	}
	b, err := resolveSubject(dir, SubjectB, subjectB)
	if err != nil {
		return nil, err
	}

	candidates := DirectFriendIndices(a).Intersect(DirectFriendIndices(b))
	delete(candidates, a.Index)
	delete(candidates, b.Index)

	people, err := dir.FindPeopleByIndices(candidates.Slice())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve common friends of %d and %d: %w", a.Index, b.Index, err)
	}

	matched := make([]models.Person, 0, len(people))
	for i := range people {
		if filter.Matches(&people[i]) {
			matched = append(matched, people[i])
		}
	}
	sortByName(matched)

	result := &CommonFriendsResult{
		Persons:       [2]PersonSummary{Summarize(a), Summarize(b)},
		CommonFriends: make([]CommonFriend, 0, len(matched)),
	}
	for i := range matched {
		result.CommonFriends = append(result.CommonFriends, CommonFriend{
			PersonSummary: Summarize(&matched[i]),
			EyeColor:      matched[i].EyeColor,
			HasDied:       matched[i].HasDied,
		})
	}
	return result, nil
}

func resolveSubject(dir repository.Directory, role SubjectRole, index int) (*models.Person, error) {
	p, err := dir.FindPersonByIndex(index)
	if err != nil {
		if isNotFound(err) {
			return nil, &SubjectNotFoundError{Role: role, Index: index}
		}
		return nil, fmt.Errorf("failed to look up subject %s (%d): %w", role, index, err)
	}
	return p, nil
}

// sortByName orders people by natural name order, then by index.
func sortByName(people []models.Person) {
	sort.SliceStable(people, func(i, j int) bool {
		if people[i].Name == people[j].Name {
			return people[i].Index < people[j].Index
		}
		return natsort.Compare(people[i].Name, people[j].Name)
	})
}
