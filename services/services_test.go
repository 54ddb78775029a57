package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/paranuarabackend/fixtures"
	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
)

func sampleDirectory(t *testing.T) *repository.MemoryDirectory {
	t.Helper()
	dir, err := repository.NewMemoryDirectory(fixtures.People(), fixtures.Companies())
	require.NoError(t, err)
	return dir
}

func friends(indices ...int) []models.FriendRef {
	out := make([]models.FriendRef, 0, len(indices))
	for _, i := range indices {
		out = append(out, models.FriendRef{Index: i})
	}
	return out
}

func candidateIndices(r *CommonFriendsResult) []int {
	out := make([]int, 0, len(r.CommonFriends))
	for _, c := range r.CommonFriends {
		out = append(out, c.Index)
	}
	return out
}

// failingDirectory fails bulk lookups so error propagation can be checked.
type failingDirectory struct {
	repository.Directory
	err error
}

func (d failingDirectory) FindPeopleByIndices([]int) ([]models.Person, error) {
	return nil, d.err
}

func (d failingDirectory) FindPeopleByCompany(int) ([]models.Person, error) {
	return nil, d.err
}

func TestDirectFriendIndices(t *testing.T) {
	p := &models.Person{Index: 2, Friends: friends(0, 1, 2, 1)}
	set := DirectFriendIndices(p)
	assert.ElementsMatch(t, []int{0, 1, 2}, set.Slice())

	assert.Empty(t, DirectFriendIndices(&models.Person{}).Slice())
}

func TestIndexSet_Intersect(t *testing.T) {
	a := IndexSet{1: {}, 2: {}, 3: {}}
	b := IndexSet{3: {}, 4: {}}
	assert.ElementsMatch(t, []int{3}, a.Intersect(b).Slice())
	assert.ElementsMatch(t, []int{3}, b.Intersect(a).Slice())
	assert.Empty(t, a.Intersect(IndexSet{}).Slice())
}

func TestCommonFriends_Fixtures(t *testing.T) {
	dir := sampleDirectory(t)

	tests := []struct {
		name   string
		filter CommonFriendsFilter
		want   []int
	}{
		{name: "no filter", want: []int{0}},
		{name: "blue eyed and dead", filter: CommonFriendsFilter{EyeColor: models.SomeString("blue"), HasDied: models.SomeBool(true)}, want: []int{0}},
		{name: "brown eyed and alive", filter: CommonFriendsFilter{EyeColor: models.SomeString("brown"), HasDied: models.SomeBool(false)}, want: []int{}},
		{name: "eye color is case sensitive", filter: CommonFriendsFilter{EyeColor: models.SomeString("Blue")}, want: []int{}},
		{name: "only alive", filter: CommonFriendsFilter{HasDied: models.SomeBool(false)}, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CommonFriends(dir, 595, 2, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, candidateIndices(res))
			assert.Equal(t, 595, res.Persons[0].Index)
			assert.Equal(t, 2, res.Persons[1].Index)
			assert.Equal(t, friends(0), res.Persons[0].Friends)
			assert.Equal(t, friends(0, 1, 2), res.Persons[1].Friends)
		})
	}
}

func TestCommonFriends_CandidatesCarryTheirOwnFriends(t *testing.T) {
	res, err := CommonFriends(sampleDirectory(t), 595, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	require.Len(t, res.CommonFriends, 1)
	c := res.CommonFriends[0]
	assert.Equal(t, "Carmella Lambert", c.Name)
	assert.Equal(t, "blue", c.EyeColor)
	assert.True(t, c.HasDied)
	assert.Equal(t, friends(0, 1, 2), c.Friends)
}

func TestCommonFriends_SelfExclusion(t *testing.T) {
	people := []models.Person{
		{Index: 1, Name: "A", Friends: friends(1, 2, 3, 4)},
		{Index: 2, Name: "B", Friends: friends(1, 2, 3, 4)},
		{Index: 3, Name: "C"},
		{Index: 4, Name: "D"},
	}
	dir, err := repository.NewMemoryDirectory(people, nil)
	require.NoError(t, err)

	res, err := CommonFriends(dir, 1, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, candidateIndices(res))

	// same subject twice: only the shared index is removed
	res, err = CommonFriends(dir, 1, 1, CommonFriendsFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, candidateIndices(res))
}

func TestCommonFriends_SameSubjectOnFixtures(t *testing.T) {
	res, err := CommonFriends(sampleDirectory(t), 2, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	// friends {0,1,2} minus 2; person 1 does not exist and is dropped
	assert.Equal(t, []int{0}, candidateIndices(res))
}

func TestCommonFriends_EmptyIntersection(t *testing.T) {
	people := []models.Person{
		{Index: 1, Friends: friends(5)},
		{Index: 2, Friends: friends(6)},
		{Index: 5}, {Index: 6},
	}
	dir, err := repository.NewMemoryDirectory(people, nil)
	require.NoError(t, err)

	res, err := CommonFriends(dir, 1, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	assert.NotNil(t, res.CommonFriends)
	assert.Empty(t, res.CommonFriends)
}

func TestCommonFriends_MissingSubject(t *testing.T) {
	dir := sampleDirectory(t)

	_, err := CommonFriends(dir, 595, 9999, CommonFriendsFilter{})
	var snf *SubjectNotFoundError
	require.True(t, errors.As(err, &snf), "got %v", err)
	assert.Equal(t, SubjectB, snf.Role)
	assert.Equal(t, 9999, snf.Index)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = CommonFriends(dir, 42, 2, CommonFriendsFilter{})
	require.True(t, errors.As(err, &snf))
	assert.Equal(t, SubjectA, snf.Role)
	assert.Equal(t, 42, snf.Index)
}

func TestCommonFriends_FilterOnlyNarrows(t *testing.T) {
	people := []models.Person{
		{Index: 1, Friends: friends(10, 11, 12, 13)},
		{Index: 2, Friends: friends(10, 11, 12, 13)},
		{Index: 10, Name: "ten", EyeColor: "blue"},
		{Index: 11, Name: "eleven", EyeColor: "brown", HasDied: true},
		{Index: 12, Name: "twelve", EyeColor: "green"},
		{Index: 13, Name: "thirteen", EyeColor: "blue", HasDied: true},
	}
	dir, err := repository.NewMemoryDirectory(people, nil)
	require.NoError(t, err)

	all, err := CommonFriends(dir, 1, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	require.Len(t, all.CommonFriends, 4)

	filters := []CommonFriendsFilter{
		{EyeColor: models.SomeString("blue")},
		{HasDied: models.SomeBool(true)},
		{HasDied: models.SomeBool(false)},
		{EyeColor: models.SomeString("blue"), HasDied: models.SomeBool(true)},
		{EyeColor: models.SomeString("purple")},
	}
	for _, f := range filters {
		res, err := CommonFriends(dir, 1, 2, f)
		require.NoError(t, err)
		assert.Subset(t, candidateIndices(all), candidateIndices(res))
		for _, c := range res.CommonFriends {
			assert.True(t, f.EyeColor.Matches(c.EyeColor))
			assert.True(t, f.HasDied.Matches(c.HasDied))
		}
	}
}

func TestCommonFriends_NaturalNameOrder(t *testing.T) {
	people := []models.Person{
		{Index: 1, Friends: friends(10, 11, 12, 13)},
		{Index: 2, Friends: friends(10, 11, 12, 13)},
		{Index: 10, Name: "Guest 10"},
		{Index: 11, Name: "Guest 9"},
		{Index: 12, Name: "Alice"},
		{Index: 13, Name: "Alice"},
	}
	dir, err := repository.NewMemoryDirectory(people, nil)
	require.NoError(t, err)

	res, err := CommonFriends(dir, 1, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13, 11, 10}, candidateIndices(res))
}

func TestCommonFriends_PropagatesDirectoryErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	dir := failingDirectory{Directory: sampleDirectory(t), err: boom}

	_, err := CommonFriends(dir, 595, 2, CommonFriendsFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestClassifyFoods(t *testing.T) {
	p0 := &fixtures.People()[2]
	p2 := &fixtures.People()[0]
	require.Equal(t, 0, p0.Index)
	require.Equal(t, 2, p2.Index)

	t.Run("no flags returns the raw list", func(t *testing.T) {
		res := ClassifyFoods(p0, models.OptionalBool{}, models.OptionalBool{})
		assert.Equal(t, p0.FavouriteFood, res.Favourite)
		assert.Nil(t, res.Fruits)
		assert.Nil(t, res.Vegetables)
		assert.Equal(t, "Carmella Lambert", res.Name)
		assert.Equal(t, 61, res.Age)
	})

	t.Run("fruits of person 0", func(t *testing.T) {
		res := ClassifyFoods(p0, models.SomeBool(true), models.OptionalBool{})
		assert.ElementsMatch(t, []string{"orange", "apple", "banana", "strawberry"}, res.Fruits)
		assert.Nil(t, res.Favourite)
		assert.Nil(t, res.Vegetables)
	})

	t.Run("vegetables of person 2", func(t *testing.T) {
		res := ClassifyFoods(p2, models.OptionalBool{}, models.SomeBool(true))
		assert.Equal(t, []string{"beetroot"}, res.Vegetables)
		assert.Nil(t, res.Fruits)
	})

	t.Run("both categories", func(t *testing.T) {
		res := ClassifyFoods(p2, models.SomeBool(true), models.SomeBool(true))
		assert.Equal(t, []string{"orange", "banana", "strawberry"}, res.Fruits)
		assert.Equal(t, []string{"beetroot"}, res.Vegetables)
	})

	t.Run("explicit false differs from unset", func(t *testing.T) {
		res := ClassifyFoods(p2, models.SomeBool(false), models.SomeBool(false))
		assert.Nil(t, res.Favourite)
		assert.Nil(t, res.Fruits)
		assert.Nil(t, res.Vegetables)

		res = ClassifyFoods(p2, models.SomeBool(false), models.SomeBool(true))
		assert.Nil(t, res.Fruits)
		assert.Equal(t, []string{"beetroot"}, res.Vegetables)
	})

	t.Run("duplicates collapse and matching is exact", func(t *testing.T) {
		p := &models.Person{FavouriteFood: []string{"apple", "Apple", "apple", "celery", "celery ", "carrot"}}
		res := ClassifyFoods(p, models.SomeBool(true), models.SomeBool(true))
		assert.Equal(t, []string{"apple"}, res.Fruits)
		assert.Equal(t, []string{"celery", "carrot"}, res.Vegetables)
	})

	t.Run("requested but empty category", func(t *testing.T) {
		p := &models.Person{FavouriteFood: []string{"carrot"}}
		res := ClassifyFoods(p, models.SomeBool(true), models.OptionalBool{})
		assert.NotNil(t, res.Fruits)
		assert.Empty(t, res.Fruits)
	})
}

func TestFoodClassification_MarshalJSON(t *testing.T) {
	p := &models.Person{Name: "Carrot Fan", Age: 7, FavouriteFood: []string{"carrot"}}

	raw, err := ClassifyFoods(p, models.SomeBool(true), models.SomeBool(true)).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Carrot Fan","age":7,"fruits":[],"vegetables":["carrot"]}`, string(raw))

	raw, err = ClassifyFoods(p, models.OptionalBool{}, models.OptionalBool{}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Carrot Fan","age":7,"favourite":["carrot"]}`, string(raw))

	raw, err = ClassifyFoods(p, models.SomeBool(false), models.OptionalBool{}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Carrot Fan","age":7}`, string(raw))
}

func TestEmployeesOf(t *testing.T) {
	dir := sampleDirectory(t)

	staff, err := EmployeesOf(dir, &models.Company{Index: 59})
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Bonnie Bass", staff[0].Name)
	assert.Equal(t, "Dorthy Simmons", staff[1].Name)

	staff, err = EmployeesOf(dir, &models.Company{Index: 58})
	require.NoError(t, err)
	assert.Empty(t, staff)

	staff, err = EmployeesOf(dir, &models.Company{Index: 12345})
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestEmployeesOf_ReflectsCurrentDirectory(t *testing.T) {
	dir := sampleDirectory(t)
	company := &models.Company{Index: 59}

	staff, err := EmployeesOf(dir, company)
	require.NoError(t, err)
	require.Len(t, staff, 2)

	people := fixtures.People()
	people[1].HasDied = true
	require.NoError(t, dir.Replace(people, fixtures.Companies()))

	staff, err = EmployeesOf(dir, company)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	for _, p := range staff {
		assert.False(t, p.HasDied)
	}
}

func TestEmployeesOf_PropagatesDirectoryErrors(t *testing.T) {
	boom := errors.New("connection reset")
	dir := failingDirectory{Directory: sampleDirectory(t), err: boom}
	_, err := EmployeesOf(dir, &models.Company{Index: 59})
	assert.ErrorIs(t, err, boom)
}

func TestQueryService(t *testing.T) {
	svc := NewQueryService(sampleDirectory(t))

	p, err := svc.Person(0)
	require.NoError(t, err)
	assert.Equal(t, "Carmella Lambert", p.Name)

	_, err = svc.Person(9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	c, err := svc.Company(59)
	require.NoError(t, err)
	assert.Equal(t, "BRAINCLIP", c.Name)

	res, err := svc.CommonFriends(595, 2, CommonFriendsFilter{})
	require.NoError(t, err)
	assert.Len(t, res.CommonFriends, 1)

	foods, err := svc.Foods(0, models.SomeBool(true), models.OptionalBool{})
	require.NoError(t, err)
	assert.Len(t, foods.Fruits, 4)

	_, err = svc.Foods(9999, models.OptionalBool{}, models.OptionalBool{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	roster, err := svc.Roster(59)
	require.NoError(t, err)
	assert.Equal(t, "BRAINCLIP", roster.Company.Name)
	assert.Len(t, roster.Employees, 2)

	roster, err = svc.Roster(58)
	require.NoError(t, err)
	assert.Empty(t, roster.Employees)

	_, err = svc.Roster(77)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQueryService_WithoutSnapshots(t *testing.T) {
	// a Directory without snapshot support is used as-is
	dir := failingDirectory{Directory: sampleDirectory(t), err: errors.New("x")}
	svc := NewQueryService(dir)
	_, err := svc.Roster(59)
	assert.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "subject B: person 7 does not exist", (&SubjectNotFoundError{Role: SubjectB, Index: 7}).Error())
	assert.Equal(t, `invalid value "maybe" for has_died`, (&InvalidFilterError{Field: "has_died", Value: "maybe"}).Error())
}
