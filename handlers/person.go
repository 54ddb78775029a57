package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/repository"
	"github.com/camden-git/paranuarabackend/services"
)

// RefreshFunc is called after every successful write so a cached directory can reload.
type RefreshFunc func() error

type PersonHandler struct {
	Queries *services.QueryService
	People  repository.PersonRepositoryInterface
	Refresh RefreshFunc
}

func (ph *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r, "index")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}

	person, err := ph.Queries.Person(index)
	if err != nil {
		writeServiceError(w, fmt.Errorf("person %d: %w", index, err), "to retrieve person")
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// ListPeople serves the whole population in index order.
func (ph *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := ph.People.ListAll()
	if err != nil {
		writeServiceError(w, err, "to list people")
		return
	}
	if people == nil {
		people = []models.Person{}
	}
	writeJSON(w, http.StatusOK, people)
}

func (ph *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req models.PersonInput
	if err := decodeBody(w, r, &req); err != nil {
		WriteAPIError(w, http.StatusNotAcceptable, CodeInvalidBody, err.Error())
		return
	}
	person, err := req.Build()
	if err != nil {
		writeServiceError(w, err, "to validate person")
		return
	}

	if err := ph.People.Create(person); err != nil {
		writeServiceError(w, err, "to create person")
		return
	}
	refreshAfterWrite(ph.Refresh)
	writeJSON(w, http.StatusCreated, person)
}

// CommonFriends serves /people/{index}/common_friends/{friend_index}.
func (ph *PersonHandler) CommonFriends(w http.ResponseWriter, r *http.Request) {
	subjectA, err := indexParam(r, "index")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	subjectB, err := indexParam(r, "friend_index")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	hasDied, err := boolQuery(r, "has_died")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	filter := services.CommonFriendsFilter{
		EyeColor: stringQuery(r, "eyeColor"),
		HasDied:  hasDied,
	}

	result, err := ph.Queries.CommonFriends(subjectA, subjectB, filter)
	if err != nil {
		writeServiceError(w, err, "to compute common friends")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Foods serves /people/{index}/foods.
func (ph *PersonHandler) Foods(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r, "index")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	fruits, err := boolQuery(r, "fruits")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	vegetables, err := boolQuery(r, "vegetables")
	if err != nil {
		writeServiceError(w, err, "")
		return
	}

	result, err := ph.Queries.Foods(index, fruits, vegetables)
	if err != nil {
		writeServiceError(w, fmt.Errorf("person %d: %w", index, err), "to classify foods")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// refreshAfterWrite never fails the request: the row is already committed.
func refreshAfterWrite(refresh RefreshFunc) {
	if refresh == nil {
		return
	}
	if err := refresh(); err != nil {
		log.Printf("Warning: failed to refresh directory after write: %v", err)
	}
}
