package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/camden-git/paranuarabackend/models"
	"github.com/camden-git/paranuarabackend/services"
)

// truthy and falsy spellings accepted for boolean query flags, compared case-insensitively
var (
	trueWords  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "on": true, "1": true}
	falseWords = map[string]bool{"false": true, "f": true, "no": true, "n": true, "off": true, "0": true}
)

// indexParam reads an integer URL parameter.
func indexParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &services.InvalidFilterError{Field: name, Value: raw}
	}
	return idx, nil
}

// ParseFlag converts a raw flag value. An empty value leaves the flag unset.
func ParseFlag(field, raw string) (models.OptionalBool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "":
		return models.OptionalBool{}, nil
	case trueWords[v]:
		return models.SomeBool(true), nil
	case falseWords[v]:
		return models.SomeBool(false), nil
	default:
		return models.OptionalBool{}, &services.InvalidFilterError{Field: field, Value: raw}
	}
}

func boolQuery(r *http.Request, name string) (models.OptionalBool, error) {
	return ParseFlag(name, r.URL.Query().Get(name))
}

// stringQuery treats only an absent parameter as unset; ?name= filters on "".
func stringQuery(r *http.Request, name string) models.OptionalString {
	vals, ok := r.URL.Query()[name]
	if !ok || len(vals) == 0 {
		return models.OptionalString{}
	}
	return models.SomeString(vals[0])
}
