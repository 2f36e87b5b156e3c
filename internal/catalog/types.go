package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Filter is a grouping axis for exercises.
type Filter string

const (
	FilterMuscles   Filter = "Muscles"
	FilterBodyParts Filter = "Body parts"
	FilterEquipment Filter = "Equipment"
)

// Filters lists the filters in tab order.
var Filters = []Filter{FilterMuscles, FilterBodyParts, FilterEquipment}

// Param returns the /exercises query parameter that restricts results to a
// category of this filter.
func (f Filter) Param() string {
	switch f {
	case FilterBodyParts:
		return "bodypart"
	case FilterEquipment:
		return "equipment"
	default:
		return "muscles"
	}
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterMuscles, FilterBodyParts, FilterEquipment:
		return true
	}
	return false
}

// Category is one entry of /filters.
type Category struct {
	Name     string `json:"name"`
	Filter   Filter `json:"filter"`
	ImageURL string `json:"imgURL"`
}

// CategoryPage mirrors the /filters payload.
type CategoryPage struct {
	Results    []Category `json:"results"`
	Page       FlexInt    `json:"page"`
	TotalPages FlexInt    `json:"totalPages"`
}

// Exercise mirrors /exercises/{id} and the entries of /exercises.
type Exercise struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Rating         float64 `json:"rating"`
	BodyPart       string  `json:"bodyPart"`
	Target         string  `json:"target"`
	Equipment      string  `json:"equipment"`
	BurnedCalories FlexInt `json:"burnedCalories"`
	Time           FlexInt `json:"time"`
	Popularity     FlexInt `json:"popularity"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"gifUrl"`
}

// UnmarshalJSON accepts the "id" spelling used by some mirrors of the API.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	type plain Exercise
	var aux struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Exercise(aux.plain)
	if e.ID == "" {
		e.ID = aux.AltID
	}
	return nil
}

// ClampedRating returns the rating within [0,5].
func (e Exercise) ClampedRating() float64 {
	switch {
	case e.Rating < 0:
		return 0
	case e.Rating > 5:
		return 5
	default:
		return e.Rating
	}
}

// ExercisePage mirrors the /exercises payload.
type ExercisePage struct {
	Results    []Exercise `json:"results"`
	Page       FlexInt    `json:"page"`
	TotalPages FlexInt    `json:"totalPages"`
}

// ExerciseQuery configures /exercises requests.
type ExerciseQuery struct {
	Filter   Filter
	Category string
	Keyword  string
	Page     int
	Limit    int
}

// RatingRequest is the PATCH /exercises/{id}/rating body.
type RatingRequest struct {
	Rating  int    `json:"rating"`
	Email   string `json:"email,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Quote is the /quote payload.
type Quote struct {
	Text   string `json:"quote"`
	Author string `json:"author"`
}

// UnmarshalJSON accepts either "quote" or "text" for the quote body.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var aux struct {
		Quote  string `json:"quote"`
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	q.Text = strings.TrimSpace(aux.Quote)
	if q.Text == "" {
		q.Text = strings.TrimSpace(aux.Text)
	}
	q.Author = strings.TrimSpace(aux.Author)
	return nil
}

// FlexInt decodes integers that the API sometimes sends as strings.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*n = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", raw, err)
	}
	*n = FlexInt(f)
	return nil
}
