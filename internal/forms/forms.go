// Package forms validates the subscription and rating forms before anything
// is sent to the catalog API.
package forms

import (
	"errors"
	"regexp"
	"strings"

	"github.com/five82/yourenergy/internal/catalog"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation errors carry the message shown next to the form.
var (
	ErrInvalidEmail = errors.New("Invalid email format.")
	ErrNoRating     = errors.New("Choose rating 1..5.")
)

// Messages shown after a successful submission.
const (
	SubscribedMessage = "Subscription successful."
	RatedMessage      = "Thanks for your rating."
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Subscription is the newsletter form.
type Subscription struct {
	Email string
}

// Validate checks the form.
func (s Subscription) Validate() error {
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Rating is the exercise rating form.
type Rating struct {
	Stars   int
	Email   string
	Comment string
}

// Validate checks the email before the star selection, matching the order
// messages appear in the form.
func (r Rating) Validate() error {
	if !ValidEmail(r.Email) {
		return ErrInvalidEmail
	}
	if r.Stars < 1 || r.Stars > 5 {
		return ErrNoRating
	}
	return nil
}

// Request converts a validated form into the API body.
func (r Rating) Request() catalog.RatingRequest {
	return catalog.RatingRequest{
		Rating:  r.Stars,
		Email:   strings.TrimSpace(r.Email),
		Comment: strings.TrimSpace(r.Comment),
	}
}
