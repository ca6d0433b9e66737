package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Rating is the reviewer's self-assessed recall for one review.
// Ratings are ordered: Again < Hard < Good < Easy.
type Rating int

const (
	RatingAgain Rating = iota + 1
	RatingHard
	RatingGood
	RatingEasy
)

var ratingNames = [...]string{RatingAgain: "again", RatingHard: "hard", RatingGood: "good", RatingEasy: "easy"}

// ErrInvalidRating is returned when decoding a rating outside the four known values.
var ErrInvalidRating = errors.New("invalid rating")

// AllRatings lists the ratings in ascending order.
func AllRatings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// ParseRating converts "again", "hard", "good" or "easy" into a Rating.
func ParseRating(s string) (Rating, error) {
	for _, r := range AllRatings() {
		if ratingNames[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
}

func (r Rating) IsValid() bool {
	return r >= RatingAgain && r <= RatingEasy
}

func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// Quality maps the rating onto the SM-2 quality scale. Values 1 and 2 are
// never produced. Calling Quality on an invalid rating panics.
func (r Rating) Quality() int {
	switch r {
	case RatingAgain:
		return 0
	case RatingHard:
		return 3
	case RatingGood:
		return 4
	case RatingEasy:
		return 5
	}
	panic(fmt.Sprintf("models: quality requested for invalid rating %d", int(r)))
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}
	return r.UnmarshalText([]byte(s))
}
