package model

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// MaxStars is the number of stars in each rating row.
const MaxStars = 5

// Rating errors.
var (
	ErrUnknownCategory = errors.New("unknown rating category")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// RatingSet holds one value per category. Zero means unrated.
type RatingSet [NumCategories]int

// Get returns the rating for c, or 0 for an unknown category.
func (r *RatingSet) Get(c Category) int {
	if !c.Valid() {
		return 0
	}
	return r[c]
}

// Set stores value for c. Only 1..MaxStars is accepted.
func (r *RatingSet) Set(c Category, value int) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	if value < 1 || value > MaxStars {
		return fmt.Errorf("%w: %s=%d", ErrInvalidRating, c, value)
	}
	r[c] = value
	return nil
}

// Reset marks every category unrated.
func (r *RatingSet) Reset() {
	*r = RatingSet{}
}

// Missing returns the required categories that are still unrated.
func (r *RatingSet) Missing() []Category {
	return lo.Filter(RequiredCategories, func(c Category, _ int) bool {
		return r[c] <= 0
	})
}

// Complete reports whether every required category has been rated.
func (r *RatingSet) Complete() bool {
	return len(r.Missing()) == 0
}

// CostEffectiveness is the rounded mean of service attitude and pricing.
// Halves round up.
func (r *RatingSet) CostEffectiveness() int {
	return RoundHalfUpMean(r[CategoryServiceAttitude], r[CategoryPricing])
}

// RoundHalfUpMean returns round((a+b)/2) with .5 rounded up, for
// non-negative inputs.
func RoundHalfUpMean(a, b int) int {
	return (a + b + 1) / 2
}

// Stars returns the selection state of each star for a rating value.
// Stars at position <= value are selected.
func Stars(value int) [MaxStars]bool {
	var stars [MaxStars]bool
	for i := range stars {
		stars[i] = i+1 <= value
	}
	return stars
}
