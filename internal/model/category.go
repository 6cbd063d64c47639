package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Category identifies one of the rating dimensions on the evaluation form.
type Category int

const (
	// CategoryWorkQuality rates the quality of the finished work.
	CategoryWorkQuality Category = iota
	// CategoryFinishing rates finishing work. Submitted as "timeliness".
	CategoryFinishing
	// CategoryTimeManagement is collected but not required or submitted.
	CategoryTimeManagement
	// CategoryCommunication rates responsiveness and clarity.
	CategoryCommunication
	// CategoryServiceAttitude feeds the cost-effectiveness score.
	CategoryServiceAttitude
	// CategoryPricing feeds the cost-effectiveness score.
	CategoryPricing
	// CategoryOverallSatisfaction is the overall rating.
	CategoryOverallSatisfaction

	// NumCategories is the number of rating categories.
	NumCategories = int(CategoryOverallSatisfaction) + 1
)

var categoryKeys = [NumCategories]string{
	CategoryWorkQuality:         "workQuality",
	CategoryFinishing:           "finishing",
	CategoryTimeManagement:      "timeManagement",
	CategoryCommunication:       "communication",
	CategoryServiceAttitude:     "serviceAttitude",
	CategoryPricing:             "pricing",
	CategoryOverallSatisfaction: "overallSatisfaction",
}

var categoryLabels = [NumCategories]string{
	CategoryWorkQuality:         "작업 품질",
	CategoryFinishing:           "마감 품질",
	CategoryTimeManagement:      "일정 관리",
	CategoryCommunication:       "의사소통",
	CategoryServiceAttitude:     "서비스 태도",
	CategoryPricing:             "가격",
	CategoryOverallSatisfaction: "전반적 만족도",
}

// RequiredCategories must all be rated before an evaluation can be submitted.
// Time management is intentionally absent.
var RequiredCategories = []Category{
	CategoryWorkQuality,
	CategoryFinishing,
	CategoryCommunication,
	CategoryServiceAttitude,
	CategoryPricing,
	CategoryOverallSatisfaction,
}

// AllCategories returns every category in form order.
func AllCategories() []Category {
	return lo.Map(categoryKeys[:], func(_ string, i int) Category {
		return Category(i)
	})
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

// String returns the category key, e.g. "workQuality".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryKeys[c]
}

// Label returns the display label shown next to the star row.
func (c Category) Label() string {
	if !c.Valid() {
		return c.String()
	}
	return categoryLabels[c]
}

// Required reports whether the category must be rated before submission.
func (c Category) Required() bool {
	return lo.Contains(RequiredCategories, c)
}

// ParseCategory converts a category key into a Category.
func ParseCategory(key string) (Category, error) {
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}
