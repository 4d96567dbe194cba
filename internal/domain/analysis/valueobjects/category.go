package valueobjects

import "strings"

type Category string

const (
	CategoryBilling   Category = "billing"
	CategoryBug       Category = "bug"
	CategoryFeature   Category = "feature_request"
	CategoryAccount   Category = "account"
	CategoryTechnical Category = "technical"
	CategoryOther     Category = "other"
)

var validCategories = map[Category]bool{
	CategoryBilling:   true,
	CategoryBug:       true,
	CategoryFeature:   true,
	CategoryAccount:   true,
	CategoryTechnical: true,
	CategoryOther:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// NormalizeCategory maps arbitrary classifier output onto the category
// enum. Anything outside the enum becomes CategoryOther; this is a hard
// invariant of the data model, not a best-effort cleanup.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return CategoryOther
	}
	return c
}
