package valueobjects

import "fmt"

type Category string

const (
	CategoryBug            Category = "bug"
	CategoryFeatureRequest Category = "feature_request"
	CategoryBilling        Category = "billing"
	CategorySupport        Category = "support"
)

// Categories lists every category in classification precedence order.
var Categories = []Category{
	CategoryBug,
	CategoryFeatureRequest,
	CategoryBilling,
	CategorySupport,
}

var validCategories = map[Category]bool{
	CategoryBug:            true,
	CategoryFeatureRequest: true,
	CategoryBilling:        true,
	CategorySupport:        true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
