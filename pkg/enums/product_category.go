package enums

import "fmt"

// ProductCategory groups catalog listings for storefront filtering.
type ProductCategory string

const (
	ProductCategoryClothing ProductCategory = "clothing"
	ProductCategoryToys     ProductCategory = "toys"
	ProductCategoryFeeding  ProductCategory = "feeding"
	ProductCategoryBath     ProductCategory = "bath"
	ProductCategoryDiapers  ProductCategory = "diapers"
	ProductCategoryGear     ProductCategory = "gear"
	ProductCategoryNursery  ProductCategory = "nursery"
)

var validProductCategories = []ProductCategory{
	ProductCategoryClothing,
	ProductCategoryToys,
	ProductCategoryFeeding,
	ProductCategoryBath,
	ProductCategoryDiapers,
	ProductCategoryGear,
	ProductCategoryNursery,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
