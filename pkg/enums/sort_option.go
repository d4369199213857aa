package enums

import "fmt"

// SortOption enumerates the catalog sort orders exposed to the storefront.
type SortOption string

const (
	SortFeatured      SortOption = "featured"
	SortPriceLowHigh  SortOption = "price-low-high"
	SortPriceHighLow  SortOption = "price-high-low"
	SortNewest        SortOption = "newest"
	SortBestSelling   SortOption = "best-selling"
	SortRatingHighLow SortOption = "rating"
	SortNameAZ        SortOption = "name-a-z"
	SortNameZA        SortOption = "name-z-a"
)

var validSortOptions = []SortOption{
	SortFeatured,
	SortPriceLowHigh,
	SortPriceHighLow,
	SortNewest,
	SortBestSelling,
	SortRatingHighLow,
	SortNameAZ,
	SortNameZA,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption.
func ParseSortOption(value string) (SortOption, error) {
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
