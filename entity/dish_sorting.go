package entity

// DishSorting selects the catalog list order. Rating sorts are computed from
// the ratings table at query time.
type DishSorting string

const (
	SortNameAsc    DishSorting = "NameAsc"
	SortNameDesc   DishSorting = "NameDesc"
	SortPriceAsc   DishSorting = "PriceAsc"
	SortPriceDesc  DishSorting = "PriceDesc"
	SortRatingAsc  DishSorting = "RatingAsc"
	SortRatingDesc DishSorting = "RatingDesc"
)

func (s DishSorting) Valid() bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc:
		return true
	}
	return false
}
