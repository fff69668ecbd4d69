package entity

type Category string

const (
	CategoryWok     Category = "Wok"
	CategoryPizza   Category = "Pizza"
	CategorySoup    Category = "Soup"
	CategoryDessert Category = "Dessert"
	CategoryDrink   Category = "Drink"
)

var Categories = []Category{CategoryWok, CategoryPizza, CategorySoup, CategoryDessert, CategoryDrink}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
