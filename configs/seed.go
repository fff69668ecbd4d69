package configs

import (
	"github.com/OmarZED/Delivery-System/entity"
)

// SeedDishes fills the catalog on first start. The API exposes no dish write
// endpoints, so without a seed a fresh database has nothing to serve.
func SeedDishes() error {
	db := DB()

	dishes := []entity.Dish{
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 9.5, Image: "https://cdn.example.com/dishes/margherita.jpg", Category: entity.CategoryPizza, Vegetarian: true},
		{Name: "Pepperoni", Description: "Pepperoni, mozzarella", Price: 11.0, Image: "https://cdn.example.com/dishes/pepperoni.jpg", Category: entity.CategoryPizza, Vegetarian: false},
		{Name: "Tom Yum", Description: "Spicy shrimp soup", Price: 8.0, Image: "https://cdn.example.com/dishes/tomyum.jpg", Category: entity.CategorySoup, Vegetarian: false},
		{Name: "Miso Soup", Description: "Tofu, wakame, scallions", Price: 5.5, Image: "https://cdn.example.com/dishes/miso.jpg", Category: entity.CategorySoup, Vegetarian: true},
		{Name: "Udon Wok", Description: "Udon noodles with vegetables", Price: 10.0, Image: "https://cdn.example.com/dishes/udon.jpg", Category: entity.CategoryWok, Vegetarian: true},
		{Name: "Beef Wok", Description: "Rice noodles with beef", Price: 12.5, Image: "https://cdn.example.com/dishes/beefwok.jpg", Category: entity.CategoryWok, Vegetarian: false},
		{Name: "Tiramisu", Description: "Mascarpone, espresso, cocoa", Price: 6.0, Image: "https://cdn.example.com/dishes/tiramisu.jpg", Category: entity.CategoryDessert, Vegetarian: true},
		{Name: "Cheesecake", Description: "Classic baked cheesecake", Price: 6.5, Image: "https://cdn.example.com/dishes/cheesecake.jpg", Category: entity.CategoryDessert, Vegetarian: true},
		{Name: "Green Tea", Description: "Hot jasmine green tea", Price: 2.5, Image: "https://cdn.example.com/dishes/greentea.jpg", Category: entity.CategoryDrink, Vegetarian: true},
		{Name: "Cola", Description: "Chilled, 0.5l", Price: 2.0, Image: "https://cdn.example.com/dishes/cola.jpg", Category: entity.CategoryDrink, Vegetarian: true},
	}

	for _, d := range dishes {
		if err := db.Where(entity.Dish{Name: d.Name}).Attrs(d).FirstOrCreate(&entity.Dish{}).Error; err != nil {
			return err
		}
	}
	return nil
}
