package models

import "strings"

type MenuItem struct {
	Menu_item_id string   `json:"menu_item_id"`
	Category_id  string   `json:"category_id" validate:"required"`
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"min=0"`
	Image        string   `json:"image"`
	Popular      bool     `json:"popular"`
	Spicy        bool     `json:"spicy"`
	Vegan        bool     `json:"vegan"`
	Ingredients  []string `json:"ingredients"`
}

type Category struct {
	Category_id string `json:"category_id"`
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Icon        string `json:"icon"`
}

// CategorySlug derives the stable category id from its display name,
// e.g. "Hot Drinks" -> "hot-drinks".
func CategorySlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
