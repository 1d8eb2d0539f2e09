package models

// Default menu loaded on first start, before the admin has saved anything.

var InitialCategories = []Category{
	{Category_id: "starters", Name: "Starters", Icon: "Utensils"},
	{Category_id: "mains", Name: "Mains", Icon: "Pizza"},
	{Category_id: "drinks", Name: "Drinks", Icon: "Coffee"},
	{Category_id: "dessert", Name: "Dessert", Icon: "IceCream"},
}

var InitialMenuItems = []MenuItem{
	{
		Menu_item_id: "1",
		Category_id:  "starters",
		Name:         "Truffle Arancini",
		Description:  "Crispy risotto balls infused with black truffle oil, served with garlic aioli.",
		Price:        12,
		Image:        "https://images.unsplash.com/photo-1541529086526-db283c563270?auto=format&fit=crop&w=800&q=80",
		Popular:      true,
		Ingredients:  []string{"Rice", "Truffle Oil", "Parmesan", "Breadcrumbs", "Garlic", "Egg"},
	},
	{
		Menu_item_id: "2",
		Category_id:  "starters",
		Name:         "Spicy Calamari",
		Description:  "Flash-fried squid tossed in chili flakes and parsley.",
		Price:        14,
		Image:        "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&w=800&q=80",
		Spicy:        true,
		Ingredients:  []string{"Squid", "Chili Flakes", "Flour", "Lemon", "Parsley"},
	},
	{
		Menu_item_id: "3",
		Category_id:  "mains",
		Name:         "Wagyu Beef Burger",
		Description:  "Premium Wagyu patty, brioche bun, aged cheddar, caramelized onions.",
		Price:        24,
		Image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80",
		Popular:      true,
		Ingredients:  []string{"Wagyu Beef", "Brioche Bun", "Cheddar", "Onion", "Lettuce", "Tomato"},
	},
	{
		Menu_item_id: "4",
		Category_id:  "mains",
		Name:         "Wild Mushroom Risotto",
		Description:  "Creamy arborio rice with porcini mushrooms and thyme.",
		Price:        21,
		Image:        "https://images.unsplash.com/photo-1476124369491-e7addf5db371?auto=format&fit=crop&w=800&q=80",
		Vegan:        true,
		Ingredients:  []string{"Arborio Rice", "Porcini Mushrooms", "Vegetable Stock", "Thyme", "White Wine"},
	},
	{
		Menu_item_id: "5",
		Category_id:  "mains",
		Name:         "Pan-Seared Salmon",
		Description:  "Atlantic salmon fillet with asparagus and lemon butter sauce.",
		Price:        26,
		Image:        "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?auto=format&fit=crop&w=800&q=80",
		Ingredients:  []string{"Salmon", "Asparagus", "Butter", "Lemon", "Dill"},
	},
	{
		Menu_item_id: "6",
		Category_id:  "drinks",
		Name:         "Artisan Espresso",
		Description:  "Single origin bean espresso.",
		Price:        4,
		Image:        "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?auto=format&fit=crop&w=800&q=80",
		Ingredients:  []string{"Coffee Beans", "Water"},
	},
	{
		Menu_item_id: "7",
		Category_id:  "drinks",
		Name:         "Craft IPA",
		Description:  "Locally brewed Indian Pale Ale with citrus notes.",
		Price:        8,
		Image:        "https://images.unsplash.com/photo-1566633806327-68e152aaf26d?auto=format&fit=crop&w=800&q=80",
		Ingredients:  []string{"Hops", "Malt", "Yeast", "Water"},
	},
	{
		Menu_item_id: "8",
		Category_id:  "dessert",
		Name:         "Dark Chocolate Lava Cake",
		Description:  "Warm chocolate cake with a molten center, served with vanilla bean ice cream.",
		Price:        10,
		Image:        "https://images.unsplash.com/photo-1624353365286-3f8d62daad51?auto=format&fit=crop&w=800&q=80",
		Popular:      true,
		Ingredients:  []string{"Dark Chocolate", "Butter", "Sugar", "Eggs", "Flour", "Vanilla Ice Cream"},
	},
}
