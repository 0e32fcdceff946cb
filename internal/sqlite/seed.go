// Starter recipe catalog written on first init.
package sqlite

import "github.com/prakashnalubolu/meal-prep/pkg/types"

// starterRecipes is the catalog seeded by SeedRecipes. Quantities use the
// raw labels recipe authors write; canonicalization happens at
// requirement resolution.
var starterRecipes = []types.Recipe{
	{
		Name: "Jeera Rice", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 5, CookTimeMin: 20,
		Ingredients: []types.Ingredient{
			{Item: "rice", Quantity: 200, Unit: "g"},
			{Item: "cumin seeds", Quantity: 5, Unit: "g"},
			{Item: "ghee", Quantity: 15, Unit: "ml"},
			{Item: "onion", Quantity: 1, Unit: "count"},
		},
		Steps: []string{
			"Rinse the rice until the water runs clear.",
			"Temper cumin seeds in ghee, add sliced onion.",
			"Add rice and water, cover, and cook until fluffy.",
		},
	},
	{
		Name: "Egg Bhurji", Cuisine: "indian", Diet: "eggtarian",
		PrepTimeMin: 5, CookTimeMin: 10,
		Ingredients: []types.Ingredient{
			{Item: "eggs", Quantity: 3, Unit: "count"},
			{Item: "onion", Quantity: 1, Unit: "count"},
			{Item: "tomatoes", Quantity: 1, Unit: "count"},
			{Item: "green chilli", Quantity: 2, Unit: "count"},
			{Item: "oil", Quantity: 15, Unit: "ml"},
		},
		Steps: []string{
			"Saute onion, tomato, and chili in oil.",
			"Add beaten eggs and scramble until just set.",
		},
	},
	{
		Name: "Chana Masala", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 10, CookTimeMin: 30,
		Ingredients: []types.Ingredient{
			{Item: "chickpeas", Quantity: 250, Unit: "g"},
			{Item: "onion", Quantity: 2, Unit: "count"},
			{Item: "tomatoes", Quantity: 2, Unit: "count"},
			{Item: "garam masala", Quantity: 10, Unit: "g"},
			{Item: "oil", Quantity: 30, Unit: "ml"},
		},
		Steps: []string{
			"Soak and boil the chickpeas until tender.",
			"Cook down onion and tomato with the spices.",
			"Simmer the chickpeas in the masala.",
		},
	},
	{
		Name: "Palak Paneer", Cuisine: "indian", Diet: "veg",
		PrepTimeMin: 15, CookTimeMin: 25,
		Ingredients: []types.Ingredient{
			{Item: "spinach", Quantity: 2, Unit: "count"},
			{Item: "paneer", Quantity: 200, Unit: "g"},
			{Item: "cream", Quantity: 50, Unit: "ml"},
			{Item: "garlic", Quantity: 4, Unit: "count"},
		},
		Steps: []string{
			"Blanch and puree the spinach.",
			"Simmer the puree with garlic, fold in paneer and cream.",
		},
	},
	{
		Name: "Pad Thai", Cuisine: "thai", Diet: "non-veg",
		PrepTimeMin: 20, CookTimeMin: 15,
		Ingredients: []types.Ingredient{
			{Item: "rice noodles", Quantity: 200, Unit: "g"},
			{Item: "chicken", Quantity: 150, Unit: "g"},
			{Item: "eggs", Quantity: 2, Unit: "count"},
			{Item: "fish sauce", Quantity: 30, Unit: "ml"},
			{Item: "peanuts", Quantity: 50, Unit: "g"},
			{Item: "spring onions", Quantity: 3, Unit: "count"},
		},
		Steps: []string{
			"Soak the noodles in warm water.",
			"Stir-fry chicken, push aside, scramble the eggs.",
			"Toss noodles with sauce, top with peanuts and spring onion.",
		},
	},
	{
		Name: "Thai Green Curry", Cuisine: "thai", Diet: "non-veg",
		PrepTimeMin: 15, CookTimeMin: 25,
		Ingredients: []types.Ingredient{
			{Item: "chicken", Quantity: 300, Unit: "g"},
			{Item: "coconut milk", Quantity: 400, Unit: "ml"},
			{Item: "green curry paste", Quantity: 50, Unit: "g"},
			{Item: "thai basil", Quantity: 1, Unit: "count"},
		},
		Steps: []string{
			"Fry the curry paste in a splash of coconut milk.",
			"Add chicken, then the rest of the coconut milk; simmer.",
			"Finish with thai basil.",
		},
	},
	{
		Name: "Margherita Pasta", Cuisine: "italian", Diet: "veg",
		PrepTimeMin: 10, CookTimeMin: 20,
		Ingredients: []types.Ingredient{
			{Item: "pasta", Quantity: 200, Unit: "g"},
			{Item: "tomatoes", Quantity: 3, Unit: "count"},
			{Item: "mozzarella", Quantity: 100, Unit: "g"},
			{Item: "olive oil", Quantity: 30, Unit: "ml"},
			{Item: "basil", Quantity: 1, Unit: "count"},
		},
		Steps: []string{
			"Cook the pasta until al dente.",
			"Make a quick tomato sauce, toss with pasta and mozzarella.",
		},
	},
	{
		Name: "Veg Fried Rice", Cuisine: "chinese", Diet: "veg",
		PrepTimeMin: 10, CookTimeMin: 10,
		Ingredients: []types.Ingredient{
			{Item: "cooked rice", Quantity: 300, Unit: "g"},
			{Item: "carrot", Quantity: 1, Unit: "count"},
			{Item: "peas", Quantity: 50, Unit: "g"},
			{Item: "soy sauce", Quantity: 20, Unit: "ml"},
			{Item: "spring onions", Quantity: 2, Unit: "count"},
		},
		Steps: []string{
			"Stir-fry the vegetables on high heat.",
			"Add rice and soy sauce; toss until everything is coated.",
		},
	},
}

// SeedRecipes writes the starter catalog through the given catalog
// accessor. Existing recipes with the same names are replaced.
func SeedRecipes(catalog types.Catalog) error {
	for i := range starterRecipes {
		r := starterRecipes[i]
		if err := catalog.Put(&r); err != nil {
			return err
		}
	}
	return nil
}
