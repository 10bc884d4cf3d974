package recipe

import "github.com/hammamikhairi/pocketchef/internal/domain"

// builtin returns the catalog shipped with the binary, in display order.
func builtin() []*domain.Recipe {
	return []*domain.Recipe{
		quickVeggiePasta(),
		proteinRiceBowl(),
		eggBhurji(),
		masalaDosa(),
		butterChicken(),
		chanaMasala(),
	}
}

func quickVeggiePasta() *domain.Recipe {
	return &domain.Recipe{
		ID:             "quick-veggie-pasta",
		Title:          "Quick Veggie Pasta",
		Description:    "A delicious and nutritious pasta dish with fresh vegetables, perfect for hostel cooking.",
		Image:          "recipe-pasta.jpg",
		CookTime:       15,
		Servings:       2,
		CostPerServing: 35,
		Difficulty:     domain.DifficultyEasy,
		Tags:           []string{"Vegetarian", "Quick", "Budget-Friendly"},
		Ingredients: []string{
			"200g pasta",
			"1 onion, diced",
			"2 tomatoes, chopped",
			"1 bell pepper, sliced",
			"2 cloves garlic, minced",
			"2 tbsp olive oil",
			"Salt and pepper to taste",
			"Fresh herbs (basil or parsley)",
		},
		Instructions: []string{
			"Boil water in a large pot and cook pasta according to package instructions.",
			"Heat olive oil in a pan and sauté onions until translucent.",
			"Add garlic and cook for 1 minute until fragrant.",
			"Add bell peppers and tomatoes, cook for 5-7 minutes.",
			"Drain pasta and add to the vegetable mixture.",
			"Season with salt, pepper, and fresh herbs.",
			"Serve hot and enjoy your quick meal!",
		},
		Nutrition: domain.Nutrition{Calories: 320, Protein: 12, Carbs: 58, Fat: 8},
	}
}

func proteinRiceBowl() *domain.Recipe {
	return &domain.Recipe{
		ID:             "protein-rice-bowl",
		Title:          "Protein Rice Bowl",
		Description:    "A balanced meal with rice, lentils, and vegetables - perfect for students on a budget.",
		Image:          "ingredients-collection.jpg",
		CookTime:       25,
		Servings:       3,
		CostPerServing: 28,
		Difficulty:     domain.DifficultyEasy,
		Tags:           []string{"High-Protein", "Vegetarian", "Filling"},
		Ingredients: []string{
			"1 cup basmati rice",
			"1/2 cup yellow lentils (moong dal)",
			"1 onion, chopped",
			"1 carrot, diced",
			"1 tsp turmeric",
			"1 tsp cumin seeds",
			"2 tbsp ghee or oil",
			"Salt to taste",
		},
		Instructions: []string{
			"Wash and soak rice and lentils for 15 minutes.",
			"Heat ghee in a pressure cooker and add cumin seeds.",
			"Add onions and sauté until golden brown.",
			"Add carrots, turmeric, and salt.",
			"Add rice, lentils, and 3 cups water.",
			"Pressure cook for 3 whistles.",
			"Let it cool, then serve with pickle or yogurt.",
		},
		Nutrition: domain.Nutrition{Calories: 285, Protein: 18, Carbs: 52, Fat: 6},
	}
}

func eggBhurji() *domain.Recipe {
	return &domain.Recipe{
		ID:             "egg-bhurji",
		Title:          "Egg Bhurji",
		Description:    "Spiced scrambled eggs with onion and tomato. Ten minutes on a single burner.",
		Image:          "egg-bhurji.jpg",
		CookTime:       10,
		Servings:       1,
		CostPerServing: 30,
		Difficulty:     domain.DifficultyEasy,
		Tags:           []string{"Non-Vegetarian", "High-Protein", "Quick", "Breakfast", "One-Pan"},
		Ingredients: []string{
			"3 eggs",
			"1 small onion, finely chopped",
			"1 tomato, chopped",
			"1 green chilli, slit",
			"1/4 tsp turmeric",
			"1/2 tsp red chilli powder",
			"1 tbsp oil",
			"Salt to taste",
			"Coriander leaves",
		},
		Instructions: []string{
			"Heat oil in a pan and add the onion and green chilli.",
			"Cook until the onion softens, then add the tomato.",
			"Stir in turmeric, chilli powder and salt.",
			"Crack in the eggs and scramble on medium heat until just set.",
			"Finish with coriander and serve with bread or roti.",
		},
		Nutrition: domain.Nutrition{Calories: 310, Protein: 20, Carbs: 9, Fat: 21},
	}
}

func masalaDosa() *domain.Recipe {
	return &domain.Recipe{
		ID:             "masala-dosa",
		Title:          "Masala Dosa",
		Description:    "Crisp fermented rice crepe folded around a spiced potato filling.",
		Image:          "masala-dosa.jpg",
		CookTime:       40,
		Servings:       4,
		CostPerServing: 45,
		Difficulty:     domain.DifficultyHard,
		Tags:           []string{"Vegan", "South-Indian", "Breakfast"},
		Ingredients: []string{
			"2 cups ready dosa batter",
			"3 potatoes, boiled and mashed",
			"1 onion, sliced",
			"1 tsp mustard seeds",
			"8 curry leaves",
			"1/2 tsp turmeric",
			"2 tbsp oil",
			"Salt to taste",
		},
		Instructions: []string{
			"Heat oil, splutter mustard seeds and add curry leaves.",
			"Add onion and cook until soft, then stir in turmeric.",
			"Add the mashed potato and salt; mix and keep warm.",
			"Heat a flat tawa and spread a ladle of batter thinly in circles.",
			"Drizzle oil around the edge and cook until golden and crisp.",
			"Spoon filling in the centre, fold and serve with chutney.",
		},
		Nutrition: domain.Nutrition{Calories: 350, Protein: 8, Carbs: 62, Fat: 9},
	}
}

func butterChicken() *domain.Recipe {
	return &domain.Recipe{
		ID:             "butter-chicken",
		Title:          "Butter Chicken",
		Description:    "Tender chicken in a rich tomato and butter gravy. A weekend treat worth the effort.",
		Image:          "butter-chicken.jpg",
		CookTime:       45,
		Servings:       4,
		CostPerServing: 120,
		Difficulty:     domain.DifficultyMedium,
		Tags:           []string{"Non-Vegetarian", "High-Protein", "Comfort"},
		Ingredients: []string{
			"500g boneless chicken",
			"1/2 cup yogurt",
			"1 tbsp ginger-garlic paste",
			"3 tomatoes, pureed",
			"3 tbsp butter",
			"1/4 cup cream",
			"1 tsp garam masala",
			"1 tsp kasuri methi",
			"Salt to taste",
		},
		Instructions: []string{
			"Marinate chicken in yogurt, ginger-garlic paste and salt for 20 minutes.",
			"Sear the chicken in a hot pan until browned; set aside.",
			"Melt butter and cook the tomato puree until it thickens.",
			"Add garam masala and return the chicken to the pan.",
			"Simmer for 10 minutes, then stir in cream and kasuri methi.",
			"Serve hot with naan or rice.",
		},
		Nutrition: domain.Nutrition{Calories: 490, Protein: 34, Carbs: 12, Fat: 33},
	}
}

func chanaMasala() *domain.Recipe {
	return &domain.Recipe{
		ID:             "chana-masala",
		Title:          "Chana Masala",
		Description:    "Chickpeas simmered in a tangy onion-tomato masala. Cheap, filling and keeps well.",
		Image:          "chana-masala.jpg",
		CookTime:       30,
		Servings:       4,
		CostPerServing: 25,
		Difficulty:     domain.DifficultyMedium,
		Tags:           []string{"Vegan", "High-Protein", "Budget-Friendly", "Meal-Prep"},
		Ingredients: []string{
			"2 cans chickpeas, drained",
			"2 onions, chopped",
			"3 tomatoes, chopped",
			"1 tbsp ginger-garlic paste",
			"2 tsp chana masala powder",
			"1 tsp cumin seeds",
			"2 tbsp oil",
			"Salt to taste",
		},
		Instructions: []string{
			"Heat oil and add cumin seeds until they crackle.",
			"Cook the onions until deep golden.",
			"Add ginger-garlic paste, then the tomatoes, and cook down to a thick masala.",
			"Stir in the masala powder and salt.",
			"Add chickpeas with a cup of water and simmer for 15 minutes.",
			"Mash a few chickpeas to thicken and serve.",
		},
		Nutrition: domain.Nutrition{Calories: 340, Protein: 15, Carbs: 48, Fat: 10},
	}
}
