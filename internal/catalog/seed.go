package catalog

// Starter returns the built-in starter curriculum used when no module
// definition file is configured. Six units, thirty modules, authored
// acyclic — but nothing downstream relies on that.
func Starter() *Catalog {
	c, err := New(starterModules())
	if err != nil {
		// The starter set is compiled in; a bad entry is a programming error.
		panic("catalog: invalid starter curriculum: " + err.Error())
	}
	return c
}

func starterModules() []Module {
	return []Module{
		// Unit 1 — first words
		{ID: "greetings", Name: "Greetings & Introductions", Unit: 1},
		{ID: "alphabet", Name: "Alphabet & Pronunciation", Unit: 1},
		{ID: "numbers-1-20", Name: "Numbers 1–20", Unit: 1, Prerequisites: []string{"alphabet"}},
		{ID: "basic-phrases", Name: "Essential Phrases", Unit: 1, Prerequisites: []string{"greetings"}},
		{ID: "polite-forms", Name: "Please, Thanks & Sorry", Unit: 1, Prerequisites: []string{"basic-phrases"}},

		// Unit 2 — everyday vocabulary
		{ID: "family", Name: "Family Members", Unit: 2, Prerequisites: []string{"basic-phrases"}},
		{ID: "colors-shapes", Name: "Colors & Shapes", Unit: 2, Prerequisites: []string{"numbers-1-20"}},
		{ID: "food-drink", Name: "Food & Drink", Unit: 2, Prerequisites: []string{"basic-phrases"}},
		{ID: "days-months", Name: "Days & Months", Unit: 2, Prerequisites: []string{"numbers-1-20"}},
		{ID: "telling-time", Name: "Telling Time", Unit: 2, Prerequisites: []string{"numbers-1-20", "days-months"}},

		// Unit 3 — core grammar
		{ID: "articles-gender", Name: "Articles & Gender", Unit: 3, Prerequisites: []string{"family", "colors-shapes"}},
		{ID: "present-regular", Name: "Present Tense: Regular Verbs", Unit: 3, Prerequisites: []string{"polite-forms"}},
		{ID: "present-irregular", Name: "Present Tense: Irregular Verbs", Unit: 3, Prerequisites: []string{"present-regular"}},
		{ID: "plurals", Name: "Plural Forms", Unit: 3, Prerequisites: []string{"articles-gender"}},
		{ID: "negation", Name: "Negation", Unit: 3, Prerequisites: []string{"present-regular"}},

		// Unit 4 — getting around
		{ID: "directions", Name: "Asking for Directions", Unit: 4, Prerequisites: []string{"present-regular", "telling-time"}},
		{ID: "transport", Name: "Public Transport", Unit: 4, Prerequisites: []string{"directions"}},
		{ID: "shopping", Name: "Shopping & Prices", Unit: 4, Prerequisites: []string{"food-drink", "numbers-1-20"}},
		{ID: "restaurant", Name: "Ordering at a Restaurant", Unit: 4, Prerequisites: []string{"food-drink", "polite-forms"}},
		{ID: "hotel", Name: "At the Hotel", Unit: 4, Prerequisites: []string{"shopping"}},

		// Unit 5 — talking about the past
		{ID: "past-regular", Name: "Past Tense: Regular Verbs", Unit: 5, Prerequisites: []string{"present-irregular", "negation"}},
		{ID: "past-irregular", Name: "Past Tense: Irregular Verbs", Unit: 5, Prerequisites: []string{"past-regular"}},
		{ID: "storytelling", Name: "Telling a Story", Unit: 5, Prerequisites: []string{"past-irregular"}},
		{ID: "weather-seasons", Name: "Weather & Seasons", Unit: 5, Prerequisites: []string{"days-months"}},
		{ID: "reading-short", Name: "Short Reading Drills", Unit: 5, Prerequisites: []string{"plurals", "past-regular"}},

		// Unit 6 — fluency
		{ID: "future-tense", Name: "Future Tense", Unit: 6, Prerequisites: []string{"past-regular"}},
		{ID: "conditionals", Name: "Conditionals", Unit: 6, Prerequisites: []string{"future-tense"}},
		{ID: "subjunctive", Name: "Subjunctive Mood", Unit: 6, Prerequisites: []string{"conditionals", "storytelling"}},
		{ID: "idioms", Name: "Idioms & Expressions", Unit: 6, Prerequisites: []string{"storytelling"}},
		{ID: "conversation", Name: "Open Conversation Practice", Unit: 6, Prerequisites: []string{"subjunctive", "idioms", "reading-short"}},
	}
}
