package shopping

// DemoEntries returns the fixed list shown to demo sessions.
func DemoEntries() []Entry {
	return []Entry{
		{ID: "demo-1", Name: "Premium Dates (Kimia)", Day: "Day 1", Category: CategoryGrocery},
		{ID: "demo-2", Name: "Lentils (Red & Yellow)", Completed: true, Day: "Day 1", Category: CategoryGrocery},
		{ID: "demo-3", Name: "Fresh Chicken Breast", Day: "Day 1", Category: CategoryMeat},
		{ID: "demo-4", Name: "Greek Yogurt", Day: "Day 2", Category: CategoryGrocery},
		{ID: "demo-5", Name: "Whole Wheat Flour", Day: "Day 2", Category: CategoryGrocery},
	}
}
