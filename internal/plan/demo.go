package plan

import "sehrimilan/internal/model"

// DemoPlanDays is the day count of the demo plan.
const DemoPlanDays = 2

const demoPlanText = `# Day 1
## Suhoor
- Whole grain oats with milk and honey
- Two boiled eggs
- One fresh apple
## Iftar
- Three dates and a glass of water
- Lentil soup (Shurba)
- Grilled chicken with steamed rice
## Preparation
- Soak oats overnight for quick cooking.
- Prepare lentil soup in bulk for 2 days.
## Shopping List
- Oats, Milk, Honey, Eggs, Apples, Dates, Lentils, Chicken, Rice.

# Day 2
## Suhoor
- Greek yogurt with berries and flaxseeds
- Whole wheat toast with avocado
- Herbal tea
## Iftar
- Dates and fresh orange juice
- Chickpea salad with cucumber and tomatoes
- Baked fish with quinoa
## Preparation
- Chop salad vegetables in advance.
- Season fish 1 hour before baking.
## Shopping List
- Yogurt, Berries, Flaxseeds, Wheat bread, Avocado, Chickpeas, Cucumber, Fish, Quinoa.`

// DemoPlan returns the fixed plan shown to demo sessions.
func DemoPlan() Plan {
	return Plan{
		UserID:   model.DemoScope().UserID,
		FullPlan: demoPlanText,
		PlanDays: DemoPlanDays,
	}
}
