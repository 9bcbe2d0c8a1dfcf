package generator

import (
	"fmt"
	"strings"
)

const segmentPromptTemplate = `Generate a high-end, professional Ramadan meal plan specifically for Days %[1]d to %[2]d.

CRITICAL FORMAT for EACH day (%[1]d to %[2]d):
# Day [Number]

## Suhoor
- [Feature Item 1]
- [Feature Item 2]

## Iftar
- [Feature Item 1]
- [Feature Item 2]

## Preparation
- [Step 1]
- [Step 2]

## Shopping List
- [Generic Item 1]
- [Generic Item 2]

Context: %[3]s
IMPORTANT: Use Markdown headings (##) for Suhoor, Iftar, Preparation, and Shopping List sections.`

// BuildPrompt renders the instruction for one day range.
func BuildPrompt(r Range, h Household) string {
	return fmt.Sprintf(segmentPromptTemplate, r.Start, r.End, householdContext(h))
}

func householdContext(h Household) string {
	parts := []string{
		fmt.Sprintf("Family of %d, Budget INR %d/day, %s style.", h.FamilySize, h.DailyBudget, h.CuisineType),
	}
	if h.AgeGroups != "" {
		parts = append(parts, fmt.Sprintf("Age groups: %s.", h.AgeGroups))
	}
	if h.Equipment != "" {
		parts = append(parts, fmt.Sprintf("Kitchen equipment: %s.", h.Equipment))
	}
	if h.FoodItems != "" {
		parts = append(parts, fmt.Sprintf("Preferred food items: %s.", h.FoodItems))
	}
	return strings.Join(parts, " ")
}
