package plan

import "fmt"

// The prompt builders are pure: any profile, including a zero value,
// produces a non-empty prompt.

// TargetsPrompt asks for the daily macro targets section.
func TargetsPrompt() string {
	return `Create daily nutritional targets in this exact format:
CALORIES: [range]
PROTEIN: [percentage]
CARBS: [percentage]
FATS: [percentage]`
}

// MealPlanPrompt asks for a 7-day meal plan personalized to the
// user's questionnaire answers.
func MealPlanPrompt(p Profile) string {
	return fmt.Sprintf(`Based on the following profile:
- Goal: %s
- Gender: %s
- Age: %s
- Height: %scm
- Current Weight: %skg
- Target Weight: %skg
- Activity Level: %s
- Dietary Preference: %s
- Allergies: %s
- Cooking Time: %s per day
- Meal Prep: %s

Create a 7-day meal plan that:
1. Supports their journey from %skg to %skg
2. Can be prepared within their %s time preference
3. Avoids any allergens (%s)
4. Includes meal prep suggestions if they selected 'yes'
5. Matches their %s dietary preference

Format each day exactly as:
DAY [number]:
Breakfast: [detailed meal] | P: [X]g, C: [X]g, F: [X]g
Lunch: [detailed meal] | P: [X]g, C: [X]g, F: [X]g
Dinner: [detailed meal] | P: [X]g, C: [X]g, F: [X]g
Snacks: [detailed meal] | P: [X]g, C: [X]g, F: [X]g`,
		humanize(p.Goal), p.Gender, p.Age, p.Height,
		p.CurrentWeight, p.TargetWeight, humanize(p.Activity),
		humanize(p.DietPreference), p.Allergies, p.CookingTime, p.MealPrep,
		p.CurrentWeight, p.TargetWeight, p.CookingTime, p.Allergies,
		humanize(p.DietPreference))
}

// GroceryListPrompt derives a categorized grocery list from the
// already-generated meal plan text.
func GroceryListPrompt(mealPlanText string) string {
	return fmt.Sprintf(`Based on this meal plan, create a categorized grocery list:
%s

Format as:
PRODUCE:
- [item] (quantity)
PROTEINS:
- [item] (quantity)
PANTRY:
- [item] (quantity)`, mealPlanText)
}

// PrepTipsPrompt asks for numbered meal prep tips. The prompt is
// intentionally static and does not embed the meal plan; see the
// grocery list prompt for the data-dependent variant.
func PrepTipsPrompt() string {
	return "Create 5 specific meal prep tips for this meal plan. " +
		"Format each tip on a new line starting with a number. " +
		"Focus on time-saving and storage tips."
}
