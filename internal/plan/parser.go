package plan

import "strings"

// The model is asked for strict formats but free text is never
// guaranteed, so all four parsers are total: any input, including
// empty or garbage, yields a defined structure. A section that lacks
// its structural markers is flagged Invalid and rendered as an inline
// note instead of failing the email.

// DailyTargets holds the macro targets section. Values are free text
// (ranges or percentages) exactly as generated.
type DailyTargets struct {
	Calories string
	Protein  string
	Carbs    string
	Fats     string
	Invalid  bool
}

// Meal is a single labeled entry within a day.
type Meal struct {
	Type   string
	Detail string
}

// Day is one day of the plan with its meals in source order.
type Day struct {
	Label string
	Meals []Meal
}

// MealPlan is the ordered 7-day (or however many the model produced)
// schedule.
type MealPlan struct {
	Days    []Day
	Invalid bool
}

// Category is one grocery category with its items in source order.
type Category struct {
	Name  string
	Items []string
}

// GroceryList is the ordered categorized shopping list.
type GroceryList struct {
	Categories []Category
	Invalid    bool
}

// PrepTips is the ordered list of prep tips with markers stripped.
type PrepTips struct {
	Tips    []string
	Invalid bool
}

// NutritionDocument is the normalized form of the four generated
// sections, built once per request and consumed by the renderer.
type NutritionDocument struct {
	Targets   DailyTargets
	MealPlan  MealPlan
	Groceries GroceryList
	PrepTips  PrepTips
}

// ParseDocument normalizes the four raw generation outputs.
func ParseDocument(targets, mealPlan, groceries, prepTips string) NutritionDocument {
	return NutritionDocument{
		Targets:   ParseDailyTargets(targets),
		MealPlan:  ParseMealPlan(mealPlan),
		Groceries: ParseGroceryList(groceries),
		PrepTips:  ParsePrepTips(prepTips),
	}
}

// targetLabels are case-sensitive and colon-terminated; the first
// line carrying a label wins.
var targetLabels = [4]string{"CALORIES:", "PROTEIN:", "CARBS:", "FATS:"}

// ParseDailyTargets scans for the four macro labels. Labels missing
// from the text default to "N/A"; a text with no CALORIES: marker at
// all is considered unparseable.
func ParseDailyTargets(text string) DailyTargets {
	if !strings.Contains(text, "CALORIES:") {
		return DailyTargets{Invalid: true}
	}

	values := map[string]string{}
	lines := strings.Split(text, "\n")
	for _, label := range targetLabels {
		values[label] = "N/A"
		for _, line := range lines {
			idx := strings.Index(line, label)
			if idx < 0 {
				continue
			}
			values[label] = strings.TrimSpace(line[idx+len(label):])
			break
		}
	}

	return DailyTargets{
		Calories: values["CALORIES:"],
		Protein:  values["PROTEIN:"],
		Carbs:    values["CARBS:"],
		Fats:     values["FATS:"],
	}
}

// ParseMealPlan splits the plan into days on "DAY"-prefixed lines.
// Inside a day, any line with a colon is a meal: the text before the
// first colon is the type, the rest the detail. Days without meals
// are kept; lines before the first DAY marker are ignored.
func ParseMealPlan(text string) MealPlan {
	if strings.TrimSpace(text) == "" {
		return MealPlan{Invalid: true}
	}

	var plan MealPlan
	current := -1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "DAY") {
			plan.Days = append(plan.Days, Day{Label: line})
			current = len(plan.Days) - 1
			continue
		}

		if current < 0 {
			continue
		}
		if mealType, detail, ok := strings.Cut(line, ":"); ok {
			plan.Days[current].Meals = append(plan.Days[current].Meals, Meal{
				Type:   strings.TrimSpace(mealType),
				Detail: strings.TrimSpace(detail),
			})
		}
	}

	return plan
}

// ParseGroceryList opens a category on every colon-terminated line
// and collects dash-prefixed lines as its items. Anything else,
// including items before the first category, is ignored.
func ParseGroceryList(text string) GroceryList {
	if strings.TrimSpace(text) == "" {
		return GroceryList{Invalid: true}
	}

	var list GroceryList
	current := -1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasSuffix(line, ":"):
			list.Categories = append(list.Categories, Category{Name: line})
			current = len(list.Categories) - 1
		case strings.HasPrefix(line, "-") && current >= 0:
			list.Categories[current].Items = append(list.Categories[current].Items, strings.TrimSpace(line[1:]))
		}
	}

	return list
}

// tipMarkers is the character set stripped from the front of a tip
// line. '0' is deliberately absent: "10." loses only the "1.".
const tipMarkers = "123456789.- "

// ParsePrepTips keeps lines that start with a digit or a dash and
// strips their numbering/bullet markers. Everything else is dropped.
func ParsePrepTips(text string) PrepTips {
	if strings.TrimSpace(text) == "" {
		return PrepTips{Invalid: true}
	}

	var tips PrepTips
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		first := line[0]
		if (first >= '0' && first <= '9') || first == '-' {
			tips.Tips = append(tips.Tips, strings.TrimLeft(line, tipMarkers))
		}
	}

	return tips
}
