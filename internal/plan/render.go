package plan

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadLogoBase64 reads the static logo once at startup and returns it
// base64-encoded for inline embedding. A missing asset is not fatal:
// emails go out without the image.
func LoadLogoBase64(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("logo asset not available, emails will omit it")
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

const emailStyle = `
            body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f5f5f5; }
            .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
            .header { background-color: #45B26B; padding: 20px; text-align: center; }
            .logo { width: 120px; height: auto; margin-bottom: 20px; }
            .header h1 { color: white; margin: 0; font-size: 24px; font-weight: 600; }
            .content { padding: 40px 20px; }
            .section { margin-bottom: 30px; }
            .section-title { color: #45B26B; font-size: 20px; font-weight: 600; margin-bottom: 15px; border-bottom: 2px solid #45B26B; padding-bottom: 5px; }
            .meal-day { background: white; border-radius: 12px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); padding: 25px; margin-bottom: 30px; }
            .meal-table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
            .meal-table th { background: #45B26B; color: white; padding: 10px; text-align: left; }
            .meal-table td { padding: 10px; border-bottom: 1px solid #eee; }
            .macros-box { background: #f0f7f1; border-radius: 8px; padding: 15px; margin-bottom: 20px; }
            .grocery-list { background: white; border: 1px solid #ddd; border-radius: 8px; padding: 20px; }
            .tips { background: #fff5e6; border-radius: 8px; padding: 20px; margin-top: 30px; }
            .intro-section { background: #f8f9fa; border-left: 4px solid #45B26B; padding: 20px; margin: 20px 0; border-radius: 8px; line-height: 1.6; }
            .intro-section p { color: #666; margin: 10px 0; }
            .highlight { color: #45B26B; font-weight: 600; }
`

// RenderEmail converts the parsed document into the HTML email body.
// It is pure: the same document and profile always render to the same
// bytes. Sections that failed to parse render an inline note so the
// user still receives the rest of the plan.
func RenderEmail(p Profile, doc NutritionDocument, logoBase64 string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>")
	b.WriteString(emailStyle)
	b.WriteString("</style>\n</head>\n<body>\n<div class=\"container\">\n")

	b.WriteString("<div class=\"header\">\n")
	if logoBase64 != "" {
		fmt.Fprintf(&b, "<img src=\"data:image/png;base64,%s\" alt=\"Eat Real\" class=\"logo\">\n", logoBase64)
	}
	b.WriteString("<h1>Your Personalized Nutrition Plan</h1>\n</div>\n")

	b.WriteString("<div class=\"content\">\n")
	renderIntro(&b, p)
	renderSection(&b, "Daily Targets", renderTargets(doc.Targets))
	renderSection(&b, "Your 7-Day Meal Plan", renderMealPlan(doc.MealPlan))
	renderSection(&b, "Grocery List", renderGroceryList(doc.Groceries))
	renderSection(&b, "Meal Prep Tips", renderPrepTips(doc.PrepTips))
	b.WriteString("</div>\n</div>\n</body>\n</html>\n")

	return b.String()
}

func renderSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "<div class=\"section\">\n<h2 class=\"section-title\">%s</h2>\n%s</div>\n", title, body)
}

func renderIntro(b *strings.Builder, p Profile) {
	b.WriteString("<div class=\"intro-section\">\n")
	b.WriteString("<p>Welcome to your personalized nutrition journey! Based on your profile, we've created a meal plan that:</p>\n")
	fmt.Fprintf(b, "<p>🎯 Supports your <span class=\"highlight\">%s goal</span> from %skg to %skg</p>\n",
		humanize(p.Goal), p.CurrentWeight, p.TargetWeight)
	fmt.Fprintf(b, "<p>💪 Matches your <span class=\"highlight\">%s</span> activity level</p>\n", humanize(p.Activity))
	fmt.Fprintf(b, "<p>🍽️ Follows your <span class=\"highlight\">%s</span> dietary preference</p>\n", humanize(p.DietPreference))
	fmt.Fprintf(b, "<p>⏰ Fits within your <span class=\"highlight\">%s</span> cooking time preference</p>\n", p.CookingTime)
	fmt.Fprintf(b, "<p>🔄 Includes %s meal prep options</p>\n", p.MealPrep)
	b.WriteString("</div>\n")
}

func renderTargets(t DailyTargets) string {
	if t.Invalid {
		return "<p>Error: Invalid daily targets format</p>\n"
	}
	return fmt.Sprintf(`<div class="macros-box">
<table class="meal-table">
<tr><th>Calories</th><th>Protein</th><th>Carbs</th><th>Fats</th></tr>
<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>
</table>
</div>
`, t.Calories, t.Protein, t.Carbs, t.Fats)
}

func renderMealPlan(mp MealPlan) string {
	if mp.Invalid {
		return "<p>Error: Invalid meal plan format</p>\n"
	}

	var b strings.Builder
	b.WriteString("<div class=\"meal-plan\">\n")
	for _, day := range mp.Days {
		fmt.Fprintf(&b, "<div class=\"meal-day\">\n<h3>%s</h3>\n", day.Label)
		for _, meal := range day.Meals {
			fmt.Fprintf(&b, "<div class=\"meal-item\">\n<h4>%s</h4>\n<p>%s</p>\n</div>\n", meal.Type, meal.Detail)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func renderGroceryList(gl GroceryList) string {
	if gl.Invalid {
		return "<p>Error: Invalid grocery list format</p>\n"
	}

	var b strings.Builder
	b.WriteString("<div class=\"grocery-list\">\n")
	for _, cat := range gl.Categories {
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", cat.Name)
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "<li>%s</li>\n", item)
		}
		b.WriteString("</ul>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func renderPrepTips(pt PrepTips) string {
	if pt.Invalid {
		return "<p>Error: Invalid prep tips format</p>\n"
	}

	var b strings.Builder
	b.WriteString("<div class=\"prep-tips\">\n<ol>\n")
	for _, tip := range pt.Tips {
		fmt.Fprintf(&b, "<li>%s</li>\n", tip)
	}
	b.WriteString("</ol>\n</div>\n")
	return b.String()
}
