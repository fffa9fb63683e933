package plan

import (
	"reflect"
	"testing"
)

func TestParseDailyTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  DailyTargets
	}{
		{
			name:  "empty input is invalid",
			input: "",
			want:  DailyTargets{Invalid: true},
		},
		{
			name:  "garbage without calories marker is invalid",
			input: "some random text\nwith no labels",
			want:  DailyTargets{Invalid: true},
		},
		{
			name:  "missing labels default to N/A",
			input: "CALORIES: 1800-2000\nPROTEIN: 30%\n",
			want:  DailyTargets{Calories: "1800-2000", Protein: "30%", Carbs: "N/A", Fats: "N/A"},
		},
		{
			name:  "all labels present",
			input: "CALORIES: 2200\nPROTEIN: 30%\nCARBS: 45%\nFATS: 25%",
			want:  DailyTargets{Calories: "2200", Protein: "30%", Carbs: "45%", Fats: "25%"},
		},
		{
			name:  "first occurrence wins",
			input: "CALORIES: 2000\nCALORIES: 9999\nPROTEIN: 25%\nCARBS: 50%\nFATS: 25%",
			want:  DailyTargets{Calories: "2000", Protein: "25%", Carbs: "50%", Fats: "25%"},
		},
		{
			name:  "lowercase labels are not recognized",
			input: "CALORIES: 2000\nprotein: 30%",
			want:  DailyTargets{Calories: "2000", Protein: "N/A", Carbs: "N/A", Fats: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDailyTargets(tt.input)
			if got != tt.want {
				t.Errorf("ParseDailyTargets() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseMealPlan(t *testing.T) {
	input := "DAY 1:\nBreakfast: Oats | P: 10g\nDAY 2:\nLunch: Salad | P: 5g\n"
	got := ParseMealPlan(input)

	if got.Invalid {
		t.Fatal("ParseMealPlan() marked valid input invalid")
	}
	want := []Day{
		{Label: "DAY 1:", Meals: []Meal{{Type: "Breakfast", Detail: "Oats | P: 10g"}}},
		{Label: "DAY 2:", Meals: []Meal{{Type: "Lunch", Detail: "Salad | P: 5g"}}},
	}
	if !reflect.DeepEqual(got.Days, want) {
		t.Errorf("ParseMealPlan() days = %+v, want %+v", got.Days, want)
	}
}

func TestParseMealPlanEdgeCases(t *testing.T) {
	t.Run("empty input is invalid", func(t *testing.T) {
		if got := ParseMealPlan(""); !got.Invalid {
			t.Errorf("ParseMealPlan(%q) = %+v, want invalid", "", got)
		}
	})

	t.Run("day without meals is kept", func(t *testing.T) {
		got := ParseMealPlan("DAY 1:\nDAY 2:\nBreakfast: Eggs\n")
		if len(got.Days) != 2 {
			t.Fatalf("got %d days, want 2", len(got.Days))
		}
		if len(got.Days[0].Meals) != 0 {
			t.Errorf("day 1 meals = %+v, want none", got.Days[0].Meals)
		}
		if len(got.Days[1].Meals) != 1 {
			t.Errorf("day 2 meals = %+v, want one", got.Days[1].Meals)
		}
	})

	t.Run("meal lines before first day are ignored", func(t *testing.T) {
		got := ParseMealPlan("Note: plan follows\nDAY 1:\nLunch: Soup\n")
		if len(got.Days) != 1 || len(got.Days[0].Meals) != 1 {
			t.Errorf("ParseMealPlan() = %+v, want one day with one meal", got.Days)
		}
	})

	t.Run("detail keeps everything after first colon", func(t *testing.T) {
		got := ParseMealPlan("DAY 1:\nDinner: Chicken | P: 40g, C: 20g, F: 15g\n")
		meal := got.Days[0].Meals[0]
		if meal.Detail != "Chicken | P: 40g, C: 20g, F: 15g" {
			t.Errorf("detail = %q", meal.Detail)
		}
	})
}

func TestParseGroceryList(t *testing.T) {
	input := "PRODUCE:\n- Apples (3)\nPANTRY:\n- Rice (1kg)\n"
	got := ParseGroceryList(input)

	if got.Invalid {
		t.Fatal("ParseGroceryList() marked valid input invalid")
	}
	want := []Category{
		{Name: "PRODUCE:", Items: []string{"Apples (3)"}},
		{Name: "PANTRY:", Items: []string{"Rice (1kg)"}},
	}
	if !reflect.DeepEqual(got.Categories, want) {
		t.Errorf("ParseGroceryList() = %+v, want %+v", got.Categories, want)
	}
}

func TestParseGroceryListEdgeCases(t *testing.T) {
	t.Run("empty input is invalid", func(t *testing.T) {
		if got := ParseGroceryList(""); !got.Invalid {
			t.Errorf("ParseGroceryList(%q) = %+v, want invalid", "", got)
		}
	})

	t.Run("items before any category are dropped", func(t *testing.T) {
		got := ParseGroceryList("- Orphan item\nPRODUCE:\n- Apples (3)\n")
		if len(got.Categories) != 1 || len(got.Categories[0].Items) != 1 {
			t.Errorf("ParseGroceryList() = %+v", got.Categories)
		}
	})

	t.Run("category without items is kept", func(t *testing.T) {
		got := ParseGroceryList("PRODUCE:\nPANTRY:\n- Rice (1kg)\n")
		if len(got.Categories) != 2 {
			t.Fatalf("got %d categories, want 2", len(got.Categories))
		}
		if len(got.Categories[0].Items) != 0 {
			t.Errorf("first category items = %+v, want none", got.Categories[0].Items)
		}
	})

	t.Run("unmarked lines are ignored", func(t *testing.T) {
		got := ParseGroceryList("PRODUCE:\nremember seasonal fruit\n- Apples (3)\n")
		if !reflect.DeepEqual(got.Categories[0].Items, []string{"Apples (3)"}) {
			t.Errorf("items = %+v", got.Categories[0].Items)
		}
	})
}

func TestParsePrepTips(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		invalid bool
	}{
		{
			name:    "empty input is invalid",
			input:   "",
			invalid: true,
		},
		{
			name:  "numbered and dashed lines kept, others dropped",
			input: "1. Cook rice ahead\n- Store in fridge\nRandom note\n",
			want:  []string{"Cook rice ahead", "Store in fridge"},
		},
		{
			name:  "garbage only yields no tips",
			input: "these lines\nhave no markers\n",
			want:  nil,
		},
		{
			name:  "double digit numbering keeps trailing zero",
			input: "10. Batch cook\n",
			want:  []string{"0. Batch cook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePrepTips(tt.input)
			if got.Invalid != tt.invalid {
				t.Fatalf("ParsePrepTips() invalid = %v, want %v", got.Invalid, tt.invalid)
			}
			if !reflect.DeepEqual(got.Tips, tt.want) {
				t.Errorf("ParsePrepTips() tips = %+v, want %+v", got.Tips, tt.want)
			}
		})
	}
}

func TestParsersAreIdempotent(t *testing.T) {
	targets := "CALORIES: 2000\nPROTEIN: 30%\n"
	mealPlan := "DAY 1:\nBreakfast: Oats\n"
	grocery := "PRODUCE:\n- Apples (3)\n"
	tips := "1. Cook ahead\n"

	first := ParseDocument(targets, mealPlan, grocery, tips)
	second := ParseDocument(targets, mealPlan, grocery, tips)
	if !reflect.DeepEqual(first, second) {
		t.Error("ParseDocument() is not idempotent")
	}
}
