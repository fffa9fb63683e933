package plan

import (
	"encoding/json"
	"strings"
)

// FlexString is a string that also accepts bare JSON numbers, since
// the questionnaire client sends age/height/weights as numbers but
// older clients send everything as strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Profile is the dietary questionnaire payload. All fields are
// free-form; missing fields simply interpolate as empty strings in
// the prompts.
type Profile struct {
	Goal           FlexString `json:"goal"`
	Gender         FlexString `json:"gender"`
	Age            FlexString `json:"age"`
	Height         FlexString `json:"height"`
	CurrentWeight  FlexString `json:"current_weight"`
	TargetWeight   FlexString `json:"target_weight"`
	Activity       FlexString `json:"activity"`
	DietPreference FlexString `json:"diet_preference"`
	Allergies      FlexString `json:"allergies"`
	CookingTime    FlexString `json:"cooking_time"`
	MealPrep       FlexString `json:"meal_prep"`
}

// humanize turns snake_case questionnaire values ("weight_loss",
// "very_active") into readable text for prompts and the email intro.
func humanize(f FlexString) string {
	return strings.ReplaceAll(string(f), "_", " ")
}
