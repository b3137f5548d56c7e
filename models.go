// Package nutrition computes personal nutrition metrics — basal metabolic
// rate, total daily energy expenditure, goal-adjusted calorie targets,
// macronutrient grams, BMI category, and daily water intake — from a small
// set of biometric inputs. Every function is a pure, single-pass calculation;
// identical inputs always produce identical (identically rounded) results, so
// the package is safe for concurrent use without locking.
package nutrition

/* ─── Enumerated inputs ──────────────────────────────────────────────── */

// Sex selects the BMR formula branch. Comparison is case-sensitive;
// NewCalculator lowercases its argument so "Male" and "MALE" work there.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel keys both multiplier tables (TDEE and water intake — two
// distinct tables, the values are not interchangeable). The zero value ""
// means "use the default" (moderate) wherever a default applies.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists the recognized levels in canonical order. Used to
// build error messages and by callers that enumerate (e.g. the report tool).
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// DietType selects a macro fraction split. The zero value "" means balanced.
type DietType string

const (
	DietBalanced    DietType = "balanced"
	DietHighProtein DietType = "high_protein"
	DietLowCarb     DietType = "low_carb"
)

// DietTypes lists the recognized diet types in canonical order.
var DietTypes = []DietType{DietBalanced, DietHighProtein, DietLowCarb}

// Goal selects a flat calorie offset relative to TDEE.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Goals lists the recognized goals in canonical order.
var Goals = []Goal{GoalLose, GoalMaintain, GoalGain}

/* ─── Result structs ─────────────────────────────────────────────────── */

// CalorieResult is the outcome of a goal-based calorie computation.
// All numeric fields are rounded to 2 decimals.
type CalorieResult struct {
	BMR                 float64 `json:"bmr"`
	TDEE                float64 `json:"tdee"`
	RecommendedCalories float64 `json:"recommended_calories"`
	GoalDescription     string  `json:"goal_description"`
}

// MacroResult is a macronutrient split in grams, each rounded to 1 decimal.
type MacroResult struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// BMIResult is a body-mass index (rounded to 2 decimals) and its category label.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}
