package nutrition

import (
	"math"
	"strings"
)

// tdeeMultipliers maps activity level to its TDEE scaling factor. This is the
// single source of truth for valid activity levels on the calorie side — an
// unknown key here is a hard validation error, unlike the water table which
// falls back silently.
var tdeeMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// goalPlans maps each goal to its flat calorie offset relative to TDEE and
// its fixed description. ±500 kcal/day corresponds to roughly 0.5 kg/week.
var goalPlans = map[Goal]struct {
	Offset      float64
	Description string
}{
	GoalLose:     {-500, "Weight loss (500 cal deficit)"},
	GoalMaintain: {0, "Weight maintenance"},
	GoalGain:     {500, "Weight gain (500 cal surplus)"},
}

// Calculator computes calorie and hydration metrics for one person's
// biometrics. It is an immutable value; construct with NewCalculator.
type Calculator struct {
	age      int
	weightKG float64
	heightCM float64
	sex      Sex
}

// NewCalculator validates the biometric inputs and returns a Calculator.
// Age, weight, and height must be positive; sex is lowercased here but not
// otherwise checked — an unsupported value surfaces from BMR, where the
// formula branches on it.
func NewCalculator(age int, weightKG, heightCM float64, sex Sex) (*Calculator, error) {
	if age <= 0 {
		return nil, &InvalidInputError{Field: "age", Reason: "must be a positive number of years"}
	}
	if weightKG <= 0 {
		return nil, &InvalidInputError{Field: "weight", Reason: "must be a positive number of kilograms"}
	}
	if heightCM <= 0 {
		return nil, &InvalidInputError{Field: "height", Reason: "must be a positive number of centimeters"}
	}
	return &Calculator{
		age:      age,
		weightKG: weightKG,
		heightCM: heightCM,
		sex:      Sex(strings.ToLower(string(sex))),
	}, nil
}

// WaterIntake returns the recommended daily water intake in liters for the
// calculator's weight at the given activity level ("" means moderate).
// Unrecognized levels fall back to the base multiplier 1.0 rather than
// erroring; see the package-level WaterIntake.
func (c *Calculator) WaterIntake(level ActivityLevel) float64 {
	return WaterIntake(c.weightKG, level)
}

// BMR returns the basal metabolic rate in kcal/day per the revised
// Harris-Benedict equations, rounded to 2 decimals. Errors if sex is
// neither "male" nor "female".
func (c *Calculator) BMR() (float64, error) {
	var bmr float64
	switch c.sex {
	case SexMale:
		bmr = 88.362 + 13.397*c.weightKG + 4.799*c.heightCM - 5.677*float64(c.age)
	case SexFemale:
		bmr = 447.593 + 9.247*c.weightKG + 3.098*c.heightCM - 4.330*float64(c.age)
	default:
		return 0, &InvalidInputError{Field: "sex", Reason: "must be 'male' or 'female'"}
	}
	return round2(bmr), nil
}

// TDEE returns the total daily energy expenditure in kcal/day: the rounded
// BMR scaled by the activity multiplier, rounded to 2 decimals. Unlike water
// intake, an unrecognized level is an error listing the valid levels.
func (c *Calculator) TDEE(level ActivityLevel) (float64, error) {
	mult, ok := tdeeMultipliers[level]
	if !ok {
		return 0, invalidOption("activity level", level, ActivityLevels)
	}
	bmr, err := c.BMR()
	if err != nil {
		return 0, err
	}
	return round2(bmr * mult), nil
}

// CaloriesForGoal returns the daily calorie recommendation for a weight goal
// at the given activity level ("" means moderate): TDEE plus the goal's flat
// offset. Errors if the goal or activity level is unrecognized.
func (c *Calculator) CaloriesForGoal(goal Goal, level ActivityLevel) (CalorieResult, error) {
	plan, ok := goalPlans[goal]
	if !ok {
		return CalorieResult{}, invalidOption("goal", goal, Goals)
	}
	if level == "" {
		level = ActivityModerate
	}
	tdee, err := c.TDEE(level)
	if err != nil {
		return CalorieResult{}, err
	}
	bmr, err := c.BMR()
	if err != nil {
		return CalorieResult{}, err
	}
	return CalorieResult{
		BMR:                 bmr,
		TDEE:                tdee,
		RecommendedCalories: round2(tdee + plan.Offset),
		GoalDescription:     plan.Description,
	}, nil
}

/* ─── Rounding helpers ───────────────────────────────────────────────── */

// All rounding in this package is half away from zero (math.Round), at the
// decimal places each function documents.

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
