package nutrition

// Stateless helpers usable without a Calculator: macro splits, BMI, and the
// standalone water-intake function.

// waterMultipliers maps activity level to its hydration scaling factor.
// Distinct from tdeeMultipliers — the two tables share keys but not values.
var waterMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.0,
	ActivityLight:      1.1,
	ActivityModerate:   1.2,
	ActivityActive:     1.3,
	ActivityVeryActive: 1.5,
}

// macroFractions maps diet type to its (protein, carbs, fats) calorie
// fractions. Each triple sums to 1.0.
var macroFractions = map[DietType]struct {
	Protein, Carbs, Fats float64
}{
	DietBalanced:    {0.30, 0.40, 0.30},
	DietHighProtein: {0.40, 0.30, 0.30},
	DietLowCarb:     {0.35, 0.20, 0.45},
}

// Energy densities in kcal per gram. Fixed physiological constants.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Macros splits a daily calorie total into macronutrient grams for the given
// diet type ("" means balanced), each rounded to 1 decimal. Errors if the
// diet type is unrecognized.
func Macros(calories float64, diet DietType) (MacroResult, error) {
	if diet == "" {
		diet = DietBalanced
	}
	frac, ok := macroFractions[diet]
	if !ok {
		return MacroResult{}, invalidOption("diet type", diet, DietTypes)
	}
	return MacroResult{
		ProteinG: round1(calories * frac.Protein / kcalPerGramProtein),
		CarbsG:   round1(calories * frac.Carbs / kcalPerGramCarbs),
		FatsG:    round1(calories * frac.Fats / kcalPerGramFat),
	}, nil
}

// BMICategory returns the body-mass index (weight in kg over squared height
// in meters, rounded to 2 decimals) and its category label. Thresholds are
// half-open with inclusive lower bounds: exactly 18.5 is "normal weight",
// exactly 25 is "overweight", exactly 30 is "obesity". Weight and height
// must be positive; height is in centimeters.
func BMICategory(weightKG, heightCM float64) BMIResult {
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi < 25:
		category = "normal weight"
	case bmi < 30:
		category = "overweight"
	default:
		category = "obesity"
	}
	return BMIResult{BMI: round2(bmi), Category: category}
}

// WaterIntake returns the recommended daily water intake in liters: 0.033 L
// per kg of body weight, scaled by the activity level's hydration multiplier
// ("" means moderate) and rounded to 2 decimals. An unrecognized level keeps
// the base multiplier 1.0 instead of erroring — intentionally asymmetric
// with TDEE, which rejects unknown levels.
func WaterIntake(weightKG float64, level ActivityLevel) float64 {
	if level == "" {
		level = ActivityModerate
	}
	mult, ok := waterMultipliers[level]
	if !ok {
		mult = 1.0
	}
	return round2(weightKG * 0.033 * mult)
}
