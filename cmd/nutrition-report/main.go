// CLI tool that prints a nutrition report for an example profile: water
// intake, BMR, TDEE at every activity level, and per-goal calorie and macro
// recommendations. Profile values come from the environment (optionally via
// .env); the defaults are the reference profile (30y, 70kg, 175cm, male).
// Usage: go run ./cmd/nutrition-report
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	nutrition "lg/nutrition-go"
)

// reportConfig is the demo profile, sourced from env with the reference
// profile as defaults.
type reportConfig struct {
	Age      int     `env:"PROFILE_AGE"       env-default:"30"`
	WeightKG float64 `env:"PROFILE_WEIGHT_KG" env-default:"70"`
	HeightCM float64 `env:"PROFILE_HEIGHT_CM" env-default:"175"`
	Sex      string  `env:"PROFILE_SEX"       env-default:"male"`
	Diet     string  `env:"PROFILE_DIET"      env-default:"balanced"`
}

func main() {
	// .env is optional for the demo — env vars alone (or the defaults) work.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	var cfg reportConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}

	calc, err := nutrition.NewCalculator(cfg.Age, cfg.WeightKG, cfg.HeightCM, nutrition.Sex(cfg.Sex))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}

	bmr, err := calc.BMR()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid profile: %v\n", err)
		os.Exit(1)
	}

	rule := strings.Repeat("=", 50)
	fmt.Println(rule)
	fmt.Println("DAILY NUTRITION REPORT")
	fmt.Println(rule)

	fmt.Println("\nProfile:")
	fmt.Printf("  Age:    %d years\n", cfg.Age)
	fmt.Printf("  Weight: %g kg\n", cfg.WeightKG)
	fmt.Printf("  Height: %g cm\n", cfg.HeightCM)
	fmt.Printf("  Sex:    %s\n", cfg.Sex)

	fmt.Printf("\nRecommended water intake: %g L/day\n", calc.WaterIntake(nutrition.ActivityModerate))
	fmt.Printf("Basal Metabolic Rate (BMR): %g cal/day\n", bmr)

	fmt.Println("\nTotal Daily Energy Expenditure (TDEE) by activity level:")
	for _, level := range nutrition.ActivityLevels {
		tdee, err := calc.TDEE(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing TDEE: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %-12s %g cal/day\n", level+":", tdee)
	}

	fmt.Println("\nRecommendations by goal (moderate activity):")
	for _, goal := range nutrition.Goals {
		res, err := calc.CaloriesForGoal(goal, nutrition.ActivityModerate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing goal calories: %v\n", err)
			os.Exit(1)
		}

		macros, err := nutrition.Macros(res.RecommendedCalories, nutrition.DietType(cfg.Diet))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid diet type: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n  %s:\n", strings.ToUpper(string(goal)))
		fmt.Printf("    BMR:         %g cal\n", res.BMR)
		fmt.Printf("    TDEE:        %g cal\n", res.TDEE)
		fmt.Printf("    Recommended: %g cal/day (%s)\n", res.RecommendedCalories, res.GoalDescription)
		fmt.Printf("    Macros (%s): protein %gg, carbs %gg, fats %gg\n",
			cfg.Diet, macros.ProteinG, macros.CarbsG, macros.FatsG)
	}

	bmi := nutrition.BMICategory(cfg.WeightKG, cfg.HeightCM)
	fmt.Printf("\nBMI: %g (%s)\n", bmi.BMI, bmi.Category)
}
