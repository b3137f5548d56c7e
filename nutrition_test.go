package nutrition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/* ─── Macros ─────────────────────────────────────────────────────────── */

// TestMacros verifies the gram split of 2000 kcal for each diet type at the
// fixed 4/4/9 kcal-per-gram densities.
// balanced: 2000*0.30/4 = 150, 2000*0.40/4 = 200, 2000*0.30/9 = 66.66… → 66.7
func TestMacros(t *testing.T) {
	cases := []struct {
		diet DietType
		want MacroResult
	}{
		{DietBalanced, MacroResult{ProteinG: 150, CarbsG: 200, FatsG: 66.7}},
		{DietHighProtein, MacroResult{ProteinG: 200, CarbsG: 150, FatsG: 66.7}},
		{DietLowCarb, MacroResult{ProteinG: 175, CarbsG: 100, FatsG: 100}},
	}

	for _, tc := range cases {
		t.Run(string(tc.diet), func(t *testing.T) {
			got, err := Macros(2000, tc.diet)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestMacros_DefaultDiet verifies that the empty diet type means balanced.
func TestMacros_DefaultDiet(t *testing.T) {
	got, err := Macros(2000, "")
	require.NoError(t, err)
	require.Equal(t, MacroResult{ProteinG: 150, CarbsG: 200, FatsG: 66.7}, got)
}

// TestMacros_UnknownDiet verifies the error for an unrecognized diet type
// and that its message lists the valid types.
func TestMacros_UnknownDiet(t *testing.T) {
	_, err := Macros(2000, "keto")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorContains(t, err, "balanced, high_protein, low_carb")
}

/* ─── BMI ────────────────────────────────────────────────────────────── */

// TestBMICategory verifies the BMI value and category label across the
// bands. 70 kg / 1.75 m² = 22.857… → 22.86, "normal weight".
func TestBMICategory(t *testing.T) {
	cases := []struct {
		name     string
		weightKG float64
		heightCM float64
		wantBMI  float64
		wantCat  string
	}{
		{"normal", 70, 175, 22.86, "normal weight"},
		{"underweight", 50, 175, 16.33, "underweight"},
		{"obesity", 95, 175, 31.02, "obesity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMICategory(tc.weightKG, tc.heightCM)
			require.Equal(t, BMIResult{BMI: tc.wantBMI, Category: tc.wantCat}, got)
		})
	}
}

// TestBMICategory_Boundaries verifies the inclusive lower bounds of each
// band. With height 100 cm the BMI equals the weight, so the thresholds can
// be hit exactly: 18.5 → "normal weight", 25 → "overweight", 30 → "obesity".
func TestBMICategory_Boundaries(t *testing.T) {
	cases := []struct {
		weightKG float64
		wantCat  string
	}{
		{18.4, "underweight"},
		{18.5, "normal weight"},
		{24.9, "normal weight"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obesity"},
	}

	for _, tc := range cases {
		t.Run(tc.wantCat, func(t *testing.T) {
			got := BMICategory(tc.weightKG, 100)
			require.Equal(t, tc.weightKG, got.BMI)
			require.Equal(t, tc.wantCat, got.Category)
		})
	}
}

/* ─── Water intake (standalone) ──────────────────────────────────────── */

// TestWaterIntake verifies round(weight*0.033*multiplier, 2) for every
// level of the hydration table, the silent 1.0 fallback for an unrecognized
// level, and the moderate default for the empty level.
func TestWaterIntake(t *testing.T) {
	cases := []struct {
		name     string
		weightKG float64
		level    ActivityLevel
		want     float64
	}{
		{"sedentary", 70, ActivitySedentary, 2.31},
		{"light", 70, ActivityLight, 2.54},
		{"moderate", 70, ActivityModerate, 2.77},
		{"active", 70, ActivityActive, 3.00},
		{"very_active", 70, ActivityVeryActive, 3.47},
		{"light 60kg", 60, ActivityLight, 2.18},
		{"unknown falls back to base", 70, "ultra", 2.31},
		{"empty means moderate", 70, "", 2.77},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, WaterIntake(tc.weightKG, tc.level))
		})
	}
}

// TestWaterIntake_MatchesCalculator verifies that the standalone function
// and the Calculator method agree for the same weight and level.
func TestWaterIntake_MatchesCalculator(t *testing.T) {
	c, err := NewCalculator(30, 70, 175, SexMale)
	require.NoError(t, err)
	for _, level := range ActivityLevels {
		require.Equal(t, WaterIntake(70, level), c.WaterIntake(level))
	}
}
