package nutrition

import "math"

// Energy factors (kcal per gram) used for the calorie-ratio breakdown.
// These are the values the product labels in scope are calibrated
// against, not Atwater factors.
const (
	proteinKcalPerG = 3.5
	fatKcalPerG     = 8.5
	carbKcalPerG    = 3.5
)

// Calculate converts as-fed label percentages into dry-matter-basis values
// and derived ratios. Pure; assumes the input passed Validate and that the
// dry matter content is positive (moisture below 100).
func Calculate(input CalculationInput) CalculationResult {
	moisture := *input.MoisturePct
	dryMatter := 100 - moisture

	res := CalculationResult{
		DryMatterPct: dryMatter,
		DMProteinPct: round2(*input.ProteinPct / dryMatter * 100),
		DMFatPct:     round2(*input.FatPct / dryMatter * 100),
		DMFiberPct:   round2(*input.FiberPct / dryMatter * 100),
		DMAshPct:     round2(*input.AshPct / dryMatter * 100),
	}

	if input.KcalPer100g != nil && input.FoodWeightG != nil {
		total := round2(*input.KcalPer100g / 100 * *input.FoodWeightG)
		density := round2(total / *input.FoodWeightG * 100)
		res.TotalCalories = &total
		res.CalorieDensity = &density
	}

	if input.KcalPer100g != nil {
		res.ProteinKcalPct, res.FatKcalPct, res.CarbKcalPct = calorieRatios(input, moisture)
	}

	if input.CalciumPct != nil && input.PhosphorusPct != nil && *input.PhosphorusPct > 0 {
		ratio := round2(*input.CalciumPct / *input.PhosphorusPct)
		res.CalciumPhosphorusRatio = &ratio
	}

	return res
}

// calorieRatios attributes the computed energy to protein, fat and
// carbohydrate. The gram quantities are the as-fed percentages rescaled by
// the moisture factor a second time; the legacy label displays are
// calibrated against exactly this formula, so it is kept as is.
func calorieRatios(input CalculationInput, moisture float64) (protein, fat, carb *float64) {
	dryFactor := (100 - moisture) / 100

	proteinG := *input.ProteinPct / 100 * dryFactor
	fatG := *input.FatPct / 100 * dryFactor
	carbG := 0.0
	if input.CarbPct != nil {
		carbG = *input.CarbPct / 100 * dryFactor
	}

	proteinKcal := proteinG * proteinKcalPerG
	fatKcal := fatG * fatKcalPerG
	carbKcal := carbG * carbKcalPerG

	total := proteinKcal + fatKcal + carbKcal
	if total <= 0 {
		return nil, nil, nil
	}

	p := round1(proteinKcal / total * 100)
	f := round1(fatKcal / total * 100)
	protein, fat = &p, &f

	if input.CarbPct != nil {
		c := round1(carbKcal / total * 100)
		carb = &c
	}
	return protein, fat, carb
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func round1(x float64) float64 { return math.Round(x*10) / 10 }
