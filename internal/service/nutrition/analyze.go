package nutrition

import "github.com/whiskerlog/catcare-backend/internal/domain"

// AnalyzeProduct derives the stored dry-matter analysis for a catalog
// product from its label percentages. Same math as Calculate, minus the
// portion-dependent calorie totals. Assumes moisture below 100.
func AnalyzeProduct(a domain.GuaranteedAnalysis) domain.DryMatterAnalysis {
	input := CalculationInput{
		FoodWeightG:   nil,
		MoisturePct:   &a.MoisturePct,
		ProteinPct:    &a.ProteinPct,
		FatPct:        &a.FatPct,
		FiberPct:      &a.FiberPct,
		AshPct:        &a.AshPct,
		CarbPct:       a.CarbPct,
		CalciumPct:    a.CalciumPct,
		PhosphorusPct: a.PhosphorusPct,
		SodiumPct:     a.SodiumPct,
		KcalPer100g:   a.KcalPer100g,
	}
	res := Calculate(input)

	return domain.DryMatterAnalysis{
		DryMatterPct:    res.DryMatterPct,
		DMProteinPct:    res.DMProteinPct,
		DMFatPct:        res.DMFatPct,
		DMFiberPct:      res.DMFiberPct,
		DMAshPct:        res.DMAshPct,
		ProteinKcalPct:  res.ProteinKcalPct,
		FatKcalPct:      res.FatKcalPct,
		CarbKcalPct:     res.CarbKcalPct,
		CalciumPhosphor: res.CalciumPhosphorusRatio,
	}
}
