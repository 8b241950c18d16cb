package nutrition

// CalculationResult is the output of one dry-matter calculation. Optional
// fields are nil when their inputs were absent or a precondition (positive
// phosphorus, nonzero energy total) did not hold.
type CalculationResult struct {
	DryMatterPct float64
	DMProteinPct float64
	DMFatPct     float64
	DMFiberPct   float64
	DMAshPct     float64

	TotalCalories  *float64
	CalorieDensity *float64

	ProteinKcalPct *float64
	FatKcalPct     *float64
	CarbKcalPct    *float64

	CalciumPhosphorusRatio *float64
}
