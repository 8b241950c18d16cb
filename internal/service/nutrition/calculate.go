package nutrition

import (
	"context"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// RunCalculation validates the input and runs the dry-matter calculation.
// Moisture of exactly 100 passes the bounds check but leaves no dry matter
// to normalize against, so it is rejected here before Calculate runs.
func (s *Service) RunCalculation(ctx context.Context, input CalculationInput) (CalculationResult, error) {
	if err := input.Validate(); err != nil {
		return CalculationResult{}, err
	}

	if 100-*input.MoisturePct <= 0 {
		return CalculationResult{}, domain.NewValidationError(
			"moisture_percent", "leaves no dry matter, must be below 100")
	}

	res := Calculate(input)

	s.log.DebugContext(ctx, "calculation done",
		"brand", input.BrandName,
		"product", input.ProductName,
		"dry_matter_pct", res.DryMatterPct)
	return res, nil
}
