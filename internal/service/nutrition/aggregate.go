package nutrition

import (
	"time"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// BuildDailySummary aggregates one day's already-fetched diary records into
// a summary. Pure: fetching and persistence belong to the caller.
//
// A feeding record counts at its actual amount when recorded, otherwise at
// its planned amount. Records without joined food composition contribute
// zero calories and macros but still count toward feeding_count.
func BuildDailySummary(userID, catID uuid.UUID, date time.Time,
	feedings []*domain.FeedingRecord,
	waters []*domain.WaterRecord,
	cares []*domain.CareRecord,
) domain.DailySummary {
	s := domain.DailySummary{
		CatID:        catID,
		UserID:       userID,
		SummaryDate:  date,
		FeedingCount: len(feedings),
	}

	appetiteSum := 0
	appetiteCount := 0

	for _, f := range feedings {
		amount := f.ConsumedG()
		if c := f.Composition; c != nil {
			if c.KcalPer100g != nil {
				s.TotalCalories += *c.KcalPer100g / 100 * amount
			}
			if c.ProteinPct != nil {
				s.TotalProteinG += *c.ProteinPct / 100 * amount
			}
			if c.FatPct != nil {
				s.TotalFatG += *c.FatPct / 100 * amount
			}
			if c.CarbPct != nil {
				s.TotalCarbG += *c.CarbPct / 100 * amount
			}
			if c.FiberPct != nil {
				s.TotalFiberG += *c.FiberPct / 100 * amount
			}
		}
		if f.AppetiteScore != nil {
			appetiteSum += *f.AppetiteScore
			appetiteCount++
		}
	}

	for _, w := range waters {
		if w.AmountML != nil {
			s.WaterIntakeML += *w.AmountML
		}
	}

	for _, c := range cares {
		switch c.RecordType {
		case domain.CareRecordSupplement:
			s.SupplementCount++
		case domain.CareRecordMedication:
			s.MedicationCount++
		}
	}

	// Round once, after accumulation.
	s.TotalCalories = round2(s.TotalCalories)
	s.TotalProteinG = round2(s.TotalProteinG)
	s.TotalFatG = round2(s.TotalFatG)
	s.TotalCarbG = round2(s.TotalCarbG)
	s.TotalFiberG = round2(s.TotalFiberG)
	s.WaterIntakeML = round2(s.WaterIntakeML)

	if appetiteCount > 0 {
		avg := round2(float64(appetiteSum) / float64(appetiteCount))
		s.AvgAppetiteScore = &avg
	}

	return s
}
