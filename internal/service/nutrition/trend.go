package nutrition

import (
	"time"

	"github.com/whiskerlog/catcare-backend/internal/domain"
)

// Named trend periods, both trailing windows that include today.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// PeriodDays maps a named period to its window length in days.
var PeriodDays = map[string]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
}

// ComposeTrend builds the daily series and period averages for a date range
// from the stored summaries that fall inside it. Pure.
//
// Every calendar day from from to to inclusive gets a point; days without a
// summary are zero-filled with a nil appetite score. A day is "valid" when
// it aggregated at least one feeding; averages run over valid days only,
// while supplement and medication totals run over all days. A reversed
// range yields an empty series rather than an error.
func ComposeTrend(summaries []*domain.DailySummary, from, to time.Time) domain.TrendReport {
	var report domain.TrendReport

	from = dateOnly(from)
	to = dateOnly(to)
	if from.After(to) {
		return report
	}

	byDate := make(map[string]*domain.DailySummary, len(summaries))
	for _, s := range summaries {
		byDate[dateOnly(s.SummaryDate).Format(domain.DateLayout)] = s
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		point := domain.TrendPoint{Date: d}
		if s, ok := byDate[d.Format(domain.DateLayout)]; ok {
			point.TotalCalories = s.TotalCalories
			point.TotalProteinG = s.TotalProteinG
			point.TotalFatG = s.TotalFatG
			point.TotalCarbG = s.TotalCarbG
			point.TotalFiberG = s.TotalFiberG
			point.FeedingCount = s.FeedingCount
			point.AvgAppetiteScore = s.AvgAppetiteScore
			point.WaterIntakeML = s.WaterIntakeML
			point.SupplementCount = s.SupplementCount
			point.MedicationCount = s.MedicationCount
		}
		report.Daily = append(report.Daily, point)
	}

	report.TotalDays = len(report.Daily)

	var (
		calories, protein, fat, carb, fiber float64
		feedings, water                     float64
		appetiteSum                         float64
		appetiteDays                        int
	)
	for _, p := range report.Daily {
		report.SupplementTotal += p.SupplementCount
		report.MedicationTotal += p.MedicationCount

		if !p.HasData() {
			continue
		}
		report.DaysWithData++

		calories += p.TotalCalories
		protein += p.TotalProteinG
		fat += p.TotalFatG
		carb += p.TotalCarbG
		fiber += p.TotalFiberG
		feedings += float64(p.FeedingCount)
		water += p.WaterIntakeML

		if p.AvgAppetiteScore != nil {
			appetiteSum += *p.AvgAppetiteScore
			appetiteDays++
		}
	}

	if report.DaysWithData > 0 {
		n := float64(report.DaysWithData)
		report.Averages = domain.TrendAverages{
			Calories:      round2(calories / n),
			ProteinG:      round2(protein / n),
			FatG:          round2(fat / n),
			CarbG:         round2(carb / n),
			FiberG:        round2(fiber / n),
			FeedingCount:  round2(feedings / n),
			WaterIntakeML: round2(water / n),
		}
	}

	report.DaysWithAppetiteData = appetiteDays
	if appetiteDays > 0 {
		avg := round2(appetiteSum / float64(appetiteDays))
		report.Averages.AvgAppetiteScore = &avg
	}

	return report
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
