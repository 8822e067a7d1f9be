package pricing

import (
	"math"

	"github.com/Anderson413366/gleamops-sub002/pkg/money"
)

// Contract term defaults.
const (
	DefaultContractMonths      = 12
	DefaultAnnualEscalationPct = 3.0
)

// ContractTerms describes a multi-year contract for value projection.
type ContractTerms struct {
	LengthMonths        int     `json:"length_months"`
	AnnualEscalationPct float64 `json:"annual_escalation_pct"`
}

// ContractYear is one projected contract year.
type ContractYear struct {
	Year        int     `json:"year"`
	MonthlyRate float64 `json:"monthly_rate"`
	Months      int     `json:"months"`
	AnnualValue float64 `json:"annual_value"`
}

// ContractProjection is the full multi-year value projection.
type ContractProjection struct {
	Years            []ContractYear `json:"years"`
	TotalValue       float64        `json:"total_value"`
	EffectiveMonthly float64        `json:"effective_monthly"`
}

// ProjectContract projects contract value year by year: the monthly rate
// escalates annually, and a partial final year is capped to the remaining
// months. EffectiveMonthly is the average monthly rate over the full term.
func ProjectContract(monthlyPrice float64, terms ContractTerms) ContractProjection {
	projection := ContractProjection{Years: []ContractYear{}}
	if terms.LengthMonths <= 0 {
		return projection
	}

	remaining := terms.LengthMonths
	yearCount := (terms.LengthMonths + 11) / 12

	for yearIndex := 0; yearIndex < yearCount; yearIndex++ {
		months := remaining
		if months > 12 {
			months = 12
		}
		rate := money.Round2(monthlyPrice * math.Pow(1+terms.AnnualEscalationPct/100, float64(yearIndex)))
		annual := money.Round2(rate * float64(months))

		projection.Years = append(projection.Years, ContractYear{
			Year:        yearIndex + 1,
			MonthlyRate: rate,
			Months:      months,
			AnnualValue: annual,
		})
		projection.TotalValue += annual
		remaining -= months
	}

	projection.TotalValue = money.Round2(projection.TotalValue)
	projection.EffectiveMonthly = money.Round2(projection.TotalValue / float64(terms.LengthMonths))
	return projection
}
