// Package pricing turns a workload into monthly cost and a recommended
// price under one of four strategies, with a full audit explanation.
package pricing

import (
	"math"

	"github.com/Anderson413366/gleamops-sub002/decision/specialization"
	"github.com/Anderson413366/gleamops-sub002/decision/workload"
	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/money"
)

// Strategy defaults applied when the snapshot leaves the percentage unset.
const (
	DefaultCostPlusPct     = 20.0
	DefaultTargetMarginPct = 25.0
)

// HybridBandPct is the tolerance band around market price for HYBRID
// pricing: the target-margin price is clamped to market ± this percentage.
const HybridBandPct = 10.0

// Calculate prices a bid from its snapshot and workload result.
//
// Optional snapshot extensions fold in when present: a crew roster replaces
// the flat cleaner rate with the weighted average wage, an enabled day
// porter adds its monthly cost to labor before burden, and itemized
// consumables replace the flat consumables figure. A non-JANITORIAL
// specialization is reported in the explanation without mutating workload.
func Calculate(snapshot *api.BidSnapshot, wl *api.WorkloadResult) (*api.PricingResult, error) {
	burden := snapshot.Burden
	burdenMultiplier := 1 + (burden.EmployerTaxPct+burden.WorkersCompPct+burden.InsurancePct+burden.OtherPct)/100

	effectiveCleanerRate := snapshot.LaborRates.CleanerRate
	var weightedAvgWage *float64
	if len(snapshot.Crew) > 0 {
		wage := WeightedWage(snapshot.Crew)
		effectiveCleanerRate = wage.WeightedAvgRate
		weightedAvgWage = &wage.WeightedAvgRate
	}

	laborCost := wl.MonthlyHours * effectiveCleanerRate
	if wl.LeadNeeded {
		supervisorMonthlyHours := snapshot.Schedule.SupervisorHoursWeek * workload.WeeksPerMonth
		laborCost += supervisorMonthlyHours * snapshot.LaborRates.SupervisorRate
	}

	var dayPorter *api.DayPorterResult
	if snapshot.DayPorter != nil && snapshot.DayPorter.Enabled {
		dp := DayPorter(*snapshot.DayPorter)
		dayPorter = &dp
		laborCost += dp.MonthlyCost
	}

	burdenedLabor := laborCost * burdenMultiplier

	totalSqft := snapshot.TotalSquareFootage()

	consumablesMonthly := snapshot.Supplies.ConsumablesMonthly
	var consumablesDetail *api.ConsumablesResult
	if len(snapshot.ConsumableItems) > 0 {
		detail := Consumables(snapshot.ConsumableItems)
		consumablesDetail = &detail
		consumablesMonthly = detail.TotalMonthly
	}

	allowance := totalSqft * snapshot.Supplies.AllowancePerSqftMonthly
	suppliesCost := allowance + consumablesMonthly

	var equipmentCost float64
	for _, item := range snapshot.Equipment {
		equipmentCost += item.MonthlyDepreciation
	}

	totalMonthlyCost := burdenedLabor + suppliesCost + equipmentCost + snapshot.Overhead.MonthlyOverheadAllocated

	strategy := snapshot.PricingStrategy
	recommendedPrice := recommendPrice(strategy, totalMonthlyCost)

	var effectiveMarginPct float64
	if totalMonthlyCost > 0 {
		effectiveMarginPct = (recommendedPrice - totalMonthlyCost) / recommendedPrice * 100
	}

	var pricePerSqft *float64
	if totalSqft > 0 {
		pps := recommendedPrice / totalSqft
		pricePerSqft = &pps
	}
	var effectiveHourlyRevenue float64
	if wl.MonthlyHours > 0 {
		effectiveHourlyRevenue = recommendedPrice / wl.MonthlyHours
	}

	var specSummary *api.SpecializationSummary
	if snapshot.Specialization != nil && snapshot.Specialization.Type != api.BidTypeJanitorial {
		adj, err := specialization.Calculate(snapshot.Specialization, totalSqft)
		if err != nil {
			return nil, err
		}
		specSummary = &api.SpecializationSummary{
			BidType:              snapshot.Specialization.Type,
			ExtraMinutesPerVisit: adj.ExtraMinutesPerVisit,
			WorkloadMultiplier:   adj.WorkloadMultiplier,
			Adjustments:          adj.Adjustments,
		}
	}

	// Currency and percentage fields are presented at 2 decimals; the
	// explanation keeps ratio fields like price per sqft at full precision.
	return &api.PricingResult{
		PricingMethod:      strategy.Method,
		BurdenedLaborCost:  money.Round2(burdenedLabor),
		SuppliesCost:       money.Round2(suppliesCost),
		EquipmentCost:      money.Round2(equipmentCost),
		OverheadCost:       money.Round2(snapshot.Overhead.MonthlyOverheadAllocated),
		TotalMonthlyCost:   money.Round2(totalMonthlyCost),
		RecommendedPrice:   money.Round2(recommendedPrice),
		EffectiveMarginPct: money.Round2(effectiveMarginPct),
		Explanation: api.PricingExplanation{
			LaborHoursMonthly: wl.MonthlyHours,
			CleanerRate:       effectiveCleanerRate,
			BurdenMultiplier:  burdenMultiplier,
			BurdenComponents: api.BurdenComponents{
				EmployerTaxPct: burden.EmployerTaxPct,
				WorkersCompPct: burden.WorkersCompPct,
				InsurancePct:   burden.InsurancePct,
				OtherPct:       burden.OtherPct,
			},
			SuppliesBreakdown: api.SuppliesBreakdown{
				Allowance:   money.Round2(allowance),
				Consumables: money.Round2(consumablesMonthly),
			},
			EquipmentTotal:         money.Round2(equipmentCost),
			OverheadAllocated:      money.Round2(snapshot.Overhead.MonthlyOverheadAllocated),
			PricePerSqft:           pricePerSqft,
			EffectiveHourlyRevenue: effectiveHourlyRevenue,
			WeightedAvgWage:        weightedAvgWage,
			DayPorter:              dayPorter,
			ConsumablesDetail:      consumablesDetail,
			Specialization:         specSummary,
		},
	}, nil
}

func recommendPrice(strategy api.PricingStrategy, cost float64) float64 {
	switch strategy.Method {
	case api.MethodCostPlus:
		return cost * (1 + pctOrDefault(strategy.CostPlusPct, DefaultCostPlusPct)/100)
	case api.MethodTargetMargin:
		return targetMarginPrice(cost, strategy.TargetMarginPct)
	case api.MethodMarketRate:
		if strategy.MarketPriceMonthly != nil {
			return *strategy.MarketPriceMonthly
		}
		return cost
	case api.MethodHybrid:
		targetPrice := targetMarginPrice(cost, strategy.TargetMarginPct)
		// Without a market reference the target price stands unclamped.
		marketPrice := targetPrice
		if strategy.MarketPriceMonthly != nil {
			marketPrice = *strategy.MarketPriceMonthly
		}
		lower := marketPrice * (1 - HybridBandPct/100)
		upper := marketPrice * (1 + HybridBandPct/100)
		return math.Max(lower, math.Min(upper, targetPrice))
	default:
		return cost
	}
}

func targetMarginPrice(cost float64, marginPct *float64) float64 {
	return cost / (1 - pctOrDefault(marginPct, DefaultTargetMarginPct)/100)
}

func pctOrDefault(pct *float64, fallback float64) float64 {
	if pct != nil {
		return *pct
	}
	return fallback
}
