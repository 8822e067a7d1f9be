package pricing

import (
	"github.com/Anderson413366/gleamops-sub002/decision/workload"
	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/money"
)

// WeightedWage computes the hours-weighted average hourly rate of a crew.
// An empty crew or zero total hours yields a zero rate.
func WeightedWage(crew []api.CrewMember) api.WeightedWageResult {
	result := api.WeightedWageResult{CrewMembers: crew}
	if len(crew) == 0 {
		return result
	}

	var weightedSum, totalHours float64
	for _, member := range crew {
		weightedSum += member.HourlyRate * member.WeeklyHours
		totalHours += member.WeeklyHours
	}
	result.TotalWeeklyHours = totalHours
	if totalHours > 0 {
		result.WeightedAvgRate = money.Round2(weightedSum / totalHours)
	}
	return result
}

// DayPorter computes the monthly add-on cost of a day porter. A disabled
// config or a zero schedule input yields a zero result.
func DayPorter(config api.DayPorterConfig) api.DayPorterResult {
	if !config.Enabled || config.DaysPerWeek == 0 || config.HoursPerDay == 0 {
		return api.DayPorterResult{}
	}
	monthlyHours := config.DaysPerWeek * config.HoursPerDay * workload.WeeksPerMonth
	return api.DayPorterResult{
		MonthlyHours: money.Round2(monthlyHours),
		MonthlyCost:  money.Round2(monthlyHours * config.HourlyRate),
	}
}

// Consumables prices occupancy-driven consumable items.
func Consumables(items []api.ConsumableItem) api.ConsumablesResult {
	result := api.ConsumablesResult{Items: make([]api.ConsumableLineResult, 0, len(items))}
	for _, item := range items {
		monthlyUnits := item.UnitsPerOccupantPerMonth * item.OccupantCount
		monthlyCost := money.Round2(monthlyUnits * item.UnitCost)
		result.Items = append(result.Items, api.ConsumableLineResult{
			ConsumableItem: item,
			MonthlyUnits:   monthlyUnits,
			MonthlyCost:    monthlyCost,
		})
		result.TotalMonthly += monthlyCost
	}
	result.TotalMonthly = money.Round2(result.TotalMonthly)
	return result
}
