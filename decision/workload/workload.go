// Package workload expands a bid snapshot's areas and tasks into per-visit
// minutes, aggregates them to monthly hours, and sizes the cleaning crew.
package workload

import (
	"fmt"
	"math"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/errors"
)

// Calculate computes the workload for a snapshot.
//
// Per task: a custom_minutes override is authoritative; otherwise the
// production rate catalog is consulted (see ResolveRate) and minutes derive
// from square footage or fixture counts, scaled by difficulty, the optional
// ML adjustment, and area quantity. Per-area minutes are clamped to
// [MinAreaMinutes, MaxAreaMinutes] with a warning when clamping occurs.
//
// Returns a BidError with code BID_003 when a task has neither an override
// nor any matching production rate.
func Calculate(snapshot *api.BidSnapshot) (*api.WorkloadResult, error) {
	result := &api.WorkloadResult{
		Warnings:       []string{},
		AreaBreakdowns: make([]api.AreaBreakdown, 0, len(snapshot.Areas)),
	}

	var totalMinutesPerVisit float64

	for _, area := range snapshot.Areas {
		taskBreakdowns := make([]api.TaskBreakdown, 0, len(area.Tasks))
		var areaMinutes float64

		for _, task := range area.Tasks {
			var minutes float64
			var source api.TaskSource

			if task.CustomMinutes != nil {
				minutes = *task.CustomMinutes * area.Quantity
				source = api.SourceCustom
			} else {
				rate := ResolveRate(task.TaskCode, area.FloorTypeCode, area.BuildingTypeCode, snapshot.ProductionRates)
				if rate == nil {
					return nil, errors.NewRateNotFoundError(task.TaskCode)
				}

				switch rate.UnitCode {
				case api.UnitSqft1000:
					minutes = (area.SquareFootage / 1000) * rate.BaseMinutes
				default:
					// EACH — priced per fixture; missing counts mean zero
					minutes = float64(area.Fixtures[task.TaskCode]) * rate.BaseMinutes
				}

				minutes *= difficultyMultiplier(area.DifficultyCode)
				if task.UseAI {
					minutes *= 1 + rate.DefaultMLAdjustment
				}
				minutes *= area.Quantity
				source = api.SourceCalculated
			}

			taskBreakdowns = append(taskBreakdowns, api.TaskBreakdown{
				TaskCode:        task.TaskCode,
				Minutes:         minutes,
				FrequencyFactor: FrequencyVisitsPerWeek[task.FrequencyCode],
				Source:          source,
			})
			areaMinutes += minutes
		}

		clamped := areaMinutes
		if areaMinutes > 0 && areaMinutes < MinAreaMinutes {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%q clamped from %.1f to minimum %d min/visit", area.Name, areaMinutes, MinAreaMinutes))
			clamped = MinAreaMinutes
		} else if areaMinutes > MaxAreaMinutes {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%q clamped from %.0f to maximum %d min/visit", area.Name, areaMinutes, MaxAreaMinutes))
			clamped = MaxAreaMinutes
		}

		result.AreaBreakdowns = append(result.AreaBreakdowns, api.AreaBreakdown{
			AreaID:          area.AreaID,
			AreaName:        area.Name,
			MinutesPerVisit: clamped,
			TaskBreakdowns:  taskBreakdowns,
		})
		totalMinutesPerVisit += clamped
	}

	schedule := snapshot.Schedule
	visitsPerDay := math.Max(schedule.VisitsPerDay, 1)
	weeklyMinutes := totalMinutesPerVisit * schedule.DaysPerWeek * visitsPerDay
	monthlyMinutes := weeklyMinutes * WeeksPerMonth
	hoursPerVisit := totalMinutesPerVisit / 60

	result.TotalMinutesPerVisit = totalMinutesPerVisit
	result.WeeklyMinutes = weeklyMinutes
	result.MonthlyMinutes = monthlyMinutes
	result.MonthlyHours = monthlyMinutes / 60
	result.HoursPerVisit = hoursPerVisit

	if schedule.HoursPerShift > 0 {
		// Crew size answers "how many people finish one visit in one shift".
		result.CleanersNeeded = int(math.Ceil(hoursPerVisit / schedule.HoursPerShift))
	}
	result.LeadNeeded = schedule.LeadRequired || result.CleanersNeeded >= 3

	return result, nil
}

func difficultyMultiplier(code api.DifficultyCode) float64 {
	if m, ok := DifficultyMultipliers[code]; ok {
		return m
	}
	return 1.0
}
