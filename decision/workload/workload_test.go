package workload

import (
	"math"
	"reflect"
	"testing"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/errors"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func baseSnapshot() *api.BidSnapshot {
	return &api.BidSnapshot{
		Schedule: api.Schedule{DaysPerWeek: 5, VisitsPerDay: 1, HoursPerShift: 8},
		Areas: []api.Area{{
			AreaID:         "a1",
			Name:           "Open Office",
			FloorTypeCode:  "CARPET",
			DifficultyCode: api.DifficultyStandard,
			SquareFootage:  2000,
			Quantity:       1,
			Tasks:          []api.AreaTask{{TaskCode: "VACUUM", FrequencyCode: "DAILY"}},
		}},
		ProductionRates: []api.ProductionRate{rate("VACUUM", "", "", 15)},
	}
}

func TestCalculate_SqftTask(t *testing.T) {
	result, err := Calculate(baseSnapshot())
	if err != nil {
		t.Fatal(err)
	}

	// (2000/1000) * 15 = 30 min/visit
	nearlyEqual(t, "totalMinutesPerVisit", result.TotalMinutesPerVisit, 30)
	nearlyEqual(t, "weeklyMinutes", result.WeeklyMinutes, 150)
	nearlyEqual(t, "monthlyMinutes", result.MonthlyMinutes, 150*WeeksPerMonth)
	nearlyEqual(t, "monthlyHours", result.MonthlyHours, 150*WeeksPerMonth/60)
	nearlyEqual(t, "hoursPerVisit", result.HoursPerVisit, 0.5)

	if len(result.AreaBreakdowns) != 1 {
		t.Fatalf("expected 1 area breakdown, got %d", len(result.AreaBreakdowns))
	}
	task := result.AreaBreakdowns[0].TaskBreakdowns[0]
	if task.Source != api.SourceCalculated {
		t.Fatalf("task source = %q, want calculated", task.Source)
	}
	nearlyEqual(t, "frequencyFactor", task.FrequencyFactor, 5)
}

func TestCalculate_DifficultyMultiplier(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].DifficultyCode = api.DifficultyDifficult

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "difficult minutes", result.TotalMinutesPerVisit, 30*1.25)

	snapshot.Areas[0].DifficultyCode = api.DifficultyEasy
	result, err = Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "easy minutes", result.TotalMinutesPerVisit, 30*0.85)
}

func TestCalculate_MLAdjustmentAppliesOnlyWithUseAI(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.ProductionRates[0].DefaultMLAdjustment = 0.10

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "without use_ai", result.TotalMinutesPerVisit, 30)

	snapshot.Areas[0].Tasks[0].UseAI = true
	result, err = Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "with use_ai", result.TotalMinutesPerVisit, 33)
}

func TestCalculate_AreaQuantityScalesMinutes(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].Quantity = 3

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "minutes with quantity 3", result.TotalMinutesPerVisit, 90)
}

func TestCalculate_CustomMinutesOverrideRates(t *testing.T) {
	custom := 42.0
	snapshot := baseSnapshot()
	snapshot.Areas[0].Tasks[0].CustomMinutes = &custom
	// No catalog needed at all when every task is overridden.
	snapshot.ProductionRates = nil

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "custom minutes", result.TotalMinutesPerVisit, 42)
	if src := result.AreaBreakdowns[0].TaskBreakdowns[0].Source; src != api.SourceCustom {
		t.Fatalf("task source = %q, want custom", src)
	}
}

func TestCalculate_EachUnitUsesFixtureCounts(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].Fixtures = map[string]int{"CLEAN_TOILET": 4}
	snapshot.Areas[0].Tasks = []api.AreaTask{{TaskCode: "CLEAN_TOILET", FrequencyCode: "DAILY"}}
	snapshot.ProductionRates = []api.ProductionRate{{
		TaskCode: "CLEAN_TOILET", UnitCode: api.UnitEach, BaseMinutes: 5, IsActive: true,
	}}

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "fixture minutes", result.TotalMinutesPerVisit, 20)
}

func TestCalculate_EachUnitMissingFixtureCountIsZero(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].Fixtures = nil
	snapshot.Areas[0].Tasks = []api.AreaTask{{TaskCode: "CLEAN_TOILET", FrequencyCode: "DAILY"}}
	snapshot.ProductionRates = []api.ProductionRate{{
		TaskCode: "CLEAN_TOILET", UnitCode: api.UnitEach, BaseMinutes: 5, IsActive: true,
	}}

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	// Zero fixtures means zero minutes, and no minimum clamp kicks in.
	nearlyEqual(t, "minutes", result.TotalMinutesPerVisit, 0)
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestCalculate_MissingRateFails(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.ProductionRates = nil

	_, err := Calculate(snapshot)
	if err == nil {
		t.Fatal("expected error for missing production rate")
	}
	var bidErr *errors.BidError
	if !errors.As(err, &bidErr) || bidErr.Code != errors.ErrCodeRateNotFound {
		t.Fatalf("expected %s, got %v", errors.ErrCodeRateNotFound, err)
	}
	if bidErr.TaskCode != "VACUUM" {
		t.Fatalf("error task code = %q, want VACUUM", bidErr.TaskCode)
	}
}

func TestCalculate_MinimumClamp(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].SquareFootage = 500 // 7.5 min/visit

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "clamped minutes", result.TotalMinutesPerVisit, 15)
	want := `"Open Office" clamped from 7.5 to minimum 15 min/visit`
	if len(result.Warnings) != 1 || result.Warnings[0] != want {
		t.Fatalf("warnings = %v, want [%s]", result.Warnings, want)
	}
}

func TestCalculate_MaximumClamp(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].SquareFootage = 40000 // 600 min/visit

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "clamped minutes", result.TotalMinutesPerVisit, 480)
	want := `"Open Office" clamped from 600 to maximum 480 min/visit`
	if len(result.Warnings) != 1 || result.Warnings[0] != want {
		t.Fatalf("warnings = %v, want [%s]", result.Warnings, want)
	}
}

func TestCalculate_MultipleVisitsPerDay(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Schedule.VisitsPerDay = 2

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "weeklyMinutes", result.WeeklyMinutes, 30*5*2)

	// Zero visits per day still means at least one visit.
	snapshot.Schedule.VisitsPerDay = 0
	result, err = Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "weeklyMinutes with zero visits", result.WeeklyMinutes, 150)
}

func TestCalculate_CrewSizing(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Areas[0].SquareFootage = 16000 // 240 min = 4 h/visit
	snapshot.Schedule.HoursPerShift = 4

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if result.CleanersNeeded != 1 {
		t.Fatalf("cleaners = %d, want 1", result.CleanersNeeded)
	}
	if result.LeadNeeded {
		t.Fatal("lead should not be needed for a single cleaner")
	}

	snapshot.Schedule.HoursPerShift = 1.5 // ceil(4/1.5) = 3
	result, err = Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if result.CleanersNeeded != 3 {
		t.Fatalf("cleaners = %d, want 3", result.CleanersNeeded)
	}
	if !result.LeadNeeded {
		t.Fatal("three cleaners require a lead")
	}
}

func TestCalculate_LeadRequiredFlag(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Schedule.LeadRequired = true

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if !result.LeadNeeded {
		t.Fatal("explicit lead_required must force a lead")
	}
}

func TestCalculate_ZeroShiftHoursMeansNoCrewEstimate(t *testing.T) {
	snapshot := baseSnapshot()
	snapshot.Schedule.HoursPerShift = 0

	result, err := Calculate(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	if result.CleanersNeeded != 0 {
		t.Fatalf("cleaners = %d, want 0 when shift length is unknown", result.CleanersNeeded)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(baseSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Calculate(baseSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical snapshots produced different results")
	}
}
