package pricing

import (
	"math"
	"testing"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func ptr(v float64) *float64 { return &v }

func pricingSnapshot() *api.BidSnapshot {
	return &api.BidSnapshot{
		Schedule:   api.Schedule{DaysPerWeek: 5, VisitsPerDay: 1, HoursPerShift: 8, SupervisorHoursWeek: 2},
		LaborRates: api.LaborRates{CleanerRate: 20, SupervisorRate: 30},
		Burden:     api.Burden{EmployerTaxPct: 8, WorkersCompPct: 4, InsurancePct: 2, OtherPct: 1},
		Overhead:   api.Overhead{MonthlyOverheadAllocated: 100},
		Supplies:   api.Supplies{AllowancePerSqftMonthly: 0.01, ConsumablesMonthly: 50},
		Equipment:  []api.EquipmentItem{{Name: "Auto Scrubber", MonthlyDepreciation: 30}},
		Areas: []api.Area{{
			AreaID:         "a1",
			Name:           "Open Office",
			DifficultyCode: api.DifficultyStandard,
			SquareFootage:  2000,
			Quantity:       1,
		}},
		PricingStrategy: api.PricingStrategy{Method: api.MethodCostPlus},
	}
}

func workloadFor(monthlyHours float64) *api.WorkloadResult {
	return &api.WorkloadResult{MonthlyHours: monthlyHours}
}

func TestCalculate_CostBuildup(t *testing.T) {
	result, err := Calculate(pricingSnapshot(), workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}

	// labor 100h * $20 = 2000, burden 15% -> 2300
	nearlyEqual(t, "burdenedLaborCost", result.BurdenedLaborCost, 2300)
	// allowance 2000 sqft * 0.01 + consumables 50
	nearlyEqual(t, "suppliesCost", result.SuppliesCost, 70)
	nearlyEqual(t, "equipmentCost", result.EquipmentCost, 30)
	nearlyEqual(t, "overheadCost", result.OverheadCost, 100)
	nearlyEqual(t, "totalMonthlyCost", result.TotalMonthlyCost, 2500)
	// cost-plus default 20%
	nearlyEqual(t, "recommendedPrice", result.RecommendedPrice, 3000)
	nearlyEqual(t, "burdenMultiplier", result.Explanation.BurdenMultiplier, 1.15)
	nearlyEqual(t, "effectiveHourlyRevenue", result.Explanation.EffectiveHourlyRevenue, 30)

	if result.Explanation.PricePerSqft == nil {
		t.Fatal("price per sqft should be present when sqft > 0")
	}
	nearlyEqual(t, "pricePerSqft", *result.Explanation.PricePerSqft, 1.5)
}

func TestCalculate_SupervisorHoursWhenLeadNeeded(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Burden = api.Burden{}

	wl := workloadFor(100)
	wl.LeadNeeded = true

	result, err := Calculate(snapshot, wl)
	if err != nil {
		t.Fatal(err)
	}
	// 2000 labor + 2h/wk * 4.33 * $30 supervisor
	nearlyEqual(t, "laborWithSupervisor", result.BurdenedLaborCost, 2000+2*4.33*30)
}

func TestRecommendPrice_Strategies(t *testing.T) {
	const cost = 1800.0

	cases := []struct {
		name     string
		strategy api.PricingStrategy
		want     float64
	}{
		{"cost plus 25", api.PricingStrategy{Method: api.MethodCostPlus, CostPlusPct: ptr(25)}, 2250},
		{"cost plus default 20", api.PricingStrategy{Method: api.MethodCostPlus}, 2160},
		{"target margin default 25", api.PricingStrategy{Method: api.MethodTargetMargin}, 2400},
		{"target margin 40", api.PricingStrategy{Method: api.MethodTargetMargin, TargetMarginPct: ptr(40)}, 3000},
		{"market rate", api.PricingStrategy{Method: api.MethodMarketRate, MarketPriceMonthly: ptr(3000)}, 3000},
		{"market rate without reference falls back to cost", api.PricingStrategy{Method: api.MethodMarketRate}, cost},
		{"hybrid clamps target to market band", api.PricingStrategy{Method: api.MethodHybrid, MarketPriceMonthly: ptr(3000)}, 2700},
		{"hybrid inside band keeps target", api.PricingStrategy{Method: api.MethodHybrid, MarketPriceMonthly: ptr(2400)}, 2400},
		{"hybrid without market keeps target", api.PricingStrategy{Method: api.MethodHybrid}, 2400},
		{"hybrid clamps down when target above band", api.PricingStrategy{Method: api.MethodHybrid, TargetMarginPct: ptr(50), MarketPriceMonthly: ptr(3000)}, 3300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nearlyEqual(t, "price", recommendPrice(tc.strategy, cost), tc.want)
		})
	}
}

func TestRecommendPrice_ExplicitZeroIsNotDefaulted(t *testing.T) {
	zeroPlus := api.PricingStrategy{Method: api.MethodCostPlus, CostPlusPct: ptr(0)}
	nearlyEqual(t, "cost plus 0", recommendPrice(zeroPlus, 1800), 1800)

	zeroMargin := api.PricingStrategy{Method: api.MethodTargetMargin, TargetMarginPct: ptr(0)}
	nearlyEqual(t, "target margin 0", recommendPrice(zeroMargin, 1800), 1800)
}

func TestCalculate_MarginPct(t *testing.T) {
	result, err := Calculate(pricingSnapshot(), workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	// (3000 - 2500) / 3000, rounded for presentation
	nearlyEqual(t, "effectiveMarginPct", result.EffectiveMarginPct, 16.67)
}

func TestCalculate_ZeroSqftAndZeroHours(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Areas = nil

	result, err := Calculate(snapshot, workloadFor(0))
	if err != nil {
		t.Fatal(err)
	}
	if result.Explanation.PricePerSqft != nil {
		t.Fatal("price per sqft must be absent without square footage")
	}
	nearlyEqual(t, "effectiveHourlyRevenue", result.Explanation.EffectiveHourlyRevenue, 0)
}

func TestCalculate_CrewReplacesCleanerRate(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Burden = api.Burden{}
	snapshot.Crew = []api.CrewMember{
		{Role: "cleaner", HourlyRate: 18, WeeklyHours: 30},
		{Role: "cleaner", HourlyRate: 22, WeeklyHours: 10},
	}

	result, err := Calculate(snapshot, workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	// weighted wage (18*30 + 22*10) / 40 = 19
	if result.Explanation.WeightedAvgWage == nil {
		t.Fatal("weighted wage detail missing")
	}
	nearlyEqual(t, "weightedAvgWage", *result.Explanation.WeightedAvgWage, 19)
	nearlyEqual(t, "cleanerRate", result.Explanation.CleanerRate, 19)
	nearlyEqual(t, "burdenedLaborCost", result.BurdenedLaborCost, 1900)
}

func TestCalculate_DayPorterAddsToLaborBeforeBurden(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Burden = api.Burden{EmployerTaxPct: 10}
	snapshot.DayPorter = &api.DayPorterConfig{Enabled: true, DaysPerWeek: 5, HoursPerDay: 4, HourlyRate: 18}

	result, err := Calculate(snapshot, workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	// porter 5*4*4.33 = 86.6h -> $1558.80/mo, burdened with the crew
	porterCost := 1558.80
	nearlyEqual(t, "dayPorterCost", result.Explanation.DayPorter.MonthlyCost, porterCost)
	nearlyEqual(t, "burdenedLaborCost", result.BurdenedLaborCost, (2000+porterCost)*1.10)
}

func TestCalculate_DisabledDayPorterIsIgnored(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Burden = api.Burden{}
	snapshot.DayPorter = &api.DayPorterConfig{Enabled: false, DaysPerWeek: 5, HoursPerDay: 4, HourlyRate: 18}

	result, err := Calculate(snapshot, workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	if result.Explanation.DayPorter != nil {
		t.Fatal("disabled day porter must not appear in the explanation")
	}
	nearlyEqual(t, "burdenedLaborCost", result.BurdenedLaborCost, 2000)
}

func TestCalculate_ItemizedConsumablesReplaceFlatFigure(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.ConsumableItems = []api.ConsumableItem{
		{Name: "Paper Towels", Category: api.ConsumablePaper, UnitCost: 0.5, UnitsPerOccupantPerMonth: 2, OccupantCount: 100},
	}

	result, err := Calculate(snapshot, workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	// itemized 100 replaces the flat 50
	nearlyEqual(t, "consumables", result.Explanation.SuppliesBreakdown.Consumables, 100)
	nearlyEqual(t, "suppliesCost", result.SuppliesCost, 20+100)
	if result.Explanation.ConsumablesDetail == nil {
		t.Fatal("consumables detail missing")
	}
}

func TestCalculate_SpecializationAnnotatesExplanation(t *testing.T) {
	snapshot := pricingSnapshot()
	snapshot.Specialization = &api.Specialization{
		Type: api.BidTypeDisinfecting,
		Disinfecting: &api.DisinfectingInputs{
			Method:  api.DisinfectSpray,
			Density: api.DensityStandard,
		},
	}

	base, err := Calculate(pricingSnapshot(), workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}
	result, err := Calculate(snapshot, workloadFor(100))
	if err != nil {
		t.Fatal(err)
	}

	if result.Explanation.Specialization == nil {
		t.Fatal("specialization summary missing")
	}
	// (2000/1000) * 15 = 30 extra minutes reported
	nearlyEqual(t, "extraMinutes", result.Explanation.Specialization.ExtraMinutesPerVisit, 30)
	// Annotation only: the price itself must not move.
	nearlyEqual(t, "recommendedPrice", result.RecommendedPrice, base.RecommendedPrice)
}
