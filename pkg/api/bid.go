// Package api defines the value objects exchanged with the calculation
// engines. Callers hydrate these from persisted records; the engines never
// touch storage themselves.
package api

// DifficultyCode grades how hard an area is to service.
type DifficultyCode string

const (
	DifficultyEasy      DifficultyCode = "EASY"
	DifficultyStandard  DifficultyCode = "STANDARD"
	DifficultyDifficult DifficultyCode = "DIFFICULT"
)

// RateUnitCode describes what one unit of a production rate covers.
type RateUnitCode string

const (
	// UnitSqft1000 prices base minutes per 1000 square feet.
	UnitSqft1000 RateUnitCode = "SQFT_1000"
	// UnitEach prices base minutes per fixture.
	UnitEach RateUnitCode = "EACH"
)

// PricingMethod selects the bid pricing strategy.
type PricingMethod string

const (
	MethodCostPlus     PricingMethod = "COST_PLUS"
	MethodTargetMargin PricingMethod = "TARGET_MARGIN"
	MethodMarketRate   PricingMethod = "MARKET_RATE"
	MethodHybrid       PricingMethod = "HYBRID"
)

// Schedule describes the visit cadence for the contract.
type Schedule struct {
	DaysPerWeek         float64 `json:"days_per_week"`
	VisitsPerDay        float64 `json:"visits_per_day"`
	HoursPerShift       float64 `json:"hours_per_shift"`
	LeadRequired        bool    `json:"lead_required"`
	SupervisorHoursWeek float64 `json:"supervisor_hours_week"`
}

// LaborRates carries hourly rates per role.
type LaborRates struct {
	CleanerRate    float64 `json:"cleaner_rate"`
	LeadRate       float64 `json:"lead_rate"`
	SupervisorRate float64 `json:"supervisor_rate"`
}

// Burden is employer-side cost loading on top of raw wages. The four
// components are additive percentages combined into one multiplier.
type Burden struct {
	EmployerTaxPct float64 `json:"employer_tax_pct"`
	WorkersCompPct float64 `json:"workers_comp_pct"`
	InsurancePct   float64 `json:"insurance_pct"`
	OtherPct       float64 `json:"other_pct"`
}

// Overhead is a flat monthly allocation.
type Overhead struct {
	MonthlyOverheadAllocated float64 `json:"monthly_overhead_allocated"`
}

// Supplies configures the per-sqft allowance plus flat consumables.
type Supplies struct {
	AllowancePerSqftMonthly float64 `json:"allowance_per_sqft_monthly"`
	ConsumablesMonthly      float64 `json:"consumables_monthly"`
}

// EquipmentItem is a named item with its monthly depreciation.
type EquipmentItem struct {
	Name                string  `json:"name"`
	MonthlyDepreciation float64 `json:"monthly_depreciation"`
}

// AreaTask is one task assigned to an area. CustomMinutes, when set, is
// authoritative and bypasses production rate resolution entirely.
type AreaTask struct {
	TaskCode      string   `json:"task_code"`
	FrequencyCode string   `json:"frequency_code"`
	UseAI         bool     `json:"use_ai,omitempty"`
	CustomMinutes *float64 `json:"custom_minutes,omitempty"`
}

// Area is one cleanable area of the site. Empty floor/building codes mean
// the area has no declared type; Quantity repeats identical areas.
type Area struct {
	AreaID           string         `json:"area_id"`
	Name             string         `json:"name"`
	AreaTypeCode     string         `json:"area_type_code,omitempty"`
	FloorTypeCode    string         `json:"floor_type_code,omitempty"`
	BuildingTypeCode string         `json:"building_type_code,omitempty"`
	DifficultyCode   DifficultyCode `json:"difficulty_code"`
	SquareFootage    float64        `json:"square_footage"`
	Quantity         float64        `json:"quantity"`
	Fixtures         map[string]int `json:"fixtures,omitempty"`
	Tasks            []AreaTask     `json:"tasks"`
}

// ProductionRate is a catalog entry: base minutes to perform a task per
// unit, optionally specific to a floor and/or building type.
type ProductionRate struct {
	TaskCode            string       `json:"task_code"`
	FloorTypeCode       string       `json:"floor_type_code,omitempty"`
	BuildingTypeCode    string       `json:"building_type_code,omitempty"`
	UnitCode            RateUnitCode `json:"unit_code"`
	BaseMinutes         float64      `json:"base_minutes"`
	DefaultMLAdjustment float64      `json:"default_ml_adjustment"`
	IsActive            bool         `json:"is_active"`
}

// PricingStrategy selects one of the four pricing methods. Nil percentage
// fields fall back to the method defaults (cost-plus 20, target margin 25).
type PricingStrategy struct {
	Method             PricingMethod `json:"method"`
	TargetMarginPct    *float64      `json:"target_margin_pct,omitempty"`
	CostPlusPct        *float64      `json:"cost_plus_pct,omitempty"`
	MarketPriceMonthly *float64      `json:"market_price_monthly,omitempty"`
}

// CrewMember is one crew rate/hours pair for the weighted wage calculator.
type CrewMember struct {
	Role        string  `json:"role"`
	HourlyRate  float64 `json:"hourly_rate"`
	WeeklyHours float64 `json:"weekly_hours"`
}

// DayPorterConfig is the day-porter add-on schedule.
type DayPorterConfig struct {
	Enabled     bool    `json:"enabled"`
	DaysPerWeek float64 `json:"days_per_week"`
	HoursPerDay float64 `json:"hours_per_day"`
	HourlyRate  float64 `json:"hourly_rate"`
}

// ConsumableCategory buckets consumable items.
type ConsumableCategory string

const (
	ConsumablePaper    ConsumableCategory = "PAPER"
	ConsumableSoap     ConsumableCategory = "SOAP"
	ConsumableLiner    ConsumableCategory = "LINER"
	ConsumableChemical ConsumableCategory = "CHEMICAL"
	ConsumableOther    ConsumableCategory = "OTHER"
)

// ConsumableItem is an occupancy-driven consumable line.
type ConsumableItem struct {
	Name                     string             `json:"name"`
	Category                 ConsumableCategory `json:"category"`
	UnitCost                 float64            `json:"unit_cost"`
	UnitsPerOccupantPerMonth float64            `json:"units_per_occupant_per_month"`
	OccupantCount            float64            `json:"occupant_count"`
}

// BidSnapshot is the fully hydrated input for one bid calculation. It is
// immutable for the duration of the call.
type BidSnapshot struct {
	BidVersionID    string           `json:"bid_version_id"`
	ServiceCode     string           `json:"service_code,omitempty"`
	Schedule        Schedule         `json:"schedule"`
	LaborRates      LaborRates       `json:"labor_rates"`
	Burden          Burden           `json:"burden"`
	Overhead        Overhead         `json:"overhead"`
	Supplies        Supplies         `json:"supplies"`
	Equipment       []EquipmentItem  `json:"equipment"`
	Areas           []Area           `json:"areas"`
	ProductionRates []ProductionRate `json:"production_rates"`
	PricingStrategy PricingStrategy  `json:"pricing_strategy"`

	// Optional extensions; zero values leave the base pipeline untouched.
	Specialization  *Specialization  `json:"specialization,omitempty"`
	Crew            []CrewMember     `json:"crew,omitempty"`
	DayPorter       *DayPorterConfig `json:"day_porter,omitempty"`
	ConsumableItems []ConsumableItem `json:"consumable_items,omitempty"`
}

// TotalSquareFootage sums sqft across areas, honoring area quantity.
func (s *BidSnapshot) TotalSquareFootage() float64 {
	var total float64
	for _, a := range s.Areas {
		total += a.SquareFootage * a.Quantity
	}
	return total
}

// TaskSource tags how a task's minutes were produced.
type TaskSource string

const (
	SourceCustom     TaskSource = "custom"
	SourceCalculated TaskSource = "calculated"
)

// TaskBreakdown is the per-task audit row in a workload result.
type TaskBreakdown struct {
	TaskCode        string     `json:"task_code"`
	Minutes         float64    `json:"minutes"`
	FrequencyFactor float64    `json:"frequency_factor"`
	Source          TaskSource `json:"source"`
}

// AreaBreakdown is the per-area audit row in a workload result.
type AreaBreakdown struct {
	AreaID          string          `json:"area_id"`
	AreaName        string          `json:"area_name"`
	MinutesPerVisit float64         `json:"minutes_per_visit"`
	TaskBreakdowns  []TaskBreakdown `json:"task_breakdowns"`
}

// WorkloadResult sizes the labor required to service the contract.
type WorkloadResult struct {
	TotalMinutesPerVisit float64         `json:"total_minutes_per_visit"`
	WeeklyMinutes        float64         `json:"weekly_minutes"`
	MonthlyMinutes       float64         `json:"monthly_minutes"`
	MonthlyHours         float64         `json:"monthly_hours"`
	HoursPerVisit        float64         `json:"hours_per_visit"`
	CleanersNeeded       int             `json:"cleaners_needed"`
	LeadNeeded           bool            `json:"lead_needed"`
	Warnings             []string        `json:"warnings"`
	AreaBreakdowns       []AreaBreakdown `json:"area_breakdowns"`
}

// BurdenComponents echoes the burden inputs inside the explanation.
type BurdenComponents struct {
	EmployerTaxPct float64 `json:"employer_tax_pct"`
	WorkersCompPct float64 `json:"workers_comp_pct"`
	InsurancePct   float64 `json:"insurance_pct"`
	OtherPct       float64 `json:"other_pct"`
}

// SuppliesBreakdown splits supplies cost into allowance and consumables.
type SuppliesBreakdown struct {
	Allowance   float64 `json:"allowance"`
	Consumables float64 `json:"consumables"`
}

// WeightedWageResult is the crew-weighted average hourly rate.
type WeightedWageResult struct {
	WeightedAvgRate  float64      `json:"weighted_avg_rate"`
	TotalWeeklyHours float64      `json:"total_weekly_hours"`
	CrewMembers      []CrewMember `json:"crew_members"`
}

// DayPorterResult is the day-porter add-on cost.
type DayPorterResult struct {
	MonthlyHours float64 `json:"monthly_hours"`
	MonthlyCost  float64 `json:"monthly_cost"`
}

// ConsumableLineResult is one priced consumable line.
type ConsumableLineResult struct {
	ConsumableItem
	MonthlyUnits float64 `json:"monthly_units"`
	MonthlyCost  float64 `json:"monthly_cost"`
}

// ConsumablesResult is the itemized consumables total.
type ConsumablesResult struct {
	Items        []ConsumableLineResult `json:"items"`
	TotalMonthly float64                `json:"total_monthly"`
}

// SpecializationSummary reports bid-type adjustments inside the explanation.
type SpecializationSummary struct {
	BidType              BidTypeCode        `json:"bid_type"`
	ExtraMinutesPerVisit float64            `json:"extra_minutes_per_visit"`
	WorkloadMultiplier   float64            `json:"workload_multiplier"`
	Adjustments          map[string]float64 `json:"adjustments"`
}

// PricingExplanation exposes every intermediate figure used to price a bid.
type PricingExplanation struct {
	LaborHoursMonthly      float64                `json:"labor_hours_monthly"`
	CleanerRate            float64                `json:"cleaner_rate"`
	BurdenMultiplier       float64                `json:"burden_multiplier"`
	BurdenComponents       BurdenComponents       `json:"burden_components"`
	SuppliesBreakdown      SuppliesBreakdown      `json:"supplies_breakdown"`
	EquipmentTotal         float64                `json:"equipment_total"`
	OverheadAllocated      float64                `json:"overhead_allocated"`
	PricePerSqft           *float64               `json:"price_per_sqft"`
	EffectiveHourlyRevenue float64                `json:"effective_hourly_revenue"`
	WeightedAvgWage        *float64               `json:"weighted_avg_wage,omitempty"`
	DayPorter              *DayPorterResult       `json:"day_porter,omitempty"`
	ConsumablesDetail      *ConsumablesResult     `json:"consumables_detail,omitempty"`
	Specialization         *SpecializationSummary `json:"specialization_adjustments,omitempty"`
}

// PricingResult is the recommended monthly price with its cost basis.
type PricingResult struct {
	PricingMethod      PricingMethod      `json:"pricing_method"`
	BurdenedLaborCost  float64            `json:"burdened_labor_cost"`
	SuppliesCost       float64            `json:"supplies_cost"`
	EquipmentCost      float64            `json:"equipment_cost"`
	OverheadCost       float64            `json:"overhead_cost"`
	TotalMonthlyCost   float64            `json:"total_monthly_cost"`
	RecommendedPrice   float64            `json:"recommended_price"`
	EffectiveMarginPct float64            `json:"effective_margin_pct"`
	Explanation        PricingExplanation `json:"explanation"`
}

// BidResult pairs the workload and pricing outputs of one engine run.
type BidResult struct {
	Workload WorkloadResult `json:"workload"`
	Pricing  PricingResult  `json:"pricing"`
}
