package api

// CustomerTier segments supply customers for margin targeting.
type CustomerTier string

const (
	TierStrategic CustomerTier = "STRATEGIC"
	TierCore      CustomerTier = "CORE"
	TierBase      CustomerTier = "BASE"
)

// SupplyProductFamily buckets SKUs for margin targets.
type SupplyProductFamily string

const (
	FamilyPaperCommodities  SupplyProductFamily = "PAPER_COMMODITIES"
	FamilyHandSoapSanitizer SupplyProductFamily = "HAND_SOAP_SANITIZER"
	FamilyGeneralChemicals  SupplyProductFamily = "GENERAL_CHEMICALS"
	FamilySpecialtyFloor    SupplyProductFamily = "SPECIALTY_FLOOR"
)

// SupplyPricingMethod selects how sale price derives from landed cost.
type SupplyPricingMethod string

const (
	SupplyMethodMargin SupplyPricingMethod = "MARGIN"
	SupplyMethodMarkup SupplyPricingMethod = "MARKUP"
)

// SupplyMarginHealth classifies an item or order against margin guardrails.
type SupplyMarginHealth string

const (
	MarginHealthy    SupplyMarginHealth = "healthy"
	MarginCaution    SupplyMarginHealth = "caution"
	MarginBelowFloor SupplyMarginHealth = "below_floor"
)

// SupplyItemInput is one purchasable SKU line.
type SupplyItemInput struct {
	ID                string              `json:"id,omitempty"`
	Code              string              `json:"code"`
	Name              string              `json:"name"`
	ProductFamily     SupplyProductFamily `json:"product_family"`
	Unit              string              `json:"unit"`
	UnitCost          float64             `json:"unit_cost"`
	FreightPerUnit    float64             `json:"freight_per_unit"`
	ShrinkPct         float64             `json:"shrink_pct"`
	Quantity          float64             `json:"quantity"`
	OverrideMarginPct *float64            `json:"override_margin_pct,omitempty"`
}

// VolumeDiscountBracket is a quantity range with its own discount. Brackets
// apply incrementally: only the units inside a bracket get its rate. A nil
// MaxQuantity means the bracket is open-ended.
type VolumeDiscountBracket struct {
	MinQuantity float64  `json:"min_quantity"`
	MaxQuantity *float64 `json:"max_quantity"`
	DiscountPct float64  `json:"discount_pct"`
}

// VolumeDiscountConfig enables incremental volume discounts.
type VolumeDiscountConfig struct {
	Enabled  bool                    `json:"enabled"`
	Brackets []VolumeDiscountBracket `json:"brackets"`
}

// ManagementFeeMode selects flat vs percentage management fees.
type ManagementFeeMode string

const (
	FeeModeFlat     ManagementFeeMode = "FLAT"
	FeeModeSeparate ManagementFeeMode = "SEPARATE"
)

// ManagementFeeConfig configures the order-level management fee.
type ManagementFeeConfig struct {
	Enabled    bool              `json:"enabled"`
	Mode       ManagementFeeMode `json:"mode"`
	FeePct     float64           `json:"fee_pct"`
	FlatAmount float64           `json:"flat_amount"`
}

// AllowanceMethod selects the monthly-allowance estimate basis.
type AllowanceMethod string

const (
	AllowancePerPerson AllowanceMethod = "PER_PERSON"
	AllowancePerSqft   AllowanceMethod = "PER_SQFT"
)

// AllowanceConfig estimates a monthly supply allowance from an annual rate.
type AllowanceConfig struct {
	Method        AllowanceMethod `json:"method"`
	OccupantCount float64         `json:"occupant_count"`
	TotalSqft     float64         `json:"total_sqft"`
	Rate          float64         `json:"rate"`
}

// AllInclusiveConfig estimates the supply budget inside an all-inclusive
// cleaning rate.
type AllInclusiveConfig struct {
	MonthlyCleaningRate float64 `json:"monthly_cleaning_rate"`
	SupplyPct           float64 `json:"supply_pct"`
}

// SupplyPricingInput is the full input for one supply pricing run.
type SupplyPricingInput struct {
	Items             []SupplyItemInput    `json:"items"`
	CustomerTier      CustomerTier         `json:"customer_tier"`
	PricingMethod     SupplyPricingMethod  `json:"pricing_method"`
	ManagementFee     ManagementFeeConfig  `json:"management_fee"`
	VolumeDiscounts   VolumeDiscountConfig `json:"volume_discounts"`
	EmergencyDelivery bool                 `json:"emergency_delivery,omitempty"`
	Allowance         *AllowanceConfig     `json:"allowance,omitempty"`
	AllInclusive      *AllInclusiveConfig  `json:"all_inclusive,omitempty"`
}

// SupplyItemResult is one fully priced SKU line.
type SupplyItemResult struct {
	ID                  string              `json:"id"`
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	ProductFamily       SupplyProductFamily `json:"product_family"`
	Unit                string              `json:"unit"`
	UnitCost            float64             `json:"unit_cost"`
	FreightPerUnit      float64             `json:"freight_per_unit"`
	ShrinkPct           float64             `json:"shrink_pct"`
	Quantity            float64             `json:"quantity"`
	LandedCost          float64             `json:"landed_cost"`
	TargetMarginPct     float64             `json:"target_margin_pct"`
	ActualMarginPct     float64             `json:"actual_margin_pct"`
	SalePrice           float64             `json:"sale_price"`
	Contribution        float64             `json:"contribution"`
	LineTotal           float64             `json:"line_total"`
	VolumeDiscountPct   float64             `json:"volume_discount_pct"`
	DiscountedLineTotal float64             `json:"discounted_line_total"`
	ManagementFeeAmount float64             `json:"management_fee_amount"`
	MarginHealth        SupplyMarginHealth  `json:"margin_health"`
}

// SupplyPricingResult is the order-level pricing roll-up.
type SupplyPricingResult struct {
	Items              []SupplyItemResult `json:"items"`
	TotalCost          float64            `json:"total_cost"`
	TotalRevenue       float64            `json:"total_revenue"`
	TotalContribution  float64            `json:"total_contribution"`
	BlendedMarginPct   float64            `json:"blended_margin_pct"`
	BlendedMarkupPct   float64            `json:"blended_markup_pct"`
	TotalManagementFee float64            `json:"total_management_fee"`
	GrandTotal         float64            `json:"grand_total"`
	DeliveryFee        float64            `json:"delivery_fee"`
	MonthlyAllowance   *float64           `json:"monthly_allowance,omitempty"`
	AllInclusiveBudget *float64           `json:"all_inclusive_budget,omitempty"`
	Warnings           []string           `json:"warnings"`
	MarginHealth       SupplyMarginHealth `json:"margin_health"`
}
