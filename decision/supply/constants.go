package supply

import "github.com/Anderson413366/gleamops-sub002/pkg/api"

// Margin targets per product family and customer tier, midpoints of the
// pricing playbook ranges.
var MarginTargets = map[api.SupplyProductFamily]map[api.CustomerTier]float64{
	api.FamilyPaperCommodities:  {api.TierStrategic: 21.5, api.TierCore: 21.5, api.TierBase: 22.5},
	api.FamilyHandSoapSanitizer: {api.TierStrategic: 26.5, api.TierCore: 26.5, api.TierBase: 26.5},
	api.FamilyGeneralChemicals:  {api.TierStrategic: 28.5, api.TierCore: 28.5, api.TierBase: 30.5},
	api.FamilySpecialtyFloor:    {api.TierStrategic: 31, api.TierCore: 30.5, api.TierBase: 32.5},
}

// Guardrails.
const (
	// MarginFloorPct: no SKU below this margin without exec approval.
	MarginFloorPct = 20.0
	// BlendedTargetMin: warn when the blended order margin dips below this.
	BlendedTargetMin = 25.0
	// MinManagementFeePct: playbook minimum for percentage-mode fees.
	MinManagementFeePct = 3.0
)

// Management fee defaults.
const (
	DefaultManagementFeePct  = 5.0
	DefaultManagementFeeFlat = 125.0
)

// Monthly allowance annual-rate defaults.
const (
	DefaultAllowancePerPersonYear = 31.0
	DefaultAllowancePerSqftYear   = 0.07
)

func bracket(lo, hi, pct float64) api.VolumeDiscountBracket {
	return api.VolumeDiscountBracket{MinQuantity: lo, MaxQuantity: &hi, DiscountPct: pct}
}

// DefaultVolumeBrackets are the playbook's incremental quantity brackets.
var DefaultVolumeBrackets = []api.VolumeDiscountBracket{
	bracket(1, 4, 0),
	bracket(5, 10, 7.5),
	bracket(11, 24, 12.5),
	{MinQuantity: 25, MaxQuantity: nil, DiscountPct: 20},
}

// DeliveryFeeTier is an order-value range with its delivery fee. A nil
// MaxOrder means the tier is open-ended.
type DeliveryFeeTier struct {
	MinOrder float64  `json:"min_order"`
	MaxOrder *float64 `json:"max_order"`
	Fee      float64  `json:"fee"`
}

func tier(lo, hi, fee float64) DeliveryFeeTier {
	return DeliveryFeeTier{MinOrder: lo, MaxOrder: &hi, Fee: fee}
}

// DeliveryFeeTiers maps order value to delivery fee, matched as [min, max).
var DeliveryFeeTiers = []DeliveryFeeTier{
	tier(0, 100, 20),
	tier(100, 300, 10),
	{MinOrder: 300, MaxOrder: nil, Fee: 0},
}

// EmergencyDeliveryFee is flat and bypasses tier lookup entirely.
const EmergencyDeliveryFee = 25.0

// CategoryToFamily maps catalog category strings onto product families.
var CategoryToFamily = map[string]api.SupplyProductFamily{
	"Toilet Paper":        api.FamilyPaperCommodities,
	"Paper Towels":        api.FamilyPaperCommodities,
	"Facial Tissue":       api.FamilyPaperCommodities,
	"Seat Covers":         api.FamilyPaperCommodities,
	"Paper":               api.FamilyPaperCommodities,
	"Hand Soap":           api.FamilyHandSoapSanitizer,
	"Hand Sanitizer":      api.FamilyHandSoapSanitizer,
	"Soap":                api.FamilyHandSoapSanitizer,
	"Sanitizer":           api.FamilyHandSoapSanitizer,
	"All-Purpose Cleaner": api.FamilyGeneralChemicals,
	"Glass Cleaner":       api.FamilyGeneralChemicals,
	"Disinfectant":        api.FamilyGeneralChemicals,
	"Bathroom Cleaner":    api.FamilyGeneralChemicals,
	"Bowl Cleaner":        api.FamilyGeneralChemicals,
	"Chemical":            api.FamilyGeneralChemicals,
	"Chemicals":           api.FamilyGeneralChemicals,
	"Degreaser":           api.FamilyGeneralChemicals,
	"Floor Finish":        api.FamilySpecialtyFloor,
	"Floor Pads":          api.FamilySpecialtyFloor,
	"Stripper":            api.FamilySpecialtyFloor,
	"Floor Care":          api.FamilySpecialtyFloor,
}

// MapCategoryToFamily maps a catalog category to a product family,
// defaulting to general chemicals for unknown categories.
func MapCategoryToFamily(category string) api.SupplyProductFamily {
	if family, ok := CategoryToFamily[category]; ok {
		return family
	}
	return api.FamilyGeneralChemicals
}

// AnchorSKUs are the pre-loaded quick-quote lines.
var AnchorSKUs = []api.SupplyItemInput{
	{Code: "PP-TIS-001", Name: "Generic 2-ply 96 rolls/case", ProductFamily: api.FamilyPaperCommodities, Unit: "case", UnitCost: 55.40, ShrinkPct: 2, Quantity: 1},
	{Code: "PP-TOW-004", Name: "enMotion 800ft 6 rolls/case", ProductFamily: api.FamilyPaperCommodities, Unit: "case", UnitCost: 95.66, ShrinkPct: 2, Quantity: 1},
	{Code: "PP-TOW-006", Name: "Pacific Blue Soft Pull 400ft 6 rolls/case", ProductFamily: api.FamilyPaperCommodities, Unit: "case", UnitCost: 46.23, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-GEN-001", Name: "Spartan APC 1 gal", ProductFamily: api.FamilyGeneralChemicals, Unit: "gal", UnitCost: 12.50, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-GLS-001", Name: "Glass Cleaner RTU 1 gal", ProductFamily: api.FamilyGeneralChemicals, Unit: "gal", UnitCost: 9.75, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-RST-001", Name: "Disinfectant 1 gal", ProductFamily: api.FamilyGeneralChemicals, Unit: "gal", UnitCost: 18.95, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-RST-005", Name: "Bowl Cleaner 32oz 12/pack", ProductFamily: api.FamilyGeneralChemicals, Unit: "pack", UnitCost: 38.74, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-FLR-003", Name: "iShine Floor Finish 5 gal", ProductFamily: api.FamilySpecialtyFloor, Unit: "5gal", UnitCost: 107.45, ShrinkPct: 2, Quantity: 1},
	{Code: "CL-FLR-006", Name: "Niagara Burnish Pad 20\" 5/pack", ProductFamily: api.FamilySpecialtyFloor, Unit: "pack", UnitCost: 21.69, ShrinkPct: 2, Quantity: 1},
	{Code: "HC-SOP-003", Name: "GOJO Green-Seal Foam Soap 6/pack", ProductFamily: api.FamilyHandSoapSanitizer, Unit: "pack", UnitCost: 47.00, ShrinkPct: 2, Quantity: 1},
	{Code: "HC-SAN-005", Name: "Purell Foam 1200ml", ProductFamily: api.FamilyHandSoapSanitizer, Unit: "each", UnitCost: 85.25, ShrinkPct: 2, Quantity: 1},
	{Code: "HC-SAN-004", Name: "Purell 800ml 12/pack", ProductFamily: api.FamilyHandSoapSanitizer, Unit: "pack", UnitCost: 124.56, ShrinkPct: 2, Quantity: 1},
}
