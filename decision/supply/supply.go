// Package supply prices janitorial supply order lines: landed cost, sale
// price under margin or markup, incremental volume discounts, delivery and
// management fees, and margin-health guardrails. Violations surface as
// warning strings, never as errors, so callers can still display pricing
// that breaks policy.
package supply

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/money"
)

// LandedCost is the true delivered unit cost: unit cost plus freight plus
// shrink loading.
func LandedCost(item api.SupplyItemInput) float64 {
	return money.Round2(item.UnitCost + item.FreightPerUnit + item.UnitCost*(item.ShrinkPct/100))
}

// SalePrice derives a sale price from landed cost. MARGIN divides by the
// complement; a degenerate pct >= 100 returns landed cost unchanged.
// MARKUP multiplies cost up.
func SalePrice(landedCost float64, method api.SupplyPricingMethod, pct float64) float64 {
	if method == api.SupplyMethodMargin {
		if pct >= 100 {
			return landedCost
		}
		return money.Round2(landedCost / (1 - pct/100))
	}
	return money.Round2(landedCost * (1 + pct/100))
}

// MarginToMarkup converts a margin percentage (profit over sale price) to a
// markup percentage (profit over cost). Degenerate inputs >= 100 return 0.
func MarginToMarkup(marginPct float64) float64 {
	if marginPct >= 100 {
		return 0
	}
	return money.Round2(marginPct / (100 - marginPct) * 100)
}

// MarkupToMargin converts a markup percentage to a margin percentage.
// Degenerate inputs <= -100 return 0.
func MarkupToMargin(markupPct float64) float64 {
	if markupPct <= -100 {
		return 0
	}
	return money.Round2(markupPct / (100 + markupPct) * 100)
}

// VolumeDiscountOutcome is the discounted line total with its effective
// blended discount.
type VolumeDiscountOutcome struct {
	Total                float64 `json:"total"`
	EffectiveDiscountPct float64 `json:"effective_discount_pct"`
}

// VolumeDiscount allocates quantity to brackets incrementally: units fill
// the lowest bracket first and each bracket's discount applies only to the
// units inside its range. Quantity beyond the last bracket continues at the
// last bracket's rate.
func VolumeDiscount(qty, unitPrice float64, brackets []api.VolumeDiscountBracket) VolumeDiscountOutcome {
	if qty <= 0 || len(brackets) == 0 {
		return VolumeDiscountOutcome{Total: money.Round2(qty * unitPrice)}
	}

	sorted := make([]api.VolumeDiscountBracket, len(brackets))
	copy(sorted, brackets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinQuantity < sorted[j].MinQuantity })

	var total float64
	remaining := qty

	for _, b := range sorted {
		if remaining <= 0 {
			break
		}
		bracketSize := math.Inf(1)
		if b.MaxQuantity != nil {
			bracketSize = *b.MaxQuantity - b.MinQuantity + 1
		}
		units := math.Min(remaining, bracketSize)
		total += units * unitPrice * (1 - b.DiscountPct/100)
		remaining -= units
	}
	if remaining > 0 {
		last := sorted[len(sorted)-1]
		total += remaining * unitPrice * (1 - last.DiscountPct/100)
	}

	total = money.Round2(total)
	outcome := VolumeDiscountOutcome{Total: total}
	if fullPrice := qty * unitPrice; fullPrice > 0 {
		outcome.EffectiveDiscountPct = money.Round2((fullPrice - total) / fullPrice * 100)
	}
	return outcome
}

// DeliveryFee matches the order value into [min, max) fee tiers. The
// emergency flag bypasses tier lookup for a flat fee.
func DeliveryFee(orderValue float64, isEmergency bool) float64 {
	if isEmergency {
		return EmergencyDeliveryFee
	}
	for _, t := range DeliveryFeeTiers {
		upper := math.Inf(1)
		if t.MaxOrder != nil {
			upper = *t.MaxOrder
		}
		if orderValue >= t.MinOrder && orderValue < upper {
			return t.Fee
		}
	}
	return 0
}

// PriceItem prices a single SKU line against a tier, method, and optional
// volume brackets. managementFeePct allocates a percentage-mode management
// fee onto the item's discounted revenue; pass 0 for flat or disabled fees.
func PriceItem(item api.SupplyItemInput, tier api.CustomerTier, method api.SupplyPricingMethod, managementFeePct float64, brackets []api.VolumeDiscountBracket) api.SupplyItemResult {
	landedCost := LandedCost(item)

	targetMarginPct := MarginTargets[item.ProductFamily][tier]
	actualMarginPct := targetMarginPct
	if item.OverrideMarginPct != nil {
		actualMarginPct = *item.OverrideMarginPct
	}

	salePrice := SalePrice(landedCost, method, actualMarginPct)
	contribution := money.Round2(salePrice - landedCost)
	lineTotal := money.Round2(salePrice * item.Quantity)

	var volumeDiscountPct float64
	discountedLineTotal := lineTotal
	if len(brackets) > 0 && item.Quantity > 0 {
		outcome := VolumeDiscount(item.Quantity, salePrice, brackets)
		discountedLineTotal = outcome.Total
		volumeDiscountPct = outcome.EffectiveDiscountPct
	}

	managementFeeAmount := money.Round2(discountedLineTotal * (managementFeePct / 100))

	marginHealth := api.MarginHealthy
	if actualMarginPct < MarginFloorPct {
		marginHealth = api.MarginBelowFloor
	} else if actualMarginPct < targetMarginPct {
		marginHealth = api.MarginCaution
	}

	id := item.ID
	if id == "" {
		id = item.Code
	}

	return api.SupplyItemResult{
		ID:                  id,
		Code:                item.Code,
		Name:                item.Name,
		ProductFamily:       item.ProductFamily,
		Unit:                item.Unit,
		UnitCost:            item.UnitCost,
		FreightPerUnit:      item.FreightPerUnit,
		ShrinkPct:           item.ShrinkPct,
		Quantity:            item.Quantity,
		LandedCost:          landedCost,
		TargetMarginPct:     targetMarginPct,
		ActualMarginPct:     actualMarginPct,
		SalePrice:           salePrice,
		Contribution:        contribution,
		LineTotal:           lineTotal,
		VolumeDiscountPct:   volumeDiscountPct,
		DiscountedLineTotal: discountedLineTotal,
		ManagementFeeAmount: managementFeeAmount,
		MarginHealth:        marginHealth,
	}
}

// Calculate prices a full supply order.
func Calculate(input *api.SupplyPricingInput) *api.SupplyPricingResult {
	warnings := []string{}

	var managementFeePct float64
	if input.ManagementFee.Enabled && input.ManagementFee.Mode != api.FeeModeFlat {
		managementFeePct = input.ManagementFee.FeePct
	}

	var brackets []api.VolumeDiscountBracket
	if input.VolumeDiscounts.Enabled {
		brackets = input.VolumeDiscounts.Brackets
	}

	items := make([]api.SupplyItemResult, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, PriceItem(item, input.CustomerTier, input.PricingMethod, managementFeePct, brackets))
	}

	// Aggregate with exact decimal sums; floats only re-enter after rounding.
	cost := decimal.Zero
	revenue := decimal.Zero
	for _, item := range items {
		cost = cost.Add(decimal.NewFromFloat(item.LandedCost).Mul(decimal.NewFromFloat(item.Quantity)))
		revenue = revenue.Add(decimal.NewFromFloat(item.DiscountedLineTotal))
	}
	totalCost, _ := cost.Round(2).Float64()
	totalRevenue, _ := revenue.Round(2).Float64()
	totalContribution := money.Round2(totalRevenue - totalCost)

	var blendedMarginPct, blendedMarkupPct float64
	if totalRevenue > 0 {
		blendedMarginPct = money.Round2(totalContribution / totalRevenue * 100)
	}
	if totalCost > 0 {
		blendedMarkupPct = money.Round2(totalContribution / totalCost * 100)
	}

	var totalManagementFee float64
	if input.ManagementFee.Enabled {
		if input.ManagementFee.Mode == api.FeeModeFlat {
			totalManagementFee = input.ManagementFee.FlatAmount
		} else {
			fee := decimal.Zero
			for _, item := range items {
				fee = fee.Add(decimal.NewFromFloat(item.ManagementFeeAmount))
			}
			totalManagementFee, _ = fee.Round(2).Float64()
		}
	}

	grandTotal := money.Round2(totalRevenue + totalManagementFee)
	deliveryFee := DeliveryFee(grandTotal, input.EmergencyDelivery)

	var monthlyAllowance *float64
	if input.Allowance != nil {
		var annual float64
		if input.Allowance.Method == api.AllowancePerPerson {
			annual = input.Allowance.OccupantCount * input.Allowance.Rate
		} else {
			annual = input.Allowance.TotalSqft * input.Allowance.Rate
		}
		monthly := money.Round2(annual / 12)
		monthlyAllowance = &monthly
	}

	var allInclusiveBudget *float64
	if input.AllInclusive != nil {
		budget := money.Round2(input.AllInclusive.MonthlyCleaningRate * (input.AllInclusive.SupplyPct / 100))
		allInclusiveBudget = &budget
	}

	var belowFloor []string
	for _, item := range items {
		if item.ActualMarginPct < MarginFloorPct {
			belowFloor = append(belowFloor, fmt.Sprintf("%s (%g%%)", item.Code, item.ActualMarginPct))
		}
	}
	if len(belowFloor) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item(s) below %g%% margin floor: %s",
			len(belowFloor), float64(MarginFloorPct), strings.Join(belowFloor, ", ")))
	}
	if blendedMarginPct < BlendedTargetMin && len(items) > 0 {
		warnings = append(warnings, fmt.Sprintf("Blended margin %g%% is below %g%% target minimum",
			blendedMarginPct, float64(BlendedTargetMin)))
	}
	if input.ManagementFee.Enabled && input.ManagementFee.Mode != api.FeeModeFlat &&
		input.ManagementFee.FeePct < MinManagementFeePct {
		warnings = append(warnings, fmt.Sprintf("Management fee %g%% is below playbook minimum of %g%%",
			input.ManagementFee.FeePct, float64(MinManagementFeePct)))
	}

	marginHealth := api.MarginHealthy
	if len(belowFloor) > 0 {
		marginHealth = api.MarginBelowFloor
	} else if blendedMarginPct < BlendedTargetMin && len(items) > 0 {
		marginHealth = api.MarginCaution
	}

	return &api.SupplyPricingResult{
		Items:              items,
		TotalCost:          totalCost,
		TotalRevenue:       totalRevenue,
		TotalContribution:  totalContribution,
		BlendedMarginPct:   blendedMarginPct,
		BlendedMarkupPct:   blendedMarkupPct,
		TotalManagementFee: totalManagementFee,
		GrandTotal:         grandTotal,
		DeliveryFee:        deliveryFee,
		MonthlyAllowance:   monthlyAllowance,
		AllInclusiveBudget: allInclusiveBudget,
		Warnings:           warnings,
		MarginHealth:       marginHealth,
	}
}
