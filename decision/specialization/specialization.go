// Package specialization computes bid-type workload adjustments. Each of
// the eight bid types composes a base minutes formula with table-driven
// multipliers and flag-gated surcharges.
package specialization

import (
	"math"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/errors"
)

// Adjustment is the outcome of one specialization calculation. Adjustments
// itemizes every factor and surcharge for the audit trail.
type Adjustment struct {
	ExtraMinutesPerVisit float64            `json:"extra_minutes_per_visit"`
	WorkloadMultiplier   float64            `json:"workload_multiplier"`
	Adjustments          map[string]float64 `json:"adjustments"`
}

// Multiplier tables. Closed enumerations: a new enum value must be added to
// every table it participates in.
var (
	disinfectMethodMultiplier = map[api.DisinfectingMethod]float64{
		api.DisinfectSpray:         1.0,
		api.DisinfectWipe:          1.4,
		api.DisinfectElectrostatic: 0.7,
		api.DisinfectFogging:       0.5,
	}

	disinfectDensityMultiplier = map[api.DisinfectingDensity]float64{
		api.DensityLight:    0.8,
		api.DensityStandard: 1.0,
		api.DensityHigh:     1.3,
	}

	carpetMethodMultiplier = map[api.CarpetMethod]float64{
		api.CarpetHotWaterExtraction: 1.0,
		api.CarpetEncapsulation:      0.7,
		api.CarpetBonnet:             0.6,
		api.CarpetDryCompound:        0.8,
	}

	tileServiceMultiplier = map[api.TileServiceType]float64{
		api.TileStripWax:    1.5,
		api.TileScrubRecoat: 1.0,
		api.TileDeepClean:   0.8,
		api.TileSeal:        1.2,
	}

	tileConditionMultiplier = map[api.WaxCondition]float64{
		api.WaxGood: 0.8,
		api.WaxFair: 1.0,
		api.WaxPoor: 1.3,
		api.WaxNone: 1.5,
	}

	postConstructionPhaseMultiplier = map[api.ConstructionPhase]float64{
		api.PhaseRough:   1.8,
		api.PhaseFinal:   1.0,
		api.PhaseTouchUp: 0.5,
	}

	debrisMultiplier = map[api.DebrisLevel]float64{
		api.DebrisLight:    0.8,
		api.DebrisModerate: 1.0,
		api.DebrisHeavy:    1.5,
	}
)

// Calculate dispatches on the bid type tag. baseSqft is the bid's total
// square footage, used by the sqft-driven formulas. JANITORIAL is the
// identity. An unrecognized type tag returns a BID_004 error rather than
// silently defaulting.
func Calculate(spec *api.Specialization, baseSqft float64) (*Adjustment, error) {
	switch spec.Type {
	case api.BidTypeJanitorial:
		return &Adjustment{WorkloadMultiplier: 1.0, Adjustments: map[string]float64{}}, nil
	case api.BidTypeDisinfecting:
		return calcDisinfecting(spec.Disinfecting, baseSqft), nil
	case api.BidTypeMaid:
		return calcMaid(spec.Maid), nil
	case api.BidTypeCarpet:
		return calcCarpet(spec.Carpet, baseSqft), nil
	case api.BidTypeWindow:
		return calcWindow(spec.Window), nil
	case api.BidTypeTile:
		return calcTile(spec.Tile, baseSqft), nil
	case api.BidTypeMoveInOut:
		return calcMoveInOut(spec.MoveInOut), nil
	case api.BidTypePostConstruction:
		return calcPostConstruction(spec.PostConstruction, baseSqft), nil
	default:
		return nil, errors.NewUnknownBidTypeError(string(spec.Type))
	}
}

func calcDisinfecting(inputs *api.DisinfectingInputs, sqft float64) *Adjustment {
	// 15 min per 1000 sqft base
	minutes := (sqft / 1000) * 15
	minutes *= disinfectMethodMultiplier[inputs.Method]
	minutes *= disinfectDensityMultiplier[inputs.Density]

	adjustments := map[string]float64{
		"method_factor":  disinfectMethodMultiplier[inputs.Method],
		"density_factor": disinfectDensityMultiplier[inputs.Density],
	}

	if inputs.ActiveCasesNearby {
		minutes *= 1.2
		adjustments["active_cases_surcharge"] = 1.2
	}
	if inputs.PPEIncluded {
		// donning/doffing PPE
		minutes += 10
		adjustments["ppe_setup_min"] = 10
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcMaid(inputs *api.MaidInputs) *Adjustment {
	adjustments := map[string]float64{}

	// 30 min per bedroom, 25 min per bathroom
	minutes := float64(inputs.Bedrooms)*30 + float64(inputs.Bathrooms)*25
	adjustments["bedroom_min"] = float64(inputs.Bedrooms) * 30
	adjustments["bathroom_min"] = float64(inputs.Bathrooms) * 25

	if inputs.HasPets {
		petAddon := math.Min(float64(inputs.PetCount), 5) * 10
		minutes += petAddon
		adjustments["pet_cleanup_min"] = petAddon
	}
	if inputs.ApplianceCleaning {
		if inputs.FridgeInside {
			minutes += 20
			adjustments["fridge_min"] = 20
		}
		if inputs.OvenInside {
			minutes += 25
			adjustments["oven_min"] = 25
		}
	}
	if inputs.LaundryIncluded {
		minutes += 30
		adjustments["laundry_min"] = 30
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcCarpet(inputs *api.CarpetInputs, sqft float64) *Adjustment {
	adjustments := map[string]float64{}

	// 20 min per 1000 sqft
	minutes := (sqft / 1000) * 20
	minutes *= carpetMethodMultiplier[inputs.Method]
	adjustments["method_factor"] = carpetMethodMultiplier[inputs.Method]

	if inputs.MoveFurniture {
		furnitureMin := float64(inputs.FurniturePieceCount) * 3
		minutes += furnitureMin
		adjustments["furniture_move_min"] = furnitureMin
	}
	if inputs.ApplyDeodorizer {
		minutes += (sqft / 1000) * 3
		adjustments["deodorizer_min"] = (sqft / 1000) * 3
	}
	if inputs.StainTreatmentSpots > 0 {
		spotMin := float64(inputs.StainTreatmentSpots) * 5
		minutes += spotMin
		adjustments["stain_treatment_min"] = spotMin
	}
	// Older carpet takes longer
	if inputs.CarpetAgeYears > 10 {
		minutes *= 1.15
		adjustments["aged_carpet_factor"] = 1.15
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcWindow(inputs *api.WindowInputs) *Adjustment {
	adjustments := map[string]float64{}
	totalPanes := float64(inputs.PaneCountInterior + inputs.PaneCountExterior)

	// 4 min per interior pane, 6 min per exterior pane
	minutes := float64(inputs.PaneCountInterior)*4 + float64(inputs.PaneCountExterior)*6
	adjustments["interior_pane_min"] = float64(inputs.PaneCountInterior) * 4
	adjustments["exterior_pane_min"] = float64(inputs.PaneCountExterior) * 6

	if inputs.IncludesScreens {
		minutes += totalPanes * 1.5
		adjustments["screen_cleaning_min"] = totalPanes * 1.5
	}
	if inputs.IncludesTracks {
		minutes += totalPanes
		adjustments["track_cleaning_min"] = totalPanes
	}
	if inputs.IncludesSills {
		minutes += totalPanes * 0.5
		adjustments["sill_cleaning_min"] = totalPanes * 0.5
	}
	if inputs.HighAccessPanes > 0 {
		highMin := float64(inputs.HighAccessPanes) * 10
		minutes += highMin
		adjustments["high_access_min"] = highMin
	}
	if inputs.Stories > 2 {
		storyFactor := 1 + float64(inputs.Stories-2)*0.1
		minutes *= storyFactor
		adjustments["multi_story_factor"] = storyFactor
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcTile(inputs *api.TileInputs, sqft float64) *Adjustment {
	adjustments := map[string]float64{}

	// 25 min per 1000 sqft
	minutes := (sqft / 1000) * 25
	minutes *= tileServiceMultiplier[inputs.ServiceType]
	minutes *= tileConditionMultiplier[inputs.CurrentCondition]
	adjustments["service_type_factor"] = tileServiceMultiplier[inputs.ServiceType]
	adjustments["condition_factor"] = tileConditionMultiplier[inputs.CurrentCondition]

	if inputs.CoatsOfWax > 0 {
		coatMin := float64(inputs.CoatsOfWax) * (sqft / 1000) * 8
		minutes += coatMin
		adjustments["wax_coats_min"] = coatMin
	}
	if inputs.NeedsStripping {
		minutes *= 1.4
		adjustments["stripping_factor"] = 1.4
	}
	if inputs.GroutCleaning {
		minutes += (sqft / 1000) * 12
		adjustments["grout_cleaning_min"] = (sqft / 1000) * 12
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcMoveInOut(inputs *api.MoveInOutInputs) *Adjustment {
	adjustments := map[string]float64{}

	// 45 min per bedroom, 35 min per bathroom
	minutes := float64(inputs.Bedrooms)*45 + float64(inputs.Bathrooms)*35
	adjustments["bedroom_min"] = float64(inputs.Bedrooms) * 45
	adjustments["bathroom_min"] = float64(inputs.Bathrooms) * 35

	// Kitchen/living base
	minutes += 60
	adjustments["kitchen_living_min"] = 60

	if inputs.GarageIncluded {
		minutes += 30
		adjustments["garage_min"] = 30
	}
	if inputs.ApplianceCleaning {
		minutes += 40
		adjustments["appliance_min"] = 40
	}
	if inputs.WindowCleaning {
		minutes += 25
		adjustments["window_addon_min"] = 25
	}
	if inputs.CarpetCleaning {
		minutes += 35
		adjustments["carpet_addon_min"] = 35
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}

func calcPostConstruction(inputs *api.PostConstructionInputs, sqft float64) *Adjustment {
	adjustments := map[string]float64{}

	// 30 min per 1000 sqft
	minutes := (sqft / 1000) * 30
	minutes *= postConstructionPhaseMultiplier[inputs.Phase]
	minutes *= debrisMultiplier[inputs.DebrisLevel]
	adjustments["phase_factor"] = postConstructionPhaseMultiplier[inputs.Phase]
	adjustments["debris_factor"] = debrisMultiplier[inputs.DebrisLevel]

	if inputs.IncludesWindowCleaning {
		minutes += (sqft / 1000) * 5
		adjustments["window_addon_min"] = (sqft / 1000) * 5
	}
	if inputs.IncludesPressureWash {
		minutes += (sqft / 1000) * 8
		adjustments["pressure_wash_min"] = (sqft / 1000) * 8
	}
	if inputs.IncludesFloorPolish {
		minutes += (sqft / 1000) * 10
		adjustments["floor_polish_min"] = (sqft / 1000) * 10
	}
	if inputs.FloorsCount > 1 {
		floorFactor := 1 + float64(inputs.FloorsCount-1)*0.15
		minutes *= floorFactor
		adjustments["multi_floor_factor"] = floorFactor
	}

	return &Adjustment{ExtraMinutesPerVisit: minutes, WorkloadMultiplier: 1.0, Adjustments: adjustments}
}
