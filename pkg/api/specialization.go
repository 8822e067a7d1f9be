package api

import (
	"encoding/json"
	"fmt"
)

// BidTypeCode discriminates the eight supported bid types.
type BidTypeCode string

const (
	BidTypeJanitorial       BidTypeCode = "JANITORIAL"
	BidTypeDisinfecting     BidTypeCode = "DISINFECTING"
	BidTypeMaid             BidTypeCode = "MAID"
	BidTypeCarpet           BidTypeCode = "CARPET"
	BidTypeWindow           BidTypeCode = "WINDOW"
	BidTypeTile             BidTypeCode = "TILE"
	BidTypeMoveInOut        BidTypeCode = "MOVE_IN_OUT"
	BidTypePostConstruction BidTypeCode = "POST_CONSTRUCTION"
)

// DisinfectingMethod is the application method for disinfecting bids.
type DisinfectingMethod string

const (
	DisinfectSpray         DisinfectingMethod = "SPRAY"
	DisinfectWipe          DisinfectingMethod = "WIPE"
	DisinfectElectrostatic DisinfectingMethod = "ELECTROSTATIC"
	DisinfectFogging       DisinfectingMethod = "FOGGING"
)

// DisinfectingDensity grades touch-point density.
type DisinfectingDensity string

const (
	DensityLight    DisinfectingDensity = "LIGHT"
	DensityStandard DisinfectingDensity = "STANDARD"
	DensityHigh     DisinfectingDensity = "HIGH"
)

// DisinfectingInputs are the DISINFECTING bid inputs.
type DisinfectingInputs struct {
	Method            DisinfectingMethod  `json:"method"`
	Density           DisinfectingDensity `json:"density"`
	ActiveCasesNearby bool                `json:"active_cases_nearby"`
	WaiverSigned      bool                `json:"waiver_signed"`
	PPEIncluded       bool                `json:"ppe_included"`
}

// MaidInputs are the MAID (residential) bid inputs.
type MaidInputs struct {
	Bedrooms          int  `json:"bedrooms"`
	Bathrooms         int  `json:"bathrooms"`
	HasPets           bool `json:"has_pets"`
	PetCount          int  `json:"pet_count"`
	ApplianceCleaning bool `json:"appliance_cleaning"`
	LaundryIncluded   bool `json:"laundry_included"`
	FridgeInside      bool `json:"fridge_inside"`
	OvenInside        bool `json:"oven_inside"`
}

// CarpetMethod is the carpet cleaning method.
type CarpetMethod string

const (
	CarpetHotWaterExtraction CarpetMethod = "HOT_WATER_EXTRACTION"
	CarpetEncapsulation      CarpetMethod = "ENCAPSULATION"
	CarpetBonnet             CarpetMethod = "BONNET"
	CarpetDryCompound        CarpetMethod = "DRY_COMPOUND"
)

// CarpetInputs are the CARPET bid inputs.
type CarpetInputs struct {
	Method              CarpetMethod `json:"method"`
	MoveFurniture       bool         `json:"move_furniture"`
	FurniturePieceCount int          `json:"furniture_piece_count"`
	ApplyDeodorizer     bool         `json:"apply_deodorizer"`
	StainTreatmentSpots int          `json:"stain_treatment_spots"`
	CarpetAgeYears      int          `json:"carpet_age_years"`
}

// WindowInputs are the WINDOW bid inputs.
type WindowInputs struct {
	PaneCountInterior int  `json:"pane_count_interior"`
	PaneCountExterior int  `json:"pane_count_exterior"`
	IncludesScreens   bool `json:"includes_screens"`
	IncludesTracks    bool `json:"includes_tracks"`
	IncludesSills     bool `json:"includes_sills"`
	HighAccessPanes   int  `json:"high_access_panes"`
	Stories           int  `json:"stories"`
}

// TileServiceType is the hard-floor service performed.
type TileServiceType string

const (
	TileStripWax    TileServiceType = "STRIP_WAX"
	TileScrubRecoat TileServiceType = "SCRUB_RECOAT"
	TileDeepClean   TileServiceType = "DEEP_CLEAN"
	TileSeal        TileServiceType = "SEAL"
)

// WaxCondition grades the current finish.
type WaxCondition string

const (
	WaxGood WaxCondition = "GOOD"
	WaxFair WaxCondition = "FAIR"
	WaxPoor WaxCondition = "POOR"
	WaxNone WaxCondition = "NONE"
)

// TileInputs are the TILE bid inputs.
type TileInputs struct {
	ServiceType      TileServiceType `json:"service_type"`
	CoatsOfWax       int             `json:"coats_of_wax"`
	CurrentCondition WaxCondition    `json:"current_wax_condition"`
	NeedsStripping   bool            `json:"needs_stripping"`
	GroutCleaning    bool            `json:"grout_cleaning"`
}

// MoveInOutInputs are the MOVE_IN_OUT bid inputs.
type MoveInOutInputs struct {
	UnitType          string `json:"unit_type"`
	Bedrooms          int    `json:"bedrooms"`
	Bathrooms         int    `json:"bathrooms"`
	GarageIncluded    bool   `json:"garage_included"`
	ApplianceCleaning bool   `json:"appliance_cleaning"`
	WindowCleaning    bool   `json:"window_cleaning"`
	CarpetCleaning    bool   `json:"carpet_cleaning"`
}

// ConstructionPhase is the post-construction cleaning phase.
type ConstructionPhase string

const (
	PhaseRough   ConstructionPhase = "ROUGH"
	PhaseFinal   ConstructionPhase = "FINAL"
	PhaseTouchUp ConstructionPhase = "TOUCH_UP"
)

// DebrisLevel grades leftover construction debris.
type DebrisLevel string

const (
	DebrisLight    DebrisLevel = "LIGHT"
	DebrisModerate DebrisLevel = "MODERATE"
	DebrisHeavy    DebrisLevel = "HEAVY"
)

// PostConstructionInputs are the POST_CONSTRUCTION bid inputs.
type PostConstructionInputs struct {
	Phase                  ConstructionPhase `json:"phase"`
	DebrisLevel            DebrisLevel       `json:"debris_level"`
	IncludesWindowCleaning bool              `json:"includes_window_cleaning"`
	IncludesPressureWash   bool              `json:"includes_pressure_wash"`
	IncludesFloorPolish    bool              `json:"includes_floor_polish"`
	FloorsCount            int               `json:"floors_count"`
}

// Specialization is the tagged union of the eight bid types. Exactly one
// input set is populated, matching Type; JANITORIAL carries none. The JSON
// form is {"type": ..., "inputs": {...}}.
type Specialization struct {
	Type             BidTypeCode
	Disinfecting     *DisinfectingInputs
	Maid             *MaidInputs
	Carpet           *CarpetInputs
	Window           *WindowInputs
	Tile             *TileInputs
	MoveInOut        *MoveInOutInputs
	PostConstruction *PostConstructionInputs
}

type specializationEnvelope struct {
	Type   BidTypeCode     `json:"type"`
	Inputs json.RawMessage `json:"inputs,omitempty"`
}

// UnmarshalJSON decodes the discriminated envelope into the matching
// variant. Unknown type tags are rejected here, before any calculation.
func (s *Specialization) UnmarshalJSON(data []byte) error {
	var env specializationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*s = Specialization{Type: env.Type}

	decode := func(dst any) error {
		if len(env.Inputs) == 0 {
			return fmt.Errorf("specialization %s requires inputs", env.Type)
		}
		return json.Unmarshal(env.Inputs, dst)
	}

	switch env.Type {
	case BidTypeJanitorial:
		return nil
	case BidTypeDisinfecting:
		s.Disinfecting = &DisinfectingInputs{}
		return decode(s.Disinfecting)
	case BidTypeMaid:
		s.Maid = &MaidInputs{}
		return decode(s.Maid)
	case BidTypeCarpet:
		s.Carpet = &CarpetInputs{}
		return decode(s.Carpet)
	case BidTypeWindow:
		s.Window = &WindowInputs{}
		return decode(s.Window)
	case BidTypeTile:
		s.Tile = &TileInputs{}
		return decode(s.Tile)
	case BidTypeMoveInOut:
		s.MoveInOut = &MoveInOutInputs{}
		return decode(s.MoveInOut)
	case BidTypePostConstruction:
		s.PostConstruction = &PostConstructionInputs{}
		return decode(s.PostConstruction)
	default:
		return fmt.Errorf("unknown bid type: %q", env.Type)
	}
}

// MarshalJSON emits the discriminated envelope form.
func (s Specialization) MarshalJSON() ([]byte, error) {
	var inputs any
	switch s.Type {
	case BidTypeJanitorial:
		inputs = nil
	case BidTypeDisinfecting:
		inputs = s.Disinfecting
	case BidTypeMaid:
		inputs = s.Maid
	case BidTypeCarpet:
		inputs = s.Carpet
	case BidTypeWindow:
		inputs = s.Window
	case BidTypeTile:
		inputs = s.Tile
	case BidTypeMoveInOut:
		inputs = s.MoveInOut
	case BidTypePostConstruction:
		inputs = s.PostConstruction
	default:
		return nil, fmt.Errorf("unknown bid type: %q", s.Type)
	}
	if inputs == nil {
		return json.Marshal(specializationEnvelope{Type: s.Type})
	}
	raw, err := json.Marshal(inputs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(specializationEnvelope{Type: s.Type, Inputs: raw})
}
