// Package expressload generates a default area layout from a building type,
// total square footage, and optional floor mix. It is the quick-start path
// for drafting a bid before a walkthrough produces real measurements.
package expressload

import (
	"math"
	"sort"

	"github.com/Anderson413366/gleamops-sub002/pkg/api"
)

// FloorMixEntry is one floor type's share of the building, 0-100.
type FloorMixEntry struct {
	FloorTypeCode string  `json:"floor_type_code"`
	Percentage    float64 `json:"percentage"`
}

// Input drives one express-load run.
type Input struct {
	BuildingTypeCode string          `json:"building_type_code"`
	TotalSqft        float64         `json:"total_sqft"`
	FloorMix         []FloorMixEntry `json:"floor_mix,omitempty"`
	Occupancy        int             `json:"occupancy,omitempty"`
}

type templateArea struct {
	name             string
	areaTypeCode     string
	pct              float64
	floorTypeDefault string
}

// buildingTemplates define each building type's default area split as
// percentages of total square footage.
var buildingTemplates = map[string][]templateArea{
	"OFFICE": {
		{"Offices", "OFFICE", 60, "CARPET"},
		{"Restrooms", "RESTROOM", 8, "CERAMIC"},
		{"Break Room", "BREAK_ROOM", 8, "VCT"},
		{"Conference Rooms", "CONFERENCE_ROOM", 10, "CARPET"},
		{"Hallways", "HALLWAY", 10, "VCT"},
		{"Lobby", "LOBBY", 4, "CERAMIC"},
	},
	"MEDICAL_HEALTHCARE": {
		{"Patient Areas", "OFFICE", 40, "VCT"},
		{"Restrooms", "RESTROOM", 12, "CERAMIC"},
		{"Waiting Room", "RECEPTION", 15, "VCT"},
		{"Hallways", "HALLWAY", 15, "VCT"},
		{"Break Room", "BREAK_ROOM", 8, "VCT"},
		{"Lobby", "LOBBY", 10, "CERAMIC"},
	},
	"RETAIL": {
		{"Sales Floor", "OFFICE", 65, "VCT"},
		{"Restrooms", "RESTROOM", 8, "CERAMIC"},
		{"Break Room", "BREAK_ROOM", 5, "VCT"},
		{"Stockroom", "WAREHOUSE", 15, "CONCRETE"},
		{"Entrance", "LOBBY", 7, "CERAMIC"},
	},
	"SCHOOL_EDUCATION": {
		{"Classrooms", "OFFICE", 50, "VCT"},
		{"Restrooms", "RESTROOM", 10, "CERAMIC"},
		{"Hallways", "HALLWAY", 15, "VCT"},
		{"Cafeteria", "BREAK_ROOM", 10, "VCT"},
		{"Lobby", "LOBBY", 8, "CERAMIC"},
		{"Stairwells", "STAIRWELL", 7, "CONCRETE"},
	},
	"INDUSTRIAL_MANUFACTURING": {
		{"Production Floor", "WAREHOUSE", 55, "CONCRETE"},
		{"Offices", "OFFICE", 15, "CARPET"},
		{"Restrooms", "RESTROOM", 10, "CERAMIC"},
		{"Break Room", "BREAK_ROOM", 8, "VCT"},
		{"Hallways", "HALLWAY", 12, "CONCRETE"},
	},
	"GOVERNMENT": {
		{"Offices", "OFFICE", 50, "CARPET"},
		{"Restrooms", "RESTROOM", 10, "CERAMIC"},
		{"Conference Rooms", "CONFERENCE_ROOM", 12, "CARPET"},
		{"Hallways", "HALLWAY", 12, "VCT"},
		{"Lobby", "LOBBY", 10, "CERAMIC"},
		{"Break Room", "BREAK_ROOM", 6, "VCT"},
	},
	"RESTAURANT_FOOD": {
		{"Dining Area", "OFFICE", 45, "CERAMIC"},
		{"Kitchen", "BREAK_ROOM", 25, "CERAMIC"},
		{"Restrooms", "RESTROOM", 12, "CERAMIC"},
		{"Entrance", "LOBBY", 10, "CERAMIC"},
		{"Storage", "WAREHOUSE", 8, "CONCRETE"},
	},
	"GYM_FITNESS": {
		{"Workout Floor", "OFFICE", 50, "CONCRETE"},
		{"Locker Rooms", "RESTROOM", 20, "CERAMIC"},
		{"Reception", "RECEPTION", 10, "VCT"},
		{"Restrooms", "RESTROOM", 8, "CERAMIC"},
		{"Office", "OFFICE", 7, "CARPET"},
		{"Hallways", "HALLWAY", 5, "VCT"},
	},
}

// restroomFixtures sizes restroom fixtures from occupancy: one toilet per
// 15 people, one sink per 20, one urinal per 30, with sane minimums.
func restroomFixtures(occupancy int) map[string]int {
	toilets := int(math.Ceil(float64(occupancy) / 15))
	sinks := int(math.Ceil(float64(occupancy) / 20))
	urinals := int(math.Ceil(float64(occupancy) / 30))
	if toilets < 2 {
		toilets = 2
	}
	if sinks < 2 {
		sinks = 2
	}
	if urinals < 1 {
		urinals = 1
	}
	return map[string]int{"toilets": toilets, "sinks": sinks, "urinals": urinals}
}

// Generate produces a default area layout. Unknown building types collapse
// to a single catch-all area holding all the square footage.
func Generate(input Input) []api.Area {
	template, ok := buildingTemplates[input.BuildingTypeCode]
	if !ok {
		floorType := "VCT"
		if len(input.FloorMix) > 0 {
			floorType = input.FloorMix[0].FloorTypeCode
		}
		return []api.Area{{
			Name:          "Main Area",
			AreaTypeCode:  "CUSTOM",
			FloorTypeCode: floorType,
			SquareFootage: input.TotalSqft,
			Quantity:      1,
			Fixtures:      map[string]int{},
		}}
	}

	var dominantFloor string
	if len(input.FloorMix) > 0 {
		sorted := make([]FloorMixEntry, len(input.FloorMix))
		copy(sorted, input.FloorMix)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Percentage > sorted[j].Percentage })
		dominantFloor = sorted[0].FloorTypeCode
	}

	areas := make([]api.Area, 0, len(template))
	for _, tmpl := range template {
		sqft := math.Round(input.TotalSqft * (tmpl.pct / 100))
		if sqft <= 0 {
			continue
		}

		// Keep the template default when it appears in the declared mix,
		// otherwise fall back to the mix's dominant floor type.
		floorType := tmpl.floorTypeDefault
		if len(input.FloorMix) > 0 && !mixContains(input.FloorMix, tmpl.floorTypeDefault) {
			floorType = dominantFloor
		}

		fixtures := map[string]int{}
		if tmpl.areaTypeCode == "RESTROOM" && input.Occupancy > 0 {
			fixtures = restroomFixtures(input.Occupancy)
		}

		areas = append(areas, api.Area{
			Name:          tmpl.name,
			AreaTypeCode:  tmpl.areaTypeCode,
			FloorTypeCode: floorType,
			SquareFootage: sqft,
			Quantity:      1,
			Fixtures:      fixtures,
		})
	}
	return areas
}

func mixContains(mix []FloorMixEntry, floorTypeCode string) bool {
	for _, f := range mix {
		if f.FloorTypeCode == floorTypeCode {
			return true
		}
	}
	return false
}
