package workload

import "github.com/Anderson413366/gleamops-sub002/pkg/api"

// ResolveRate selects the single most specific active production rate for a
// task given the area's floor and building type codes. Empty codes mean the
// area (or the catalog row) has no declared type.
//
// Specificity levels, tried in strict priority order:
//
//  1. exact match on both floor and building type
//  2. floor type matches, catalog building type unset
//  3. building type matches, catalog floor type unset
//  4. task-only fallback (both catalog fields unset)
//
// Returns nil when no level matches. Matching is rule-driven, never
// first-in-list: catalog insertion order is irrelevant.
func ResolveRate(taskCode, floorTypeCode, buildingTypeCode string, rates []api.ProductionRate) *api.ProductionRate {
	var candidates []api.ProductionRate
	for _, r := range rates {
		if r.IsActive && r.TaskCode == taskCode {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	if floorTypeCode != "" && buildingTypeCode != "" {
		for i, r := range candidates {
			if r.FloorTypeCode == floorTypeCode && r.BuildingTypeCode == buildingTypeCode {
				return &candidates[i]
			}
		}
	}
	if floorTypeCode != "" {
		for i, r := range candidates {
			if r.FloorTypeCode == floorTypeCode && r.BuildingTypeCode == "" {
				return &candidates[i]
			}
		}
	}
	if buildingTypeCode != "" {
		for i, r := range candidates {
			if r.BuildingTypeCode == buildingTypeCode && r.FloorTypeCode == "" {
				return &candidates[i]
			}
		}
	}
	for i, r := range candidates {
		if r.FloorTypeCode == "" && r.BuildingTypeCode == "" {
			return &candidates[i]
		}
	}
	return nil
}
