package oak

import (
	"github.com/samber/lo"
)

func noneNil[T any](list []*T) bool {
	return lo.EveryBy(list, func(item *T) bool {
		return item != nil
	})
}

func cloneList[T any](list []*T, clone func(*T) *T) []*T {
	if list == nil {
		return nil
	}
	return lo.Map(list, func(item *T, _ int) *T {
		return clone(item)
	})
}

func cloneValues[T any](list []T) []T {
	if list == nil {
		return nil
	}
	return append([]T{}, list...)
}

func (x extraFields) clone() extraFields {
	var retained []rawField
	if x.retained != nil {
		retained = lo.Map(x.retained, func(field rawField, _ int) rawField {
			return rawField{num: field.num, bs: cloneValues(field.bs)}
		})
	}
	return extraFields{retained: retained, unknown: cloneValues(x.unknown)}
}

// IsInitialized reports whether every repeated message field, at every
// depth, holds only non-nil elements.
func (c *Character) IsInitialized() bool {
	return noneNil(c.ResourcePools) &&
		noneNil(c.InventoryCategoryList) &&
		noneNil(c.InventoryItems) &&
		noneNil(c.EquippedInventoryList) &&
		noneNil(c.MissionPlaythroughsData) &&
		noneNil(c.ActiveTravelStationsForPlaythrough) &&
		noneNil(c.GameStateSaveDataForPlaythrough) &&
		noneNil(c.VehiclesUnlockedData) &&
		noneNil(c.ChallengeData) &&
		noneNil(c.SDUList) &&
		lo.EveryBy(c.MissionPlaythroughsData, (*MissionPlaythrough).IsInitialized) &&
		lo.EveryBy(c.ActiveTravelStationsForPlaythrough, (*PlaythroughTravelStations).IsInitialized)
}

func (m *MissionPlaythrough) IsInitialized() bool {
	return noneNil(m.MissionList)
}

func (p *PlaythroughTravelStations) IsInitialized() bool {
	return noneNil(p.ActiveTravelStations)
}

// HasUnknownFields reports whether decoding met a top-level field number the
// schema does not declare. Nested messages keep their unknown fields without
// reporting them.
func (c *Character) HasUnknownFields() bool {
	return len(c.extra.unknown) > 0
}

func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	clone.PlayerClassData = c.PlayerClassData.Clone()
	clone.ResourcePools = cloneList(c.ResourcePools, (*ResourcePool).Clone)
	clone.InventoryCategoryList = cloneList(c.InventoryCategoryList, (*InventoryCategory).Clone)
	clone.InventoryItems = cloneList(c.InventoryItems, (*InventoryItem).Clone)
	clone.EquippedInventoryList = cloneList(c.EquippedInventoryList, (*EquippedInventory).Clone)
	clone.MissionPlaythroughsData = cloneList(c.MissionPlaythroughsData, (*MissionPlaythrough).Clone)
	clone.ActiveTravelStationsForPlaythrough = cloneList(c.ActiveTravelStationsForPlaythrough, (*PlaythroughTravelStations).Clone)
	clone.LastActiveTravelStationForPlaythrough = cloneValues(c.LastActiveTravelStationForPlaythrough)
	clone.GameStateSaveDataForPlaythrough = cloneList(c.GameStateSaveDataForPlaythrough, (*GameState).Clone)
	clone.VehiclesUnlockedData = cloneList(c.VehiclesUnlockedData, (*VehicleUnlocked).Clone)
	clone.VehiclePartsUnlocked = cloneValues(c.VehiclePartsUnlocked)
	clone.ChallengeData = cloneList(c.ChallengeData, (*Challenge).Clone)
	clone.SDUList = cloneList(c.SDUList, (*SDU).Clone)
	clone.extra = c.extra.clone()
	return &clone
}

func (p *PlayerClass) Clone() *PlayerClass {
	if p == nil {
		return nil
	}
	clone := *p
	clone.extra = p.extra.clone()
	return &clone
}

func (r *ResourcePool) Clone() *ResourcePool {
	if r == nil {
		return nil
	}
	clone := *r
	clone.extra = r.extra.clone()
	return &clone
}

func (i *InventoryCategory) Clone() *InventoryCategory {
	if i == nil {
		return nil
	}
	clone := *i
	clone.extra = i.extra.clone()
	return &clone
}

func (i *InventoryItem) Clone() *InventoryItem {
	if i == nil {
		return nil
	}
	clone := *i
	clone.ItemSerialNumber = cloneValues(i.ItemSerialNumber)
	clone.extra = i.extra.clone()
	return &clone
}

func (e *EquippedInventory) Clone() *EquippedInventory {
	if e == nil {
		return nil
	}
	clone := *e
	clone.extra = e.extra.clone()
	return &clone
}

func (m *MissionPlaythrough) Clone() *MissionPlaythrough {
	if m == nil {
		return nil
	}
	clone := *m
	clone.MissionList = cloneList(m.MissionList, (*MissionStatus).Clone)
	clone.extra = m.extra.clone()
	return &clone
}

func (m *MissionStatus) Clone() *MissionStatus {
	if m == nil {
		return nil
	}
	clone := *m
	clone.ObjectivesProgress = cloneValues(m.ObjectivesProgress)
	clone.extra = m.extra.clone()
	return &clone
}

func (p *PlaythroughTravelStations) Clone() *PlaythroughTravelStations {
	if p == nil {
		return nil
	}
	clone := *p
	clone.ActiveTravelStations = cloneList(p.ActiveTravelStations, (*ActiveFastTravel).Clone)
	clone.extra = p.extra.clone()
	return &clone
}

func (a *ActiveFastTravel) Clone() *ActiveFastTravel {
	if a == nil {
		return nil
	}
	clone := *a
	clone.extra = a.extra.clone()
	return &clone
}

func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	clone := *g
	clone.extra = g.extra.clone()
	return &clone
}

func (v *VehicleUnlocked) Clone() *VehicleUnlocked {
	if v == nil {
		return nil
	}
	clone := *v
	clone.extra = v.extra.clone()
	return &clone
}

func (c *Challenge) Clone() *Challenge {
	if c == nil {
		return nil
	}
	clone := *c
	clone.extra = c.extra.clone()
	return &clone
}

func (s *SDU) Clone() *SDU {
	if s == nil {
		return nil
	}
	clone := *s
	clone.extra = s.extra.clone()
	return &clone
}
