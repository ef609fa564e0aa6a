package oak

// Marshal writes fields in field-number order, retained fields included,
// followed by any fields the schema does not declare.
func (c *Character) Marshal() ([]byte, error) {
	if !c.IsInitialized() {
		return nil, ErrUninitialized
	}
	return c.encode(), nil
}

func (c *Character) encode() []byte {
	b := builder{}
	b.varint(1, uint64(c.SaveGameID))
	b.varint(2, uint64(c.LastSaveTimestamp))
	b.varint(3, uint64(c.TimePlayedSeconds))
	if c.PlayerClassData != nil {
		b.message(4, c.PlayerClassData.encode())
	}
	for _, pool := range c.ResourcePools {
		b.message(5, pool.encode())
	}
	b.int32(7, c.ExperiencePoints)
	for _, category := range c.InventoryCategoryList {
		b.message(9, category.encode())
	}
	for _, item := range c.InventoryItems {
		b.message(10, item.encode())
	}
	for _, slot := range c.EquippedInventoryList {
		b.message(11, slot.encode())
	}
	b.int32(14, c.LastPlayThroughIndex)
	b.int32(15, c.PlaythroughsCompleted)
	for _, missions := range c.MissionPlaythroughsData {
		b.message(17, missions.encode())
	}
	b.string(20, c.PreferredCharacterName)
	for _, stations := range c.ActiveTravelStationsForPlaythrough {
		b.message(22, stations.encode())
	}
	b.stringList(23, c.LastActiveTravelStationForPlaythrough)
	for _, state := range c.GameStateSaveDataForPlaythrough {
		b.message(24, state.encode())
	}
	for _, vehicle := range c.VehiclesUnlockedData {
		b.message(25, vehicle.encode())
	}
	b.stringList(26, c.VehiclePartsUnlocked)
	for _, challenge := range c.ChallengeData {
		b.message(29, challenge.encode())
	}
	for _, sdu := range c.SDUList {
		b.message(30, sdu.encode())
	}
	return b.finish(c.extra)
}

func (p *PlayerClass) encode() []byte {
	b := builder{}
	b.string(1, p.PlayerClassPath)
	b.varint(2, uint64(p.DlcPackageID))
	return b.finish(p.extra)
}

func (r *ResourcePool) encode() []byte {
	b := builder{}
	b.float32(1, r.Amount)
	b.string(2, r.ResourcePath)
	return b.finish(r.extra)
}

func (i *InventoryCategory) encode() []byte {
	b := builder{}
	b.varint(1, uint64(i.BaseCategoryDefinitionHash))
	b.int32(2, i.Quantity)
	return b.finish(i.extra)
}

func (i *InventoryItem) Marshal() ([]byte, error) {
	return i.encode(), nil
}

func (i *InventoryItem) encode() []byte {
	b := builder{}
	b.bytes(1, i.ItemSerialNumber)
	b.int32(2, i.PickupOrderIndex)
	b.int32(3, i.Flags)
	b.string(4, i.WeaponSkinPath)
	return b.finish(i.extra)
}

func (e *EquippedInventory) Marshal() ([]byte, error) {
	return e.encode(), nil
}

func (e *EquippedInventory) encode() []byte {
	b := builder{}
	b.int32(1, e.InventoryListIndex)
	b.bool(2, e.Enabled)
	b.string(3, e.SlotDataPath)
	b.string(4, e.TrinketDataPath)
	return b.finish(e.extra)
}

func (m *MissionPlaythrough) Marshal() ([]byte, error) {
	if !m.IsInitialized() {
		return nil, ErrUninitialized
	}
	return m.encode(), nil
}

func (m *MissionPlaythrough) encode() []byte {
	b := builder{}
	for _, mission := range m.MissionList {
		b.message(1, mission.encode())
	}
	b.string(2, m.TrackedMissionClassPath)
	return b.finish(m.extra)
}

func (m *MissionStatus) Marshal() ([]byte, error) {
	return m.encode(), nil
}

func (m *MissionStatus) encode() []byte {
	b := builder{}
	b.int32(1, int32(m.Status))
	b.bool(2, m.HasBeenViewedInLog)
	b.packedInt32(3, m.ObjectivesProgress)
	b.string(4, m.MissionClassPath)
	b.string(5, m.ActiveObjectiveSetPath)
	return b.finish(m.extra)
}

func (p *PlaythroughTravelStations) Marshal() ([]byte, error) {
	if !p.IsInitialized() {
		return nil, ErrUninitialized
	}
	return p.encode(), nil
}

func (p *PlaythroughTravelStations) encode() []byte {
	b := builder{}
	for _, station := range p.ActiveTravelStations {
		b.message(1, station.encode())
	}
	return b.finish(p.extra)
}

func (a *ActiveFastTravel) Marshal() ([]byte, error) {
	return a.encode(), nil
}

func (a *ActiveFastTravel) encode() []byte {
	b := builder{}
	b.string(1, a.ActiveTravelStationName)
	b.bool(2, a.Blacklisted)
	return b.finish(a.extra)
}

func (g *GameState) Marshal() ([]byte, error) {
	return g.encode(), nil
}

func (g *GameState) encode() []byte {
	b := builder{}
	b.int32(1, g.MayhemLevel)
	b.int32(2, g.MayhemRandomSeed)
	return b.finish(g.extra)
}

func (v *VehicleUnlocked) encode() []byte {
	b := builder{}
	b.string(1, v.AssetPath)
	b.bool(2, v.JustUnlocked)
	return b.finish(v.extra)
}

func (c *Challenge) encode() []byte {
	b := builder{}
	b.int32(1, c.CompletedCount)
	b.bool(2, c.IsActive)
	b.bool(3, c.CurrentlyCompleted)
	b.int32(4, c.CompletedProgressLevel)
	b.int32(5, c.ProgressCounter)
	b.string(7, c.ChallengeClassPath)
	return b.finish(c.extra)
}

func (s *SDU) encode() []byte {
	b := builder{}
	b.int32(1, s.SDULevel)
	b.string(2, s.SDUDataPath)
	return b.finish(s.extra)
}
