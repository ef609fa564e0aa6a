package oak

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

func (c *Character) Unmarshal(bs []byte) error {
	*c = Character{}
	err := consumeMessage(bs, CharacterDescriptor, &c.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { c.SaveGameID = uint32(v) })
		case 2:
			return varintField(typ, bs, func(v uint64) { c.LastSaveTimestamp = int64(v) })
		case 3:
			return varintField(typ, bs, func(v uint64) { c.TimePlayedSeconds = uint32(v) })
		case 4:
			return singleMessageField(typ, bs, &c.PlayerClassData)
		case 5:
			return messageField(typ, bs, &c.ResourcePools)
		case 7:
			return varintField(typ, bs, func(v uint64) { c.ExperiencePoints = int32(v) })
		case 9:
			return messageField(typ, bs, &c.InventoryCategoryList)
		case 10:
			return messageField(typ, bs, &c.InventoryItems)
		case 11:
			return messageField(typ, bs, &c.EquippedInventoryList)
		case 14:
			return varintField(typ, bs, func(v uint64) { c.LastPlayThroughIndex = int32(v) })
		case 15:
			return varintField(typ, bs, func(v uint64) { c.PlaythroughsCompleted = int32(v) })
		case 17:
			return messageField(typ, bs, &c.MissionPlaythroughsData)
		case 20:
			return stringField(typ, bs, func(v string) { c.PreferredCharacterName = v })
		case 22:
			return messageField(typ, bs, &c.ActiveTravelStationsForPlaythrough)
		case 23:
			return stringField(typ, bs, func(v string) {
				c.LastActiveTravelStationForPlaythrough = append(c.LastActiveTravelStationForPlaythrough, v)
			})
		case 24:
			return messageField(typ, bs, &c.GameStateSaveDataForPlaythrough)
		case 25:
			return messageField(typ, bs, &c.VehiclesUnlockedData)
		case 26:
			return stringField(typ, bs, func(v string) {
				c.VehiclePartsUnlocked = append(c.VehiclePartsUnlocked, v)
			})
		case 29:
			return messageField(typ, bs, &c.ChallengeData)
		case 30:
			return messageField(typ, bs, &c.SDUList)
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "oak.Character.Unmarshal error")
}

func (p *PlayerClass) Unmarshal(bs []byte) error {
	*p = PlayerClass{}
	err := consumeMessage(bs, playerClassDescriptor, &p.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, bs, func(v string) { p.PlayerClassPath = v })
		case 2:
			return varintField(typ, bs, func(v uint64) { p.DlcPackageID = uint32(v) })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "player class")
}

func (r *ResourcePool) Unmarshal(bs []byte) error {
	*r = ResourcePool{}
	err := consumeMessage(bs, resourcePoolDescriptor, &r.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return float32Field(typ, bs, func(v float32) { r.Amount = v })
		case 2:
			return stringField(typ, bs, func(v string) { r.ResourcePath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "resource pool")
}

func (i *InventoryCategory) Unmarshal(bs []byte) error {
	*i = InventoryCategory{}
	err := consumeMessage(bs, inventoryCategoryDescriptor, &i.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { i.BaseCategoryDefinitionHash = uint32(v) })
		case 2:
			return varintField(typ, bs, func(v uint64) { i.Quantity = int32(v) })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "inventory category")
}

func (i *InventoryItem) Unmarshal(bs []byte) error {
	*i = InventoryItem{}
	err := consumeMessage(bs, inventoryItemDescriptor, &i.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return bytesField(typ, bs, func(v []byte) error {
				i.ItemSerialNumber = append([]byte{}, v...)
				return nil
			})
		case 2:
			return varintField(typ, bs, func(v uint64) { i.PickupOrderIndex = int32(v) })
		case 3:
			return varintField(typ, bs, func(v uint64) { i.Flags = int32(v) })
		case 4:
			return stringField(typ, bs, func(v string) { i.WeaponSkinPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "inventory item")
}

func (e *EquippedInventory) Unmarshal(bs []byte) error {
	*e = EquippedInventory{}
	err := consumeMessage(bs, equippedInventoryDescriptor, &e.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { e.InventoryListIndex = int32(v) })
		case 2:
			return varintField(typ, bs, func(v uint64) { e.Enabled = protowire.DecodeBool(v) })
		case 3:
			return stringField(typ, bs, func(v string) { e.SlotDataPath = v })
		case 4:
			return stringField(typ, bs, func(v string) { e.TrinketDataPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "equipped inventory")
}

func (m *MissionPlaythrough) Unmarshal(bs []byte) error {
	*m = MissionPlaythrough{}
	err := consumeMessage(bs, missionPlaythroughDescriptor, &m.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return messageField(typ, bs, &m.MissionList)
		case 2:
			return stringField(typ, bs, func(v string) { m.TrackedMissionClassPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "mission playthrough")
}

func (m *MissionStatus) Unmarshal(bs []byte) error {
	*m = MissionStatus{}
	err := consumeMessage(bs, missionStatusDescriptor, &m.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { m.Status = MissionState(int32(v)) })
		case 2:
			return varintField(typ, bs, func(v uint64) { m.HasBeenViewedInLog = protowire.DecodeBool(v) })
		case 3:
			return int32ListField(typ, bs, &m.ObjectivesProgress)
		case 4:
			return stringField(typ, bs, func(v string) { m.MissionClassPath = v })
		case 5:
			return stringField(typ, bs, func(v string) { m.ActiveObjectiveSetPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "mission status")
}

func (p *PlaythroughTravelStations) Unmarshal(bs []byte) error {
	*p = PlaythroughTravelStations{}
	err := consumeMessage(bs, travelStationsDescriptor, &p.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		if num == 1 {
			return messageField(typ, bs, &p.ActiveTravelStations)
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "playthrough travel stations")
}

func (a *ActiveFastTravel) Unmarshal(bs []byte) error {
	*a = ActiveFastTravel{}
	err := consumeMessage(bs, activeFastTravelDescriptor, &a.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, bs, func(v string) { a.ActiveTravelStationName = v })
		case 2:
			return varintField(typ, bs, func(v uint64) { a.Blacklisted = protowire.DecodeBool(v) })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "active fast travel")
}

func (g *GameState) Unmarshal(bs []byte) error {
	*g = GameState{}
	err := consumeMessage(bs, gameStateDescriptor, &g.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { g.MayhemLevel = int32(v) })
		case 2:
			return varintField(typ, bs, func(v uint64) { g.MayhemRandomSeed = int32(v) })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "game state")
}

func (v *VehicleUnlocked) Unmarshal(bs []byte) error {
	*v = VehicleUnlocked{}
	err := consumeMessage(bs, vehicleUnlockedDescriptor, &v.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return stringField(typ, bs, func(s string) { v.AssetPath = s })
		case 2:
			return varintField(typ, bs, func(n uint64) { v.JustUnlocked = protowire.DecodeBool(n) })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "vehicle unlocked")
}

func (c *Challenge) Unmarshal(bs []byte) error {
	*c = Challenge{}
	err := consumeMessage(bs, challengeDescriptor, &c.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { c.CompletedCount = int32(v) })
		case 2:
			return varintField(typ, bs, func(v uint64) { c.IsActive = protowire.DecodeBool(v) })
		case 3:
			return varintField(typ, bs, func(v uint64) { c.CurrentlyCompleted = protowire.DecodeBool(v) })
		case 4:
			return varintField(typ, bs, func(v uint64) { c.CompletedProgressLevel = int32(v) })
		case 5:
			return varintField(typ, bs, func(v uint64) { c.ProgressCounter = int32(v) })
		case 7:
			return stringField(typ, bs, func(v string) { c.ChallengeClassPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "challenge")
}

func (s *SDU) Unmarshal(bs []byte) error {
	*s = SDU{}
	err := consumeMessage(bs, sduDescriptor, &s.extra, func(num protowire.Number, typ protowire.Type, bs []byte) (int, error) {
		switch num {
		case 1:
			return varintField(typ, bs, func(v uint64) { s.SDULevel = int32(v) })
		case 2:
			return stringField(typ, bs, func(v string) { s.SDUDataPath = v })
		}
		return notHandled, nil
	})
	return errors.Wrap(err, "sdu")
}
