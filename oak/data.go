// Package oak is the character message carried in a Borderlands 3 savegame
// payload, encoded in protobuf wire format.
//
// The fields the editor reads or writes are modelled as Go fields. The rest
// of the schema (see schema.go) is kept as raw bytes and re-emitted in
// field-number order. Field numbers the schema does not declare are kept too,
// written after everything else, and reported by HasUnknownFields.
package oak

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

type (
	Character struct {
		SaveGameID                            uint32
		LastSaveTimestamp                     int64
		TimePlayedSeconds                     uint32
		PlayerClassData                       *PlayerClass
		ResourcePools                         []*ResourcePool
		ExperiencePoints                      int32
		InventoryCategoryList                 []*InventoryCategory
		InventoryItems                        []*InventoryItem
		EquippedInventoryList                 []*EquippedInventory
		LastPlayThroughIndex                  int32
		PlaythroughsCompleted                 int32
		MissionPlaythroughsData               []*MissionPlaythrough
		PreferredCharacterName                string
		ActiveTravelStationsForPlaythrough    []*PlaythroughTravelStations
		LastActiveTravelStationForPlaythrough []string
		GameStateSaveDataForPlaythrough       []*GameState
		VehiclesUnlockedData                  []*VehicleUnlocked
		VehiclePartsUnlocked                  []string
		ChallengeData                         []*Challenge
		SDUList                               []*SDU
		extra                                 extraFields
	}
	PlayerClass struct {
		PlayerClassPath string
		DlcPackageID    uint32
		extra           extraFields
	}
	ResourcePool struct {
		Amount       float32
		ResourcePath string
		extra        extraFields
	}
	// InventoryCategory is a currency balance. The category is named by a
	// hash rather than a path.
	InventoryCategory struct {
		BaseCategoryDefinitionHash uint32
		Quantity                   int32
		extra                      extraFields
	}
	InventoryItem struct {
		ItemSerialNumber []byte
		PickupOrderIndex int32
		Flags            int32
		WeaponSkinPath   string
		extra            extraFields
	}
	EquippedInventory struct {
		InventoryListIndex int32
		Enabled            bool
		SlotDataPath       string
		TrinketDataPath    string
		extra              extraFields
	}
	MissionPlaythrough struct {
		MissionList             []*MissionStatus
		TrackedMissionClassPath string
		extra                   extraFields
	}
	MissionStatus struct {
		Status                 MissionState
		HasBeenViewedInLog     bool
		ObjectivesProgress     []int32
		MissionClassPath       string
		ActiveObjectiveSetPath string
		extra                  extraFields
	}
	PlaythroughTravelStations struct {
		ActiveTravelStations []*ActiveFastTravel
		extra                extraFields
	}
	ActiveFastTravel struct {
		ActiveTravelStationName string
		Blacklisted             bool
		extra                   extraFields
	}
	GameState struct {
		MayhemLevel      int32
		MayhemRandomSeed int32
		extra            extraFields
	}
	VehicleUnlocked struct {
		AssetPath    string
		JustUnlocked bool
		extra        extraFields
	}
	Challenge struct {
		CompletedCount         int32
		IsActive               bool
		CurrentlyCompleted     bool
		CompletedProgressLevel int32
		ProgressCounter        int32
		ChallengeClassPath     string
		extra                  extraFields
	}
	SDU struct {
		SDULevel    int32
		SDUDataPath string
		extra       extraFields
	}
	MissionState int32

	// extraFields holds what decoding kept without interpreting. Retained
	// fields are declared by the schema; unknown fields are not.
	extraFields struct {
		retained []rawField
		unknown  []byte
	}
	// rawField is one encoded field, tag included.
	rawField struct {
		num protowire.Number
		bs  []byte
	}
)

const (
	MissionNotStarted MissionState = 0
	MissionActive     MissionState = 1
	MissionComplete   MissionState = 2
	MissionFailed     MissionState = 3
	MissionUnknown    MissionState = 4
)

// ErrUninitialized is returned when encoding a message whose repeated
// message fields hold nil elements.
var ErrUninitialized = errors.New("message is not initialized")
