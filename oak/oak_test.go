package oak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func sampleCharacter() *Character {
	return &Character{
		SaveGameID:        4,
		LastSaveTimestamp: 1600000000,
		TimePlayedSeconds: 98765,
		PlayerClassData:   &PlayerClass{PlayerClassPath: "/Game/PlayerCharacters/SirenBrawler/PlayerClassId_Siren.PlayerClassId_Siren"},
		ResourcePools: []*ResourcePool{
			{Amount: 1200, ResourcePath: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Pistol.Resource_Ammo_Pistol"},
			{Amount: 0.5, ResourcePath: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Grenade.Resource_Ammo_Grenade"},
		},
		ExperiencePoints: 9520932,
		InventoryCategoryList: []*InventoryCategory{
			{BaseCategoryDefinitionHash: 618814354, Quantity: 2000000},
			{BaseCategoryDefinitionHash: 3679636065, Quantity: 500},
		},
		InventoryItems: []*InventoryItem{
			{ItemSerialNumber: []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0xe7, 0x9c}, PickupOrderIndex: 12, Flags: 0x3},
			{ItemSerialNumber: []byte{0x03, 0x01, 0x02}, PickupOrderIndex: 40, Flags: 0x1, WeaponSkinPath: "/Game/Skins/Skin_01"},
		},
		EquippedInventoryList: []*EquippedInventory{
			{InventoryListIndex: 0, Enabled: true, SlotDataPath: "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon1.BPInvSlot_Weapon1"},
			{InventoryListIndex: -1, SlotDataPath: "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon2.BPInvSlot_Weapon2"},
		},
		LastPlayThroughIndex:  1,
		PlaythroughsCompleted: 1,
		MissionPlaythroughsData: []*MissionPlaythrough{
			{
				MissionList: []*MissionStatus{
					{Status: MissionComplete, HasBeenViewedInLog: true, ObjectivesProgress: []int32{1, 0, -1}, MissionClassPath: "/Game/Missions/Plot/Mission_Ep01_ChildrenOfTheVault.Mission_Ep01_ChildrenOfTheVault_C"},
					{Status: MissionActive, MissionClassPath: "/Game/Missions/Side/Zone_1/Prologue/Mission_ClaptrapsSecretStash.Mission_ClaptrapsSecretStash_C"},
				},
				TrackedMissionClassPath: "/Game/Missions/Side/Zone_1/Prologue/Mission_ClaptrapsSecretStash.Mission_ClaptrapsSecretStash_C",
			},
			{},
		},
		PreferredCharacterName: "Amara",
		ActiveTravelStationsForPlaythrough: []*PlaythroughTravelStations{
			{ActiveTravelStations: []*ActiveFastTravel{{ActiveTravelStationName: "/Game/GameData/FastTravel/FTS_Sanctuary.FTS_Sanctuary"}}},
			{},
		},
		LastActiveTravelStationForPlaythrough: []string{"/Game/GameData/FastTravel/FTS_Sanctuary.FTS_Sanctuary", ""},
		GameStateSaveDataForPlaythrough: []*GameState{
			{MayhemLevel: 10, MayhemRandomSeed: -12345},
			{},
		},
		VehiclesUnlockedData: []*VehicleUnlocked{
			{AssetPath: "/Game/Vehicles/Outrunner/Design/VehicleChassis_Outrunner.VehicleChassis_Outrunner", JustUnlocked: true},
		},
		VehiclePartsUnlocked: []string{"/Game/Vehicles/Outrunner/Design/Parts/Part_Outrunner_Armor.Part_Outrunner_Armor"},
		ChallengeData: []*Challenge{
			{CompletedCount: 1, CurrentlyCompleted: true, ChallengeClassPath: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Mayhem.Challenge_VaultReward_Mayhem_C"},
			{IsActive: true, ProgressCounter: 3, ChallengeClassPath: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Artifact.Challenge_VaultReward_Artifact_C"},
		},
		SDUList: []*SDU{
			{SDULevel: 4, SDUDataPath: "/Game/Pickups/SDU/SDU_Backpack.SDU_Backpack"},
		},
	}
}

// fieldsInOrder is a character payload that mixes interpreted fields with
// schema fields the editor only carries along, in field-number order.
func fieldsInOrder() []byte {
	class := protowire.AppendTag(nil, 1, protowire.BytesType)
	class = protowire.AppendString(class, "/Game/PlayerCharacters/Gunner/PlayerClassId_Gunner.PlayerClassId_Gunner")
	class = protowire.AppendTag(class, 2, protowire.VarintType)
	class = protowire.AppendVarint(class, 7)

	bs := protowire.AppendTag(nil, 1, protowire.VarintType)
	bs = protowire.AppendVarint(bs, 4)
	bs = protowire.AppendTag(bs, 4, protowire.BytesType)
	bs = protowire.AppendBytes(bs, class)
	bs = protowire.AppendTag(bs, 6, protowire.BytesType)
	bs = protowire.AppendBytes(bs, []byte{0x08, 0x01, 0x12, 0x02, 'R', '1'})
	bs = protowire.AppendTag(bs, 7, protowire.VarintType)
	bs = protowire.AppendVarint(bs, 358)
	bs = protowire.AppendTag(bs, 12, protowire.BytesType)
	bs = protowire.AppendBytes(bs, []byte{0x00, 0x01})
	bs = protowire.AppendTag(bs, 16, protowire.VarintType)
	bs = protowire.AppendVarint(bs, 1)
	bs = protowire.AppendTag(bs, 20, protowire.BytesType)
	bs = protowire.AppendString(bs, "Moze")
	bs = protowire.AppendTag(bs, 21, protowire.BytesType)
	bs = protowire.AppendString(bs, "/Game/GameData/FastTravel/FTS_Sanctuary.FTS_Sanctuary")
	bs = protowire.AppendTag(bs, 31, protowire.BytesType)
	bs = protowire.AppendString(bs, "/Game/PlayerCharacters/_Customizations/Gunner/Heads/CustomHead_Gunner_5.CustomHead_Gunner_5")
	bs = protowire.AppendTag(bs, 48, protowire.BytesType)
	return protowire.AppendBytes(bs, []byte{0x0a, 0x01, 'k', 0x12, 0x01, 'v'})
}

func TestMarshalUnmarshal(t *testing.T) {
	character := sampleCharacter()
	bs, err := character.Marshal()
	require.NoError(t, err)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.Equal(t, character, &decoded)
	assert.True(t, decoded.IsInitialized())
	assert.False(t, decoded.HasUnknownFields())

	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}

func TestMarshal_KnownBytes(t *testing.T) {
	state := GameState{MayhemLevel: 10}
	bs, err := state.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x0a}, bs)

	character := Character{PreferredCharacterName: "Amara"}
	bs, err = character.Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa2, 0x01, 0x05, 'A', 'm', 'a', 'r', 'a'}, bs)

	// negative int32 values take ten bytes
	state = GameState{MayhemRandomSeed: -1}
	bs, err = state.Marshal()
	require.NoError(t, err)
	assert.Len(t, bs, 11)
	decoded := GameState{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.Equal(t, int32(-1), decoded.MayhemRandomSeed)
}

func TestUnmarshal_UnknownFieldsKept(t *testing.T) {
	bs, err := sampleCharacter().Marshal()
	require.NoError(t, err)
	extra := protowire.AppendTag(nil, 99, protowire.VarintType)
	extra = protowire.AppendVarint(extra, 7)
	// an unmodelled field in the middle of the message
	bs = append(extra, bs...)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.True(t, decoded.HasUnknownFields())
	assert.Equal(t, "Amara", decoded.PreferredCharacterName)

	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, len(bs), len(again))
	assert.Equal(t, extra, again[len(again)-len(extra):])
}

func TestUnmarshal_NestedUnknownField(t *testing.T) {
	inner := protowire.AppendTag(nil, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 3)
	inner = protowire.AppendTag(inner, 9, protowire.BytesType)
	inner = protowire.AppendString(inner, "mystery")
	bs := protowire.AppendTag(nil, 24, protowire.BytesType)
	bs = protowire.AppendBytes(bs, inner)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	require.Len(t, decoded.GameStateSaveDataForPlaythrough, 1)
	assert.Equal(t, int32(3), decoded.GameStateSaveDataForPlaythrough[0].MayhemLevel)
	// only top-level fields are checked against the schema
	assert.False(t, decoded.HasUnknownFields())

	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}

func TestUnmarshal_DeclaredFieldsRetained(t *testing.T) {
	bs := fieldsInOrder()

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.False(t, decoded.HasUnknownFields())
	assert.Equal(t, uint32(4), decoded.SaveGameID)
	assert.Equal(t, int32(358), decoded.ExperiencePoints)
	assert.Equal(t, "Moze", decoded.PreferredCharacterName)
	require.NotNil(t, decoded.PlayerClassData)
	assert.Equal(t, "/Game/PlayerCharacters/Gunner/PlayerClassId_Gunner.PlayerClassId_Gunner", decoded.PlayerClassData.PlayerClassPath)
	assert.Equal(t, uint32(7), decoded.PlayerClassData.DlcPackageID)

	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bs, again)

	// edits land between the retained fields
	decoded.ExperiencePoints = 1241
	decoded.PreferredCharacterName = ""
	edited, err := decoded.Marshal()
	require.NoError(t, err)
	reread := Character{}
	require.NoError(t, reread.Unmarshal(edited))
	assert.Equal(t, int32(1241), reread.ExperiencePoints)
	assert.Equal(t, "", reread.PreferredCharacterName)
	assert.Equal(t, decoded.extra, reread.extra)
}

func TestUnmarshal_DeclaredFieldWrongWireTypeIsUnknown(t *testing.T) {
	// field 16 is a bool
	bs := protowire.AppendTag(nil, 16, protowire.BytesType)
	bs = protowire.AppendString(bs, "yes")

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.True(t, decoded.HasUnknownFields())
}

func TestUnmarshal_RetainedNestedField(t *testing.T) {
	item := protowire.AppendTag(nil, 1, protowire.BytesType)
	item = protowire.AppendBytes(item, []byte{0x03, 0x01})
	item = protowire.AppendTag(item, 5, protowire.BytesType)
	item = protowire.AppendBytes(item, []byte{0x08, 0x2a})
	bs := protowire.AppendTag(nil, 10, protowire.BytesType)
	bs = protowire.AppendBytes(bs, item)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	require.Len(t, decoded.InventoryItems, 1)
	assert.Equal(t, []byte{0x03, 0x01}, decoded.InventoryItems[0].ItemSerialNumber)
	assert.Len(t, decoded.InventoryItems[0].extra.retained, 1)

	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}

func TestSchema(t *testing.T) {
	assert.Equal(t, "OakSave.Character", string(CharacterDescriptor.FullName()))
	for _, name := range []string{"player_class_data", "inventory_category_list", "sdu_list", "challenge_data", "nickname_mappings"} {
		assert.NotNil(t, CharacterDescriptor.Fields().ByName(protoreflect.Name(name)), name)
	}
	assert.True(t, declared(CharacterDescriptor, 12, protowire.VarintType))
	assert.True(t, declared(CharacterDescriptor, 12, protowire.BytesType))
	assert.False(t, declared(CharacterDescriptor, 13, protowire.VarintType))
	assert.False(t, declared(CharacterDescriptor, 99, protowire.VarintType))
	assert.True(t, declared(resourcePoolDescriptor, 1, protowire.Fixed32Type))
}

func TestUnmarshal_WrongWireTypeIsUnknown(t *testing.T) {
	// field 20 is a string; here it arrives as a varint
	bs := protowire.AppendTag(nil, 20, protowire.VarintType)
	bs = protowire.AppendVarint(bs, 1)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.Equal(t, "", decoded.PreferredCharacterName)
	assert.True(t, decoded.HasUnknownFields())
}

func TestUnmarshal_UnpackedInt32List(t *testing.T) {
	bs := []byte{}
	for _, v := range []uint64{1, 2, 3} {
		bs = protowire.AppendTag(bs, 3, protowire.VarintType)
		bs = protowire.AppendVarint(bs, v)
	}
	decoded := MissionStatus{}
	require.NoError(t, decoded.Unmarshal(bs))
	assert.Equal(t, []int32{1, 2, 3}, decoded.ObjectivesProgress)
}

func TestUnmarshal_Malformed(t *testing.T) {
	bs, err := sampleCharacter().Marshal()
	require.NoError(t, err)

	decoded := Character{}
	assert.Error(t, decoded.Unmarshal(bs[:len(bs)-4]))

	invalidString := protowire.AppendTag(nil, 20, protowire.BytesType)
	invalidString = protowire.AppendBytes(invalidString, []byte{0xff, 0xfe})
	assert.Error(t, decoded.Unmarshal(invalidString))
}

func TestIsInitialized_NilElement(t *testing.T) {
	character := sampleCharacter()
	character.MissionPlaythroughsData[0].MissionList = append(character.MissionPlaythroughsData[0].MissionList, nil)
	assert.False(t, character.IsInitialized())
	_, err := character.Marshal()
	assert.ErrorIs(t, err, ErrUninitialized)

	character = sampleCharacter()
	character.InventoryItems = append(character.InventoryItems, nil)
	assert.False(t, character.IsInitialized())
}

func TestClone(t *testing.T) {
	character := sampleCharacter()
	clone := character.Clone()
	assert.Equal(t, character, clone)

	clone.InventoryItems[0].ItemSerialNumber[0] = 0xff
	clone.MissionPlaythroughsData[0].MissionList[0].ObjectivesProgress[0] = 42
	clone.LastActiveTravelStationForPlaythrough[0] = "elsewhere"
	clone.GameStateSaveDataForPlaythrough[0].MayhemLevel = 1
	clone.PlayerClassData.PlayerClassPath = "elsewhere"
	clone.SDUList[0].SDULevel = 13
	clone.VehiclePartsUnlocked[0] = "elsewhere"
	assert.Equal(t, sampleCharacter(), character)

	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(fieldsInOrder()))
	retained := decoded.Clone()
	retained.extra.retained[0].bs[0] = 0xff
	again, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, fieldsInOrder(), again)

	var missing *GameState
	assert.Nil(t, missing.Clone())
}

func TestText(t *testing.T) {
	character := sampleCharacter()
	text, err := character.RenderText()
	require.NoError(t, err)
	assert.Contains(t, string(text), `"preferred_character_name": "Amara"`)
	assert.Contains(t, string(text), `"status": "MS_Complete"`)
	assert.Contains(t, string(text), `"base_category_definition_hash": 618814354`)
	assert.Contains(t, string(text), `"sdu_list": [`)
	// schema fields without a value are listed too
	assert.Contains(t, string(text), `"nickname_mappings": []`)

	parsed := Character{}
	require.NoError(t, parsed.ParseText(text))
	assert.Equal(t, character, &parsed)
}

func TestText_RetainedFields(t *testing.T) {
	decoded := Character{}
	require.NoError(t, decoded.Unmarshal(fieldsInOrder()))
	text, err := decoded.RenderText()
	require.NoError(t, err)
	assert.Contains(t, string(text), `"last_active_travel_station": "/Game/GameData/FastTravel/FTS_Sanctuary.FTS_Sanctuary"`)
	assert.Contains(t, string(text), `"show_new_playthrough_notification": true`)

	parsed := Character{}
	require.NoError(t, parsed.ParseText(text))
	again, err := parsed.Marshal()
	require.NoError(t, err)
	assert.Equal(t, fieldsInOrder(), again)
}

func TestParseText_Comments(t *testing.T) {
	text := []byte(`{
		// renamed by hand
		"preferred_character_name": "Zane",
		"game_state_save_data_for_playthrough": [
			{"mayhem_level": 4, "mayhem_random_seed": 0,},
		],
		"mission_playthroughs_data": [
			{"mission_list": [{"status": 2}, {"status": "MS_Failed"}]}
		]
	}`)
	parsed := Character{}
	require.NoError(t, parsed.ParseText(text))
	assert.Equal(t, "Zane", parsed.PreferredCharacterName)
	assert.Equal(t, int32(4), parsed.GameStateSaveDataForPlaythrough[0].MayhemLevel)
	assert.Equal(t, MissionComplete, parsed.MissionPlaythroughsData[0].MissionList[0].Status)
	assert.Equal(t, MissionFailed, parsed.MissionPlaythroughsData[0].MissionList[1].Status)
}

func TestParseText_Rejects(t *testing.T) {
	parsed := Character{}
	assert.Error(t, parsed.ParseText([]byte(`{"no_such_field": 1}`)))
	assert.Error(t, parsed.ParseText([]byte(`{"mission_playthroughs_data": [{"mission_list": [{"status": "MS_Bogus"}]}]}`)))
	assert.Error(t, parsed.ParseText([]byte(`not json`)))
}

func TestMissionState_String(t *testing.T) {
	assert.Equal(t, "MS_Active", MissionActive.String())
	assert.Equal(t, "17", MissionState(17).String())
}
