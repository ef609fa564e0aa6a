package oak

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The schema lists every field of the character message and its parts,
// including the ones the editor never interprets. Decoding keeps a declared
// field it does not interpret as a retained field; only field numbers the
// schema does not declare count as unknown.

type (
	fieldSpec struct {
		name     string
		number   int32
		kind     descriptorpb.FieldDescriptorProto_Type
		repeated bool
		typeName string
	}
	messageSpec struct {
		name   string
		fields []fieldSpec
		enums  []*descriptorpb.EnumDescriptorProto
	}
)

const schemaPackage = "OakSave"

const (
	kindBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	kindBytes   = descriptorpb.FieldDescriptorProto_TYPE_BYTES
	kindEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
	kindFloat   = descriptorpb.FieldDescriptorProto_TYPE_FLOAT
	kindInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	kindInt64   = descriptorpb.FieldDescriptorProto_TYPE_INT64
	kindMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	kindString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	kindUint32  = descriptorpb.FieldDescriptorProto_TYPE_UINT32
)

func scalar(name string, number int32, kind descriptorpb.FieldDescriptorProto_Type) fieldSpec {
	return fieldSpec{name: name, number: number, kind: kind}
}

func many(name string, number int32, kind descriptorpb.FieldDescriptorProto_Type) fieldSpec {
	return fieldSpec{name: name, number: number, kind: kind, repeated: true}
}

func part(name string, number int32, typeName string) fieldSpec {
	return fieldSpec{name: name, number: number, kind: kindMessage, typeName: typeName}
}

func parts(name string, number int32, typeName string) fieldSpec {
	return fieldSpec{name: name, number: number, kind: kindMessage, typeName: typeName, repeated: true}
}

// Parts the editor never looks into are declared as bytes, which keeps them
// intact through the text form as well.
var schemaMessages = []messageSpec{
	{
		name: "Character",
		fields: []fieldSpec{
			scalar("save_game_id", 1, kindUint32),
			scalar("last_save_timestamp", 2, kindInt64),
			scalar("time_played_seconds", 3, kindUint32),
			part("player_class_data", 4, "PlayerClassSaveGameData"),
			parts("resource_pools", 5, "ResourcePoolSavegameData"),
			many("saved_regions", 6, kindBytes),
			scalar("experience_points", 7, kindInt32),
			many("game_stats_data", 8, kindBytes),
			parts("inventory_category_list", 9, "InventoryCategorySaveData"),
			parts("inventory_items", 10, "OakInventoryItemSaveGameData"),
			parts("equipped_inventory_list", 11, "EquippedInventorySaveGameData"),
			many("active_weapon_list", 12, kindInt32),
			scalar("ability_data", 13, kindBytes),
			scalar("last_play_through_index", 14, kindInt32),
			scalar("playthroughs_completed", 15, kindInt32),
			scalar("show_new_playthrough_notification", 16, kindBool),
			parts("mission_playthroughs_data", 17, "MissionPlaythroughSaveGameData"),
			many("active_travel_stations", 18, kindBytes),
			scalar("discovery_data", 19, kindBytes),
			scalar("preferred_character_name", 20, kindString),
			scalar("last_active_travel_station", 21, kindString),
			parts("active_travel_stations_for_playthrough", 22, "PlaythroughActiveFastTravelSaveData"),
			many("last_active_travel_station_for_playthrough", 23, kindString),
			parts("game_state_save_data_for_playthrough", 24, "GameStateSaveData"),
			parts("vehicles_unlocked_data", 25, "VehicleUnlockedSaveGameData"),
			many("vehicle_parts_unlocked", 26, kindString),
			many("vehicle_loadouts", 27, kindBytes),
			scalar("vehicle_last_loadout_index", 28, kindInt32),
			parts("challenge_data", 29, "ChallengeSaveGameData"),
			parts("sdu_list", 30, "OakSDUSaveGameData"),
			many("selected_customizations", 31, kindString),
			many("equipped_emote_customizations", 32, kindInt32),
			many("selected_color_customizations", 33, kindBytes),
			scalar("guardian_rank_character_data", 34, kindBytes),
			scalar("optional_objective_reward_fixup_applied", 35, kindBool),
			scalar("vehicle_part_rewards_fixup_applied", 36, kindBool),
			scalar("last_active_league", 37, kindInt32),
			scalar("last_active_league_instance", 38, kindInt32),
			scalar("level_data_fixup_applied", 39, kindBool),
			scalar("crew_quarters_room", 40, kindBytes),
			many("registered_downloadable_entitlements", 41, kindBytes),
			scalar("challenge_category_completion_pcts", 42, kindBytes),
			scalar("character_slot_save_game_data", 43, kindBytes),
			scalar("ui_tracking_save_game_data", 44, kindBytes),
			scalar("name_character_limit", 45, kindInt32),
			scalar("preferred_group_mode", 46, kindUint32),
			scalar("time_of_day_save", 47, kindBytes),
			many("nickname_mappings", 48, kindBytes),
		},
	},
	{
		name: "PlayerClassSaveGameData",
		fields: []fieldSpec{
			scalar("player_class_path", 1, kindString),
			scalar("dlc_package_id", 2, kindUint32),
		},
	},
	{
		name: "ResourcePoolSavegameData",
		fields: []fieldSpec{
			scalar("amount", 1, kindFloat),
			scalar("resource_path", 2, kindString),
		},
	},
	{
		name: "InventoryCategorySaveData",
		fields: []fieldSpec{
			scalar("base_category_definition_hash", 1, kindUint32),
			scalar("quantity", 2, kindInt32),
		},
	},
	{
		name: "OakInventoryItemSaveGameData",
		fields: []fieldSpec{
			scalar("item_serial_number", 1, kindBytes),
			scalar("pickup_order_index", 2, kindInt32),
			scalar("flags", 3, kindInt32),
			scalar("weapon_skin_path", 4, kindString),
			scalar("development_save_data", 5, kindBytes),
		},
	},
	{
		name: "EquippedInventorySaveGameData",
		fields: []fieldSpec{
			scalar("inventory_list_index", 1, kindInt32),
			scalar("enabled", 2, kindBool),
			scalar("slot_data_path", 3, kindString),
			scalar("trinket_data_path", 4, kindString),
		},
	},
	{
		name: "MissionPlaythroughSaveGameData",
		fields: []fieldSpec{
			parts("mission_list", 1, "MissionStatusPlayerSaveGameData"),
			scalar("tracked_mission_class_path", 2, kindString),
		},
	},
	{
		name: "MissionStatusPlayerSaveGameData",
		fields: []fieldSpec{
			{name: "status", number: 1, kind: kindEnum, typeName: "MissionStatusPlayerSaveGameData.MissionState"},
			scalar("has_been_viewed_in_log", 2, kindBool),
			many("objectives_progress", 3, kindInt32),
			scalar("mission_class_path", 4, kindString),
			scalar("active_objective_set_path", 5, kindString),
			scalar("dlc_package_id", 6, kindUint32),
			scalar("kickoff_played", 7, kindBool),
			scalar("league_instance", 8, kindInt32),
		},
		enums: []*descriptorpb.EnumDescriptorProto{missionStateEnum()},
	},
	{
		name: "PlaythroughActiveFastTravelSaveData",
		fields: []fieldSpec{
			parts("active_travel_stations", 1, "ActiveFastTravelSaveData"),
		},
	},
	{
		name: "ActiveFastTravelSaveData",
		fields: []fieldSpec{
			scalar("active_travel_station_name", 1, kindString),
			scalar("blacklisted", 2, kindBool),
		},
	},
	{
		name: "GameStateSaveData",
		fields: []fieldSpec{
			scalar("mayhem_level", 1, kindInt32),
			scalar("mayhem_random_seed", 2, kindInt32),
		},
	},
	{
		name: "VehicleUnlockedSaveGameData",
		fields: []fieldSpec{
			scalar("asset_path", 1, kindString),
			scalar("just_unlocked", 2, kindBool),
		},
	},
	{
		name: "ChallengeSaveGameData",
		fields: []fieldSpec{
			scalar("completed_count", 1, kindInt32),
			scalar("is_active", 2, kindBool),
			scalar("currently_completed", 3, kindBool),
			scalar("completed_progress_level", 4, kindInt32),
			scalar("progress_counter", 5, kindInt32),
			many("stat_instance_state", 6, kindBytes),
			scalar("challenge_class_path", 7, kindString),
			many("challenge_reward_info", 8, kindBytes),
		},
	},
	{
		name: "OakSDUSaveGameData",
		fields: []fieldSpec{
			scalar("sdu_level", 1, kindInt32),
			scalar("sdu_data_path", 2, kindString),
		},
	},
}

var missionStateNames = []string{"MS_NotStarted", "MS_Active", "MS_Complete", "MS_Failed", "MS_Unknown"}

func missionStateEnum() *descriptorpb.EnumDescriptorProto {
	enum := &descriptorpb.EnumDescriptorProto{Name: proto.String("MissionState")}
	for number, name := range missionStateNames {
		enum.Value = append(enum.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(int32(number)),
		})
	}
	return enum
}

func (f fieldSpec) descriptorProto() *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if f.repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	field := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(f.name),
		Number: proto.Int32(f.number),
		Label:  label.Enum(),
		Type:   f.kind.Enum(),
	}
	if f.typeName != "" {
		field.TypeName = proto.String("." + schemaPackage + "." + f.typeName)
	}
	return field
}

func schemaFile() *descriptorpb.FileDescriptorProto {
	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("OakSave.proto"),
		Package: proto.String(schemaPackage),
		Syntax:  proto.String("proto3"),
	}
	for _, spec := range schemaMessages {
		message := &descriptorpb.DescriptorProto{
			Name:     proto.String(spec.name),
			EnumType: spec.enums,
		}
		for _, field := range spec.fields {
			message.Field = append(message.Field, field.descriptorProto())
		}
		file.MessageType = append(file.MessageType, message)
	}
	return file
}

func buildSchema() (protoreflect.FileDescriptor, error) {
	file, err := protodesc.NewFile(schemaFile(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "oak.buildSchema error")
	}
	return file, nil
}

var schema = func() protoreflect.FileDescriptor {
	file, err := buildSchema()
	if err != nil {
		panic(err)
	}
	return file
}()

func describe(name string) protoreflect.MessageDescriptor {
	return schema.Messages().ByName(protoreflect.Name(name))
}

var (
	CharacterDescriptor          = describe("Character")
	playerClassDescriptor        = describe("PlayerClassSaveGameData")
	resourcePoolDescriptor       = describe("ResourcePoolSavegameData")
	inventoryCategoryDescriptor  = describe("InventoryCategorySaveData")
	inventoryItemDescriptor      = describe("OakInventoryItemSaveGameData")
	equippedInventoryDescriptor  = describe("EquippedInventorySaveGameData")
	missionPlaythroughDescriptor = describe("MissionPlaythroughSaveGameData")
	missionStatusDescriptor      = describe("MissionStatusPlayerSaveGameData")
	travelStationsDescriptor     = describe("PlaythroughActiveFastTravelSaveData")
	activeFastTravelDescriptor   = describe("ActiveFastTravelSaveData")
	gameStateDescriptor          = describe("GameStateSaveData")
	vehicleUnlockedDescriptor    = describe("VehicleUnlockedSaveGameData")
	challengeDescriptor          = describe("ChallengeSaveGameData")
	sduDescriptor                = describe("OakSDUSaveGameData")
)

// declared reports whether the schema of desc has field num with a wire
// type its kind accepts. Repeated numeric fields accept both the packed and
// the unpacked form.
func declared(desc protoreflect.MessageDescriptor, num protowire.Number, typ protowire.Type) bool {
	field := desc.Fields().ByNumber(num)
	if field == nil {
		return false
	}
	expected := protowire.VarintType
	switch field.Kind() {
	case protoreflect.StringKind, protoreflect.BytesKind, protoreflect.MessageKind:
		return typ == protowire.BytesType
	case protoreflect.FloatKind, protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind:
		expected = protowire.Fixed32Type
	case protoreflect.DoubleKind, protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind:
		expected = protowire.Fixed64Type
	}
	return typ == expected || (field.IsList() && typ == protowire.BytesType)
}
