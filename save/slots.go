package save

import (
	"bl3-savior/oak"
)

type (
	// Slot names an equipment slot. Slots loaded from a save with a path
	// missing from the table below use the raw path as their name.
	Slot string
	// EquipSlot points into the inventory list by index. It never holds the
	// item itself, since appending to the list may move it.
	EquipSlot struct {
		message *oak.EquippedInventory
	}
)

const (
	SlotWeapon1  Slot = "weapon1"
	SlotWeapon2  Slot = "weapon2"
	SlotWeapon3  Slot = "weapon3"
	SlotWeapon4  Slot = "weapon4"
	SlotShield   Slot = "shield"
	SlotGrenade  Slot = "grenade"
	SlotClassMod Slot = "com"
	SlotArtifact Slot = "artifact"
)

var Slots = []Slot{
	SlotWeapon1,
	SlotWeapon2,
	SlotWeapon3,
	SlotWeapon4,
	SlotShield,
	SlotGrenade,
	SlotClassMod,
	SlotArtifact,
}

var slotPaths = map[Slot]string{
	SlotWeapon1:  "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon1.BPInvSlot_Weapon1",
	SlotWeapon2:  "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon2.BPInvSlot_Weapon2",
	SlotWeapon3:  "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon3.BPInvSlot_Weapon3",
	SlotWeapon4:  "/Game/Gear/Weapons/_Shared/_Design/InventorySlots/BPInvSlot_Weapon4.BPInvSlot_Weapon4",
	SlotShield:   "/Game/Gear/Shields/_Design/A_Data/BPInvSlot_Shield.BPInvSlot_Shield",
	SlotGrenade:  "/Game/Gear/GrenadeMods/_Design/A_Data/BPInvSlot_GrenadeMod.BPInvSlot_GrenadeMod",
	SlotClassMod: "/Game/Gear/ClassMods/_Design/BPInvSlot_ClassMod.BPInvSlot_ClassMod",
	SlotArtifact: "/Game/Gear/Artifacts/_Design/BPInvSlot_Artifact.BPInvSlot_Artifact",
}

var slotLabels = map[Slot]string{
	SlotWeapon1:  "Weapon 1",
	SlotWeapon2:  "Weapon 2",
	SlotWeapon3:  "Weapon 3",
	SlotWeapon4:  "Weapon 4",
	SlotShield:   "Shield",
	SlotGrenade:  "Grenade Mod",
	SlotClassMod: "Class Mod",
	SlotArtifact: "Artifact",
}

var pathSlots = func() map[string]Slot {
	m := make(map[string]Slot, len(slotPaths))
	for slot, path := range slotPaths {
		m[path] = slot
	}
	return m
}()

func SlotFromPath(path string) Slot {
	if slot, ok := pathSlots[path]; ok {
		return slot
	}
	return Slot(path)
}

func (s Slot) Path() string {
	if path, ok := slotPaths[s]; ok {
		return path
	}
	return string(s)
}

func (s Slot) Label() string {
	if label, ok := slotLabels[s]; ok {
		return label
	}
	return string(s)
}

func NewEquipSlot(index int, slot Slot, enabled bool) *EquipSlot {
	return &EquipSlot{
		message: &oak.EquippedInventory{
			InventoryListIndex: int32(index),
			Enabled:            enabled,
			SlotDataPath:       slot.Path(),
		},
	}
}

func (e *EquipSlot) Slot() Slot {
	return SlotFromPath(e.message.SlotDataPath)
}

func (e *EquipSlot) InventoryIndex() int {
	return int(e.message.InventoryListIndex)
}

func (e *EquipSlot) SetInventoryIndex(index int) {
	e.message.InventoryListIndex = int32(index)
}

func (e *EquipSlot) Enabled() bool {
	return e.message.Enabled
}

func (e *EquipSlot) SetEnabled(enabled bool) {
	e.message.Enabled = enabled
}

func (e *EquipSlot) Message() *oak.EquippedInventory {
	return e.message
}
