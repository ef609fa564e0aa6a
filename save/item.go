package save

import (
	"encoding/base64"
	"strings"

	"bl3-savior/oak"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// Item wraps one inventory list element. The serial is kept opaque.
	Item struct {
		message *oak.InventoryItem
	}
	ItemFlags int32
)

const (
	FlagSeen     ItemFlags = 0x1
	FlagFavorite ItemFlags = 0x2
	FlagTrash    ItemFlags = 0x4
)

const (
	serialPrefix = "BL3("
	serialSuffix = ")"
)

// NewItemFlags builds a flag set. Favorite and trash are exclusive; when
// both are asked for, favorite wins.
func NewItemFlags(seen bool, favorite bool, trash bool) ItemFlags {
	flags := ItemFlags(0)
	if seen {
		flags |= FlagSeen
	}
	if favorite {
		flags |= FlagFavorite
	} else if trash {
		flags |= FlagTrash
	}
	return flags
}

func (f ItemFlags) Has(flag ItemFlags) bool {
	return f&flag != 0
}

func NewItem(serial []byte, pickupOrderIndex int32, skinPath string, flags ItemFlags) *Item {
	return &Item{
		message: &oak.InventoryItem{
			ItemSerialNumber: serial,
			PickupOrderIndex: pickupOrderIndex,
			Flags:            int32(flags),
			WeaponSkinPath:   skinPath,
		},
	}
}

func (i *Item) Serial() []byte {
	return i.message.ItemSerialNumber
}

func (i *Item) SetSerial(serial []byte) {
	i.message.ItemSerialNumber = serial
}

func (i *Item) SerialBase64() string {
	return EncodeSerialBase64(i.message.ItemSerialNumber)
}

func (i *Item) PickupOrderIndex() int32 {
	return i.message.PickupOrderIndex
}

func (i *Item) Flags() ItemFlags {
	return ItemFlags(i.message.Flags)
}

func (i *Item) SkinPath() string {
	return i.message.WeaponSkinPath
}

func (i *Item) Message() *oak.InventoryItem {
	return i.message
}

// EncodeSerialBase64 renders a serial in the shareable "BL3(...)" form.
func EncodeSerialBase64(serial []byte) string {
	return serialPrefix + base64.StdEncoding.EncodeToString(serial) + serialSuffix
}

// DecodeSerialBase64 is the inverse of EncodeSerialBase64. The prefix is
// matched without regard to case.
func DecodeSerialBase64(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if len(text) < len(serialPrefix)+len(serialSuffix) ||
		!strings.EqualFold(text[:len(serialPrefix)], serialPrefix) ||
		!strings.HasSuffix(text, serialSuffix) {
		return nil, errors.Wrapf(ErrInvalidSerial, "%q is not wrapped in %s...%s", text, serialPrefix, serialSuffix)
	}
	serial, err := base64.StdEncoding.DecodeString(text[len(serialPrefix) : len(text)-len(serialSuffix)])
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSerial, "%q: %v", text, err)
	}
	return serial, nil
}

func IsSerialBase64(text string) bool {
	text = strings.TrimSpace(text)
	return len(text) >= len(serialPrefix)+len(serialSuffix) &&
		strings.EqualFold(text[:len(serialPrefix)], serialPrefix) &&
		strings.HasSuffix(text, serialSuffix)
}

func (s *Save) Items() []*Item {
	return lo.Map(s.Character.InventoryItems, func(message *oak.InventoryItem, _ int) *Item {
		return &Item{message: message}
	})
}

// Item resolves an inventory index. Negative or out of range indexes give
// (nil, false).
func (s *Save) Item(index int) (*Item, bool) {
	if index < 0 || index >= len(s.Character.InventoryItems) {
		return nil, false
	}
	return &Item{message: s.Character.InventoryItems[index]}, true
}

// AddItem appends item to the inventory and returns its index. The list
// stores its own copy; item is re-pointed at that copy so later changes
// through item reach the save.
func (s *Save) AddItem(item *Item) int {
	s.Character.InventoryItems = append(s.Character.InventoryItems, item.message.Clone())
	index := len(s.Character.InventoryItems) - 1
	item.message = s.Character.InventoryItems[index]
	return index
}

func (s *Save) MaxPickupOrder() int32 {
	return lo.Reduce(s.Character.InventoryItems, func(highest int32, item *oak.InventoryItem, _ int) int32 {
		if item.PickupOrderIndex > highest {
			return item.PickupOrderIndex
		}
		return highest
	}, 0)
}

// CreateNewItem builds an item that is not yet in the inventory. New items
// are marked seen and favorite, with a pickup order above every existing
// item.
func (s *Save) CreateNewItem(serial []byte) *Item {
	return NewItem(serial, s.MaxPickupOrder()+1, "", NewItemFlags(true, true, false))
}

func (s *Save) CreateNewItemEncoded(text string) (*Item, error) {
	serial, err := DecodeSerialBase64(text)
	if err != nil {
		return nil, err
	}
	return s.CreateNewItem(serial), nil
}

func (s *Save) AddNewItem(serial []byte) (*Item, int) {
	item := s.CreateNewItem(serial)
	return item, s.AddItem(item)
}

func (s *Save) AddNewItemEncoded(text string) (*Item, int, error) {
	serial, err := DecodeSerialBase64(text)
	if err != nil {
		return nil, -1, err
	}
	item, index := s.AddNewItem(serial)
	return item, index, nil
}

// EquipSlots maps each slot present in the save to its entry.
func (s *Save) EquipSlots() map[Slot]*EquipSlot {
	return lo.SliceToMap(s.Character.EquippedInventoryList, func(message *oak.EquippedInventory) (Slot, *EquipSlot) {
		slot := &EquipSlot{message: message}
		return slot.Slot(), slot
	})
}

func (s *Save) EquipSlot(slot Slot) (*EquipSlot, bool) {
	path := slot.Path()
	message, ok := lo.Find(s.Character.EquippedInventoryList, func(message *oak.EquippedInventory) bool {
		return message.SlotDataPath == path
	})
	if !ok {
		return nil, false
	}
	return &EquipSlot{message: message}, true
}

// EquippedItem returns the item in slot. A missing slot or an index that
// does not resolve gives (nil, false).
func (s *Save) EquippedItem(slot Slot) (*Item, bool) {
	equipSlot, ok := s.EquipSlot(slot)
	if !ok {
		return nil, false
	}
	return s.Item(equipSlot.InventoryIndex())
}

// EquippedItems maps every slot present in the save to its item, or to nil
// when the slot is empty.
func (s *Save) EquippedItems() map[Slot]*Item {
	return lo.MapValues(s.EquipSlots(), func(equipSlot *EquipSlot, _ Slot) *Item {
		item, _ := s.Item(equipSlot.InventoryIndex())
		return item
	})
}

func (s *Save) addEquipSlot(slot Slot, index int, enabled bool) *EquipSlot {
	equipSlot := NewEquipSlot(index, slot, enabled)
	s.Character.EquippedInventoryList = append(s.Character.EquippedInventoryList, equipSlot.message)
	return equipSlot
}

// OverwriteItemInSlot replaces the serial of the item in slot. An empty slot
// gets a new item, and a slot missing from the save is created for it.
func (s *Save) OverwriteItemInSlot(slot Slot, serial []byte) {
	if item, ok := s.EquippedItem(slot); ok {
		item.SetSerial(serial)
		return
	}

	_, index := s.AddNewItem(serial)
	if equipSlot, ok := s.EquipSlot(slot); ok {
		equipSlot.SetInventoryIndex(index)
		return
	}
	s.logger.Warn("equipment slot missing from save, creating it", "slot", slot)
	s.addEquipSlot(slot, index, true)
}

// UnlockSlots enables the given slots, or every known slot when none are
// given. A slot missing from the save is created empty.
func (s *Save) UnlockSlots(slots ...Slot) {
	if len(slots) == 0 {
		slots = Slots
	}
	for _, slot := range slots {
		if equipSlot, ok := s.EquipSlot(slot); ok {
			equipSlot.SetEnabled(true)
			continue
		}
		s.addEquipSlot(slot, -1, true)
	}
}
