package save

import (
	"strings"

	"bl3-savior/oak"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// PlayerClass is empty when the save has no class data.
func (s *Save) PlayerClass() PlayerClass {
	if s.Character.PlayerClassData == nil {
		return ""
	}
	return ClassFromPath(s.Character.PlayerClassData.PlayerClassPath)
}

// Level counts the levels whose required experience the character has.
func (s *Save) Level() int {
	xp := s.Character.ExperiencePoints
	return lo.CountBy(requiredXP, func(required int32) bool {
		return xp >= required
	})
}

// SetLevel gives the character the least experience of level. With top set
// it gets the most experience that keeps it at level instead, except at
// MaxLevel.
func (s *Save) SetLevel(level int, top bool) error {
	if level < 1 || level > MaxLevel {
		return errors.Wrapf(ErrInvalidLevel, "save.SetLevel error: %d is outside 1..%d", level, MaxLevel)
	}
	if top && level < MaxLevel {
		s.Character.ExperiencePoints = requiredXP[level] - 1
		return nil
	}
	s.Character.ExperiencePoints = requiredXP[level-1]
	return nil
}

func (s *Save) currency(currency Currency) (*oak.InventoryCategory, bool) {
	return lo.Find(s.Character.InventoryCategoryList, func(category *oak.InventoryCategory) bool {
		found, ok := hashCurrencies[category.BaseCategoryDefinitionHash]
		return ok && found == currency
	})
}

// Currency is 0 when the save holds no balance for currency.
func (s *Save) Currency(currency Currency) int32 {
	if category, ok := s.currency(currency); ok {
		return category.Quantity
	}
	return 0
}

// SetCurrency updates the balance of currency, adding it to the save when
// missing.
func (s *Save) SetCurrency(currency Currency, value int32) error {
	if category, ok := s.currency(currency); ok {
		category.Quantity = value
		return nil
	}
	hash, ok := currencyHashes[currency]
	if !ok {
		return errors.Errorf("save.SetCurrency error: unknown currency %q", currency)
	}
	s.Character.InventoryCategoryList = append(s.Character.InventoryCategoryList, &oak.InventoryCategory{
		BaseCategoryDefinitionHash: hash,
		Quantity:                   value,
	})
	return nil
}

func (s *Save) Money() int32 {
	return s.Currency(CurrencyMoney)
}

func (s *Save) SetMoney(value int32) {
	_ = s.SetCurrency(CurrencyMoney, value)
}

func (s *Save) Eridium() int32 {
	return s.Currency(CurrencyEridium)
}

func (s *Save) SetEridium(value int32) {
	_ = s.SetCurrency(CurrencyEridium, value)
}

// SDUs maps every SDU of the save to the number bought. An SDU with a path
// missing from the table is keyed by its path.
func (s *Save) SDUs() map[SDUType]int32 {
	return lo.SliceToMap(s.Character.SDUList, func(sdu *oak.SDU) (SDUType, int32) {
		if sduType, ok := sduPaths[sdu.SDUDataPath]; ok {
			return sduType, sdu.SDULevel
		}
		return SDUType(sdu.SDUDataPath), sdu.SDULevel
	})
}

// SetMaxSDUs raises the given SDUs, or all of them when none are given, to
// their maximum. SDUs missing from the save are added in the order given.
func (s *Save) SetMaxSDUs(types ...SDUType) {
	if len(types) == 0 {
		types = SDUTypes
	}
	pending := lo.Filter(lo.Uniq(types), func(sduType SDUType, _ int) bool {
		_, ok := sduTable[sduType]
		return ok
	})
	for _, sdu := range s.Character.SDUList {
		sduType, ok := sduPaths[sdu.SDUDataPath]
		if !ok || !lo.Contains(pending, sduType) {
			continue
		}
		sdu.SDULevel = sduType.Max()
		pending = lo.Without(pending, sduType)
	}
	for _, sduType := range pending {
		s.Character.SDUList = append(s.Character.SDUList, &oak.SDU{
			SDULevel:    sduType.Max(),
			SDUDataPath: sduTable[sduType].path,
		})
	}
}

// isEridiumPool spots the eridium pool some saves list among the ammo.
func isEridiumPool(pool *oak.ResourcePool) bool {
	return strings.Contains(pool.ResourcePath, "Eridium")
}

// AmmoCounts maps every ammo pool of the save to its amount. A pool with a
// path missing from the table is keyed by its path.
func (s *Save) AmmoCounts() map[AmmoType]int {
	pools := lo.Filter(s.Character.ResourcePools, func(pool *oak.ResourcePool, _ int) bool {
		return !isEridiumPool(pool)
	})
	return lo.SliceToMap(pools, func(pool *oak.ResourcePool) (AmmoType, int) {
		if ammoType, ok := ammoPaths[pool.ResourcePath]; ok {
			return ammoType, int(pool.Amount)
		}
		return AmmoType(pool.ResourcePath), int(pool.Amount)
	})
}

// SetMaxAmmo fills every known ammo pool the save has. Missing pools are not
// added.
func (s *Save) SetMaxAmmo() {
	for _, pool := range s.Character.ResourcePools {
		if ammoType, ok := ammoPaths[pool.ResourcePath]; ok {
			pool.Amount = float32(ammoType.Max())
		}
	}
}
