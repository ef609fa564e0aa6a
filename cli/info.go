package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bl3-savior/ds"
	"bl3-savior/oak"
	"bl3-savior/save"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type (
	InfoCmd struct {
		File       string `arg:"positional,required" help:"savegame or snapshot to read" placeholder:"FILE"`
		Items      bool   `help:"list inventory items and equipped slots"`
		Missions   bool   `help:"list active missions per playthrough"`
		FastTravel bool   `arg:"--fast-travel" help:"list unlocked fast travel stations per playthrough"`
		JSON       bool   `arg:"--json" help:"print one JSON document instead of text"`
	}
)

func StartInfo(cmd InfoCmd, logger *slog.Logger, stdout io.Writer) error {
	if !CheckExistence(cmd.File) {
		return errors.Errorf("source file %s does not exist", cmd.File)
	}
	s, err := save.Open(cmd.File, save.WithLogger(logger))
	if err != nil {
		return err
	}
	doc, err := BuildInfo(s, cmd)
	if err != nil {
		return err
	}
	if cmd.JSON {
		bs, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "cli.StartInfo error")
		}
		_, err = fmt.Fprintln(stdout, string(bs))
		return errors.Wrap(err, "cli.StartInfo error")
	}
	buf := strings.Builder{}
	RenderInfo(&buf, doc, 0)
	_, err = io.WriteString(stdout, buf.String())
	return errors.Wrap(err, "cli.StartInfo error")
}

// BuildInfo collects the summary of s into an ordered document, so the text
// and JSON outputs list fields in the same order.
func BuildInfo(s *save.Save, cmd InfoCmd) (*orderedmap.OrderedMap, error) {
	digest, err := s.PayloadDigest()
	if err != nil {
		return nil, err
	}

	header := orderedmap.New()
	header.Set("save_game_version", s.Header.SaveGameVersion)
	header.Set("package_version", s.Header.PackageVersion)
	header.Set("engine_version", save.EngineVersion(s.Header))
	header.Set("build_id", s.Header.BuildID)
	header.Set("custom_format_version", s.Header.CustomFormatVersion)
	header.Set("custom_format_entries", len(s.Header.CustomFormatData))
	header.Set("save_game_type", s.Header.SaveGameType)

	character := orderedmap.New()
	character.Set("name", s.CharacterName())
	character.Set("save_game_id", s.SaveGameID())
	if class := s.PlayerClass(); class != "" {
		character.Set("class", class.Label())
	} else {
		character.Set("class", nil)
	}
	character.Set("level", s.Level())
	character.Set("experience_points", s.ExperiencePoints())
	character.Set("money", s.Money())
	character.Set("eridium", s.Eridium())
	character.Set("playthroughs_completed", s.PlaythroughsCompleted())
	character.Set("inventory_items", len(s.Items()))
	character.Set("payload_blake3", digest)
	character.Set("sdus", buildSDUs(s))
	character.Set("ammo", buildAmmo(s))
	character.Set("challenges", buildChallenges(s))
	character.Set("vehicles", buildVehicles(s))

	completed := s.CompletedMissionCounts()
	playthroughs := make([]any, 0)
	for _, pt := range ds.MakeRange(0, s.MaxPlaythroughWithData()+1, 1) {
		playthrough := orderedmap.New()
		playthrough.Set("playthrough", pt)
		mayhem, _ := s.MayhemLevel(pt)
		playthrough.Set("mayhem_level", mayhem)
		station, _ := s.LastStation(pt)
		playthrough.Set("last_station", station)
		playthrough.Set("completed_missions", completed[pt])
		if cmd.Missions {
			active, _ := s.MissionsFor(pt, oak.MissionActive)
			playthrough.Set("active_missions", active)
		}
		if cmd.FastTravel {
			stations, _ := s.FastTravelStationsFor(pt)
			playthrough.Set("fast_travel_stations", stations)
		}
		playthroughs = append(playthroughs, playthrough)
	}

	doc := orderedmap.New()
	doc.Set("header", header)
	doc.Set("character", character)
	doc.Set("playthroughs", playthroughs)
	if cmd.Items {
		doc.Set("equipped", buildEquipped(s))
		doc.Set("items", buildItems(s))
	}
	return doc, nil
}

// orderedKeys lists the keys of m found in known, in that order, then the
// rest sorted.
func orderedKeys[K ~string, V any](m map[K]V, known []K) []K {
	keys := lo.Filter(known, func(key K, _ int) bool {
		_, ok := m[key]
		return ok
	})
	rest := lo.Filter(lo.Keys(m), func(key K, _ int) bool {
		return !lo.Contains(known, key)
	})
	slices.Sort(rest)
	return append(keys, rest...)
}

// buildEquipped lists every slot the save has. Slots with a path missing
// from the slot table come last, under their path.
func buildEquipped(s *save.Save) *orderedmap.OrderedMap {
	equipped := orderedmap.New()
	equippedItems := s.EquippedItems()
	for _, slot := range orderedKeys(equippedItems, save.Slots) {
		item := equippedItems[slot]
		if item == nil {
			equipped.Set(slot.Label(), nil)
			continue
		}
		equipped.Set(slot.Label(), item.SerialBase64())
	}
	return equipped
}

func buildSDUs(s *save.Save) *orderedmap.OrderedMap {
	result := orderedmap.New()
	sdus := s.SDUs()
	for _, sduType := range orderedKeys(sdus, save.SDUTypes) {
		result.Set(sduType.Label(), fmt.Sprintf("%d/%d", sdus[sduType], sduType.Max()))
	}
	return result
}

func buildAmmo(s *save.Save) *orderedmap.OrderedMap {
	result := orderedmap.New()
	ammo := s.AmmoCounts()
	for _, ammoType := range orderedKeys(ammo, save.AmmoTypes) {
		result.Set(ammoType.Label(), ammo[ammoType])
	}
	return result
}

func buildChallenges(s *save.Save) *orderedmap.OrderedMap {
	result := orderedmap.New()
	challenges := s.Challenges()
	for _, challengeType := range orderedKeys(challenges, save.ChallengeTypes) {
		result.Set(challengeType.Label(), challenges[challengeType])
	}
	return result
}

func buildVehicles(s *save.Save) *orderedmap.OrderedMap {
	result := orderedmap.New()
	chassis := s.VehicleChassisCounts()
	parts := s.VehiclePartCounts()
	for _, vehicle := range save.Vehicles {
		result.Set(vehicle.Label(), fmt.Sprintf("%d chassis, %d parts", chassis[vehicle], parts[vehicle]))
	}
	return result
}

func buildItems(s *save.Save) []any {
	return lo.Map(s.Items(), func(item *save.Item, i int) any {
		entry := orderedmap.New()
		entry.Set("index", i)
		entry.Set("serial", item.SerialBase64())
		entry.Set("pickup_order", item.PickupOrderIndex())
		entry.Set("flags", FlagNames(item.Flags()))
		return entry
	})
}

// RenderInfo writes doc as indented "key: value" lines. Nested documents
// and lists go one level deeper.
func RenderInfo(b *strings.Builder, doc *orderedmap.OrderedMap, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range doc.Keys() {
		value, _ := doc.Get(key)
		label := strings.ReplaceAll(key, "_", " ")
		switch typed := value.(type) {
		case *orderedmap.OrderedMap:
			b.WriteString(indent + label + ":\n")
			RenderInfo(b, typed, depth+1)
		case []any:
			b.WriteString(indent + label + ":\n")
			for _, element := range typed {
				if nested, ok := element.(*orderedmap.OrderedMap); ok {
					RenderInfo(b, nested, depth+1)
					b.WriteString("\n")
					continue
				}
				b.WriteString(fmt.Sprintf("%s  - %v\n", indent, element))
			}
		case []string:
			if len(typed) == 0 {
				b.WriteString(indent + label + ": (none)\n")
				continue
			}
			b.WriteString(indent + label + ":\n")
			for _, element := range typed {
				b.WriteString(indent + "  - " + element + "\n")
			}
		case *string:
			if typed == nil {
				b.WriteString(indent + label + ": (none)\n")
				continue
			}
			b.WriteString(indent + label + ": " + *typed + "\n")
		case nil:
			b.WriteString(indent + label + ": (empty)\n")
		default:
			b.WriteString(fmt.Sprintf("%s%s: %v\n", indent, label, typed))
		}
	}
}
