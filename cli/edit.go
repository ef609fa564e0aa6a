package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"bl3-savior/config"
	"bl3-savior/ds"
	"bl3-savior/save"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	EditCmd struct {
		Input  string `arg:"positional,required" help:"savegame or snapshot to read" placeholder:"INPUT"`
		Output string `arg:"positional,required" help:"file to write" placeholder:"OUTPUT"`
		// Format falls back to edit.output from the config file.
		Format string `arg:"-o,--output" help:"savegame, protobuf, json, items, items-ini or snapshot" placeholder:"FORMAT"`
		Force  bool   `help:"overwrite the output file"`
		Quiet  bool   `arg:"-q,--quiet" help:"only print errors"`

		Name       string   `help:"set the character name" placeholder:"NAME"`
		SaveGameID *uint32  `arg:"--save-game-id" help:"set the savegame ID" placeholder:"ID"`
		Mayhem     *int32   `help:"set the mayhem level of every playthrough (0-10), unlocking mayhem mode above 0" placeholder:"LEVEL"`
		Level      *int     `help:"set the character level (1-72)" placeholder:"LEVEL"`
		LevelMax   bool     `arg:"--level-max" help:"set the character to the highest level"`
		Money      *int32   `help:"set the money balance" placeholder:"AMOUNT"`
		Eridium    *int32   `help:"set the eridium balance" placeholder:"AMOUNT"`
		Unlock     []string `help:"ammo, backpack, analyzer, resonator, gunslots, artifactslot, comslot, allslots, vehicles, vehicleskins, tvhm or all; may repeat" placeholder:"WHAT"`

		CopyNVHM         bool   `arg:"--copy-nvhm" help:"copy playthrough 0 onto playthrough 1, unlocking TVHM if needed"`
		UnfinishNVHM     bool   `arg:"--unfinish-nvhm" help:"mark NVHM unfinished and clear playthrough 1 and above"`
		CopyPlaythrough  string `arg:"--copy-playthrough" help:"copy playthrough data, indexes start at 0" placeholder:"FROM:TO"`
		CopyFrom         string `arg:"--copy-from" help:"read --copy-playthrough data from this save instead" placeholder:"FILE"`
		ClearPlaythrough *int   `arg:"--clear-playthrough" help:"clear playthrough N and every one after it" placeholder:"N"`

		ImportItems    string `arg:"--import-items" help:"add items from a line or .ini export" placeholder:"FILE"`
		ImportProtobuf string `arg:"--import-protobuf" help:"replace the payload with a raw protobuf file" placeholder:"FILE"`
		ImportJSON     string `arg:"--import-json" help:"replace the payload with a JSON file" placeholder:"FILE"`
	}
	// printer writes progress lines unless quiet is set.
	printer struct {
		w     io.Writer
		quiet bool
	}
)

const (
	UnlockAmmo         = "ammo"
	UnlockBackpack     = "backpack"
	UnlockAnalyzer     = "analyzer"
	UnlockResonator    = "resonator"
	UnlockGunSlots     = "gunslots"
	UnlockArtifactSlot = "artifactslot"
	UnlockComSlot      = "comslot"
	UnlockAllSlots     = "allslots"
	UnlockVehicles     = "vehicles"
	UnlockVehicleSkins = "vehicleskins"
	UnlockTVHM         = "tvhm"
	UnlockAll          = "all"
)

var unlockSlots = map[string][]save.Slot{
	UnlockGunSlots:     {save.SlotWeapon3, save.SlotWeapon4},
	UnlockArtifactSlot: {save.SlotArtifact},
	UnlockComSlot:      {save.SlotClassMod},
}

var unlockChallenges = map[string]save.ChallengeType{
	UnlockAnalyzer:  save.ChallengeAnalyzer,
	UnlockResonator: save.ChallengeResonator,
}

var unlockLabels = map[string]string{
	UnlockAmmo:         "Ammo SDUs (and setting ammo to max)",
	UnlockBackpack:     "Backpack SDUs",
	UnlockAnalyzer:     "Eridian Analyzer",
	UnlockResonator:    "Eridian Resonator",
	UnlockGunSlots:     "Weapon Slots (3+4)",
	UnlockArtifactSlot: "Artifact Inventory Slot",
	UnlockComSlot:      "COM Inventory Slot",
	UnlockVehicles:     "Vehicles (and parts)",
	UnlockVehicleSkins: "Vehicle Skins",
	UnlockTVHM:         "TVHM",
}

// unlockOrder is also the order unlocks are applied in.
var unlockOrder = []string{
	UnlockAmmo,
	UnlockBackpack,
	UnlockAnalyzer,
	UnlockResonator,
	UnlockGunSlots,
	UnlockArtifactSlot,
	UnlockComSlot,
	UnlockVehicles,
	UnlockVehicleSkins,
	UnlockTVHM,
}

func (p *printer) Println(line string) {
	if !p.quiet {
		fmt.Fprintln(p.w, line)
	}
}

func (p *printer) Printf(format string, a ...any) {
	if !p.quiet {
		fmt.Fprintf(p.w, format, a...)
	}
}

// ExpandUnlocks resolves "all" and "allslots" and drops duplicates. The
// result follows unlockOrder.
func ExpandUnlocks(unlocks []string) ([]string, error) {
	wanted := map[string]bool{}
	for _, unlock := range unlocks {
		switch unlock {
		case UnlockAll:
			lo.ForEach(unlockOrder, func(u string, _ int) { wanted[u] = true })
		case UnlockAllSlots:
			wanted[UnlockGunSlots] = true
			wanted[UnlockArtifactSlot] = true
			wanted[UnlockComSlot] = true
		default:
			if !lo.Contains(unlockOrder, unlock) {
				return nil, errors.Errorf("unknown unlock %q", unlock)
			}
			wanted[unlock] = true
		}
	}
	return lo.Filter(unlockOrder, func(u string, _ int) bool { return wanted[u] }), nil
}

// ParsePlaythroughPair parses "FROM:TO".
func ParsePlaythroughPair(text string) (int, int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("%q is not FROM:TO", text)
	}
	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%q is not FROM:TO", text)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%q is not FROM:TO", text)
	}
	return from, to, nil
}

// Validate checks flag combinations that do not need the save itself.
func (cmd *EditCmd) Validate() error {
	if !lo.Contains(config.OutputFormats, cmd.Format) {
		return errors.Errorf("output format %q is not one of %s", cmd.Format, strings.Join(config.OutputFormats, ", "))
	}
	unlocks, err := ExpandUnlocks(cmd.Unlock)
	if err != nil {
		return err
	}
	if cmd.CopyNVHM && cmd.UnfinishNVHM {
		return errors.New("--copy-nvhm and --unfinish-nvhm cannot be used together")
	}
	if cmd.UnfinishNVHM && lo.Contains(unlocks, UnlockTVHM) {
		return errors.New("cannot both unlock TVHM and un-finish NVHM")
	}
	if cmd.Mayhem != nil && (*cmd.Mayhem < 0 || *cmd.Mayhem > save.MayhemMax) {
		return errors.Errorf("mayhem level %d is outside 0-%d", *cmd.Mayhem, save.MayhemMax)
	}
	if cmd.Level != nil && cmd.LevelMax {
		return errors.New("--level and --level-max cannot be used together")
	}
	if cmd.Level != nil && (*cmd.Level < 1 || *cmd.Level > save.MaxLevel) {
		return errors.Errorf("level %d is outside 1-%d", *cmd.Level, save.MaxLevel)
	}
	if cmd.Money != nil && *cmd.Money < 0 {
		return errors.Errorf("--money %d is negative", *cmd.Money)
	}
	if cmd.Eridium != nil && *cmd.Eridium < 0 {
		return errors.Errorf("--eridium %d is negative", *cmd.Eridium)
	}
	if cmd.CopyFrom != "" && cmd.CopyPlaythrough == "" {
		return errors.New("--copy-from needs --copy-playthrough")
	}
	if cmd.CopyPlaythrough != "" {
		if _, _, err := ParsePlaythroughPair(cmd.CopyPlaythrough); err != nil {
			return err
		}
	}
	if cmd.ClearPlaythrough != nil && *cmd.ClearPlaythrough < 0 {
		return errors.Errorf("--clear-playthrough %d is negative", *cmd.ClearPlaythrough)
	}
	if cmd.ImportProtobuf != "" && cmd.ImportJSON != "" {
		return errors.New("--import-protobuf and --import-json cannot be used together")
	}
	return nil
}

func StartEditing(cmd EditCmd, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	if cmd.Format == "" {
		cmd.Format = cfg.Edit.Output
	}
	cmd.Quiet = cmd.Quiet || cfg.Edit.Quiet
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := ValidateVehicles(cfg.Edit.Vehicles); err != nil {
		return err
	}
	if !CheckExistence(cmd.Input) {
		return errors.Errorf("source file %s does not exist", cmd.Input)
	}
	if CheckExistence(cmd.Output) && !cmd.Force {
		return errors.Errorf("destination file %s exists; type the command again with --force to overwrite it", cmd.Output)
	}

	p := &printer{w: stdout, quiet: cmd.Quiet}
	p.Println("Loading " + cmd.Input)
	s, err := save.Open(cmd.Input, save.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := ApplyEdits(s, cmd, cfg.Edit.Vehicles, logger, p); err != nil {
		return err
	}
	return WriteOutput(s, cmd.Format, cmd.Output, p)
}

// ValidateVehicles checks that the configured vehicle tables name known
// vehicles.
func ValidateVehicles(vehicles map[string]config.VehicleConfig) error {
	for name := range vehicles {
		if !lo.Contains(save.Vehicles, save.Vehicle(name)) {
			return errors.Errorf("edit.vehicles names unknown vehicle %q", name)
		}
	}
	return nil
}

// ApplyEdits runs the requested changes in a fixed order: payload import,
// character fields, unlocks, item import, playthrough operations.
func ApplyEdits(s *save.Save, cmd EditCmd, vehicles map[string]config.VehicleConfig, logger *slog.Logger, p *printer) error {
	unlocks, err := ExpandUnlocks(cmd.Unlock)
	if err != nil {
		return err
	}
	if cmd.CopyNVHM && s.PlaythroughsCompleted() < 1 && !lo.Contains(unlocks, UnlockTVHM) {
		unlocks = append(unlocks, UnlockTVHM)
	}

	if cmd.ImportProtobuf != "" {
		p.Println(" - Importing protobuf payload from " + cmd.ImportProtobuf)
		bs, err := os.ReadFile(cmd.ImportProtobuf)
		if err != nil {
			return errors.Wrap(err, "cli.ApplyEdits error")
		}
		if err := s.ImportProtobuf(bs); err != nil {
			return err
		}
	}
	if cmd.ImportJSON != "" {
		p.Println(" - Importing JSON payload from " + cmd.ImportJSON)
		bs, err := os.ReadFile(cmd.ImportJSON)
		if err != nil {
			return errors.Wrap(err, "cli.ApplyEdits error")
		}
		if err := s.ImportText(bs); err != nil {
			return err
		}
	}

	if cmd.Name != "" {
		p.Println(" - Setting Character Name to: " + cmd.Name)
		s.SetCharacterName(cmd.Name)
	}
	if cmd.SaveGameID != nil {
		p.Printf(" - Setting Savegame ID to: %d\n", *cmd.SaveGameID)
		s.SetSaveGameID(*cmd.SaveGameID)
	}
	if cmd.Mayhem != nil {
		p.Printf(" - Setting Mayhem Level to: %d\n", *cmd.Mayhem)
		if err := s.SetAllMayhemLevels(*cmd.Mayhem); err != nil {
			return err
		}
		if *cmd.Mayhem > 0 {
			if err := s.UnlockChallenge(save.ChallengeMayhem); err != nil {
				return err
			}
		}
	}
	if cmd.Level != nil {
		p.Printf(" - Setting Character Level to: %d\n", *cmd.Level)
		if err := s.SetLevel(*cmd.Level, false); err != nil {
			return err
		}
	} else if cmd.LevelMax {
		p.Printf(" - Setting Character Level to: %d\n", save.MaxLevel)
		if err := s.SetLevel(save.MaxLevel, false); err != nil {
			return err
		}
	}
	if cmd.Money != nil {
		p.Printf(" - Setting Money to: %d\n", *cmd.Money)
		s.SetMoney(*cmd.Money)
	}
	if cmd.Eridium != nil {
		p.Printf(" - Setting Eridium to: %d\n", *cmd.Eridium)
		s.SetEridium(*cmd.Eridium)
	}

	if len(unlocks) > 0 {
		p.Println(" - Processing Unlocks:")
	}
	for _, unlock := range unlocks {
		p.Println("   - " + unlockLabels[unlock])
		if err := applyUnlock(s, unlock, vehicles, logger); err != nil {
			return err
		}
	}

	if cmd.ImportItems != "" {
		if _, err := ImportItems(s, cmd.ImportItems, p); err != nil {
			return err
		}
	}

	if cmd.CopyNVHM {
		p.Println(" - Copying NVHM state to TVHM")
		if err := s.CopyPlaythroughData(nil, 0, 1); err != nil {
			return err
		}
	} else if cmd.UnfinishNVHM {
		p.Println(" - Un-finishing NVHM state entirely")
		s.SetPlaythroughsCompleted(0)
		if err := s.ClearPlaythroughData(1); err != nil {
			return err
		}
	}

	if cmd.CopyPlaythrough != "" {
		from, to, err := ParsePlaythroughPair(cmd.CopyPlaythrough)
		if err != nil {
			return err
		}
		var src *save.Save
		if cmd.CopyFrom != "" {
			p.Println(" - Loading playthrough source " + cmd.CopyFrom)
			src, err = save.Open(cmd.CopyFrom, save.WithLogger(logger))
			if err != nil {
				return err
			}
		}
		p.Printf(" - Copying playthrough %d to %d\n", from, to)
		if err := s.CopyPlaythroughData(src, from, to); err != nil {
			return err
		}
	}
	if cmd.ClearPlaythrough != nil {
		p.Printf(" - Clearing playthrough %d and above\n", *cmd.ClearPlaythrough)
		if err := s.ClearPlaythroughData(*cmd.ClearPlaythrough); err != nil {
			return err
		}
	}
	return nil
}

func applyUnlock(s *save.Save, unlock string, vehicles map[string]config.VehicleConfig, logger *slog.Logger) error {
	switch unlock {
	case UnlockAmmo:
		s.SetMaxSDUs(save.AmmoSDUs...)
		s.SetMaxAmmo()
	case UnlockBackpack:
		s.SetMaxSDUs(save.SDUBackpack)
	case UnlockAnalyzer, UnlockResonator:
		return s.UnlockChallenge(unlockChallenges[unlock])
	case UnlockGunSlots:
		s.UnlockSlots(unlockSlots[unlock]...)
	case UnlockArtifactSlot, UnlockComSlot:
		s.UnlockSlots(unlockSlots[unlock]...)
		return s.UnlockSlotChallenges(unlockSlots[unlock]...)
	case UnlockVehicles, UnlockVehicleSkins:
		unlockVehicles(s, unlock, vehicles, logger)
	case UnlockTVHM:
		if s.PlaythroughsCompleted() < 1 {
			s.SetPlaythroughsCompleted(1)
		}
	default:
		return ds.ErrUnreachableCode{Caller: "cli.applyUnlock", Value: unlock}
	}
	return nil
}

// unlockVehicles adds the configured assets of every vehicle. Nothing
// configured means nothing to add.
func unlockVehicles(s *save.Save, unlock string, vehicles map[string]config.VehicleConfig, logger *slog.Logger) {
	if len(vehicles) == 0 {
		logger.Warn("no vehicle assets configured, skipping unlock", "unlock", unlock, "key", "edit.vehicles")
		return
	}
	for _, vehicle := range save.Vehicles {
		assets, ok := vehicles[string(vehicle)]
		if !ok {
			continue
		}
		if unlock == UnlockVehicleSkins {
			added := s.UnlockVehicleParts(assets.Skins...)
			logger.Debug("unlocked vehicle skins", "vehicle", vehicle, "added", added)
			continue
		}
		chassis := s.UnlockVehicleChassis(assets.Chassis...)
		parts := s.UnlockVehicleParts(assets.Parts...)
		logger.Debug("unlocked vehicle", "vehicle", vehicle, "chassis", chassis, "parts", parts)
	}
}

// WriteOutput encodes s fully before touching path.
func WriteOutput(s *save.Save, format string, path string, p *printer) error {
	switch format {
	case "savegame":
		if err := s.WriteSavegame(path); err != nil {
			return err
		}
		p.Println("Wrote savegame to " + path)
	case "protobuf":
		if err := s.WriteProtobuf(path); err != nil {
			return err
		}
		p.Println("Wrote protobuf to " + path)
	case "json":
		if err := s.WriteText(path); err != nil {
			return err
		}
		p.Println("Wrote JSON to " + path)
	case "snapshot":
		if err := s.WriteSnapshot(path); err != nil {
			return err
		}
		p.Println("Wrote snapshot to " + path)
	case "items", "items-ini":
		items := s.Items()
		buf := bytes.Buffer{}
		write := WriteItemLines
		if format == "items-ini" {
			write = WriteItemsINI
		}
		if err := write(&buf, items); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return errors.Wrap(err, "cli.WriteOutput error")
		}
		p.Printf("Wrote %d items to %s\n", len(items), path)
	default:
		return ds.ErrUnreachableCode{Caller: "cli.WriteOutput", Value: format}
	}
	return nil
}
