package save

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

type (
	// PlayerClass names a character class. A class path missing from the
	// table below is used as its own name.
	PlayerClass string
	Currency    string
	SDUType     string
	AmmoType    string
	// ChallengeType names one of the challenges the editor completes to
	// unlock a game feature.
	ChallengeType string
	Vehicle       string
	tableEntry    struct {
		path  string
		label string
		max   int32
	}
)

const (
	ClassBeastmaster PlayerClass = "beastmaster"
	ClassGunner      PlayerClass = "gunner"
	ClassOperative   PlayerClass = "operative"
	ClassSiren       PlayerClass = "siren"

	CurrencyMoney   Currency = "money"
	CurrencyEridium Currency = "eridium"

	SDUBackpack SDUType = "backpack"
	SDUSniper   SDUType = "sniper"
	SDUShotgun  SDUType = "shotgun"
	SDUPistol   SDUType = "pistol"
	SDUGrenade  SDUType = "grenade"
	SDUSMG      SDUType = "smg"
	SDUAR       SDUType = "ar"
	SDUHeavy    SDUType = "heavy"

	AmmoAR      AmmoType = "ar"
	AmmoGrenade AmmoType = "grenade"
	AmmoHeavy   AmmoType = "heavy"
	AmmoPistol  AmmoType = "pistol"
	AmmoSMG     AmmoType = "smg"
	AmmoShotgun AmmoType = "shotgun"
	AmmoSniper  AmmoType = "sniper"

	ChallengeAnalyzer       ChallengeType = "analyzer"
	ChallengeResonator      ChallengeType = "resonator"
	ChallengeMayhem         ChallengeType = "mayhem"
	ChallengeArtifact       ChallengeType = "artifact"
	ChallengeCOMBeastmaster ChallengeType = "com_beastmaster"
	ChallengeCOMGunner      ChallengeType = "com_gunner"
	ChallengeCOMOperative   ChallengeType = "com_operative"
	ChallengeCOMSiren       ChallengeType = "com_siren"

	VehicleOutrunner Vehicle = "outrunner"
	VehicleTechnical Vehicle = "technical"
	VehicleCyclone   Vehicle = "cyclone"
)

// MaxLevel is the highest character level the game accepts.
const MaxLevel = 72

// requiredXP holds, for level n, the experience points needed to reach it
// at index n-1. It follows the game's curve 60*n^2.8 - 60, rounded up.
var requiredXP = lo.Map(make([]int32, MaxLevel), func(_ int32, i int) int32 {
	level := float64(i + 1)
	return int32(math.Ceil(60*math.Pow(level, 2.8) - 60))
})

var classTable = map[PlayerClass]tableEntry{
	ClassBeastmaster: {path: "/Game/PlayerCharacters/Beastmaster/PlayerClassId_Beastmaster.PlayerClassId_Beastmaster", label: "Beastmaster"},
	ClassGunner:      {path: "/Game/PlayerCharacters/Gunner/PlayerClassId_Gunner.PlayerClassId_Gunner", label: "Gunner"},
	ClassOperative:   {path: "/Game/PlayerCharacters/Operative/PlayerClassId_Operative.PlayerClassId_Operative", label: "Operative"},
	ClassSiren:       {path: "/Game/PlayerCharacters/SirenBrawler/PlayerClassId_Siren.PlayerClassId_Siren", label: "Siren"},
}

// Currencies are stored under the hash of their inventory category.
var currencyHashes = map[Currency]uint32{
	CurrencyMoney:   618814354,
	CurrencyEridium: 3679636065,
}

var SDUTypes = []SDUType{SDUBackpack, SDUSniper, SDUShotgun, SDUPistol, SDUGrenade, SDUSMG, SDUAR, SDUHeavy}

var AmmoTypes = []AmmoType{AmmoAR, AmmoGrenade, AmmoHeavy, AmmoPistol, AmmoSMG, AmmoShotgun, AmmoSniper}

var ChallengeTypes = []ChallengeType{
	ChallengeAnalyzer,
	ChallengeResonator,
	ChallengeMayhem,
	ChallengeArtifact,
	ChallengeCOMBeastmaster,
	ChallengeCOMGunner,
	ChallengeCOMOperative,
	ChallengeCOMSiren,
}

// AmmoSDUs are the SDUs that raise an ammo pool.
var AmmoSDUs = []SDUType{SDUSniper, SDUShotgun, SDUPistol, SDUGrenade, SDUSMG, SDUAR, SDUHeavy}

var sduTable = map[SDUType]tableEntry{
	SDUBackpack: {path: "/Game/Pickups/SDU/SDU_Backpack.SDU_Backpack", label: "Backpack", max: 13},
	SDUSniper:   {path: "/Game/Pickups/SDU/SDU_SniperRifle.SDU_SniperRifle", label: "Sniper", max: 13},
	SDUShotgun:  {path: "/Game/Pickups/SDU/SDU_Shotgun.SDU_Shotgun", label: "Shotgun", max: 13},
	SDUPistol:   {path: "/Game/Pickups/SDU/SDU_Pistol.SDU_Pistol", label: "Pistol", max: 13},
	SDUGrenade:  {path: "/Game/Pickups/SDU/SDU_Grenade.SDU_Grenade", label: "Grenade", max: 10},
	SDUSMG:      {path: "/Game/Pickups/SDU/SDU_SMG.SDU_SMG", label: "SMG", max: 13},
	SDUAR:       {path: "/Game/Pickups/SDU/SDU_AssaultRifle.SDU_AssaultRifle", label: "AR", max: 13},
	SDUHeavy:    {path: "/Game/Pickups/SDU/SDU_Heavy.SDU_Heavy", label: "Heavy", max: 13},
}

// The max of an ammo pool assumes every ammo SDU is bought.
var ammoTable = map[AmmoType]tableEntry{
	AmmoAR:      {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_AssaultRifle.Resource_Ammo_AssaultRifle", label: "AR", max: 1680},
	AmmoGrenade: {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Grenade.Resource_Ammo_Grenade", label: "Grenade", max: 13},
	AmmoHeavy:   {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Heavy.Resource_Ammo_Heavy", label: "Heavy", max: 51},
	AmmoPistol:  {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Pistol.Resource_Ammo_Pistol", label: "Pistol", max: 1200},
	AmmoSMG:     {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_SMG.Resource_Ammo_SMG", label: "SMG", max: 2160},
	AmmoShotgun: {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Shotgun.Resource_Ammo_Shotgun", label: "Shotgun", max: 280},
	AmmoSniper:  {path: "/Game/GameData/Weapons/Ammo/Resource_Ammo_Sniper.Resource_Ammo_Sniper", label: "Sniper", max: 204},
}

var challengeTable = map[ChallengeType]tableEntry{
	ChallengeAnalyzer:       {path: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Analyzer.Challenge_VaultReward_Analyzer_C", label: "Eridian Analyzer"},
	ChallengeResonator:      {path: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Resonator.Challenge_VaultReward_Resonator_C", label: "Eridian Resonator"},
	ChallengeMayhem:         {path: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Mayhem.Challenge_VaultReward_Mayhem_C", label: "Mayhem Mode"},
	ChallengeArtifact:       {path: "/Game/GameData/Challenges/Account/Challenge_VaultReward_Artifact.Challenge_VaultReward_Artifact_C", label: "Artifact Slot"},
	ChallengeCOMBeastmaster: {path: "/Game/GameData/Challenges/Character/Beastmaster/BP_Challenge_Beastmaster_ClassMod.BP_Challenge_Beastmaster_ClassMod_C", label: "Class Mod Slot"},
	ChallengeCOMGunner:      {path: "/Game/GameData/Challenges/Character/Gunner/BP_Challenge_Gunner_ClassMod.BP_Challenge_Gunner_ClassMod_C", label: "Class Mod Slot"},
	ChallengeCOMOperative:   {path: "/Game/GameData/Challenges/Character/Operative/BP_Challenge_Operative_ClassMod.BP_Challenge_Operative_ClassMod_C", label: "Class Mod Slot"},
	ChallengeCOMSiren:       {path: "/Game/GameData/Challenges/Character/Siren/BP_Challenge_Siren_ClassMod.BP_Challenge_Siren_ClassMod_C", label: "Class Mod Slot"},
}

// comChallenges ties each class to the challenge that opens its class mod
// slot. Those challenges only matter to their own class.
var comChallenges = map[PlayerClass]ChallengeType{
	ClassBeastmaster: ChallengeCOMBeastmaster,
	ClassGunner:      ChallengeCOMGunner,
	ClassOperative:   ChallengeCOMOperative,
	ClassSiren:       ChallengeCOMSiren,
}

var Vehicles = []Vehicle{VehicleOutrunner, VehicleTechnical, VehicleCyclone}

// Vehicle assets live under one directory per vehicle.
var vehiclePrefixes = map[Vehicle]string{
	VehicleOutrunner: "/Game/Vehicles/Outrunner/",
	VehicleTechnical: "/Game/Vehicles/Technical/",
	VehicleCyclone:   "/Game/Vehicles/Cyclone/",
}

var vehicleLabels = map[Vehicle]string{
	VehicleOutrunner: "Outrunner",
	VehicleTechnical: "Technical",
	VehicleCyclone:   "Cyclone",
}

func invert[K comparable](table map[K]tableEntry) map[string]K {
	return lo.SliceToMap(lo.Keys(table), func(key K) (string, K) {
		return table[key].path, key
	})
}

var (
	classPaths     = invert(classTable)
	sduPaths       = invert(sduTable)
	ammoPaths      = invert(ammoTable)
	challengePaths = invert(challengeTable)
	hashCurrencies = lo.Invert(currencyHashes)
)

func ClassFromPath(path string) PlayerClass {
	if class, ok := classPaths[path]; ok {
		return class
	}
	return PlayerClass(path)
}

func (c PlayerClass) Path() string {
	if entry, ok := classTable[c]; ok {
		return entry.path
	}
	return string(c)
}

func (c PlayerClass) Label() string {
	if entry, ok := classTable[c]; ok {
		return entry.label
	}
	return string(c)
}

func (t SDUType) Label() string {
	if entry, ok := sduTable[t]; ok {
		return entry.label
	}
	return string(t)
}

func (t SDUType) Max() int32 {
	return sduTable[t].max
}

func (t AmmoType) Label() string {
	if entry, ok := ammoTable[t]; ok {
		return entry.label
	}
	return string(t)
}

func (t AmmoType) Max() int32 {
	return ammoTable[t].max
}

func (t ChallengeType) Path() string {
	return challengeTable[t].path
}

func (t ChallengeType) Label() string {
	if entry, ok := challengeTable[t]; ok {
		return entry.label
	}
	return string(t)
}

func (v Vehicle) Label() string {
	if label, ok := vehicleLabels[v]; ok {
		return label
	}
	return string(v)
}

// VehicleFromPath finds the vehicle an asset belongs to by its directory.
func VehicleFromPath(path string) (Vehicle, bool) {
	return lo.FindKeyBy(vehiclePrefixes, func(_ Vehicle, prefix string) bool {
		return strings.HasPrefix(path, prefix)
	})
}
