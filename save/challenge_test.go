package save

import (
	"testing"

	"bl3-savior/oak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChallengeSave() *Save {
	s := sampleProgressSave()
	s.Character.ChallengeData = []*oak.Challenge{
		{ChallengeClassPath: ChallengeAnalyzer.Path(), IsActive: true, ProgressCounter: 4},
		{ChallengeClassPath: ChallengeMayhem.Path(), IsActive: true},
		{ChallengeClassPath: ChallengeArtifact.Path(), IsActive: true},
		{ChallengeClassPath: ChallengeCOMGunner.Path(), IsActive: true},
		{ChallengeClassPath: ChallengeCOMSiren.Path(), IsActive: true},
		{ChallengeClassPath: "/Game/GameData/Challenges/Other", CurrentlyCompleted: true},
	}
	return s
}

func TestChallenges(t *testing.T) {
	s := sampleChallengeSave()
	assert.Equal(t, map[ChallengeType]bool{
		ChallengeAnalyzer:  false,
		ChallengeMayhem:    false,
		ChallengeArtifact:  false,
		ChallengeCOMGunner: false,
	}, s.Challenges())
}

func TestUnlockChallenge(t *testing.T) {
	s := sampleChallengeSave()
	require.NoError(t, s.UnlockChallenge(ChallengeAnalyzer))
	challenge := s.Character.ChallengeData[0]
	assert.True(t, challenge.CurrentlyCompleted)
	assert.False(t, challenge.IsActive)
	assert.Equal(t, int32(1), challenge.CompletedCount)
	assert.Equal(t, int32(0), challenge.ProgressCounter)
	assert.True(t, s.Challenges()[ChallengeAnalyzer])

	assert.ErrorIs(t, s.UnlockChallenge(ChallengeResonator), ErrChallengeNotFound)
	assert.Len(t, s.Character.ChallengeData, 6)
}

func TestUnlockSlotChallenges(t *testing.T) {
	s := sampleChallengeSave()
	require.NoError(t, s.UnlockSlotChallenges(SlotWeapon3))
	assert.False(t, s.Challenges()[ChallengeArtifact])

	require.NoError(t, s.UnlockSlotChallenges(SlotArtifact, SlotClassMod))
	assert.True(t, s.Challenges()[ChallengeArtifact])
	assert.True(t, s.Challenges()[ChallengeCOMGunner])
	assert.False(t, s.Character.ChallengeData[4].CurrentlyCompleted)

	s.Character.PlayerClassData = nil
	assert.ErrorIs(t, s.UnlockSlotChallenges(), ErrUnknownClass)
}

func TestVehicles(t *testing.T) {
	s := sampleSave(1)
	outrunner := "/Game/Vehicles/Outrunner/Design/ChassisA"
	cyclone := "/Game/Vehicles/Cyclone/Design/ChassisA"
	s.Character.VehiclesUnlockedData = []*oak.VehicleUnlocked{{AssetPath: outrunner}}
	s.Character.VehiclePartsUnlocked = []string{"/Game/Vehicles/Outrunner/Parts/Wheel", "/Game/Other/Part"}

	assert.Equal(t, map[Vehicle]int{VehicleOutrunner: 1}, s.VehicleChassisCounts())
	assert.Equal(t, map[Vehicle]int{VehicleOutrunner: 1}, s.VehiclePartCounts())

	assert.Equal(t, 1, s.UnlockVehicleChassis(outrunner, cyclone, cyclone))
	require.Len(t, s.Character.VehiclesUnlockedData, 2)
	assert.True(t, s.Character.VehiclesUnlockedData[1].JustUnlocked)
	assert.False(t, s.Character.VehiclesUnlockedData[0].JustUnlocked)
	assert.Equal(t, map[Vehicle]int{VehicleOutrunner: 1, VehicleCyclone: 1}, s.VehicleChassisCounts())

	assert.Equal(t, 1, s.UnlockVehicleParts("/game/vehicles/outrunner/parts/wheel", "/Game/Vehicles/Technical/Skins/Red"))
	assert.Equal(t, map[Vehicle]int{VehicleOutrunner: 1, VehicleTechnical: 1}, s.VehiclePartCounts())
}

func TestVehicleFromPath(t *testing.T) {
	vehicle, ok := VehicleFromPath("/Game/Vehicles/Technical/Design/Chassis")
	assert.True(t, ok)
	assert.Equal(t, VehicleTechnical, vehicle)
	assert.Equal(t, "Technical", vehicle.Label())
	_, ok = VehicleFromPath("/Game/Vehicles/Jetpack/Design/Chassis")
	assert.False(t, ok)
}
