package save

import (
	"strings"

	"bl3-savior/oak"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func (s *Save) challenge(challengeType ChallengeType) (*oak.Challenge, bool) {
	path := challengeType.Path()
	return lo.Find(s.Character.ChallengeData, func(challenge *oak.Challenge) bool {
		return challenge.ChallengeClassPath == path
	})
}

// Challenges reports which of the known challenges the save has completed.
// Class mod challenges are listed for the character's own class only.
func (s *Save) Challenges() map[ChallengeType]bool {
	class := s.PlayerClass()
	result := map[ChallengeType]bool{}
	for _, challenge := range s.Character.ChallengeData {
		challengeType, ok := challengePaths[challenge.ChallengeClassPath]
		if !ok {
			continue
		}
		if owner, isCOM := lo.FindKey(comChallenges, challengeType); isCOM && owner != class {
			continue
		}
		result[challengeType] = challenge.CurrentlyCompleted
	}
	return result
}

// UnlockChallenge marks the challenge completed. The game creates every
// challenge entry itself, so a missing one is an error rather than added.
func (s *Save) UnlockChallenge(challengeType ChallengeType) error {
	challenge, ok := s.challenge(challengeType)
	if !ok {
		return errors.Wrapf(ErrChallengeNotFound, "save.UnlockChallenge error: %s", challengeType)
	}
	challenge.CurrentlyCompleted = true
	challenge.IsActive = false
	challenge.CompletedCount = 1
	challenge.ProgressCounter = 0
	challenge.CompletedProgressLevel = 0
	return nil
}

// UnlockClassModChallenge completes the class mod challenge of the
// character's own class.
func (s *Save) UnlockClassModChallenge() error {
	class := s.PlayerClass()
	challengeType, ok := comChallenges[class]
	if !ok {
		return errors.Wrapf(ErrUnknownClass, "save.UnlockClassModChallenge error: %q", class)
	}
	return s.UnlockChallenge(challengeType)
}

// UnlockSlotChallenges completes the challenges that open the artifact and
// class mod slots when those slots are among the given ones, or when none
// are given. The other slots need no challenge.
func (s *Save) UnlockSlotChallenges(slots ...Slot) error {
	if len(slots) == 0 {
		slots = Slots
	}
	if lo.Contains(slots, SlotArtifact) {
		if err := s.UnlockChallenge(ChallengeArtifact); err != nil {
			return err
		}
	}
	if lo.Contains(slots, SlotClassMod) {
		return s.UnlockClassModChallenge()
	}
	return nil
}

func countByVehicle(paths []string) map[Vehicle]int {
	counts := map[Vehicle]int{}
	for _, path := range paths {
		if vehicle, ok := VehicleFromPath(path); ok {
			counts[vehicle]++
		}
	}
	return counts
}

// VehicleChassisCounts counts the unlocked chassis of each vehicle.
func (s *Save) VehicleChassisCounts() map[Vehicle]int {
	return countByVehicle(lo.Map(s.Character.VehiclesUnlockedData, func(vehicle *oak.VehicleUnlocked, _ int) string {
		return vehicle.AssetPath
	}))
}

// VehiclePartCounts counts the unlocked parts and skins of each vehicle.
func (s *Save) VehiclePartCounts() map[Vehicle]int {
	return countByVehicle(s.Character.VehiclePartsUnlocked)
}

// UnlockVehicleChassis adds the chassis not yet unlocked, flagged as new to
// the game, and returns how many were added.
func (s *Save) UnlockVehicleChassis(paths ...string) int {
	owned := lo.SliceToMap(s.Character.VehiclesUnlockedData, func(vehicle *oak.VehicleUnlocked) (string, bool) {
		return strings.ToLower(vehicle.AssetPath), true
	})
	added := 0
	for _, path := range paths {
		if owned[strings.ToLower(path)] {
			continue
		}
		owned[strings.ToLower(path)] = true
		s.Character.VehiclesUnlockedData = append(s.Character.VehiclesUnlockedData, &oak.VehicleUnlocked{
			AssetPath:    path,
			JustUnlocked: true,
		})
		added++
	}
	return added
}

// UnlockVehicleParts adds the parts or skins not yet unlocked and returns
// how many were added.
func (s *Save) UnlockVehicleParts(paths ...string) int {
	owned := lo.SliceToMap(s.Character.VehiclePartsUnlocked, func(path string) (string, bool) {
		return strings.ToLower(path), true
	})
	added := 0
	for _, path := range paths {
		if owned[strings.ToLower(path)] {
			continue
		}
		owned[strings.ToLower(path)] = true
		s.Character.VehiclePartsUnlocked = append(s.Character.VehiclePartsUnlocked, path)
		added++
	}
	return added
}
