package save

import (
	"bl3-savior/oak"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	MayhemMax = 10
)

func (s *Save) CharacterName() string {
	return s.Character.PreferredCharacterName
}

func (s *Save) SetCharacterName(name string) {
	s.Character.PreferredCharacterName = name
}

func (s *Save) SaveGameID() uint32 {
	return s.Character.SaveGameID
}

func (s *Save) SetSaveGameID(id uint32) {
	s.Character.SaveGameID = id
}

func (s *Save) ExperiencePoints() int32 {
	return s.Character.ExperiencePoints
}

func (s *Save) PlaythroughsCompleted() int32 {
	return s.Character.PlaythroughsCompleted
}

func (s *Save) SetPlaythroughsCompleted(count int32) {
	s.Character.PlaythroughsCompleted = count
}

func (s *Save) MayhemLevels() []int32 {
	return lo.Map(s.Character.GameStateSaveDataForPlaythrough, func(state *oak.GameState, _ int) int32 {
		return state.MayhemLevel
	})
}

func (s *Save) MayhemLevel(pt int) (int32, bool) {
	states := s.Character.GameStateSaveDataForPlaythrough
	if pt < 0 || pt >= len(states) {
		return 0, false
	}
	return states[pt].MayhemLevel, true
}

func validateMayhem(level int32) error {
	if level < 0 || level > MayhemMax {
		return errors.Errorf("mayhem level %d is outside 0..%d", level, MayhemMax)
	}
	return nil
}

func (s *Save) SetMayhemLevel(pt int, level int32) error {
	if err := validateMayhem(level); err != nil {
		return err
	}
	states := s.Character.GameStateSaveDataForPlaythrough
	if pt < 0 || pt >= len(states) {
		return PlaythroughError{
			Array:  GameStateArray.Name(),
			Op:     "set mayhem",
			Index:  pt,
			Limit:  len(states) - 1,
			Reason: "playthrough has no data",
			Kind:   ErrIndexOutOfRange,
		}
	}
	states[pt].MayhemLevel = level
	return nil
}

func (s *Save) SetAllMayhemLevels(level int32) error {
	if err := validateMayhem(level); err != nil {
		return err
	}
	lo.ForEach(s.Character.GameStateSaveDataForPlaythrough, func(state *oak.GameState, _ int) {
		state.MayhemLevel = level
	})
	return nil
}

// LastStations returns the object path of the station last visited in each
// playthrough.
func (s *Save) LastStations() []string {
	return s.Character.LastActiveTravelStationForPlaythrough
}

func (s *Save) LastStation(pt int) (string, bool) {
	stations := s.Character.LastActiveTravelStationForPlaythrough
	if pt < 0 || pt >= len(stations) {
		return "", false
	}
	return stations[pt], true
}

func (s *Save) FastTravelStations() [][]string {
	return lo.Map(s.Character.ActiveTravelStationsForPlaythrough, func(pt *oak.PlaythroughTravelStations, _ int) []string {
		return lo.Map(pt.ActiveTravelStations, func(station *oak.ActiveFastTravel, _ int) string {
			return station.ActiveTravelStationName
		})
	})
}

func (s *Save) FastTravelStationsFor(pt int) ([]string, bool) {
	stations := s.FastTravelStations()
	if pt < 0 || pt >= len(stations) {
		return nil, false
	}
	return stations[pt], true
}

// Missions returns, for each playthrough, the class paths of the missions in
// the given state.
func (s *Save) Missions(state oak.MissionState) [][]string {
	return lo.Map(s.Character.MissionPlaythroughsData, func(pt *oak.MissionPlaythrough, _ int) []string {
		return lo.FilterMap(pt.MissionList, func(mission *oak.MissionStatus, _ int) (string, bool) {
			return mission.MissionClassPath, mission.Status == state
		})
	})
}

func (s *Save) MissionsFor(pt int, state oak.MissionState) ([]string, bool) {
	missions := s.Missions(state)
	if pt < 0 || pt >= len(missions) {
		return nil, false
	}
	return missions[pt], true
}

func (s *Save) ActiveMissions() [][]string {
	return s.Missions(oak.MissionActive)
}

func (s *Save) CompletedMissionCounts() []int {
	return lo.Map(s.Missions(oak.MissionComplete), func(missions []string, _ int) int {
		return len(missions)
	})
}
