package save

import (
	"testing"

	"bl3-savior/oak"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lengths(s *Save) []int {
	return lo.Map(PlaythroughArrays, func(array PlaythroughArray, _ int) int {
		return array.Len(s.Character)
	})
}

func TestCopyPlaythroughArray_Append(t *testing.T) {
	s := sampleSave(1)
	require.NoError(t, s.CopyPlaythroughArray(GameStateArray, nil, 0, 1))
	assert.Equal(t, 2, GameStateArray.Len(s.Character))
	assert.Equal(t, 1, MissionArray.Len(s.Character))

	// the copy is independent of its source
	s.Character.GameStateSaveDataForPlaythrough[1].MayhemLevel = 7
	assert.Equal(t, int32(0), s.Character.GameStateSaveDataForPlaythrough[0].MayhemLevel)
}

func TestCopyPlaythroughArray_Replace(t *testing.T) {
	s := sampleSave(3)
	require.NoError(t, s.CopyPlaythroughArray(LastStationArray, nil, 2, 0))
	assert.Equal(t, []string{"/Game/Last_C", "/Game/Last_B", "/Game/Last_C"}, s.LastStations())

	require.NoError(t, s.CopyPlaythroughArray(MissionArray, nil, 0, 1))
	assert.Equal(t, 3, MissionArray.Len(s.Character))
	assert.Equal(t, s.Character.MissionPlaythroughsData[0], s.Character.MissionPlaythroughsData[1])
	assert.NotSame(t, s.Character.MissionPlaythroughsData[0], s.Character.MissionPlaythroughsData[1])
}

func TestCopyPlaythroughArray_FromOtherSave(t *testing.T) {
	s := sampleSave(1)
	other := sampleSave(3)
	require.NoError(t, s.CopyPlaythroughArray(FastTravelArray, other, 2, 1))
	assert.Equal(t, [][]string{{"/Game/FTS_A"}, {"/Game/FTS_C"}}, s.FastTravelStations())

	// the same index is fine when the source is another save
	require.NoError(t, s.CopyPlaythroughArray(FastTravelArray, other, 0, 0))
	assert.Equal(t, 3, FastTravelArray.Len(other.Character))
}

func TestCopyPlaythroughArray_Rejects(t *testing.T) {
	s := sampleSave(1)
	other := sampleSave(2)
	cases := []struct {
		name   string
		src    *Save
		fromPt int
		toPt   int
	}{
		{"gap", nil, 0, 2},
		{"missing source", nil, 1, 1},
		{"missing source in other save", other, 2, 1},
		{"same playthrough", nil, 0, 0},
		{"same playthrough by pointer", s, 0, 0},
		{"negative source", nil, -1, 0},
		{"negative target", nil, 0, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.CopyPlaythroughArray(MissionArray, c.src, c.fromPt, c.toPt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			playthroughErr := PlaythroughError{}
			require.ErrorAs(t, err, &playthroughErr)
			assert.Equal(t, "copy", playthroughErr.Op)
			assert.Equal(t, 1, MissionArray.Len(s.Character))
		})
	}
}

func TestClearPlaythroughArray(t *testing.T) {
	s := sampleSave(3)
	err := s.ClearPlaythroughArray(GameStateArray, 1)
	assert.ErrorIs(t, err, ErrInvalidPlaythrough)
	playthroughErr := PlaythroughError{}
	require.ErrorAs(t, err, &playthroughErr)
	assert.Equal(t, 1, playthroughErr.Index)
	assert.Equal(t, 2, playthroughErr.Limit)

	assert.ErrorIs(t, s.ClearPlaythroughArray(GameStateArray, -1), ErrInvalidPlaythrough)
	assert.ErrorIs(t, s.ClearPlaythroughArray(GameStateArray, 3), ErrInvalidPlaythrough)

	require.NoError(t, s.ClearPlaythroughArray(GameStateArray, 2))
	require.NoError(t, s.ClearPlaythroughArray(GameStateArray, 1))
	require.NoError(t, s.ClearPlaythroughArray(GameStateArray, 0))
	assert.Equal(t, 0, GameStateArray.Len(s.Character))
	assert.ErrorIs(t, s.ClearPlaythroughArray(GameStateArray, 0), ErrInvalidPlaythrough)
	assert.ErrorIs(t, s.ClearPlaythroughArray(GameStateArray, -1), ErrInvalidPlaythrough)
}

func TestPlaythroughArray_NoGaps(t *testing.T) {
	s := New(sampleHeader(), &oak.Character{})
	source := sampleSave(1)
	steps := []struct {
		copy   bool
		fromPt int
		pt     int
	}{
		{true, 0, 0}, {true, 0, 1}, {true, 1, 2}, {false, 0, 2}, {true, 0, 2},
		{true, 0, 4}, {false, 0, 1}, {false, 0, 2}, {false, 0, 1}, {false, 0, 0},
		{true, 0, 1}, {true, 0, 0},
	}
	for _, array := range PlaythroughArrays {
		for i, step := range steps {
			before := array.Len(s.Character)
			var err error
			if step.copy {
				src := s
				if before == 0 {
					src = source
				}
				err = s.CopyPlaythroughArray(array, src, step.fromPt, step.pt)
			} else {
				err = s.ClearPlaythroughArray(array, step.pt)
			}
			after := array.Len(s.Character)
			if err != nil {
				assert.Equal(t, before, after, "%s step %d", array.Name(), i)
				continue
			}
			if step.copy {
				assert.LessOrEqual(t, after-before, 1, "%s step %d", array.Name(), i)
				assert.GreaterOrEqual(t, after, before, "%s step %d", array.Name(), i)
			} else {
				assert.Equal(t, before-1, step.pt, "%s step %d", array.Name(), i)
				assert.Equal(t, before-1, after, "%s step %d", array.Name(), i)
			}
		}
	}
	assert.Equal(t, []int{1, 1, 1, 1}, lengths(s))
}

func TestCopyPlaythroughData(t *testing.T) {
	s := sampleSave(1)
	require.NoError(t, s.CopyPlaythroughData(nil, 0, 1))
	assert.Equal(t, []int{2, 2, 2, 2}, lengths(s))
	assert.Equal(t, 1, s.MaxPlaythroughWithData())

	// copying onto a gap fails on the first array and changes nothing
	err := s.CopyPlaythroughData(nil, 0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{2, 2, 2, 2}, lengths(s))
}

func TestCopyPlaythroughData_FailsOnGap(t *testing.T) {
	s := sampleSave(1)
	err := s.CopyPlaythroughData(nil, 0, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{1, 1, 1, 1}, lengths(s))
}

func TestCopyPlaythroughData_NotAtomic(t *testing.T) {
	s := sampleSave(1)
	// a short last array makes the final step of the sequence fail
	s.Character.GameStateSaveDataForPlaythrough = nil
	err := s.CopyPlaythroughData(sampleSave(1), 0, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []int{2, 2, 2, 0}, lengths(s))
}

func TestClearPlaythroughData(t *testing.T) {
	s := sampleSave(4)
	require.NoError(t, s.ClearPlaythroughData(1))
	assert.Equal(t, []int{1, 1, 1, 1}, lengths(s))
	assert.Equal(t, []string{"/Game/Last_A"}, s.LastStations())
	assert.Equal(t, 0, s.MaxPlaythroughWithData())
}

func TestClearPlaythroughData_AboveData(t *testing.T) {
	s := sampleSave(1)
	require.NoError(t, s.ClearPlaythroughData(1))
	require.NoError(t, s.ClearPlaythroughData(5))
	assert.Equal(t, []int{1, 1, 1, 1}, lengths(s))

	require.NoError(t, s.ClearPlaythroughData(0))
	assert.Equal(t, []int{0, 0, 0, 0}, lengths(s))
	assert.Equal(t, -1, s.MaxPlaythroughWithData())

	assert.ErrorIs(t, s.ClearPlaythroughData(-1), ErrInvalidPlaythrough)
}

func TestClearPlaythroughData_UnevenArrays(t *testing.T) {
	s := sampleSave(3)
	s.Character.LastActiveTravelStationForPlaythrough = s.Character.LastActiveTravelStationForPlaythrough[:2]
	assert.Equal(t, 1, s.MaxPlaythroughWithData())

	// the longer arrays still end at index 2, so clearing index 1 first fails
	err := s.ClearPlaythroughData(1)
	assert.ErrorIs(t, err, ErrInvalidPlaythrough)
	assert.Equal(t, []int{3, 3, 2, 3}, lengths(s))
}

func TestMaxPlaythroughWithData(t *testing.T) {
	assert.Equal(t, 2, sampleSave(3).MaxPlaythroughWithData())
	assert.Equal(t, -1, New(sampleHeader(), &oak.Character{}).MaxPlaythroughWithData())
}
