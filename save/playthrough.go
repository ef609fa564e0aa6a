package save

import (
	"bl3-savior/oak"
	"github.com/samber/lo"
)

type (
	// PlaythroughArray is one of the four character arrays indexed by
	// playthrough number. An array may only grow by one element at its end
	// and only shrink by dropping its last element, so it never has a gap.
	PlaythroughArray interface {
		Name() string
		Len(character *oak.Character) int
		copyElement(dst *oak.Character, src *oak.Character, fromPt int, toPt int)
		dropLast(character *oak.Character)
	}
	playthroughArray[T any] struct {
		name  string
		slice func(character *oak.Character) *[]T
		clone func(element T) T
	}
)

var (
	MissionArray PlaythroughArray = playthroughArray[*oak.MissionPlaythrough]{
		name:  "mission data",
		slice: func(c *oak.Character) *[]*oak.MissionPlaythrough { return &c.MissionPlaythroughsData },
		clone: (*oak.MissionPlaythrough).Clone,
	}
	FastTravelArray PlaythroughArray = playthroughArray[*oak.PlaythroughTravelStations]{
		name:  "active fast travel stations",
		slice: func(c *oak.Character) *[]*oak.PlaythroughTravelStations { return &c.ActiveTravelStationsForPlaythrough },
		clone: (*oak.PlaythroughTravelStations).Clone,
	}
	LastStationArray PlaythroughArray = playthroughArray[string]{
		name:  "last station",
		slice: func(c *oak.Character) *[]string { return &c.LastActiveTravelStationForPlaythrough },
		clone: func(station string) string { return station },
	}
	GameStateArray PlaythroughArray = playthroughArray[*oak.GameState]{
		name:  "game state",
		slice: func(c *oak.Character) *[]*oak.GameState { return &c.GameStateSaveDataForPlaythrough },
		clone: (*oak.GameState).Clone,
	}
)

// PlaythroughArrays lists the arrays in the order the aggregate operations
// visit them.
var PlaythroughArrays = []PlaythroughArray{
	MissionArray,
	FastTravelArray,
	LastStationArray,
	GameStateArray,
}

func (a playthroughArray[T]) Name() string {
	return a.name
}

func (a playthroughArray[T]) Len(character *oak.Character) int {
	return len(*a.slice(character))
}

// copyElement assumes the indexes were checked by the caller. The element is
// cloned so the two characters never share a message.
func (a playthroughArray[T]) copyElement(dst *oak.Character, src *oak.Character, fromPt int, toPt int) {
	element := a.clone((*a.slice(src))[fromPt])
	list := a.slice(dst)
	if toPt == len(*list) {
		*list = append(*list, element)
	} else {
		(*list)[toPt] = element
	}
}

func (a playthroughArray[T]) dropLast(character *oak.Character) {
	list := a.slice(character)
	var zero T
	// clear the slot so the dropped message is not kept alive by the
	// backing array
	(*list)[len(*list)-1] = zero
	*list = (*list)[:len(*list)-1]
}

// CopyPlaythroughArray copies playthrough fromPt of src into playthrough
// toPt of s, for one array. A nil src copies within s. toPt may be at most
// the array's current length, in which case the array grows by one.
func (s *Save) CopyPlaythroughArray(array PlaythroughArray, src *Save, fromPt int, toPt int) error {
	if src == nil {
		src = s
	}
	srcLen := array.Len(src.Character)
	dstLen := array.Len(s.Character)
	fail := func(index int, limit int, reason string) error {
		return PlaythroughError{
			Array:  array.Name(),
			Op:     "copy",
			Index:  index,
			Limit:  limit,
			Reason: reason,
			Kind:   ErrIndexOutOfRange,
		}
	}
	switch {
	case fromPt < 0:
		return fail(fromPt, srcLen-1, "source playthrough cannot be negative")
	case toPt < 0:
		return fail(toPt, dstLen, "target playthrough cannot be negative")
	case fromPt > srcLen-1:
		return fail(fromPt, srcLen-1, "source playthrough has no data")
	case toPt > dstLen:
		return fail(toPt, dstLen, "target playthrough would leave a gap")
	case src == s && fromPt == toPt:
		return fail(toPt, dstLen, "source and target playthrough are the same")
	}

	array.copyElement(s.Character, src.Character, fromPt, toPt)
	s.logger.Debug("copied playthrough", "array", array.Name(), "from", fromPt, "to", toPt, "length", array.Len(s.Character))
	return nil
}

// ClearPlaythroughArray removes playthrough pt from one array. Only the last
// playthrough can be removed.
func (s *Save) ClearPlaythroughArray(array PlaythroughArray, pt int) error {
	length := array.Len(s.Character)
	fail := func(reason string) error {
		return PlaythroughError{
			Array:  array.Name(),
			Op:     "clear",
			Index:  pt,
			Limit:  length - 1,
			Reason: reason,
			Kind:   ErrInvalidPlaythrough,
		}
	}
	if pt < 0 {
		return fail("playthrough cannot be negative")
	}
	if pt != length-1 {
		return fail("only the last playthrough can be cleared")
	}

	array.dropLast(s.Character)
	s.logger.Debug("cleared playthrough", "array", array.Name(), "playthrough", pt)
	return nil
}

// CopyPlaythroughData copies one playthrough across all four arrays. The
// arrays are updated one after another: if a later array rejects the copy,
// the earlier ones stay modified.
func (s *Save) CopyPlaythroughData(src *Save, fromPt int, toPt int) error {
	for _, array := range PlaythroughArrays {
		if err := s.CopyPlaythroughArray(array, src, fromPt, toPt); err != nil {
			return err
		}
	}
	return nil
}

// ClearPlaythroughData removes playthrough pt and every playthrough above it
// from all four arrays, highest first. A pt above the highest playthrough
// with data is a no-op, since a playthrough can be unlocked without having
// any data yet. Like CopyPlaythroughData, a failure midway is not undone.
func (s *Save) ClearPlaythroughData(pt int) error {
	if pt < 0 {
		return PlaythroughError{
			Array:  "all",
			Op:     "clear",
			Index:  pt,
			Limit:  s.MaxPlaythroughWithData(),
			Reason: "playthrough cannot be negative",
			Kind:   ErrInvalidPlaythrough,
		}
	}
	for current := s.MaxPlaythroughWithData(); current >= pt; current-- {
		for _, array := range PlaythroughArrays {
			if err := s.ClearPlaythroughArray(array, current); err != nil {
				return err
			}
		}
	}
	return nil
}

// MaxPlaythroughWithData returns the highest zero-based playthrough that
// every array holds data for, or -1 when any array is empty.
func (s *Save) MaxPlaythroughWithData() int {
	lengths := lo.Map(PlaythroughArrays, func(array PlaythroughArray, _ int) int {
		return array.Len(s.Character)
	})
	return lo.Min(lengths) - 1
}
