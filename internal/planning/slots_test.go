package planning

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func boolPtr(v bool) *bool { return &v }

func assertSlotInvariants(t *testing.T, slots []TimeSlot) {
	t.Helper()
	for _, slot := range slots {
		assert.Regexp(t, clockPattern, slot.Start)
		assert.Regexp(t, clockPattern, slot.End)
		assert.Less(t, slot.Start, slot.End)
	}
}

func TestBuildDaySlotsContinuous(t *testing.T) {
	prefs := &Preferences{AllowSplitShifts: boolPtr(false)}

	slots := buildDaySlots(6, prefs, nil)

	assert.Equal(t, []TimeSlot{{Start: "09:00", End: "15:00"}}, slots)
	assertSlotInvariants(t, slots)
}

func TestBuildDaySlotsContinuousWithLunch(t *testing.T) {
	prefs := &Preferences{AllowSplitShifts: boolPtr(false)}
	c := &CompanyConstraints{MandatoryLunchBreak: true}

	slots := buildDaySlots(7, prefs, c)

	assert.Equal(t, []TimeSlot{
		{Start: "09:00", End: "12:30"},
		{Start: "12:30", End: "13:30", IsLunchBreak: true},
		{Start: "13:30", End: "17:00"},
	}, slots)
	assert.InDelta(t, 7.0, workedHours(slots), 0.001)
}

func TestBuildDaySlotsContinuousClipsToWindow(t *testing.T) {
	prefs := &Preferences{AllowSplitShifts: boolPtr(false)}

	slots := buildDaySlots(10, prefs, nil)

	assert.Len(t, slots, 1)
	assert.Equal(t, "17:00", slots[0].End)
	assert.InDelta(t, 8.0, workedHours(slots), 0.001)
}

func TestBuildDaySlotsHonorsPreferredStart(t *testing.T) {
	prefs := &Preferences{
		AllowSplitShifts: boolPtr(false),
		PreferredHours:   []string{"08:00-12:00", "10:00-14:00"},
	}

	slots := buildDaySlots(4, prefs, nil)

	// 08:00 sits before the window opens; 10:00 is the first usable start.
	assert.Equal(t, []TimeSlot{{Start: "10:00", End: "14:00"}}, slots)
}

func TestBuildDaySlotsSplitChunks(t *testing.T) {
	slots := buildDaySlots(7, nil, nil)

	assert.Equal(t, []TimeSlot{
		{Start: "09:00", End: "13:00"},
		{Start: "13:30", End: "16:30"},
	}, slots)
	assert.InDelta(t, 7.0, workedHours(slots), 0.001)
}

func TestBuildDaySlotsSplitWithLunchAdjacentToMiddleChunk(t *testing.T) {
	c := &CompanyConstraints{MandatoryLunchBreak: true}

	slots := buildDaySlots(7, nil, c)

	assert.Equal(t, []TimeSlot{
		{Start: "09:00", End: "13:00"},
		{Start: "13:00", End: "14:00", IsLunchBreak: true},
		{Start: "14:00", End: "17:00"},
	}, slots)
	assert.InDelta(t, 7.0, workedHours(slots), 0.001)
}

func TestBuildDaySlotsStopsAtTinyWindow(t *testing.T) {
	c := &CompanyConstraints{OpenHours: []string{"09:00-10:00"}}

	slots := buildDaySlots(4, nil, c)

	assert.Equal(t, []TimeSlot{{Start: "09:00", End: "10:00"}}, slots)
}

func TestBuildDaySlotsZeroHours(t *testing.T) {
	assert.Empty(t, buildDaySlots(0, nil, nil))
	assert.Empty(t, buildDaySlots(-2, nil, nil))
}
