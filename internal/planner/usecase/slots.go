package usecase

import (
	"fmt"
	"time"

	"daynix/internal/model"
	"daynix/pkg/timeutil"
)

// slotActive reports whether a recurring availability window is in effect
// at now. An overnight window (end before start) counts as active either
// when it started today, or when it started yesterday and is still running
// past midnight.
func slotActive(start, end string, days []int, now time.Time) bool {
	startMins, ok1 := timeutil.ToMinutes(start)
	endMins, ok2 := timeutil.ToMinutes(end)
	if !ok1 || !ok2 || len(days) == 0 {
		return false
	}

	cur := timeutil.MinutesOfDay(now)
	today := int(now.Weekday())
	yesterday := timeutil.YesterdayWeekday(today)

	if endMins < startMins { // overnight
		if containsDay(days, today) && cur >= startMins {
			return true
		}
		return containsDay(days, yesterday) && cur <= endMins
	}
	return containsDay(days, today) && timeutil.WithinRange(startMins, endMins, cur)
}

// ResolveActiveSlots checks the office window and every study slot
// independently and returns all concurrently active ones.
func (uc *implUseCase) ResolveActiveSlots(prefs model.Preferences, now time.Time) []model.ActiveSlot {
	var slots []model.ActiveSlot

	if prefs.OfficeStartTime != "" && prefs.OfficeEndTime != "" &&
		slotActive(prefs.OfficeStartTime, prefs.OfficeEndTime, prefs.OfficeDays, now) {
		slots = append(slots, model.ActiveSlot{
			ID:        officeSlotID,
			Title:     officeSlotTitle,
			StartTime: prefs.OfficeStartTime,
			EndTime:   prefs.OfficeEndTime,
			Kind:      model.SlotKindOffice,
		})
	}

	for i, slot := range prefs.StudySlots {
		if slotActive(slot.Start, slot.End, slot.Days, now) {
			slots = append(slots, model.ActiveSlot{
				ID:        fmt.Sprintf("study-session-%d", i),
				Title:     studySlotTitle,
				StartTime: slot.Start,
				EndTime:   slot.End,
				Kind:      model.SlotKindStudy,
			})
		}
	}
	return slots
}
