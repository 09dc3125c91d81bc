package model

import (
	"time"

	"daynix/pkg/timeutil"
)

// StudySlot is a recurring availability window for focused work.
type StudySlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  []int  `json:"days"` // weekday indices, 0=Sunday
}

// Preferences is the per-user singleton of planner settings. Loaded once at
// startup, replaced wholesale on save.
type Preferences struct {
	WakeUpTime       string      `json:"wakeUpTime"`
	SleepTime        string      `json:"sleepTime"`
	SleepTargetHours float64     `json:"sleepTargetHours"`
	OfficeStartTime  string      `json:"officeStartTime,omitempty"`
	OfficeEndTime    string      `json:"officeEndTime,omitempty"`
	OfficeDays       []int       `json:"officeDays"`
	StudySlots       []StudySlot `json:"studySlots"`
	BreakDuration    int         `json:"breakDuration"` // minutes
	BreakFrequency   int         `json:"breakFrequency"` // minutes between breaks
	Theme            string      `json:"theme"`
}

// DefaultPreferences supplies the defaults used when no record exists.
func DefaultPreferences() Preferences {
	return Preferences{
		WakeUpTime:       "07:00",
		SleepTime:        "23:00",
		SleepTargetHours: 8,
		OfficeDays:       []int{},
		StudySlots:       []StudySlot{},
		BreakDuration:    15,
		BreakFrequency:   120,
		Theme:            "dark",
	}
}

// SleepTarget derives the nightly sleep duration in hours from the sleep and
// wake times, handling the usual across-midnight window. Falls back to the
// stored SleepTargetHours when either time is unset.
func (p Preferences) SleepTarget() float64 {
	sleep, ok1 := timeutil.ToMinutes(p.SleepTime)
	wake, ok2 := timeutil.ToMinutes(p.WakeUpTime)
	if !ok1 || !ok2 {
		return p.SleepTargetHours
	}
	minutes := wake - sleep
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return float64(minutes) / 60
}

// Settings holds backup bookkeeping. Persistence-only, not consulted by the
// categorization engine.
type Settings struct {
	BackupLocation string     `json:"backupLocation,omitempty"`
	LastBackup     *time.Time `json:"lastBackup,omitempty"`
}

// SlotKind distinguishes the source of an active availability window.
type SlotKind string

const (
	SlotKindOffice SlotKind = "office"
	SlotKindStudy  SlotKind = "study"
)

// ActiveSlot is a recurring availability window currently in effect.
type ActiveSlot struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Kind      SlotKind `json:"type"`
}
