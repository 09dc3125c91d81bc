package usecase

import "time"

// Policy constants. Both values are deliberate product choices with no
// configuration surface.
const (
	// runningWindowMinutes is the half-width of the window around a
	// time-bound task's start in which it counts as Running. The window wins
	// over "has passed": a task ten minutes past its time is still Running.
	runningWindowMinutes = 15

	// timeBoundDuration is the assumed duration of a time-bound task when
	// computing conflict intervals.
	timeBoundDuration = time.Hour

	// backupVersion is written into every exported backup.
	backupVersion = "1.0"
)

const (
	officeSlotID    = "office-session"
	officeSlotTitle = "Office Hours"
	studySlotTitle  = "Study Time"
)
