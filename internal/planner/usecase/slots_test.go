package usecase

import (
	"testing"
	"time"

	"daynix/internal/model"
)

func TestSlotActive(t *testing.T) {
	// testNow is Tuesday (weekday 2) 14:00.
	tests := []struct {
		name  string
		start string
		end   string
		days  []int
		now   time.Time
		want  bool
	}{
		{
			name:  "inside same-day window",
			start: "09:00", end: "17:00", days: []int{1, 2, 3, 4, 5},
			now: testNow, want: true,
		},
		{
			name:  "boundaries are inclusive",
			start: "14:00", end: "17:00", days: []int{2},
			now: testNow, want: true,
		},
		{
			name:  "outside the window",
			start: "15:00", end: "17:00", days: []int{2},
			now: testNow, want: false,
		},
		{
			name:  "weekday not listed",
			start: "09:00", end: "17:00", days: []int{0, 6},
			now: testNow, want: false,
		},
		{
			name:  "overnight window before midnight",
			start: "22:00", end: "06:00", days: []int{2},
			now: time.Date(2025, 3, 11, 23, 0, 0, 0, time.Local), want: true,
		},
		{
			name:  "overnight carryover past midnight uses yesterday's weekday",
			start: "22:00", end: "06:00", days: []int{1},
			now: time.Date(2025, 3, 11, 1, 0, 0, 0, time.Local), want: true,
		},
		{
			name:  "overnight not active mid-afternoon",
			start: "22:00", end: "06:00", days: []int{1, 2},
			now: testNow, want: false,
		},
		{
			name:  "sunday carries over from saturday",
			start: "23:00", end: "02:00", days: []int{6},
			now: time.Date(2025, 3, 9, 1, 0, 0, 0, time.Local), want: true,
		},
		{
			name:  "empty day list",
			start: "09:00", end: "17:00", days: nil,
			now: testNow, want: false,
		},
		{
			name:  "malformed times",
			start: "9am", end: "17:00", days: []int{2},
			now: testNow, want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := slotActive(tc.start, tc.end, tc.days, tc.now); got != tc.want {
				t.Errorf("slotActive(%q, %q, %v) = %v, want %v", tc.start, tc.end, tc.days, got, tc.want)
			}
		})
	}
}

func TestResolveActiveSlots(t *testing.T) {
	uc := newTestUseCase(&memRepo{})

	prefs := model.DefaultPreferences()
	prefs.OfficeStartTime = "09:00"
	prefs.OfficeEndTime = "18:00"
	prefs.OfficeDays = []int{1, 2, 3, 4, 5}
	prefs.StudySlots = []model.StudySlot{
		{Start: "13:00", End: "15:00", Days: []int{2}},
		{Start: "20:00", End: "22:00", Days: []int{2}},
	}

	slots := uc.ResolveActiveSlots(prefs, testNow)
	if len(slots) != 2 {
		t.Fatalf("got %d active slots, want 2: %+v", len(slots), slots)
	}

	office := slots[0]
	if office.ID != "office-session" || office.Kind != model.SlotKindOffice {
		t.Errorf("office slot = %+v", office)
	}
	study := slots[1]
	if study.ID != "study-session-0" || study.Kind != model.SlotKindStudy {
		t.Errorf("study slot = %+v", study)
	}
	if study.StartTime != "13:00" || study.EndTime != "15:00" {
		t.Errorf("study slot window = %s-%s", study.StartTime, study.EndTime)
	}
}

func TestResolveActiveSlots_NoOfficeWindowConfigured(t *testing.T) {
	uc := newTestUseCase(&memRepo{})

	prefs := model.Preferences{StudySlots: []model.StudySlot{
		{Start: "13:00", End: "15:00", Days: []int{2}},
	}}

	slots := uc.ResolveActiveSlots(prefs, testNow)
	if len(slots) != 1 || slots[0].Kind != model.SlotKindStudy {
		t.Fatalf("slots = %+v, want only the study slot", slots)
	}
}
