package roomevent

import "time"

// Window is a time-of-day interval; both bounds are inclusive for validation.
type Window struct {
	From TimeOfDay
	To   TimeOfDay
}

// WorkingHours holds the fixed opening and premiere windows. Windows, event
// days and times of day are all read in Location; nil means UTC.
type WorkingHours struct {
	Opening  Window
	Premiere Window
	Location *time.Location
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Opening:  Window{From: NewTimeOfDay(8, 0), To: NewTimeOfDay(22, 0)},
		Premiere: Window{From: NewTimeOfDay(17, 0), To: NewTimeOfDay(21, 0)},
		Location: time.UTC,
	}
}

func (h WorkingHours) location() *time.Location {
	if h.Location == nil {
		return time.UTC
	}
	return h.Location
}
